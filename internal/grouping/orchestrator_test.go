package grouping

import (
	"context"
	"errors"
	"testing"

	"github.com/samacademy/cohortgen/internal/content"
	"github.com/samacademy/cohortgen/internal/selection"
	"github.com/samacademy/cohortgen/internal/store"
)

type fakeClassRepo struct {
	class    *store.Class
	learners []string
}

func (f *fakeClassRepo) Create(_ context.Context, name, grade, subject string) (*store.Class, error) {
	return &store.Class{ID: 1, Name: name, Grade: grade, Subject: subject}, nil
}

func (f *fakeClassRepo) Get(_ context.Context, id int) (*store.Class, error) {
	if f.class == nil || f.class.ID != id {
		return nil, errors.New("class not found")
	}
	return f.class, nil
}

func (f *fakeClassRepo) Enroll(_ context.Context, _ int, _ string) error { return nil }

func (f *fakeClassRepo) EnrolledLearners(_ context.Context, _ int) ([]string, error) {
	return f.learners, nil
}

type fakeGroupRepo struct {
	created []*store.Group
	failAll bool
}

func (f *fakeGroupRepo) CreateAll(_ context.Context, drafts []store.GroupDraft) ([]*store.Group, error) {
	if f.failAll {
		return nil, errors.New("write failed")
	}
	out := make([]*store.Group, len(drafts))
	for i, d := range drafts {
		out[i] = &store.Group{
			ID:      i + 1,
			TaskID:  d.TaskID,
			ClassID: d.ClassID,
			Number:  d.Number,
			Members: d.Members,
			Combo:   d.Combo,
		}
	}
	f.created = out
	return out, nil
}

func (f *fakeGroupRepo) ByTask(_ context.Context, _ int) ([]*store.Group, error) {
	return f.created, nil
}

func (f *fakeGroupRepo) SetVariantTask(_ context.Context, _, _ int) error { return nil }

type emptyFeedbackRepo struct{}

func (emptyFeedbackRepo) Append(_ context.Context, fb *store.Feedback) (*store.Feedback, error) {
	return fb, nil
}

func (emptyFeedbackRepo) RecentByLearner(_ context.Context, _ string, _ store.FeedbackFilter, _ int) ([]*store.Feedback, error) {
	return nil, nil
}

func (emptyFeedbackRepo) RecentGlobal(_ context.Context, _ store.FeedbackFilter, _ int) ([]*store.Feedback, error) {
	return nil, nil
}

func (emptyFeedbackRepo) AttachSurvey(_ context.Context, _ int, _ string) error { return nil }

func newTestOrchestrator(classes *fakeClassRepo, groups *fakeGroupRepo) *Orchestrator {
	return NewOrchestrator(classes, groups, selection.NewSelector(emptyFeedbackRepo{}), NewSegmenter(6))
}

func taskContext() TaskContext {
	return TaskContext{Kind: content.KindLesson, Topic: "photosynthesis", Purpose: "practice"}
}

func TestCreateGroups_ZeroEnrollmentIsNotAnError(t *testing.T) {
	classes := &fakeClassRepo{class: &store.Class{ID: 1, Grade: "5", Subject: "science"}}
	groups := &fakeGroupRepo{}

	res, err := newTestOrchestrator(classes, groups).CreateGroupsForTask(context.Background(), 10, 1, taskContext())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(res.Groups) != 0 {
		t.Fatalf("expected no groups, got %d", len(res.Groups))
	}
	if res.Message == "" {
		t.Fatal("expected an explanatory message")
	}
}

func TestCreateGroups_PersistsOneGroupPerSegment(t *testing.T) {
	classes := &fakeClassRepo{
		class:    &store.Class{ID: 1, Grade: "5", Subject: "science"},
		learners: learnerSet(13),
	}
	groups := &fakeGroupRepo{}

	res, err := newTestOrchestrator(classes, groups).CreateGroupsForTask(context.Background(), 10, 1, taskContext())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(res.Groups) != 3 {
		t.Fatalf("expected 3 groups for 13 learners, got %d", len(res.Groups))
	}

	for i, g := range res.Groups {
		if g.Number != i+1 {
			t.Fatalf("group %d: expected number %d, got %d", i, i+1, g.Number)
		}
		if g.TaskID != 10 {
			t.Fatalf("group %d bound to task %d", i, g.TaskID)
		}
		if g.Combo.IsZero() {
			t.Fatalf("group %d has no combo", i)
		}
		if g.Combo.Script.IsZero() {
			t.Fatalf("lesson group %d combo missing script role", i)
		}
	}
}

func TestCreateGroups_RoundRobinAssignsDistinctCombos(t *testing.T) {
	// With no history, consecutive groups cycle the catalogue.
	classes := &fakeClassRepo{
		class:    &store.Class{ID: 1, Grade: "5", Subject: "science"},
		learners: learnerSet(18),
	}
	groups := &fakeGroupRepo{}

	res, err := newTestOrchestrator(classes, groups).CreateGroupsForTask(context.Background(), 10, 1, taskContext())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(res.Groups) != 3 {
		t.Fatalf("expected 3 groups, got %d", len(res.Groups))
	}
	for i, g := range res.Groups {
		if want := selection.LessonCatalogue[i].Name; g.Combo.Name != want {
			t.Fatalf("group %d: expected combo %s, got %s", i, want, g.Combo.Name)
		}
	}
}

func TestCreateGroups_MissingClassFails(t *testing.T) {
	_, err := newTestOrchestrator(&fakeClassRepo{}, &fakeGroupRepo{}).
		CreateGroupsForTask(context.Background(), 10, 99, taskContext())
	if err == nil {
		t.Fatal("expected error for missing class")
	}
}

func TestCreateGroups_PersistenceFailureSurfaces(t *testing.T) {
	classes := &fakeClassRepo{
		class:    &store.Class{ID: 1, Grade: "5", Subject: "science"},
		learners: learnerSet(6),
	}
	groups := &fakeGroupRepo{failAll: true}

	_, err := newTestOrchestrator(classes, groups).CreateGroupsForTask(context.Background(), 10, 1, taskContext())
	if err == nil {
		t.Fatal("expected persistence error to surface")
	}
}
