package feedback

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/samacademy/cohortgen/internal/alerts"
	"github.com/samacademy/cohortgen/internal/content"
	"github.com/samacademy/cohortgen/internal/scoring"
	"github.com/samacademy/cohortgen/internal/store"
	"github.com/samacademy/cohortgen/internal/surveys"
	"github.com/samacademy/cohortgen/internal/vitals"
)

type fakeTaskRepo struct {
	tasks map[int]*store.Task
}

func (r *fakeTaskRepo) Create(_ context.Context, _ store.TaskDraft) (*store.Task, error) {
	return nil, errors.New("not implemented")
}

func (r *fakeTaskRepo) Get(_ context.Context, id int) (*store.Task, error) {
	t, ok := r.tasks[id]
	if !ok {
		return nil, errors.New("task not found")
	}
	return t, nil
}

func (r *fakeTaskRepo) UpdateStatus(_ context.Context, _ int, _ content.Status) error { return nil }
func (r *fakeTaskRepo) SetPayload(_ context.Context, _ int, _ content.Payload, _ content.Status) error {
	return nil
}
func (r *fakeTaskRepo) VariantsOf(_ context.Context, _ int) ([]*store.Task, error) { return nil, nil }
func (r *fakeTaskRepo) ListParents(_ context.Context, _ int) ([]*store.Task, error) {
	return nil, nil
}

type fakeFeedbackRepo struct {
	mu       sync.Mutex
	nextID   int
	appended []*store.Feedback
	surveys  map[int]string

	appendErr error
}

func newFakeFeedbackRepo() *fakeFeedbackRepo {
	return &fakeFeedbackRepo{nextID: 1, surveys: make(map[int]string)}
}

func (r *fakeFeedbackRepo) Append(_ context.Context, fb *store.Feedback) (*store.Feedback, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.appendErr != nil {
		return nil, r.appendErr
	}
	cp := *fb
	cp.ID = r.nextID
	r.nextID++
	r.appended = append(r.appended, &cp)
	out := cp
	return &out, nil
}

func (r *fakeFeedbackRepo) RecentByLearner(_ context.Context, _ string, _ store.FeedbackFilter, _ int) ([]*store.Feedback, error) {
	return nil, nil
}

func (r *fakeFeedbackRepo) RecentGlobal(_ context.Context, _ store.FeedbackFilter, _ int) ([]*store.Feedback, error) {
	return nil, nil
}

func (r *fakeFeedbackRepo) AttachSurvey(_ context.Context, id int, submissionID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.surveys[id] = submissionID
	return nil
}

type fakeProfileRepo struct {
	profiles map[store.ProfileKey]*store.Profile

	byKeyErr error
}

func newFakeProfileRepo() *fakeProfileRepo {
	return &fakeProfileRepo{profiles: make(map[store.ProfileKey]*store.Profile)}
}

func (r *fakeProfileRepo) ByKey(_ context.Context, key store.ProfileKey) (*store.Profile, error) {
	if r.byKeyErr != nil {
		return nil, r.byKeyErr
	}
	return r.profiles[key], nil
}

func (r *fakeProfileRepo) Create(_ context.Context, p *store.Profile) (*store.Profile, error) {
	cp := *p
	cp.ID = len(r.profiles) + 1
	r.profiles[cp.Key] = &cp
	out := cp
	return &out, nil
}

func (r *fakeProfileRepo) Update(_ context.Context, p *store.Profile) error {
	cp := *p
	r.profiles[cp.Key] = &cp
	return nil
}

func (r *fakeProfileRepo) SetStatus(_ context.Context, _ int, _ string) error { return nil }
func (r *fakeProfileRepo) List(_ context.Context) ([]*store.Profile, error)  { return nil, nil }

type spySink struct {
	alerts []alerts.Alert
}

func (s *spySink) Deliver(_ context.Context, a alerts.Alert) error {
	s.alerts = append(s.alerts, a)
	return nil
}

func lessonTask() *store.Task {
	return &store.Task{
		ID:            7,
		Kind:          content.KindLesson,
		Topic:         "photosynthesis",
		Status:        content.StatusCompleted,
		ClassID:       1,
		Purpose:       "introduction",
		Grade:         "6",
		Subject:       "science",
		LengthMinutes: 15,
		Combo: content.Combo{
			Name:   "gpt-4o-standard",
			Script: content.ModelRef{Provider: "openai", Model: "gpt-4o"},
			Image:  content.ModelRef{Provider: "openai", Model: "dall-e-3"},
		},
	}
}

func healthyMetrics() *vitals.Metrics {
	return &vitals.Metrics{
		AverageFocusScore:        vitals.F(85),
		AverageEngagementScore:   vitals.F(80),
		AverageThinkingIntensity: vitals.F(55),
		AverageHeartRate:         vitals.F(75),
		AverageBreathingRate:     vitals.F(14),
		HeartRateStdDev:          vitals.F(4),
		BreathingRateStdDev:      vitals.F(1),
	}
}

func newTestService(tasks *fakeTaskRepo, fb *fakeFeedbackRepo, profiles *fakeProfileRepo, probe vitals.Probe, sink alerts.Sink, surveySink surveys.Sink) *Service {
	return NewService(tasks, fb, probe, scoring.NewScorer(profiles), alerts.NewEvaluator(sink), surveySink)
}

func TestIngest_HappyPath(t *testing.T) {
	tasks := &fakeTaskRepo{tasks: map[int]*store.Task{7: lessonTask()}}
	fbRepo := newFakeFeedbackRepo()
	profiles := newFakeProfileRepo()
	probe := &vitals.StaticProbe{Metrics: healthyMetrics()}
	surveySink := &surveys.StaticSink{ID: "sub-42"}

	svc := newTestService(tasks, fbRepo, profiles, probe, &spySink{}, surveySink)

	fb, err := svc.Ingest(context.Background(), Session{
		SessionID: "sess-1",
		LearnerID: "learner-1",
		ClassID:   1,
		TaskID:    7,
	})
	if err != nil {
		t.Fatalf("Ingest: %v", err)
	}

	if fb.ComboKey == "" {
		t.Error("feedback should carry the task's combo key")
	}
	if fb.LengthBucket != "medium" {
		t.Errorf("LengthBucket = %s, want medium (15 minutes)", fb.LengthBucket)
	}
	if fb.Clarity <= 0 || fb.Clarity > 1 {
		t.Errorf("Clarity = %f, out of range", fb.Clarity)
	}
	if len(fb.RawMetrics) != 7 {
		t.Errorf("RawMetrics entries = %d, want 7", len(fb.RawMetrics))
	}
	if len(profiles.profiles) != 1 {
		t.Errorf("profiles created = %d, want 1", len(profiles.profiles))
	}
	if got := fbRepo.surveys[fb.ID]; got != "sub-42" {
		t.Errorf("survey submission id = %q, want sub-42", got)
	}
	if len(surveySink.Submissions) != 1 {
		t.Errorf("survey submissions = %d, want 1", len(surveySink.Submissions))
	}
}

func TestIngest_ProbeFailureAborts(t *testing.T) {
	tasks := &fakeTaskRepo{tasks: map[int]*store.Task{7: lessonTask()}}
	fbRepo := newFakeFeedbackRepo()
	probe := &vitals.StaticProbe{Err: errors.New("sensor offline")}

	svc := newTestService(tasks, fbRepo, newFakeProfileRepo(), probe, &spySink{}, &surveys.StaticSink{ID: "x"})

	if _, err := svc.Ingest(context.Background(), Session{SessionID: "s", TaskID: 7}); err == nil {
		t.Fatal("expected probe failure to abort ingestion")
	}
	if len(fbRepo.appended) != 0 {
		t.Error("no feedback should be persisted when the probe fails")
	}
}

func TestIngest_ScorerFailureKeepsFeedback(t *testing.T) {
	tasks := &fakeTaskRepo{tasks: map[int]*store.Task{7: lessonTask()}}
	fbRepo := newFakeFeedbackRepo()
	profiles := newFakeProfileRepo()
	profiles.byKeyErr = errors.New("db locked")
	probe := &vitals.StaticProbe{Metrics: healthyMetrics()}

	svc := newTestService(tasks, fbRepo, profiles, probe, &spySink{}, &surveys.StaticSink{ID: "x"})

	fb, err := svc.Ingest(context.Background(), Session{SessionID: "s", TaskID: 7})
	if err != nil {
		t.Fatalf("Ingest should survive a scorer failure: %v", err)
	}
	if fb == nil || len(fbRepo.appended) != 1 {
		t.Error("feedback record should still be persisted")
	}
}

func TestIngest_CollapsedSignalsRaiseAlerts(t *testing.T) {
	tasks := &fakeTaskRepo{tasks: map[int]*store.Task{7: lessonTask()}}
	sink := &spySink{}
	// No metrics at all except a rock-bottom focus and engagement reading.
	probe := &vitals.StaticProbe{Metrics: &vitals.Metrics{
		AverageFocusScore:      vitals.F(5),
		AverageEngagementScore: vitals.F(5),
	}}

	svc := newTestService(tasks, newFakeFeedbackRepo(), newFakeProfileRepo(), probe, sink, &surveys.StaticSink{ID: "x"})

	if _, err := svc.Ingest(context.Background(), Session{SessionID: "s", LearnerID: "l", TaskID: 7}); err != nil {
		t.Fatalf("Ingest: %v", err)
	}
	if len(sink.alerts) == 0 {
		t.Error("collapsed signals should raise at least one alert")
	}
	for _, a := range sink.alerts {
		if a.SessionID != "s" || a.TaskID != 7 {
			t.Errorf("alert not tagged with session context: %+v", a)
		}
	}
}

func TestIngest_SurveyFailureNonFatal(t *testing.T) {
	tasks := &fakeTaskRepo{tasks: map[int]*store.Task{7: lessonTask()}}
	fbRepo := newFakeFeedbackRepo()
	probe := &vitals.StaticProbe{Metrics: healthyMetrics()}
	surveySink := &surveys.StaticSink{Err: errors.New("delivery failed")}

	svc := newTestService(tasks, fbRepo, newFakeProfileRepo(), probe, &spySink{}, surveySink)

	if _, err := svc.Ingest(context.Background(), Session{SessionID: "s", TaskID: 7}); err != nil {
		t.Fatalf("Ingest should survive a survey failure: %v", err)
	}
	if len(fbRepo.surveys) != 0 {
		t.Error("no submission id should be attached on survey failure")
	}
}
