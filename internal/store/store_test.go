package store

import (
	"context"
	"testing"

	"github.com/samacademy/cohortgen/internal/content"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so journal_mode is only checked with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestTaskCreateAndGet(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	tasks := s.Tasks()

	parent, err := tasks.Create(ctx, TaskDraft{
		Kind:          content.KindLesson,
		Topic:         "photosynthesis",
		Status:        content.StatusGenerating,
		ClassID:       1,
		Purpose:       "practice",
		Grade:         "5",
		Subject:       "science",
		LengthMinutes: 10,
	})
	if err != nil {
		t.Fatalf("create parent: %v", err)
	}
	if !parent.IsParent() {
		t.Error("task without parent ID should be a parent")
	}

	got, err := tasks.Get(ctx, parent.ID)
	if err != nil {
		t.Fatalf("get task: %v", err)
	}
	if got.Topic != "photosynthesis" || got.Kind != content.KindLesson {
		t.Errorf("got %q/%q, want photosynthesis/lesson", got.Topic, got.Kind)
	}
	if got.Status != content.StatusGenerating {
		t.Errorf("status = %q, want generating", got.Status)
	}
}

func TestTaskVariantsOrdered(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	tasks := s.Tasks()

	parent, err := tasks.Create(ctx, TaskDraft{
		Kind: content.KindQuiz, Topic: "fractions", Status: content.StatusGenerating, ClassID: 1,
	})
	if err != nil {
		t.Fatalf("create parent: %v", err)
	}

	for i := range 3 {
		gid := i + 1
		_, err := tasks.Create(ctx, TaskDraft{
			Kind: content.KindQuiz, Topic: "fractions", Status: content.StatusPending,
			ClassID: 1, ParentID: &parent.ID, GroupID: &gid,
		})
		if err != nil {
			t.Fatalf("create variant %d: %v", i, err)
		}
	}

	variants, err := tasks.VariantsOf(ctx, parent.ID)
	if err != nil {
		t.Fatalf("variants: %v", err)
	}
	if len(variants) != 3 {
		t.Fatalf("got %d variants, want 3", len(variants))
	}
	for i, v := range variants {
		if v.ParentID == nil || *v.ParentID != parent.ID {
			t.Errorf("variant %d parent = %v, want %d", i, v.ParentID, parent.ID)
		}
		if i > 0 && variants[i-1].ID > v.ID {
			t.Errorf("variants out of creation order at %d", i)
		}
	}
}

func TestTaskSetPayload(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	tasks := s.Tasks()

	task, err := tasks.Create(ctx, TaskDraft{
		Kind: content.KindLesson, Topic: "volcanoes", Status: content.StatusGenerating, ClassID: 1,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	payload := content.Payload{Lesson: &content.LessonData{
		Script: "full script",
		Slides: []content.Slide{{SlideNumber: 1, Script: "slide one"}},
	}}
	if err := tasks.SetPayload(ctx, task.ID, payload, content.StatusCompleted); err != nil {
		t.Fatalf("set payload: %v", err)
	}

	got, err := tasks.Get(ctx, task.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Status != content.StatusCompleted {
		t.Errorf("status = %q, want completed", got.Status)
	}
	if got.Payload.Lesson == nil || got.Payload.Lesson.Script != "full script" {
		t.Errorf("payload not persisted: %+v", got.Payload)
	}
}

func TestGroupCreateAllAndByTask(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	task, err := s.Tasks().Create(ctx, TaskDraft{
		Kind: content.KindLesson, Topic: "tides", Status: content.StatusGenerating, ClassID: 2,
	})
	if err != nil {
		t.Fatalf("create task: %v", err)
	}

	combo := content.Combo{Name: "gemini-flash-lesson"}
	groups, err := s.Groups().CreateAll(ctx, []GroupDraft{
		{TaskID: task.ID, ClassID: 2, Number: 1, Members: []string{"a", "b"}, Combo: combo},
		{TaskID: task.ID, ClassID: 2, Number: 2, Members: []string{"c"}, Combo: combo},
	})
	if err != nil {
		t.Fatalf("create all: %v", err)
	}
	if len(groups) != 2 {
		t.Fatalf("got %d groups, want 2", len(groups))
	}

	loaded, err := s.Groups().ByTask(ctx, task.ID)
	if err != nil {
		t.Fatalf("by task: %v", err)
	}
	if len(loaded) != 2 || loaded[0].Number != 1 || loaded[1].Number != 2 {
		t.Errorf("groups not ordered by number: %+v", loaded)
	}
	if len(loaded[0].Members) != 2 {
		t.Errorf("members not persisted: %+v", loaded[0].Members)
	}

	if err := s.Groups().SetVariantTask(ctx, groups[0].ID, task.ID+100); err != nil {
		t.Fatalf("set variant task: %v", err)
	}
	loaded, err = s.Groups().ByTask(ctx, task.ID)
	if err != nil {
		t.Fatalf("by task: %v", err)
	}
	if loaded[0].VariantTaskID == nil || *loaded[0].VariantTaskID != task.ID+100 {
		t.Errorf("variant task ref = %v, want %d", loaded[0].VariantTaskID, task.ID+100)
	}
}

func TestClassEnrollment(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	classes := s.Classes()

	class, err := classes.Create(ctx, "Grade 5 Science A", "5", "science")
	if err != nil {
		t.Fatalf("create class: %v", err)
	}

	for _, id := range []string{"learner-1", "learner-2", "learner-3"} {
		if err := classes.Enroll(ctx, class.ID, id); err != nil {
			t.Fatalf("enroll %s: %v", id, err)
		}
	}

	learners, err := classes.EnrolledLearners(ctx, class.ID)
	if err != nil {
		t.Fatalf("enrolled learners: %v", err)
	}
	if len(learners) != 3 {
		t.Errorf("got %d learners, want 3", len(learners))
	}
}

func TestProfileByKeyAndUpdate(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	profiles := s.Profiles()

	key := ProfileKey{
		ComboKey: "gpt4o-lesson", Topic: t.Name(), Purpose: "practice",
		LengthBucket: "short", Kind: content.KindLesson, Grade: "5", Subject: "science",
	}

	got, err := profiles.ByKey(ctx, key)
	if err != nil {
		t.Fatalf("by key: %v", err)
	}
	if got != nil {
		t.Fatalf("expected nil for missing profile, got %+v", got)
	}

	created, err := profiles.Create(ctx, &Profile{
		Key: key, ClarityAvg: 0.8, EngagementAvg: 0.7, ConfidenceAvg: 0.6,
		AttentionAvg: 0.5, SessionCount: 1, PerformanceScore: 0.67,
		Status: ProfileExperimental,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	created.ClarityAvg = 0.9
	created.SessionCount = 2
	if err := profiles.Update(ctx, created); err != nil {
		t.Fatalf("update: %v", err)
	}

	got, err = profiles.ByKey(ctx, key)
	if err != nil {
		t.Fatalf("by key after update: %v", err)
	}
	if got == nil || got.ClarityAvg != 0.9 || got.SessionCount != 2 {
		t.Errorf("update not persisted: %+v", got)
	}
	if got.Key != key {
		t.Errorf("key round-trip mismatch: %+v", got.Key)
	}
}

func TestFeedbackAppendAndHistory(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	feedback := s.Feedback()

	learner := "learner-" + t.Name()
	var lastSeq int64
	for i := range 3 {
		fb, err := feedback.Append(ctx, &Feedback{
			SessionID: "session", LearnerID: learner, TaskID: i + 1,
			ComboKey: "gpt4o-lesson", Kind: content.KindLesson,
			Topic: "tides", Purpose: "practice", LengthBucket: "short",
			Grade: "5", Subject: "science",
			Clarity: 0.8, Engagement: 0.7, FatigueTrend: "stable",
			RawMetrics: map[string]float64{"averageFocusScore": 80},
		})
		if err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
		if fb.Sequence <= lastSeq {
			t.Errorf("sequence not increasing: %d after %d", fb.Sequence, lastSeq)
		}
		lastSeq = fb.Sequence
	}

	recent, err := feedback.RecentByLearner(ctx, learner, FeedbackFilter{
		Kind: content.KindLesson, Grade: "5", Subject: "science",
	}, 2)
	if err != nil {
		t.Fatalf("recent by learner: %v", err)
	}
	if len(recent) != 2 {
		t.Fatalf("got %d records, want 2", len(recent))
	}
	if recent[0].Sequence < recent[1].Sequence {
		t.Error("records not newest first")
	}
	if recent[0].RawMetrics["averageFocusScore"] != 80 {
		t.Errorf("raw metrics not persisted: %+v", recent[0].RawMetrics)
	}

	// Grade filter excludes everything.
	none, err := feedback.RecentByLearner(ctx, learner, FeedbackFilter{Grade: "3"}, 0)
	if err != nil {
		t.Fatalf("filtered query: %v", err)
	}
	if len(none) != 0 {
		t.Errorf("grade filter leaked %d records", len(none))
	}

	if err := feedback.AttachSurvey(ctx, recent[0].ID, "sub-123"); err != nil {
		t.Fatalf("attach survey: %v", err)
	}
}

func TestGenerationEventRoundTrip(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	events := s.Events()

	err := events.AppendGeneration(ctx, GenerationEventData{
		Provider: "openai", Model: "gpt-4o", Purpose: "script",
		InputTokens: 120, OutputTokens: 800, LatencyMs: 2500, Success: true,
	})
	if err != nil {
		t.Fatalf("append: %v", err)
	}

	records, err := events.QueryGeneration(ctx, QueryOpts{Limit: 1})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("got %d records, want 1", len(records))
	}
	r := records[0]
	if r.Provider != "openai" || r.Model != "gpt-4o" || !r.Success {
		t.Errorf("round trip mismatch: %+v", r)
	}
}
