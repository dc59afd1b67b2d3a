package variants

import (
	"testing"
	"time"

	"github.com/samacademy/cohortgen/internal/content"
	"github.com/samacademy/cohortgen/internal/store"
)

func variantAt(id int, status content.Status, createdAt time.Time, payload content.Payload) *store.Task {
	parentID := 1
	return &store.Task{
		ID:        id,
		Kind:      content.KindLesson,
		Status:    status,
		ParentID:  &parentID,
		Payload:   payload,
		CreatedAt: createdAt,
	}
}

func lessonPayload(script string) content.Payload {
	return content.Payload{Lesson: &content.LessonData{Script: script}}
}

func parentTask() *store.Task {
	return &store.Task{ID: 1, Kind: content.KindLesson, Status: content.StatusGenerating}
}

func TestReconcile_NoVariantsLeavesUnchanged(t *testing.T) {
	parent := parentTask()
	out := Reconcile(parent, nil)
	if out.Changed {
		t.Fatal("expected no change with zero variants")
	}
	if out.Status != content.StatusGenerating {
		t.Fatalf("expected current status back, got %s", out.Status)
	}
}

func TestReconcile_AnyGeneratingWins(t *testing.T) {
	base := time.Now()
	vs := []*store.Task{
		variantAt(2, content.StatusCompleted, base, lessonPayload("a")),
		variantAt(3, content.StatusCompleted, base.Add(time.Second), lessonPayload("b")),
		variantAt(4, content.StatusGenerating, base.Add(2*time.Second), content.Payload{}),
	}
	out := Reconcile(parentTask(), vs)
	if out.Status != content.StatusGenerating {
		t.Fatalf("expected generating, got %s", out.Status)
	}
}

func TestReconcile_FailedWhenNoneGenerating(t *testing.T) {
	base := time.Now()
	vs := []*store.Task{
		variantAt(2, content.StatusCompleted, base, lessonPayload("a")),
		variantAt(3, content.StatusFailed, base.Add(time.Second), content.Payload{}),
		variantAt(4, content.StatusCompleted, base.Add(2*time.Second), lessonPayload("c")),
	}
	out := Reconcile(parentTask(), vs)
	if out.Status != content.StatusFailed {
		t.Fatalf("expected failed, got %s", out.Status)
	}
	if out.Promote != nil {
		t.Fatal("failed parent must not receive promoted content")
	}
}

func TestReconcile_AllCompletedPromotesEarliest(t *testing.T) {
	base := time.Now()
	// Deliberately out of creation order in the slice.
	vs := []*store.Task{
		variantAt(4, content.StatusCompleted, base.Add(2*time.Second), lessonPayload("third")),
		variantAt(2, content.StatusCompleted, base, lessonPayload("first")),
		variantAt(3, content.StatusCompleted, base.Add(time.Second), lessonPayload("second")),
	}
	out := Reconcile(parentTask(), vs)
	if out.Status != content.StatusCompleted {
		t.Fatalf("expected completed, got %s", out.Status)
	}
	if out.Promote == nil || out.Promote.Lesson == nil {
		t.Fatal("expected payload promotion")
	}
	if out.Promote.Lesson.Script != "first" {
		t.Fatalf("expected earliest-created payload, got %q", out.Promote.Lesson.Script)
	}
}

func TestReconcile_PromotionSkipsEmptyPayloads(t *testing.T) {
	base := time.Now()
	vs := []*store.Task{
		variantAt(2, content.StatusCompleted, base, content.Payload{}),
		variantAt(3, content.StatusCompleted, base.Add(time.Second), lessonPayload("second")),
	}
	out := Reconcile(parentTask(), vs)
	if out.Promote == nil || out.Promote.Lesson.Script != "second" {
		t.Fatalf("expected first non-empty payload, got %+v", out.Promote)
	}
}

func TestReconcile_NoPromotionWhenParentHasContent(t *testing.T) {
	base := time.Now()
	parent := parentTask()
	parent.Payload = lessonPayload("already here")
	vs := []*store.Task{
		variantAt(2, content.StatusCompleted, base, lessonPayload("variant")),
	}
	out := Reconcile(parent, vs)
	if out.Promote != nil {
		t.Fatal("parent content must not be overwritten")
	}
	if out.Status != content.StatusCompleted {
		t.Fatalf("expected completed, got %s", out.Status)
	}
}

func TestReconcile_AllPendingLeavesUnchanged(t *testing.T) {
	base := time.Now()
	vs := []*store.Task{
		variantAt(2, content.StatusPending, base, content.Payload{}),
		variantAt(3, content.StatusPending, base.Add(time.Second), content.Payload{}),
	}
	parent := parentTask()
	out := Reconcile(parent, vs)
	if out.Changed {
		t.Fatal("pending-only variants must leave the parent unchanged")
	}
}

func TestReconcile_Idempotent(t *testing.T) {
	base := time.Now()
	vs := []*store.Task{
		variantAt(2, content.StatusCompleted, base, lessonPayload("a")),
		variantAt(3, content.StatusFailed, base.Add(time.Second), content.Payload{}),
	}
	parent := parentTask()

	first := Reconcile(parent, vs)
	// Apply the outcome, then reconcile again.
	parent.Status = first.Status
	second := Reconcile(parent, vs)

	if second.Status != first.Status {
		t.Fatalf("statuses differ across runs: %s vs %s", first.Status, second.Status)
	}
	if second.Changed {
		t.Fatal("second run must be a no-op")
	}
}
