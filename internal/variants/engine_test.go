package variants

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/samacademy/cohortgen/internal/content"
	"github.com/samacademy/cohortgen/internal/generation"
	"github.com/samacademy/cohortgen/internal/store"
)

// memTaskRepo is an in-memory TaskRepo safe for the engine's concurrency.
type memTaskRepo struct {
	mu    sync.Mutex
	seq   int
	clock time.Time
	tasks map[int]*store.Task
}

func newMemTaskRepo() *memTaskRepo {
	return &memTaskRepo{clock: time.Unix(1000, 0), tasks: make(map[int]*store.Task)}
}

func (r *memTaskRepo) Create(_ context.Context, d store.TaskDraft) (*store.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seq++
	r.clock = r.clock.Add(time.Second)
	t := &store.Task{
		ID:            r.seq,
		Kind:          d.Kind,
		Topic:         d.Topic,
		Status:        d.Status,
		ClassID:       d.ClassID,
		ParentID:      d.ParentID,
		GroupID:       d.GroupID,
		Combo:         d.Combo,
		Purpose:       d.Purpose,
		Grade:         d.Grade,
		Subject:       d.Subject,
		LengthMinutes: d.LengthMinutes,
		QuestionType:  d.QuestionType,
		NumQuestions:  d.NumQuestions,
		CreatedAt:     r.clock,
	}
	r.tasks[t.ID] = t
	return copyTask(t), nil
}

func (r *memTaskRepo) Get(_ context.Context, id int) (*store.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	t, ok := r.tasks[id]
	if !ok {
		return nil, errors.New("task not found")
	}
	return copyTask(t), nil
}

func (r *memTaskRepo) UpdateStatus(_ context.Context, id int, status content.Status) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	t, ok := r.tasks[id]
	if !ok {
		return errors.New("task not found")
	}
	t.Status = status
	return nil
}

func (r *memTaskRepo) SetPayload(_ context.Context, id int, payload content.Payload, status content.Status) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	t, ok := r.tasks[id]
	if !ok {
		return errors.New("task not found")
	}
	t.Payload = payload
	t.Status = status
	return nil
}

func (r *memTaskRepo) VariantsOf(_ context.Context, parentID int) ([]*store.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*store.Task
	for id := 1; id <= r.seq; id++ {
		t, ok := r.tasks[id]
		if ok && t.ParentID != nil && *t.ParentID == parentID {
			out = append(out, copyTask(t))
		}
	}
	return out, nil
}

func (r *memTaskRepo) ListParents(_ context.Context, _ int) ([]*store.Task, error) {
	return nil, nil
}

func copyTask(t *store.Task) *store.Task {
	c := *t
	return &c
}

// memGroupRepo is an in-memory GroupRepo.
type memGroupRepo struct {
	mu     sync.Mutex
	groups []*store.Group
}

func (r *memGroupRepo) CreateAll(_ context.Context, drafts []store.GroupDraft) ([]*store.Group, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, d := range drafts {
		r.groups = append(r.groups, &store.Group{
			ID:      len(r.groups) + 1,
			TaskID:  d.TaskID,
			ClassID: d.ClassID,
			Number:  d.Number,
			Members: d.Members,
			Combo:   d.Combo,
		})
	}
	return r.groups, nil
}

func (r *memGroupRepo) ByTask(_ context.Context, taskID int) ([]*store.Group, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*store.Group
	for _, g := range r.groups {
		if g.TaskID == taskID {
			c := *g
			out = append(out, &c)
		}
	}
	return out, nil
}

func (r *memGroupRepo) SetVariantTask(_ context.Context, groupID, taskID int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, g := range r.groups {
		if g.ID == groupID {
			g.VariantTaskID = &taskID
			return nil
		}
	}
	return errors.New("group not found")
}

func lessonCombo(name string) content.Combo {
	return content.Combo{
		Name:   name,
		Script: content.ModelRef{Provider: "openai", Model: "gpt-4o"},
		Image:  content.ModelRef{Provider: "openai", Model: "gpt-image-1"},
	}
}

func quizCombo() content.Combo {
	return content.Combo{
		Name:          "quiz-combo",
		QuizPrompt:    content.ModelRef{Provider: "openai", Model: "gpt-4o-mini"},
		QuizQuestions: content.ModelRef{Provider: "openai", Model: "gpt-4o"},
	}
}

// setup creates a parent lesson task with n groups and returns the wired
// engine and repos.
func setup(t *testing.T, backend generation.Backend, kind content.Kind, n int) (*Engine, *memTaskRepo, *store.Task) {
	t.Helper()
	tasks := newMemTaskRepo()
	groups := &memGroupRepo{}

	parent, err := tasks.Create(context.Background(), store.TaskDraft{
		Kind:          kind,
		Topic:         "photosynthesis",
		Status:        content.StatusGenerating,
		ClassID:       1,
		LengthMinutes: 8,
		QuestionType:  content.QuestionMCQ,
		NumQuestions:  5,
	})
	if err != nil {
		t.Fatalf("create parent: %v", err)
	}

	drafts := make([]store.GroupDraft, n)
	for i := range drafts {
		combo := lessonCombo("combo-" + string(rune('a'+i)))
		if kind == content.KindQuiz {
			combo = quizCombo()
		}
		drafts[i] = store.GroupDraft{
			TaskID:  parent.ID,
			ClassID: 1,
			Number:  i + 1,
			Members: []string{"l1", "l2"},
			Combo:   combo,
		}
	}
	if _, err := groups.CreateAll(context.Background(), drafts); err != nil {
		t.Fatalf("create groups: %v", err)
	}

	return NewEngine(tasks, groups, backend), tasks, parent
}

func TestSpawnVariants_ScriptFailureFailsVariantAndParent(t *testing.T) {
	backend := &generation.Mock{
		ScriptFn: func(_ context.Context, _ string, _ int, _ content.ModelRef) (*generation.ScriptResult, error) {
			return nil, errors.New("script model down")
		},
	}
	engine, tasks, parent := setup(t, backend, content.KindLesson, 1)

	if err := engine.SpawnVariants(context.Background(), parent.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	vs, _ := tasks.VariantsOf(context.Background(), parent.ID)
	if len(vs) != 1 {
		t.Fatalf("expected 1 variant, got %d", len(vs))
	}
	if vs[0].Status != content.StatusFailed {
		t.Fatalf("expected failed variant, got %s", vs[0].Status)
	}
	if vs[0].Payload.Lesson != nil {
		t.Fatal("failed variant must leave slides unset")
	}

	got, _ := tasks.Get(context.Background(), parent.ID)
	if got.Status != content.StatusFailed {
		t.Fatalf("expected failed parent, got %s", got.Status)
	}
}

func TestSpawnVariants_MediaFailuresDegradeButComplete(t *testing.T) {
	backend := &generation.Mock{
		ImageFn: func(_ context.Context, _ string, _ int, _ string, _ content.ModelRef) (string, error) {
			return "", errors.New("image model down")
		},
		SpeechFn: func(_ context.Context, _, _ string) (string, error) {
			return "", errors.New("tts down")
		},
	}
	engine, tasks, parent := setup(t, backend, content.KindLesson, 1)

	if err := engine.SpawnVariants(context.Background(), parent.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	vs, _ := tasks.VariantsOf(context.Background(), parent.ID)
	if vs[0].Status != content.StatusCompleted {
		t.Fatalf("expected completed variant despite media failures, got %s", vs[0].Status)
	}
	lesson := vs[0].Payload.Lesson
	if lesson == nil || len(lesson.Slides) == 0 {
		t.Fatal("expected slides on the completed variant")
	}
	for _, s := range lesson.Slides {
		if s.ImageURL != "" || s.SpeechURL != "" {
			t.Fatalf("slide %d should have empty media URLs", s.SlideNumber)
		}
	}
}

func TestSpawnVariants_AllAttemptedDespiteSiblingFailure(t *testing.T) {
	// The first group's script model fails; the second succeeds. Both
	// must be attempted.
	var mu sync.Mutex
	attempted := map[string]bool{}
	backend := &generation.Mock{
		ScriptFn: func(ctx context.Context, topic string, lengthMinutes int, ref content.ModelRef) (*generation.ScriptResult, error) {
			mu.Lock()
			attempted[ref.Model] = true
			mu.Unlock()
			if ref.Model == "fail-model" {
				return nil, errors.New("down")
			}
			return (&generation.Mock{}).GenerateScript(ctx, topic, lengthMinutes, ref)
		},
	}
	engine, tasks, parent := setup(t, backend, content.KindLesson, 2)
	engine.groups.(*memGroupRepo).groups[0].Combo.Script.Model = "fail-model"

	if err := engine.SpawnVariants(context.Background(), parent.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	vs, _ := tasks.VariantsOf(context.Background(), parent.ID)
	if len(vs) != 2 {
		t.Fatalf("expected 2 variants, got %d", len(vs))
	}

	statuses := map[content.Status]int{}
	for _, v := range vs {
		statuses[v.Status]++
	}
	if statuses[content.StatusFailed] != 1 || statuses[content.StatusCompleted] != 1 {
		t.Fatalf("expected one failed and one completed, got %v", statuses)
	}
	if !attempted["fail-model"] || !attempted["gpt-4o"] {
		t.Fatalf("both variants must be attempted, got %v", attempted)
	}

	got, _ := tasks.Get(context.Background(), parent.ID)
	if got.Status != content.StatusFailed {
		t.Fatalf("expected failed parent with a failed sibling, got %s", got.Status)
	}
}

func TestSpawnVariants_AllCompletedPromotesFirstPayload(t *testing.T) {
	engine, tasks, parent := setup(t, &generation.Mock{}, content.KindLesson, 3)

	if err := engine.SpawnVariants(context.Background(), parent.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, _ := tasks.Get(context.Background(), parent.ID)
	if got.Status != content.StatusCompleted {
		t.Fatalf("expected completed parent, got %s", got.Status)
	}
	if got.Payload.Lesson == nil {
		t.Fatal("expected promoted lesson payload on the parent")
	}

	vs, _ := tasks.VariantsOf(context.Background(), parent.ID)
	if got.Payload.Lesson.Script != vs[0].Payload.Lesson.Script {
		t.Fatal("parent payload must equal the earliest-created completed variant's")
	}
}

func TestSpawnVariants_QuizPipeline(t *testing.T) {
	engine, tasks, parent := setup(t, &generation.Mock{}, content.KindQuiz, 1)

	if err := engine.SpawnVariants(context.Background(), parent.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	vs, _ := tasks.VariantsOf(context.Background(), parent.ID)
	quiz := vs[0].Payload.Quiz
	if vs[0].Status != content.StatusCompleted || quiz == nil {
		t.Fatalf("expected completed quiz variant, got %s", vs[0].Status)
	}
	if quiz.Prompt == "" || len(quiz.Questions) != 5 {
		t.Fatalf("unexpected quiz payload: prompt=%q questions=%d", quiz.Prompt, len(quiz.Questions))
	}
}

func TestSpawnVariants_QuizCountMismatchIsNotFatal(t *testing.T) {
	backend := &generation.Mock{
		QuizQuestionsFn: func(_ context.Context, _, _, questionType string, _ int, _ content.ModelRef) (*generation.QuizResult, error) {
			return &generation.QuizResult{Questions: []content.QuizQuestion{
				{Question: "q", Type: questionType, CorrectAnswer: "a", Explanation: "e"},
			}}, nil
		},
	}
	engine, tasks, parent := setup(t, backend, content.KindQuiz, 1)

	if err := engine.SpawnVariants(context.Background(), parent.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	vs, _ := tasks.VariantsOf(context.Background(), parent.ID)
	if vs[0].Status != content.StatusCompleted {
		t.Fatalf("count mismatch must not fail the variant, got %s", vs[0].Status)
	}
	if len(vs[0].Payload.Quiz.Questions) != 1 {
		t.Fatalf("expected the returned question set, got %d", len(vs[0].Payload.Quiz.Questions))
	}
}

func TestSpawnVariants_QuizStepFailureFailsVariant(t *testing.T) {
	backend := &generation.Mock{
		QuizQuestionsFn: func(_ context.Context, _, _, _ string, _ int, _ content.ModelRef) (*generation.QuizResult, error) {
			return nil, errors.New("question model down")
		},
	}
	engine, tasks, parent := setup(t, backend, content.KindQuiz, 1)

	if err := engine.SpawnVariants(context.Background(), parent.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	vs, _ := tasks.VariantsOf(context.Background(), parent.ID)
	if vs[0].Status != content.StatusFailed {
		t.Fatalf("expected failed variant, got %s", vs[0].Status)
	}
}

func TestRepair_MidGenerationReportsGenerating(t *testing.T) {
	engine, tasks, parent := setup(t, &generation.Mock{}, content.KindLesson, 2)

	// Materialize variants by hand, one still generating.
	pid := parent.ID
	v1, _ := tasks.Create(context.Background(), store.TaskDraft{
		Kind: content.KindLesson, Status: content.StatusCompleted, ParentID: &pid,
	})
	tasks.SetPayload(context.Background(), v1.ID, lessonPayload("done"), content.StatusCompleted)
	tasks.Create(context.Background(), store.TaskDraft{
		Kind: content.KindLesson, Status: content.StatusGenerating, ParentID: &pid,
	})

	got, err := engine.Repair(context.Background(), parent.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Status != content.StatusGenerating {
		t.Fatalf("expected generating mid-flight, got %s", got.Status)
	}

	// Repair is idempotent.
	again, err := engine.Repair(context.Background(), parent.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if again.Status != got.Status {
		t.Fatalf("statuses differ across repairs: %s vs %s", got.Status, again.Status)
	}
}

func TestSpawnVariants_RejectsVariantAsParent(t *testing.T) {
	engine, tasks, parent := setup(t, &generation.Mock{}, content.KindLesson, 1)

	pid := parent.ID
	v, _ := tasks.Create(context.Background(), store.TaskDraft{
		Kind: content.KindLesson, Status: content.StatusPending, ParentID: &pid,
	})

	if err := engine.SpawnVariants(context.Background(), v.ID); err == nil {
		t.Fatal("expected error spawning from a variant")
	}
}
