package variants

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/samacademy/cohortgen/internal/content"
	"github.com/samacademy/cohortgen/internal/generation"
	"github.com/samacademy/cohortgen/internal/store"
)

// DefaultConcurrency bounds how many variants generate at once.
const DefaultConcurrency = 4

// Engine creates and runs variant tasks for a parent task's groups.
type Engine struct {
	tasks       store.TaskRepo
	groups      store.GroupRepo
	backend     generation.Backend
	concurrency int
}

// NewEngine wires the variant pipeline.
func NewEngine(tasks store.TaskRepo, groups store.GroupRepo, backend generation.Backend) *Engine {
	return &Engine{
		tasks:       tasks,
		groups:      groups,
		backend:     backend,
		concurrency: DefaultConcurrency,
	}
}

// SpawnVariants materializes one variant task per group of the parent and
// runs all of them concurrently. Variants are independent: one failing
// never cancels its siblings, so every variant is attempted. When all
// variants have resolved, the parent is reconciled.
func (e *Engine) SpawnVariants(ctx context.Context, parentID int) error {
	parent, err := e.tasks.Get(ctx, parentID)
	if err != nil {
		return fmt.Errorf("load parent task %d: %w", parentID, err)
	}
	if !parent.IsParent() {
		return fmt.Errorf("task %d is a variant, not a parent", parentID)
	}

	groups, err := e.groups.ByTask(ctx, parentID)
	if err != nil {
		return fmt.Errorf("load groups for task %d: %w", parentID, err)
	}

	variants := make([]*store.Task, 0, len(groups))
	for _, g := range groups {
		if g.VariantTaskID != nil {
			// Already materialized by an earlier spawn.
			continue
		}
		v, err := e.tasks.Create(ctx, store.TaskDraft{
			Kind:          parent.Kind,
			Topic:         parent.Topic,
			Status:        content.StatusPending,
			ClassID:       parent.ClassID,
			ParentID:      &parent.ID,
			GroupID:       &g.ID,
			Combo:         g.Combo,
			Purpose:       parent.Purpose,
			Grade:         parent.Grade,
			Subject:       parent.Subject,
			LengthMinutes: parent.LengthMinutes,
			QuestionType:  parent.QuestionType,
			NumQuestions:  parent.NumQuestions,
		})
		if err != nil {
			return fmt.Errorf("create variant for group %d: %w", g.ID, err)
		}
		if err := e.groups.SetVariantTask(ctx, g.ID, v.ID); err != nil {
			return fmt.Errorf("bind variant %d to group %d: %w", v.ID, g.ID, err)
		}
		variants = append(variants, v)
	}

	// Settle-all join: every goroutine returns nil and records its own
	// terminal state, so a failed sibling can't cancel the rest.
	var run errgroup.Group
	run.SetLimit(e.concurrency)
	for _, v := range variants {
		run.Go(func() error {
			e.runVariant(ctx, v)
			return nil
		})
	}
	run.Wait()

	_, err = e.Repair(ctx, parentID)
	return err
}

// Repair recomputes the parent's status from its current variants and
// persists the result. It is idempotent and safe to invoke while sibling
// generation is still in flight: a mid-generation call legitimately
// reports generating and a later call settles the terminal state.
func (e *Engine) Repair(ctx context.Context, parentID int) (*store.Task, error) {
	parent, err := e.tasks.Get(ctx, parentID)
	if err != nil {
		return nil, fmt.Errorf("load parent task %d: %w", parentID, err)
	}

	variants, err := e.tasks.VariantsOf(ctx, parentID)
	if err != nil {
		return nil, fmt.Errorf("load variants of task %d: %w", parentID, err)
	}

	out := Reconcile(parent, variants)
	if !out.Changed {
		return parent, nil
	}

	if out.Promote != nil {
		if err := e.tasks.SetPayload(ctx, parentID, *out.Promote, out.Status); err != nil {
			return nil, fmt.Errorf("promote payload to task %d: %w", parentID, err)
		}
		parent.Payload = *out.Promote
	} else if err := e.tasks.UpdateStatus(ctx, parentID, out.Status); err != nil {
		return nil, fmt.Errorf("update task %d status: %w", parentID, err)
	}
	parent.Status = out.Status

	slog.Info("parent reconciled", "task", parentID, "status", out.Status, "variants", len(variants))
	return parent, nil
}

// runVariant drives one variant to a terminal state. Errors are recorded
// on the variant, never returned: siblings keep running. There are no
// retries at this layer and no cancellation once generating.
func (e *Engine) runVariant(ctx context.Context, v *store.Task) {
	if err := e.tasks.UpdateStatus(ctx, v.ID, content.StatusGenerating); err != nil {
		slog.Error("variant start failed", "variant", v.ID, "error", err)
		return
	}

	payload, err := e.generate(ctx, v)
	if err != nil {
		slog.Warn("variant failed", "variant", v.ID, "combo", v.Combo.Name, "error", err)
		if serr := e.tasks.UpdateStatus(ctx, v.ID, content.StatusFailed); serr != nil {
			slog.Error("variant status write failed", "variant", v.ID, "error", serr)
		}
		return
	}

	if err := e.tasks.SetPayload(ctx, v.ID, payload, content.StatusCompleted); err != nil {
		slog.Error("variant payload write failed", "variant", v.ID, "error", err)
	}
}

func (e *Engine) generate(ctx context.Context, v *store.Task) (content.Payload, error) {
	switch v.Kind {
	case content.KindLesson:
		lesson, err := e.generateLesson(ctx, v)
		if err != nil {
			return content.Payload{}, err
		}
		return content.Payload{Lesson: lesson}, nil
	case content.KindQuiz:
		quiz, err := e.generateQuiz(ctx, v)
		if err != nil {
			return content.Payload{}, err
		}
		return content.Payload{Quiz: quiz}, nil
	default:
		return content.Payload{}, fmt.Errorf("unknown task kind %q", v.Kind)
	}
}

// generateLesson runs the script step, then fans out image and speech
// generation per slide. The two fans run concurrently with each other. A
// script failure fails the variant; a per-slide media failure only leaves
// that slide's URL empty.
func (e *Engine) generateLesson(ctx context.Context, v *store.Task) (*content.LessonData, error) {
	script, err := e.backend.GenerateScript(ctx, v.Topic, v.LengthMinutes, v.Combo.Script)
	if err != nil {
		return nil, err
	}

	slides := make([]content.Slide, len(script.Slides))
	copy(slides, script.Slides)

	var media errgroup.Group
	for i := range slides {
		media.Go(func() error {
			url, err := e.backend.GenerateImage(ctx, slides[i].Script, slides[i].SlideNumber, v.Topic, v.Combo.Image)
			if err != nil {
				slog.Warn("slide image degraded", "variant", v.ID, "slide", slides[i].SlideNumber, "error", err)
				return nil
			}
			slides[i].ImageURL = url
			return nil
		})
		media.Go(func() error {
			url, err := e.backend.GenerateSpeech(ctx, slides[i].Script, "")
			if err != nil {
				slog.Warn("slide speech degraded", "variant", v.ID, "slide", slides[i].SlideNumber, "error", err)
				return nil
			}
			slides[i].SpeechURL = url
			return nil
		})
	}
	media.Wait()

	return &content.LessonData{Script: script.Script, Slides: slides}, nil
}

// generateQuiz runs the prompt step, then the dependent question step.
// Both are required. A question-count mismatch is reported, not failed.
func (e *Engine) generateQuiz(ctx context.Context, v *store.Task) (*content.QuizData, error) {
	prompt, err := e.backend.GenerateQuizPrompt(ctx, v.Topic, v.QuestionType, v.NumQuestions, v.Combo.QuizPrompt)
	if err != nil {
		return nil, err
	}

	result, err := e.backend.GenerateQuizQuestions(ctx, prompt, v.Topic, v.QuestionType, v.NumQuestions, v.Combo.QuizQuestions)
	if err != nil {
		return nil, err
	}

	if len(result.Questions) != v.NumQuestions {
		slog.Warn("question count mismatch",
			"variant", v.ID, "requested", v.NumQuestions, "returned", len(result.Questions))
	}

	return &content.QuizData{Prompt: prompt, Questions: result.Questions}, nil
}
