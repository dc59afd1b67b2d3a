package generation

import (
	"context"

	"github.com/samacademy/cohortgen/internal/content"
)

// Backend is the generation capability the variant engine drives. Every
// call may fail; the engine decides per step whether a failure fails the
// variant or only degrades one slide.
type Backend interface {
	// GenerateScript produces the lesson narration split into slides.
	GenerateScript(ctx context.Context, topic string, lengthMinutes int, ref content.ModelRef) (*ScriptResult, error)

	// GenerateImage produces an illustration for one slide. An empty URL
	// with a nil error means the model declined to return an image.
	GenerateImage(ctx context.Context, slideScript string, slideNumber int, topic string, ref content.ModelRef) (string, error)

	// GenerateSpeech synthesizes narration audio and returns a URL to it.
	GenerateSpeech(ctx context.Context, text, voice string) (string, error)

	// GenerateQuizPrompt produces the intermediate prompt the question
	// step expands.
	GenerateQuizPrompt(ctx context.Context, topic, questionType string, numQuestions int, ref content.ModelRef) (string, error)

	// GenerateQuizQuestions expands a quiz prompt into questions.
	GenerateQuizQuestions(ctx context.Context, prompt, topic, questionType string, numQuestions int, ref content.ModelRef) (*QuizResult, error)
}

// ScriptResult is the output of the script step.
type ScriptResult struct {
	Script string          `json:"script"`
	Slides []content.Slide `json:"slides"`
}

// QuizResult is the output of the quiz questions step.
type QuizResult struct {
	Questions []content.QuizQuestion `json:"questions"`
}

// SlideCount derives how many slides a lesson of the given length gets.
// Two minutes of narration per slide, never fewer than three slides.
func SlideCount(lengthMinutes int) int {
	n := lengthMinutes / 2
	if n < 3 {
		n = 3
	}
	return n
}
