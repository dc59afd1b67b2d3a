package selection

import "github.com/samacademy/cohortgen/internal/content"

// LessonCatalogue is the static set of lesson combos, in round-robin order.
// Order is load-bearing: tier-3 fallback cycles through it by group index,
// and tie-breaks resolve to the earliest entry.
var LessonCatalogue = []content.Combo{
	{
		Name:   "gemini-flash-visual",
		Script: content.ModelRef{Provider: "gemini", Model: "gemini-2.5-flash", Name: "Gemini 2.5 Flash"},
		Image:  content.ModelRef{Provider: "gemini", Model: "gemini-2.5-flash-image", Name: "Gemini 2.5 Flash Image"},
	},
	{
		Name:   "gpt-4o-standard",
		Script: content.ModelRef{Provider: "openai", Model: "gpt-4o", Name: "GPT-4o"},
		Image:  content.ModelRef{Provider: "openai", Model: "gpt-image-1", Name: "GPT Image 1"},
	},
	{
		Name:   "claude-sonnet-rich",
		Script: content.ModelRef{Provider: "anthropic", Model: "claude-3-7-sonnet-20250219", Name: "Claude 3.7 Sonnet"},
		Image:  content.ModelRef{Provider: "openai", Model: "gpt-image-1", Name: "GPT Image 1"},
	},
}

// QuizCatalogue is the static set of quiz combos, in round-robin order.
var QuizCatalogue = []content.Combo{
	{
		Name:          "gemini-flash-quiz",
		QuizPrompt:    content.ModelRef{Provider: "gemini", Model: "gemini-2.5-flash-lite", Name: "Gemini 2.5 Flash Lite"},
		QuizQuestions: content.ModelRef{Provider: "gemini", Model: "gemini-2.5-flash", Name: "Gemini 2.5 Flash"},
	},
	{
		Name:          "gpt-4o-quiz",
		QuizPrompt:    content.ModelRef{Provider: "openai", Model: "gpt-4o-mini", Name: "GPT-4o mini"},
		QuizQuestions: content.ModelRef{Provider: "openai", Model: "gpt-4o", Name: "GPT-4o"},
	},
	{
		Name:          "claude-sonnet-quiz",
		QuizPrompt:    content.ModelRef{Provider: "anthropic", Model: "claude-3-5-haiku-latest", Name: "Claude 3.5 Haiku"},
		QuizQuestions: content.ModelRef{Provider: "anthropic", Model: "claude-3-7-sonnet-20250219", Name: "Claude 3.7 Sonnet"},
	},
}

// Catalogue returns the static combo list for a task kind.
func Catalogue(kind content.Kind) []content.Combo {
	if kind == content.KindQuiz {
		return QuizCatalogue
	}
	return LessonCatalogue
}

// primaryRole returns the model reference of the role that dominates a
// combo's output quality for the given kind: the script model for lessons,
// the question model for quizzes.
func primaryRole(kind content.Kind, c content.Combo) content.ModelRef {
	if kind == content.KindQuiz {
		return c.QuizQuestions
	}
	return c.Script
}
