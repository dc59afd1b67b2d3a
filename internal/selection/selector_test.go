package selection

import (
	"context"
	"testing"
	"time"

	"github.com/samacademy/cohortgen/internal/content"
	"github.com/samacademy/cohortgen/internal/store"
)

// fakeFeedbackRepo serves canned history and counts queries.
type fakeFeedbackRepo struct {
	byLearner   map[string][]*store.Feedback
	global      []*store.Feedback
	globalCalls int
}

func (f *fakeFeedbackRepo) Append(_ context.Context, fb *store.Feedback) (*store.Feedback, error) {
	return fb, nil
}

func (f *fakeFeedbackRepo) RecentByLearner(_ context.Context, learnerID string, _ store.FeedbackFilter, limit int) ([]*store.Feedback, error) {
	h := f.byLearner[learnerID]
	if len(h) > limit {
		h = h[:limit]
	}
	return h, nil
}

func (f *fakeFeedbackRepo) RecentGlobal(_ context.Context, _ store.FeedbackFilter, limit int) ([]*store.Feedback, error) {
	f.globalCalls++
	h := f.global
	if len(h) > limit {
		h = h[:limit]
	}
	return h, nil
}

func (f *fakeFeedbackRepo) AttachSurvey(_ context.Context, _ int, _ string) error {
	return nil
}

func lessonFeedback(provider, model string, focus, engagement, thinking float64) *store.Feedback {
	return &store.Feedback{
		Kind:  content.KindLesson,
		Combo: content.Combo{Script: content.ModelRef{Provider: provider, Model: model}},
		RawMetrics: map[string]float64{
			"averageFocusScore":        focus,
			"averageEngagementScore":   engagement,
			"averageThinkingIntensity": thinking,
		},
	}
}

func lessonContext(members []string, idx int) Context {
	return Context{
		Kind:       content.KindLesson,
		Topic:      "photosynthesis",
		Grade:      "5",
		Subject:    "science",
		Members:    members,
		GroupIndex: idx,
	}
}

func TestSelect_ZeroHistoryFallsToRoundRobin(t *testing.T) {
	s := NewSelector(&fakeFeedbackRepo{})

	seen := make(map[string]bool)
	for i := range LessonCatalogue {
		combo := s.Select(context.Background(), lessonContext([]string{"l1"}, i))
		if combo.IsZero() {
			t.Fatalf("group %d: expected a catalogue combo", i)
		}
		if combo.Name != LessonCatalogue[i].Name {
			t.Fatalf("group %d: expected %s, got %s", i, LessonCatalogue[i].Name, combo.Name)
		}
		seen[combo.Name] = true
	}
	if len(seen) != len(LessonCatalogue) {
		t.Fatalf("round-robin should cover every entry once, covered %d", len(seen))
	}
}

func TestSelect_RoundRobinWrapsAroundCatalogue(t *testing.T) {
	s := NewSelector(&fakeFeedbackRepo{})
	n := len(LessonCatalogue)

	first := s.Select(context.Background(), lessonContext(nil, 0))
	wrapped := s.Select(context.Background(), lessonContext(nil, n))
	if first.Name != wrapped.Name {
		t.Fatalf("index n should wrap to index 0: %s vs %s", first.Name, wrapped.Name)
	}
}

func TestSelect_LearnerVotePlurality(t *testing.T) {
	repo := &fakeFeedbackRepo{
		byLearner: map[string][]*store.Feedback{
			// Two learners did best on the anthropic script model.
			"l1": {lessonFeedback("anthropic", "claude-3-7-sonnet-20250219", 90, 90, 60)},
			"l2": {lessonFeedback("anthropic", "claude-3-7-sonnet-20250219", 85, 80, 55)},
			// One did best on openai.
			"l3": {lessonFeedback("openai", "gpt-4o", 95, 95, 70)},
		},
	}
	s := NewSelector(repo)

	combo := s.Select(context.Background(), lessonContext([]string{"l1", "l2", "l3"}, 0))
	if combo.Name != "claude-sonnet-rich" {
		t.Fatalf("expected anthropic plurality to win, got %s", combo.Name)
	}
}

func TestSelect_LearnerVoteModelSubstringMatch(t *testing.T) {
	repo := &fakeFeedbackRepo{
		byLearner: map[string][]*store.Feedback{
			// Dated snapshot of the catalogue's gpt-4o model.
			"l1": {lessonFeedback("openai", "gpt-4o-2024-11-20", 90, 90, 60)},
		},
	}
	s := NewSelector(repo)

	combo := s.Select(context.Background(), lessonContext([]string{"l1"}, 0))
	if combo.Name != "gpt-4o-standard" {
		t.Fatalf("expected substring model match, got %s", combo.Name)
	}
}

func TestSelect_LearnerVotePicksPersonalBestModel(t *testing.T) {
	repo := &fakeFeedbackRepo{
		byLearner: map[string][]*store.Feedback{
			"l1": {
				lessonFeedback("openai", "gpt-4o", 40, 40, 40),
				lessonFeedback("gemini", "gemini-2.5-flash", 95, 95, 60),
			},
		},
	}
	s := NewSelector(repo)

	combo := s.Select(context.Background(), lessonContext([]string{"l1"}, 0))
	if combo.Name != "gemini-flash-visual" {
		t.Fatalf("expected the learner's best model to win, got %s", combo.Name)
	}
}

func TestSelect_VoteTieResolvesToFirstEncountered(t *testing.T) {
	repo := &fakeFeedbackRepo{
		byLearner: map[string][]*store.Feedback{
			"l1": {lessonFeedback("openai", "gpt-4o", 90, 90, 60)},
			"l2": {lessonFeedback("anthropic", "claude-3-7-sonnet-20250219", 90, 90, 60)},
		},
	}
	s := NewSelector(repo)

	// l1 is iterated first, so openai is the first-encountered vote key.
	combo := s.Select(context.Background(), lessonContext([]string{"l1", "l2"}, 0))
	if combo.Name != "gpt-4o-standard" {
		t.Fatalf("expected first-encountered tie-break, got %s", combo.Name)
	}
}

func TestSelect_GlobalRecommendationByProvider(t *testing.T) {
	repo := &fakeFeedbackRepo{
		// Members have no personal history; tier 2 sees global sessions
		// favoring gemini.
		global: []*store.Feedback{
			lessonFeedback("gemini", "gemini-2.5-flash", 92, 90, 65),
			lessonFeedback("gemini", "gemini-2.5-flash", 88, 85, 60),
			lessonFeedback("openai", "gpt-4o", 50, 50, 50),
		},
	}
	s := NewSelector(repo)

	combo := s.Select(context.Background(), lessonContext([]string{"l1"}, 0))
	if combo.Name != "gemini-flash-visual" {
		t.Fatalf("expected gemini global recommendation, got %s", combo.Name)
	}
}

func TestSelect_GlobalRecommendationCached(t *testing.T) {
	repo := &fakeFeedbackRepo{
		global: []*store.Feedback{
			lessonFeedback("gemini", "gemini-2.5-flash", 92, 90, 65),
		},
	}

	now := time.Unix(1000, 0)
	clock := func() time.Time { return now }
	s := newSelectorWithClock(repo, time.Minute, clock)

	sel := lessonContext(nil, 0)
	s.Select(context.Background(), sel)
	s.Select(context.Background(), sel)
	if repo.globalCalls != 1 {
		t.Fatalf("expected second select to hit the cache, got %d queries", repo.globalCalls)
	}

	now = now.Add(2 * time.Minute)
	s.Select(context.Background(), sel)
	if repo.globalCalls != 2 {
		t.Fatalf("expected recompute after TTL expiry, got %d queries", repo.globalCalls)
	}
}

func TestSelect_QuizContextUsesQuizCatalogue(t *testing.T) {
	s := NewSelector(&fakeFeedbackRepo{})

	combo := s.Select(context.Background(), Context{Kind: content.KindQuiz, GroupIndex: 0})
	if combo.Name != QuizCatalogue[0].Name {
		t.Fatalf("expected quiz catalogue entry, got %s", combo.Name)
	}
	if combo.QuizQuestions.IsZero() {
		t.Fatal("quiz combo must populate the question role")
	}
}
