package selection

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/samacademy/cohortgen/internal/content"
	"github.com/samacademy/cohortgen/internal/store"
)

// Combined-score weights over a session's raw aggregate metrics.
const (
	focusWeight      = 0.4
	engagementWeight = 0.4
	thinkingWeight   = 0.2

	learnerHistoryLimit = 50
	globalHistoryLimit  = 200

	defaultCacheTTL = 5 * time.Minute
)

// Context carries everything the selector needs about the prospective group.
type Context struct {
	Kind    content.Kind
	Topic   string
	Purpose string
	Grade   string
	Subject string

	// Members are the learner IDs of the prospective group. Tier 1 votes
	// over their personal histories.
	Members []string

	// GroupIndex is the group's 0-based position, used by the round-robin
	// fallback.
	GroupIndex int
}

// Selector picks a model combo for a group. Selection only reads session
// history and never blocks on generation. It cannot fail: the round-robin
// tier always produces a combo.
type Selector struct {
	feedback store.FeedbackRepo
	cache    *ttlCache
}

// NewSelector creates a selector over the given session history.
func NewSelector(feedback store.FeedbackRepo) *Selector {
	return &Selector{
		feedback: feedback,
		cache:    newTTLCache(defaultCacheTTL, nil),
	}
}

// newSelectorWithClock is the test constructor with an injectable clock.
func newSelectorWithClock(feedback store.FeedbackRepo, ttl time.Duration, now func() time.Time) *Selector {
	return &Selector{
		feedback: feedback,
		cache:    newTTLCache(ttl, now),
	}
}

// Select returns the combo for the group described by sel. Strategies are
// evaluated in order; the first that produces a combo wins.
func (s *Selector) Select(ctx context.Context, sel Context) content.Combo {
	strategies := []func(context.Context, Context) (content.Combo, bool){
		s.learnerVote,
		s.globalRecommendation,
	}
	for _, strategy := range strategies {
		if combo, ok := strategy(ctx, sel); ok {
			return combo
		}
	}
	return s.roundRobin(sel)
}

// learnerVote is tier 1: each group member votes for their personal
// best-performing model; a plurality maps to a catalogue combo whose
// primary role matches the winning provider and model.
func (s *Selector) learnerVote(ctx context.Context, sel Context) (content.Combo, bool) {
	filter := store.FeedbackFilter{Kind: sel.Kind, Grade: sel.Grade, Subject: sel.Subject}
	votes := newTally()

	for _, learner := range sel.Members {
		history, err := s.feedback.RecentByLearner(ctx, learner, filter, learnerHistoryLimit)
		if err != nil {
			slog.Warn("learner vote skipped", "learner", learner, "error", err)
			continue
		}
		if ref, ok := bestModel(sel.Kind, history); ok {
			votes.add(ref.String(), ref)
		}
	}

	winner, ok := votes.best()
	if !ok {
		return content.Combo{}, false
	}
	return matchCatalogue(sel.Kind, winner, true)
}

// globalRecommendation is tier 2: the same combined score over recent
// sessions system-wide, matched to the catalogue by provider only. Results
// are cached per context for a few minutes.
func (s *Selector) globalRecommendation(ctx context.Context, sel Context) (content.Combo, bool) {
	key := cacheKey(sel)
	if rec, hit := s.cache.get(key); hit {
		return rec.combo, rec.ok
	}

	combo, ok := s.computeGlobal(ctx, sel)
	s.cache.put(key, combo, ok)
	return combo, ok
}

func (s *Selector) computeGlobal(ctx context.Context, sel Context) (content.Combo, bool) {
	filter := store.FeedbackFilter{Kind: sel.Kind, Grade: sel.Grade, Subject: sel.Subject}
	history, err := s.feedback.RecentGlobal(ctx, filter, globalHistoryLimit)
	if err != nil {
		slog.Warn("global recommendation skipped", "error", err)
		return content.Combo{}, false
	}

	scores := newScoreTally()
	for _, fb := range history {
		ref := primaryRole(sel.Kind, fb.Combo)
		if ref.IsZero() {
			continue
		}
		scores.add(ref.Provider, combinedScore(fb))
	}

	provider, ok := scores.best()
	if !ok {
		return content.Combo{}, false
	}
	return matchCatalogue(sel.Kind, content.ModelRef{Provider: provider}, false)
}

// roundRobin is tier 3: cycle deterministically through the catalogue so
// every group gets a combo even with zero history.
func (s *Selector) roundRobin(sel Context) content.Combo {
	cat := Catalogue(sel.Kind)
	idx := sel.GroupIndex % len(cat)
	if idx < 0 {
		idx += len(cat)
	}
	return cat[idx]
}

// bestModel returns the model with the highest mean combined score across
// a learner's history.
func bestModel(kind content.Kind, history []*store.Feedback) (content.ModelRef, bool) {
	scores := newScoreTally()
	refs := make(map[string]content.ModelRef)

	for _, fb := range history {
		ref := primaryRole(kind, fb.Combo)
		if ref.IsZero() {
			continue
		}
		key := ref.String()
		refs[key] = ref
		scores.add(key, combinedScore(fb))
	}

	key, ok := scores.best()
	if !ok {
		return content.ModelRef{}, false
	}
	return refs[key], true
}

// matchCatalogue maps a winning provider (and optionally model) to a
// catalogue combo via its primary role. Model matching is a
// case-insensitive substring test so "gpt-4o" matches "gpt-4o-2024-11-20".
func matchCatalogue(kind content.Kind, ref content.ModelRef, matchModel bool) (content.Combo, bool) {
	for _, c := range Catalogue(kind) {
		role := primaryRole(kind, c)
		if role.Provider != ref.Provider {
			continue
		}
		if !matchModel {
			return c, true
		}
		a, b := strings.ToLower(role.Model), strings.ToLower(ref.Model)
		if strings.Contains(a, b) || strings.Contains(b, a) {
			return c, true
		}
	}
	return content.Combo{}, false
}

// combinedScore blends a session's raw aggregate metrics into one number.
// Missing metrics contribute a neutral midpoint.
func combinedScore(fb *store.Feedback) float64 {
	return focusWeight*rawOr(fb, "averageFocusScore", 50) +
		engagementWeight*rawOr(fb, "averageEngagementScore", 50) +
		thinkingWeight*rawOr(fb, "averageThinkingIntensity", 50)
}

func rawOr(fb *store.Feedback, key string, fallback float64) float64 {
	if v, ok := fb.RawMetrics[key]; ok {
		return v
	}
	return fallback
}

func cacheKey(sel Context) string {
	return fmt.Sprintf("%s|%s|%s", sel.Kind, sel.Grade, sel.Subject)
}

// tally counts votes in insertion order so ties resolve to the
// first-encountered key.
type tally struct {
	order  []string
	counts map[string]int
	refs   map[string]content.ModelRef
}

func newTally() *tally {
	return &tally{counts: make(map[string]int), refs: make(map[string]content.ModelRef)}
}

func (t *tally) add(key string, ref content.ModelRef) {
	if _, seen := t.counts[key]; !seen {
		t.order = append(t.order, key)
		t.refs[key] = ref
	}
	t.counts[key]++
}

func (t *tally) best() (content.ModelRef, bool) {
	bestKey, bestCount := "", 0
	for _, key := range t.order {
		if t.counts[key] > bestCount {
			bestKey, bestCount = key, t.counts[key]
		}
	}
	if bestCount == 0 {
		return content.ModelRef{}, false
	}
	return t.refs[bestKey], true
}

// scoreTally averages scores per key in insertion order.
type scoreTally struct {
	order  []string
	sums   map[string]float64
	counts map[string]int
}

func newScoreTally() *scoreTally {
	return &scoreTally{sums: make(map[string]float64), counts: make(map[string]int)}
}

func (t *scoreTally) add(key string, score float64) {
	if _, seen := t.counts[key]; !seen {
		t.order = append(t.order, key)
	}
	t.sums[key] += score
	t.counts[key]++
}

func (t *scoreTally) best() (string, bool) {
	bestKey, bestMean, found := "", 0.0, false
	for _, key := range t.order {
		mean := t.sums[key] / float64(t.counts[key])
		if !found || mean > bestMean {
			bestKey, bestMean, found = key, mean, true
		}
	}
	return bestKey, found
}
