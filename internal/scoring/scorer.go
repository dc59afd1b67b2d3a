package scoring

import (
	"context"
	"fmt"
	"sync"

	"github.com/samacademy/cohortgen/internal/store"
)

// Alpha is the exponential moving average learning rate.
const Alpha = 0.2

// Performance score weights over the running averages.
const (
	clarityWeight    = 0.3
	engagementWeight = 0.3
	confidenceWeight = 0.2
	attentionWeight  = 0.2

	// fatiguePenalty discounts the score when the fatigue slope shows
	// sessions wearing learners down.
	fatiguePenalty       = 0.9
	fatigueSlopeCritical = 0.1
)

// experimentalSessions is how many sessions a new profile stays
// experimental before it is considered active.
const experimentalSessions = 5

// LengthBucket maps a task's length in minutes onto the coarse bucket the
// profile key uses.
func LengthBucket(minutes int) string {
	switch {
	case minutes <= 10:
		return "short"
	case minutes <= 20:
		return "medium"
	default:
		return "long"
	}
}

// Scorer maintains per-context performance profiles. It is the sole
// writer of the derived performance score.
type Scorer struct {
	profiles store.ProfileRepo

	mu    sync.Mutex
	locks map[store.ProfileKey]*sync.Mutex
}

// NewScorer creates a scorer over the given profile store.
func NewScorer(profiles store.ProfileRepo) *Scorer {
	return &Scorer{
		profiles: profiles,
		locks:    make(map[store.ProfileKey]*sync.Mutex),
	}
}

// UpdateResult reports a profile update, carrying the pre-update state the
// alert evaluator's regression check needs.
type UpdateResult struct {
	Profile          *store.Profile
	PreviousScore    float64
	PreviousSessions int
}

// UpdateProfile folds one feedback event into the profile for its
// composite key, creating the profile on first sight. Concurrent updates
// to the same key serialize on a per-key lock so no running average is
// lost.
func (s *Scorer) UpdateProfile(ctx context.Context, fb *store.Feedback) (*UpdateResult, error) {
	key := profileKey(fb)

	lock := s.keyLock(key)
	lock.Lock()
	defer lock.Unlock()

	p, err := s.profiles.ByKey(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("load profile: %w", err)
	}

	if p == nil {
		return s.createProfile(ctx, key, fb)
	}

	res := &UpdateResult{PreviousScore: p.PerformanceScore, PreviousSessions: p.SessionCount}

	// First sample set the slope directly; every later one is averaged in.
	p.ClarityAvg = ema(p.ClarityAvg, fb.Clarity)
	p.EngagementAvg = ema(p.EngagementAvg, fb.Engagement)
	p.ConfidenceAvg = ema(p.ConfidenceAvg, fb.Confidence)
	p.AttentionAvg = ema(p.AttentionAvg, fb.AttentionSpan)
	p.FatigueSlope = ema(p.FatigueSlope, fb.FatigueSlope)
	p.SessionCount++
	p.PerformanceScore = performanceScore(p)

	if p.Status == store.ProfileExperimental && p.SessionCount >= experimentalSessions {
		p.Status = store.ProfileActive
	}

	if err := s.profiles.Update(ctx, p); err != nil {
		return nil, fmt.Errorf("update profile: %w", err)
	}

	res.Profile = p
	return res, nil
}

func (s *Scorer) createProfile(ctx context.Context, key store.ProfileKey, fb *store.Feedback) (*UpdateResult, error) {
	p := &store.Profile{
		Key:           key,
		ClarityAvg:    fb.Clarity,
		EngagementAvg: fb.Engagement,
		ConfidenceAvg: fb.Confidence,
		AttentionAvg:  fb.AttentionSpan,
		FatigueSlope:  fb.FatigueSlope,
		SessionCount:  1,
		Status:        store.ProfileExperimental,
	}
	p.PerformanceScore = performanceScore(p)

	created, err := s.profiles.Create(ctx, p)
	if err != nil {
		return nil, fmt.Errorf("create profile: %w", err)
	}
	return &UpdateResult{Profile: created}, nil
}

// Deprecate marks a profile out of rotation. Profiles are never deleted.
func (s *Scorer) Deprecate(ctx context.Context, key store.ProfileKey) error {
	lock := s.keyLock(key)
	lock.Lock()
	defer lock.Unlock()

	p, err := s.profiles.ByKey(ctx, key)
	if err != nil {
		return fmt.Errorf("load profile: %w", err)
	}
	if p == nil {
		return fmt.Errorf("no profile for key %+v", key)
	}
	return s.profiles.SetStatus(ctx, p.ID, store.ProfileDeprecated)
}

func (s *Scorer) keyLock(key store.ProfileKey) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	lock, ok := s.locks[key]
	if !ok {
		lock = &sync.Mutex{}
		s.locks[key] = lock
	}
	return lock
}

func profileKey(fb *store.Feedback) store.ProfileKey {
	return store.ProfileKey{
		ComboKey:     fb.ComboKey,
		Topic:        fb.Topic,
		Purpose:      fb.Purpose,
		LengthBucket: fb.LengthBucket,
		Kind:         fb.Kind,
		Grade:        fb.Grade,
		Subject:      fb.Subject,
	}
}

func ema(old, sample float64) float64 {
	return (1-Alpha)*old + Alpha*sample
}

// performanceScore derives the single weighted score from the running
// averages. Recomputed on every mutation; never set independently.
func performanceScore(p *store.Profile) float64 {
	score := clarityWeight*p.ClarityAvg +
		engagementWeight*p.EngagementAvg +
		confidenceWeight*p.ConfidenceAvg +
		attentionWeight*p.AttentionAvg
	if p.FatigueSlope > fatigueSlopeCritical {
		score *= fatiguePenalty
	}
	return score
}
