package scoring

import (
	"context"
	"math"
	"sync"
	"testing"

	"github.com/samacademy/cohortgen/internal/content"
	"github.com/samacademy/cohortgen/internal/store"
)

const epsilon = 0.0001

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < epsilon
}

type memProfileRepo struct {
	mu       sync.Mutex
	nextID   int
	profiles map[store.ProfileKey]*store.Profile
}

func newMemProfileRepo() *memProfileRepo {
	return &memProfileRepo{nextID: 1, profiles: make(map[store.ProfileKey]*store.Profile)}
}

func (r *memProfileRepo) ByKey(_ context.Context, key store.ProfileKey) (*store.Profile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.profiles[key]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *memProfileRepo) Create(_ context.Context, p *store.Profile) (*store.Profile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *p
	cp.ID = r.nextID
	r.nextID++
	r.profiles[cp.Key] = &cp
	out := cp
	return &out, nil
}

func (r *memProfileRepo) Update(_ context.Context, p *store.Profile) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *p
	r.profiles[cp.Key] = &cp
	return nil
}

func (r *memProfileRepo) SetStatus(_ context.Context, id int, status string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, p := range r.profiles {
		if p.ID == id {
			p.Status = status
			return nil
		}
	}
	return nil
}

func (r *memProfileRepo) List(_ context.Context) ([]*store.Profile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*store.Profile, 0, len(r.profiles))
	for _, p := range r.profiles {
		cp := *p
		out = append(out, &cp)
	}
	return out, nil
}

func sampleFeedback() *store.Feedback {
	return &store.Feedback{
		SessionID:     "sess-1",
		LearnerID:     "learner-1",
		ComboKey:      "openai/gpt-4o|openai/dall-e-3",
		Kind:          content.KindLesson,
		Topic:         "fractions",
		Purpose:       "revision",
		LengthBucket:  "medium",
		Grade:         "5",
		Subject:       "math",
		Clarity:       0.8,
		Engagement:    0.7,
		Confidence:    0.6,
		AttentionSpan: 0.9,
		FatigueSlope:  0.05,
	}
}

func TestUpdateProfile_FirstEventSeedsAverages(t *testing.T) {
	s := NewScorer(newMemProfileRepo())
	fb := sampleFeedback()

	res, err := s.UpdateProfile(context.Background(), fb)
	if err != nil {
		t.Fatalf("UpdateProfile: %v", err)
	}
	p := res.Profile

	if !almostEqual(p.ClarityAvg, fb.Clarity) {
		t.Errorf("ClarityAvg = %f, want %f", p.ClarityAvg, fb.Clarity)
	}
	if !almostEqual(p.EngagementAvg, fb.Engagement) {
		t.Errorf("EngagementAvg = %f, want %f", p.EngagementAvg, fb.Engagement)
	}
	if !almostEqual(p.FatigueSlope, fb.FatigueSlope) {
		t.Errorf("FatigueSlope = %f, want %f", p.FatigueSlope, fb.FatigueSlope)
	}
	if p.SessionCount != 1 {
		t.Errorf("SessionCount = %d, want 1", p.SessionCount)
	}
	if p.Status != store.ProfileExperimental {
		t.Errorf("Status = %s, want experimental", p.Status)
	}

	want := 0.3*0.8 + 0.3*0.7 + 0.2*0.6 + 0.2*0.9
	if !almostEqual(p.PerformanceScore, want) {
		t.Errorf("PerformanceScore = %f, want %f", p.PerformanceScore, want)
	}
}

func TestUpdateProfile_IdenticalSecondEventKeepsAverages(t *testing.T) {
	s := NewScorer(newMemProfileRepo())
	ctx := context.Background()

	first, err := s.UpdateProfile(ctx, sampleFeedback())
	if err != nil {
		t.Fatalf("first update: %v", err)
	}
	second, err := s.UpdateProfile(ctx, sampleFeedback())
	if err != nil {
		t.Fatalf("second update: %v", err)
	}

	// (1-a)·x + a·x = x: identical samples leave the averages unchanged.
	if !almostEqual(second.Profile.ClarityAvg, first.Profile.ClarityAvg) {
		t.Errorf("ClarityAvg drifted: %f vs %f", second.Profile.ClarityAvg, first.Profile.ClarityAvg)
	}
	if !almostEqual(second.Profile.PerformanceScore, first.Profile.PerformanceScore) {
		t.Errorf("PerformanceScore drifted: %f vs %f", second.Profile.PerformanceScore, first.Profile.PerformanceScore)
	}
	if second.Profile.SessionCount != 2 {
		t.Errorf("SessionCount = %d, want 2", second.Profile.SessionCount)
	}
	if second.PreviousSessions != 1 {
		t.Errorf("PreviousSessions = %d, want 1", second.PreviousSessions)
	}
	if !almostEqual(second.PreviousScore, first.Profile.PerformanceScore) {
		t.Errorf("PreviousScore = %f, want %f", second.PreviousScore, first.Profile.PerformanceScore)
	}
}

func TestUpdateProfile_EMAFormula(t *testing.T) {
	s := NewScorer(newMemProfileRepo())
	ctx := context.Background()

	if _, err := s.UpdateProfile(ctx, sampleFeedback()); err != nil {
		t.Fatalf("first update: %v", err)
	}

	fb := sampleFeedback()
	fb.Clarity = 0.4
	res, err := s.UpdateProfile(ctx, fb)
	if err != nil {
		t.Fatalf("second update: %v", err)
	}

	want := 0.8*0.8 + 0.2*0.4
	if !almostEqual(res.Profile.ClarityAvg, want) {
		t.Errorf("ClarityAvg = %f, want %f", res.Profile.ClarityAvg, want)
	}
}

func TestUpdateProfile_FatiguePenaltyApplied(t *testing.T) {
	s := NewScorer(newMemProfileRepo())
	fb := sampleFeedback()
	fb.FatigueSlope = 0.5

	res, err := s.UpdateProfile(context.Background(), fb)
	if err != nil {
		t.Fatalf("UpdateProfile: %v", err)
	}

	base := 0.3*0.8 + 0.3*0.7 + 0.2*0.6 + 0.2*0.9
	if !almostEqual(res.Profile.PerformanceScore, base*0.9) {
		t.Errorf("PerformanceScore = %f, want %f", res.Profile.PerformanceScore, base*0.9)
	}
}

func TestUpdateProfile_ActivatesAfterFiveSessions(t *testing.T) {
	s := NewScorer(newMemProfileRepo())
	ctx := context.Background()

	var last *UpdateResult
	for i := 0; i < 5; i++ {
		var err error
		last, err = s.UpdateProfile(ctx, sampleFeedback())
		if err != nil {
			t.Fatalf("update %d: %v", i, err)
		}
		if i < 4 && last.Profile.Status != store.ProfileExperimental {
			t.Fatalf("session %d: Status = %s, want experimental", i+1, last.Profile.Status)
		}
	}
	if last.Profile.Status != store.ProfileActive {
		t.Errorf("Status after 5 sessions = %s, want active", last.Profile.Status)
	}
}

func TestUpdateProfile_DistinctKeysSeparateProfiles(t *testing.T) {
	repo := newMemProfileRepo()
	s := NewScorer(repo)
	ctx := context.Background()

	if _, err := s.UpdateProfile(ctx, sampleFeedback()); err != nil {
		t.Fatalf("lesson update: %v", err)
	}
	fb := sampleFeedback()
	fb.Kind = content.KindQuiz
	if _, err := s.UpdateProfile(ctx, fb); err != nil {
		t.Fatalf("quiz update: %v", err)
	}

	all, _ := repo.List(ctx)
	if len(all) != 2 {
		t.Errorf("profiles = %d, want 2", len(all))
	}
}

func TestDeprecate(t *testing.T) {
	repo := newMemProfileRepo()
	s := NewScorer(repo)
	ctx := context.Background()

	res, err := s.UpdateProfile(ctx, sampleFeedback())
	if err != nil {
		t.Fatalf("UpdateProfile: %v", err)
	}

	if err := s.Deprecate(ctx, res.Profile.Key); err != nil {
		t.Fatalf("Deprecate: %v", err)
	}
	p, _ := repo.ByKey(ctx, res.Profile.Key)
	if p.Status != store.ProfileDeprecated {
		t.Errorf("Status = %s, want deprecated", p.Status)
	}

	if err := s.Deprecate(ctx, store.ProfileKey{ComboKey: "none"}); err == nil {
		t.Error("Deprecate on unknown key should fail")
	}
}

func TestLengthBucket(t *testing.T) {
	tests := []struct {
		minutes int
		want    string
	}{
		{5, "short"},
		{10, "short"},
		{11, "medium"},
		{20, "medium"},
		{21, "long"},
		{45, "long"},
	}
	for _, tt := range tests {
		if got := LengthBucket(tt.minutes); got != tt.want {
			t.Errorf("LengthBucket(%d) = %s, want %s", tt.minutes, got, tt.want)
		}
	}
}
