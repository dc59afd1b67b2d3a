package feedback

import (
	"math"
	"testing"

	"github.com/samacademy/cohortgen/internal/vitals"
)

const epsilon = 0.001

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < epsilon
}

func TestNormalize_ClarityIdealInputs(t *testing.T) {
	m := &vitals.Metrics{
		AverageFocusScore:        vitals.F(100),
		AverageThinkingIntensity: vitals.F(60),
		BreathingRateStdDev:      vitals.F(0),
	}
	// 0.4·1.0 + 0.4·(60/80) + 0.2·1.0 = 0.4 + 0.3 + 0.2 = 0.9
	got := Normalize(m).Clarity
	if !almostEqual(got, 0.9) {
		t.Errorf("Clarity = %f, want 0.9", got)
	}
}

func TestNormalize_ClarityMaxesOut(t *testing.T) {
	m := &vitals.Metrics{
		AverageFocusScore:        vitals.F(100),
		AverageThinkingIntensity: vitals.F(80),
		BreathingRateStdDev:      vitals.F(0),
	}
	got := Normalize(m).Clarity
	if !almostEqual(got, 1.0) {
		t.Errorf("Clarity = %f, want 1.0", got)
	}
}

func TestNormalize_MissingMetricsYieldNeutralBlend(t *testing.T) {
	s := Normalize(&vitals.Metrics{})
	// Every component defaults to 0.5, so every weighted blend is 0.5.
	for name, v := range map[string]float64{
		"clarity":       s.Clarity,
		"engagement":    s.Engagement,
		"cognitiveLoad": s.CognitiveLoad,
		"attentionSpan": s.AttentionSpan,
		"confidence":    s.Confidence,
	} {
		if !almostEqual(v, 0.5) {
			t.Errorf("%s = %f, want neutral 0.5", name, v)
		}
	}
	if s.FatigueTrend != TrendStable {
		t.Errorf("FatigueTrend = %s, want stable", s.FatigueTrend)
	}
	if s.FatigueSlope != 0 {
		t.Errorf("FatigueSlope = %f, want 0", s.FatigueSlope)
	}
}

func TestNormalize_OutliersStayBounded(t *testing.T) {
	m := &vitals.Metrics{
		AverageFocusScore:        vitals.F(1e6),
		AverageEngagementScore:   vitals.F(1e6),
		AverageThinkingIntensity: vitals.F(1e6),
		AverageHeartRate:         vitals.F(1e6),
		AverageBreathingRate:     vitals.F(1e6),
		HeartRateStdDev:          vitals.F(1e6),
		BreathingRateStdDev:      vitals.F(1e6),
	}
	s := Normalize(m)
	for name, v := range map[string]float64{
		"clarity":       s.Clarity,
		"engagement":    s.Engagement,
		"cognitiveLoad": s.CognitiveLoad,
		"attentionSpan": s.AttentionSpan,
		"confidence":    s.Confidence,
	} {
		if v < 0 || v > 1 {
			t.Errorf("%s = %f, out of [0,1]", name, v)
		}
	}
}

func TestNormalize_EngagementHeartRateBands(t *testing.T) {
	tests := []struct {
		hr   float64
		band float64
	}{
		{80, 1.0},  // in [70,90]
		{70, 1.0},  // boundary
		{65, 0.8},  // [60,70)
		{95, 0.8},  // (90,100]
		{55, 0.5},  // below
		{120, 0.5}, // above
	}
	for _, tt := range tests {
		m := &vitals.Metrics{
			AverageEngagementScore: vitals.F(100),
			AverageHeartRate:       vitals.F(tt.hr),
			HeartRateStdDev:        vitals.F(0),
		}
		want := 0.6*1.0 + 0.2*tt.band + 0.2*1.0
		if got := Normalize(m).Engagement; !almostEqual(got, want) {
			t.Errorf("hr=%v: Engagement = %f, want %f", tt.hr, got, want)
		}
	}
}

func TestNormalize_ConfidenceThinkingBands(t *testing.T) {
	tests := []struct {
		thinking float64
		band     float64
	}{
		{55, 1.0}, // in [40,70]
		{35, 0.8}, // [30,40)
		{75, 0.8}, // (70,80]
		{10, 0.5},
		{95, 0.5},
	}
	for _, tt := range tests {
		m := &vitals.Metrics{
			AverageFocusScore:        vitals.F(100),
			AverageEngagementScore:   vitals.F(100),
			AverageThinkingIntensity: vitals.F(tt.thinking),
		}
		want := 0.4 + 0.4 + 0.2*tt.band
		if got := Normalize(m).Confidence; !almostEqual(got, want) {
			t.Errorf("thinking=%v: Confidence = %f, want %f", tt.thinking, got, want)
		}
	}
}

func TestNormalize_FatigueTrendBuckets(t *testing.T) {
	tests := []struct {
		name string
		m    *vitals.Metrics
		want string
	}{
		{
			name: "calm session stays stable",
			m: &vitals.Metrics{
				AverageBreathingRate: vitals.F(14),
				BreathingRateStdDev:  vitals.F(1),
				HeartRateStdDev:      vitals.F(4),
			},
			want: TrendStable,
		},
		{
			name: "elevated everything rises",
			m: &vitals.Metrics{
				AverageBreathingRate: vitals.F(22), // +0.2
				BreathingRateStdDev:  vitals.F(4),  // +0.1
				HeartRateStdDev:      vitals.F(14), // +0.2
			},
			want: TrendRising,
		},
		{
			name: "moderately elevated stays stable",
			m: &vitals.Metrics{
				AverageBreathingRate: vitals.F(18), // +0.1
				HeartRateStdDev:      vitals.F(9),  // +0.1
			},
			want: TrendStable,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := fatigueTrend(tt.m); got != tt.want {
				t.Errorf("fatigueTrend = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestFatigueSlope(t *testing.T) {
	if got := FatigueSlope(nil); got != 0 {
		t.Errorf("no samples: slope = %f, want 0", got)
	}
	if got := FatigueSlope([]vitals.Sample{{BreathingRate: 15}}); got != 0 {
		t.Errorf("one sample: slope = %f, want 0", got)
	}

	rising := []vitals.Sample{
		{BreathingRate: 14}, {BreathingRate: 16}, {BreathingRate: 18}, {BreathingRate: 20},
	}
	if got := FatigueSlope(rising); !almostEqual(got, 2.0) {
		t.Errorf("rising: slope = %f, want 2.0", got)
	}

	flat := []vitals.Sample{
		{BreathingRate: 15}, {BreathingRate: 15}, {BreathingRate: 15},
	}
	if got := FatigueSlope(flat); !almostEqual(got, 0) {
		t.Errorf("flat: slope = %f, want 0", got)
	}

	falling := []vitals.Sample{
		{BreathingRate: 20}, {BreathingRate: 18}, {BreathingRate: 16},
	}
	if got := FatigueSlope(falling); !almostEqual(got, -2.0) {
		t.Errorf("falling: slope = %f, want -2.0", got)
	}
}

func TestNormalize_CognitiveLoadHighThinkingHighVariability(t *testing.T) {
	m := &vitals.Metrics{
		AverageThinkingIntensity: vitals.F(100),
		HeartRateStdDev:          vitals.F(10), // var 1.0
		BreathingRateStdDev:      vitals.F(5),  // var 1.0
	}
	if got := Normalize(m).CognitiveLoad; !almostEqual(got, 1.0) {
		t.Errorf("CognitiveLoad = %f, want 1.0", got)
	}
}

func TestNormalize_AttentionSpanStableVitals(t *testing.T) {
	m := &vitals.Metrics{
		AverageFocusScore:   vitals.F(80),
		HeartRateStdDev:     vitals.F(0),
		BreathingRateStdDev: vitals.F(0),
	}
	// 0.6·0.8 + 0.4·1.0 = 0.88
	if got := Normalize(m).AttentionSpan; !almostEqual(got, 0.88) {
		t.Errorf("AttentionSpan = %f, want 0.88", got)
	}
}
