package feedback

import "github.com/samacademy/cohortgen/internal/vitals"

// Fatigue trend buckets.
const (
	TrendRising  = "rising"
	TrendStable  = "stable"
	TrendFalling = "falling"
)

// neutral is what a missing sub-metric contributes instead of propagating
// absence into the blend.
const neutral = 0.5

// Signals are the six normalized pedagogical scores derived from one
// session's raw metrics. All numeric scores live in [0,1].
type Signals struct {
	Clarity       float64
	Engagement    float64
	CognitiveLoad float64
	AttentionSpan float64
	Confidence    float64
	FatigueTrend  string
	FatigueSlope  float64
}

// Normalize converts aggregated raw metrics into bounded semantic scores.
// Pure function: same metrics in, same signals out.
func Normalize(m *vitals.Metrics) Signals {
	return Signals{
		Clarity:       clarityScore(m),
		Engagement:    engagementScore(m),
		CognitiveLoad: cognitiveLoadScore(m),
		AttentionSpan: attentionSpanScore(m),
		Confidence:    confidenceScore(m),
		FatigueTrend:  fatigueTrend(m),
		FatigueSlope:  FatigueSlope(m.Samples),
	}
}

// clarityScore blends focus, capped thinking intensity, and breathing
// steadiness.
func clarityScore(m *vitals.Metrics) float64 {
	focus := component(m.AverageFocusScore, func(v float64) float64 { return v / 100 })
	thinking := component(m.AverageThinkingIntensity, func(v float64) float64 { return min(v, 80) / 80 })
	breath := component(m.BreathingRateStdDev, func(v float64) float64 { return max(0, 1-v/5) })
	return clamp(0.4*focus + 0.4*thinking + 0.2*breath)
}

// engagementScore blends the engagement reading with heart-rate band and
// heart-rate steadiness.
func engagementScore(m *vitals.Metrics) float64 {
	eng := component(m.AverageEngagementScore, func(v float64) float64 { return v / 100 })
	band := component(m.AverageHeartRate, heartRateBand)
	steady := component(m.HeartRateStdDev, func(v float64) float64 { return max(0, 1-v/10) })
	return clamp(0.6*eng + 0.2*band + 0.2*steady)
}

// heartRateBand scores how close the session's heart rate sat to the
// engaged-but-calm range.
func heartRateBand(hr float64) float64 {
	switch {
	case hr >= 70 && hr <= 90:
		return 1.0
	case (hr >= 60 && hr < 70) || (hr > 90 && hr <= 100):
		return 0.8
	default:
		return 0.5
	}
}

// fatigueTrend accumulates fixed-threshold adders over a neutral base and
// buckets the result.
func fatigueTrend(m *vitals.Metrics) string {
	score := neutral

	if m.AverageBreathingRate != nil {
		switch br := *m.AverageBreathingRate; {
		case br > 20:
			score += 0.2
		case br > 16:
			score += 0.1
		}
	}
	if m.BreathingRateStdDev != nil && *m.BreathingRateStdDev > 3 {
		score += 0.1
	}
	if m.HeartRateStdDev != nil {
		switch sd := *m.HeartRateStdDev; {
		case sd > 12:
			score += 0.2
		case sd > 8:
			score += 0.1
		}
	}

	switch {
	case score > 0.7:
		return TrendRising
	case score < 0.3:
		return TrendFalling
	default:
		return TrendStable
	}
}

// cognitiveLoadScore weights thinking intensity against physiological
// variability.
func cognitiveLoadScore(m *vitals.Metrics) float64 {
	thinking := component(m.AverageThinkingIntensity, func(v float64) float64 { return v / 100 })
	hrVar := component(m.HeartRateStdDev, func(v float64) float64 { return min(v/10, 1) })
	brVar := component(m.BreathingRateStdDev, func(v float64) float64 { return min(v/5, 1) })
	return clamp(0.7*thinking + 0.3*(hrVar+brVar)/2)
}

// attentionSpanScore blends focus with heart and breathing stability.
func attentionSpanScore(m *vitals.Metrics) float64 {
	focus := component(m.AverageFocusScore, func(v float64) float64 { return v / 100 })
	hrStable := component(m.HeartRateStdDev, func(v float64) float64 { return max(0, 1-v/10) })
	brStable := component(m.BreathingRateStdDev, func(v float64) float64 { return max(0, 1-v/5) })
	return clamp(0.6*focus + 0.4*(hrStable+brStable)/2)
}

// confidenceScore blends focus, engagement, and a thinking-intensity band
// rewarding deliberate but not strained effort.
func confidenceScore(m *vitals.Metrics) float64 {
	focus := component(m.AverageFocusScore, func(v float64) float64 { return v / 100 })
	eng := component(m.AverageEngagementScore, func(v float64) float64 { return v / 100 })
	band := component(m.AverageThinkingIntensity, thinkingBand)
	return clamp(0.4*focus + 0.4*eng + 0.2*band)
}

func thinkingBand(th float64) float64 {
	switch {
	case th >= 40 && th <= 70:
		return 1.0
	case (th >= 30 && th < 40) || (th > 70 && th <= 80):
		return 0.8
	default:
		return 0.5
	}
}

// FatigueSlope fits a least-squares line to the per-sample breathing rate
// over sample index. Fewer than two samples give no trend: slope 0.
func FatigueSlope(samples []vitals.Sample) float64 {
	n := len(samples)
	if n < 2 {
		return 0
	}

	var sumX, sumY, sumXY, sumXX float64
	for i, s := range samples {
		x := float64(i)
		y := s.BreathingRate
		sumX += x
		sumY += y
		sumXY += x * y
		sumXX += x * x
	}

	fn := float64(n)
	denom := fn*sumXX - sumX*sumX
	if denom == 0 {
		return 0
	}
	return (fn*sumXY - sumX*sumY) / denom
}

// component applies scale to an optional metric, clamping the result, or
// yields the neutral midpoint when the metric is missing.
func component(v *float64, scale func(float64) float64) float64 {
	if v == nil {
		return neutral
	}
	return clamp(scale(*v))
}

func clamp(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
