// Package vitals defines the biometric capability boundary. Signal
// extraction hardware lives behind the Probe interface; this package only
// carries its aggregated output.
package vitals

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
)

// Metrics is one session's aggregated physiological readings. Every field
// is optional: a probe may not capture all channels, and the normalizer
// substitutes neutral components for missing ones.
type Metrics struct {
	AverageFocusScore        *float64 `json:"averageFocusScore,omitempty"`
	AverageEngagementScore   *float64 `json:"averageEngagementScore,omitempty"`
	AverageThinkingIntensity *float64 `json:"averageThinkingIntensity,omitempty"`
	AverageHeartRate         *float64 `json:"averageHeartRate,omitempty"`
	AverageBreathingRate     *float64 `json:"averageBreathingRate,omitempty"`
	HeartRateStdDev          *float64 `json:"heartRateStdDev,omitempty"`
	BreathingRateStdDev      *float64 `json:"breathingRateStdDev,omitempty"`

	// Samples are the per-reading values the fatigue slope regresses over.
	Samples []Sample `json:"samples,omitempty"`
}

// Sample is one raw probe reading.
type Sample struct {
	HeartRate     float64 `json:"heartRate"`
	BreathingRate float64 `json:"breathingRate"`
}

// Raw flattens the aggregate fields into the map persisted alongside the
// normalized signals. Missing fields are omitted, not zeroed.
func (m *Metrics) Raw() map[string]float64 {
	out := make(map[string]float64)
	put := func(key string, v *float64) {
		if v != nil {
			out[key] = *v
		}
	}
	put("averageFocusScore", m.AverageFocusScore)
	put("averageEngagementScore", m.AverageEngagementScore)
	put("averageThinkingIntensity", m.AverageThinkingIntensity)
	put("averageHeartRate", m.AverageHeartRate)
	put("averageBreathingRate", m.AverageBreathingRate)
	put("heartRateStdDev", m.HeartRateStdDev)
	put("breathingRateStdDev", m.BreathingRateStdDev)
	return out
}

// Probe supplies a completed session's aggregated metrics.
type Probe interface {
	SessionMetrics(ctx context.Context, sessionID string) (*Metrics, error)
}

// FileProbe reads a captured metrics JSON file. Used by the simulate
// command to replay recorded sessions locally.
type FileProbe struct {
	Path string
}

func (p *FileProbe) SessionMetrics(_ context.Context, _ string) (*Metrics, error) {
	data, err := os.ReadFile(p.Path)
	if err != nil {
		return nil, fmt.Errorf("read vitals capture: %w", err)
	}
	var m Metrics
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parse vitals capture %s: %w", p.Path, err)
	}
	return &m, nil
}

// StaticProbe returns fixed metrics. Test helper.
type StaticProbe struct {
	Metrics *Metrics
	Err     error
}

func (p *StaticProbe) SessionMetrics(_ context.Context, _ string) (*Metrics, error) {
	if p.Err != nil {
		return nil, p.Err
	}
	return p.Metrics, nil
}

// F is a shorthand for building optional metric fields.
func F(v float64) *float64 { return &v }
