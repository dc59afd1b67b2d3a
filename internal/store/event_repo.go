package store

import (
	"context"
	"fmt"

	"github.com/samacademy/cohortgen/ent"
	"github.com/samacademy/cohortgen/ent/generationevent"
)

// eventRepo implements EventRepo backed by ent and the global sequence
// counter.
type eventRepo struct {
	client *ent.Client
	seq    *sequenceCounter
}

func (r *eventRepo) AppendGeneration(ctx context.Context, data GenerationEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.GenerationEvent.Create().
		SetSequence(seqNum).
		SetProvider(data.Provider).
		SetModel(data.Model).
		SetPurpose(data.Purpose).
		SetInputTokens(data.InputTokens).
		SetOutputTokens(data.OutputTokens).
		SetLatencyMs(data.LatencyMs).
		SetSuccess(data.Success).
		SetErrorMessage(data.ErrorMessage).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save generation event: %w", err)
	}

	return nil
}

func (r *eventRepo) QueryGeneration(ctx context.Context, opts QueryOpts) ([]GenerationRecord, error) {
	query := r.client.GenerationEvent.Query().
		Order(ent.Desc(generationevent.FieldSequence))

	if opts.Limit > 0 {
		query = query.Limit(opts.Limit)
	}
	if opts.After > 0 {
		query = query.Where(generationevent.SequenceGT(opts.After))
	}
	if opts.Before > 0 {
		query = query.Where(generationevent.SequenceLT(opts.Before))
	}
	if !opts.From.IsZero() {
		query = query.Where(generationevent.TimestampGTE(opts.From))
	}
	if !opts.To.IsZero() {
		query = query.Where(generationevent.TimestampLTE(opts.To))
	}

	rows, err := query.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query generation events: %w", err)
	}

	out := make([]GenerationRecord, len(rows))
	for i, row := range rows {
		out[i] = GenerationRecord{
			Sequence:     row.Sequence,
			Timestamp:    row.Timestamp,
			Provider:     row.Provider,
			Model:        row.Model,
			Purpose:      row.Purpose,
			InputTokens:  row.InputTokens,
			OutputTokens: row.OutputTokens,
			LatencyMs:    row.LatencyMs,
			Success:      row.Success,
			ErrorMessage: row.ErrorMessage,
		}
	}
	return out, nil
}
