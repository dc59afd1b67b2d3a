package variants

import (
	"sort"

	"github.com/samacademy/cohortgen/internal/content"
	"github.com/samacademy/cohortgen/internal/store"
)

// Outcome is what reconciliation decided for a parent task.
type Outcome struct {
	// Status is the status the parent should carry.
	Status content.Status

	// Changed reports whether anything needs to be written.
	Changed bool

	// Promote, when non-nil, is the variant payload to copy onto the
	// parent for default display.
	Promote *content.Payload
}

// Reconcile derives a parent task's status from its sibling variants. It is
// a pure function: both the post-generation hook and the standalone repair
// path call it, and running it twice on the same inputs yields the same
// outcome.
//
// Rules, in order:
//   - at least one variant and all completed → completed; if the parent's
//     payload is empty, promote the earliest-created completed variant's
//     non-empty payload;
//   - at least one failed and none generating → failed;
//   - at least one generating → generating;
//   - otherwise leave the parent unchanged.
func Reconcile(parent *store.Task, variants []*store.Task) Outcome {
	if len(variants) == 0 {
		return Outcome{Status: parent.Status}
	}

	completed, failed, generating := 0, 0, 0
	for _, v := range variants {
		switch v.Status {
		case content.StatusCompleted:
			completed++
		case content.StatusFailed:
			failed++
		case content.StatusGenerating:
			generating++
		}
	}

	var status content.Status
	switch {
	case completed == len(variants):
		status = content.StatusCompleted
	case failed > 0 && generating == 0:
		status = content.StatusFailed
	case generating > 0:
		status = content.StatusGenerating
	default:
		return Outcome{Status: parent.Status}
	}

	out := Outcome{Status: status, Changed: status != parent.Status}

	if status == content.StatusCompleted && parent.Payload.Empty() {
		if p := firstCompletedPayload(variants); p != nil {
			out.Promote = p
			out.Changed = true
		}
	}
	return out
}

// firstCompletedPayload returns the payload of the earliest-created
// completed variant with non-empty content. First-completed-wins keeps the
// parent's displayed content stable across repeated reconciliations.
func firstCompletedPayload(variants []*store.Task) *content.Payload {
	ordered := make([]*store.Task, len(variants))
	copy(ordered, variants)
	sort.SliceStable(ordered, func(i, j int) bool {
		if !ordered[i].CreatedAt.Equal(ordered[j].CreatedAt) {
			return ordered[i].CreatedAt.Before(ordered[j].CreatedAt)
		}
		return ordered[i].ID < ordered[j].ID
	})

	for _, v := range ordered {
		if v.Status == content.StatusCompleted && !v.Payload.Empty() {
			p := v.Payload
			return &p
		}
	}
	return nil
}
