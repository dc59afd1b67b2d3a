package grouping

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/samacademy/cohortgen/internal/content"
	"github.com/samacademy/cohortgen/internal/selection"
	"github.com/samacademy/cohortgen/internal/store"
)

// TaskContext carries the task fields selection keys on.
type TaskContext struct {
	Kind    content.Kind
	Topic   string
	Purpose string
}

// Result reports what grouping produced for a task.
type Result struct {
	Groups  []*store.Group
	Message string
}

// Orchestrator materializes persisted groups for a task: it loads the
// class roster, segments it, assigns each segment a combo, and persists
// all groups atomically.
type Orchestrator struct {
	classes  store.ClassRepo
	groups   store.GroupRepo
	selector *selection.Selector
	seg      *Segmenter
}

// NewOrchestrator wires the grouping pipeline.
func NewOrchestrator(classes store.ClassRepo, groups store.GroupRepo, selector *selection.Selector, seg *Segmenter) *Orchestrator {
	if seg == nil {
		seg = NewSegmenter(DefaultGroupSize)
	}
	return &Orchestrator{classes: classes, groups: groups, selector: selector, seg: seg}
}

// CreateGroupsForTask partitions the class's enrolled learners and persists
// one group per cohort with its resolved combo. Zero enrollment is not an
// error: it returns an empty result and the caller skips variant spawning.
// Persistence is all-or-nothing; on error the caller must not spawn
// variants.
func (o *Orchestrator) CreateGroupsForTask(ctx context.Context, taskID, classID int, tc TaskContext) (*Result, error) {
	class, err := o.classes.Get(ctx, classID)
	if err != nil {
		return nil, fmt.Errorf("load class %d: %w", classID, err)
	}

	learners, err := o.classes.EnrolledLearners(ctx, classID)
	if err != nil {
		return nil, fmt.Errorf("load enrollments for class %d: %w", classID, err)
	}
	if len(learners) == 0 {
		return &Result{Message: "no learners enrolled; no groups created"}, nil
	}

	segments := o.seg.Segment(learners)

	drafts := make([]store.GroupDraft, len(segments))
	for i, members := range segments {
		combo := o.selector.Select(ctx, selection.Context{
			Kind:       tc.Kind,
			Topic:      tc.Topic,
			Purpose:    tc.Purpose,
			Grade:      class.Grade,
			Subject:    class.Subject,
			Members:    members,
			GroupIndex: i,
		})
		drafts[i] = store.GroupDraft{
			TaskID:  taskID,
			ClassID: classID,
			Number:  i + 1,
			Members: members,
			Combo:   combo,
		}
	}

	groups, err := o.groups.CreateAll(ctx, drafts)
	if err != nil {
		return nil, fmt.Errorf("persist groups for task %d: %w", taskID, err)
	}

	slog.Info("groups created", "task", taskID, "class", classID, "groups", len(groups))
	return &Result{
		Groups:  groups,
		Message: fmt.Sprintf("created %d groups", len(groups)),
	}, nil
}
