package store

import (
	"context"
	"fmt"

	"github.com/samacademy/cohortgen/ent"
	"github.com/samacademy/cohortgen/ent/group"
)

// groupRepo implements GroupRepo using the ent client.
type groupRepo struct {
	client *ent.Client
}

// CreateAll writes every group in one transaction so a task is never left
// partially grouped. Callers must not spawn variants when this errors.
func (r *groupRepo) CreateAll(ctx context.Context, drafts []GroupDraft) ([]*Group, error) {
	if len(drafts) == 0 {
		return nil, nil
	}

	tx, err := r.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin group transaction: %w", err)
	}

	rows := make([]*ent.Group, 0, len(drafts))
	for _, d := range drafts {
		row, err := tx.Group.Create().
			SetTaskID(d.TaskID).
			SetClassID(d.ClassID).
			SetNumber(d.Number).
			SetMembers(d.Members).
			SetCombo(d.Combo).
			Save(ctx)
		if err != nil {
			if rbErr := tx.Rollback(); rbErr != nil {
				return nil, fmt.Errorf("save group %d: %w (rollback: %v)", d.Number, err, rbErr)
			}
			return nil, fmt.Errorf("save group %d: %w", d.Number, err)
		}
		rows = append(rows, row)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit groups: %w", err)
	}

	out := make([]*Group, len(rows))
	for i, row := range rows {
		out[i] = groupFromRow(row)
	}
	return out, nil
}

func (r *groupRepo) ByTask(ctx context.Context, taskID int) ([]*Group, error) {
	rows, err := r.client.Group.Query().
		Where(group.TaskIDEQ(taskID)).
		Order(ent.Asc(group.FieldNumber)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query groups of task %d: %w", taskID, err)
	}

	out := make([]*Group, len(rows))
	for i, row := range rows {
		out[i] = groupFromRow(row)
	}
	return out, nil
}

func (r *groupRepo) SetVariantTask(ctx context.Context, groupID, taskID int) error {
	_, err := r.client.Group.UpdateOneID(groupID).
		SetVariantTaskID(taskID).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("set group %d variant task: %w", groupID, err)
	}
	return nil
}

func groupFromRow(row *ent.Group) *Group {
	return &Group{
		ID:            row.ID,
		TaskID:        row.TaskID,
		ClassID:       row.ClassID,
		Number:        row.Number,
		Members:       row.Members,
		Combo:         row.Combo,
		VariantTaskID: row.VariantTaskID,
		CreatedAt:     row.CreatedAt,
	}
}
