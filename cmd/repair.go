package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/samacademy/cohortgen/internal/store"
	"github.com/samacademy/cohortgen/internal/variants"
)

var repairCmd = &cobra.Command{
	Use:   "repair <task-id>",
	Short: "Reconcile a parent task's status from its variants",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid task id %q", args[0])
		}

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}

		s, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		ctx := cmd.Context()
		// Repair only reads and reconciles; it never generates.
		engine := variants.NewEngine(s.Tasks(), s.Groups(), nil)
		if _, err := engine.Repair(ctx, id); err != nil {
			return err
		}

		task, err := s.Tasks().Get(ctx, id)
		if err != nil {
			return fmt.Errorf("reload task %d: %w", id, err)
		}
		fmt.Printf("task %d: %s\n", task.ID, task.Status)
		return nil
	},
}
