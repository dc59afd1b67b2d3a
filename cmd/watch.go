package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/samacademy/cohortgen/internal/store"
	"github.com/samacademy/cohortgen/internal/tui"
)

var watchCmd = &cobra.Command{
	Use:   "watch <task-id>",
	Short: "Watch a task's variants generate live",
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

		return tui.Run(s.Tasks(), s.Groups(), id)
	},
}
