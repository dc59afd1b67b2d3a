package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/samacademy/cohortgen/internal/store"
)

var tasksCmd = &cobra.Command{
	Use:   "tasks",
	Short: "List recent tasks",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}

		s, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		tasks, err := s.Tasks().ListParents(cmd.Context(), limit)
		if err != nil {
			return fmt.Errorf("list tasks: %w", err)
		}
		if len(tasks) == 0 {
			fmt.Println("No tasks yet. Create one with: cohortgen generate")
			return nil
		}

		fmt.Printf("%-5s  %-19s  %-6s  %-28s  %-10s  %s\n",
			"ID", "Created", "Kind", "Topic", "Status", "Class")
		fmt.Println(strings.Repeat("─", 86))
		for _, t := range tasks {
			fmt.Printf("%-5d  %-19s  %-6s  %-28s  %-10s  %d\n",
				t.ID,
				t.CreatedAt.Local().Format("2006-01-02 15:04:05"),
				t.Kind,
				truncate(t.Topic, 28),
				t.Status,
				t.ClassID,
			)
		}
		return nil
	},
}

var tasksShowCmd = &cobra.Command{
	Use:   "show <task-id>",
	Short: "Show a task's groups and variant statuses",
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
		task, err := s.Tasks().Get(ctx, id)
		if err != nil {
			return fmt.Errorf("load task %d: %w", id, err)
		}

		fmt.Printf("Task:     %d\n", task.ID)
		fmt.Printf("Kind:     %s\n", task.Kind)
		fmt.Printf("Topic:    %s\n", task.Topic)
		fmt.Printf("Purpose:  %s\n", task.Purpose)
		fmt.Printf("Status:   %s\n", task.Status)
		fmt.Printf("Class:    %d (grade %s, %s)\n", task.ClassID, task.Grade, task.Subject)

		groups, err := s.Groups().ByTask(ctx, id)
		if err != nil {
			return fmt.Errorf("load groups: %w", err)
		}
		variants, err := s.Tasks().VariantsOf(ctx, id)
		if err != nil {
			return fmt.Errorf("load variants: %w", err)
		}
		statusByTask := make(map[int]string, len(variants))
		for _, v := range variants {
			statusByTask[v.ID] = string(v.Status)
		}

		fmt.Println()
		fmt.Printf("%-6s  %-8s  %-24s  %-10s  %s\n",
			"Group", "Learners", "Combo", "Status", "Variant")
		fmt.Println(strings.Repeat("─", 64))
		for _, g := range groups {
			status := "-"
			variant := "-"
			if g.VariantTaskID != nil {
				variant = strconv.Itoa(*g.VariantTaskID)
				if st, ok := statusByTask[*g.VariantTaskID]; ok {
					status = st
				}
			}
			fmt.Printf("%-6d  %-8d  %-24s  %-10s  %s\n",
				g.Number, len(g.Members), truncate(g.Combo.Key(), 24), status, variant)
		}
		return nil
	},
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max]
}

func init() {
	tasksCmd.Flags().IntP("limit", "n", 20, "Number of tasks to show")
	tasksCmd.AddCommand(tasksShowCmd)
}
