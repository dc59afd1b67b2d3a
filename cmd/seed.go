package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/samacademy/cohortgen/internal/store"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Create a demo class with enrolled learners",
	RunE: func(cmd *cobra.Command, args []string) error {
		name, _ := cmd.Flags().GetString("name")
		grade, _ := cmd.Flags().GetString("grade")
		subject, _ := cmd.Flags().GetString("subject")
		learners, _ := cmd.Flags().GetInt("learners")

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
		class, err := s.Classes().Create(ctx, name, grade, subject)
		if err != nil {
			return fmt.Errorf("create class: %w", err)
		}

		// Deterministic IDs keep reruns and simulations reproducible.
		for i := 1; i <= learners; i++ {
			learnerID := fmt.Sprintf("learner-%02d", i)
			if err := s.Classes().Enroll(ctx, class.ID, learnerID); err != nil {
				return fmt.Errorf("enroll %s: %w", learnerID, err)
			}
		}

		fmt.Printf("class %d %q (grade %s, %s) with %d learners\n",
			class.ID, class.Name, class.Grade, class.Subject, learners)
		return nil
	},
}

func init() {
	seedCmd.Flags().String("name", "Demo Class", "Class name")
	seedCmd.Flags().String("grade", "5", "Grade level")
	seedCmd.Flags().String("subject", "math", "Subject")
	seedCmd.Flags().Int("learners", 18, "Number of learners to enroll")
}
