package cmd

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/samacademy/cohortgen/internal/app"
	"github.com/samacademy/cohortgen/internal/feedback"
	"github.com/samacademy/cohortgen/internal/vitals"
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Replay a vitals capture through the feedback pipeline",
	RunE: func(cmd *cobra.Command, args []string) error {
		sessionID, _ := cmd.Flags().GetString("session")
		taskID, _ := cmd.Flags().GetInt("task")
		learnerID, _ := cmd.Flags().GetString("learner")
		vitalsPath, _ := cmd.Flags().GetString("vitals")

		if sessionID == "" {
			sessionID = uuid.NewString()
		}

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}

		ctx := cmd.Context()
		a, err := app.New(ctx, app.Options{
			DBPath: dbPath,
			Probe:  &vitals.FileProbe{Path: vitalsPath},
		})
		if err != nil {
			return err
		}
		defer a.Close()

		task, err := a.Store.Tasks().Get(ctx, taskID)
		if err != nil {
			return fmt.Errorf("load task %d: %w", taskID, err)
		}

		fb, err := a.Feedback.Ingest(ctx, feedback.Session{
			SessionID: sessionID,
			LearnerID: learnerID,
			ClassID:   task.ClassID,
			TaskID:    taskID,
		})
		if err != nil {
			return err
		}

		fmt.Printf("session %s  learner %s  task %d (%s)\n", fb.SessionID, fb.LearnerID, fb.TaskID, fb.ComboKey)
		fmt.Printf("clarity        %.3f\n", fb.Clarity)
		fmt.Printf("engagement     %.3f\n", fb.Engagement)
		fmt.Printf("cognitive load %.3f\n", fb.CognitiveLoad)
		fmt.Printf("attention span %.3f\n", fb.AttentionSpan)
		fmt.Printf("confidence     %.3f\n", fb.Confidence)
		fmt.Printf("fatigue        %s (slope %+.3f)\n", fb.FatigueTrend, fb.FatigueSlope)
		return nil
	},
}

func init() {
	simulateCmd.Flags().String("session", "", "Session ID (random when omitted)")
	simulateCmd.Flags().Int("task", 0, "Task the session ran against")
	simulateCmd.Flags().String("learner", "", "Learner ID")
	simulateCmd.Flags().String("vitals", "", "Path to a vitals capture JSON file")
	_ = simulateCmd.MarkFlagRequired("task")
	_ = simulateCmd.MarkFlagRequired("learner")
	_ = simulateCmd.MarkFlagRequired("vitals")
}
