package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/samacademy/cohortgen/internal/app"
	"github.com/samacademy/cohortgen/internal/content"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Create a task and generate per-cohort variants",
	RunE: func(cmd *cobra.Command, args []string) error {
		classID, _ := cmd.Flags().GetInt("class")
		topic, _ := cmd.Flags().GetString("topic")
		kind, _ := cmd.Flags().GetString("kind")
		minutes, _ := cmd.Flags().GetInt("minutes")
		questions, _ := cmd.Flags().GetInt("questions")
		qType, _ := cmd.Flags().GetString("type")
		purpose, _ := cmd.Flags().GetString("purpose")
		wait, _ := cmd.Flags().GetBool("wait")

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}

		ctx := cmd.Context()
		a, err := app.New(ctx, app.Options{DBPath: dbPath})
		if err != nil {
			return err
		}
		defer a.Close()

		res, err := a.CreateTask(ctx, app.CreateTaskParams{
			Kind:          kind,
			Topic:         topic,
			ClassID:       classID,
			Purpose:       purpose,
			LengthMinutes: minutes,
			QuestionType:  qType,
			NumQuestions:  questions,
		})
		if err != nil {
			return err
		}

		fmt.Println(res.Message)
		if !wait || res.GroupCount == 0 {
			return nil
		}

		return waitForTask(ctx, a, res.Task.ID)
	},
}

// waitForTask polls until the parent task reaches a terminal state, then
// prints the per-variant outcome.
func waitForTask(ctx context.Context, a *app.App, taskID int) error {
	fmt.Println("waiting for generation to finish...")
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(2 * time.Second):
		}

		task, err := a.Store.Tasks().Get(ctx, taskID)
		if err != nil {
			return fmt.Errorf("poll task %d: %w", taskID, err)
		}
		if !task.Status.Terminal() {
			continue
		}

		variants, err := a.Store.Tasks().VariantsOf(ctx, taskID)
		if err != nil {
			return fmt.Errorf("load variants: %w", err)
		}
		var completed, failed int
		for _, v := range variants {
			switch v.Status {
			case content.StatusCompleted:
				completed++
			case content.StatusFailed:
				failed++
			}
		}
		fmt.Printf("task %d %s: %d/%d variants completed, %d failed\n",
			taskID, task.Status, completed, len(variants), failed)
		return nil
	}
}

func init() {
	generateCmd.Flags().Int("class", 0, "Class ID to generate for")
	generateCmd.Flags().String("topic", "", "Topic of the task")
	generateCmd.Flags().String("kind", "lesson", "Task kind: lesson or quiz")
	generateCmd.Flags().Int("minutes", 10, "Lesson length in minutes")
	generateCmd.Flags().Int("questions", 5, "Number of quiz questions")
	generateCmd.Flags().String("type", content.QuestionMCQ, "Quiz question type: MCQ, True/False, Short Answer, Mixed")
	generateCmd.Flags().String("purpose", "practice", "Instructional purpose")
	generateCmd.Flags().Bool("wait", false, "Block until generation finishes")
	_ = generateCmd.MarkFlagRequired("class")
	_ = generateCmd.MarkFlagRequired("topic")
}
