package cmd

import (
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/samacademy/cohortgen/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "cohortgen",
	Short: "Cohort-based AI content variant generator",
	Long: "Cohortgen groups a class into cohorts, generates per-cohort lesson and quiz\n" +
		"variants through AI model combinations, and re-weights future model selection\n" +
		"from biometric session feedback.",
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		configureLogging()
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides COHORTGEN_DB env var)")

	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(seedCmd)
	rootCmd.AddCommand(tasksCmd)
	rootCmd.AddCommand(profilesCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(repairCmd)
	rootCmd.AddCommand(watchCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(updateCmd)
	rootCmd.AddCommand(versionCmd)
}

// configureLogging installs the text handler once, level from
// COHORTGEN_LOG_LEVEL.
func configureLogging() {
	level := slog.LevelInfo
	switch strings.ToLower(os.Getenv("COHORTGEN_LOG_LEVEL")) {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
}

// resolveDBPath returns the database path using --db flag (highest
// priority), then COHORTGEN_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}
