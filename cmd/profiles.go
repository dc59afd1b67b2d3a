package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/samacademy/cohortgen/internal/store"
)

var profilesCmd = &cobra.Command{
	Use:   "profiles",
	Short: "List performance profiles",
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}

		s, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		profiles, err := s.Profiles().List(cmd.Context())
		if err != nil {
			return fmt.Errorf("list profiles: %w", err)
		}
		if len(profiles) == 0 {
			fmt.Println("No performance profiles yet.")
			return nil
		}

		fmt.Printf("%-22s  %-16s  %-6s  %-8s  %-5s  %-5s  %-5s  %-5s  %-6s  %s\n",
			"Combo", "Topic", "Kind", "Bucket", "Clr", "Eng", "Conf", "Att", "Score", "Status")
		fmt.Println(strings.Repeat("─", 104))
		for _, p := range profiles {
			fmt.Printf("%-22s  %-16s  %-6s  %-8s  %-5.2f  %-5.2f  %-5.2f  %-5.2f  %-6.3f  %s (%d)\n",
				truncate(p.Key.ComboKey, 22),
				truncate(p.Key.Topic, 16),
				p.Key.Kind,
				p.Key.LengthBucket,
				p.ClarityAvg,
				p.EngagementAvg,
				p.ConfidenceAvg,
				p.AttentionAvg,
				p.PerformanceScore,
				p.Status,
				p.SessionCount,
			)
		}
		return nil
	},
}
