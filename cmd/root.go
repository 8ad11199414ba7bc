package cmd

import (
	"github.com/cloudprep/dailyquiz/internal/store"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "dailyquiz",
	Short: "Daily certification exam questions by email",
	Long:  "Dailyquiz — keeps a per-exam question bank replenished with AI-generated multiple-choice questions and claims one per exam type per day.",
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides DAILYQUIZ_DB env var)")
	rootCmd.PersistentFlags().String("namespace", store.DefaultNamespace, "App namespace scoping all persisted collections")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(llmCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then DAILYQUIZ_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}
