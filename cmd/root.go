package cmd

import (
	"github.com/ankur/codedrill/internal/store"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "codedrill",
	Short: "Adaptive scheduler for coding practice",
	Long: "Codedrill decides what to practice next: it tracks per-topic mastery,\n" +
		"picks the focus topics for each session and manages the session lifecycle.",
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides CODEDRILL_DB env var)")
	rootCmd.PersistentFlags().String("config", "", "Path to optional YAML config file")

	rootCmd.AddCommand(sessionCmd)
	rootCmd.AddCommand(sweepCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest
// priority), then config/env, then the default XDG path.
func resolveDBPath(cmd *cobra.Command, cfgPath string) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	if cfgPath != "" {
		return cfgPath, store.EnsureDir(cfgPath)
	}
	return store.DefaultDBPath()
}
