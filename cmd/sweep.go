package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var sweepCmd = &cobra.Command{
	Use:   "sweep",
	Short: "Classify stale sessions and apply remediations",
	RunE: func(cmd *cobra.Command, args []string) error {
		dryRun, _ := cmd.Flags().GetBool("dry-run")

		e, err := openEngine(cmd)
		if err != nil {
			return err
		}
		defer e.Close()

		ctx, cancel := e.opCtx(cmd.Context())
		defer cancel()

		res, err := e.manager.Sweep(ctx, dryRun)
		if err != nil {
			return err
		}

		for _, f := range res.Findings {
			applied := ""
			if f.Applied {
				applied = " (applied)"
			}
			fmt.Printf("%s %s: %s -> %s%s\n",
				f.Session.SessionType, f.Session.SessionID, f.Classification, f.Action, applied)
		}
		fmt.Printf("expired %d, auto-completed %d, flagged %d\n",
			res.Expired, res.AutoCompleted, res.Flagged)
		return nil
	},
}

func init() {
	sweepCmd.Flags().Bool("dry-run", false, "Classify only, apply nothing")
}
