package cmd

import (
	"fmt"
	"os"
	"sort"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show per-topic mastery and the current focus",
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := openEngine(cmd)
		if err != nil {
			return err
		}
		defer e.Close()

		ctx, cancel := e.opCtx(cmd.Context())
		defer cancel()

		recompute, _ := cmd.Flags().GetBool("recompute")
		if recompute {
			if _, err := e.mastery.Recompute(ctx); err != nil {
				return err
			}
		}

		snapshot, err := e.mastery.Snapshot(ctx)
		if err != nil {
			return err
		}
		state, err := e.store.State().Load(ctx)
		if err != nil {
			return err
		}

		names := make([]string, 0, len(snapshot))
		for t := range snapshot {
			names = append(names, t)
		}
		sort.Strings(names)

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "TOPIC\tATTEMPTS\tSUCCESS\tDECAY\tMASTERED")
		for _, t := range names {
			r := snapshot[t]
			rate := "-"
			if r.TotalAttempts > 0 {
				rate = fmt.Sprintf("%.0f%%", float64(r.SuccessfulAttempts)/float64(r.TotalAttempts)*100)
			}
			mastered := ""
			if r.Mastered {
				mastered = "yes"
			}
			fmt.Fprintf(w, "%s\t%d\t%s\t%.2f\t%s\n", t, r.TotalAttempts, rate, r.DecayScore, mastered)
		}
		if err := w.Flush(); err != nil {
			return err
		}

		fmt.Printf("\nfocus: %v (level %s, %d sessions completed)\n",
			state.FocusTags, state.PerformanceLevel, state.SessionsCompleted)
		return nil
	},
}

func init() {
	statsCmd.Flags().Bool("recompute", false, "Recompute mastery from the attempt log first")
}
