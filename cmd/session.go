package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ankur/codedrill/internal/session"
	"github.com/ankur/codedrill/internal/store"
)

var sessionCmd = &cobra.Command{
	Use:   "session",
	Short: "Manage practice sessions",
}

var sessionStartCmd = &cobra.Command{
	Use:   "start",
	Short: "Resume the active session or create a new one",
	RunE: func(cmd *cobra.Command, args []string) error {
		typ, err := typeFlag(cmd)
		if err != nil {
			return err
		}

		e, err := openEngine(cmd)
		if err != nil {
			return err
		}
		defer e.Close()

		ctx, cancel := e.opCtx(cmd.Context())
		defer cancel()

		s, created, err := e.manager.GetOrCreate(ctx, typ, session.OriginGenerator)
		if err != nil {
			return err
		}
		if created {
			fmt.Printf("created session %s (%s)\n", s.SessionID, s.SessionType)
		} else {
			fmt.Printf("resuming session %s (%s, %s)\n", s.SessionID, s.SessionType, s.Status)
		}
		printProblems(s)
		return nil
	},
}

var sessionResumeCmd = &cobra.Command{
	Use:   "resume",
	Short: "Resume the active session of a type, if any",
	RunE: func(cmd *cobra.Command, args []string) error {
		typ, err := typeFlag(cmd)
		if err != nil {
			return err
		}

		e, err := openEngine(cmd)
		if err != nil {
			return err
		}
		defer e.Close()

		ctx, cancel := e.opCtx(cmd.Context())
		defer cancel()

		s, err := e.manager.Resume(ctx, typ)
		if err != nil {
			return err
		}
		if s == nil {
			fmt.Println("no resumable session; start fresh with `codedrill session start`")
			return nil
		}
		fmt.Printf("session %s (%s, %s)\n", s.SessionID, s.SessionType, s.Status)
		printProblems(s)
		return nil
	},
}

var sessionStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show current focus and active sessions",
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := openEngine(cmd)
		if err != nil {
			return err
		}
		defer e.Close()

		ctx, cancel := e.opCtx(cmd.Context())
		defer cancel()

		state, err := e.store.State().Load(ctx)
		if err != nil {
			return err
		}
		fmt.Printf("sessions completed: %d\n", state.SessionsCompleted)
		fmt.Printf("performance level:  %s\n", state.PerformanceLevel)
		fmt.Printf("last accuracy:      %.0f%%\n", state.LastAccuracy*100)
		fmt.Printf("focus topics:       %v (count %d)\n", state.FocusTags, state.TagCount)

		for _, t := range []session.Type{session.TypeStandard, session.TypeInterviewLike, session.TypeFullInterview} {
			active, err := e.store.Sessions().Active(ctx, session.CompatibleTypes(t))
			if err != nil {
				return err
			}
			for _, s := range active {
				fmt.Printf("active %s session %s (%s, last activity %s)\n",
					s.SessionType, s.SessionID, s.Status, s.LastActivity.Format("2006-01-02 15:04"))
			}
		}
		return nil
	},
}

func typeFlag(cmd *cobra.Command) (session.Type, error) {
	raw, _ := cmd.Flags().GetString("type")
	typ, ok := session.ParseType(raw)
	if !ok {
		return "", fmt.Errorf("unknown session type %q (want standard, interview_like or full_interview)", raw)
	}
	return typ, nil
}

func printProblems(s *store.SessionData) {
	for i, p := range s.Problems {
		marker := "  "
		if i < s.CurrentIndex {
			marker = "✓ "
		}
		fmt.Printf("%s%2d. [%s] %s\n", marker, i+1, p.Difficulty, p.Topic)
	}
}

func init() {
	for _, c := range []*cobra.Command{sessionStartCmd, sessionResumeCmd} {
		c.Flags().String("type", "standard", "Session type: standard, interview_like or full_interview")
	}
	sessionCmd.AddCommand(sessionStartCmd)
	sessionCmd.AddCommand(sessionResumeCmd)
	sessionCmd.AddCommand(sessionStatusCmd)
}
