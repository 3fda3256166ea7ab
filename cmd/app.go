package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/ankur/codedrill/internal/config"
	"github.com/ankur/codedrill/internal/focus"
	"github.com/ankur/codedrill/internal/mastery"
	"github.com/ankur/codedrill/internal/notify"
	"github.com/ankur/codedrill/internal/session"
	"github.com/ankur/codedrill/internal/store"
	"github.com/ankur/codedrill/internal/topics"
)

// engine bundles the wired scheduler for command handlers.
type engine struct {
	cfg     config.Config
	store   *store.Store
	mastery *mastery.Engine
	focus   *focus.Engine
	manager *session.Manager
	log     *slog.Logger
}

// openEngine opens the store and wires the engines. Callers must Close.
func openEngine(cmd *cobra.Command) (*engine, error) {
	cfgFile, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, err
	}

	dbPath, err := resolveDBPath(cmd, cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}

	log := slog.New(slog.NewTextHandler(os.Stderr, nil))

	masteryEng := mastery.NewEngine(st.Attempts(), st.Mastery(), log)
	focusEng := focus.NewEngine(
		topics.NewRanker(),
		st.Attempts(),
		st.Mastery(),
		st.State(),
		st.Settings(),
		st.Events(),
		log,
	)

	var notifier notify.Publisher = notify.NopPublisher{}
	if cfg.NotifyEnabled {
		ch, err := notify.Open(filepath.Dir(dbPath), log)
		if err != nil {
			log.Warn("cross-instance channel unavailable", "error", err)
		} else {
			notifier = ch
		}
	}

	manager := session.NewManager(session.Deps{
		Sessions:         st.Sessions(),
		Attempts:         st.Attempts(),
		State:            st.State(),
		Events:           st.Events(),
		Mastery:          masteryEng,
		Focus:            focusEng,
		Notifier:         notifier,
		ProblemsPerTopic: cfg.ProblemsPerTopic,
		Staleness: session.StalenessConfig{
			StandardStaleHours:  cfg.StandardStaleHours,
			InterviewStaleHours: cfg.InterviewStaleHours,
			DraftExpireHours:    cfg.DraftExpireHours,
		},
		Log: log,
	})

	return &engine{
		cfg:     cfg,
		store:   st,
		mastery: masteryEng,
		focus:   focusEng,
		manager: manager,
		log:     log,
	}, nil
}

func (e *engine) Close() error {
	return e.store.Close()
}

// opCtx bounds one engine operation with the configured store timeout.
func (e *engine) opCtx(parent context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(parent, e.cfg.StoreTimeout)
}
