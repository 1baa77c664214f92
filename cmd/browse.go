package cmd

import (
	"fmt"

	"NavEngine/cmd/ui"
	"NavEngine/pkg/logger"
	"NavEngine/pkg/nav/api"
	"NavEngine/pkg/nav/history"
	"NavEngine/pkg/nav/hostsim"
	"NavEngine/pkg/nav/store"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Start an interactive navigation session",
	Long: `Starts an interactive session against the simulated host.

The address bar pushes and replaces entries, Ctrl+B/Ctrl+F walk the stack,
and Ctrl+G arms a navigation guard. Every transition is appended to the
workspace transition log and shown live in the session.`,
	RunE: runBrowse,
}

func init() {
	rootCmd.AddCommand(browseCmd)
}

func runBrowse(cmd *cobra.Command, args []string) error {
	cfg := loadRuntimeConfig(cmd)

	var records store.RecordStore
	fileRecords, err := store.NewFileRecordStore(cfg.Workspace)
	if err != nil {
		logger.Warn("CLI", "Durable record store unavailable, continuing in memory", map[string]interface{}{
			"workspace": cfg.Workspace,
			"error":     err.Error(),
		})
		records = store.NewMemoryRecordStore()
	} else {
		records = fileRecords
	}

	host := hostsim.NewHost(cfg.StartPath, records)
	engine := history.New(host, history.Options{
		Mode:     cfg.NavMode(),
		Basename: cfg.Basename,
	})

	translog, err := store.NewJSONLTransitionLog(cfg.Workspace)
	if err != nil {
		logger.Warn("CLI", "Transition log unavailable", map[string]interface{}{
			"error": err.Error(),
		})
		translog = nil
	}

	// Live stream for the UI; buffered so the listener never blocks a
	// same-turn navigation.
	live := store.NewChannelTransitionStream(32)
	defer live.Close()

	ctx := cmd.Context()
	unlisten := engine.Listen(func(tr api.Transition) {
		rec := store.TransitionRecord{
			Action: tr.Action,
			From:   tr.From,
			To:     tr.To,
		}
		if translog != nil {
			if err := translog.Append(ctx, rec); err != nil {
				logger.Warn("CLI", "Failed to append transition", map[string]interface{}{
					"error": err.Error(),
				})
			}
		}
		_ = live.Send(rec)
	})
	defer unlisten()

	addresses, err := NewAddressHistory(cfg.Workspace)
	if err != nil {
		return fmt.Errorf("failed to open address history: %w", err)
	}
	past, err := addresses.Load()
	if err != nil {
		logger.Warn("CLI", "Failed to load address history", map[string]interface{}{
			"error": err.Error(),
		})
	}

	model := ui.NewBrowserModel(engine, live, past, func(input string) {
		if err := addresses.Append(input); err != nil {
			logger.Warn("CLI", "Failed to record address", map[string]interface{}{
				"error": err.Error(),
			})
		}
	})

	p := tea.NewProgram(model)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("session error: %w", err)
	}

	logger.Info("CLI", "Session ended", map[string]interface{}{
		"entries": engine.Length(),
		"key":     engine.Location().Key,
	})
	return nil
}
