package cmd

import (
	"fmt"
	"os"
	"runtime"
	"time"

	"NavEngine/pkg/logger"

	"github.com/spf13/cobra"
)

// Global flags
var (
	configFlag    string
	workspaceFlag string
	modeFlag      string
	basenameFlag  string
)

var rootCmd = &cobra.Command{
	Use:   "nav",
	Short: "Nav Engine - a session history manager with browser-like navigation",
	Long: `Nav Engine maintains a navigation history for a simulated host:
- Push/replace/back/forward with monotonic entry keys
- Transitions classified as PUSH, POP or REPLACE and streamed to listeners
- A durable key record that survives restarts and a JSONL transition log

Global Flags:
  --config     Config file path (default: "nav.yaml")
  --workspace  Workspace directory for records, logs and history
  --mode       Addressing mode: "fragment" or "path"
  --basename   Basename prefix for path mode (e.g. "/app")`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&configFlag, "config", "nav.yaml", "Config file path")
	rootCmd.PersistentFlags().StringVar(&workspaceFlag, "workspace", "", "Workspace directory (overrides config)")
	rootCmd.PersistentFlags().StringVar(&modeFlag, "mode", "", `Addressing mode: "fragment" or "path" (overrides config)`)
	rootCmd.PersistentFlags().StringVar(&basenameFlag, "basename", "", "Basename prefix for path mode (overrides config)")
}

// Execute runs the root command.
func Execute() {
	// Initialize Logger
	logPath := fmt.Sprintf("workspace/logs/%s.log", time.Now().Format("20060102"))
	level := logger.ParseLevel(os.Getenv("LOG_LEVEL"))
	if err := logger.Init(logPath, level, "nav-engine"); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Failed to initialize logger: %v\n", err)
	}

	logger.Info("System", "Nav Engine Starting", map[string]interface{}{
		"version": "1.0.0",
		"os":      runtime.GOOS,
	})

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// loadRuntimeConfig resolves the effective config: file values first, then
// any flags the user actually set.
func loadRuntimeConfig(cmd *cobra.Command) Config {
	cfg, err := LoadConfig(configFlag)
	if err != nil {
		logger.Warn("CLI", "Config load failed, using defaults", map[string]interface{}{
			"path":  configFlag,
			"error": err.Error(),
		})
	}

	flags := cmd.Flags()
	if flags.Changed("workspace") {
		cfg.Workspace = workspaceFlag
	}
	if flags.Changed("mode") {
		cfg.Mode = modeFlag
	}
	if flags.Changed("basename") {
		cfg.Basename = basenameFlag
	}
	return cfg
}
