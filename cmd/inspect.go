package cmd

import (
	"errors"
	"fmt"

	"NavEngine/cmd/ui"
	"NavEngine/pkg/nav/api"
	"NavEngine/pkg/nav/store"

	"github.com/spf13/cobra"
)

var inspectResetFlag bool

var inspectCmd = &cobra.Command{
	Use:   "inspect",
	Short: "Show the durable navigation record",
	Long: `Shows the durable key record the engine reconciles against on startup.
With --reset, clears it back to the initial key after confirmation.`,
	RunE: runInspect,
}

func init() {
	inspectCmd.Flags().BoolVar(&inspectResetFlag, "reset", false, "Reset the record to the initial key")
	rootCmd.AddCommand(inspectCmd)
}

func runInspect(cmd *cobra.Command, args []string) error {
	cfg := loadRuntimeConfig(cmd)

	records, err := store.NewFileRecordStore(cfg.Workspace)
	if err != nil {
		return fmt.Errorf("failed to open record store: %w", err)
	}

	rec, err := records.Load()
	switch {
	case errors.Is(err, api.ErrNoRecord):
		fmt.Println("No durable record yet.")
	case err != nil:
		return fmt.Errorf("failed to load record: %w", err)
	default:
		fmt.Printf("Durable record: key=%s (%s)\n", rec.Key, records.Path())
	}

	if !inspectResetFlag {
		return nil
	}

	if !ui.Confirm("Reset the durable record to key 0?") {
		fmt.Println("Aborted.")
		return nil
	}
	if err := records.Save(api.StoreRecord{Key: "0"}); err != nil {
		return fmt.Errorf("failed to reset record: %w", err)
	}
	fmt.Println("Record reset to key 0.")
	return nil
}
