package cmd

import (
	"errors"
	"fmt"
	"io"

	"NavEngine/cmd/ui"
	"NavEngine/pkg/nav/store"

	"github.com/spf13/cobra"
)

var traceCmd = &cobra.Command{
	Use:   "trace",
	Short: "Replay the recorded transition log",
	Long:  `Prints every transition recorded by previous sessions, in order.`,
	RunE:  runTrace,
}

func init() {
	rootCmd.AddCommand(traceCmd)
}

func runTrace(cmd *cobra.Command, args []string) error {
	cfg := loadRuntimeConfig(cmd)

	translog, err := store.NewJSONLTransitionLog(cfg.Workspace)
	if err != nil {
		return fmt.Errorf("failed to open transition log: %w", err)
	}

	ctx := cmd.Context()
	stream, err := translog.Stream(ctx)
	if err != nil {
		return fmt.Errorf("failed to stream transitions: %w", err)
	}
	defer stream.Close()

	count := 0
	for {
		rec, err := stream.Recv(ctx)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return fmt.Errorf("failed to read transition: %w", err)
		}
		fmt.Printf("%4d  %s  %s\n", rec.Seq, rec.Ts.Format("15:04:05"), ui.FormatTransition(rec))
		count++
	}

	if count == 0 {
		fmt.Println("No transitions recorded yet.")
		return nil
	}
	fmt.Printf("\n%d transitions\n", count)
	return nil
}
