package cli

import (
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/docvec-labs/docvec-cli/internal/watch"
)

var watchCmd = &cobra.Command{
	Use:   "watch [directory]",
	Short: "Watch a directory and re-ingest files as they change",
	Long: `Watches the directory tree and runs the ingestion pipeline on every
supported file that is created or written. Stops on interrupt.`,
	Args: cobra.ExactArgs(1),
	RunE: runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := setupPipeline(ctx); err != nil {
		return err
	}

	cmd.Printf("Watching %s (press Ctrl-C to stop)\n", args[0])
	return watch.New(args[0], ingestService).Run(ctx)
}
