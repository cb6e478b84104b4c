package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "List ingested files",
	Long: `Lists every recorded ingestion, most recent first. Files ingested
more than once appear once per run.`,
	Args: cobra.NoArgs,
	RunE: runCatalog,
}

func init() {
	rootCmd.AddCommand(catalogCmd)
}

func runCatalog(cmd *cobra.Command, _ []string) error {
	if err := setupCatalog(); err != nil {
		return err
	}

	entries, err := catalogStore.List(context.Background())
	if err != nil {
		return fmt.Errorf("listing catalog: %w", err)
	}

	if len(entries) == 0 {
		cmd.Println("No files ingested yet.")
		return nil
	}
	for _, entry := range entries {
		when := time.Unix(entry.IngestedAt, 0).Format("2006-01-02 15:04")
		cmd.Printf("%s  %4d paragraphs  %s\n", when, entry.Paragraphs, entry.Path)
	}
	return nil
}
