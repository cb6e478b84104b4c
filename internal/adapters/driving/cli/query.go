package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/docvec-labs/docvec-cli/internal/core/services"
)

var queryTopK int

var queryCmd = &cobra.Command{
	Use:   "query [text]",
	Short: "Find files whose content matches a query",
	Long: `Embeds the query text and returns the names of files containing
the nearest stored paragraphs. Duplicate filenames are collapsed, so
fewer names than --top-k may be printed.`,
	Args: cobra.ExactArgs(1),
	RunE: runQuery,
}

func init() {
	queryCmd.Flags().IntVarP(&queryTopK, "top-k", "k", services.DefaultTopK, "number of nearest paragraphs to retrieve")
	rootCmd.AddCommand(queryCmd)
}

func runQuery(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	if err := setupPipeline(ctx); err != nil {
		return err
	}

	names, err := queryService.Query(ctx, args[0], queryTopK)
	if err != nil {
		return fmt.Errorf("query failed: %w", err)
	}

	if len(names) == 0 {
		cmd.Println("No matching files.")
		return nil
	}
	for _, name := range names {
		cmd.Println(name)
	}
	return nil
}
