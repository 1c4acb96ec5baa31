package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/opskit/runbooks/internal/core/domain"
)

var searchJSON bool

var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Search runbooks by keyword",
	Long: `Searches runbook titles and slugs for the given keyword,
case-insensitively. An empty query matches every topic.`,
	Args: cobra.ExactArgs(1),
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().BoolVar(&searchJSON, "json", false, "output matches as JSON")
	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	query := args[0]

	if runbookService == nil {
		return errors.New("runbook service not configured")
	}

	ctx := context.Background()

	if searchJSON {
		matched, err := runbookService.Matches(ctx, query)
		if err != nil {
			return fmt.Errorf("search failed: %w", err)
		}
		return outputMatchesJSON(cmd, matched)
	}

	result, err := runbookService.Search(ctx, query)
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}

	cmd.Println(result)
	return nil
}

func outputMatchesJSON(cmd *cobra.Command, matched []domain.Runbook) error {
	if matched == nil {
		matched = []domain.Runbook{}
	}

	data, err := json.MarshalIndent(matched, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal matches: %w", err)
	}
	cmd.Println(string(data))
	return nil
}
