package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/opskit/runbooks/internal/core/domain"
)

var topicsJSON bool

var topicsCmd = &cobra.Command{
	Use:   "topics",
	Short: "List available runbook topics",
	Long: `Lists every Kubernetes runbook topic discovered on the index page.
The index is scraped on first use and served from the in-memory cache
afterwards.`,
	Args: cobra.NoArgs,
	RunE: runTopics,
}

func init() {
	topicsCmd.Flags().BoolVar(&topicsJSON, "json", false, "output topics as JSON")
	rootCmd.AddCommand(topicsCmd)
}

func runTopics(cmd *cobra.Command, _ []string) error {
	if runbookService == nil {
		return errors.New("runbook service not configured")
	}

	ctx := context.Background()

	if topicsJSON {
		topics, err := runbookService.Topics(ctx)
		if err != nil {
			return fmt.Errorf("listing topics: %w", err)
		}
		return outputTopicsJSON(cmd, topics)
	}

	listing, err := runbookService.ListTopics(ctx)
	if err != nil {
		return fmt.Errorf("listing topics: %w", err)
	}

	cmd.Println(listing)
	return nil
}

func outputTopicsJSON(cmd *cobra.Command, topics []domain.Runbook) error {
	data, err := json.MarshalIndent(topics, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal topics: %w", err)
	}
	cmd.Println(string(data))
	return nil
}
