package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var fetchCmd = &cobra.Command{
	Use:   "fetch [slug]",
	Short: "Fetch a runbook by topic slug",
	Long: `Fetches the full text of a single runbook. The page is scraped on
first access and served from the in-memory cache afterwards. Use the
topics command to see the available slugs.`,
	Args: cobra.ExactArgs(1),
	RunE: runFetch,
}

func init() {
	rootCmd.AddCommand(fetchCmd)
}

func runFetch(cmd *cobra.Command, args []string) error {
	slug := args[0]

	if runbookService == nil {
		return errors.New("runbook service not configured")
	}

	doc, err := runbookService.Fetch(context.Background(), slug)
	if err != nil {
		return fmt.Errorf("fetching runbook %q: %w", slug, err)
	}

	cmd.Println(doc)
	return nil
}
