// ABOUTME: CLI command to search the product index
// ABOUTME: Renders ranked products and optionally saves the composite image
package commands

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/harper/stylist/internal/core"
	"github.com/harper/stylist/internal/storage"
)

var (
	searchGender    string
	searchLimit     int
	searchSaveImage string
)

// NewSearchCmd creates the search command
func NewSearchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Search the catalog for matching products",
		Long: `Search the catalog for products matching a free-text description.

Embeds the query, runs a filtered similarity search against the
persistent index, and prints the ranked products. If the index does not
exist yet it is built from the configured catalog first.

Examples:
  stylist search "white silk blouse" --gender Women
  stylist search "linen summer shirt" --limit 5 --save-image results.jpg`,
		Args: cobra.ExactArgs(1),
		RunE: runSearch,
	}

	cmd.Flags().StringVar(&searchGender, "gender", "", "Filter by category: Women or Men")
	cmd.Flags().IntVar(&searchLimit, "limit", core.DefaultResultCount, "Maximum results to return")
	cmd.Flags().StringVar(&searchSaveImage, "save-image", "", "Write the composite preview JPEG to this path")

	return cmd
}

func runSearch(cmd *cobra.Command, args []string) error {
	if err := validatePositiveInt(searchLimit, "limit"); err != nil {
		return err
	}
	query := args[0]

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	client, err := newClient(cfg)
	if err != nil {
		return err
	}

	store, err := openStore(cmd.Context(), cfg, client)
	if err != nil {
		if errors.Is(err, storage.ErrStoreNotFound) {
			return fmt.Errorf("no index available: %w (run 'stylist ingest')", err)
		}
		return err
	}
	defer store.Close()

	recommender := newRecommender(cfg, client, store)

	rendered, err := recommender.Recommend(cmd.Context(), query, searchGender, searchLimit)
	if err != nil {
		if errors.Is(err, core.ErrInvalidGender) {
			return fmt.Errorf("invalid --gender: %w", err)
		}
		return fmt.Errorf("searching products: %w", err)
	}

	if rendered == nil {
		if !quiet {
			fmt.Fprintf(cmd.OutOrStdout(), "No matching products found for: %s\n", query)
		}
		return nil
	}

	if outputFormat == "json" {
		payload, err := json.MarshalIndent(map[string]interface{}{
			"text":      rendered.Text,
			"has_image": len(rendered.Image) > 0,
		}, "", "  ")
		if err != nil {
			return fmt.Errorf("marshaling JSON: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s\n", payload)
	} else {
		fmt.Fprintln(cmd.OutOrStdout(), rendered.Text)
	}

	if searchSaveImage != "" && len(rendered.Image) > 0 {
		if err := os.WriteFile(searchSaveImage, rendered.Image, 0644); err != nil {
			return fmt.Errorf("saving composite image: %w", err)
		}
		if !quiet {
			fmt.Fprintf(cmd.OutOrStdout(), "Composite image saved to %s\n", searchSaveImage)
		}
	}

	return nil
}
