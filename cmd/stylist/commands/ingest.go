// ABOUTME: CLI command to build the product index from a catalog CSV
// ABOUTME: Destructive full rebuild; the previous index is replaced
package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/harper/stylist/internal/catalog"
)

var (
	ingestCatalogPath string
	ingestIndexDir    string
	ingestYes         bool
)

// NewIngestCmd creates the ingest command
func NewIngestCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ingest",
		Short: "Build the product index from the catalog CSV",
		Long: `Build the product index from the catalog CSV.

Reads the catalog, embeds every product, and writes a fresh index.
The rebuild is all-or-nothing: a single malformed row aborts the batch
and the previous index stays in place. Once the new index is complete
it REPLACES the existing one; this cannot be undone.

Examples:
  stylist ingest
  stylist ingest --catalog data/products.csv --index data/index --yes`,
		RunE: runIngest,
	}

	cmd.Flags().StringVar(&ingestCatalogPath, "catalog", "", "Catalog CSV path (default: configured STYLIST_CATALOG_PATH)")
	cmd.Flags().StringVar(&ingestIndexDir, "index", "", "Index directory (default: configured STYLIST_INDEX_DIR)")
	cmd.Flags().BoolVar(&ingestYes, "yes", false, "Skip the destructive-rebuild confirmation")

	return cmd
}

func runIngest(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if ingestCatalogPath != "" {
		cfg.CatalogPath = ingestCatalogPath
	}
	if ingestIndexDir != "" {
		cfg.IndexDir = ingestIndexDir
	}

	client, err := newClient(cfg)
	if err != nil {
		return err
	}

	if !ingestYes {
		fmt.Fprintf(cmd.OutOrStdout(),
			"This will REPLACE any existing index at %s. Continue? [y/N]: ", cfg.IndexDir)
		var answer string
		_, _ = fmt.Fscanln(cmd.InOrStdin(), &answer)
		if answer != "y" && answer != "Y" && answer != "yes" {
			fmt.Fprintln(cmd.OutOrStdout(), "Aborted.")
			return nil
		}
	}

	indexer := catalog.NewIndexer(client)
	indexer.SetVerbose(verbose)

	if !quiet {
		fmt.Fprintf(cmd.OutOrStdout(), "Building index from %s (this may take a few minutes)...\n", cfg.CatalogPath)
	}

	count, err := indexer.IngestFile(cmd.Context(), cfg.CatalogPath, cfg.IndexDir)
	if err != nil {
		if errors.Is(err, catalog.ErrCatalogNotFound) {
			return fmt.Errorf("catalog not readable: %w", err)
		}
		var rowErr *catalog.RowError
		if errors.As(err, &rowErr) {
			return fmt.Errorf("ingestion aborted (no partial index written): %w", rowErr)
		}
		return fmt.Errorf("ingestion failed: %w", err)
	}

	if !quiet {
		fmt.Fprintf(cmd.OutOrStdout(), "Indexed %d products into %s\n", count, cfg.IndexDir)
	}
	return nil
}
