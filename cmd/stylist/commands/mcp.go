// ABOUTME: MCP command starts Model Context Protocol server
// ABOUTME: Exposes catalog search and outfit tools to LLM agents via stdio
package commands

import (
	"errors"
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"github.com/harper/stylist/internal/catalog"
	"github.com/harper/stylist/internal/mcp"
	"github.com/harper/stylist/internal/storage"
	mcpserver "github.com/mark3labs/mcp-go/server"
)

// NewMCPCmd creates the MCP command
func NewMCPCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mcp",
		Short: "Start MCP server for LLM agents",
		Long: `Start MCP server for LLM agents

Runs Stylist as an MCP (Model Context Protocol) server, exposing
search_products, suggest_outfits, and ingest_catalog tools over stdio
for conversation frontends and LLM agents.`,
		RunE: runMCP,
		Example: `  # Start MCP server (typically called by an agent host)
  stylist mcp

  # Configure in an MCP client config:
  # {
  #   "mcpServers": {
  #     "stylist": {
  #       "command": "stylist",
  #       "args": ["mcp"]
  #     }
  #   }
  # }`,
	}

	return cmd
}

// runMCP starts the MCP server
func runMCP(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	client, err := newClient(cfg)
	if err != nil {
		return err
	}

	// Open lazily: a missing index is built from the catalog on first use
	store, err := openStore(cmd.Context(), cfg, client)
	if err != nil {
		if errors.Is(err, storage.ErrStoreNotFound) {
			return fmt.Errorf("no index and no catalog to build one from: %w", err)
		}
		return err
	}
	defer store.Close()

	recommender := newRecommender(cfg, client, store)
	indexer := catalog.NewIndexer(client)
	indexer.SetVerbose(verbose)

	server := mcpserver.NewMCPServer(
		"Stylist Recommendation System",
		"0.1.0",
	)
	mcp.RegisterTools(server, store, recommender, indexer, cfg.CatalogPath, cfg.IndexDir)

	log.Println("Stylist MCP server starting on stdio...")
	if err := mcpserver.ServeStdio(server); err != nil {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}
