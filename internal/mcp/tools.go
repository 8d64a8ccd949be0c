// ABOUTME: MCP tool definitions and registration for the stylist server
// ABOUTME: Exposes catalog ingest, product search, and outfit suggestion
package mcp

import (
	"github.com/harper/stylist/internal/catalog"
	"github.com/harper/stylist/internal/core"
	"github.com/harper/stylist/internal/storage"
	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"
)

// RegisterTools registers all MCP tools with the server. store is the
// serving handle that ingest_catalog reopens after a rebuild.
func RegisterTools(server *mcpserver.MCPServer, store *storage.Store, recommender *core.Recommender, indexer *catalog.Indexer, catalogPath, indexDir string) *Handlers {
	handlers := &Handlers{
		store:       store,
		recommender: recommender,
		indexer:     indexer,
		catalogPath: catalogPath,
		indexDir:    indexDir,
	}

	// 1. search_products - Semantic catalog search with gender filter
	server.AddTool(mcp.Tool{
		Name:        "search_products",
		Description: "Search the product catalog for items matching a free-text garment description. Returns ranked products with prices and a composite preview image.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"query": map[string]interface{}{
					"type":        "string",
					"description": "Free-text garment description to search for",
				},
				"gender": map[string]interface{}{
					"type":        "string",
					"description": "Optional category filter: Women or Men",
				},
				"max_results": map[string]interface{}{
					"type":        "number",
					"description": "Maximum number of products to return (default: 3)",
					"default":     3,
				},
			},
			Required: []string{"query"},
		},
	}, handlers.SearchProducts)

	// 2. suggest_outfits - Generative multi-outfit styling
	server.AddTool(mcp.Tool{
		Name:        "suggest_outfits",
		Description: "Generate structured outfit combinations for a personal style profile and an event. Returns a JSON list of outfits with Top/Bottom/Shoes/Accessories slots.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"details": map[string]interface{}{
					"type":        "string",
					"description": "Self body and style description of the user",
				},
				"event": map[string]interface{}{
					"type":        "string",
					"description": "Event the user is dressing for (e.g. 'wedding', 'job interview')",
				},
			},
			Required: []string{"details", "event"},
		},
	}, handlers.SuggestOutfits)

	// 3. ingest_catalog - Destructive full index rebuild
	server.AddTool(mcp.Tool{
		Name:        "ingest_catalog",
		Description: "Rebuild the product index from the catalog CSV. WARNING: replaces the existing index entirely; the previous index is deleted once the rebuild succeeds.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"catalog_path": map[string]interface{}{
					"type":        "string",
					"description": "Optional path to the catalog CSV (defaults to the configured catalog)",
				},
			},
		},
	}, handlers.IngestCatalog)

	return handlers
}
