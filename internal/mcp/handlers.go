// ABOUTME: MCP tool handler implementations for the stylist server
// ABOUTME: Maps soft failures to tool errors, never panics or crashes
package mcp

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/harper/stylist/internal/catalog"
	"github.com/harper/stylist/internal/core"
	"github.com/harper/stylist/internal/storage"
	"github.com/mark3labs/mcp-go/mcp"
)

// Handlers contains the handler functions for all MCP tools
type Handlers struct {
	store       *storage.Store
	recommender *core.Recommender
	indexer     *catalog.Indexer
	catalogPath string
	indexDir    string
}

// SearchProducts handles the search_products tool
func (h *Handlers) SearchProducts(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	query, err := request.RequireString("query")
	if err != nil {
		return mcp.NewToolResultError("query argument is required and must be a string"), nil
	}

	gender := request.GetString("gender", "")
	maxResults := request.GetInt("max_results", core.DefaultResultCount)

	rendered, err := h.recommender.Recommend(ctx, query, gender, maxResults)
	if err != nil {
		if errors.Is(err, core.ErrInvalidGender) {
			return mcp.NewToolResultError(err.Error()), nil
		}
		if errors.Is(err, storage.ErrStoreNotFound) {
			return mcp.NewToolResultError("product index not built yet: run ingest_catalog first"), nil
		}
		return mcp.NewToolResultError(fmt.Sprintf("search failed: %v", err)), nil
	}

	if rendered == nil {
		return mcp.NewToolResultText("No matching products found."), nil
	}

	if len(rendered.Image) > 0 {
		return mcp.NewToolResultImage(rendered.Text,
			base64.StdEncoding.EncodeToString(rendered.Image), "image/jpeg"), nil
	}
	return mcp.NewToolResultText(rendered.Text), nil
}

// SuggestOutfits handles the suggest_outfits tool
func (h *Handlers) SuggestOutfits(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	details, err := request.RequireString("details")
	if err != nil {
		return mcp.NewToolResultError("details argument is required and must be a string"), nil
	}
	event, err := request.RequireString("event")
	if err != nil {
		return mcp.NewToolResultError("event argument is required and must be a string"), nil
	}

	outfits, err := h.recommender.SuggestOutfits(ctx, details, event)
	if err != nil {
		if errors.Is(err, core.ErrNoOutfits) {
			return mcp.NewToolResultError("the stylist model produced no usable outfits, please try again"), nil
		}
		return mcp.NewToolResultError(fmt.Sprintf("outfit suggestion failed: %v", err)), nil
	}

	payload, err := json.MarshalIndent(map[string]interface{}{
		"outfits": outfits,
		"count":   len(outfits),
	}, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("encoding outfits: %v", err)), nil
	}

	return mcp.NewToolResultText(string(payload)), nil
}

// IngestCatalog handles the ingest_catalog tool
func (h *Handlers) IngestCatalog(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	path := request.GetString("catalog_path", h.catalogPath)

	count, err := h.indexer.IngestFile(ctx, path, h.indexDir)
	if err != nil {
		if errors.Is(err, catalog.ErrCatalogNotFound) {
			return mcp.NewToolResultError(fmt.Sprintf("catalog not readable: %v", err)), nil
		}
		var rowErr *catalog.RowError
		if errors.As(err, &rowErr) {
			return mcp.NewToolResultError(fmt.Sprintf("ingestion aborted, bad row: %v", rowErr)), nil
		}
		return mcp.NewToolResultError(fmt.Sprintf("ingestion failed: %v", err)), nil
	}

	// The rebuild replaced the index directory; the serving store still
	// reads the old database file until it reopens
	if h.store != nil {
		if err := h.store.Reopen(); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("index rebuilt but reopening it failed: %v", err)), nil
		}
	}

	return mcp.NewToolResultText(fmt.Sprintf("Indexed %d products into %s", count, h.indexDir)), nil
}
