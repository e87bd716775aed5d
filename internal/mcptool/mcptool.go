// Package mcptool exposes the recommendation pipeline as Model Context
// Protocol tools over a stdio transport, so LLM clients can call the advisor
// without going through the HTTP API.
package mcptool

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"go.uber.org/zap"

	"github.com/HerbHall/netadvisor/internal/advisor"
	"github.com/HerbHall/netadvisor/internal/search"
	"github.com/HerbHall/netadvisor/internal/version"
)

// recommendParams is the input schema of the recommend_network_products tool.
type recommendParams struct {
	Query      string `json:"query" jsonschema:"free-text description of the networking need"`
	MaxResults int    `json:"max_results,omitempty" jsonschema:"maximum number of products to return"`
}

// recommendResult mirrors the advisor response for structured output.
type recommendResult struct {
	ResultCount int  `json:"result_count"`
	Degraded    bool `json:"degraded,omitempty"`
}

// searchParams is the input schema of the search_network_products tool.
type searchParams struct {
	Query      string `json:"query" jsonschema:"search query for current product information"`
	MaxResults int    `json:"max_results,omitempty" jsonschema:"maximum number of search results"`
}

// searchResults wraps the structured output of the search tool.
type searchResults struct {
	Results []search.Result `json:"results"`
}

// NewServer builds an MCP server exposing the advisor service. searcher may
// be nil, in which case the search tool reports itself unavailable.
func NewServer(service *advisor.Service, searcher search.Searcher, logger *zap.Logger) *mcp.Server {
	if logger == nil {
		logger = zap.NewNop()
	}

	server := mcp.NewServer(&mcp.Implementation{
		Name:    "netadvisor",
		Version: version.Version,
	}, nil)

	mcp.AddTool(
		server, &mcp.Tool{
			Name:        "recommend_network_products",
			Description: "Recommend network hardware (routers, switches, firewalls, wireless) from a curated catalog based on a free-text requirement.",
		},
		func(ctx context.Context, _ *mcp.CallToolRequest, params recommendParams) (*mcp.CallToolResult, recommendResult, error) {
			if params.Query == "" {
				return nil, recommendResult{}, fmt.Errorf("query must not be empty")
			}

			resp := service.Respond(ctx, params.Query, params.MaxResults)
			logger.Info("mcp recommendation served",
				zap.Int("result_count", resp.ResultCount),
				zap.Bool("degraded", resp.Degraded),
			)

			return &mcp.CallToolResult{
				Content: []mcp.Content{&mcp.TextContent{Text: resp.Text}},
			}, recommendResult{ResultCount: resp.ResultCount, Degraded: resp.Degraded}, nil
		},
	)

	mcp.AddTool(
		server, &mcp.Tool{
			Name:        "search_network_products",
			Description: "Search the web for current network product information, pricing, and reviews.",
		},
		func(ctx context.Context, _ *mcp.CallToolRequest, params searchParams) (*mcp.CallToolResult, searchResults, error) {
			if params.Query == "" {
				return nil, searchResults{}, fmt.Errorf("query must not be empty")
			}
			if searcher == nil {
				return nil, searchResults{}, fmt.Errorf("web search is not configured; set a search API key")
			}

			results, err := searcher.Search(ctx, params.Query, params.MaxResults)
			if err != nil {
				logger.Warn("mcp search failed", zap.Error(err))
				return nil, searchResults{}, fmt.Errorf("search unavailable (%s)", search.Reason(err))
			}

			text := advisor.RenderSearchSection(results)
			if text == "" {
				text = "No search results found."
			}
			return &mcp.CallToolResult{
				Content: []mcp.Content{&mcp.TextContent{Text: text}},
			}, searchResults{Results: results}, nil
		},
	)

	return server
}

// Run serves the MCP server over stdio until ctx is cancelled or the client
// disconnects.
func Run(ctx context.Context, server *mcp.Server) error {
	return server.Run(ctx, &mcp.StdioTransport{})
}
