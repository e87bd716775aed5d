// Package search provides the optional real-time web search augmenter. The
// advisor treats it as an injected capability: failures degrade the response,
// they never abort the recommendation pipeline.
package search

import "context"

// Result is a single web search hit.
type Result struct {
	Title   string `json:"title"`
	Snippet string `json:"snippet"`
	URL     string `json:"url"`
}

// Searcher is the single-operation capability the advisor depends on.
// Implementations must honor context cancellation and deadlines.
type Searcher interface {
	Search(ctx context.Context, query string, maxResults int) ([]Result, error)
}
