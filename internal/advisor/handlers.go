package advisor

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/HerbHall/netadvisor/internal/server"
	"go.uber.org/zap"
)

// maxResultsCap bounds a per-request max_results override.
const maxResultsCap = 25

// recommendRequest is the body of POST /api/v1/advisor/recommendations.
type recommendRequest struct {
	Query string `json:"query"`
	// MaxResults optionally overrides the configured default for this request.
	MaxResults int `json:"max_results,omitempty"`
}

// handleRecommend serves a recommendation query.
//
//	@Summary		Recommend network products
//	@Description	Matches a free-text query against the product catalog and returns a rendered recommendation document.
//	@Tags			advisor
//	@Accept			json
//	@Produce		json
//	@Param			request body recommendRequest true "Query and options"
//	@Success		200 {object} Response
//	@Failure		400 {object} server.Problem
//	@Router			/advisor/recommendations [post]
func (m *Module) handleRecommend(w http.ResponseWriter, r *http.Request) {
	var req recommendRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		server.BadRequest(w, "request body must be JSON with a query field", r.URL.Path)
		return
	}

	req.Query = strings.TrimSpace(req.Query)
	if req.Query == "" {
		server.BadRequest(w, "query must not be empty", r.URL.Path)
		return
	}

	maxResults := req.MaxResults
	if maxResults > maxResultsCap {
		maxResults = maxResultsCap
	}

	resp := m.service.Respond(r.Context(), req.Query, maxResults)

	m.logger.Info("query served",
		zap.Int("result_count", resp.ResultCount),
		zap.Bool("degraded", resp.Degraded),
	)

	writeJSON(w, http.StatusOK, resp)
}

// handleVocabulary returns the extractor's trigger tables.
//
//	@Summary		Intent vocabulary
//	@Description	Returns the trigger-term tables the intent extractor understands.
//	@Tags			advisor
//	@Produce		json
//	@Success		200 {object} Vocabulary
//	@Router			/advisor/vocabulary [get]
func (m *Module) handleVocabulary(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, CurrentVocabulary())
}

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}
