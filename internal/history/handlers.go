package history

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/HerbHall/netadvisor/internal/server"
	"go.uber.org/zap"
)

// maxListLimit bounds a per-request limit override.
const maxListLimit = 500

// handleListQueries returns recent recorded queries, newest first.
//
//	@Summary		List recorded queries
//	@Description	Returns the most recently served recommendation queries.
//	@Tags			history
//	@Produce		json
//	@Param			limit query int false "Maximum entries to return (default 50)"
//	@Success		200 {array} Entry
//	@Failure		400 {object} server.Problem
//	@Router			/history/queries [get]
func (m *Module) handleListQueries(w http.ResponseWriter, r *http.Request) {
	limit := 50
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			server.BadRequest(w, "limit must be a positive integer", r.URL.Path)
			return
		}
		limit = n
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}

	entries, err := m.store.List(r.Context(), limit)
	if err != nil {
		m.logger.Error("failed to list history", zap.Error(err))
		server.InternalError(w, "failed to load query history", r.URL.Path)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(entries)
}
