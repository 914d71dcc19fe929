package handlers

import (
	"net/http"

	"github.com/yashmarathe21/blk-hacking-ind-retirement-yash-marathe/internal/metrics"
)

// Performance handles GET /performance — a process snapshot.
func (h *Handler) Performance(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, metrics.Collect())
}
