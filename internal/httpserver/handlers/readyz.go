package handlers

import (
	"net/http"

	"github.com/MrSnakeDoc/faves/internal/httpserver/deps"
)

type readyzResponse struct {
	Ready      bool   `json:"ready"`
	Categories int    `json:"categories"`
	Reason     string `json:"reason,omitempty"`
}

// Readyz reports ready once a catalog is installed.
func Readyz(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if d.Snapshot.Current() == nil {
			writeJSON(w, d, http.StatusServiceUnavailable, readyzResponse{Reason: "catalog not loaded"})
			return
		}
		writeJSON(w, d, http.StatusOK, readyzResponse{Ready: true, Categories: d.Snapshot.Count()})
	}
}
