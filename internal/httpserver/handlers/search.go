package handlers

import (
	"net/http"
	"strings"

	"github.com/MrSnakeDoc/faves/internal/domain"
	"github.com/MrSnakeDoc/faves/internal/httpserver/deps"
	"github.com/MrSnakeDoc/faves/internal/logger"
	"github.com/MrSnakeDoc/faves/internal/view"
)

// Search ranks every valid entry against ?q=. An empty query renders the
// bare form.
func Search(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		raw := strings.TrimSpace(r.URL.Query().Get("q"))

		var results []*domain.Candidate
		if query := domain.ParseQuery(raw); !query.Empty() {
			results = domain.RankEntries(query, d.Snapshot.Hits())

			if d.MaxSearchResults > 0 && len(results) > d.MaxSearchResults {
				results = results[:d.MaxSearchResults]
			}

			d.Logger.Debug("search request",
				logger.String("query", raw),
				logger.Int("results", len(results)))
		}

		renderPage(w, r, d, http.StatusOK, shell(r, d, "", "Search"), view.Search(raw, results))
	}
}
