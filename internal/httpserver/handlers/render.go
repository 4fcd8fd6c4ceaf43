package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"

	"github.com/a-h/templ"

	"github.com/MrSnakeDoc/faves/internal/httpserver/deps"
	"github.com/MrSnakeDoc/faves/internal/logger"
	"github.com/MrSnakeDoc/faves/internal/view"
)

// NotFoundPath is where unknown categories are redirected.
const NotFoundPath = "/404"

// shell builds the layout state for r. The menu is open when the request
// carries ?nav=open.
func shell(r *http.Request, d deps.Deps, active, title string) view.Shell {
	return view.Shell{
		Site:       d.Site,
		Categories: d.Snapshot.Current().Names(),
		Path:       r.URL.EscapedPath(),
		NavOpen:    r.URL.Query().Get(view.NavParam) == view.NavOpen,
		Active:     active,
		PageTitle:  title,
	}
}

// renderPage renders body inside the layout. The page is buffered so a
// render failure still yields a clean 500.
func renderPage(w http.ResponseWriter, r *http.Request, d deps.Deps, status int, sh view.Shell, body templ.Component) {
	var buf bytes.Buffer
	if err := view.Layout(sh, body).Render(r.Context(), &buf); err != nil {
		d.Logger.Error("failed to render page",
			logger.String("path", r.URL.Path),
			logger.Error(err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		d.Logger.Debug("failed to write response", logger.Error(err))
	}
}

func writeJSON(w http.ResponseWriter, d deps.Deps, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		d.Logger.Debug("failed to write response", logger.Error(err))
	}
}
