package handlers

import (
	"context"
	"net/http"
	"net/url"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/MrSnakeDoc/faves/internal/domain"
	"github.com/MrSnakeDoc/faves/internal/httpserver/deps"
	"github.com/MrSnakeDoc/faves/internal/logger"
	"github.com/MrSnakeDoc/faves/internal/view"
)

// viewCountTimeout bounds the Redis round trip of a page view.
const viewCountTimeout = 250 * time.Millisecond

func Home(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		renderPage(w, r, d, http.StatusOK, shell(r, d, "", ""), view.Home(d.Site))
	}
}

// NotFound serves /404 and every unmatched path.
func NotFound(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		renderPage(w, r, d, http.StatusNotFound, shell(r, d, "", "Not found"), view.NotFound())
	}
}

// Secure is a placeholder page for /faves/{category}.
func Secure(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		category, ok := pathParam(r, "category")
		if !ok || category == "" {
			http.Redirect(w, r, NotFoundPath, http.StatusFound)
			return
		}
		renderPage(w, r, d, http.StatusOK, shell(r, d, "", category), view.Secure(d.Site, category))
	}
}

// Category renders one category. Unknown names redirect to the not-found
// page; invalid entries are listed on the page and logged at warn.
func Category(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		name, ok := pathParam(r, "name")
		if !ok || name == "" {
			http.Redirect(w, r, NotFoundPath, http.StatusFound)
			return
		}

		content, found := d.Snapshot.Current().Get(name)
		if !found {
			d.Logger.Debug("unknown category", logger.String("category", name))
			http.Redirect(w, r, NotFoundPath, http.StatusFound)
			return
		}

		p := domain.Project(content)
		logProjection(d.Logger, name, p)
		d.Metrics.ObserveRender(name, len(p.Errors))
		countView(r.Context(), d, name)

		renderPage(w, r, d, http.StatusOK, shell(r, d, name, name), view.Category(name, p))
	}
}

// pathParam returns a decoded URL parameter. chi matches against RawPath
// when the request has one, so the value is still escaped in that case
// (an encoded "/" for instance).
func pathParam(r *http.Request, key string) (string, bool) {
	v := chi.URLParam(r, key)
	if r.URL.RawPath == "" {
		return v, true
	}
	decoded, err := url.PathUnescape(v)
	if err != nil {
		return "", false
	}
	return decoded, true
}

func logProjection(log logger.Logger, name string, p domain.Projection) {
	if p.NotAList {
		log.Warn("category is not a list", logger.String("category", name))
		return
	}
	for _, e := range p.Errors {
		log.Warn("skipping invalid entry",
			logger.String("category", name),
			logger.Int("index", e.Index),
			logger.String("reason", e.Reason))
	}
}

// countView bumps the view counter. Failures never affect the page.
func countView(ctx context.Context, d deps.Deps, name string) {
	if d.Views == nil {
		return
	}
	ctx, cancel := context.WithTimeout(ctx, viewCountTimeout)
	defer cancel()

	if _, err := d.Views.IncrementViews(ctx, name); err != nil {
		d.Logger.Warn("failed to count category view",
			logger.String("category", name),
			logger.Error(err))
	}
}
