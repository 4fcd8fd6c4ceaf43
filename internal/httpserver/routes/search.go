package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/MrSnakeDoc/faves/internal/httpserver/deps"
	"github.com/MrSnakeDoc/faves/internal/httpserver/handlers"
	"github.com/MrSnakeDoc/faves/internal/httpserver/mw"
	"github.com/MrSnakeDoc/faves/internal/view"
)

func init() { Register(registerSearch) }

func registerSearch(r chi.Router, d deps.Deps) {
	limit := mw.RateLimit(mw.RateLimitConfig{
		Burst:      d.RateLimitBurst,
		PerMinute:  d.RateLimitPerMin,
		MaxClients: 10000,
		TrustProxy: d.TrustProxy,
	})
	r.With(limit).Get(view.SearchPath, handlers.Search(d))
}
