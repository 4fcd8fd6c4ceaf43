package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/MrSnakeDoc/faves/internal/httpserver/deps"
	"github.com/MrSnakeDoc/faves/internal/httpserver/handlers"
)

func init() { Register(registerOps) }

func registerOps(r chi.Router, d deps.Deps) {
	ops := restricted(r, d)
	ops.Get(Internal+"/healthz", handlers.Healthz(d))
	ops.Get(Internal+"/readyz", handlers.Readyz(d))
	ops.Get(Internal+"/infra", handlers.Infra(d))
	ops.Post(Internal+"/reload", handlers.Reload(d))
	ops.Method("GET", Internal+"/metrics", d.Metrics.Handler())
}
