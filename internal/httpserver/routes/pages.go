package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/MrSnakeDoc/faves/internal/httpserver/deps"
	"github.com/MrSnakeDoc/faves/internal/httpserver/handlers"
)

func init() { Register(registerPages) }

func registerPages(r chi.Router, d deps.Deps) {
	r.Get("/", handlers.Home(d))
	r.Get(handlers.NotFoundPath, handlers.NotFound(d))
	r.Get("/faves/{category}", handlers.Secure(d))
	r.Get("/{name}", handlers.Category(d))
}
