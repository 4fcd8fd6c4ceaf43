package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/MrSnakeDoc/faves/internal/httpserver/deps"
	"github.com/MrSnakeDoc/faves/internal/httpserver/handlers"
)

func init() { Register(registerAPI) }

func registerAPI(r chi.Router, d deps.Deps) {
	r.Get(Internal+"/api/categories", handlers.Categories(d))
	r.Get(Internal+"/api/categories/{name}", handlers.CategoryJSON(d))
}
