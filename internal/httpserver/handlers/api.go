package handlers

import (
	"net/http"

	"github.com/MrSnakeDoc/faves/internal/domain"
	"github.com/MrSnakeDoc/faves/internal/httpserver/deps"
	"github.com/MrSnakeDoc/faves/internal/view"
)

type categorySummary struct {
	Name    string `json:"name"`
	Path    string `json:"path"`
	Entries int    `json:"entries"`
	Invalid int    `json:"invalid"`
	IsList  bool   `json:"is_list"`
}

type categoriesResponse struct {
	Categories []categorySummary `json:"categories"`
}

type categoryResponse struct {
	Name string `json:"name"`
	domain.Projection
}

type apiError struct {
	Error string `json:"error"`
}

// Categories lists every category with its entry counts.
func Categories(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		set := d.Snapshot.Current()
		names := set.Names()

		resp := categoriesResponse{Categories: make([]categorySummary, 0, len(names))}
		for _, name := range names {
			content, _ := set.Get(name)
			p := domain.Project(content)
			resp.Categories = append(resp.Categories, categorySummary{
				Name:    name,
				Path:    view.CategoryPath(name),
				Entries: len(p.Entries),
				Invalid: len(p.Errors),
				IsList:  !p.NotAList,
			})
		}

		writeJSON(w, d, http.StatusOK, resp)
	}
}

// CategoryJSON returns the projection of one category, the same one its page
// renders.
func CategoryJSON(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		name, ok := pathParam(r, "name")
		if !ok {
			writeJSON(w, d, http.StatusBadRequest, apiError{Error: "invalid category name"})
			return
		}

		content, found := d.Snapshot.Current().Get(name)
		if !found {
			writeJSON(w, d, http.StatusNotFound, apiError{Error: "category not found"})
			return
		}

		writeJSON(w, d, http.StatusOK, categoryResponse{Name: name, Projection: domain.Project(content)})
	}
}
