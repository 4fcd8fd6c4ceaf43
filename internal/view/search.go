package view

import (
	"strconv"

	"github.com/a-h/templ"

	"github.com/MrSnakeDoc/faves/internal/domain"
)

// SearchPath is the route of the search page.
const SearchPath = "/_/search"

// Search renders the search form and ranked results.
func Search(query string, results []*domain.Candidate) templ.Component {
	return component(func(hw *htmlWriter) {
		hw.open("div", "class", "page")
		hw.element("h1", "Search")

		hw.open("form", "class", "search-form", "method", "get", "action", SearchPath, "role", "search")
		hw.open("input", "type", "search", "name", "q", "value", query, "aria-label", "search entries")
		hw.close("form")

		if query != "" {
			hw.element("p", strconv.Itoa(len(results))+" results", "class", "search-count")
		}

		for _, c := range results {
			hw.open("div", "class", "search-hit")
			hw.element("a", c.Hit.Category, "class", "search-hit-category", "href", CategoryPath(c.Hit.Category))
			hw.render(EntryView(c.Hit.Entry))
			hw.close("div")
		}
		hw.close("div")
	})
}
