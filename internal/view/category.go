package view

import (
	"strconv"

	"github.com/a-h/templ"

	"github.com/MrSnakeDoc/faves/internal/domain"
)

// NotAListMarker replaces the entry list when a category is not an array.
const NotAListMarker = "#ERR"

// Category renders one category page: its entries in source order, then the
// entries that failed validation.
func Category(name string, p domain.Projection) templ.Component {
	return component(func(hw *htmlWriter) {
		hw.open("div", "class", "page")
		hw.element("h1", name)

		if p.NotAList {
			hw.element("p", NotAListMarker, "class", "category-error")
			hw.close("div")
			return
		}

		hw.open("div", "class", "entries")
		for _, e := range p.Entries {
			hw.render(EntryView(e))
		}
		hw.close("div")

		if len(p.Errors) > 0 {
			hw.render(entryErrors(p.Errors))
		}
		hw.close("div")
	})
}

// EntryView renders a single entry: title block, soft-tag chips, then
// hard-tag chips.
func EntryView(e domain.Entry) templ.Component {
	return component(func(hw *htmlWriter) {
		hw.open("div", "class", "entry")
		hw.open("div", "class", "entry-head")

		if e.HasLink() {
			hw.open("a", "class", "entry-link", "href", safeHref(e.Link))
			hw.element("h2", e.DisplayTitle(), "class", "entry-title")
			hw.render(LinkOut())
			hw.close("a")
		} else {
			hw.element("h2", e.DisplayTitle(), "class", "entry-title")
		}

		for _, st := range e.SoftTags {
			hw.open("div", "class", "chip soft-tag", "data-key", st.Key)
			hw.element("span", st.Key+": ", "class", "soft-tag-key")
			hw.element("span", st.Value, "class", "soft-tag-value")
			hw.close("div")
		}
		hw.close("div")

		if len(e.Tags) > 0 {
			hw.open("div", "class", "hard-tags")
			for _, tag := range e.Tags {
				hw.open("div", "class", "chip hard-tag")
				hw.element("span", "#"+tag)
				hw.close("div")
			}
			hw.close("div")
		}

		hw.close("div")
	})
}

func entryErrors(errs []domain.EntryError) templ.Component {
	return component(func(hw *htmlWriter) {
		hw.open("section", "class", "entry-errors", "role", "alert")
		hw.element("h2", strconv.Itoa(len(errs))+" entries could not be shown")
		hw.open("ul")
		for _, e := range errs {
			hw.element("li", e.Error(), "data-index", strconv.Itoa(e.Index))
		}
		hw.close("ul")
		hw.close("section")
	})
}
