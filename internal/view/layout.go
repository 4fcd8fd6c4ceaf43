package view

import (
	"github.com/a-h/templ"

	"github.com/MrSnakeDoc/faves/internal/site"
)

const (
	// NavParam is the query parameter carrying the menu state.
	NavParam = "nav"
	// NavOpen is the NavParam value for an open menu.
	NavOpen = "open"
)

// Shell is everything the layout needs besides the page body.
type Shell struct {
	Site       *site.Settings
	Categories []string // sorted
	Path       string   // current path, without query
	NavOpen    bool
	Active     string // active category, empty outside category pages
	PageTitle  string
}

// Layout wraps a page body in the document, header and side navigation.
func Layout(sh Shell, body templ.Component) templ.Component {
	return component(func(hw *htmlWriter) {
		title := sh.Site.Title
		if sh.PageTitle != "" {
			title = sh.PageTitle + " · " + sh.Site.Title
		}

		hw.raw("<!DOCTYPE html>")
		hw.open("html", "lang", "en")
		hw.open("head")
		hw.raw(`<meta charset="utf-8">`)
		hw.raw(`<meta name="viewport" content="width=device-width, initial-scale=1">`)
		hw.element("title", title)
		hw.open("link", "rel", "stylesheet", "href", "/_/static/faves.css")
		hw.close("head")
		hw.open("body")

		hw.render(header(sh))

		hw.open("main", "class", "site-main")
		hw.render(navigation(sh))
		if sh.NavOpen {
			hw.open("a", "class", "nav-overlay", "href", sh.Path, "aria-label", "close menu")
			hw.close("a")
		}
		hw.render(body)
		hw.close("main")

		hw.close("body")
		hw.close("html")
	})
}

func header(sh Shell) templ.Component {
	return component(func(hw *htmlWriter) {
		expanded, href := "false", withNavOpen(sh.Path)
		if sh.NavOpen {
			expanded, href = "true", sh.Path
		}

		hw.open("header", "class", "site-header")
		hw.open("a", "class", "nav-toggle", "href", href, "role", "button",
			"aria-label", "menu", "aria-expanded", expanded, "aria-controls", "main-nav")
		hw.text("menu")
		hw.close("a")
		hw.element("h1", sh.Site.Title)
		hw.close("header")
	})
}

func navigation(sh Shell) templ.Component {
	return component(func(hw *htmlWriter) {
		class := "nav-menu"
		if sh.NavOpen {
			class += " nav-menu-active"
		}

		hw.open("nav", "id", "main-nav", "class", class, "role", "navigation", "aria-label", "main navigation")
		hw.open("div", "class", "nav-links")
		navLink(hw, "/", "Home", sh.Path == "/")
		hw.raw("<hr>")
		for _, name := range sh.Categories {
			navLink(hw, CategoryPath(name), name, name == sh.Active)
		}
		hw.close("div")

		if len(sh.Site.Footer) > 0 {
			hw.open("footer", "class", "nav-footer")
			hw.text("Built with ")
			for i, l := range sh.Site.Footer {
				switch {
				case i == 0:
				case i == len(sh.Site.Footer)-1:
					hw.text(" and ")
				default:
					hw.text(", ")
				}
				hw.element("a", l.Label, "href", safeHref(l.Href))
			}
			hw.close("footer")
		}
		hw.close("nav")
	})
}

func navLink(hw *htmlWriter, href, label string, current bool) {
	if current {
		hw.element("a", label, "class", "navbar-item", "href", href, "aria-current", "page")
		return
	}
	hw.element("a", label, "class", "navbar-item", "href", href)
}
