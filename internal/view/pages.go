package view

import (
	"github.com/a-h/templ"

	"github.com/MrSnakeDoc/faves/internal/site"
)

// Home is the landing page.
func Home(s *site.Settings) templ.Component {
	return component(func(hw *htmlWriter) {
		hw.open("div", "class", "page")
		hw.element("h1", s.Welcome)
		if s.Intro != "" {
			hw.element("p", s.Intro)
		}
		if len(s.Details) > 0 {
			hw.raw("<hr>")
			hw.element("h1", "Technical Details")
			for _, d := range s.Details {
				hw.element("p", d)
			}
		}
		hw.close("div")
	})
}

// NotFound is shown for unknown paths and unknown categories.
func NotFound() templ.Component {
	return component(func(hw *htmlWriter) {
		hw.open("div", "class", "page")
		hw.element("h1", "Page not found.")
		hw.close("div")
	})
}

// Secure is a placeholder page without any function.
func Secure(s *site.Settings, category string) templ.Component {
	return component(func(hw *htmlWriter) {
		hw.open("div", "class", "page")
		hw.element("h1", category)
		hw.element("p", s.SecureNotice)
		hw.close("div")
	})
}
