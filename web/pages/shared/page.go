// Package shared contains the document shell used by every page:
// the <head> with stylesheets and scripts, and the footer.
package shared

import (
	"html"
	"strconv"

	"github.com/rohanthewiz/element"
)

// htmxSrc is the only script the pages load; it drives the loading poll
const htmxSrc = "https://unpkg.com/htmx.org@1.9.12/dist/htmx.min.js"

// Page is embedded by full pages to get a common head and footer
type Page struct {
	Title string
	// RefreshSeconds > 0 adds a meta refresh for browsers without scripting
	RefreshSeconds int
}

// Head renders the <head> element
func (p Page) Head(b *element.Builder) any {
	return b.Head().R(
		b.Meta("charset", "UTF-8"),
		b.Meta("name", "viewport", "content", "width=device-width, initial-scale=1.0"),
		b.Title().T(Escape(p.Title)),
		b.Link("rel", "stylesheet", "href", "/static/css/app.css?v=1"),
		b.Script("src", htmxSrc).R(),
		b.Wrap(func() {
			if p.RefreshSeconds > 0 {
				b.T(`<noscript><meta http-equiv="refresh" content="` +
					strconv.Itoa(p.RefreshSeconds) + `"></noscript>`)
			}
		}),
	)
}

// Footer returns the page footer component
func (p Page) Footer() Footer {
	return Footer{Credit: "Created By Ismail Ahmed Shah"}
}

// Footer is the credit line under the main box
type Footer struct {
	Credit string
}

func (f Footer) Render(b *element.Builder) any {
	b.Footer("class", "page-footer").T(Escape(f.Credit))
	return nil
}

// Escape makes user or API supplied text safe for element, which writes text and attributes verbatim
func Escape(s string) string {
	return html.EscapeString(s)
}
