package comps

import (
	"recipesearch/web/pages/shared"

	"github.com/rohanthewiz/element"
)

// Heading is the gradient page title with a tagline under it
type Heading struct {
	Title    string
	Subtitle string
}

func (h Heading) Render(b *element.Builder) (x any) {
	b.H1("class", "title-gradient").T(shared.Escape(h.Title))
	b.Wrap(func() {
		if h.Subtitle != "" {
			b.PClass("subtitle").T(shared.Escape(h.Subtitle))
		}
	})
	return
}
