package shared

import (
	"context"
	"io"
	"strings"

	"github.com/a-h/templ"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

var titleCase = cases.Title(language.English)

// Component exposes a gomponents node through the templ component contract
// so handlers render every view the same way.
func Component(node g.Node) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		return node.Render(w)
	})
}

// Layout wraps body in the document shell shared by all pages
func Layout(title string, body ...g.Node) g.Node {
	return Doctype(
		HTML(
			Lang("en"),
			Head(
				Meta(Charset("utf-8")),
				Meta(Name("viewport"), Content("width=device-width, initial-scale=1")),
				TitleEl(g.Text(title)),
				Link(Rel("stylesheet"), Href("/static/css/site.css")),
			),
			Body(body...),
		),
	)
}

// SectionLabel turns an identifier like "testimonials" into "Testimonials"
func SectionLabel(id string) string {
	return titleCase.String(strings.ReplaceAll(id, "_", " "))
}
