package pages

import (
	"github.com/a-h/templ"
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"triptogether_echo/web/templates/shared"
)

// ErrorPageProps describes a rendered error
type ErrorPageProps struct {
	Title        string
	Code         int
	ErrorTitle   string
	ErrorMessage string
	BackLink     string
	BackText     string
}

// ErrorPage renders an error with a link back to the landing page
func ErrorPage(props ErrorPageProps) templ.Component {
	backLink := props.BackLink
	if backLink == "" {
		backLink = "/"
	}
	backText := props.BackText
	if backText == "" {
		backText = "Back to home"
	}

	return shared.Component(shared.Layout(props.Title,
		Main(Class("error-page container narrow"),
			Div(Class("card"),
				Div(Class("card-header"),
					shared.Icon("Info", 32),
					g.If(props.Code != 0, P(Class("error-code"), g.Textf("%d", props.Code))),
					H1(Class("card-title"), g.Text(props.ErrorTitle)),
				),
				Div(Class("card-content"),
					P(Class("muted"), g.Text(props.ErrorMessage)),
					A(Class("button"), Href(backLink), g.Text(backText)),
				),
			),
		),
	))
}
