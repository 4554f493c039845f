package pages

import (
	"fmt"
	"strconv"
	"time"

	"github.com/a-h/templ"
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"triptogether_echo/internal/models"
	"triptogether_echo/web/templates/shared"
)

// LandingProps is everything the landing page needs for one render.
// State is a snapshot; views never write to it.
type LandingProps struct {
	Title         string
	Site          *models.SiteContent
	State         *models.PageState
	Toasts        []models.Notification
	ToastDuration time.Duration
	Now           time.Time
}

// Landing renders the whole page for one page session
func Landing(props LandingProps) templ.Component {
	return shared.Component(landingPage(props))
}

func landingPage(props LandingProps) g.Node {
	site := props.Site
	state := props.State

	return shared.Layout(props.Title,
		Div(Class("page"),
			navBar(site, state),
			heroSection(site, state),
			programsSection(site, state, props.Now),
			testimonialsSection(site),
			aboutSection(site),
			gallerySection(site),
			documentsSection(site, state),
			contactSection(site, state),
			footerSection(site, state),
		),
		toastStack(props.Toasts, props.ToastDuration),
	)
}

// selectButton posts SELECT_SECTION for section
func selectButton(sessionID string, section models.Section, class string, children ...g.Node) g.Node {
	return Form(
		Method("post"),
		Action(shared.SelectURL(sessionID)),
		Class("select-form"),
		Input(Type("hidden"), Name("section"), Value(string(section))),
		Button(Type("submit"), Class(class), g.Group(children)),
	)
}

func sectionHeading(title, subtitle string) g.Node {
	return Div(Class("section-heading"),
		H2(g.Text(title)),
		P(Class("muted"), g.Text(subtitle)),
	)
}

func navBar(site *models.SiteContent, state *models.PageState) g.Node {
	items := make([]g.Node, 0, len(models.NavSections))
	for _, section := range models.NavSections {
		class := "nav-link"
		active := section == state.ActiveSection
		if active {
			class += " active"
		}
		items = append(items, Li(
			g.If(active, Aria("current", "true")),
			selectButton(state.SessionID, section, class, g.Text(shared.SectionLabel(string(section)))),
		))
	}

	return Nav(Class("navbar"),
		Div(Class("container navbar-inner"),
			A(Class("brand"), Href(shared.SessionURL(state.SessionID, models.SectionHome)),
				shared.Icon("Plane", 32),
				Span(g.Text(site.Brand)),
			),
			Ul(Class("nav-links"), g.Group(items)),
			A(Class("button"), Href("#"+string(models.SectionContact)), g.Text("Get Started")),
		),
	)
}

func heroSection(site *models.SiteContent, state *models.PageState) g.Node {
	hero := site.Hero
	return Section(ID(string(models.SectionHome)), Class("hero"),
		Div(Class("container grid-2"),
			Div(Class("hero-copy"),
				H1(g.Text(hero.Headline), Br(), Span(Class("primary"), g.Text(hero.Highlight))),
				P(Class("lede"), g.Text(hero.Lede)),
				Div(Class("actions"),
					selectButton(state.SessionID, models.SectionPrograms, "button button-lg", g.Text("View Programs")),
					selectButton(state.SessionID, models.SectionContact, "button button-lg button-outline", g.Text("Contact Us")),
				),
				Div(Class("stats"),
					g.Map(hero.Stats, func(s models.Stat) g.Node {
						return Div(Class("stat"),
							Div(Class("stat-value"), g.Text(s.Value)),
							Div(Class("stat-label"), g.Text(s.Label)),
						)
					}),
				),
			),
			Div(Class("hero-media"),
				Img(Src(hero.Image.Src), Alt(hero.Image.Alt), Class("rounded shadow")),
				Div(Class("badge"),
					shared.Icon("Award", 32),
					Div(
						Div(Class("badge-title"), g.Text(hero.Badge.Value)),
						Div(Class("muted"), g.Text(hero.Badge.Label)),
					),
				),
			),
		),
	)
}

func programsSection(site *models.SiteContent, state *models.PageState, now time.Time) g.Node {
	return Section(ID(string(models.SectionPrograms)), Class("band"),
		Div(Class("container"),
			sectionHeading("Our Programs", "Discover amazing study abroad opportunities"),
			Div(Class("grid-3"),
				g.Map(site.Programs, func(p models.ProgramOffering) g.Node {
					return programCard(p, state, now)
				}),
			),
		),
	)
}

func programCard(p models.ProgramOffering, state *models.PageState, now time.Time) g.Node {
	departures := p.NextDepartures(now, 2)

	return Div(Class("card program-card"), Data("program", p.Slug),
		Div(Class("card-header"),
			Div(Class("icon-tile"), shared.Icon(p.Icon, 24)),
			H3(Class("card-title"), g.Text(p.Title)),
			P(Class("muted"), g.Text(p.Tagline)),
		),
		Div(Class("card-content"),
			Img(Src(p.ImageRef), Alt(p.ImageAlt), Class("card-image")),
			Ul(Class("facts"),
				Li(shared.Icon("Calendar", 16), Span(g.Text(p.DurationLabel()))),
				Li(shared.Icon("Users", 16), Span(g.Text(p.GroupSizeLabel()))),
				g.Map(p.Highlights, func(h string) g.Node {
					return Li(shared.Icon("BookOpen", 16), Span(g.Text(h)))
				}),
			),
			g.If(len(departures) > 0,
				P(Class("departures muted"),
					g.Text("Next departures: "),
					g.Text(formatDepartures(departures)),
				),
			),
			Div(Class("price"),
				Div(Class("price-value"), g.Text(p.PriceLabel())),
				P(Class("muted"), g.Text(p.PriceNote)),
			),
			selectButton(state.SessionID, models.SectionContact, "button button-block", g.Text("Apply Now")),
		),
	)
}

func formatDepartures(dates []time.Time) string {
	out := ""
	for i, d := range dates {
		if i > 0 {
			out += ", "
		}
		out += d.Format("Jan 2, 2006")
	}
	return out
}

func testimonialsSection(site *models.SiteContent) g.Node {
	return Section(ID(string(models.SectionTestimonials)),
		Div(Class("container"),
			sectionHeading("Student Testimonials", "Hear from our happy travelers"),
			Div(Class("grid-3"),
				g.Map(site.Testimonials, func(t models.Testimonial) g.Node {
					stars := make([]g.Node, 0, t.Rating)
					for i := 0; i < t.Rating; i++ {
						stars = append(stars, shared.Icon("Star", 16))
					}
					return Div(Class("card testimonial"),
						Div(Class("card-header"),
							Div(Class("person"),
								shared.Icon("User", 20),
								Div(
									H3(Class("card-title"), g.Text(t.Name)),
									P(Class("muted"), g.Text(t.Country)),
								),
							),
							Div(Class("rating"), Aria("label", fmt.Sprintf("%d out of 5 stars", t.Rating)), g.Group(stars)),
						),
						Div(Class("card-content"),
							P(Class("quote"), g.Textf("\"%s\"", t.Text)),
						),
					)
				}),
			),
		),
	)
}

func aboutSection(site *models.SiteContent) g.Node {
	about := site.About
	return Section(ID(string(models.SectionAbout)), Class("band"),
		Div(Class("container grid-2"),
			Div(
				H2(g.Text(about.Title)),
				Div(Class("prose"), g.Raw(markdownHTML(about.Body))),
				Div(Class("features"),
					g.Map(about.Features, func(f models.Feature) g.Node {
						return Div(Class("feature"),
							shared.Icon(f.Icon, 32),
							H3(g.Text(f.Title)),
							P(Class("muted"), g.Text(f.Description)),
						)
					}),
				),
			),
			Div(Img(Src(about.Image.Src), Alt(about.Image.Alt), Class("rounded shadow"))),
		),
	)
}

func gallerySection(site *models.SiteContent) g.Node {
	return Section(ID(string(models.SectionGallery)),
		Div(Class("container"),
			sectionHeading("Photo Gallery", "Memories from our adventures"),
			Div(Class("grid-3 gallery"),
				g.Map(site.Gallery, func(img models.Image) g.Node {
					return Img(Src(img.Src), Alt(img.Alt), g.Attr("loading", "lazy"), Class("gallery-image"))
				}),
			),
		),
	)
}

func documentsSection(site *models.SiteContent, state *models.PageState) g.Node {
	docs := site.Documents
	return Section(ID(string(models.SectionDocuments)), Class("band"),
		Div(Class("container narrow"),
			Div(Class("card"),
				Div(Class("card-header"),
					shared.Icon("FileUp", 32),
					H2(Class("card-title"), g.Text(docs.Title)),
					P(Class("muted"), g.Text(docs.Description)),
				),
				Div(Class("card-content"),
					Form(
						Method("post"),
						Action(shared.FilesURL(state.SessionID)),
						EncType("multipart/form-data"),
						Class("upload"),
						Label(For("documents-input"), Class("upload-drop"),
							shared.Icon("Upload", 48),
							Span(Class("upload-title"), g.Text("Required Documents")),
							Span(Class("muted"), g.Text(docs.Hint)),
						),
						Input(
							ID("documents-input"),
							Type("file"),
							Name("documents"),
							Multiple(),
							g.Attr("onchange", "this.form.requestSubmit()"),
						),
						Button(Type("submit"), Class("button button-outline"), g.Text("Upload")),
					),
					uploadedFiles(state),
					Div(Class("notice"),
						shared.Icon("Info", 20),
						Div(
							P(Class("notice-title"), g.Text("Required documents:")),
							Ul(g.Map(docs.Required, func(item string) g.Node { return Li(g.Text(item)) })),
						),
					),
				),
			),
		),
	)
}

// uploadedFiles renders nothing for an empty list
func uploadedFiles(state *models.PageState) g.Node {
	if len(state.Files) == 0 {
		return nil
	}

	rows := make([]g.Node, 0, len(state.Files))
	for i, name := range state.Files {
		rows = append(rows, Li(Class("file-row"), Data("index", strconv.Itoa(i)),
			shared.Icon("FileCheck", 20),
			Span(Class("file-name"), g.Text(name)),
			Form(Method("post"), Action(shared.RemoveFileURL(state.SessionID, i)),
				Button(Type("submit"), Class("button button-ghost"), Aria("label", "Remove "+name),
					shared.Icon("X", 16),
				),
			),
		))
	}

	return Div(Class("uploaded"),
		Label(g.Textf("Uploaded Files (%d)", len(state.Files))),
		Ul(Class("file-list"), g.Group(rows)),
	)
}

func contactSection(site *models.SiteContent, state *models.PageState) g.Node {
	info := site.Contact

	addressLines := make([]g.Node, 0, len(info.Address)*2)
	for i, line := range info.Address {
		if i > 0 {
			addressLines = append(addressLines, Br())
		}
		addressLines = append(addressLines, g.Text(line))
	}

	return Section(ID(string(models.SectionContact)),
		Div(Class("container narrow"),
			sectionHeading("Get In Touch", "Ready to start your adventure? Contact us today!"),
			Div(Class("grid-2"),
				Div(Class("card"),
					Div(Class("card-header"),
						H3(Class("card-title"), g.Text("Send us a message")),
						P(Class("muted"), g.Text("We'll respond within 24 hours")),
					),
					Div(Class("card-content"),
						Form(Method("post"), Action(shared.ContactURL(state.SessionID)), Class("contact-form"),
							Div(Class("field"),
								Label(For("name"), g.Text("Full Name")),
								Input(ID("name"), Name("name"), Placeholder("John Doe"), Required()),
							),
							Div(Class("field"),
								Label(For("email"), g.Text("Email")),
								Input(ID("email"), Name("email"), Type("email"), Placeholder("john@example.com"), Required()),
							),
							Div(Class("field"),
								Label(For("phone"), g.Text("Phone Number")),
								Input(ID("phone"), Name("phone"), Type("tel"), Placeholder("+1 234 567 8900")),
							),
							Div(Class("field"),
								Label(For("message"), g.Text("Message")),
								Textarea(ID("message"), Name("message"), Rows("4"), Placeholder("Tell us about your travel plans..."), Required()),
							),
							Button(Type("submit"), Class("button button-block"), g.Text("Send Message")),
						),
					),
				),
				Div(Class("stack"),
					Div(Class("card"),
						Div(Class("card-header"), H3(Class("card-title"), g.Text("Contact Information"))),
						Div(Class("card-content"),
							contactLine("Mail", "Email", g.Text(info.Email)),
							contactLine("Phone", "Phone", g.Text(info.Phone)),
							contactLine("MapPin", "Office", g.Group(addressLines)),
						),
					),
					Div(Class("card"),
						Div(Class("card-header"), H3(Class("card-title"), g.Text("Office Hours"))),
						Div(Class("card-content"),
							Table(Class("hours"),
								g.Map(info.OfficeHours, func(h models.OfficeHours) g.Node {
									return Tr(Td(Class("muted"), g.Text(h.Days)), Td(Class("strong"), g.Text(h.Hours)))
								}),
							),
						),
					),
				),
			),
		),
	)
}

func contactLine(icon, label string, value g.Node) g.Node {
	return Div(Class("contact-line"),
		shared.Icon(icon, 20),
		Div(
			P(Class("strong"), g.Text(label)),
			P(Class("muted"), value),
		),
	)
}

func footerSection(site *models.SiteContent, state *models.PageState) g.Node {
	f := site.Footer
	return Footer(Class("footer"),
		Div(Class("container footer-grid"),
			Div(
				Div(Class("brand"), shared.Icon("Plane", 24), Span(g.Text(site.Brand))),
				P(g.Text(f.Tagline)),
			),
			Div(
				H3(g.Text("Quick Links")),
				Ul(g.Map(f.QuickLinks, func(l models.Link) g.Node {
					return Li(selectButton(state.SessionID, l.Section, "link", g.Text(l.Label)))
				})),
			),
			Div(
				H3(g.Text("Programs")),
				Ul(g.Map(f.Programs, func(name string) g.Node { return Li(g.Text(name)) })),
			),
			Div(
				H3(g.Text("Follow Us")),
				Div(Class("socials"),
					g.Map(f.Socials, func(name string) g.Node {
						return Span(Class("social"), Title(name), shared.Icon(name, 18))
					}),
				),
			),
		),
		Div(Class("container copyright"), P(g.Text(f.Copyright))),
	)
}

// toastStack shows queued notifications once; CSS fades them out after duration
func toastStack(toasts []models.Notification, duration time.Duration) g.Node {
	if len(toasts) == 0 {
		return nil
	}
	style := fmt.Sprintf("animation-duration: %dms", duration.Milliseconds())

	return Div(Class("toasts"), Aria("live", "polite"),
		g.Map(toasts, func(n models.Notification) g.Node {
			return Div(Class("toast"), Role("status"), Data("toast", n.ID), Style(style),
				P(Class("toast-title"), g.Text(n.Title)),
				P(Class("toast-description"), g.Text(n.Description)),
			)
		}),
	)
}
