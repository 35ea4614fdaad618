package page

import (
	"strings"

	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// Metadata is the document head of the landing page. It is built once at
// startup and never mutated afterwards.
type Metadata struct {
	Title              string
	Description        string
	OGTitle            string
	OGDescription      string
	OGType             string
	OGImage            string
	URL                string
	PreloadImage       string
	FontStylesheet     string
	FontPreconnects    []string
	CrossOriginConnect string
}

// NewMetadata returns the page metadata for a site served from baseURL.
// An empty baseURL falls back to a relative canonical "/".
func NewMetadata(baseURL string) Metadata {
	url := strings.TrimSpace(baseURL)
	if url == "" {
		url = "/"
	}
	return Metadata{
		Title:              "ЖК «Долина Роз» — Судак, ул. Алуштинская | бизнес‑класс у моря",
		Description:        "ЖК «Долина Роз» в Судаке (Крым): 8‑этажные дома бизнес‑класса, 316 квартир, двор с бассейном, спорт‑ и детзонами, баня. Паркинг на 191 место. ДДУ 214‑ФЗ, эскроу. Первый ввод — I кв. 2027.",
		OGTitle:            "ЖК «Долина Роз» — новый квартал в Судаке",
		OGDescription:      "Исторический район у гор и моря: бассейн под открытым небом, аркады с розами, террасы, прогулочные аллеи.",
		OGType:             "website",
		OGImage:            "/og-image-dolina-roz.jpg",
		URL:                url,
		PreloadImage:       HeroImageURL,
		FontStylesheet:     "https://fonts.googleapis.com/css2?family=Montserrat:wght@400;500;700&family=Prata&display=swap",
		FontPreconnects:    []string{"https://fonts.googleapis.com"},
		CrossOriginConnect: "https://fonts.gstatic.com",
	}
}

// WithTitle returns a copy with a different document title. Legal pages use it.
func (m Metadata) WithTitle(title string) Metadata {
	m.Title = title
	return m
}

func (m Metadata) head() g.Node {
	return g.Group([]g.Node{
		h.Meta(h.Charset("utf-8")),
		h.Meta(h.Name("viewport"), h.Content("width=device-width, initial-scale=1.0")),
		h.TitleEl(g.Text(m.Title)),
		h.Meta(h.Name("description"), h.Content(m.Description)),
		property("og:title", m.OGTitle),
		property("og:description", m.OGDescription),
		property("og:type", m.OGType),
		property("og:image", m.OGImage),
		property("og:url", m.URL),
		h.Link(h.Rel("canonical"), h.Href(m.URL)),
		g.If(m.PreloadImage != "",
			h.Link(h.Rel("preload"), g.Attr("as", "image"), h.Href(m.PreloadImage)),
		),
		g.Map(m.FontPreconnects, func(href string) g.Node {
			return h.Link(h.Rel("preconnect"), h.Href(href))
		}),
		g.If(m.CrossOriginConnect != "",
			h.Link(h.Rel("preconnect"), h.Href(m.CrossOriginConnect), g.Attr("crossorigin", "")),
		),
		g.If(m.FontStylesheet != "",
			h.Link(h.Rel("stylesheet"), h.Href(m.FontStylesheet)),
		),
	})
}

func property(name, content string) g.Node {
	return h.Meta(g.Attr("property", name), h.Content(content))
}
