package page

import (
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

const (
	htmxSrc     = "https://unpkg.com/htmx.org@2.0.4"
	tailwindSrc = "https://cdn.tailwindcss.com"
	iconifySrc  = "https://code.iconify.design/3/3.1.1/iconify.min.js"
	StylePath   = "/static/css/site.css"
	ScriptPath  = "/static/js/page.js"
)

// htmx swaps 422 bodies so required-field hints reach the form, and 429
// bodies so their out-of-band notice is applied. Other errors raise
// htmx:responseError, which the page script turns into a notice.
const htmxConfig = `{"responseHandling":[{"code":"204","swap":false},{"code":"[23]..","swap":true},{"code":"422","swap":true},{"code":"429","swap":true},{"code":"[45]..","swap":false,"error":true}]}`

// Document wraps body content in the shared html shell.
func Document(meta Metadata, body ...g.Node) g.Node {
	return h.Doctype(
		h.HTML(
			h.Lang("ru"),
			h.Head(
				meta.head(),
				h.Meta(h.Name("htmx-config"), h.Content(htmxConfig)),
				h.Link(h.Rel("stylesheet"), h.Href(StylePath)),
				h.Script(h.Src(tailwindSrc)),
				h.Script(h.Src(iconifySrc)),
				h.Script(h.Src(htmxSrc), h.Defer()),
			),
			h.Body(
				h.Class("min-h-screen relative bg-page ink font-body"),
				decor(),
				g.Group(body),
				h.Script(h.Src(ScriptPath), h.Defer()),
			),
		),
	)
}

func decor() g.Node {
	return h.Div(
		h.Class("pointer-events-none select-none absolute inset-0 -z-10"),
		g.Attr("aria-hidden", "true"),
		h.Div(h.Class("absolute inset-0 bg-fade")),
		g.Raw(`<svg class="absolute top-0 left-1/2 -translate-x-1/2" width="1200" height="240" viewBox="0 0 1200 240" fill="none">`+
			`<path d="M0,120 C200,180 300,40 500,80 C700,120 800,200 1200,120 L1200,0 L0,0 Z" fill="#F8D7E8" opacity="0.8"/>`+
			`<path d="M0,160 C200,220 300,80 520,120 C740,160 820,220 1200,160 L1200,0 L0,0 Z" fill="#FFD1E2" opacity="0.8"/>`+
			`</svg>`),
	)
}

// Landing renders the full landing page document.
func Landing(meta Metadata, form FormView) g.Node {
	menu := Menu{Static: form.Mode == DirectMode}
	return Document(meta,
		Header(menu, form.WhatsApp),
		Notices(g.If(form.Failed, Notice(form.WhatsApp))),
		g.If(form.Mode == ServerMode, NoticeTemplate(form.WhatsApp)),
		h.Main(
			hero(form.WhatsApp),
			stats(),
			about(),
			resort(),
			plans(),
			status(),
			location(),
			faq(),
			cta(form),
		),
		Footer(),
		structuredData("residence-schema", ResidenceSchema(meta.URL)),
		NewScrollTop().Button(0),
	)
}
