package page

import (
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

func sectionTitle(icon, text string) g.Node {
	return h.H2(
		h.Class("text-2xl md:text-3xl font-bold flex items-center gap-2 font-display"),
		g.If(icon != "", Icon(icon, "w-[22px] h-[22px]")),
		g.Text(text),
	)
}

func card(c Card, extra ...g.Node) g.Node {
	return h.Div(
		h.Class("p-5 rounded-2xl border flex items-start gap-3 bg-white line"),
		iconWrap(c.Icon),
		h.Div(
			h.Div(h.Class("font-semibold ink"), g.Text(c.Title)),
			h.Div(h.Class("text-sm mt-1 muted"), g.Text(c.Text)),
			g.Group(extra),
		),
	)
}

func outlineLink(href, text string) g.Node {
	return h.A(h.Href(href), h.Target("_blank"), h.Rel("noopener noreferrer"),
		h.Class("px-5 py-3 rounded-2xl hover:shadow-md btn-outline"), g.Text(text))
}

func primaryLink(href, text string) g.Node {
	return h.A(h.Href(href), h.Class("px-5 py-3 rounded-2xl hover:shadow-md btn-primary"), g.Text(text))
}

// Header is the sticky top bar with brand, navigation and the mobile menu.
func Header(menu Menu, whatsApp string) g.Node {
	return h.Header(
		h.Class("sticky top-0 z-30 border-b backdrop-blur bg-header line"),
		h.Div(
			h.Class("relative max-w-6xl mx-auto px-5 py-3 grid grid-cols-12 items-center gap-3"),
			h.A(
				h.Href("#"),
				h.Class("col-span-8 sm:col-span-6 md:col-span-4 flex items-center gap-3 shrink-0 min-w-0"),
				h.Div(h.Class("w-9 h-9 rounded-2xl grid place-items-center font-semibold shadow flex-none brand-mark"), g.Text("Р")),
				h.Div(
					h.Class("leading-tight truncate"),
					h.Div(h.Class("font-extrabold flex items-center gap-2 truncate font-display text-lg"),
						Icon("lucide:home", "w-[18px] h-[18px] flex-none"),
						h.Span(h.Class("truncate"), g.Text(ProjectName)),
					),
					h.Div(h.Class("text-[11px] truncate muted"),
						Icon("lucide:map-pin", "w-3 h-3 mr-1"),
						g.Text(ShortAddress),
					),
				),
			),
			h.Nav(
				h.Class("hidden lg:flex col-span-4 md:col-span-5 justify-center items-center text-[13px]"),
				g.Attr("aria-label", "Главное меню"),
				h.Div(
					h.Class("flex flex-wrap gap-x-6 gap-y-2"),
					g.Map(NavItems, func(item NavItem) g.Node {
						return h.A(h.Href(item.Href), h.Class("hover:text-rose-700 whitespace-nowrap transition-colors muted"), g.Text(item.Label))
					}),
				),
			),
			h.Div(
				h.Class("col-span-4 sm:col-span-6 md:col-span-3 flex justify-end"),
				h.Div(
					h.Class("hidden sm:flex flex-wrap gap-2 md:gap-3 justify-end"),
					h.A(h.Href(whatsApp), h.Target("_blank"), h.Rel("noopener noreferrer"),
						h.Class("px-3 md:px-4 py-2 rounded-2xl hover:shadow-md btn-outline"), g.Text("WhatsApp")),
					h.A(h.Href("#cta"), h.Class("px-3 md:px-4 py-2 rounded-2xl hover:shadow-md btn-primary"), g.Text("Подбор")),
				),
				MobileMenu(menu, whatsApp),
			),
		),
	)
}

func hero(whatsApp string) g.Node {
	return h.Section(
		h.Class("relative overflow-hidden"),
		h.Div(
			h.Class("relative max-w-6xl mx-auto px-4 pt-10 pb-16 md:pb-24 grid md:grid-cols-2 gap-10 items-center"),
			h.Div(
				h.H1(h.Class("font-extrabold tracking-tight font-display ink hero-title"), g.Text(HeroTitle)),
				h.P(h.Class("mt-5 text-base md:text-lg muted max-w-[640px]"), g.Text(HeroText)),
				h.Ul(
					h.Class("mt-6 grid grid-cols-2 gap-3 text-sm"),
					g.Map(HeroHighlights, func(p Point) g.Node {
						return h.Li(h.Class("p-3 rounded-xl shadow flex items-center gap-2 border bg-white line ink"),
							Icon(p.Icon, "w-[18px] h-[18px]"), g.Text(p.Text))
					}),
				),
				h.Div(
					h.Class("mt-8 flex flex-wrap gap-3"),
					primaryLink("#cta", "Получить подборку"),
					outlineLink(whatsApp, "Связаться в WhatsApp"),
				),
			),
			h.Div(
				h.Class("rounded-3xl overflow-hidden shadow-lg border relative line h-[520px]"),
				h.Img(
					h.Src(HeroImageURL),
					h.Alt(HeroImgAlt),
					h.Class("w-full h-full object-cover"),
					g.Attr("loading", "eager"),
					g.Attr("fetchpriority", "high"),
					h.Width("1600"),
					h.Height("1040"),
				),
			),
		),
	)
}

func stats() g.Node {
	return h.Section(
		h.ID("benefits"),
		h.Class("py-10"),
		h.Div(
			h.Class("max-w-6xl mx-auto px-4 grid sm:grid-cols-2 md:grid-cols-4 gap-5 items-stretch"),
			g.Map(Stats, func(s Stat) g.Node {
				return h.Div(
					h.Class("h-full p-5 rounded-2xl border bg-white line flex items-start gap-3"),
					iconWrap(s.Icon),
					h.Div(
						h.Div(h.Class("text-xl font-semibold ink"), g.Text(s.Value)),
						h.Div(h.Class("text-sm ink"), g.Text(s.Label)),
						h.Div(h.Class("text-xs muted"), g.Text(s.Sub)),
					),
				)
			}),
		),
	)
}

func about() g.Node {
	return h.Section(
		h.ID("about"),
		h.Class("py-14 md:py-20"),
		h.Div(
			h.Class("max-w-6xl mx-auto px-4 grid md:grid-cols-3 gap-10"),
			h.Div(
				h.Class("md:col-span-2"),
				sectionTitle("", "О проекте"),
				h.P(h.Class("mt-4 muted"), g.Text(AboutText)),
				h.Div(h.Class("mt-6 grid sm:grid-cols-2 gap-4"),
					g.Map(AboutCards, func(c Card) g.Node { return card(c) }),
				),
			),
			h.Aside(
				h.Class("p-6 rounded-2xl border bg-petal line"),
				h.Div(h.Class("font-semibold flex items-center gap-2 ink"),
					Icon("lucide:store", "w-[18px] h-[18px]"), g.Text("Ключевые факты")),
				h.Ul(
					h.Class("mt-3 space-y-2 text-sm muted"),
					g.Map(KeyFacts, func(p Point) g.Node {
						return h.Li(Icon(p.Icon, "w-3.5 h-3.5 mr-2"), g.Text(p.Text))
					}),
				),
				h.A(h.Href("#cta"), h.Class("mt-5 inline-block w-full text-center px-4 py-2 rounded-xl hover:shadow-md btn-primary"),
					g.Text("Запросить подборку")),
			),
		),
	)
}

func resort() g.Node {
	return h.Section(
		h.ID("resort"),
		h.Class("py-14 md:py-20 bg-blush"),
		h.Div(
			h.Class("max-w-6xl mx-auto px-4"),
			sectionTitle("lucide:flower-2", "Курортный двор"),
			h.Div(
				h.Class("grid md:grid-cols-3 gap-6 mt-6"),
				g.Map(AmenityGroups, func(grp AmenityGroup) g.Node {
					return h.Div(
						h.Class("p-6 rounded-2xl border bg-white line"),
						h.Div(h.Class("font-semibold ink"), g.Text(grp.Title)),
						h.Ul(
							h.Class("mt-3 space-y-2 text-sm muted"),
							g.Map(grp.Points, func(p Point) g.Node {
								return h.Li(h.Class("flex gap-3 items-start"), Icon(p.Icon, "w-4 h-4"), g.Text(p.Text))
							}),
						),
					)
				}),
			),
		),
	)
}

func plans() g.Node {
	return h.Section(
		h.ID("plans"),
		h.Class("py-14 md:py-20"),
		h.Div(
			h.Class("max-w-6xl mx-auto px-4"),
			sectionTitle("lucide:ruler", "Планировочные решения"),
			h.P(h.Class("mt-3 muted"), g.Text(PlansText)),
			h.Div(
				h.Class("mt-6 grid md:grid-cols-3 gap-4"),
				g.Map(Plans, func(c Card) g.Node {
					return card(c, h.A(h.Href("#cta"), h.Class("mt-3 inline-block text-sm hover:underline link-accent"),
						g.Text("Запросить PDF‑подборку планировок")))
				}),
			),
		),
	)
}

func status() g.Node {
	return h.Section(
		h.ID("status"),
		h.Class("py-14 md:py-20 bg-blush"),
		h.Div(h.Class("max-w-6xl mx-auto px-4"), sectionTitle("lucide:file-text", "Сроки и статус")),
		h.Div(
			h.Class("max-w-6xl mx-auto px-4 mt-6 grid md:grid-cols-4 gap-4"),
			g.Map(StatusCards, func(c Card) g.Node { return card(c) }),
		),
	)
}

func location() g.Node {
	return h.Section(
		h.ID("location"),
		h.Class("py-14 md:py-20"),
		h.Div(
			h.Class("max-w-6xl mx-auto px-4 grid md:grid-cols-2 gap-8 items-start"),
			h.Div(
				sectionTitle("lucide:map-pin", "Доступность и расстояния"),
				h.Ul(
					h.Class("mt-4 space-y-2 muted"),
					g.Map(Distances, func(d string) g.Node {
						return h.Li(h.Class("flex gap-3 items-start"),
							h.Span(h.Class("mt-0.5"), Icon("lucide:bike", "w-4 h-4")), g.Text(d))
					}),
				),
			),
			h.Div(
				h.Class("rounded-2xl overflow-hidden shadow border line"),
				h.IFrame(
					h.Title("map"),
					h.Src(MapWidgetURL),
					h.Class("w-full h-[360px]"),
					g.Attr("loading", "lazy"),
				),
			),
		),
	)
}

func faq() g.Node {
	return h.Section(
		h.ID("faq"),
		h.Class("py-14 md:py-20"),
		h.Div(
			h.Class("max-w-6xl mx-auto px-4"),
			sectionTitle("", "Вопросы и ответы"),
			h.Div(
				h.Class("mt-6 grid md:grid-cols-2 gap-4"),
				g.Map(FAQ, func(e FAQEntry) g.Node {
					return h.Details(
						h.Class("p-5 rounded-2xl border bg-white line"),
						h.Summary(h.Class("font-semibold cursor-pointer ink"), g.Text(e.Question)),
						h.P(h.Class("mt-2 text-sm muted"), g.Text(e.Answer)),
					)
				}),
			),
		),
		structuredData("faq-schema", FAQSchema(FAQ)),
	)
}

func cta(form FormView) g.Node {
	return h.Section(
		h.ID("cta"),
		h.Class("py-20"),
		h.Div(
			h.Class("max-w-6xl mx-auto px-4 grid md:grid-cols-2 gap-10 items-start"),
			h.Div(
				h.Class("space-y-4"),
				sectionTitle("lucide:handshake", CTATitle),
				h.P(h.Class("muted"), g.Text(CTAText)),
				h.A(h.Href(form.WhatsApp), h.Target("_blank"), h.Rel("noopener noreferrer"),
					h.Class("inline-block px-5 py-3 rounded-2xl border hover:shadow-md btn-outline"), g.Text("Связаться в WhatsApp")),
			),
			LeadCard(form),
		),
	)
}

// Footer closes every page with the address and legal links.
func Footer() g.Node {
	return h.Footer(
		h.Class("py-12 border-t line"),
		h.Div(
			h.Class("max-w-6xl mx-auto px-4 grid md:grid-cols-3 gap-6 text-sm muted"),
			h.Div(
				h.Class("md:col-span-2"),
				h.Div(h.Class("font-semibold flex items-center gap-2 ink"),
					Icon("lucide:home", "w-4 h-4"), g.Text(ProjectName)),
				h.P(h.Class("mt-2"), g.Text(Address)),
				h.P(h.Class("mt-1"), g.Text(FooterDeal)),
			),
			h.Div(
				h.Class("md:text-right"),
				h.A(h.Href(PolicyPath), h.Class("underline"), g.Text("Политика конфиденциальности")),
				h.Span(h.Class("mx-2"), g.Text("•")),
				h.A(h.Href(ConsentPath), h.Class("underline"), g.Text("Согласие на обработку ПДн")),
			),
		),
	)
}
