package page

import (
	"strconv"

	g "maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	h "maragu.dev/gomponents/html"
)

const (
	MenuID      = "mobile-menu"
	ScrollTopID = "scroll-top"
	MenuPath    = "/ui/menu"
)

// Menu is the open/closed state of the mobile navigation menu.
// Static menus are served from exported fragment files instead of MenuPath.
type Menu struct {
	Open   bool
	Static bool
}

// Toggle returns the menu with the opposite state.
func (m Menu) Toggle() Menu {
	m.Open = !m.Open
	return m
}

// URL is the fragment that renders the menu in the given state.
func (m Menu) URL() string {
	if m.Static {
		if m.Open {
			return "/ui/menu-open.html"
		}
		return "/ui/menu-closed.html"
	}
	return MenuPath + "?open=" + strconv.FormatBool(m.Open)
}

// MobileMenu renders the toggle button and, when open, the link panel.
// Both request the next state and replace the whole fragment.
func MobileMenu(m Menu, whatsApp string) g.Node {
	next := m.Toggle()
	closed := Menu{Static: m.Static}

	icon, label := "lucide:menu", "Меню"
	if m.Open {
		icon = "lucide:x"
	}

	return h.Div(
		h.ID(MenuID),
		h.Class("sm:hidden"),
		h.Button(
			h.Type("button"),
			h.Class("ml-2 ink"),
			g.Attr("aria-label", label),
			g.Attr("aria-expanded", strconv.FormatBool(m.Open)),
			g.Attr("aria-controls", MenuID+"-panel"),
			hx.Get(next.URL()),
			hx.Target("#"+MenuID),
			hx.Swap("outerHTML"),
			Icon(icon, "w-[22px] h-[22px]"),
		),
		g.If(m.Open,
			h.Div(
				h.ID(MenuID+"-panel"),
				h.Class("absolute left-0 right-0 top-full bg-white shadow-md border-t line"),
				hx.Get(closed.URL()),
				hx.Trigger("click"),
				hx.Target("#"+MenuID),
				hx.Swap("outerHTML"),
				h.Nav(
					h.Class("px-4 py-3 flex flex-col gap-2"),
					g.Attr("aria-label", "Мобильное меню"),
					g.Map(MobileNavItems, func(item NavItem) g.Node {
						return h.A(h.Href(item.Href), h.Class("block px-3 py-2 rounded-lg hover:bg-rose-50 muted"), g.Text(item.Label))
					}),
					h.Div(
						h.Class("mt-2 grid grid-cols-2 gap-2"),
						h.A(h.Href(whatsApp), h.Target("_blank"), h.Rel("noopener noreferrer"),
							h.Class("px-3 py-2 rounded-xl text-center btn-outline"), g.Text("WhatsApp")),
						h.A(h.Href("#cta"), h.Class("px-3 py-2 rounded-xl text-center btn-primary"), g.Text("Подбор")),
					),
				),
			),
		),
	)
}

// ScrollTop decides when the scroll-to-top control is shown.
type ScrollTop struct {
	Threshold float64
}

// NewScrollTop returns the control with the default 500px threshold.
func NewScrollTop() ScrollTop {
	return ScrollTop{Threshold: ScrollTopDefault}
}

// Visible reports whether the control is shown at the given vertical
// scroll offset. The threshold itself is still hidden.
func (s ScrollTop) Visible(offset float64) bool {
	return offset > s.Threshold
}

// Button renders the control as it looks at offset. The page script
// re-evaluates visibility on every scroll event using data-threshold.
func (s ScrollTop) Button(offset float64) g.Node {
	return h.Button(
		h.ID(ScrollTopID),
		h.Type("button"),
		h.Class("fixed bottom-5 right-5 rounded-full shadow-lg btn-primary p-3"),
		g.Attr("aria-label", "Наверх"),
		g.Attr("data-threshold", strconv.FormatFloat(s.Threshold, 'f', -1, 64)),
		g.If(!s.Visible(offset), g.Attr("hidden")),
		Icon("lucide:arrow-up", "w-5 h-5"),
	)
}
