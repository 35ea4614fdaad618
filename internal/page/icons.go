package page

import (
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// Icon renders an iconify placeholder such as "lucide:map-pin".
func Icon(name, class string) g.Node {
	return h.Span(
		h.Class("iconify inline-block "+class),
		g.Attr("data-icon", name),
		g.Attr("aria-hidden", "true"),
	)
}

func iconWrap(name string) g.Node {
	return h.Div(
		h.Class("w-10 h-10 rounded-xl grid place-items-center flex-none bg-petal ink"),
		Icon(name, "w-[18px] h-[18px]"),
	)
}
