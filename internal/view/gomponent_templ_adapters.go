package view

import (
	"context"
	"io"

	"github.com/a-h/templ"
	g "maragu.dev/gomponents"
)

// nodeComponent lets a gomponents tree be rendered where a templ.Component
// is expected.
type nodeComponent struct {
	node g.Node
}

func (a nodeComponent) Render(_ context.Context, w io.Writer) error {
	return a.node.Render(w)
}

// AdaptGomponentToTempl converts a gomponents node into a templ component.
func AdaptGomponentToTempl(node g.Node) templ.Component {
	return nodeComponent{node: node}
}

// templNode renders a templ component inside a gomponents tree. gomponents
// carries no context, so the component sees context.Background().
type templNode struct {
	component templ.Component
}

func (a templNode) Render(w io.Writer) error {
	return a.component.Render(context.Background(), w)
}

// AdaptTemplToGomponent converts a templ component into a gomponents node.
func AdaptTemplToGomponent(component templ.Component) g.Node {
	return templNode{component: component}
}
