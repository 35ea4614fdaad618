package view_test

import (
	"bytes"
	"context"
	"io"
	"testing"

	"github.com/a-h/templ"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"github.com/dolinaroz/landing/internal/view"
)

func TestAdapters(t *testing.T) {
	t.Run("gomponent inside templ", func(t *testing.T) {
		var buf bytes.Buffer
		err := view.AdaptGomponentToTempl(h.P(g.Text("роза"))).Render(context.Background(), &buf)
		require.NoError(t, err)
		assert.Equal(t, "<p>роза</p>", buf.String())
	})

	t.Run("templ inside gomponent", func(t *testing.T) {
		comp := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
			_, err := io.WriteString(w, "<b>Судак</b>")
			return err
		})

		var buf bytes.Buffer
		require.NoError(t, h.Div(view.AdaptTemplToGomponent(comp)).Render(&buf))
		assert.Equal(t, "<div><b>Судак</b></div>", buf.String())
	})
}
