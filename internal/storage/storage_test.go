package storage

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAferoStore(t *testing.T) {
	memFs := afero.NewMemMapFs()
	store := NewAferoStore(memFs)
	ctx := context.Background()

	t.Run("save creates parents", func(t *testing.T) {
		n, err := store.Save(ctx, "static/js/page.js", strings.NewReader("console.log(1)"))
		require.NoError(t, err)
		assert.EqualValues(t, len("console.log(1)"), n)

		exists, err := afero.Exists(memFs, "static/js/page.js")
		require.NoError(t, err)
		assert.True(t, exists)
	})

	t.Run("save replaces content", func(t *testing.T) {
		_, err := store.Save(ctx, "index.html", strings.NewReader("a much longer first version"))
		require.NoError(t, err)
		_, err = store.Save(ctx, "index.html", strings.NewReader("short"))
		require.NoError(t, err)

		f, err := store.Open(ctx, "index.html")
		require.NoError(t, err)
		defer f.Close()
		b, err := io.ReadAll(f)
		require.NoError(t, err)
		assert.Equal(t, "short", string(b))
	})

	t.Run("canceled context", func(t *testing.T) {
		cctx, cancel := context.WithCancel(ctx)
		cancel()
		_, err := store.Save(cctx, "x.html", strings.NewReader("x"))
		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestDirStore(t *testing.T) {
	memFs := afero.NewMemMapFs()
	store := NewDirStore(memFs, "/out")

	_, err := store.Save(context.Background(), "policy.html", strings.NewReader("<p>policy</p>"))
	require.NoError(t, err)

	b, err := afero.ReadFile(memFs, "/out/policy.html")
	require.NoError(t, err)
	assert.Equal(t, "<p>policy</p>", string(b))
}
