package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dolinaroz/landing/internal/config"
	"github.com/dolinaroz/landing/internal/page"
)

func TestRegistry(t *testing.T) {
	cfg := &config.Config{WhatsAppNumber: "79124530205"}
	r := New(cfg)
	assert.Same(t, cfg, r.Config())

	t.Run("set and get", func(t *testing.T) {
		Set(r, WhatsAppKey, "https://wa.me/79124530205")
		got, ok := Get(r, WhatsAppKey)
		assert.True(t, ok)
		assert.Equal(t, "https://wa.me/79124530205", got)
	})

	t.Run("missing key", func(t *testing.T) {
		_, ok := Get(New(cfg), MetadataKey)
		assert.False(t, ok)
		assert.Panics(t, func() { MustGet(New(cfg), MetadataKey) })
	})

	t.Run("typed value", func(t *testing.T) {
		meta := page.NewMetadata("https://dolina-roz.example/")
		Set(r, MetadataKey, meta)
		assert.Equal(t, meta.URL, MustGet(r, MetadataKey).URL)
	})
}
