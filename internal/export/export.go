// Package export renders the landing page into a static site that posts
// leads straight to the relay.
package export

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"path"
	"strings"

	"github.com/dolinaroz/landing/internal/page"
	"github.com/dolinaroz/landing/internal/rendering"
	"github.com/dolinaroz/landing/internal/storage"
)

// Site describes what gets exported.
type Site struct {
	Meta      page.Metadata
	Endpoint  string
	AccessKey string
	WhatsApp  string
	// Assets is the filesystem whose "static" directory is copied verbatim.
	Assets fs.FS
}

type document struct {
	path      string
	component any
}

func relative(urlPath string) string {
	return strings.TrimPrefix(urlPath, "/")
}

// Exporter writes a Site to a store.
type Exporter struct {
	store    storage.Store
	renderer rendering.Renderer
}

// New creates a new Exporter.
func New(store storage.Store, renderer rendering.Renderer) *Exporter {
	return &Exporter{store: store, renderer: renderer}
}

// Export writes every page, menu fragment and static asset of site and
// returns the written paths in order.
func (x *Exporter) Export(ctx context.Context, site Site) ([]string, error) {
	form := page.NewDirectForm(site.Endpoint, site.AccessKey, site.WhatsApp)

	open, closed := page.Menu{Open: true, Static: true}, page.Menu{Static: true}
	docs := []document{
		{"index.html", page.Landing(site.Meta, form)},
		{relative(open.URL()), page.MobileMenu(open, site.WhatsApp)},
		{relative(closed.URL()), page.MobileMenu(closed, site.WhatsApp)},
	}
	for _, doc := range page.LegalDocs {
		docs = append(docs, document{relative(doc.Path), page.LegalPage(site.Meta, doc)})
	}

	var written []string
	for _, d := range docs {
		out, err := x.renderer.RenderComponent(ctx, d.component)
		if err != nil {
			return written, fmt.Errorf("render %s: %w", d.path, err)
		}
		if err := x.save(ctx, d.path, bytes.NewReader(out)); err != nil {
			return written, err
		}
		written = append(written, d.path)
	}

	if site.Assets == nil {
		return written, nil
	}
	err := fs.WalkDir(site.Assets, "static", func(p string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		f, err := site.Assets.Open(p)
		if err != nil {
			return err
		}
		defer f.Close()
		if err := x.save(ctx, path.Clean(p), f); err != nil {
			return err
		}
		written = append(written, p)
		return nil
	})
	if err != nil {
		return written, err
	}

	slog.Info("Static site exported", "files", len(written))
	return written, nil
}

// save writes r to p and reads the file back, so a truncated or unreadable
// export fails here instead of on the static host.
func (x *Exporter) save(ctx context.Context, p string, r io.Reader) error {
	n, err := x.store.Save(ctx, p, r)
	if err != nil {
		return fmt.Errorf("write %s: %w", p, err)
	}

	f, err := x.store.Open(ctx, p)
	if err != nil {
		return fmt.Errorf("read back %s: %w", p, err)
	}
	defer f.Close()
	got, err := io.Copy(io.Discard, f)
	if err != nil {
		return fmt.Errorf("read back %s: %w", p, err)
	}
	if got != n {
		return fmt.Errorf("read back %s: got %d bytes, wrote %d", p, got, n)
	}
	return nil
}
