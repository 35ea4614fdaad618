package page_test

import (
	"bytes"
	"encoding/json"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	g "maragu.dev/gomponents"

	"github.com/dolinaroz/landing/internal/lead"
	"github.com/dolinaroz/landing/internal/page"
)

const whatsApp = "https://wa.me/79124530205"

func render(t *testing.T, n g.Node) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, n.Render(&buf))
	return buf.String()
}

func TestScrollTop(t *testing.T) {
	s := page.NewScrollTop()

	t.Run("scrolling down past the threshold shows the control", func(t *testing.T) {
		assert.False(t, s.Visible(400))
		assert.True(t, s.Visible(600))
	})

	t.Run("scrolling back below the threshold hides it", func(t *testing.T) {
		assert.True(t, s.Visible(600))
		assert.False(t, s.Visible(499))
	})

	t.Run("threshold itself is hidden", func(t *testing.T) {
		assert.False(t, s.Visible(500))
		assert.True(t, s.Visible(500.5))
	})

	t.Run("button carries threshold and initial visibility", func(t *testing.T) {
		hidden := render(t, s.Button(0))
		assert.Contains(t, hidden, `data-threshold="500"`)
		assert.Contains(t, hidden, " hidden")

		shown := render(t, s.Button(600))
		assert.NotContains(t, shown, " hidden")
	})
}

func TestMenu(t *testing.T) {
	t.Run("toggle flips state", func(t *testing.T) {
		m := page.Menu{}
		assert.True(t, m.Toggle().Open)
		assert.False(t, m.Toggle().Toggle().Open)
	})

	t.Run("urls", func(t *testing.T) {
		assert.Equal(t, "/ui/menu?open=true", page.Menu{Open: true}.URL())
		assert.Equal(t, "/ui/menu?open=false", page.Menu{}.URL())
		assert.Equal(t, "/ui/menu-open.html", page.Menu{Open: true, Static: true}.URL())
	})

	t.Run("closed menu requests the open state", func(t *testing.T) {
		out := render(t, page.MobileMenu(page.Menu{}, whatsApp))
		assert.Contains(t, out, `hx-get="/ui/menu?open=true"`)
		assert.Contains(t, out, `aria-expanded="false"`)
		assert.NotContains(t, out, "#faq")
	})

	t.Run("open menu lists links and closes on click", func(t *testing.T) {
		out := render(t, page.MobileMenu(page.Menu{Open: true}, whatsApp))
		assert.Contains(t, out, `aria-expanded="true"`)
		assert.Contains(t, out, `href="#cta"`)
		assert.Contains(t, out, "Контакты")
		assert.Equal(t, 2, strings.Count(out, `hx-get="/ui/menu?open=false"`))
	})
}

func TestLeadCard(t *testing.T) {
	t.Run("idle server form", func(t *testing.T) {
		out := render(t, page.LeadCard(page.NewServerForm("form-1", whatsApp)))
		assert.Contains(t, out, `hx-post="/leads"`)
		assert.Contains(t, out, `hx-sync="this:drop"`)
		assert.Contains(t, out, `name="form_id" value="form-1"`)
		assert.Contains(t, out, page.SubmitLabel)
		assert.Contains(t, out, page.SendingLabel)
		assert.NotContains(t, out, "access_key")
		assert.NotContains(t, out, page.SentTitle)
	})

	t.Run("direct form posts to the relay", func(t *testing.T) {
		out := render(t, page.LeadCard(page.NewDirectForm("https://api.web3forms.com/submit", "key-1", whatsApp)))
		assert.Contains(t, out, `action="https://api.web3forms.com/submit"`)
		assert.Contains(t, out, `name="access_key" value="key-1"`)
		assert.NotContains(t, out, "hx-post")
	})

	t.Run("sent replaces the form with the confirmation", func(t *testing.T) {
		v := page.NewServerForm("form-1", whatsApp).
			WithFields(lead.Fields{Name: "Анна", Phone: "1"}).
			WithStatus(lead.StatusSent)
		out := render(t, page.LeadCard(v))
		assert.Contains(t, out, "Спасибо! Заявка отправлена.")
		assert.Contains(t, out, "Мы свяжемся с вами в ближайшее время.")
		assert.NotContains(t, out, "<form")
		assert.NotContains(t, out, "Анна")
	})

	t.Run("retained values and required hint", func(t *testing.T) {
		v := page.NewServerForm("form-1", whatsApp).
			WithFields(lead.Fields{Phone: "+7 900", Message: "Хочу студию"}, "name")
		out := render(t, page.LeadCard(v))
		assert.Contains(t, out, `value="+7 900"`)
		assert.Contains(t, out, "Хочу студию")
		assert.Equal(t, 1, strings.Count(out, page.RequiredHint))
		assert.Equal(t, 1, strings.Count(out, `aria-invalid="true"`))
	})
}

func TestNotice(t *testing.T) {
	out := render(t, page.NoticeOOB(whatsApp))
	assert.Contains(t, out, `hx-swap-oob="beforeend:#notices"`)
	assert.Equal(t, 1, strings.Count(out, `role="alert"`))
	assert.Contains(t, out, page.FailureNotice)
	assert.Contains(t, out, whatsApp)
}

var ldJSON = regexp.MustCompile(`(?s)<script[^>]*type="application/ld\+json"[^>]*>(.*?)</script>`)

func TestLanding(t *testing.T) {
	meta := page.NewMetadata("https://dolina-roz.example/")
	out := render(t, page.Landing(meta, page.NewServerForm("form-1", whatsApp)))

	t.Run("document head", func(t *testing.T) {
		assert.True(t, strings.HasPrefix(out, "<!doctype html>"))
		assert.Contains(t, out, "<title>ЖК «Долина Роз» — Судак, ул. Алуштинская | бизнес‑класс у моря</title>")
		assert.Contains(t, out, `<link rel="canonical" href="https://dolina-roz.example/">`)
		assert.Contains(t, out, `<meta property="og:url" content="https://dolina-roz.example/">`)
		assert.Contains(t, out, `rel="preload" as="image"`)
	})

	t.Run("sections", func(t *testing.T) {
		for _, id := range []string{"benefits", "about", "resort", "plans", "status", "location", "faq", "cta"} {
			assert.Contains(t, out, `id="`+id+`"`)
		}
		assert.Contains(t, out, page.MapWidgetURL)
		assert.Contains(t, out, whatsApp)
		assert.Contains(t, out, page.PolicyPath)
		assert.Contains(t, out, page.ConsentPath)
	})

	t.Run("no notice on a fresh page", func(t *testing.T) {
		assert.NotContains(t, out, `role="alert"`)
	})

	t.Run("error responses", func(t *testing.T) {
		assert.Contains(t, out, `<template id="notice-template">`)
		assert.Contains(t, out, page.FailureNotice)
		assert.Contains(t, out, `{&#34;code&#34;:&#34;429&#34;,&#34;swap&#34;:true}`)
	})

	t.Run("structured data", func(t *testing.T) {
		matches := ldJSON.FindAllStringSubmatch(out, -1)
		require.Len(t, matches, 2)

		var faq struct {
			Type       string `json:"@type"`
			MainEntity []struct {
				Name           string `json:"name"`
				AcceptedAnswer struct {
					Text string `json:"text"`
				} `json:"acceptedAnswer"`
			} `json:"mainEntity"`
		}
		require.NoError(t, json.Unmarshal([]byte(matches[0][1]), &faq))
		assert.Equal(t, "FAQPage", faq.Type)
		require.Len(t, faq.MainEntity, len(page.FAQ))
		assert.Equal(t, "191 место на территории.", faq.MainEntity[4].AcceptedAnswer.Text)

		var residence map[string]any
		require.NoError(t, json.Unmarshal([]byte(matches[1][1]), &residence))
		assert.Equal(t, "Residence", residence["@type"])
		assert.Equal(t, "https://dolina-roz.example/", residence["url"])
	})

	t.Run("failed no-JS render shows exactly one notice", func(t *testing.T) {
		form := page.NewServerForm("form-2", whatsApp).WithFields(lead.Fields{Name: "Анна", Phone: "1"})
		form.Failed = true
		failed := render(t, page.Landing(meta, form))
		assert.Equal(t, 1, strings.Count(failed, `role="alert"`))
		assert.Contains(t, failed, `value="Анна"`)
	})

	t.Run("direct mode uses static menu fragments", func(t *testing.T) {
		direct := render(t, page.Landing(meta, page.NewDirectForm("https://relay", "k", whatsApp)))
		assert.Contains(t, direct, `hx-get="/ui/menu-open.html"`)
		assert.NotContains(t, direct, page.NoticeTemplateID)
	})
}

func TestLegalPage(t *testing.T) {
	out := render(t, page.LegalPage(page.NewMetadata(""), page.Policy))
	assert.Contains(t, out, "<title>Политика конфиденциальности | ЖК «Долина Роз»</title>")
	assert.Contains(t, out, page.Policy.Paragraphs[0])
	assert.Contains(t, out, `<link rel="canonical" href="/">`)
}
