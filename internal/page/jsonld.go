package page

import (
	"github.com/a-h/templ"
	g "maragu.dev/gomponents"

	"github.com/dolinaroz/landing/internal/view"
)

type faqAnswer struct {
	Type string `json:"@type"`
	Text string `json:"text"`
}

type faqQuestion struct {
	Type           string    `json:"@type"`
	Name           string    `json:"name"`
	AcceptedAnswer faqAnswer `json:"acceptedAnswer"`
}

type faqPage struct {
	Context    string        `json:"@context"`
	Type       string        `json:"@type"`
	MainEntity []faqQuestion `json:"mainEntity"`
}

type postalAddress struct {
	Type            string `json:"@type"`
	StreetAddress   string `json:"streetAddress"`
	AddressLocality string `json:"addressLocality"`
	AddressRegion   string `json:"addressRegion"`
	AddressCountry  string `json:"addressCountry"`
}

type residence struct {
	Context string        `json:"@context"`
	Type    string        `json:"@type"`
	Name    string        `json:"name"`
	URL     string        `json:"url"`
	Address postalAddress `json:"address"`
}

// FAQSchema builds the FAQPage document from the FAQ table.
func FAQSchema(entries []FAQEntry) any {
	doc := faqPage{Context: "https://schema.org", Type: "FAQPage"}
	for _, e := range entries {
		answer := e.Answer
		if e.SchemaAnswer != "" {
			answer = e.SchemaAnswer
		}
		doc.MainEntity = append(doc.MainEntity, faqQuestion{
			Type:           "Question",
			Name:           e.Question,
			AcceptedAnswer: faqAnswer{Type: "Answer", Text: answer},
		})
	}
	return doc
}

// ResidenceSchema builds the Residence document for the page URL.
func ResidenceSchema(url string) any {
	return residence{
		Context: "https://schema.org",
		Type:    "Residence",
		Name:    ProjectName,
		URL:     url,
		Address: postalAddress{
			Type:            "PostalAddress",
			StreetAddress:   "ул. Алуштинская",
			AddressLocality: "Судак",
			AddressRegion:   "Республика Крым",
			AddressCountry:  "RU",
		},
	}
}

// StructuredData renders doc as an application/ld+json script element
// with the given id.
func StructuredData(id string, doc any) templ.Component {
	return templ.JSONScript(id, doc).WithType("application/ld+json")
}

func structuredData(id string, doc any) g.Node {
	return view.AdaptTemplToGomponent(StructuredData(id, doc))
}
