package page

import (
	"slices"

	g "maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	h "maragu.dev/gomponents/html"

	"github.com/dolinaroz/landing/internal/lead"
)

const (
	LeadCardID       = "lead-card"
	NoticesID        = "notices"
	NoticeTemplateID = "notice-template"
	LeadsPath        = "/leads"
)

// FormMode selects where the lead form posts.
type FormMode int

const (
	// ServerMode posts to this service, which runs the submission workflow.
	ServerMode FormMode = iota
	// DirectMode posts straight to the relay endpoint with the access key.
	DirectMode
)

// FormView is the state the lead card is rendered from.
type FormView struct {
	Mode      FormMode
	FormID    string
	Action    string
	AccessKey string
	Status    lead.Status
	Fields    lead.Fields
	Missing   []string
	WhatsApp  string
	// Failed marks a full-page render after a failed no-JS submission.
	Failed bool
}

// NewServerForm returns an Idle form bound to a form instance.
func NewServerForm(formID, whatsApp string) FormView {
	return FormView{Mode: ServerMode, FormID: formID, Action: LeadsPath, WhatsApp: whatsApp}
}

// NewDirectForm returns an Idle form that submits to the relay itself.
func NewDirectForm(endpoint, accessKey, whatsApp string) FormView {
	return FormView{Mode: DirectMode, Action: endpoint, AccessKey: accessKey, WhatsApp: whatsApp}
}

// WithStatus returns a copy in the given status. Sent clears the values.
func (v FormView) WithStatus(s lead.Status) FormView {
	v.Status = s
	if s == lead.StatusSent {
		v.Fields = lead.Fields{}
		v.Missing = nil
	}
	return v
}

// WithFields returns a copy showing the given values and required hints.
func (v FormView) WithFields(f lead.Fields, missing ...string) FormView {
	v.Fields = f
	v.Missing = missing
	return v
}

func (v FormView) missing(field string) bool {
	return slices.Contains(v.Missing, field)
}

// LeadCard renders the confirmation once the lead is Sent and the form
// otherwise. It is also the fragment htmx swaps after a submit.
func LeadCard(v FormView) g.Node {
	return h.Div(
		h.ID(LeadCardID),
		h.Class("p-6 rounded-2xl border shadow bg-white line"),
		g.If(v.Status == lead.StatusSent, confirmation()),
		g.If(v.Status != lead.StatusSent, leadForm(v)),
	)
}

func confirmation() g.Node {
	return h.Div(
		h.Class("text-center"),
		g.Attr("role", "status"),
		h.Div(h.Class("text-xl font-semibold ink"), g.Text(SentTitle)),
		h.P(h.Class("mt-2 muted"), g.Text(SentText)),
	)
}

func leadForm(v FormView) g.Node {
	return g.Group([]g.Node{
		h.Div(h.Class("text-xl font-semibold ink"), g.Text(FormTitle)),
		h.P(h.Class("text-sm mt-1 muted"), g.Text(FormLead)),
		h.Form(
			h.Class("mt-4 space-y-3"),
			h.Method("post"),
			h.Action(v.Action),
			g.Attr("data-lead-form", ""),
			g.If(v.Mode == ServerMode, g.Group([]g.Node{
				hx.Post(v.Action),
				hx.Target("#"+LeadCardID),
				hx.Swap("outerHTML"),
				g.Attr("hx-sync", "this:drop"),
				g.Attr("hx-disabled-elt", "find button[type='submit']"),
				h.Input(h.Type("hidden"), h.Name("form_id"), h.Value(v.FormID)),
			})),
			g.If(v.Mode == DirectMode,
				h.Input(h.Type("hidden"), h.Name("access_key"), h.Value(v.AccessKey)),
			),
			textInput(v, "name", "Ваше имя", v.Fields.Name, true),
			textInput(v, "phone", "Телефон", v.Fields.Phone, true),
			textInput(v, "email", "Email (по желанию)", v.Fields.Email, false),
			h.Textarea(
				h.Class("w-full px-4 py-3 rounded-xl border line"),
				h.Name("message"),
				h.Placeholder("Комментарий"),
				h.Rows("3"),
				g.Text(v.Fields.Message),
			),
			h.Button(
				h.Type("submit"),
				h.Class("w-full px-4 py-3 rounded-xl hover:shadow-md disabled:opacity-70 btn-primary"),
				h.Span(h.Class("when-idle"), g.Text(SubmitLabel)),
				h.Span(h.Class("when-sending"), g.Text(SendingLabel)),
			),
		),
		h.A(h.Href(PolicyPath), h.Class("block text-xs mt-3 underline link-legal"), g.Text("Политика конфиденциальности")),
		h.A(h.Href(ConsentPath), h.Class("block text-xs underline link-legal"), g.Text("Согласие на обработку ПДн")),
	})
}

func textInput(v FormView, name, placeholder, value string, required bool) g.Node {
	invalid := v.missing(name)
	return g.Group([]g.Node{
		h.Input(
			h.Class("w-full px-4 py-3 rounded-xl border line"),
			h.Name(name),
			h.Placeholder(placeholder),
			g.If(value != "", h.Value(value)),
			g.If(required, h.Required()),
			g.If(invalid, g.Attr("aria-invalid", "true")),
		),
		g.If(invalid, h.P(h.Class("text-xs mt-1 link-accent"), g.Text(RequiredHint))),
	})
}

// Notices is the region failure notices are appended to.
func Notices(children ...g.Node) g.Node {
	return h.Div(
		h.ID(NoticesID),
		h.Class("fixed top-20 inset-x-0 z-40 flex flex-col items-center gap-2 px-4 pointer-events-none"),
		g.Attr("aria-live", "assertive"),
		g.Group(children),
	)
}

// Notice is the failure message shown once per failed submission.
func Notice(whatsApp string) g.Node {
	return notice(whatsApp, true)
}

// NoticeTemplate holds an inert copy of the notice that the page script
// clones when a submit fails before reaching the server or with an
// unexpected status. The script adds the alert role to the clone.
func NoticeTemplate(whatsApp string) g.Node {
	return h.Template(h.ID(NoticeTemplateID), notice(whatsApp, false))
}

func notice(whatsApp string, alert bool) g.Node {
	return h.Div(
		h.Class("notice pointer-events-auto max-w-md w-full p-4 rounded-2xl shadow-lg border bg-white line flex gap-3 items-start"),
		g.If(alert, g.Attr("role", "alert")),
		Icon("lucide:circle-alert", "w-5 h-5 link-accent flex-none mt-0.5"),
		h.Div(
			h.Class("text-sm ink"),
			h.P(g.Text(FailureNotice)),
			h.A(h.Href(whatsApp), h.Target("_blank"), h.Rel("noopener noreferrer"),
				h.Class("mt-2 inline-block underline link-accent"), g.Text("Написать в WhatsApp")),
		),
		h.Button(
			h.Type("button"),
			h.Class("ml-auto muted"),
			g.Attr("aria-label", "Закрыть"),
			g.Attr("data-dismiss", ""),
			Icon("lucide:x", "w-4 h-4"),
		),
	)
}

// NoticeOOB wraps a notice for an out-of-band append to the notices region.
func NoticeOOB(whatsApp string) g.Node {
	return h.Div(
		hx.SwapOOB("beforeend:#"+NoticesID),
		Notice(whatsApp),
	)
}
