package page

import (
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// LegalDoc is a plain text page linked from the form and footer.
type LegalDoc struct {
	Path       string
	Title      string
	Paragraphs []string
}

var Policy = LegalDoc{
	Path:  PolicyPath,
	Title: "Политика конфиденциальности",
	Paragraphs: []string{
		"Настоящая политика описывает, как обрабатываются персональные данные, которые вы оставляете в форме заявки на сайте ЖК «Долина Роз».",
		"Мы получаем имя, номер телефона, а также адрес электронной почты и комментарий, если вы их указали. Данные используются только для того, чтобы связаться с вами и направить подборку планировок и условий покупки.",
		"Заявка передаётся через сервис приёма форм и не публикуется. Данные не передаются третьим лицам, за исключением случаев, предусмотренных законодательством Российской Федерации.",
		"Вы можете отозвать согласие на обработку персональных данных, написав нам в WhatsApp.",
	},
}

var Consent = LegalDoc{
	Path:  ConsentPath,
	Title: "Согласие на обработку персональных данных",
	Paragraphs: []string{
		"Отправляя форму на сайте ЖК «Долина Роз», я даю согласие на обработку моих персональных данных: имени, номера телефона, адреса электронной почты и текста комментария.",
		"Цель обработки: консультация по объектам жилого комплекса, направление планировок, цен и условий покупки.",
		"Согласие действует до его отзыва. Отзыв направляется в свободной форме через WhatsApp.",
	},
}

// LegalDocs lists every legal page the site serves.
var LegalDocs = []LegalDoc{Policy, Consent}

// LegalPage renders doc as a standalone document.
func LegalPage(meta Metadata, doc LegalDoc) g.Node {
	return Document(meta.WithTitle(doc.Title+" | "+ProjectName),
		h.Main(
			h.Class("max-w-3xl mx-auto px-4 py-14"),
			h.A(h.Href("/"), h.Class("text-sm underline link-legal"), g.Text("← На главную")),
			h.H1(h.Class("mt-6 text-2xl md:text-3xl font-bold font-display"), g.Text(doc.Title)),
			g.Map(doc.Paragraphs, func(p string) g.Node {
				return h.P(h.Class("mt-4 muted"), g.Text(p))
			}),
		),
		Footer(),
	)
}
