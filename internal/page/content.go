package page

// Literal content of the landing page. Nothing here changes at runtime.

const (
	ProjectName  = "ЖК «Долина Роз»"
	Address      = "Республика Крым, г. Судак, ул. Алуштинская"
	ShortAddress = "Судак, ул. Алуштинская"
	HeroImageURL = "https://images.unsplash.com/photo-1473442918382-00a3e9be7dbb?q=80&w=1600&auto=format&fit=crop"
	MapWidgetURL = "https://yandex.ru/map-widget/v1/?text=%D0%A1%D1%83%D0%B4%D0%B0%D0%BA%2C%20%D1%83%D0%BB.%20%D0%90%D0%BB%D1%83%D1%88%D1%82%D0%B8%D0%BD%D1%81%D0%BA%D0%B0%D1%8F&z=14"
	PolicyPath   = "/policy.html"
	ConsentPath  = "/consent.html"
)

// NavItem is an in-page anchor of the navigation menu.
type NavItem struct {
	Label string
	Href  string
}

// Stat is a headline number of the project.
type Stat struct {
	Value string
	Label string
	Sub   string
	Icon  string
}

// Card is a titled block of text with an icon.
type Card struct {
	Title string
	Text  string
	Icon  string
}

// Point is a single amenity line.
type Point struct {
	Icon string
	Text string
}

// AmenityGroup is a column of the resort yard section.
type AmenityGroup struct {
	Title  string
	Points []Point
}

// FAQEntry is a question shown on the page. SchemaAnswer, when set, is the
// wording published in the FAQPage structured data instead of Answer.
type FAQEntry struct {
	Question     string
	Answer       string
	SchemaAnswer string
}

var NavItems = []NavItem{
	{"О проекте", "#about"},
	{"Курортный двор", "#resort"},
	{"Планировки", "#plans"},
	{"Локация", "#location"},
	{"Сроки", "#status"},
	{"FAQ", "#faq"},
}

// MobileNavItems adds the contacts anchor that only the mobile menu shows.
var MobileNavItems = append(append([]NavItem{}, NavItems...), NavItem{"Контакты", "#cta"})

var HeroHighlights = []Point{
	{"lucide:building-2", "316 квартир"},
	{"lucide:bath", "Бассейн и баня"},
	{"lucide:square-parking", "Паркинг на 191 авто"},
	{"lucide:ruler", "Студии–2‑комн."},
}

var Stats = []Stat{
	{Value: "8", Label: "Этажей", Sub: "монолит‑кирпич", Icon: "lucide:building-2"},
	{Value: "316", Label: "Квартир", Sub: "видовые и с террасами", Icon: "lucide:home"},
	{Value: "191", Label: "М/мест", Sub: "наземный паркинг", Icon: "lucide:square-parking"},
	{Value: "I кв. 2027", Label: "Пусковой этап", Sub: "поэтапный ввод", Icon: "lucide:calendar"},
}

var AboutCards = []Card{
	{"Сроки", "Ориентир первого ввода — I квартал 2027 года; дальнейшие этапы — в 2027.", "lucide:calendar"},
	{"Конструктив", "Монолитно‑кирпичная технология, панорамное остекление, энергоэффективность.", "lucide:circuit-board"},
	{"Правовой формат", "ДДУ по 214‑ФЗ, эскроу‑счета. Бренд девелопера — «Перспектива».", "lucide:shield-check"},
	{"Масштаб", "316 квартир; паркинг на 191 место; двор с бассейном, баней, спорт‑ и детзонами.", "lucide:hammer"},
}

var KeyFacts = []Point{
	{"lucide:map-pin", ShortAddress},
	{"lucide:waves", "Пляжи Судакской бухты — ~4,8 км"},
	{"lucide:bike", "Остановка ~15 мин пешком; автовокзал ~2 км"},
}

var AmenityGroups = []AmenityGroup{
	{"Отдых и оздоровление", []Point{
		{"lucide:bath", "Открытый бассейн с зонами шезлонгов"},
		{"lucide:bath", "Традиционная баня"},
		{"lucide:sun", "Террасы и лаунж‑пространства"},
	}},
	{"Активности", []Point{
		{"lucide:dumbbell", "Многофункциональная спортплощадка"},
		{"lucide:bike", "Workout и прогулочные аллеи"},
		{"lucide:trees", "Зелёные арки из роз"},
	}},
	{"Для детей", []Point{
		{"lucide:heart-handshake", "Площадки с безопасным покрытием"},
		{"lucide:store", "Сервисы на территории"},
		{"lucide:square-parking", "Гостевые места и паркинг"},
	}},
}

var Plans = []Card{
	{"Студии", "Компактные форматы для старта/аренды", "lucide:home"},
	{"1‑комнатные", "Кухни‑гостиные, балконы и террасы", "lucide:home"},
	{"2‑комнатные", "Семейные сценарии, отдельные спальни", "lucide:home"},
}

var StatusCards = []Card{
	{"Адрес", Address, "lucide:map-pin"},
	{"Сроки", "Ближайший ввод — I кв. 2027; поэтапно в 2027", "lucide:calendar"},
	{"Девелопер", "Бренд «Перспектива». По данным ЕРЗ: ООО СЗ «Развитие Девелопмент».", "lucide:shield-check"},
	{"Парковка", "191 место на территории", "lucide:square-parking"},
}

var Distances = []string{
	"Центр Судака — ~4,7 км (10 мин на авто)",
	"Пляжи Судакской бухты — ~4,8 км (13 мин на авто)",
	"Остановки — ~15 мин пешком; автовокзал — ~2 км",
}

var FAQ = []FAQEntry{
	{Question: "Где расположен комплекс?", Answer: "Республика Крым, г. Судак, ул. Алуштинская."},
	{Question: "Какие дома и этажность?", Answer: "Бизнес‑класс, 8 этажей, монолит‑кирпич."},
	{Question: "Какая инфраструктура во дворе?", Answer: "Открытый бассейн, баня, спорт‑ и детские площадки, прогулочные аллеи."},
	{Question: "Какие сроки?", Answer: "Ближайший ввод — I кв. 2027; поэтапный ввод в 2027."},
	{Question: "Есть ли паркинг?", Answer: "Да, 191 машиноместо на территории.", SchemaAnswer: "191 место на территории."},
	{Question: "Как проходит покупка?", Answer: "ДДУ по 214‑ФЗ с расчетами через эскроу‑счета.", SchemaAnswer: "ДДУ по 214‑ФЗ и эскроу‑счета."},
}

// Copy of the lead form and its outcomes.
const (
	FormTitle        = "Получить подборку"
	FormLead         = "Оставьте контакты — вышлем планировки и цены по ЖК «Долина Роз»."
	SubmitLabel      = "Отправить"
	SendingLabel     = "Отправляем..."
	SentTitle        = "Спасибо! Заявка отправлена."
	SentText         = "Мы свяжемся с вами в ближайшее время."
	FailureNotice    = "Не удалось отправить форму. Попробуйте ещё раз или напишите в WhatsApp."
	RequiredHint     = "Заполните это поле"
	WhatsAppBaseURL  = "https://wa.me/"
	DefaultWhatsApp  = "79124530205"
	ScrollTopDefault = 500
)

// Section copy.
const (
	HeroTitle  = "«Долина Роз» — курортный квартал в Судаке"
	HeroText   = "8‑этажные дома бизнес‑класса в окружении гор и виноградников. Двор как в отеле: открытый бассейн, баня, спорт‑ и детские площадки, прогулочные аллеи с арками роз. Продажи по ДДУ (214‑ФЗ) через эскроу‑счета."
	HeroImgAlt = "Розовые арки и горы, Судак"
	AboutText  = "«Долина Роз» расположена в историческом районе Судака, среди гор и виноградников, недалеко от Судакской бухты. Концепция — «город в городе»: жилые дома и курортные активности в закрытом дворе. Сделки — по ДДУ (214‑ФЗ) c расчётами через эскроу."
	PlansText  = "Студии, 1‑ и 2‑комнатные квартиры, видовые этажи и планы с террасами. Актуальные варианты и цены отправим в PDF‑подборке."
	CTATitle   = "Оставьте заявку на подбор"
	CTAText    = "Пришлём PDF с планировками, этажами и видами, а также актуальные условия покупки и сроки."
	FooterDeal = "ДДУ по 214‑ФЗ, расчёты через эскроу‑счета."
)

// WhatsAppURL returns the wa.me link for number, or the project's default
// number when none is configured.
func WhatsAppURL(number string) string {
	if number == "" {
		number = DefaultWhatsApp
	}
	return WhatsAppBaseURL + number
}
