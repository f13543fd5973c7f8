package email

// Message is a single outbound email.
type Message struct {
	To       []string
	Subject  string
	HTMLBody string
	TextBody string
}

// TemplateData feeds the HTML templates.
type TemplateData struct {
	Name      string
	ActionURL string
}
