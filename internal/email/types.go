package email

// Email is one outgoing message. To may hold many recipients;
// providers send a single message addressed to all of them.
// Bcc recipients never appear in the headers other recipients see.
type Email struct {
	From     string
	To       []string
	Bcc      []string
	ReplyTo  string
	Subject  string
	Body     string
	HTMLBody string
}

// TemplateData is passed to html templates.
type TemplateData map[string]interface{}
