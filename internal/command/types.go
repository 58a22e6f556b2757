package command

// Result is the uniform record every dispatch produces.
type Result struct {
	Message string
	// URL is set only by website intents. Empty means absent.
	URL string
}

// HasURL reports whether the result carries a URL for the caller to open.
func (r Result) HasURL() bool {
	return r.URL != ""
}

// MailSession is either a usable mailer or a failure text, never both.
type MailSession struct {
	Mailer  Mailer
	Failure string
}

// OK reports whether the session can send mail.
func (s MailSession) OK() bool {
	return s.Failure == "" && s.Mailer != nil
}

// Adapters bundles the external capabilities the dispatcher consumes.
type Adapters struct {
	AI       AI
	Battery  Battery
	Browser  Browser
	News     News
	Mail     Mail
	Music    Music
	Calendar Calendar
}

// SendEmailInput is the input of UseCase.SendEmail.
type SendEmailInput struct {
	To      string
	Subject string
	Body    string
	// Context drafts the body with AI when Body is empty.
	Context string
}
