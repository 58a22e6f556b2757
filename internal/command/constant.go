package command

// Fixed message texts.
const (
	MsgNoCommand         = "No command provided."
	MsgSendEmailHint     = "To send email use /email endpoint."
	MsgGmailLoginOK      = "Gmail login successful."
	MsgCalendarStub      = "Calendar API not fully implemented in web mode."
	MsgGoodbye           = "Goodbye."
	MsgRecipientRequired = "Recipient is required."

	ErrorPrefix = "Error: "
)

// Defaults for the news intent.
const (
	DefaultNewsCountry = "us"
	DefaultNewsLimit   = 5
)
