package adapter

// Adapter texts returned to the user.
const (
	MsgAIUnavailable      = "AI backend not available (no LLM provider configured)."
	MsgBatteryUnavailable = "Battery info not available on this system."
	MsgNewsNoKey          = "News API key not configured."
	MsgNewsEmpty          = "No news found."
	MsgNewsNoTitle        = "No title"
	MsgGmailNotConfigured = "Gmail is not configured."
	MsgEmailSent          = "Email sent successfully."

	newsSeparator = " | "

	emailPrompt   = "Write a professional email to a student informing them they are selected for %s."
	emailTemplate = "(AI not available) Professional email: Congratulations! You were selected for %s."
)
