package router

// Intent is the category a command is routed to.
type Intent string

const (
	IntentOpenGoogle    Intent = "open_google"
	IntentOpenYouTube   Intent = "open_youtube"
	IntentOpenInstagram Intent = "open_instagram"
	IntentOpenAmazon    Intent = "open_amazon"
	IntentNews          Intent = "news"
	IntentBattery       Intent = "battery"
	IntentSendEmailHint Intent = "send_email_hint"
	IntentCheckEmail    Intent = "check_email"
	IntentPlayMusic     Intent = "play_music"
	IntentAIExplicit    Intent = "ai_explicit"
	IntentCalendarStub  Intent = "calendar_stub"
	IntentExit          Intent = "exit"
	IntentAIFallback    Intent = "ai_fallback"
)

// Predicate reports whether a normalized command belongs to an intent.
type Predicate func(normalized string) bool

// Rule pairs an intent with its predicate. Rules are evaluated in order.
type Rule struct {
	Intent Intent
	Match  Predicate
}

// RouterOutput is the result of classifying a command.
type RouterOutput struct {
	Intent     Intent `json:"intent"`
	Normalized string `json:"normalized"`
	// Position is the index of the matching rule, or -1 for the fallback.
	Position int `json:"position"`
}

// WebsiteTable maps website intents to the URL they open.
type WebsiteTable map[Intent]string
