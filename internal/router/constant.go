package router

// Log prefixes
const (
	LogPrefixClassify = "internal.router.Classify"
)

// Phrases matched against the normalized command.
const (
	PhraseOpenGoogle    = "open google"
	PhraseOpenYouTube   = "open youtube"
	PhraseOpenInstagram = "open instagram"
	PhraseOpenAmazon    = "open amazon"
	PhraseTellNews      = "tell me the news"
	PhraseNews          = "news"
	PhraseBattery       = "battery"
	PhraseSendEmail     = "send email"
	PhraseSendAnEmail   = "send an email"
	PhraseCheckEmail    = "check email"
	PhrasePlay          = "play"
	PhraseAI            = "ai"
	PhraseCalendar      = "calendar"
	PhraseEvents        = "events"
	PhraseExit          = "exit"
	PhraseQuit          = "quit"
)

// Default website URLs.
const (
	URLGoogle    = "https://google.com"
	URLYouTube   = "https://youtube.com"
	URLInstagram = "https://instagram.com"
	URLAmazon    = "https://amazon.com"
)
