package router

import (
	"context"
	"strings"
)

// Normalize lowercases and trims a command the way every predicate expects.
func Normalize(command string) string {
	return strings.ToLower(strings.TrimSpace(command))
}

// Classify returns the first matching intent, or IntentAIFallback.
func (r *SubstringRouter) Classify(ctx context.Context, command string) RouterOutput {
	c := Normalize(command)

	for i, rule := range r.rules {
		if rule.Match(c) {
			r.l.Debugf(ctx, "%s: rule=%d intent=%s", LogPrefixClassify, i, rule.Intent)
			return RouterOutput{Intent: rule.Intent, Normalized: c, Position: i}
		}
	}

	r.l.Debugf(ctx, "%s: no rule matched, intent=%s", LogPrefixClassify, IntentAIFallback)
	return RouterOutput{Intent: IntentAIFallback, Normalized: c, Position: -1}
}

// Rules returns the ordered rule list.
func (r *SubstringRouter) Rules() []Rule {
	return r.rules
}

// DefaultRules is the assistant's precedence order. Earlier rules shadow later ones:
// "battery calendar" is battery, "open youtube ai" opens YouTube.
func DefaultRules() []Rule {
	return []Rule{
		{IntentOpenGoogle, Contains(PhraseOpenGoogle)},
		{IntentOpenYouTube, Contains(PhraseOpenYouTube)},
		{IntentOpenInstagram, Contains(PhraseOpenInstagram)},
		{IntentOpenAmazon, Contains(PhraseOpenAmazon)},
		{IntentNews, Any(Contains(PhraseTellNews), Equals(PhraseNews))},
		{IntentBattery, Contains(PhraseBattery)},
		{IntentSendEmailHint, Contains(PhraseSendEmail, PhraseSendAnEmail)},
		{IntentCheckEmail, Contains(PhraseCheckEmail)},
		{IntentPlayMusic, HasPrefix(PhrasePlay)},
		// Matches any word containing "ai" ("mail", "fail") too.
		{IntentAIExplicit, Contains(PhraseAI)},
		{IntentCalendarStub, Contains(PhraseCalendar, PhraseEvents)},
		{IntentExit, Equals(PhraseExit, PhraseQuit)},
	}
}

// DefaultWebsites is the URL table for the open_* intents.
func DefaultWebsites() WebsiteTable {
	return WebsiteTable{
		IntentOpenGoogle:    URLGoogle,
		IntentOpenYouTube:   URLYouTube,
		IntentOpenInstagram: URLInstagram,
		IntentOpenAmazon:    URLAmazon,
	}
}

// Contains matches when any of the phrases is a substring.
func Contains(phrases ...string) Predicate {
	return func(c string) bool {
		for _, p := range phrases {
			if strings.Contains(c, p) {
				return true
			}
		}
		return false
	}
}

// Equals matches when the command is exactly one of the phrases.
func Equals(phrases ...string) Predicate {
	return func(c string) bool {
		for _, p := range phrases {
			if c == p {
				return true
			}
		}
		return false
	}
}

// HasPrefix matches when the command starts with prefix.
func HasPrefix(prefix string) Predicate {
	return func(c string) bool {
		return strings.HasPrefix(c, prefix)
	}
}

// Any matches when any predicate matches.
func Any(preds ...Predicate) Predicate {
	return func(c string) bool {
		for _, p := range preds {
			if p(c) {
				return true
			}
		}
		return false
	}
}
