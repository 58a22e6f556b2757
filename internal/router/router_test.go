package router

import (
	"context"
	"testing"

	"personal-assistant/pkg/log"
)

func TestClassify(t *testing.T) {
	r := New(log.NewNop())
	ctx := context.Background()

	tests := []struct {
		command string
		want    Intent
	}{
		{"open google", IntentOpenGoogle},
		{"  Please OPEN GOOGLE now ", IntentOpenGoogle},
		{"open youtube", IntentOpenYouTube},
		{"open instagram", IntentOpenInstagram},
		{"open amazon", IntentOpenAmazon},
		{"open google and open youtube", IntentOpenGoogle},
		{"tell me the news", IntentNews},
		{"News", IntentNews},
		{"any news today", IntentAIFallback},
		{"newsworthy", IntentAIFallback},
		{"battery", IntentBattery},
		{"check battery now", IntentBattery},
		{"send email to bob", IntentSendEmailHint},
		{"please send an email", IntentSendEmailHint},
		{"check email", IntentCheckEmail},
		{"play skyfall", IntentPlayMusic},
		{"play", IntentPlayMusic},
		{"playground tips", IntentPlayMusic},
		{"what is the capital of france, ai assistant", IntentAIExplicit},
		{"email me the report", IntentAIExplicit},
		{"it failed", IntentAIExplicit},
		{"show my calendar", IntentCalendarStub},
		{"upcoming events", IntentCalendarStub},
		{"exit", IntentExit},
		{"QUIT", IntentExit},
		{"please exit now", IntentAIFallback},
		{"how tall is everest", IntentAIFallback},
		{"   ", IntentAIFallback},
	}

	for _, tt := range tests {
		t.Run(tt.command, func(t *testing.T) {
			got := r.Classify(ctx, tt.command)
			if got.Intent != tt.want {
				t.Errorf("Classify(%q) = %s, want %s", tt.command, got.Intent, tt.want)
			}
		})
	}
}

func TestClassify_Precedence(t *testing.T) {
	r := New(log.NewNop())
	ctx := context.Background()

	// Earlier rules shadow later ones.
	cases := map[string]Intent{
		"open youtube ai":          IntentOpenYouTube,
		"battery calendar":         IntentBattery,
		"check email for mail":     IntentCheckEmail,
		"play music on calendar":   IntentPlayMusic,
		"tell me the news battery": IntentNews,
		"calendar exit":            IntentCalendarStub,
	}
	for cmd, want := range cases {
		if got := r.Classify(ctx, cmd).Intent; got != want {
			t.Errorf("Classify(%q) = %s, want %s", cmd, got, want)
		}
	}
}

func TestClassify_Output(t *testing.T) {
	r := New(log.NewNop())

	out := r.Classify(context.Background(), "  Battery ")
	if out.Normalized != "battery" {
		t.Errorf("expected normalized text, got %q", out.Normalized)
	}
	if out.Position != 5 {
		t.Errorf("expected battery at rule 5, got %d", out.Position)
	}

	out = r.Classify(context.Background(), "hello there")
	if out.Position != -1 {
		t.Errorf("expected fallback position -1, got %d", out.Position)
	}
}

func TestDefaultRules_Order(t *testing.T) {
	want := []Intent{
		IntentOpenGoogle, IntentOpenYouTube, IntentOpenInstagram, IntentOpenAmazon,
		IntentNews, IntentBattery, IntentSendEmailHint, IntentCheckEmail,
		IntentPlayMusic, IntentAIExplicit, IntentCalendarStub, IntentExit,
	}
	rules := DefaultRules()
	if len(rules) != len(want) {
		t.Fatalf("expected %d rules, got %d", len(want), len(rules))
	}
	for i, rule := range rules {
		if rule.Intent != want[i] {
			t.Errorf("rule %d: got %s, want %s", i, rule.Intent, want[i])
		}
	}
}

func TestNewWithRules(t *testing.T) {
	r := NewWithRules(log.NewNop(), []Rule{{Intent: IntentExit, Match: Equals("bye")}})

	if got := r.Classify(context.Background(), "Bye"); got.Intent != IntentExit {
		t.Errorf("expected custom rule to match, got %s", got.Intent)
	}
	if got := r.Classify(context.Background(), "exit"); got.Intent != IntentAIFallback {
		t.Errorf("expected fallback with custom rules, got %s", got.Intent)
	}
}

func TestDefaultWebsites(t *testing.T) {
	sites := DefaultWebsites()
	if sites[IntentOpenAmazon] != URLAmazon || len(sites) != 4 {
		t.Errorf("unexpected website table: %v", sites)
	}
}
