package openai

const (
	DefaultModel = "gpt-4o-mini"

	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// ChatRequest is a provider-neutral chat completion request.
type ChatRequest struct {
	System      string
	Messages    []ChatMessage
	Temperature float64
	MaxTokens   int
}

// ChatMessage is one conversation turn.
type ChatMessage struct {
	Role    string
	Content string
}

// ChatResponse is the first choice of a completion with usage counters.
type ChatResponse struct {
	Content      string
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}
