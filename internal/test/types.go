package test

// ClassifyRequest represents a classify request
type ClassifyRequest struct {
	Text string `json:"text" binding:"required"`
}

// ClassifyResponse represents a classify response
type ClassifyResponse struct {
	Success    bool   `json:"success"`
	Intent     string `json:"intent,omitempty"`
	Normalized string `json:"normalized"`
	Position   int    `json:"position"`
	Text       string `json:"text"`
	Error      string `json:"error,omitempty"`
	Details    string `json:"details,omitempty"`
}

// RulesResponse lists the intents in evaluation order
type RulesResponse struct {
	Intents []string `json:"intents"`
	Count   int      `json:"count"`
}

// HealthCheckResponse represents a health check response
type HealthCheckResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}
