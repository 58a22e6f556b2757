package test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"personal-assistant/internal/router"
	"personal-assistant/pkg/log"
)

func newEngine() *gin.Engine {
	gin.SetMode(gin.TestMode)
	l := log.NewNop()
	engine := gin.New()
	RegisterRoutes(engine.Group("/test"), New(l, router.New(l)))
	return engine
}

func TestHandleClassify(t *testing.T) {
	engine := newEngine()

	tests := []struct {
		text     string
		intent   router.Intent
		position int
	}{
		{"Open YouTube please", router.IntentOpenYouTube, 1},
		{"what's my battery", router.IntentBattery, 5},
		{"tell me a joke", router.IntentAIFallback, -1},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			body, _ := json.Marshal(ClassifyRequest{Text: tt.text})
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/test/classify", bytes.NewReader(body))
			req.Header.Set("Content-Type", "application/json")
			engine.ServeHTTP(w, req)

			if w.Code != http.StatusOK {
				t.Fatalf("expected 200, got %d", w.Code)
			}
			var resp ClassifyResponse
			if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
				t.Fatalf("decode: %v", err)
			}
			if resp.Intent != string(tt.intent) || resp.Position != tt.position {
				t.Errorf("expected %s@%d, got %s@%d", tt.intent, tt.position, resp.Intent, resp.Position)
			}
		})
	}

	t.Run("missing text", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/test/classify", bytes.NewBufferString(`{}`))
		req.Header.Set("Content-Type", "application/json")
		engine.ServeHTTP(w, req)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestHandleRules(t *testing.T) {
	w := httptest.NewRecorder()
	newEngine().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/test/rules", nil))

	var resp RulesResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Count != len(router.DefaultRules()) || resp.Intents[0] != string(router.IntentOpenGoogle) {
		t.Errorf("unexpected rules: %+v", resp)
	}
}
