package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"healthcare-assistant/internal/chat"
	chatHTTP "healthcare-assistant/internal/chat/delivery/http"
	"healthcare-assistant/internal/router"
)

// ── Mocks ──────────────────────────────────────────────────────────────────

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...interface{})                  {}
func (m *mockLogger) Debugf(ctx context.Context, format string, args ...interface{})  {}
func (m *mockLogger) Info(ctx context.Context, args ...interface{})                   {}
func (m *mockLogger) Infof(ctx context.Context, format string, args ...interface{})   {}
func (m *mockLogger) Warn(ctx context.Context, args ...interface{})                   {}
func (m *mockLogger) Warnf(ctx context.Context, format string, args ...interface{})   {}
func (m *mockLogger) Error(ctx context.Context, args ...interface{})                  {}
func (m *mockLogger) Errorf(ctx context.Context, format string, args ...interface{})  {}
func (m *mockLogger) DPanic(ctx context.Context, args ...interface{})                 {}
func (m *mockLogger) DPanicf(ctx context.Context, format string, args ...interface{}) {}
func (m *mockLogger) Panic(ctx context.Context, args ...interface{})                  {}
func (m *mockLogger) Panicf(ctx context.Context, format string, args ...interface{})  {}
func (m *mockLogger) Fatal(ctx context.Context, args ...interface{})                  {}
func (m *mockLogger) Fatalf(ctx context.Context, format string, args ...interface{})  {}

type mockChatUseCase struct {
	output chat.ChatOutput
	err    error
}

func (m *mockChatUseCase) Classify(ctx context.Context, input chat.ChatInput) (chat.ChatOutput, error) {
	return m.output, m.err
}

// ── Helpers ────────────────────────────────────────────────────────────────

func newChatEngine(uc chat.UseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	h := chatHTTP.New(&mockLogger{}, uc)
	chatHTTP.RegisterRoutes(engine.Group(""), h)
	return engine
}

func postChat(engine *gin.Engine, body string) *httptest.ResponseRecorder {
	req, _ := http.NewRequest(http.MethodPost, "/chat", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

// ── Tests ──────────────────────────────────────────────────────────────────

func TestChatEndpoint(t *testing.T) {
	t.Run("Clarification Response", func(t *testing.T) {
		uc := &mockChatUseCase{output: chat.ChatOutput{
			Type:           chat.TypeClarification,
			Message:        "To schedule your appointment, I need the following details:",
			RequiredFields: []string{"service_type", "preferred_date", "patient_id"},
		}}
		w := postChat(newChatEngine(uc), `{"message": "Can you help me schedule a procedure for next week?"}`)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}

		var body struct {
			Type           string   `json:"type"`
			Message        string   `json:"message"`
			RequiredFields []string `json:"required_fields"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("unmarshal error: %v", err)
		}
		if body.Type != "clarification" {
			t.Errorf("expected clarification, got %q", body.Type)
		}
		if len(body.RequiredFields) != 3 || body.RequiredFields[0] != "service_type" {
			t.Errorf("unexpected required_fields: %v", body.RequiredFields)
		}
	})

	t.Run("Unknown Response Omits Fields", func(t *testing.T) {
		uc := &mockChatUseCase{output: chat.ChatOutput{
			Type:    chat.TypeUnknown,
			Message: "I'm not sure how to help with that request. Could you please clarify?",
		}}
		w := postChat(newChatEngine(uc), `{"message": "What's the weather today?"}`)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}

		var body map[string]interface{}
		json.Unmarshal(w.Body.Bytes(), &body)
		if body["type"] != "unknown" {
			t.Errorf("expected unknown, got %v", body["type"])
		}
		if _, present := body["required_fields"]; present {
			t.Errorf("required_fields must be omitted for unknown replies: %v", body)
		}
	})

	t.Run("Missing Message Is 400", func(t *testing.T) {
		w := postChat(newChatEngine(&mockChatUseCase{}), `{}`)
		if w.Code != http.StatusBadRequest {
			t.Errorf("expected 400, got %d", w.Code)
		}
	})

	t.Run("Malformed JSON Is 400", func(t *testing.T) {
		w := postChat(newChatEngine(&mockChatUseCase{}), `{"message": `)
		if w.Code != http.StatusBadRequest {
			t.Errorf("expected 400, got %d", w.Code)
		}
	})

	t.Run("Embedding Failure Is 500", func(t *testing.T) {
		uc := &mockChatUseCase{err: fmt.Errorf("failed to classify message: %w", router.ErrEmbeddingUnavailable)}
		w := postChat(newChatEngine(uc), `{"message": "anything"}`)

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}

		var body map[string]interface{}
		json.Unmarshal(w.Body.Bytes(), &body)
		if body["error"] == "" {
			t.Errorf("expected error detail in body, got %v", body)
		}
	})

	t.Run("Unconfigured Intent Is 500", func(t *testing.T) {
		uc := &mockChatUseCase{err: chat.ErrUnconfiguredIntent}
		w := postChat(newChatEngine(uc), `{"message": "prior auth"}`)

		if w.Code != http.StatusInternalServerError {
			t.Errorf("expected 500, got %d", w.Code)
		}
	})
}
