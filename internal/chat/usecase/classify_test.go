package usecase_test

import (
	"context"
	"errors"
	"testing"

	"healthcare-assistant/internal/chat"
	"healthcare-assistant/internal/chat/usecase"
	"healthcare-assistant/internal/router"
)

// Mock logger for testing
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

type mockRouter struct {
	classifyFunc func(message string) (router.Decision, error)
}

func (m *mockRouter) Classify(ctx context.Context, message string) (router.Decision, error) {
	return m.classifyFunc(message)
}

func TestClassify(t *testing.T) {
	t.Run("Empty Message Error", func(t *testing.T) {
		uc := usecase.New(&mockLogger{}, &mockRouter{}, chat.DefaultFieldTable())
		_, err := uc.Classify(context.Background(), chat.ChatInput{Message: "   "})
		if !errors.Is(err, chat.ErrEmptyMessage) {
			t.Errorf("expected ErrEmptyMessage, got %v", err)
		}
	})

	t.Run("Appointment Clarification", func(t *testing.T) {
		rt := &mockRouter{classifyFunc: func(message string) (router.Decision, error) {
			return router.Decision{Route: "Appointment_Schedular", Score: 0.91}, nil
		}}
		uc := usecase.New(&mockLogger{}, rt, chat.DefaultFieldTable())

		out, err := uc.Classify(context.Background(), chat.ChatInput{Message: "Can you help me schedule a procedure for next week?"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Type != chat.TypeClarification {
			t.Errorf("expected clarification, got %q", out.Type)
		}
		wantFields := []string{"service_type", "preferred_date", "patient_id"}
		if len(out.RequiredFields) != len(wantFields) {
			t.Fatalf("expected %v, got %v", wantFields, out.RequiredFields)
		}
		for i, f := range wantFields {
			if out.RequiredFields[i] != f {
				t.Errorf("field %d: expected %q, got %q", i, f, out.RequiredFields[i])
			}
		}
	})

	t.Run("Prior Auth Clarification", func(t *testing.T) {
		rt := &mockRouter{classifyFunc: func(message string) (router.Decision, error) {
			return router.Decision{Route: "Pre_Auth", Score: 0.88}, nil
		}}
		uc := usecase.New(&mockLogger{}, rt, chat.DefaultFieldTable())

		out, err := uc.Classify(context.Background(), chat.ChatInput{Message: "I need approval for an MRI. Can you help?"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Type != chat.TypeClarification {
			t.Errorf("expected clarification, got %q", out.Type)
		}
		if len(out.RequiredFields) != 3 || out.RequiredFields[0] != "procedure_name" {
			t.Errorf("unexpected required fields: %v", out.RequiredFields)
		}
	})

	t.Run("Unknown Intent", func(t *testing.T) {
		rt := &mockRouter{classifyFunc: func(message string) (router.Decision, error) {
			return router.Decision{Score: 0.31}, nil
		}}
		uc := usecase.New(&mockLogger{}, rt, chat.DefaultFieldTable())

		out, err := uc.Classify(context.Background(), chat.ChatInput{Message: "What's the weather today?"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Type != chat.TypeUnknown {
			t.Errorf("expected unknown, got %q", out.Type)
		}
		if len(out.RequiredFields) != 0 {
			t.Errorf("unknown replies carry no required fields, got %v", out.RequiredFields)
		}
	})

	t.Run("Unconfigured Intent Error", func(t *testing.T) {
		// A route present in the registry but missing from the field table is
		// config drift, not an unknown message.
		rt := &mockRouter{classifyFunc: func(message string) (router.Decision, error) {
			return router.Decision{Route: "Pre_Auth", Score: 0.95}, nil
		}}
		uc := usecase.New(&mockLogger{}, rt, chat.FieldTable{})

		_, err := uc.Classify(context.Background(), chat.ChatInput{Message: "prior auth please"})
		if !errors.Is(err, chat.ErrUnconfiguredIntent) {
			t.Errorf("expected ErrUnconfiguredIntent, got %v", err)
		}
	})

	t.Run("Unrecognized Route Name Error", func(t *testing.T) {
		rt := &mockRouter{classifyFunc: func(message string) (router.Decision, error) {
			return router.Decision{Route: "Billing_Questions", Score: 0.95}, nil
		}}
		uc := usecase.New(&mockLogger{}, rt, chat.DefaultFieldTable())

		_, err := uc.Classify(context.Background(), chat.ChatInput{Message: "billing"})
		if !errors.Is(err, chat.ErrUnconfiguredIntent) {
			t.Errorf("expected ErrUnconfiguredIntent, got %v", err)
		}
	})

	t.Run("Router Failure Propagates", func(t *testing.T) {
		rt := &mockRouter{classifyFunc: func(message string) (router.Decision, error) {
			return router.Decision{}, router.ErrEmbeddingUnavailable
		}}
		uc := usecase.New(&mockLogger{}, rt, chat.DefaultFieldTable())

		_, err := uc.Classify(context.Background(), chat.ChatInput{Message: "anything"})
		if !errors.Is(err, router.ErrEmbeddingUnavailable) {
			t.Errorf("expected embedding error to propagate, got %v", err)
		}
	})
}
