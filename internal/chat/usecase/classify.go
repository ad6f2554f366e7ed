package usecase

import (
	"context"
	"fmt"
	"strings"

	"healthcare-assistant/internal/chat"
)

// User-facing prompts.
const (
	msgPriorAuth   = "To process your authorization request, I need the following details:"
	msgAppointment = "To schedule your appointment, I need the following details:"
	msgUnknown     = "I'm not sure how to help with that request. Could you please clarify?"
)

// Classify routes a message and maps the decision to a response shape.
// Dispatch is a total function of the router's decision: every known intent
// and the unmatched case map to exactly one output, and a matched intent the
// dispatch layer does not recognize is an error, never a silent "unknown".
func (uc *implUseCase) Classify(ctx context.Context, input chat.ChatInput) (chat.ChatOutput, error) {
	message := strings.TrimSpace(input.Message)
	if message == "" {
		return chat.ChatOutput{}, chat.ErrEmptyMessage
	}

	decision, err := uc.router.Classify(ctx, message)
	if err != nil {
		uc.l.Errorf(ctx, "Classify: router failed: %v", err)
		return chat.ChatOutput{}, fmt.Errorf("failed to classify message: %w", err)
	}

	if !decision.Matched() {
		uc.l.Infof(ctx, "Classify: no intent matched (best score %.4f)", decision.Score)
		return chat.ChatOutput{
			Type:    chat.TypeUnknown,
			Message: msgUnknown,
		}, nil
	}

	intent := chat.Intent(decision.Route)
	prompt, known := clarificationPrompt(intent)
	fields, configured := uc.fields[intent]
	if !known || !configured {
		uc.l.Errorf(ctx, "Classify: intent %q matched but not configured (known=%t, fields=%t)", intent, known, configured)
		return chat.ChatOutput{}, fmt.Errorf("%w: %s", chat.ErrUnconfiguredIntent, intent)
	}

	uc.l.Infof(ctx, "Classify: intent=%s score=%.4f fields=%v", intent, decision.Score, fields)
	return chat.ChatOutput{
		Type:           chat.TypeClarification,
		Message:        prompt,
		RequiredFields: fields,
	}, nil
}

// clarificationPrompt is the exhaustive intent → prompt mapping. A new intent
// that reaches dispatch without a case here is reported as unconfigured.
func clarificationPrompt(intent chat.Intent) (string, bool) {
	switch intent {
	case chat.IntentPriorAuth:
		return msgPriorAuth, true
	case chat.IntentAppointment:
		return msgAppointment, true
	default:
		return "", false
	}
}
