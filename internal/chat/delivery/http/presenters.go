package http

import (
	"healthcare-assistant/internal/chat"
)

// --- Request DTOs ---

type chatReq struct {
	Message string `json:"message" binding:"required"`
}

func (r chatReq) validate() error { return nil }

func (r chatReq) toInput() chat.ChatInput {
	return chat.ChatInput{
		Message: r.Message,
	}
}

// --- Response DTOs ---

type chatResp struct {
	Type           string   `json:"type"`
	Message        string   `json:"message"`
	RequiredFields []string `json:"required_fields,omitempty"`
}

func newChatResp(out chat.ChatOutput) chatResp {
	return chatResp{
		Type:           out.Type,
		Message:        out.Message,
		RequiredFields: out.RequiredFields,
	}
}
