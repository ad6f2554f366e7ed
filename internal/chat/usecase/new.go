package usecase

import (
	"healthcare-assistant/internal/chat"
	"healthcare-assistant/internal/router"
	pkgLog "healthcare-assistant/pkg/log"
)

type implUseCase struct {
	l      pkgLog.Logger
	router router.Router
	fields chat.FieldTable
}

// New creates a new chat UseCase instance. A nil fields table falls back to
// the built-in intents.
func New(l pkgLog.Logger, rt router.Router, fields chat.FieldTable) *implUseCase {
	if fields == nil {
		fields = chat.DefaultFieldTable()
	}
	return &implUseCase{
		l:      l,
		router: rt,
		fields: fields,
	}
}
