package usecase

import (
	"time"

	"healthcare-assistant/internal/workflow"
	pkgLog "healthcare-assistant/pkg/log"
)

type implUseCase struct {
	l        pkgLog.Logger
	location string
	now      func() time.Time
}

// New creates a new workflow UseCase instance.
// now is injectable so identifier and expiration generation is testable.
func New(l pkgLog.Logger, location string, now func() time.Time) *implUseCase {
	if location == "" {
		location = workflow.DefaultLocation
	}
	if now == nil {
		now = time.Now
	}
	return &implUseCase{
		l:        l,
		location: location,
		now:      now,
	}
}
