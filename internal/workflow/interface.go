package workflow

import (
	"context"
)

// UseCase defines the business logic interface for the workflow domain.
// Both operations are mocks: they synthesize confirmation records without
// touching any insurance or scheduling backend.
type UseCase interface {
	// VerifyPriorAuth issues a prior-authorization record for a procedure.
	VerifyPriorAuth(ctx context.Context, input AuthorizationInput) (AuthorizationOutput, error)

	// ScheduleAppointment books an appointment at the configured clinic.
	ScheduleAppointment(ctx context.Context, input AppointmentInput) (AppointmentOutput, error)
}
