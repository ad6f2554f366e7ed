package usecase

import (
	"context"
	"time"

	"healthcare-assistant/internal/workflow"
)

// VerifyPriorAuth synthesizes an approved prior-authorization record.
// There is no denial path: this is a mock of the adjudication backend, and a
// real integration would add DENIED/PENDING outcomes with reason codes.
func (uc *implUseCase) VerifyPriorAuth(ctx context.Context, input workflow.AuthorizationInput) (workflow.AuthorizationOutput, error) {
	if input.ProcedureName == "" || input.PatientID == "" || input.InsuranceID == "" {
		return workflow.AuthorizationOutput{}, workflow.ErrMissingField
	}

	uc.l.Infof(ctx, "Invoked: VerifyPriorAuth procedure=%q patient_id=%q", input.ProcedureName, input.PatientID)

	now := uc.now()
	return workflow.AuthorizationOutput{
		Status:         workflow.StatusApproved,
		AuthNumber:     workflow.AuthNumberPrefix + now.Format(workflow.IDTimestampFormat),
		ExpirationDate: time.Date(now.Year(), time.December, 31, 0, 0, 0, 0, now.Location()),
		ProcedureName:  input.ProcedureName,
		PatientID:      input.PatientID,
		InsuranceID:    input.InsuranceID,
		ScheduledDate:  input.ScheduledDate,
	}, nil
}
