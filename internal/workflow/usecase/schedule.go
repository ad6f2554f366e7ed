package usecase

import (
	"context"

	"healthcare-assistant/internal/workflow"
)

// ScheduleAppointment synthesizes a scheduled-appointment record. The
// preferred date is echoed as the confirmed date without any availability or
// resource-conflict check; this is a mock of the scheduling backend.
func (uc *implUseCase) ScheduleAppointment(ctx context.Context, input workflow.AppointmentInput) (workflow.AppointmentOutput, error) {
	if input.PatientID == "" || input.ServiceType == "" || input.PreferredDate == "" {
		return workflow.AppointmentOutput{}, workflow.ErrMissingField
	}

	uc.l.Infof(ctx, "Invoked: ScheduleAppointment patient_id=%q service=%q date=%q", input.PatientID, input.ServiceType, input.PreferredDate)

	return workflow.AppointmentOutput{
		AppointmentID: workflow.AppointmentIDPrefix + uc.now().Format(workflow.IDTimestampFormat),
		ConfirmedDate: input.PreferredDate,
		ServiceType:   input.ServiceType,
		PatientID:     input.PatientID,
		DoctorID:      input.DoctorID,
		Location:      uc.location,
		Status:        workflow.StatusScheduled,
	}, nil
}
