package http

import (
	"healthcare-assistant/internal/workflow"
	"healthcare-assistant/pkg/response"
)

// --- Request DTOs ---

type authorizationReq struct {
	ProcedureName string `json:"procedure_name" binding:"required"`
	PatientID     string `json:"patient_id"     binding:"required"`
	InsuranceID   string `json:"insurance_id"   binding:"required"`
	ScheduledDate string `json:"scheduled_date"`
}

func (r authorizationReq) validate() error { return nil }

func (r authorizationReq) toInput() workflow.AuthorizationInput {
	return workflow.AuthorizationInput{
		ProcedureName: r.ProcedureName,
		PatientID:     r.PatientID,
		InsuranceID:   r.InsuranceID,
		ScheduledDate: r.ScheduledDate,
	}
}

type appointmentReq struct {
	PatientID     string `json:"patient_id"     binding:"required"`
	ServiceType   string `json:"service_type"   binding:"required"`
	PreferredDate string `json:"preferred_date" binding:"required"`
	DoctorID      string `json:"doctor_id"`
}

func (r appointmentReq) validate() error { return nil }

func (r appointmentReq) toInput() workflow.AppointmentInput {
	return workflow.AppointmentInput{
		PatientID:     r.PatientID,
		ServiceType:   r.ServiceType,
		PreferredDate: r.PreferredDate,
		DoctorID:      r.DoctorID,
	}
}

// --- Response DTOs ---

type authorizationResp struct {
	Status         string        `json:"status"`
	AuthNumber     string        `json:"auth_number"`
	ExpirationDate response.Date `json:"expiration_date" swaggertype:"string"`
	ProcedureName  string        `json:"procedure_name"`
	PatientID      string        `json:"patient_id"`
	InsuranceID    string        `json:"insurance_id"`
	ScheduledDate  string        `json:"scheduled_date,omitempty"`
}

func newAuthorizationResp(out workflow.AuthorizationOutput) authorizationResp {
	return authorizationResp{
		Status:         out.Status,
		AuthNumber:     out.AuthNumber,
		ExpirationDate: response.Date(out.ExpirationDate),
		ProcedureName:  out.ProcedureName,
		PatientID:      out.PatientID,
		InsuranceID:    out.InsuranceID,
		ScheduledDate:  out.ScheduledDate,
	}
}

type appointmentResp struct {
	AppointmentID string `json:"appointment_id"`
	ConfirmedDate string `json:"confirmed_date"`
	ServiceType   string `json:"service_type"`
	PatientID     string `json:"patient_id"`
	DoctorID      string `json:"doctor_id,omitempty"`
	Location      string `json:"location"`
	Status        string `json:"status"`
}

func newAppointmentResp(out workflow.AppointmentOutput) appointmentResp {
	return appointmentResp{
		AppointmentID: out.AppointmentID,
		ConfirmedDate: out.ConfirmedDate,
		ServiceType:   out.ServiceType,
		PatientID:     out.PatientID,
		DoctorID:      out.DoctorID,
		Location:      out.Location,
		Status:        out.Status,
	}
}
