package workflow

import "time"

// Record statuses
const (
	StatusApproved  = "approved"
	StatusScheduled = "scheduled"
)

// Identifier prefixes. Generated numbers are the prefix plus a
// minute-resolution timestamp (12 digits).
const (
	AuthNumberPrefix    = "PA"
	AppointmentIDPrefix = "APT"

	// IDTimestampFormat renders a minute-resolution timestamp, 12 digits.
	IDTimestampFormat = "200601021504"
)

// DefaultLocation is used when no clinic location is configured.
const DefaultLocation = "Main Clinic"

// AuthorizationInput is a validated prior-authorization request.
type AuthorizationInput struct {
	ProcedureName string
	PatientID     string
	InsuranceID   string
	ScheduledDate string // optional planned date for the procedure
}

// AuthorizationOutput is the synthesized authorization record.
type AuthorizationOutput struct {
	Status         string
	AuthNumber     string
	ExpirationDate time.Time // December 31 of the issuing year
	ProcedureName  string
	PatientID      string
	InsuranceID    string
	ScheduledDate  string
}

// AppointmentInput is a validated appointment request.
type AppointmentInput struct {
	PatientID     string
	ServiceType   string
	PreferredDate string
	DoctorID      string // optional preferred doctor
}

// AppointmentOutput is the synthesized appointment record.
type AppointmentOutput struct {
	AppointmentID string
	ConfirmedDate string // echo of the preferred date, no conflict check
	ServiceType   string
	PatientID     string
	DoctorID      string
	Location      string
	Status        string
}
