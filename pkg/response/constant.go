package response

import "time"

const (
	// DefaultErrorMessage is returned for internal failures.
	DefaultErrorMessage = "internal server error"

	// DateFormat is the wire format for dates.
	DateFormat = "2006-01-02"

	// DateTimeFormat is the wire format for timestamps.
	DateTimeFormat = time.RFC3339
)
