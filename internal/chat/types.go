package chat

// Intent identifies a category of user request the assistant recognizes.
// The set is closed: adding an intent means touching the prompt switch in the
// usecase, the field table defaults and the route configuration together.
type Intent string

const (
	IntentPriorAuth   Intent = "Pre_Auth"
	IntentAppointment Intent = "Appointment_Schedular"
)

// Chat response types
const (
	TypeClarification = "clarification"
	TypeUnknown       = "unknown"
)

// FieldTable maps an intent to the ordered structured fields its workflow
// needs. It is configuration, deliberately separate from the route examples:
// utterances evolve independently of what a workflow consumes.
type FieldTable map[Intent][]string

// DefaultFieldTable returns the built-in intent → required-fields mapping.
func DefaultFieldTable() FieldTable {
	return FieldTable{
		IntentPriorAuth:   {"procedure_name", "patient_id", "insurance_id"},
		IntentAppointment: {"service_type", "preferred_date", "patient_id"},
	}
}

// ChatInput is a raw user message.
type ChatInput struct {
	Message string
}

// ChatOutput is the dispatch result for one message.
type ChatOutput struct {
	Type           string   // TypeClarification or TypeUnknown
	Message        string   // User-facing prompt
	RequiredFields []string // Present only for clarifications
}
