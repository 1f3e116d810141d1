package types

// SessionState represents where an assessment session is in its flow
type SessionState string

const (
	// SessionStateAnswering means at least one factor has no response yet
	SessionStateAnswering SessionState = "ANSWERING"
	// SessionStateComplete means every factor has a response and the result is not shown
	SessionStateComplete SessionState = "COMPLETE"
	// SessionStateResults means the result of the last calculate action is shown
	SessionStateResults SessionState = "RESULTS"
)

// IsValid checks if the session state is valid
func (s SessionState) IsValid() bool {
	switch s {
	case SessionStateAnswering,
		SessionStateComplete,
		SessionStateResults:
		return true
	default:
		return false
	}
}

// String returns the string representation of the session state
func (s SessionState) String() string {
	return string(s)
}
