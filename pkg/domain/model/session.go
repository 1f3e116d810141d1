package model

import (
	"github.com/google/uuid"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/hl7risk/pkg/domain/types"
)

// SessionID identifies an assessment session
type SessionID string

// NewSessionID generates a random session ID
func NewSessionID() SessionID {
	return SessionID(uuid.NewString())
}

// Session holds the answers of one interactive assessment. It is owned by a
// single user and is not safe for concurrent use.
type Session struct {
	id        SessionID
	factors   []RiskFactor
	responses ResponseSet
	state     types.SessionState
	result    *Result
}

// NewSession starts a session over factors with no responses
func NewSession(factors []RiskFactor) *Session {
	s := &Session{
		id:        NewSessionID(),
		factors:   factors,
		responses: make(ResponseSet),
	}
	s.refreshState()
	return s
}

// ID returns the session ID
func (s *Session) ID() SessionID {
	return s.id
}

// Factors returns the factors the session is answering
func (s *Session) Factors() []RiskFactor {
	return s.factors
}

// State returns the current state
func (s *Session) State() types.SessionState {
	return s.state
}

// Responses returns a copy of the collected responses
func (s *Session) Responses() ResponseSet {
	return s.responses.Clone()
}

// Progress returns how many of the factors have been answered
func (s *Session) Progress() (answered, total int) {
	return s.responses.Answered(s.factors), len(s.factors)
}

// Missing returns unanswered factor IDs in questionnaire order
func (s *Session) Missing() []types.FactorID {
	return s.responses.Missing(s.factors)
}

// IsComplete reports whether every factor has a response
func (s *Session) IsComplete() bool {
	return s.responses.IsComplete(s.factors)
}

// Result returns the result of the last calculate action. It is nil unless
// the session is in SessionStateResults.
func (s *Session) Result() *Result {
	return s.result
}

// Answer records the value for a factor. Any displayed result is discarded;
// the score is only produced again by an explicit calculate action.
func (s *Session) Answer(id types.FactorID, value types.OptionValue) error {
	factor := s.factor(id)
	if factor == nil {
		return goerr.Wrap(ErrUnknownFactor, "factor is not part of the questionnaire", goerr.V(FactorIDKey, id))
	}
	if err := value.Validate(); err != nil {
		return goerr.Wrap(err, "invalid answer", goerr.V(FactorIDKey, id))
	}
	if _, ok := factor.Option(value); !ok {
		return goerr.Wrap(types.ErrInvalidInput, "factor has no such option",
			goerr.V(FactorIDKey, id),
			goerr.V(OptionValueKey, value.Int()))
	}

	s.responses.Set(id, value)
	s.result = nil
	s.refreshState()
	return nil
}

// MarkCalculated stores result and moves the session to SessionStateResults
func (s *Session) MarkCalculated(result *Result) error {
	if s.state == types.SessionStateAnswering {
		return goerr.Wrap(ErrInvalidTransition, "cannot show results before all factors are answered",
			goerr.V("state", s.state),
			goerr.V("missing", s.Missing()))
	}
	if result == nil {
		return goerr.New("result is required")
	}
	s.result = result
	s.state = types.SessionStateResults
	return nil
}

func (s *Session) refreshState() {
	if s.IsComplete() {
		s.state = types.SessionStateComplete
	} else {
		s.state = types.SessionStateAnswering
	}
}

func (s *Session) factor(id types.FactorID) *RiskFactor {
	for i := range s.factors {
		if s.factors[i].ID == id {
			return &s.factors[i]
		}
	}
	return nil
}
