package model

import "github.com/secmon-lab/hl7risk/pkg/domain/types"

// ResponseSet maps a factor to the value of its chosen option. Answering a
// factor again overwrites the previous value.
type ResponseSet map[types.FactorID]types.OptionValue

// Set records value for the factor, replacing any previous answer
func (r ResponseSet) Set(id types.FactorID, value types.OptionValue) {
	r[id] = value
}

// Get returns the recorded value for the factor
func (r ResponseSet) Get(id types.FactorID) (types.OptionValue, bool) {
	v, ok := r[id]
	return v, ok
}

// Has reports whether the factor has been answered
func (r ResponseSet) Has(id types.FactorID) bool {
	_, ok := r[id]
	return ok
}

// Len returns the number of answered factors
func (r ResponseSet) Len() int {
	return len(r)
}

// Clone returns an independent copy
func (r ResponseSet) Clone() ResponseSet {
	cloned := make(ResponseSet, len(r))
	for k, v := range r {
		cloned[k] = v
	}
	return cloned
}

// IsComplete reports whether every factor has a response. A score should only
// be presented once this holds.
func (r ResponseSet) IsComplete(factors []RiskFactor) bool {
	for _, f := range factors {
		if !r.Has(f.ID) {
			return false
		}
	}
	return true
}

// Missing returns the IDs of unanswered factors in factor order
func (r ResponseSet) Missing(factors []RiskFactor) []types.FactorID {
	var missing []types.FactorID
	for _, f := range factors {
		if !r.Has(f.ID) {
			missing = append(missing, f.ID)
		}
	}
	return missing
}

// Answered counts responses that belong to one of factors
func (r ResponseSet) Answered(factors []RiskFactor) int {
	n := 0
	for _, f := range factors {
		if r.Has(f.ID) {
			n++
		}
	}
	return n
}
