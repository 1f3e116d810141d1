package types

import "github.com/m-mizutani/goerr/v2"

// Level is the qualitative impact or likelihood of a register item
type Level string

const (
	LevelHigh   Level = "High"
	LevelMedium Level = "Medium"
	LevelLow    Level = "Low"
)

// AllLevels returns all valid levels
func AllLevels() []Level {
	return []Level{
		LevelHigh,
		LevelMedium,
		LevelLow,
	}
}

// IsValid checks if the level is valid
func (l Level) IsValid() bool {
	switch l {
	case LevelHigh,
		LevelMedium,
		LevelLow:
		return true
	default:
		return false
	}
}

// String returns the string representation of the level
func (l Level) String() string {
	return string(l)
}

// ParseLevel parses a string into a Level
func ParseLevel(s string) (Level, error) {
	level := Level(s)
	if !level.IsValid() {
		return "", goerr.Wrap(ErrInvalidInput, "invalid level", goerr.V("level", s))
	}
	return level, nil
}

// RegisterStatus is the tracking status of a register item
type RegisterStatus string

const (
	RegisterStatusOpen       RegisterStatus = "Open"
	RegisterStatusInProgress RegisterStatus = "In Progress"
	RegisterStatusClosed     RegisterStatus = "Closed"
)

// AllRegisterStatuses returns all valid register statuses
func AllRegisterStatuses() []RegisterStatus {
	return []RegisterStatus{
		RegisterStatusOpen,
		RegisterStatusInProgress,
		RegisterStatusClosed,
	}
}

// IsValid checks if the register status is valid
func (s RegisterStatus) IsValid() bool {
	switch s {
	case RegisterStatusOpen,
		RegisterStatusInProgress,
		RegisterStatusClosed:
		return true
	default:
		return false
	}
}

// String returns the string representation of the register status
func (s RegisterStatus) String() string {
	return string(s)
}

// ParseRegisterStatus parses a string into a RegisterStatus
func ParseRegisterStatus(s string) (RegisterStatus, error) {
	status := RegisterStatus(s)
	if !status.IsValid() {
		return "", goerr.Wrap(ErrInvalidInput, "invalid register status", goerr.V("status", s))
	}
	return status, nil
}
