package model

import (
	"regexp"
	"strconv"

	"github.com/m-mizutani/goerr/v2"
)

// ErrInvalidDuration is returned when a phase duration is not "N weeks" or
// "N-M weeks"
var ErrInvalidDuration = goerr.New("invalid phase duration")

var durationPattern = regexp.MustCompile(`^(\d+)(?:\s*-\s*(\d+))?\s+weeks?$`)

// Phase is one step of the migration project plan
type Phase struct {
	ID           string   `json:"id"`
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	Duration     string   `json:"duration"`
	Tasks        []string `json:"tasks"`
	Dependencies []string `json:"dependencies"`
}

// Weeks parses Duration into its shortest and longest estimate
func (p *Phase) Weeks() (minWeeks, maxWeeks int, err error) {
	m := durationPattern.FindStringSubmatch(p.Duration)
	if m == nil {
		return 0, 0, goerr.Wrap(ErrInvalidDuration, "unrecognized duration",
			goerr.V("phase_id", p.ID),
			goerr.V("duration", p.Duration))
	}

	minWeeks, _ = strconv.Atoi(m[1])
	maxWeeks = minWeeks
	if m[2] != "" {
		maxWeeks, _ = strconv.Atoi(m[2])
	}
	if minWeeks < 1 || maxWeeks < minWeeks {
		return 0, 0, goerr.Wrap(ErrInvalidDuration, "duration range is empty or reversed",
			goerr.V("phase_id", p.ID),
			goerr.V("duration", p.Duration))
	}
	return minWeeks, maxWeeks, nil
}

// ContentItem is an entry of the reference material index
type ContentItem struct {
	Title       string   `json:"title"`
	Category    string   `json:"category"`
	URL         string   `json:"url"`
	Description string   `json:"description"`
	Keywords    []string `json:"keywords"`
}
