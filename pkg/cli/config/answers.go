package config

import (
	"errors"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/pelletier/go-toml/v2"
	"github.com/secmon-lab/hl7risk/pkg/domain/model"
	"github.com/secmon-lab/hl7risk/pkg/domain/types"
)

// AnswersConfig is the TOML answers file used by non-interactive assessments
//
//	[answers]
//	system_complexity = 3
//	message_volume = 2
type AnswersConfig struct {
	Answers map[string]int `toml:"answers"`
}

// ToResponses validates every entry and converts it to a response set
func (a *AnswersConfig) ToResponses() (model.ResponseSet, error) {
	responses := make(model.ResponseSet, len(a.Answers))
	for id, value := range a.Answers {
		factorID, optValue, err := newAnswer(id, value)
		if err != nil {
			return nil, err
		}
		responses.Set(factorID, optValue)
	}
	return responses, nil
}

// LoadAnswers reads an answers file
func LoadAnswers(path string) (model.ResponseSet, error) {
	// #nosec G304 - path is expected to be provided by CLI argument
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, goerr.Wrap(ErrConfigNotFound, "answers file does not exist", goerr.V(ConfigPathKey, path))
		}
		return nil, goerr.Wrap(err, "failed to read answers file", goerr.V(ConfigPathKey, path))
	}

	var cfg AnswersConfig
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, goerr.Wrap(ErrInvalidAnswers, "failed to parse TOML answers",
			goerr.V(ConfigPathKey, path),
			goerr.V("cause", err.Error()))
	}

	responses, err := cfg.ToResponses()
	if err != nil {
		return nil, goerr.Wrap(err, "invalid answers file", goerr.V(ConfigPathKey, path))
	}
	return responses, nil
}

// ParseAnswer parses a "factor_id=value" pair given on the command line
func ParseAnswer(s string) (types.FactorID, types.OptionValue, error) {
	id, raw, ok := strings.Cut(s, "=")
	if !ok {
		return "", 0, goerr.Wrap(ErrInvalidAnswers, "answer must be in factor_id=value form", goerr.V(ValueKey, s))
	}

	value, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return "", 0, goerr.Wrap(types.ErrInvalidInput, "answer value is not an integer",
			goerr.V(FactorIDKey, id),
			goerr.V(ValueKey, raw))
	}

	return newAnswer(strings.TrimSpace(id), value)
}

// ParseAnswers parses repeated "factor_id=value" pairs. Later pairs override
// earlier ones for the same factor.
func ParseAnswers(pairs []string) (model.ResponseSet, error) {
	responses := make(model.ResponseSet, len(pairs))
	for _, pair := range pairs {
		id, value, err := ParseAnswer(pair)
		if err != nil {
			return nil, err
		}
		responses.Set(id, value)
	}
	return responses, nil
}

func newAnswer(id string, value int) (types.FactorID, types.OptionValue, error) {
	factorID := types.FactorID(id)
	if err := factorID.Validate(); err != nil {
		return "", 0, goerr.Wrap(ErrInvalidAnswers, "invalid factor ID", goerr.V(FactorIDKey, id))
	}

	optValue := types.OptionValue(value)
	if err := optValue.Validate(); err != nil {
		return "", 0, goerr.Wrap(err, "invalid answer", goerr.V(FactorIDKey, id))
	}

	return factorID, optValue, nil
}
