package cli

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/hl7risk/pkg/cli/config"
	"github.com/secmon-lab/hl7risk/pkg/domain/model"
	"github.com/secmon-lab/hl7risk/pkg/domain/types"
	"github.com/secmon-lab/hl7risk/pkg/usecase"
	"github.com/urfave/cli/v3"
)

const (
	formatText = "text"
	formatJSON = "json"
)

var tierColors = map[types.Tier]*color.Color{
	types.TierLow:      color.New(color.FgGreen, color.Bold),
	types.TierMedium:   color.New(color.FgYellow, color.Bold),
	types.TierHigh:     color.New(color.FgHiRed, color.Bold),
	types.TierCritical: color.New(color.FgRed, color.Bold, color.Underline),
}

func cmdAssess() *cli.Command {
	var catalogCfg config.Catalog
	var answers []string
	var answersPath string
	var interactive bool
	var format string

	flags := []cli.Flag{
		&cli.StringSliceFlag{
			Name:        "answer",
			Aliases:     []string{"a"},
			Usage:       "Answer as factor_id=value (repeatable, value 1 to 4)",
			Destination: &answers,
		},
		&cli.StringFlag{
			Name:        "answers",
			Usage:       "Path to a TOML answers file ([answers] factor_id = value)",
			Sources:     cli.EnvVars("HL7RISK_ANSWERS"),
			Destination: &answersPath,
		},
		&cli.BoolFlag{
			Name:        "interactive",
			Aliases:     []string{"i"},
			Usage:       "Prompt for every factor not answered by flags or file",
			Destination: &interactive,
		},
		&cli.StringFlag{
			Name:        "format",
			Aliases:     []string{"f"},
			Usage:       "Output format (text, json)",
			Value:       formatText,
			Destination: &format,
		},
	}
	flags = append(flags, catalogCfg.Flags()...)

	return &cli.Command{
		Name:    "assess",
		Aliases: []string{"a"},
		Usage:   "Run the migration risk questionnaire and show the risk tier",
		Flags:   flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			if format != formatText && format != formatJSON {
				return goerr.New("unsupported output format", goerr.V("format", format))
			}

			catalog, err := catalogCfg.Configure()
			if err != nil {
				return goerr.Wrap(err, "failed to load catalog")
			}
			uc := usecase.New(catalog)

			responses := make(model.ResponseSet)
			if answersPath != "" {
				fromFile, err := config.LoadAnswers(answersPath)
				if err != nil {
					return goerr.Wrap(err, "failed to load answers")
				}
				for id, v := range fromFile {
					responses.Set(id, v)
				}
			}

			// Flags override the answers file
			fromFlags, err := config.ParseAnswers(answers)
			if err != nil {
				return goerr.Wrap(err, "failed to parse answers")
			}
			for id, v := range fromFlags {
				responses.Set(id, v)
			}

			session := uc.Assessment.NewSession(ctx)
			if err := uc.Assessment.ApplyResponses(ctx, session, responses); err != nil {
				return goerr.Wrap(err, "failed to apply answers")
			}

			out := c.Root().Writer
			if interactive && !session.IsComplete() {
				if err := prompt(ctx, uc.Assessment, session, c.Root().Reader, out); err != nil {
					return err
				}
			}

			result, err := uc.Assessment.Calculate(ctx, session)
			if err != nil {
				return goerr.Wrap(err, "failed to calculate assessment")
			}

			if format == formatJSON {
				return writeAssessmentJSON(out, session, result)
			}
			writeAssessmentText(out, session, result)
			return nil
		},
	}
}

// prompt asks for each unanswered factor until it gets a valid value
func prompt(ctx context.Context, uc *usecase.AssessmentUseCase, session *model.Session, in io.Reader, out io.Writer) error {
	scanner := bufio.NewScanner(in)

	for _, f := range session.Factors() {
		if session.Responses().Has(f.ID) {
			continue
		}

		answered, total := session.Progress()
		_, _ = fmt.Fprintf(out, "\n[%d/%d] %s (%s, weight %d)\n", answered+1, total, f.Question, f.Category, f.Weight)
		for _, opt := range f.Options {
			if opt.Description != "" {
				_, _ = fmt.Fprintf(out, "  %d) %s - %s\n", opt.Value, opt.Label, opt.Description)
			} else {
				_, _ = fmt.Fprintf(out, "  %d) %s\n", opt.Value, opt.Label)
			}
		}

		for {
			_, _ = fmt.Fprintf(out, "Select 1-%d: ", f.MaxValue())
			if !scanner.Scan() {
				if err := scanner.Err(); err != nil {
					return goerr.Wrap(err, "failed to read answer")
				}
				return goerr.Wrap(usecase.ErrIncompleteResponses, "input ended before every factor was answered",
					goerr.V(usecase.MissingKey, session.Missing()))
			}

			value, err := strconv.Atoi(strings.TrimSpace(scanner.Text()))
			if err != nil {
				_, _ = fmt.Fprintln(out, "Please enter a number.")
				continue
			}
			if err := uc.Answer(ctx, session, f.ID, types.OptionValue(value)); err != nil {
				_, _ = fmt.Fprintf(out, "Please choose one of the listed options.\n")
				continue
			}
			break
		}
	}

	return nil
}

func writeAssessmentText(w io.Writer, session *model.Session, result *model.Result) {
	c := result.Classification
	tierColor, ok := tierColors[c.Tier]
	if !ok {
		tierColor = color.New(color.Bold)
	}

	_, _ = fmt.Fprintf(w, "\nHL7 v2.8 migration risk: %d%% ", result.RoundedPercentage())
	_, _ = tierColor.Fprintf(w, "%s Risk", c.Label)
	_, _ = fmt.Fprintf(w, "\n%s\n\n", c.Description)

	_, _ = fmt.Fprintln(w, "Answers:")
	responses := session.Responses()
	for _, f := range session.Factors() {
		v, _ := responses.Get(f.ID)
		label := ""
		if opt, ok := f.Option(v); ok {
			label = opt.Label
		}
		_, _ = fmt.Fprintf(w, "  %-24s %d %s\n", f.ID, v, label)
	}

	_, _ = fmt.Fprintln(w, "\nRecommendations:")
	for i, rec := range result.Recommendations {
		_, _ = fmt.Fprintf(w, "  %2d. %s\n", i+1, rec)
	}
}

func writeAssessmentJSON(w io.Writer, session *model.Session, result *model.Result) error {
	type response struct {
		SessionID model.SessionID   `json:"session_id"`
		Score     int               `json:"score"`
		Answers   model.ResponseSet `json:"answers"`
		*model.Result
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(response{
		SessionID: session.ID(),
		Score:     result.RoundedPercentage(),
		Answers:   session.Responses(),
		Result:    result,
	}); err != nil {
		return goerr.Wrap(err, "failed to write result")
	}
	return nil
}
