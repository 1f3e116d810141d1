package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/hl7risk/pkg/cli/config"
	"github.com/secmon-lab/hl7risk/pkg/usecase"
	"github.com/urfave/cli/v3"
)

func cmdPhases() *cli.Command {
	var catalogCfg config.Catalog
	var format string

	flags := []cli.Flag{
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
		Name:  "phases",
		Usage: "Show the implementation phases and the resulting timeline",
		Flags: flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			catalog, err := catalogCfg.Configure()
			if err != nil {
				return goerr.Wrap(err, "failed to load catalog")
			}
			plan, err := usecase.New(catalog).Phase.Plan(ctx)
			if err != nil {
				return goerr.Wrap(err, "failed to plan phases")
			}

			out := c.Root().Writer
			if format == formatJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				if err := enc.Encode(plan); err != nil {
					return goerr.Wrap(err, "failed to write phases")
				}
				return nil
			}

			if len(plan.Phases) == 0 {
				_, _ = fmt.Fprintln(out, "No implementation phases defined.")
				return nil
			}

			for _, s := range plan.Phases {
				p := s.Phase
				_, _ = fmt.Fprintf(out, "%s [%s] %s\n", p.Title, p.ID, p.Duration)
				_, _ = fmt.Fprintf(out, "  weeks %s to %s\n", weekRange(s.StartMin, s.StartMax), weekRange(s.EndMin, s.EndMax))
				if p.Description != "" {
					_, _ = fmt.Fprintf(out, "  %s\n", p.Description)
				}
				if len(p.Dependencies) > 0 {
					_, _ = fmt.Fprintf(out, "  depends on: %s\n", strings.Join(p.Dependencies, ", "))
				}
				for _, task := range p.Tasks {
					_, _ = fmt.Fprintf(out, "  - %s\n", task)
				}
				_, _ = fmt.Fprintln(out)
			}
			_, _ = fmt.Fprintf(out, "Total: %s weeks\n", weekRange(plan.TotalMin, plan.TotalMax))
			return nil
		},
	}
}

func weekRange(lo, hi int) string {
	if lo == hi {
		return fmt.Sprintf("%d", lo)
	}
	return fmt.Sprintf("%d-%d", lo, hi)
}
