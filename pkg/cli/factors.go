package cli

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/hl7risk/pkg/cli/config"
	"github.com/secmon-lab/hl7risk/pkg/domain/scoring"
	"github.com/secmon-lab/hl7risk/pkg/domain/types"
	"github.com/secmon-lab/hl7risk/pkg/usecase"
	"github.com/urfave/cli/v3"
)

func cmdFactors() *cli.Command {
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
		Name:  "factors",
		Usage: "List the risk factors, their weights and the tier thresholds",
		Flags: flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			catalog, err := catalogCfg.Configure()
			if err != nil {
				return goerr.Wrap(err, "failed to load catalog")
			}
			factors := usecase.New(catalog).Assessment.Factors()
			out := c.Root().Writer

			if format == formatJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				if err := enc.Encode(factors); err != nil {
					return goerr.Wrap(err, "failed to write factors")
				}
				return nil
			}

			for _, f := range factors {
				_, _ = fmt.Fprintf(out, "%s [%s, weight %d]\n  %s\n", f.ID, f.Category, f.Weight, f.Question)
				for _, opt := range f.Options {
					_, _ = fmt.Fprintf(out, "    %d) %s\n", opt.Value, opt.Label)
				}
			}

			_, _ = fmt.Fprintln(out, "\nTiers:")
			lower := 0.0
			for _, tier := range types.AllTiers() {
				upper := scoring.UpperBound(tier)
				_, _ = fmt.Fprintf(out, "  %-8s %3.0f%% - %3.0f%%\n", tier, lower, upper)
				lower = upper
			}
			return nil
		},
	}
}
