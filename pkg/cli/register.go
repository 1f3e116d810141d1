package cli

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/hl7risk/pkg/cli/config"
	"github.com/secmon-lab/hl7risk/pkg/domain/types"
	"github.com/secmon-lab/hl7risk/pkg/usecase"
	"github.com/urfave/cli/v3"
)

func cmdRegister() *cli.Command {
	var catalogCfg config.Catalog
	var filter usecase.RegisterFilter
	var format string

	flags := []cli.Flag{
		&cli.StringFlag{
			Name:        "category",
			Usage:       "Only show items of this category",
			Destination: &filter.Category,
		},
		&cli.StringFlag{
			Name:        "status",
			Usage:       "Only show items with this status (Open, In Progress, Closed)",
			Destination: &filter.Status,
		},
		&cli.IntFlag{
			Name:        "min-score",
			Usage:       "Only show items whose impact x likelihood is at least this value",
			Destination: &filter.MinScore,
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
		Name:  "register",
		Usage: "Show the migration risk register, highest risk first",
		Flags: flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			catalog, err := catalogCfg.Configure()
			if err != nil {
				return goerr.Wrap(err, "failed to load catalog")
			}
			uc := usecase.New(catalog)

			items, err := uc.Register.List(ctx, filter)
			if err != nil {
				return goerr.Wrap(err, "failed to list register")
			}

			out := c.Root().Writer
			if format == formatJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				if err := enc.Encode(items); err != nil {
					return goerr.Wrap(err, "failed to write register")
				}
				return nil
			}

			for _, item := range items {
				_, _ = fmt.Fprintf(out, "%s  %-20s score %2d  %-11s %s\n", item.ID, item.Category, item.RiskScore(), item.Status, item.Description)
				_, _ = fmt.Fprintf(out, "        impact %s, likelihood %s, owner %s\n", item.Impact, item.Likelihood, item.Owner)
				_, _ = fmt.Fprintf(out, "        mitigation: %s\n", item.Mitigation)
			}

			summary := uc.Register.Summary(ctx)
			_, _ = fmt.Fprintf(out, "\n%d of %d items shown. Open %d, In Progress %d, Closed %d\n",
				len(items), summary.Total,
				summary.ByStatus[types.RegisterStatusOpen],
				summary.ByStatus[types.RegisterStatusInProgress],
				summary.ByStatus[types.RegisterStatusClosed])
			return nil
		},
	}
}
