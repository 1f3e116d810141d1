package cli

import (
	"context"
	"fmt"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/hl7risk/pkg/cli/config"
	"github.com/secmon-lab/hl7risk/pkg/utils/logging"
	"github.com/urfave/cli/v3"
)

func cmdValidate() *cli.Command {
	var catalogCfg config.Catalog

	return &cli.Command{
		Name:    "validate",
		Aliases: []string{"v"},
		Usage:   "Validate a catalog file (the built-in catalog when --catalog is omitted)",
		Flags:   catalogCfg.Flags(),
		Action: func(ctx context.Context, c *cli.Command) error {
			logger := logging.From(ctx)

			catalog, err := catalogCfg.Configure()
			if err != nil {
				return goerr.Wrap(err, "catalog validation failed")
			}

			totalWeight := 0
			for _, f := range catalog.Factors {
				totalWeight += f.Weight
			}

			source := catalogCfg.Path()
			if source == "" {
				source = "built-in"
			}

			logger.Info("Catalog validation passed",
				"source", source,
				"factor_count", len(catalog.Factors),
				"register_count", len(catalog.Register),
				"vendor_count", len(catalog.Vendors),
				"phase_count", len(catalog.Phases),
				"content_count", len(catalog.Content),
			)

			_, _ = fmt.Fprintf(c.Root().Writer, "%s: ok (%d factors, total weight %d, %d register items, %d vendors, %d phases, %d content items)\n",
				source, len(catalog.Factors), totalWeight, len(catalog.Register), len(catalog.Vendors),
				len(catalog.Phases), len(catalog.Content))
			return nil
		},
	}
}
