package cli

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/hl7risk/pkg/cli/config"
	"github.com/secmon-lab/hl7risk/pkg/usecase"
	"github.com/urfave/cli/v3"
)

func cmdVendors() *cli.Command {
	var catalogCfg config.Catalog
	var filter usecase.VendorFilter
	var format string

	flags := []cli.Flag{
		&cli.StringFlag{
			Name:        "query",
			Aliases:     []string{"q"},
			Usage:       "Match vendor name or description, ignoring case",
			Destination: &filter.Query,
		},
		&cli.StringFlag{
			Name:        "category",
			Usage:       "Vendor category (EHR, Integration Engine, Middleware, Cloud Platform)",
			Destination: &filter.Category,
		},
		&cli.StringFlag{
			Name:        "support",
			Usage:       "Support level (Full, Partial, Limited, None)",
			Destination: &filter.Support,
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
		Name:  "vendors",
		Usage: "Search vendor migration guidance",
		Flags: flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			catalog, err := catalogCfg.Configure()
			if err != nil {
				return goerr.Wrap(err, "failed to load catalog")
			}
			vendors := usecase.New(catalog).Vendor.Search(ctx, filter)

			out := c.Root().Writer
			if format == formatJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				if err := enc.Encode(vendors); err != nil {
					return goerr.Wrap(err, "failed to write vendors")
				}
				return nil
			}

			if len(vendors) == 0 {
				_, _ = fmt.Fprintln(out, "No vendors found.")
				return nil
			}

			for _, v := range vendors {
				_, _ = fmt.Fprintf(out, "%s (%s) support: %s\n  %s\n", v.Vendor, v.Category, v.Support.Level, v.Description)
				for _, res := range v.Resources {
					_, _ = fmt.Fprintf(out, "  - [%s] %s %s\n", res.Type, res.Title, res.URL)
				}
				if v.Contact.Support != "" {
					_, _ = fmt.Fprintf(out, "  contact: %s\n", v.Contact.Support)
				}
				_, _ = fmt.Fprintln(out)
			}
			return nil
		},
	}
}
