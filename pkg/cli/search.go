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

func cmdSearch() *cli.Command {
	var catalogCfg config.Catalog
	var filter usecase.SearchFilter
	var format string

	flags := []cli.Flag{
		&cli.StringFlag{
			Name:        "query",
			Aliases:     []string{"q"},
			Usage:       "Match title, description or keywords, ignoring case",
			Destination: &filter.Query,
		},
		&cli.StringFlag{
			Name:        "category",
			Usage:       "Content category (Documentation, Technical, Implementation, Planning, Reference, Vendor)",
			Destination: &filter.Category,
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
		Name:  "search",
		Usage: "Search migration guides and reference content",
		Flags: flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			catalog, err := catalogCfg.Configure()
			if err != nil {
				return goerr.Wrap(err, "failed to load catalog")
			}
			items := usecase.New(catalog).Search.Search(ctx, filter)

			out := c.Root().Writer
			if format == formatJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				if err := enc.Encode(items); err != nil {
					return goerr.Wrap(err, "failed to write search results")
				}
				return nil
			}

			if len(items) == 0 {
				_, _ = fmt.Fprintln(out, "No content found.")
				return nil
			}

			for _, item := range items {
				_, _ = fmt.Fprintf(out, "%s (%s) %s\n  %s\n", item.Title, item.Category, item.URL, item.Description)
			}
			return nil
		},
	}
}
