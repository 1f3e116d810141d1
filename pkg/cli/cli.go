package cli

import (
	"context"
	"io"
	"os"

	"github.com/secmon-lab/hl7risk/pkg/cli/config"
	"github.com/secmon-lab/hl7risk/pkg/utils/errutil"
	"github.com/secmon-lab/hl7risk/pkg/utils/logging"
	"github.com/urfave/cli/v3"
)

func Run(ctx context.Context, args []string, version string) error {
	return run(ctx, args, version, os.Stdin, os.Stdout)
}

func run(ctx context.Context, args []string, version string, in io.Reader, out io.Writer) error {
	var loggerCfg config.Logger
	var sentryCfg config.Sentry
	var closers []func()
	defer func() {
		for i := len(closers) - 1; i >= 0; i-- {
			closers[i]()
		}
	}()

	var flags []cli.Flag
	flags = append(flags, loggerCfg.Flags()...)
	flags = append(flags, sentryCfg.Flags()...)

	app := &cli.Command{
		Name:    "hl7risk",
		Usage:   "HL7 v2.8 migration risk assessment",
		Version: version,
		Flags:   flags,
		Reader:  in,
		Writer:  out,
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			f, err := loggerCfg.Configure()
			if err != nil {
				return ctx, err
			}
			closers = append(closers, f)

			flush, err := sentryCfg.Configure(version)
			if err != nil {
				return ctx, err
			}
			closers = append(closers, flush)

			logging.Default().Debug("Starting hl7risk", "logger", loggerCfg, "sentry", sentryCfg)
			return logging.With(ctx, logging.Default()), nil
		},
		Commands: []*cli.Command{
			cmdAssess(),
			cmdFactors(),
			cmdRegister(),
			cmdVendors(),
			cmdPhases(),
			cmdSearch(),
			cmdValidate(),
			cmdServe(version),
		},
	}

	if err := app.Run(ctx, args); err != nil {
		return errutil.Handle(ctx, err, "failed to run app")
	}

	return nil
}
