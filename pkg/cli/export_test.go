package cli

import (
	"context"
	"io"
)

// RunWithIO runs the CLI with the given input and output streams
func RunWithIO(ctx context.Context, args []string, in io.Reader, out io.Writer) error {
	return run(ctx, args, "test", in, out)
}

// RunServer exposes runServer for testing
var RunServer = runServer
