package internal

import (
	"io"

	"github.com/ormanli/simple-interest/internal/app/interest"
	"github.com/ormanli/simple-interest/internal/infra/logging"
	"github.com/ormanli/simple-interest/internal/infra/transport/cli"
)

// Run handles one invocation with the passed configuration and command line arguments.
func Run(cfg interest.Config, args []string, in io.Reader, out, errOut io.Writer) error {
	logging.Setup(cfg)

	cliTransport := cli.NewTransport(interest.NewCalculator(), in, out, errOut)

	return cliTransport.Run(args)
}
