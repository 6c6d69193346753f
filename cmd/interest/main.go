package main

import (
	"errors"
	"flag"
	"log/slog"
	"os"

	"github.com/kelseyhightower/envconfig"

	"github.com/ormanli/simple-interest/internal"
	"github.com/ormanli/simple-interest/internal/app/interest"
)

func main() {
	code := 0
	defer func() {
		os.Exit(code)
	}()

	var c interest.Config

	err := envconfig.Process("interest", &c)
	if err != nil {
		slog.Error("Can't process configuration", "error", err.Error())
		code = 1
		return
	}

	err = internal.Run(c, os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	switch {
	case err == nil, errors.Is(err, flag.ErrHelp):
	case errors.Is(err, interest.ErrUsage):
		code = 2
	default:
		slog.Error("Run failed", "error", err.Error())
		code = 1
	}
}
