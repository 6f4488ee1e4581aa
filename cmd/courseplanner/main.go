package main

import (
	"os"

	"github.com/gostonefire/courseplanner/internal/pkg/logger"
)

func main() {
	if err := newApp(os.Stdin, os.Stdout).Run(os.Args); err != nil {
		logger.Error().Err(err).Msg("courseplanner failed")
		os.Exit(1)
	}
}
