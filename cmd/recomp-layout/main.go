package main

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
)

func main() {
	logger := logrus.New()
	logger.SetOutput(os.Stderr)
	cmd := getRootCommand(afero.NewOsFs(), os.Stdout, logger)
	if err := cmd.Execute(); err != nil {
		logger.WithError(err).Error("recomp-layout failed")
		os.Exit(1)
	}
}
