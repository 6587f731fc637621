package main

import (
	"os"

	_ "go.uber.org/automaxprocs"

	"github.com/kiosk404/chronos/internal/chronoctl/cmd"
)

func main() {
	command := cmd.NewDefaultChronosCommand()
	if err := command.Execute(); err != nil {
		os.Exit(1)
	}
}
