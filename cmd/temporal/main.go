package main

import (
	"os"

	"github.com/msto63/temporal/cmd/temporal/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(cmd.ExitCode(err))
	}
}
