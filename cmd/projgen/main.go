package main

import (
	"os"

	"github.com/projgen-io/projgen/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
