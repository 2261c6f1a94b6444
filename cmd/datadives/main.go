package main

import (
	"os"

	"github.com/aouyang1/go-datadives/internal/cli"
)

func main() {
	if err := cli.NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
