package main

import (
	"os"

	"github.com/meur/substrate/internal/cli"
	"github.com/meur/substrate/internal/config"
)

func main() {
	if err := cli.NewRootCommand(config.FromEnv()).Execute(); err != nil {
		os.Exit(1)
	}
}
