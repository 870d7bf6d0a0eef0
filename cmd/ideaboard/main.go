package main

import (
	"os"

	"github.com/joho/godotenv"

	"ideaboard-cli/internal/cli"
)

func main() {
	// Local .env is a convenience for development setups; absence is fine.
	_ = godotenv.Load()

	cmd := cli.NewRootCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
