package main

import (
	"os"

	"github.com/rustyeddy/riskmate/cmd/riskmate/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
