package main

import (
	"fmt"
	"os"

	"github.com/opskit/runbooks/internal/adapters/driving/cli"
)

func main() {
	if err := cli.InitServices(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
