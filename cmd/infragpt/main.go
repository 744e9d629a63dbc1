package main

import (
	"os"

	"github.com/infragpt/infragpt/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
