package main

import (
	"os"

	"github.com/anandhu-here/ethakka/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
