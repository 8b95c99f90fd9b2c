package main

import (
	"os"

	"github.com/fcsr-dev/fcsr/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
