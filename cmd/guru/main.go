package main

import (
	"os"

	"github.com/mavenly/guru/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
