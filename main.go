package main

import (
	"os"

	"github.com/humorlab/humorlab/internal/adapters/inbound/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
