package main

import (
	"os"

	"github.com/mverbeek/verbuig/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
