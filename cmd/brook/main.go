package main

import (
	"os"

	"github.com/brooklang/brook/cmd/brook/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		if cmd.IsUsage(err) {
			os.Exit(64)
		}
		os.Exit(1)
	}
}
