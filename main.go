package main

import (
	"os"

	"github.com/notqc/helpmate/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
