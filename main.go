package main

import (
	"os"

	"github.com/samacademy/cohortgen/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
