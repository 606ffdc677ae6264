package main

import (
	"os"

	"github.com/openfiscal/wealthsim/cmd/wealthsim/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
