package main

import (
	"os"

	"github.com/solenne/whittle/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
