package main

import (
	"os"

	"github.com/ankur/codedrill/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
