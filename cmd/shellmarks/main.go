package main

import (
	"os"

	"github.com/shellmarks/shellmarks/cmd/shellmarks/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
