package main

import (
	"os"

	"github.com/ekstre-dev/ekstre/internal/commands"
)

func main() {
	if err := commands.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
