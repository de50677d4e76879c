package main

import (
	"os"

	"github.com/nuclio/errors"

	"github.com/katalvlaran/lvheap/internal/command"
)

func main() {
	if err := command.NewRootCommandeer(nil).Execute(); err != nil {
		errors.PrintErrorStack(os.Stderr, err, 5)
		os.Exit(1)
	}
}
