package main

import (
	"github.com/coregx/spag/internal/runner"
)

func main() {
	opts := runner.ParseFlags()
	runner.Run(opts)
}
