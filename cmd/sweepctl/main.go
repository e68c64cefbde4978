package main

import (
	"github.com/sweepstats/sweepstats/internal/cli"
)

func main() {
	cli.Execute()
}
