package main

import (
	"os"

	"github.com/dshills/scrubby/internal/cli"
)

func main() {
	os.Exit(cli.Run())
}
