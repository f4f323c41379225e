package main

import (
	"os"

	"github.com/bumpver/bumpver/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
