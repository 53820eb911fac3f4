package main

import (
	"os"

	"bennypowers.dev/ngl10n/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
