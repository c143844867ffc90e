package main

import (
	"os"

	"intergalactic/cmd/intergalactic/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
