package main

import (
	"os"

	"github.com/mrled/suns/numcheck/cmd/numcheck/commands"
)

func main() {
	os.Exit(commands.Execute())
}
