package main

import (
	"github.com/sagan/gtts-synthesize/cmd"
)

func main() {
	cmd.Execute()
}
