package main

import (
	"github.com/hermes-io/hermes/cmd"
)

func main() {
	cmd.Execute()
}
