package main

import (
	"github.com/fiberforge/fibercheck/pkg/cli"
)

func main() {
	cli.Execute()
}
