package main

import (
	"log"

	"github.com/fiberforge/fibercheck/pkg/api"
)

func main() {
	if err := api.Serve(); err != nil {
		log.Fatal(err)
	}
}
