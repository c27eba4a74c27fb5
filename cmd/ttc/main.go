package main

import (
	"log"
	"os"

	"ttc/cmd/ttc/cmd"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("ttc: ")
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
