package main

import (
	"os"

	"github.com/t14raptor/go-esparse/cmd/esparse/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
