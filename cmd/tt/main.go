package main

import (
	"fmt"
	"os"

	"timetracker/internal/cli"
)

func main() {
	factory := NewStoreFactory(getEnvironment())

	root := cli.NewRootCommand(factory.CreateStore)
	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
