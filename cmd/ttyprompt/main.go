package main

import (
	"github.com/termfold/ttyprompt/pkg/cli"
	"github.com/termfold/ttyprompt/pkg/console"
)

func main() {
	cmd, err := cli.NewRootCommand()
	if err != nil {
		console.Fatalf("%s", err)
	}

	if err := cmd.Execute(); err != nil {
		console.Fatalf("%s", err)
	}
}
