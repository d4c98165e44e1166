package main

import (
	"os"
	"play-release-tools/src/application"
	"play-release-tools/src/application/cli"
	"play-release-tools/src/lib/cerr"
)

func main() {
	root := cli.NewRootCommand(application.NewApp)
	if err := root.Execute(); err != nil {
		cerr.Log(err)
		os.Exit(1)
	}
}
