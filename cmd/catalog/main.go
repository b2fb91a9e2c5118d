package main

import (
	"fmt"
	"os"

	"backoffice/cmd/catalog/cli"
)

func main() {
	root := cli.NewRootCommand()
	root.AddCommand(cli.NewProvidersCommand())
	root.AddCommand(cli.NewActivitiesCommand())

	if err := root.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
