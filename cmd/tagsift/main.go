package main

import (
	"fmt"
	"os"

	"github.com/mwantia/tagsift/cmd/tagsift/cli"
	"github.com/mwantia/tagsift/cmd/tagsift/cli/server"
)

var (
	version = "0.0.1-dev"
	commit  = "main"
)

func main() {
	root := cli.NewRootCommand(cli.VersionInfo{
		Version: version,
		Commit:  commit,
	})

	root.AddCommand(cli.NewVersionCommand())
	root.AddCommand(cli.NewConvertCommand())
	root.AddCommand(cli.NewGroupCommand())
	root.AddCommand(cli.NewFilterCommand())
	root.AddCommand(cli.NewSimplifyCommand())
	root.AddCommand(cli.NewExportCommand())
	root.AddCommand(cli.NewImportCommand())

	root.AddCommand(server.NewAgentCommand())
	root.AddCommand(server.NewConfigCommand())

	if err := root.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
