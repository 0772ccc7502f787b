package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path"

	"github.com/etnz/planner/cmd"
	"github.com/google/subcommands"
)

func main() {
	cmd.Completion().Complete("fin")

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	commander.Register(commander.CommandsCommand(), "")
	for _, c := range cmd.Commands {
		commander.Register(c, "")
	}

	flag.Parse()
	cfg, err := cmd.Setup()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(int(subcommands.ExitUsageError))
	}

	// the interactive menu is the default command.
	if flag.NArg() == 0 {
		flag.CommandLine.Parse([]string{"shell"})
	}
	if name := flag.Arg(0); !cmd.IsCommand(name) {
		if found, code := cmd.RunExtension(cfg, name, flag.Args()[1:]); found {
			os.Exit(code)
		}
	}
	os.Exit(int(commander.Execute(context.Background())))
}
