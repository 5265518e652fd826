package main

import (
	"context"
	"flag"
	"log"
	"os"

	"github.com/google/subcommands"
)

func main() {
	log.SetPrefix("utpnum: ")
	log.SetFlags(0)

	subcommands.Register(subcommands.HelpCommand(), "")
	subcommands.Register(subcommands.FlagsCommand(), "")
	subcommands.Register(subcommands.CommandsCommand(), "")
	subcommands.Register(new(ewmaCmd), "")
	subcommands.Register(new(absDiffCmd), "")
	subcommands.Register(new(connIDsCmd), "")

	flag.Parse()
	os.Exit(int(subcommands.Execute(context.Background())))
}
