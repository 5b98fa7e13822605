package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path"

	"bvdu-bank/internal/commands"
	"bvdu-bank/internal/config"

	"github.com/google/subcommands"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	app := &commands.App{
		Config: cfg,
		Logger: config.NewLogger(cfg.Logging, os.Stderr),
		Out:    os.Stdout,
		Err:    os.Stderr,
	}

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	app.SetFlags(flag.CommandLine)
	app.Register(commander)

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}
