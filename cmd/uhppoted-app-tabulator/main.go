package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	uhppoted "github.com/uhppoted/uhppoted-lib/command"

	"github.com/uhppoted/uhppoted-app-tabulator/commands"
	"github.com/uhppoted/uhppoted-app-tabulator/log"
)

var cli = []uhppoted.Command{
	&commands.VersionCmd,
	&commands.FetchCmd,
	&commands.TestFetchCmd,
	&commands.CreateTriggerCmd,
	&commands.TriggersCmd,
	&commands.RunCmd,
	&commands.AuthoriseCmd,
}

var options = commands.Options{
	Debug: false,
	Env:   "",
}

var help = uhppoted.NewHelp(commands.APP, cli, nil)

func main() {
	flag.BoolVar(&options.Debug, "debug", options.Debug, "Enable debugging information")
	flag.StringVar(&options.Env, "env", options.Env, "KEY=VALUE file with default settings (defaults to .env in the current directory, if it exists)")
	flag.Parse()

	log.SetDebug(options.Debug)

	if options.Env != "" {
		if err := godotenv.Load(options.Env); err != nil {
			fmt.Printf("\nError loading environment file %v (%v)\n\n", options.Env, err)
			os.Exit(1)
		}
	} else if err := godotenv.Load(); err == nil {
		log.Debugf("loaded default settings from .env")
	}

	cmd, err := uhppoted.Parse(cli, nil, help)
	if err != nil {
		fmt.Printf("\nError parsing command line: %v\n\n", err)
		os.Exit(1)
	}

	if cmd == nil {
		help.Execute()
		os.Exit(1)
	}

	if err = cmd.Execute(&options); err != nil {
		log.Errorf("%v", err)
		log.Sync()
		os.Exit(1)
	}

	log.Sync()
}
