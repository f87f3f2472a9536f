package commands

import (
	"flag"
	"fmt"

	"github.com/uhppoted/uhppoted-app-tabulator/scheduler"
)

var TriggersCmd = Triggers{
	command: command{
		workdir: "",
	},
}

type Triggers struct {
	command
}

func (cmd *Triggers) Name() string {
	return "triggers"
}

func (cmd *Triggers) Description() string {
	return "Lists the installed triggers"
}

func (cmd *Triggers) Usage() string {
	return "[--workdir <dir>]"
}

func (cmd *Triggers) Help() {
	fmt.Println()
	fmt.Printf("  Usage: %s triggers [--workdir <dir>]\n", APP)
	fmt.Println()
	fmt.Println("  Lists the triggers installed by create-trigger")
	fmt.Println()

	helpOptions(cmd.FlagSet())
	fmt.Println()
}

func (cmd *Triggers) FlagSet() *flag.FlagSet {
	flagset := flag.NewFlagSet("triggers", flag.ExitOnError)

	flagset.StringVar(&cmd.workdir, "workdir", cmd.workdir, fmt.Sprintf("Directory for working files (tokens, triggers, etc). Defaults to $%v or %v", ENV_WORKDIR, DEFAULT_WORKDIR))

	return flagset
}

func (cmd *Triggers) Execute(args ...any) error {
	cmd.options(args...)

	triggers, err := scheduler.NewRegistry(cmd.triggers()).List()
	if err != nil {
		return err
	}

	if len(triggers) == 0 {
		fmt.Println("  (no triggers)")
		return nil
	}

	for _, t := range triggers {
		fmt.Printf("  %v\n", t)
	}

	return nil
}
