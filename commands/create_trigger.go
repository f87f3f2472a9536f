package commands

import (
	"flag"
	"fmt"

	"github.com/uhppoted/uhppoted-app-tabulator/scheduler"
)

var CreateTriggerCmd = CreateTrigger{
	Fetch: FetchCmd,
	hours: 1,
}

// CreateTrigger installs the timed trigger that runs 'fetch' with the given options.
type CreateTrigger struct {
	Fetch
	hours uint
}

func (cmd *CreateTrigger) Name() string {
	return "create-trigger"
}

func (cmd *CreateTrigger) Description() string {
	return "Installs a timed trigger that runs 'fetch' every hour, replacing any existing 'fetch' trigger"
}

func (cmd *CreateTrigger) Usage() string {
	return "[--hours <hours>] --source <url> [--url <url> | --xlsx <file> | --tsv <file>]"
}

func (cmd *CreateTrigger) Help() {
	fmt.Println()
	fmt.Printf("  Usage: %s create-trigger [--hours <hours>] [fetch options]\n", APP)
	fmt.Println()
	fmt.Println("  Installs a trigger that runs 'fetch' with the fetch options every --hours hours. Any existing")
	fmt.Println("  'fetch' trigger is deleted first so that there is only ever one. Triggers are run by the 'run'")
	fmt.Println("  command.")
	fmt.Println()

	helpOptions(cmd.FlagSet())

	fmt.Println()
	fmt.Println("  Examples:")
	fmt.Println(`    uhppoted-app-tabulator create-trigger --source "https://example.com/api/users" \`)
	fmt.Println(`                                          --url "https://docs.google.com/spreadsheets/d/1BxiMVs0XRA5nFMdKvBdBZjgmUUqptlbs74OgvE2upms"`)
	fmt.Println()
}

func (cmd *CreateTrigger) FlagSet() *flag.FlagSet {
	flagset := cmd.flagset("create-trigger")

	cmd.flags(flagset)
	flagset.UintVar(&cmd.hours, "hours", cmd.hours, "Interval between scheduled fetches, in hours")

	return flagset
}

func (cmd *CreateTrigger) Execute(args ...any) error {
	cmd.options(args...)

	if cmd.hours == 0 {
		return fmt.Errorf("invalid --hours (%v)", cmd.hours)
	}

	if err := cmd.validate(); err != nil {
		return err
	}

	registry := scheduler.NewRegistry(cmd.triggers())

	trigger, err := scheduler.EnsureTimeTrigger(registry, FetchCmd.Name(), cmd.hours, cmd.args()...)
	if err != nil {
		return fmt.Errorf("unable to create trigger (%v)", err)
	}

	infof("Created trigger %v", trigger.ID)
	debugf("%v", trigger)

	return nil
}
