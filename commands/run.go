package commands

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/uhppoted/uhppoted-app-tabulator/log"
	"github.com/uhppoted/uhppoted-app-tabulator/scheduler"
)

var RunCmd = Run{
	command: command{
		workdir: "",
	},
	interval: scheduler.DefaultPollInterval,
}

// Run executes the installed triggers on schedule until interrupted.
type Run struct {
	command
	interval time.Duration
}

func (cmd *Run) Name() string {
	return "run"
}

func (cmd *Run) Description() string {
	return "Runs the installed triggers on schedule until interrupted"
}

func (cmd *Run) Usage() string {
	return "[--workdir <dir>] [--interval <duration>]"
}

func (cmd *Run) Help() {
	fmt.Println()
	fmt.Printf("  Usage: %s [--debug] run [--workdir <dir>] [--interval <duration>]\n", APP)
	fmt.Println()
	fmt.Println("  Checks the installed triggers every --interval and runs any that are due, one at a time.")
	fmt.Println("  Stops on CTRL-C or SIGTERM.")
	fmt.Println()

	helpOptions(cmd.FlagSet())
	fmt.Println()
}

func (cmd *Run) FlagSet() *flag.FlagSet {
	flagset := flag.NewFlagSet("run", flag.ExitOnError)

	flagset.StringVar(&cmd.workdir, "workdir", cmd.workdir, fmt.Sprintf("Directory for working files (tokens, triggers, etc). Defaults to $%v or %v", ENV_WORKDIR, DEFAULT_WORKDIR))
	flagset.DurationVar(&cmd.interval, "interval", cmd.interval, "Interval between checks for due triggers")

	return flagset
}

func (cmd *Run) Execute(args ...any) error {
	cmd.options(args...)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	registry := scheduler.NewRegistry(cmd.triggers())
	jobs := map[string]scheduler.Job{
		FetchCmd.Name(): cmd.fetch,
	}

	infof("Running triggers from %v", cmd.triggers())

	runner := scheduler.NewRunner(registry, jobs, cmd.interval, log.Logger())
	if err := runner.Run(ctx); err != nil {
		return err
	}

	infof("Stopped")

	return nil
}

// fetch replays a 'fetch' command with the options recorded in the trigger.
func (cmd *Run) fetch(ctx context.Context, trigger scheduler.Trigger) error {
	fetch := FetchCmd
	fetch.debug = cmd.debug

	flagset := fetch.FlagSet()
	flagset.Init(fetch.Name(), flag.ContinueOnError)
	flagset.SetOutput(io.Discard)

	if err := flagset.Parse(trigger.Args); err != nil {
		return fmt.Errorf("invalid trigger options %v (%v)", trigger.Args, err)
	}

	return fetch.run(ctx)
}
