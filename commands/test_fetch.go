package commands

import (
	"context"
	"flag"
	"fmt"

	"github.com/uhppoted/uhppoted-app-tabulator/log"
)

var TestFetchCmd = TestFetch{
	Fetch: FetchCmd,
}

// TestFetch runs a fetch manually with debug logging enabled.
type TestFetch struct {
	Fetch
}

func (cmd *TestFetch) Name() string {
	return "test-fetch"
}

func (cmd *TestFetch) Description() string {
	return "Runs a single fetch with debugging enabled, for testing a configuration"
}

func (cmd *TestFetch) Help() {
	fmt.Println()
	fmt.Printf("  Usage: %s test-fetch [options] --source <URL> --url <URL> [--sheet <worksheet>]\n", APP)
	fmt.Println()
	fmt.Println("  Runs a fetch exactly as 'fetch' does, with debug logging enabled")
	fmt.Println()

	helpOptions(cmd.FlagSet())

	fmt.Println()
	fmt.Println("  Examples:")
	fmt.Println(`    uhppoted-app-tabulator test-fetch --source "https://example.com/api/users" --tsv -`)
	fmt.Println()
}

func (cmd *TestFetch) FlagSet() *flag.FlagSet {
	flagset := cmd.flagset("test-fetch")

	cmd.flags(flagset)

	return flagset
}

func (cmd *TestFetch) Execute(args ...any) error {
	cmd.options(args...)
	cmd.debug = true

	log.SetDebug(true)

	return cmd.run(context.Background())
}
