package commands

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/uhppoted/uhppoted-app-tabulator/log"
)

const APP = "uhppoted-app-tabulator"

const (
	ENV_SOURCE      = "TABULATOR_SOURCE"
	ENV_SPREADSHEET = "TABULATOR_SPREADSHEET"
	ENV_SHEET       = "TABULATOR_SHEET"
	ENV_CREDENTIALS = "TABULATOR_CREDENTIALS"
	ENV_WORKDIR     = "TABULATOR_WORKDIR"
)

type Options struct {
	Debug bool
	Env   string
}

// command holds the options shared by all commands that need a working directory and
// Google credentials.
type command struct {
	workdir     string
	credentials string
	debug       bool
}

func (c *command) flagset(name string) *flag.FlagSet {
	flagset := flag.NewFlagSet(name, flag.ExitOnError)

	flagset.StringVar(&c.workdir, "workdir", c.workdir, fmt.Sprintf("Directory for working files (tokens, triggers, etc). Defaults to $%v or %v", ENV_WORKDIR, DEFAULT_WORKDIR))
	flagset.StringVar(&c.credentials, "credentials", c.credentials, fmt.Sprintf("Path for the 'credentials.json' file. Defaults to $%v or %v", ENV_CREDENTIALS, DEFAULT_CREDENTIALS))

	return flagset
}

func (c *command) options(args ...any) {
	if len(args) > 0 {
		if options, ok := args[0].(*Options); ok && options != nil {
			c.debug = options.Debug
		}
	}
}

func (c *command) getWorkdir() string {
	return resolve(c.workdir, ENV_WORKDIR, DEFAULT_WORKDIR)
}

func (c *command) getCredentials() string {
	return resolve(c.credentials, ENV_CREDENTIALS, DEFAULT_CREDENTIALS)
}

func (c *command) triggers() string {
	return filepath.Join(c.getWorkdir(), "tabulator", "triggers.yaml")
}

func (c *command) tokens() string {
	return filepath.Join(c.getWorkdir(), ".google")
}

// resolve returns the command line value if set, otherwise the environment variable if
// set, otherwise the default.
func resolve(value, env, defval string) string {
	if v := strings.TrimSpace(value); v != "" {
		return v
	}

	if v, ok := os.LookupEnv(env); ok && strings.TrimSpace(v) != "" {
		return strings.TrimSpace(v)
	}

	return defval
}

func getSpreadsheetID(url string) (string, error) {
	match := regexp.MustCompile(`^https://docs.google.com/spreadsheets/d/(.*?)(?:/.*)?$`).FindStringSubmatch(strings.TrimSpace(url))
	if len(match) < 2 || match[1] == "" {
		return "", fmt.Errorf("invalid spreadsheet URL - expected something like 'https://docs.google.com/spreadsheets/d/1BxiMVs0XRA5nFMdKvBdBZjgmUUqptlbs74OgvE2upms'")
	}

	return match[1], nil
}

func helpOptions(flagset *flag.FlagSet) {
	fmt.Println("  Options:")
	fmt.Println()

	flagset.VisitAll(func(f *flag.Flag) {
		fmt.Printf("    --%-13s %s\n", f.Name, f.Usage)
	})

	fmt.Println()
	fmt.Println("    --debug         Displays internal information for diagnosing errors")
	fmt.Println("    --env           Loads default settings from a KEY=VALUE environment file")
}

func debugf(format string, args ...any) {
	log.Debugf(format, args...)
}

func infof(format string, args ...any) {
	log.Infof(format, args...)
}

func warnf(format string, args ...any) {
	log.Warnf(format, args...)
}
