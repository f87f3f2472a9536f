package commands

import (
	"context"
	"flag"
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/uhppoted/uhppoted-app-tabulator/log"
	"github.com/uhppoted/uhppoted-app-tabulator/tabulator"
	"github.com/uhppoted/uhppoted-app-tabulator/tsv"
	"github.com/uhppoted/uhppoted-app-tabulator/xlsx"
)

var FetchCmd = Fetch{
	command: command{
		workdir:     "",
		credentials: "",
		debug:       false,
	},

	source:  "",
	url:     "",
	sheet:   "",
	xlsx:    "",
	tsv:     "",
	timeout: 0,
}

type Fetch struct {
	command
	source  string
	url     string
	sheet   string
	xlsx    string
	tsv     string
	timeout time.Duration
}

func (cmd *Fetch) Name() string {
	return "fetch"
}

func (cmd *Fetch) Description() string {
	return "Retrieves a JSON list of records from a URL and writes it as a table to a worksheet"
}

func (cmd *Fetch) Usage() string {
	return "--source <url> [--url <url> | --xlsx <file> | --tsv <file>] [--sheet <worksheet>]"
}

func (cmd *Fetch) Help() {
	fmt.Println()
	fmt.Printf("  Usage: %s [--debug] fetch [options] --source <URL> --url <URL> [--sheet <worksheet>]\n", APP)
	fmt.Println()
	fmt.Println("  Retrieves a JSON list of records from the source URL and replaces the contents of the worksheet")
	fmt.Println("  with a table of the records. The column headers are the fields of the first record. If the")
	fmt.Println("  records cannot be retrieved the error is written to the top-left cell of the worksheet.")
	fmt.Println()

	helpOptions(cmd.FlagSet())

	fmt.Println()
	fmt.Println("  Examples:")
	fmt.Println(`    uhppoted-app-tabulator fetch --source "https://example.com/api/users" \`)
	fmt.Println(`                                 --url "https://docs.google.com/spreadsheets/d/1BxiMVs0XRA5nFMdKvBdBZjgmUUqptlbs74OgvE2upms" \`)
	fmt.Println(`                                 --sheet "Users"`)
	fmt.Println()
	fmt.Println(`    uhppoted-app-tabulator --debug fetch --source "https://example.com/api/users" --xlsx "users.xlsx"`)
	fmt.Println()
}

func (cmd *Fetch) FlagSet() *flag.FlagSet {
	flagset := cmd.flagset("fetch")

	cmd.flags(flagset)

	return flagset
}

func (cmd *Fetch) flags(flagset *flag.FlagSet) {
	flagset.StringVar(&cmd.source, "source", cmd.source, fmt.Sprintf("URL of the JSON list of records. Defaults to $%v", ENV_SOURCE))
	flagset.StringVar(&cmd.url, "url", cmd.url, fmt.Sprintf("Spreadsheet URL. Defaults to $%v", ENV_SPREADSHEET))
	flagset.StringVar(&cmd.sheet, "sheet", cmd.sheet, fmt.Sprintf("Worksheet name. Defaults to $%v or the first worksheet", ENV_SHEET))
	flagset.StringVar(&cmd.xlsx, "xlsx", cmd.xlsx, "Writes the table to an Excel workbook instead of a Google Sheets spreadsheet")
	flagset.StringVar(&cmd.tsv, "tsv", cmd.tsv, "Writes the table to a TSV file ('-' for stdout) instead of a Google Sheets spreadsheet")
	flagset.DurationVar(&cmd.timeout, "timeout", cmd.timeout, "Timeout for the HTTP request to the source URL. Defaults to no timeout")
}

func (cmd *Fetch) Execute(args ...any) error {
	cmd.options(args...)

	return cmd.run(context.Background())
}

func (cmd *Fetch) run(ctx context.Context) error {
	if err := cmd.validate(); err != nil {
		return err
	}

	source := resolve(cmd.source, ENV_SOURCE, "")

	store, closer, err := cmd.open(ctx)
	if err != nil {
		return err
	}

	client := http.Client{
		Timeout: cmd.timeout,
	}

	err = tabulator.New(&client, store, log.Logger()).Run(ctx, source)

	if closer != nil {
		if cerr := closer.Close(); cerr != nil {
			if err == nil {
				return cerr
			}

			warnf("%v", cerr)
		}
	}

	return err
}

func (cmd *Fetch) validate() error {
	if resolve(cmd.source, ENV_SOURCE, "") == "" {
		return fmt.Errorf("--source is a required option")
	}

	destinations := 0
	for _, v := range []string{cmd.xlsx, cmd.tsv, cmd.spreadsheet()} {
		if strings.TrimSpace(v) != "" {
			destinations++
		}
	}

	switch {
	case destinations == 0:
		return fmt.Errorf("one of --url, --xlsx or --tsv is required")

	case strings.TrimSpace(cmd.xlsx) != "" && strings.TrimSpace(cmd.tsv) != "":
		return fmt.Errorf("--xlsx and --tsv are mutually exclusive")

	case strings.TrimSpace(cmd.url) != "" && cmd.file():
		return fmt.Errorf("--url cannot be combined with --xlsx or --tsv")
	}

	return nil
}

// open returns the destination store, in order of precedence --xlsx, --tsv and then the
// Google Sheets spreadsheet. A spreadsheet from the environment is ignored when a file is given.
func (cmd *Fetch) open(ctx context.Context) (tabulator.Store, io.Closer, error) {
	worksheet := resolve(cmd.sheet, ENV_SHEET, "")

	switch {
	case strings.TrimSpace(cmd.xlsx) != "":
		store, err := xlsx.Open(cmd.xlsx, worksheet)
		if err != nil {
			return nil, nil, fmt.Errorf("unable to open workbook %v (%v)", cmd.xlsx, err)
		}

		return store, store, nil

	case strings.TrimSpace(cmd.tsv) != "":
		store, err := tsv.Open(cmd.tsv)
		if err != nil {
			return nil, nil, fmt.Errorf("unable to open TSV file %v (%v)", cmd.tsv, err)
		}

		return store, store, nil

	default:
		store, err := openSpreadsheet(ctx, cmd.getCredentials(), cmd.tokens(), cmd.spreadsheet(), worksheet)
		if err != nil {
			return nil, nil, err
		}

		return store, nil, nil
	}
}

func (cmd *Fetch) spreadsheet() string {
	return resolve(cmd.url, ENV_SPREADSHEET, "")
}

func (cmd *Fetch) file() bool {
	return strings.TrimSpace(cmd.xlsx) != "" || strings.TrimSpace(cmd.tsv) != ""
}

// args returns the command line options needed to replay this fetch from a trigger. Values
// taken from the environment are recorded explicitly and file paths are made absolute.
func (cmd *Fetch) args() []string {
	args := []string{}

	add := func(name, value string, path bool) {
		if v := strings.TrimSpace(value); v != "" {
			if path && v != "-" {
				if abs, err := filepath.Abs(v); err == nil {
					v = abs
				}
			}

			args = append(args, "--"+name, v)
		}
	}

	add("workdir", resolve(cmd.workdir, ENV_WORKDIR, ""), true)
	add("credentials", resolve(cmd.credentials, ENV_CREDENTIALS, ""), true)
	add("source", resolve(cmd.source, ENV_SOURCE, ""), false)
	if !cmd.file() {
		add("url", cmd.spreadsheet(), false)
	}
	add("sheet", resolve(cmd.sheet, ENV_SHEET, ""), false)
	add("xlsx", cmd.xlsx, true)
	add("tsv", cmd.tsv, true)

	if cmd.timeout > 0 {
		args = append(args, "--timeout", cmd.timeout.String())
	}

	return args
}
