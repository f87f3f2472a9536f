package commands

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

var AuthoriseCmd = Authorise{
	command: command{
		workdir:     "",
		credentials: "",
		debug:       false,
	},
	in: os.Stdin,
}

type Authorise struct {
	command
	in io.Reader
}

func (cmd *Authorise) Name() string {
	return "authorise"
}

func (cmd *Authorise) Description() string {
	return "Authorises uhppoted-app-tabulator to write to Google Sheets"
}

func (cmd *Authorise) Usage() string {
	return "--credentials <file>"
}

func (cmd *Authorise) Help() {
	fmt.Println()
	fmt.Printf("  Usage: %s [--debug] authorise [options]\n", APP)
	fmt.Println()
	fmt.Println("  Authorises uhppoted-app-tabulator to write to Google Sheets using the OAuth2 client credentials")
	fmt.Println("  in the credentials file and stores the access token in the working directory. Not required for")
	fmt.Println("  service account credentials.")
	fmt.Println()

	helpOptions(cmd.FlagSet())

	fmt.Println()
	fmt.Println("  Examples:")
	fmt.Println(`    uhppoted-app-tabulator authorise --credentials "credentials.json"`)
	fmt.Println()
}

func (cmd *Authorise) FlagSet() *flag.FlagSet {
	return cmd.flagset("authorise")
}

func (cmd *Authorise) Execute(args ...any) error {
	cmd.options(args...)

	credentials := cmd.getCredentials()
	b, err := os.ReadFile(credentials)
	if err != nil {
		return err
	}

	config, err := google.ConfigFromJSON(b, SHEETS)
	if err != nil {
		return fmt.Errorf("invalid OAuth2 client credentials (%v)", err)
	}

	url := config.AuthCodeURL("state-token", oauth2.AccessTypeOffline)
	fmt.Printf("Go to the following link in your browser then type the authorization code: \n%v\n", url)

	var code string
	if _, err := fmt.Fscan(cmd.in, &code); err != nil {
		return fmt.Errorf("unable to read authorization code (%v)", err)
	}

	token, err := config.Exchange(context.Background(), strings.TrimSpace(code))
	if err != nil {
		return fmt.Errorf("unable to retrieve token from web (%v)", err)
	}

	file := tokenFile(credentials, SHEETS, cmd.tokens())
	if err := saveToken(file, token); err != nil {
		return err
	}

	infof("Saved authorisation token to %v", file)

	return nil
}
