package commands

import (
	"context"
	"fmt"

	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"

	"github.com/uhppoted/uhppoted-app-tabulator/gsheets"
)

func openSpreadsheet(ctx context.Context, credentials, tokens, url, worksheet string) (*gsheets.Store, error) {
	spreadsheet, err := getSpreadsheetID(url)
	if err != nil {
		return nil, err
	}

	debugf("Spreadsheet - ID:%s  worksheet:%s", spreadsheet, worksheet)

	client, err := authorize(ctx, credentials, SHEETS, tokens)
	if err != nil {
		return nil, fmt.Errorf("authentication/authorization error (%v)", err)
	}

	google, err := sheets.NewService(ctx, option.WithHTTPClient(client))
	if err != nil {
		return nil, fmt.Errorf("unable to create new Sheets client (%v)", err)
	}

	return gsheets.Open(ctx, google, spreadsheet, worksheet)
}
