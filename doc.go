// Copyright 2023 uhppoted@twyst.co.za. All rights reserved.
// Use of this source code is governed by an MIT-style license
// that can be found in the LICENSE file.

/*
Package uhppoted-app-tabulator retrieves a JSON list of records from a URL and writes it as a table to a worksheet.

uhppoted-app-tabulator can be used from the command line but is really intended to be left running (or run from a
cron job) to keep a Google Sheets worksheet in step with a JSON data source. The first row of the worksheet holds the
field names of the first record, formatted as a bold header, and each following row holds one record. If the records
cannot be retrieved, the error is written to the top-left cell of the worksheet.

uhppoted-app-tabulator supports the following commands:

  - authorise, to authorise application access to Google Sheets
  - fetch, to retrieve the records and replace the worksheet contents with a table of the records
  - test-fetch, to run 'fetch' with debug logging
  - create-trigger, to install a timed trigger that runs 'fetch' every few hours
  - triggers, to list the installed triggers
  - run, to run the installed triggers on schedule

Besides Google Sheets, the table can be written to an Excel workbook (--xlsx) or a TSV file (--tsv).
*/
package tabulator
