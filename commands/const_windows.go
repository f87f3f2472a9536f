package commands

const (
	DEFAULT_WORKDIR     = `C:\ProgramData\uhppoted\tabulator`
	DEFAULT_CREDENTIALS = `C:\ProgramData\uhppoted\tabulator\.google\credentials.json`
)
