package commands

const (
	_etc = "/usr/local/etc/uhppoted"
	_var = "/usr/local/var/uhppoted"

	DEFAULT_WORKDIR     = _var + "/tabulator"
	DEFAULT_CREDENTIALS = _etc + "/tabulator/.google/credentials.json"
)
