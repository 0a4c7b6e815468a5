package commands

const (
	_etc = "/usr/local/etc/rps-sheets"
	_var = "/usr/local/var/rps-sheets"

	DEFAULT_WORKDIR     = _var
	DEFAULT_CREDENTIALS = _etc + "/.google/credentials.json"
)
