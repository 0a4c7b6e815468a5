package commands

const (
	_etc = "/usr/local/etc/com.github.rps-sheets"
	_var = "/usr/local/var/com.github.rps-sheets"

	DEFAULT_WORKDIR     = _var
	DEFAULT_CREDENTIALS = _etc + "/.google/credentials.json"
)
