package commands

import (
	"flag"
	"fmt"
	"log"
	"os"
	"regexp"
	"strings"

	"google.golang.org/api/sheets/v4"
)

const APP = "rps-sheets"

const (
	SHEETS = "https://www.googleapis.com/auth/spreadsheets"
)

type Command interface {
	Name() string
	Description() string
	Usage() string
	Help()
	FlagSet() *flag.FlagSet
	Execute(args ...any) error
}

type Options struct {
	Debug bool
}

type command struct {
	workdir     string
	credentials string
	url         string
	debug       bool
}

func (c *command) flagset(name string) *flag.FlagSet {
	flagset := flag.NewFlagSet(name, flag.ExitOnError)

	flagset.StringVar(&c.workdir, "workdir", c.workdir, "Directory for working files (downloads etc)")
	flagset.StringVar(&c.credentials, "credentials", c.credentials, "Path for the service account 'credentials.json' file. Defaults to $GOOGLE_APPLICATION_CREDENTIALS")
	flagset.StringVar(&c.url, "url", c.url, "Google Sheets spreadsheet URL. Defaults to $RPS_SPREADSHEET_URL")

	return flagset
}

// resolve fills in unset flags from the environment. This is the only place
// the environment is consulted - everything downstream gets explicit values.
func (c *command) resolve() {
	if strings.TrimSpace(c.credentials) == "" {
		if file := os.Getenv("GOOGLE_APPLICATION_CREDENTIALS"); file != "" {
			c.credentials = file
		} else {
			c.credentials = DEFAULT_CREDENTIALS
		}
	}

	if strings.TrimSpace(c.url) == "" {
		c.url = os.Getenv("RPS_SPREADSHEET_URL")
	}
}

func (c *command) spreadsheetId() (string, error) {
	match := regexp.MustCompile(`^https://docs.google.com/spreadsheets/d/(.*?)(?:/.*)?$`).FindStringSubmatch(strings.TrimSpace(c.url))
	if len(match) < 2 {
		return "", fmt.Errorf("invalid spreadsheet URL - expected something like 'https://docs.google.com/spreadsheets/d/1VyuRPidEfJkXk1xtn2uSmKGgcb8df90Wwx_TJ9qBLw0'")
	}

	return match[1], nil
}

func getSpreadsheet(google *sheets.Service, id string) (*sheets.Spreadsheet, error) {
	spreadsheet, err := google.Spreadsheets.Get(id).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to fetch spreadsheet (%v)", err)
	}

	return spreadsheet, nil
}

func helpOptions(flagset *flag.FlagSet) {
	flagset.VisitAll(func(f *flag.Flag) {
		fmt.Printf("    --%-13s %s\n", f.Name, f.Usage)
	})

	fmt.Println()
	fmt.Println("  Options:")
	fmt.Println()
	fmt.Println("    --debug Displays internal information for diagnosing errors")
}

func debugf(format string, args ...any) {
	log.Printf("%-5s %s", "DEBUG", fmt.Sprintf(format, args...))
}

func infof(format string, args ...any) {
	log.Printf("%-5s %s", "INFO", fmt.Sprintf(format, args...))
}

func warnf(format string, args ...any) {
	log.Printf("%-5s %s", "WARN", fmt.Sprintf(format, args...))
}
