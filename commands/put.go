package commands

import (
	"context"
	"flag"
	"fmt"
	"strings"
	"time"

	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"

	"github.com/Yogeshkumar786/All-RPS/report"
)

var PutCmd = Put{
	command: command{
		workdir:     DEFAULT_WORKDIR,
		credentials: "",
		url:         "",
		debug:       false,
	},

	worksheet: "All_RPS",
	file:      "",
	retries:   defaultRetry.MaxAttempts,
	delay:     2 * time.Second,
}

type Put struct {
	command
	worksheet string
	file      string
	retries   int
	delay     time.Duration
}

func (cmd *Put) Name() string {
	return "put"
}

func (cmd *Put) Description() string {
	return "Uploads a previously downloaded RPS report to the Google Sheets worksheet"
}

func (cmd *Put) Usage() string {
	return "--credentials <file> --url <url> --file <file>"
}

func (cmd *Put) Help() {
	fmt.Println()
	fmt.Printf("  Usage: %s [--debug] put [options] --url <URL> --worksheet <name> --file <file>\n", APP)
	fmt.Println()
	fmt.Println("  Uploads an RPS report file to a Google Sheets worksheet, replacing the")
	fmt.Println("  worksheet contents - for re-running an upload without the browser step.")
	fmt.Println()

	helpOptions(cmd.FlagSet())

	fmt.Println()
	fmt.Println("  Examples:")
	fmt.Println(`    rps-sheets put --credentials "credentials.json" \`)
	fmt.Println(`                   --url "https://docs.google.com/spreadsheets/d/1VyuRPidEfJkXk1xtn2uSmKGgcb8df90Wwx_TJ9qBLw0" \`)
	fmt.Println(`                   --worksheet "All_RPS" \`)
	fmt.Println(`                   --file "rps.xlsx"`)
	fmt.Println()
}

func (cmd *Put) FlagSet() *flag.FlagSet {
	flagset := cmd.flagset("put")

	flagset.StringVar(&cmd.worksheet, "worksheet", cmd.worksheet, "Destination worksheet name")
	flagset.StringVar(&cmd.file, "file", cmd.file, "RPS report file (.xlsx)")
	flagset.IntVar(&cmd.retries, "retries", cmd.retries, "Maximum upload attempts on transient (503) errors")
	flagset.DurationVar(&cmd.delay, "retry-delay", cmd.delay, "Initial delay between upload attempts (doubles on each retry)")

	return flagset
}

func (cmd *Put) Execute(args ...any) error {
	options := args[0].(*Options)

	cmd.debug = options.Debug
	cmd.resolve()

	if err := cmd.validate(); err != nil {
		return err
	}

	spreadsheetId, err := cmd.spreadsheetId()
	if err != nil {
		return err
	}

	if cmd.debug {
		debugf("Spreadsheet - ID:%s  worksheet:%s", spreadsheetId, cmd.worksheet)
	}

	ctx := context.Background()

	table, err := report.Parse(cmd.file)
	if err != nil {
		return err
	}

	client, err := authorize(cmd.credentials, SHEETS, ctx)
	if err != nil {
		return fmt.Errorf("Google Sheets authentication/authorization error (%w)", err)
	}

	google, err := sheets.NewService(ctx, option.WithHTTPClient(client))
	if err != nil {
		return fmt.Errorf("unable to create new Sheets client (%w)", err)
	}

	spreadsheet, err := getSpreadsheet(google, spreadsheetId)
	if err != nil {
		return err
	}

	policy := retry{
		MaxAttempts: cmd.retries,
		Delay:       exponential(cmd.delay),
	}

	if err := upload(google, spreadsheet, cmd.worksheet, table, policy, ctx); err != nil {
		return err
	}

	infof("Uploaded %v to worksheet '%v'", cmd.file, cmd.worksheet)

	return nil
}

func (cmd *Put) validate() error {
	if strings.TrimSpace(cmd.credentials) == "" {
		return fmt.Errorf("--credentials is a required option")
	}

	if strings.TrimSpace(cmd.url) == "" {
		return fmt.Errorf("--url is a required option")
	}

	if strings.TrimSpace(cmd.worksheet) == "" {
		return fmt.Errorf("--worksheet is a required option")
	}

	if strings.TrimSpace(cmd.file) == "" {
		return fmt.Errorf("--file is a required option")
	}

	return nil
}
