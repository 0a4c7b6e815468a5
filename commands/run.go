package commands

import (
	"context"
	"flag"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"

	"github.com/Yogeshkumar786/All-RPS/report"
	"github.com/Yogeshkumar786/All-RPS/scraper"
)

var RunCmd = Run{
	command: command{
		workdir:     DEFAULT_WORKDIR,
		credentials: "",
		url:         "",
		debug:       false,
	},

	site:      scraper.DEFAULT_URL,
	worksheet: "All_RPS",
	timeout:   60 * time.Second,
	retries:   defaultRetry.MaxAttempts,
	delay:     2 * time.Second,
}

type Run struct {
	command
	site      string
	worksheet string
	timeout   time.Duration
	retries   int
	delay     time.Duration
}

func (cmd *Run) Name() string {
	return "run"
}

func (cmd *Run) Description() string {
	return "Downloads today's RPS report and uploads it to the Google Sheets worksheet"
}

func (cmd *Run) Usage() string {
	return "--credentials <file> --url <url> --worksheet <name>"
}

func (cmd *Run) Help() {
	fmt.Println()
	fmt.Printf("  Usage: %s [--debug] run [options] --url <URL> --worksheet <name>\n", APP)
	fmt.Println()
	fmt.Println("  Downloads today's RPS report from the FMS Smart portal and replaces the")
	fmt.Println("  contents of the Google Sheets worksheet with it. This is the command the")
	fmt.Println("  scheduler invokes (it is also the default when no command is given).")
	fmt.Println()

	helpOptions(cmd.FlagSet())

	fmt.Println()
	fmt.Println("  Examples:")
	fmt.Println(`    rps-sheets run --credentials "credentials.json" \`)
	fmt.Println(`                   --url "https://docs.google.com/spreadsheets/d/1VyuRPidEfJkXk1xtn2uSmKGgcb8df90Wwx_TJ9qBLw0" \`)
	fmt.Println(`                   --worksheet "All_RPS"`)
	fmt.Println()
}

func (cmd *Run) FlagSet() *flag.FlagSet {
	flagset := cmd.flagset("run")

	flagset.StringVar(&cmd.site, "site", cmd.site, "RPS report page URL")
	flagset.StringVar(&cmd.worksheet, "worksheet", cmd.worksheet, "Destination worksheet name")
	flagset.DurationVar(&cmd.timeout, "timeout", cmd.timeout, "Timeout for the report download")
	flagset.IntVar(&cmd.retries, "retries", cmd.retries, "Maximum upload attempts on transient (503) errors")
	flagset.DurationVar(&cmd.delay, "retry-delay", cmd.delay, "Initial delay between upload attempts (doubles on each retry)")

	return flagset
}

func (cmd *Run) Execute(args ...any) error {
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
	today := time.Now()

	// ... download today's report
	infof("Downloading RPS report for %v", today.Format("2006-01-02"))

	file, err := scraper.Fetch(scraper.Options{
		URL:       cmd.site,
		Downloads: filepath.Join(cmd.workdir, "downloads"),
		Headless:  !cmd.debug,
		Timeout:   cmd.timeout,
	}, today)
	if err != nil {
		return err
	}

	infof("Downloaded RPS report to %v", file)

	// ... parse
	table, err := report.Parse(file)
	if err != nil {
		return err
	}

	infof("Parsed %v records from %v", len(table.Records), filepath.Base(file))

	// ... upload
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

	infof("Updated worksheet '%v' with RPS report for %v", cmd.worksheet, today.Format("2006-01-02"))

	return nil
}

func (cmd *Run) validate() error {
	if strings.TrimSpace(cmd.credentials) == "" {
		return fmt.Errorf("--credentials is a required option")
	}

	if strings.TrimSpace(cmd.url) == "" {
		return fmt.Errorf("--url is a required option")
	}

	if strings.TrimSpace(cmd.worksheet) == "" {
		return fmt.Errorf("--worksheet is a required option")
	}

	return nil
}
