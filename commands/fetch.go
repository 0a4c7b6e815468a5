package commands

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/Yogeshkumar786/All-RPS/scraper"
)

var FetchCmd = Fetch{
	command: command{
		workdir: DEFAULT_WORKDIR,
		debug:   false,
	},

	site:    scraper.DEFAULT_URL,
	file:    "",
	timeout: 60 * time.Second,
}

type Fetch struct {
	command
	site    string
	file    string
	timeout time.Duration
}

func (cmd *Fetch) Name() string {
	return "fetch"
}

func (cmd *Fetch) Description() string {
	return "Downloads today's RPS report to a local file"
}

func (cmd *Fetch) Usage() string {
	return "[--file <file>]"
}

func (cmd *Fetch) Help() {
	fmt.Println()
	fmt.Printf("  Usage: %s [--debug] fetch [options]\n", APP)
	fmt.Println()
	fmt.Println("  Downloads today's RPS report from the FMS Smart portal without uploading it,")
	fmt.Println("  for checking the report contents before a manual 'put'.")
	fmt.Println()

	helpOptions(cmd.FlagSet())

	fmt.Println()
	fmt.Println("  Examples:")
	fmt.Println(`    rps-sheets fetch --file "rps.xlsx"`)
	fmt.Println()
}

func (cmd *Fetch) FlagSet() *flag.FlagSet {
	flagset := flag.NewFlagSet("fetch", flag.ExitOnError)

	flagset.StringVar(&cmd.workdir, "workdir", cmd.workdir, "Directory for working files (downloads etc)")
	flagset.StringVar(&cmd.site, "site", cmd.site, "RPS report page URL")
	flagset.StringVar(&cmd.file, "file", cmd.file, "Destination file. Defaults to the report name in the downloads directory")
	flagset.DurationVar(&cmd.timeout, "timeout", cmd.timeout, "Timeout for the report download")

	return flagset
}

func (cmd *Fetch) Execute(args ...any) error {
	options := args[0].(*Options)

	cmd.debug = options.Debug
	today := time.Now()

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

	if strings.TrimSpace(cmd.file) != "" {
		dir := filepath.Dir(cmd.file)
		if err := os.MkdirAll(dir, 0770); err != nil {
			return err
		}

		if err := os.Rename(file, cmd.file); err != nil {
			return err
		}

		file = cmd.file
	}

	infof("Downloaded RPS report to %v", file)

	return nil
}
