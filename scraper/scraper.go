// Package scraper downloads the daily RPS Excel report from the FMS Smart web
// portal. The report page is an ASP.NET form with no stable element IDs, so
// the interaction is scripted against absolute XPaths with fixed settle delays
// between steps.
package scraper

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/playwright-community/playwright-go"
)

const DEFAULT_URL = "http://smart.dsmsoft.com/FMSSmartApp/Safex_RPS_Reports/RPS_Reports.aspx?usergroup=NRM.101"

const (
	vehicleDropdown = `xpath=/html/body/form/div[5]/div/div/div/div/div/div/div[3]/div/div[4]/div[2]`
	allVehicles     = `xpath=/html/body/form/div[5]/div/div/div/div/div/div/div[3]/div/div[4]/div[3]/div[2]/ul/li[1]/input`
	datePicker      = `xpath=/html/body/form/div[5]/div/div/div/div/div/div/div[3]/div/div[1]/div[2]/input`
	submitButton    = `xpath=/html/body/form/div[5]/div/div/div/div/div/div/div[3]/div/div[5]/div/button`
	downloadButton  = `xpath=/html/body/form/div[5]/div/div/div/div/div/div/div[4]/div/table/div/div[4]/div/div/div[3]/div[1]/div/div/div`
)

// ErrNoReport is returned when the portal has no RPS report for the requested
// date. It is fatal to the run - the next scheduled invocation tries again.
var ErrNoReport = errors.New("no RPS report available")

type Options struct {
	URL       string
	Downloads string
	Headless  bool
	Timeout   time.Duration
}

// Fetch drives a headless browser session through the RPS report form - select
// all vehicles, pick the report date, submit - and saves the exported Excel
// file to the downloads directory, overwriting any file of the same name. The
// file is only written once the download has completed, so a failed fetch
// never leaves a partial file behind.
func Fetch(opts Options, date time.Time) (string, error) {
	if err := os.MkdirAll(opts.Downloads, 0770); err != nil {
		return "", err
	}

	pw, err := playwright.Run()
	if err != nil {
		return "", fmt.Errorf("unable to start playwright (%w)", err)
	}

	defer pw.Stop()

	browser, err := pw.Chromium.Launch(playwright.BrowserTypeLaunchOptions{
		Headless: playwright.Bool(opts.Headless),
	})
	if err != nil {
		return "", fmt.Errorf("unable to launch browser (%w)", err)
	}

	defer browser.Close()

	context, err := browser.NewContext(playwright.BrowserNewContextOptions{
		AcceptDownloads: playwright.Bool(true),
	})
	if err != nil {
		return "", fmt.Errorf("unable to create browser context (%w)", err)
	}

	page, err := context.NewPage()
	if err != nil {
		return "", fmt.Errorf("unable to open page (%w)", err)
	}

	if _, err := page.Goto(opts.URL, playwright.PageGotoOptions{
		WaitUntil: playwright.WaitUntilStateLoad,
	}); err != nil {
		return "", fmt.Errorf("unable to open RPS report page (%w)", err)
	}

	page.WaitForTimeout(4000)

	// ... select all vehicles
	if err := page.Locator(vehicleDropdown).Click(); err != nil {
		return "", fmt.Errorf("unable to open vehicle list (%w)", err)
	}

	page.WaitForTimeout(1000)

	if err := page.Locator(allVehicles).Click(); err != nil {
		return "", fmt.Errorf("unable to select all vehicles (%w)", err)
	}

	page.WaitForTimeout(1000)

	// ... pick the report date
	if err := page.Locator(datePicker).Click(); err != nil {
		return "", fmt.Errorf("unable to open date picker (%w)", err)
	}

	page.WaitForTimeout(1000)

	// A disabled or missing day cell means the portal has nothing for the date
	if err := page.Locator(dayXPath(date)).First().Click(); err != nil {
		return "", fmt.Errorf("%w for %v", ErrNoReport, date.Format("2006-01-02"))
	}

	page.WaitForTimeout(1000)

	// ... submit and export
	if err := page.Locator(submitButton).Click(); err != nil {
		return "", fmt.Errorf("unable to submit report request (%w)", err)
	}

	page.WaitForTimeout(5000)

	download, err := page.ExpectDownload(func() error {
		return page.Locator(downloadButton).Click()
	}, playwright.PageExpectDownloadOptions{
		Timeout: playwright.Float(float64(opts.Timeout.Milliseconds())),
	})
	if err != nil {
		return "", fmt.Errorf("%w for %v (%v)", ErrNoReport, date.Format("2006-01-02"), err)
	}

	file := filepath.Join(opts.Downloads, download.SuggestedFilename())
	if err := download.SaveAs(file); err != nil {
		return "", fmt.Errorf("error saving downloaded report (%w)", err)
	}

	return file, nil
}

// dayXPath builds the locator for an enabled day cell in the portal's xdsoft
// date picker.
func dayXPath(date time.Time) string {
	return fmt.Sprintf(`xpath=//td[@data-date="%d" and contains(@class, "xdsoft_date") and not(contains(@class, "xdsoft_disabled"))]`, date.Day())
}
