/*
Package rps-sheets mirrors the daily RPS vehicle report from the FMS Smart web
portal to a Google Sheets worksheet.

rps-sheets can be used from the command line but is really intended to be run
from a cron job (or a GitHub Actions schedule) to keep the worksheet current -
each run downloads today's Excel report with a headless browser, parses it and
replaces the worksheet contents, retrying the upload on transient Google Sheets
service errors.

rps-sheets supports the following commands:

  - run, to download today's RPS report and upload it to the Google Sheets worksheet
  - fetch, to download today's RPS report to a local file
  - put, to upload a previously downloaded RPS report to the Google Sheets worksheet
  - version, to display the current version
*/
package rps
