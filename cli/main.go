// Command ytreport reads channel URLs from a Google Sheet, fetches
// recent videos and statistics from the YouTube Data API, and writes
// the aggregated rows to a local spreadsheet file.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/google/uuid"

	"ytreport/config"
	"ytreport/internal/retry"
	"ytreport/pipeline"
	"ytreport/report"
	"ytreport/sheets"
	"ytreport/youtube"
)

func main() {
	envFile := flag.String("env", "", "Path to .env file (optional)")
	out := flag.String("out", "", "Output file path (overrides YTREPORT_OUTPUT_PATH)")
	format := flag.String("format", "", "Output format: xlsx or csv (overrides YTREPORT_OUTPUT_FORMAT)")
	readRange := flag.String("range", "", "Input column range in A1 notation (overrides YTREPORT_READ_RANGE)")
	maxRows := flag.Int("max-rows", 0, "Maximum input rows to process (overrides YTREPORT_MAX_ROWS)")
	maxVideos := flag.Int("max-videos", 0, "Maximum videos per channel (overrides YTREPORT_MAX_VIDEOS)")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, `ytreport - collect YouTube channel statistics into a spreadsheet

Usage:
  ytreport [flags]

Required environment (or .env):
  YTREPORT_API_KEY           YouTube Data API key
  YTREPORT_SPREADSHEET_ID    Input Google Sheet ID
  YTREPORT_CREDENTIALS_FILE  Service-account JSON for reading the sheet

Flags:
`)
		flag.PrintDefaults()
	}
	flag.Parse()

	cfg, err := config.Load(*envFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	if *out != "" {
		cfg.OutputPath = *out
	}
	if *format != "" {
		cfg.OutputFormat = *format
	}
	if *readRange != "" {
		cfg.ReadRange = *readRange
	}
	if *maxRows > 0 {
		cfg.MaxRows = *maxRows
	}
	if *maxVideos > 0 {
		cfg.MaxVideos = *maxVideos
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Short run ID so per-item diagnostics from one run grep together.
	runID := uuid.NewString()[:8]
	log.SetPrefix("ytreport[" + runID + "] ")

	ctx := context.Background()

	retryCfg := retry.Config{
		MaxRetries:     cfg.MaxRetries,
		InitialBackoff: cfg.InitialBackoff,
		MaxBackoff:     cfg.MaxBackoff,
		Multiplier:     cfg.BackoffMultiplier,
		JitterFraction: 0.2,
	}

	client, err := youtube.NewClient(ctx, cfg.APIKey, retryCfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating YouTube client: %v\n", err)
		os.Exit(1)
	}

	reader, err := sheets.NewReader(ctx, cfg.CredentialsFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating Sheets reader: %v\n", err)
		os.Exit(1)
	}

	var writer pipeline.Writer
	switch cfg.OutputFormat {
	case config.FormatCSV:
		writer = report.CSVWriter{}
	default:
		writer = report.XLSXWriter{}
	}

	rows, err := reader.ReadColumn(ctx, cfg.SpreadsheetID, cfg.ReadRange)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading input sheet: %v\n", err)
		os.Exit(1)
	}
	urls := sheets.FilterVideoURLs(rows)
	log.Printf("input: %d rows, %d look like YouTube URLs", len(rows), len(urls))

	p := &pipeline.Pipeline{
		Resolver:  client,
		Catalog:   client,
		Details:   client,
		Writer:    writer,
		MaxRows:   cfg.MaxRows,
		MaxVideos: cfg.MaxVideos,
	}

	summary, err := p.Run(ctx, urls, cfg.OutputPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	log.Printf("done: processed %d/%d rows (%d skipped), wrote %d videos (%d enriched) to %s",
		summary.RowsProcessed, summary.RowsSeen, summary.RowsSkipped,
		summary.VideosEmitted, summary.VideosEnriched, cfg.OutputPath)
}
