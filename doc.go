// Package ytreport collects YouTube channel statistics into a spreadsheet.
//
// It reads a column of candidate channel URLs from a Google Sheet,
// resolves each URL's handle to a channel ID, fetches the channel's
// recent videos and per-video statistics from the YouTube Data API v3,
// and writes the aggregated rows to a local xlsx or csv file.
//
// # Pipeline
//
// Each input row moves through a fixed sequence:
//
//	Raw -> HandleExtracted -> ChannelResolved -> VideosFetched -> Emitted
//
// A row that fails a step is skipped with a logged reason; it never
// aborts the run. A video whose statistics lookup fails is still
// emitted with its statistics columns left empty. Rows are processed in
// input order, and within a row videos keep catalog order, so the
// output file's row order is deterministic.
//
// # Caps
//
// Two caps bound API quota spend per run: at most 5 input rows are
// processed and at most 10 videos are fetched per channel. Both are
// configurable via YTREPORT_MAX_ROWS and YTREPORT_MAX_VIDEOS.
//
// # Configuration
//
// Configuration comes from the environment, optionally seeded from a
// .env file:
//
//   - YTREPORT_API_KEY: YouTube Data API key (required)
//   - YTREPORT_SPREADSHEET_ID: input Google Sheet ID (required)
//   - YTREPORT_CREDENTIALS_FILE: service-account JSON path (required)
//   - YTREPORT_READ_RANGE: input column range (default "Sheet1!A2:A")
//   - YTREPORT_OUTPUT_PATH: report path (default "videos.xlsx")
//   - YTREPORT_OUTPUT_FORMAT: "xlsx" or "csv"
//   - YTREPORT_MAX_ROWS, YTREPORT_MAX_VIDEOS: per-run caps
//   - YTREPORT_MAX_RETRIES: retries per API call (default 0, one-shot)
//
// Missing required values abort the process before any pipeline work.
//
// # Error Handling
//
// Remote failures are fail-soft at the item level. Checking for
// sentinel errors:
//
//	if errors.Is(err, ytreport.ErrChannelNotFound) {
//		fmt.Println("Channel not found")
//	}
//
// Extracting wrapped error details:
//
//	var lookupErr *ytreport.LookupError
//	if errors.As(err, &lookupErr) {
//		fmt.Printf("Lookup %s failed: %v\n", lookupErr.Key, lookupErr.Err)
//	}
//
// Sub-packages:
//
//   - youtube: handle resolution, catalog and statistics lookups
//   - sheets: Google Sheets input
//   - report: xlsx/csv output
//   - pipeline: per-row orchestration
//   - config: configuration management
package ytreport
