// Package pipeline orchestrates the per-row collection flow: extract a
// channel handle from each input URL, resolve it, fetch the channel's
// recent videos, enrich each video with statistics, and hand the
// accumulated rows to the output writer in one batch.
package pipeline

import (
	"context"
	"fmt"
	"log"

	"ytreport/report"
	"ytreport/youtube"
)

// Default caps. Both exist to bound API quota spend per run.
const (
	// DefaultMaxRows is how many input rows are processed per run.
	DefaultMaxRows = 5
	// DefaultMaxVideos is how many videos are fetched per channel.
	DefaultMaxVideos = 10
)

// HandleResolver resolves a channel handle to its stable channel ID.
type HandleResolver interface {
	ResolveChannelID(ctx context.Context, handle string) (string, error)
}

// CatalogFetcher fetches up to max recent videos for a channel.
// Implementations are fail-soft: any failure yields an empty slice.
type CatalogFetcher interface {
	FetchRecentVideos(ctx context.Context, channelID string, max int64) []youtube.VideoSummary
}

// DetailFetcher fetches statistics and content metadata for one video.
type DetailFetcher interface {
	FetchVideoDetail(ctx context.Context, videoID string) (*youtube.VideoDetail, error)
}

// Writer persists the accumulated rows to a file.
type Writer interface {
	Write(path string, rows []report.Row) error
}

// Pipeline wires the collaborators together. All fields are required.
type Pipeline struct {
	Resolver HandleResolver
	Catalog  CatalogFetcher
	Details  DetailFetcher
	Writer   Writer

	// MaxRows caps how many input rows are processed. 0 means DefaultMaxRows.
	MaxRows int
	// MaxVideos caps how many videos are fetched per channel.
	// 0 means DefaultMaxVideos.
	MaxVideos int
}

// Summary reports what a run did, for logging and tests. Skipped rows
// are diagnosable only through the log; there is no structured error
// report per item.
type Summary struct {
	// RowsSeen is the input size before the row cap.
	RowsSeen int
	// RowsProcessed is how many rows entered the per-row flow.
	RowsProcessed int
	// RowsSkipped counts rows dropped for invalid URLs or unresolved channels.
	RowsSkipped int
	// VideosEmitted is the number of output rows written.
	VideosEmitted int
	// VideosEnriched is how many output rows carry statistics.
	VideosEnriched int
}

// Run processes the input URLs and writes the accumulated rows to
// outputPath as one batch. Per-item failures are logged and skipped;
// only the final write can fail the run. Output order is row-major,
// then catalog order within a row.
func (p *Pipeline) Run(ctx context.Context, urls []string, outputPath string) (Summary, error) {
	maxRows := p.MaxRows
	if maxRows <= 0 {
		maxRows = DefaultMaxRows
	}
	maxVideos := p.MaxVideos
	if maxVideos <= 0 {
		maxVideos = DefaultMaxVideos
	}

	summary := Summary{RowsSeen: len(urls)}
	if len(urls) > maxRows {
		log.Printf("pipeline: truncating input to %d of %d rows", maxRows, len(urls))
		urls = urls[:maxRows]
	}

	var rows []report.Row
	for _, url := range urls {
		summary.RowsProcessed++

		handle, ok := youtube.ExtractHandle(url)
		if !ok {
			summary.RowsSkipped++
			log.Printf("pipeline: skip %q: invalid URL", url)
			continue
		}

		channelID, err := p.Resolver.ResolveChannelID(ctx, handle)
		if err != nil {
			summary.RowsSkipped++
			log.Printf("pipeline: skip @%s: channel not found: %v", handle, err)
			continue
		}

		// An empty catalog is not an error; the row simply contributes
		// zero output rows.
		videos := p.Catalog.FetchRecentVideos(ctx, channelID, int64(maxVideos))
		if len(videos) > maxVideos {
			videos = videos[:maxVideos]
		}

		for _, video := range videos {
			row := report.FromSummary(video)

			// A failed detail lookup never drops the video; the row is
			// emitted with its statistics fields left empty.
			detail, err := p.Details.FetchVideoDetail(ctx, video.ID)
			if err != nil {
				log.Printf("pipeline: detail %s: %v", video.ID, err)
			} else if detail != nil {
				row.Enrich(*detail)
				summary.VideosEnriched++
			}

			rows = append(rows, row)
		}
	}

	summary.VideosEmitted = len(rows)

	if err := p.Writer.Write(outputPath, rows); err != nil {
		return summary, fmt.Errorf("write report: %w", err)
	}

	return summary, nil
}
