package pipeline

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"ytreport/report"
	"ytreport/youtube"
)

// fakeResolver resolves handles from a fixed map.
type fakeResolver struct {
	channels map[string]string
	calls    []string
}

func (f *fakeResolver) ResolveChannelID(ctx context.Context, handle string) (string, error) {
	f.calls = append(f.calls, handle)
	id, ok := f.channels[handle]
	if !ok {
		return "", youtube.ErrChannelNotFound
	}
	return id, nil
}

// fakeCatalog returns a fixed list per channel, honoring max.
type fakeCatalog struct {
	videos map[string][]youtube.VideoSummary
}

func (f *fakeCatalog) FetchRecentVideos(ctx context.Context, channelID string, max int64) []youtube.VideoSummary {
	videos := f.videos[channelID]
	if int64(len(videos)) > max {
		videos = videos[:max]
	}
	return videos
}

// fakeDetails fails for IDs in failing, otherwise returns canned stats.
type fakeDetails struct {
	failing map[string]bool
}

func (f *fakeDetails) FetchVideoDetail(ctx context.Context, videoID string) (*youtube.VideoDetail, error) {
	if f.failing[videoID] {
		return nil, youtube.ErrVideoNotFound
	}
	return &youtube.VideoDetail{
		ViewCount:    "100",
		LikeCount:    "10",
		CommentCount: "1",
		Duration:     "PT5M",
	}, nil
}

// captureWriter records what was written.
type captureWriter struct {
	path string
	rows []report.Row
	err  error
}

func (c *captureWriter) Write(path string, rows []report.Row) error {
	c.path = path
	c.rows = rows
	return c.err
}

func summaries(channelID string, n int) []youtube.VideoSummary {
	out := make([]youtube.VideoSummary, n)
	for i := range out {
		out[i] = youtube.VideoSummary{
			ID:        fmt.Sprintf("%s-video-%02d", channelID, i),
			Title:     fmt.Sprintf("Video %02d", i),
			ChannelID: channelID,
		}
	}
	return out
}

func newPipeline(r HandleResolver, c CatalogFetcher, d DetailFetcher, w Writer) *Pipeline {
	return &Pipeline{Resolver: r, Catalog: c, Details: d, Writer: w}
}

func TestRunRowCapEnforced(t *testing.T) {
	urls := make([]string, 7)
	for i := range urls {
		urls[i] = fmt.Sprintf("https://www.youtube.com/@ch%d", i)
	}

	resolver := &fakeResolver{channels: map[string]string{}}
	writer := &captureWriter{}
	p := newPipeline(resolver, &fakeCatalog{}, &fakeDetails{}, writer)

	summary, err := p.Run(context.Background(), urls, "out.xlsx")
	if err != nil {
		t.Fatalf("Run() failed: %v", err)
	}

	if summary.RowsSeen != 7 {
		t.Errorf("RowsSeen = %d, want 7", summary.RowsSeen)
	}
	if summary.RowsProcessed != 5 {
		t.Errorf("RowsProcessed = %d, want 5 (cap)", summary.RowsProcessed)
	}
	if len(resolver.calls) != 5 {
		t.Errorf("resolver calls = %d, want 5", len(resolver.calls))
	}
}

func TestRunVideoCapEnforced(t *testing.T) {
	resolver := &fakeResolver{channels: map[string]string{"big": "UCbig"}}
	catalog := &fakeCatalog{videos: map[string][]youtube.VideoSummary{
		"UCbig": summaries("UCbig", 12),
	}}
	writer := &captureWriter{}
	p := newPipeline(resolver, catalog, &fakeDetails{}, writer)

	summary, err := p.Run(context.Background(), []string{"https://www.youtube.com/@big"}, "out.xlsx")
	if err != nil {
		t.Fatalf("Run() failed: %v", err)
	}

	if summary.VideosEmitted != 10 {
		t.Errorf("VideosEmitted = %d, want 10 (cap)", summary.VideosEmitted)
	}
	if len(writer.rows) != 10 {
		t.Errorf("written rows = %d, want 10", len(writer.rows))
	}
}

func TestRunSkipsInvalidURL(t *testing.T) {
	resolver := &fakeResolver{channels: map[string]string{"good": "UCgood"}}
	catalog := &fakeCatalog{videos: map[string][]youtube.VideoSummary{
		"UCgood": summaries("UCgood", 2),
	}}
	writer := &captureWriter{}
	p := newPipeline(resolver, catalog, &fakeDetails{}, writer)

	urls := []string{
		"https://www.youtube.com/watch?v=dQw4w9WgXcQ", // no handle
		"https://www.youtube.com/@good",
	}
	summary, err := p.Run(context.Background(), urls, "out.xlsx")
	if err != nil {
		t.Fatalf("Run() failed: %v", err)
	}

	if summary.RowsSkipped != 1 {
		t.Errorf("RowsSkipped = %d, want 1", summary.RowsSkipped)
	}
	if summary.VideosEmitted != 2 {
		t.Errorf("VideosEmitted = %d, want 2", summary.VideosEmitted)
	}
	if got := resolver.calls; len(got) != 1 || got[0] != "good" {
		t.Errorf("resolver calls = %v, want [good]", got)
	}
}

func TestRunSkipsUnresolvedChannel(t *testing.T) {
	resolver := &fakeResolver{channels: map[string]string{"known": "UCknown"}}
	catalog := &fakeCatalog{videos: map[string][]youtube.VideoSummary{
		"UCknown": summaries("UCknown", 1),
	}}
	writer := &captureWriter{}
	p := newPipeline(resolver, catalog, &fakeDetails{}, writer)

	urls := []string{
		"https://www.youtube.com/@missing",
		"https://www.youtube.com/@known",
	}
	summary, err := p.Run(context.Background(), urls, "out.xlsx")
	if err != nil {
		t.Fatalf("Run() failed: %v", err)
	}

	if summary.RowsSkipped != 1 {
		t.Errorf("RowsSkipped = %d, want 1", summary.RowsSkipped)
	}
	if summary.VideosEmitted != 1 {
		t.Errorf("VideosEmitted = %d, want 1", summary.VideosEmitted)
	}
}

func TestRunEmptyCatalogContributesNothing(t *testing.T) {
	resolver := &fakeResolver{channels: map[string]string{"quiet": "UCquiet"}}
	writer := &captureWriter{}
	p := newPipeline(resolver, &fakeCatalog{}, &fakeDetails{}, writer)

	summary, err := p.Run(context.Background(), []string{"https://www.youtube.com/@quiet"}, "out.xlsx")
	if err != nil {
		t.Fatalf("Run() failed: %v", err)
	}

	if summary.RowsSkipped != 0 {
		t.Errorf("RowsSkipped = %d, want 0 (empty catalog is not a skip)", summary.RowsSkipped)
	}
	if summary.VideosEmitted != 0 {
		t.Errorf("VideosEmitted = %d, want 0", summary.VideosEmitted)
	}
	if writer.rows != nil && len(writer.rows) != 0 {
		t.Errorf("written rows = %v, want none", writer.rows)
	}
}

func TestRunDetailFailureKeepsVideo(t *testing.T) {
	resolver := &fakeResolver{channels: map[string]string{"ch": "UCch"}}
	catalog := &fakeCatalog{videos: map[string][]youtube.VideoSummary{
		"UCch": summaries("UCch", 3),
	}}
	details := &fakeDetails{failing: map[string]bool{"UCch-video-01": true}}
	writer := &captureWriter{}
	p := newPipeline(resolver, catalog, details, writer)

	summary, err := p.Run(context.Background(), []string{"https://www.youtube.com/@ch"}, "out.xlsx")
	if err != nil {
		t.Fatalf("Run() failed: %v", err)
	}

	if summary.VideosEmitted != 3 {
		t.Fatalf("VideosEmitted = %d, want 3 (failed detail must not drop the video)", summary.VideosEmitted)
	}
	if summary.VideosEnriched != 2 {
		t.Errorf("VideosEnriched = %d, want 2", summary.VideosEnriched)
	}

	// Catalog order is preserved and the unenriched row sits in place.
	for i, row := range writer.rows {
		wantURL := fmt.Sprintf("https://www.youtube.com/watch?v=UCch-video-%02d", i)
		if row.URL != wantURL {
			t.Errorf("row %d url = %q, want %q", i, row.URL, wantURL)
		}
	}
	if writer.rows[1].ViewCount != "" || writer.rows[1].ReadableDuration != "" {
		t.Errorf("failed-detail row carries statistics: %+v", writer.rows[1])
	}
	if writer.rows[0].ViewCount != "100" || writer.rows[2].ViewCount != "100" {
		t.Errorf("sibling rows lost their statistics: %+v, %+v", writer.rows[0], writer.rows[2])
	}
}

func TestRunOutputOrderIsRowMajor(t *testing.T) {
	resolver := &fakeResolver{channels: map[string]string{
		"a": "UCa",
		"b": "UCb",
	}}
	catalog := &fakeCatalog{videos: map[string][]youtube.VideoSummary{
		"UCa": summaries("UCa", 2),
		"UCb": summaries("UCb", 2),
	}}
	writer := &captureWriter{}
	p := newPipeline(resolver, catalog, &fakeDetails{}, writer)

	urls := []string{
		"https://www.youtube.com/@b",
		"https://www.youtube.com/@a",
	}
	if _, err := p.Run(context.Background(), urls, "out.xlsx"); err != nil {
		t.Fatalf("Run() failed: %v", err)
	}

	want := []string{"UCb-video-00", "UCb-video-01", "UCa-video-00", "UCa-video-01"}
	if len(writer.rows) != len(want) {
		t.Fatalf("written rows = %d, want %d", len(writer.rows), len(want))
	}
	for i, id := range want {
		wantURL := "https://www.youtube.com/watch?v=" + id
		if writer.rows[i].URL != wantURL {
			t.Errorf("row %d url = %q, want %q", i, writer.rows[i].URL, wantURL)
		}
	}
}

func TestRunWriteFailurePropagates(t *testing.T) {
	writer := &captureWriter{err: errors.New("disk full")}
	p := newPipeline(&fakeResolver{}, &fakeCatalog{}, &fakeDetails{}, writer)

	_, err := p.Run(context.Background(), nil, "out.xlsx")
	if err == nil {
		t.Fatal("Run() error = nil, want write failure")
	}
	if !errors.Is(err, writer.err) {
		t.Errorf("Run() error = %v, want wrapped %v", err, writer.err)
	}
}

func TestRunPassesOutputPath(t *testing.T) {
	writer := &captureWriter{}
	p := newPipeline(&fakeResolver{}, &fakeCatalog{}, &fakeDetails{}, writer)

	if _, err := p.Run(context.Background(), nil, "report.csv"); err != nil {
		t.Fatalf("Run() failed: %v", err)
	}
	if writer.path != "report.csv" {
		t.Errorf("writer path = %q, want %q", writer.path, "report.csv")
	}
}
