// Package report writes the collected video rows to a tabular file.
package report

import (
	"ytreport/youtube"
)

// Row is one output record: a catalog entry merged with its optional
// statistics. Enrichment fields stay empty when the per-video detail
// lookup failed; an empty field never drops the row. Column names
// follow the upstream API's field names.
type Row struct {
	Title            string `csv:"title"`
	URL              string `csv:"url"`
	ChannelID        string `csv:"channelId"`
	Description      string `csv:"description"`
	ChannelTitle     string `csv:"channelTitle"`
	PublishedAt      string `csv:"publishedAt"`
	PublishTime      string `csv:"publishTime"`
	ViewCount        string `csv:"viewCount"`
	LikeCount        string `csv:"likeCount"`
	CommentCount     string `csv:"commentCount"`
	Duration         string `csv:"duration"`
	ReadableDuration string `csv:"readableDuration"`
}

// Header returns the output column names in column order.
func Header() []string {
	return []string{
		"title", "url", "channelId", "description", "channelTitle",
		"publishedAt", "publishTime", "viewCount", "likeCount",
		"commentCount", "duration", "readableDuration",
	}
}

// values returns the row's cells in column order.
func (r Row) values() []interface{} {
	return []interface{}{
		r.Title, r.URL, r.ChannelID, r.Description, r.ChannelTitle,
		r.PublishedAt, r.PublishTime, r.ViewCount, r.LikeCount,
		r.CommentCount, r.Duration, r.ReadableDuration,
	}
}

// FromSummary builds a row from a catalog entry. The URL is always
// derived from the video ID, never taken from upstream.
func FromSummary(v youtube.VideoSummary) Row {
	return Row{
		Title:        v.Title,
		URL:          v.WatchURL(),
		ChannelID:    v.ChannelID,
		Description:  v.Description,
		ChannelTitle: v.ChannelTitle,
		PublishedAt:  v.PublishedAt,
		PublishTime:  v.PublishTime,
	}
}

// Enrich fills the statistics fields from a detail record. Duration is
// sourced directly from the detail lookup's content metadata.
func (r *Row) Enrich(d youtube.VideoDetail) {
	r.ViewCount = d.ViewCount
	r.LikeCount = d.LikeCount
	r.CommentCount = d.CommentCount
	r.Duration = d.Duration
	r.ReadableDuration = youtube.ParseDuration(d.Duration)
}
