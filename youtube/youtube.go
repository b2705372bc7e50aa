// Package youtube resolves channel handles and fetches video metadata
// using the YouTube Data API v3.
package youtube

import "errors"

// Sentinel errors for lookup operations.
var (
	ErrChannelNotFound = errors.New("youtube: channel not found")
	ErrVideoNotFound   = errors.New("youtube: video not found")
	ErrNetworkTimeout  = errors.New("youtube: network timeout")
)

// VideoSummary is one catalog entry for a channel, as returned by the
// search endpoint. Timestamps are kept as the RFC3339 strings the API
// returns; the report writes them out verbatim.
type VideoSummary struct {
	// ID is the YouTube video ID (e.g., "dQw4w9WgXcQ").
	ID string `json:"id"`
	// Title is the video title.
	Title string `json:"title"`
	// Description is the video description. Search results truncate it.
	Description string `json:"description,omitempty"`
	// ChannelID is the YouTube channel ID (e.g., "UCuAXFkgsw1L7xaCfnd5JJOw").
	ChannelID string `json:"channel_id"`
	// ChannelTitle is the display name of the channel.
	ChannelTitle string `json:"channel_title"`
	// PublishedAt is the publication timestamp (RFC3339).
	PublishedAt string `json:"published_at"`
	// PublishTime is the search-result publish time (RFC3339).
	PublishTime string `json:"publish_time"`
}

// WatchURL returns the full YouTube URL for this video.
func (v VideoSummary) WatchURL() string {
	return "https://www.youtube.com/watch?v=" + v.ID
}

// VideoDetail holds the per-video statistics and content metadata
// fetched separately from the catalog. Counts are decimal strings so
// an absent detail record and a zero count stay distinguishable in
// the output.
type VideoDetail struct {
	// ViewCount is the total number of views.
	ViewCount string `json:"view_count"`
	// LikeCount is the number of likes.
	LikeCount string `json:"like_count"`
	// CommentCount is the number of comments.
	CommentCount string `json:"comment_count"`
	// Duration is the raw ISO-8601 duration token (e.g., "PT4M13S").
	Duration string `json:"duration"`
}

// LookupError wraps API lookup errors with context about what failed.
// Use errors.As() to extract this error type and get operation details:
//
//	var lookupErr *youtube.LookupError
//	if errors.As(err, &lookupErr) {
//		fmt.Printf("Failed to %s %s: %v\n", lookupErr.Op, lookupErr.Key, lookupErr.Err)
//	}
type LookupError struct {
	// Op is the lookup that failed ("resolve", "catalog", "detail").
	Op string
	// Key is the handle, channel ID, or video ID that was being looked up.
	Key string
	// Err is the underlying error that occurred.
	Err error
}

// Error returns a string representation of the lookup error.
func (e *LookupError) Error() string {
	return "youtube: " + e.Op + " " + e.Key + ": " + e.Err.Error()
}

// Unwrap returns the underlying error for use with errors.Is() and errors.As().
func (e *LookupError) Unwrap() error { return e.Err }
