package ytreport

import "ytreport/youtube"

// Error types exported for library users.
//
// All error types support the standard error handling patterns using
// errors.Is() for sentinels and errors.As() for wrapped errors.

// LookupError wraps errors from YouTube API lookups.
type LookupError = youtube.LookupError

// Sentinel errors exported from sub-packages.
var (
	// ErrChannelNotFound indicates the channel lookup returned no matches.
	ErrChannelNotFound = youtube.ErrChannelNotFound
	// ErrVideoNotFound indicates the video detail lookup returned no matches.
	ErrVideoNotFound = youtube.ErrVideoNotFound
	// ErrNetworkTimeout indicates a network timeout occurred.
	ErrNetworkTimeout = youtube.ErrNetworkTimeout
)
