package youtube

import (
	"context"
	"regexp"

	"ytreport/internal/retry"
)

// handleRegexp matches a channel handle embedded in a URL: the literal
// "youtube.com/@" followed by a run of handle characters.
var handleRegexp = regexp.MustCompile(`youtube\.com/@([A-Za-z0-9_-]+)`)

// ExtractHandle extracts a channel handle from a URL. It returns the
// first maximal run of handle characters after "youtube.com/@", or
// ok=false if the URL contains no handle.
func ExtractHandle(url string) (handle string, ok bool) {
	m := handleRegexp.FindStringSubmatch(url)
	if m == nil {
		return "", false
	}
	return m[1], true
}

// ResolveChannelID resolves a channel handle to its stable channel ID
// via a channel-scoped search. It returns ErrChannelNotFound when the
// response contains no matches; the caller cannot distinguish that from
// a transient failure and is expected to treat both as "skip and log".
func (c *Client) ResolveChannelID(ctx context.Context, handle string) (string, error) {
	var channelID string

	err := retry.Do(ctx, c.RetryConfig, lookupErrorClassifier, func(ctx context.Context) error {
		call := c.service.Search.List([]string{"id"}).
			Q(handle).
			Type("channel").
			MaxResults(1).
			Context(ctx)

		resp, err := call.Do()
		if err != nil {
			if ctx.Err() != nil {
				return ErrNetworkTimeout
			}
			return err
		}
		c.trackQuotaUsage(100) // search.list uses 100 units

		if len(resp.Items) == 0 {
			return ErrChannelNotFound
		}

		channelID = resp.Items[0].Id.ChannelId
		return nil
	})

	if err != nil {
		return "", &LookupError{Op: "resolve", Key: handle, Err: err}
	}

	return channelID, nil
}
