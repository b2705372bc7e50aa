package youtube

import (
	"context"
	"log"

	"ytreport/internal/retry"
)

// FetchRecentVideos fetches up to max recent videos for a channel using
// a video-scoped search. Results keep the upstream order; they are not
// re-sorted here.
//
// This call is fail-soft: on any failure it logs a diagnostic and
// returns an empty slice so that one channel's failure never aborts the
// run. An empty catalog is not an error.
func (c *Client) FetchRecentVideos(ctx context.Context, channelID string, max int64) []VideoSummary {
	var videos []VideoSummary

	err := retry.Do(ctx, c.RetryConfig, lookupErrorClassifier, func(ctx context.Context) error {
		call := c.service.Search.List([]string{"snippet"}).
			ChannelId(channelID).
			Type("video").
			MaxResults(max).
			Context(ctx)

		resp, err := call.Do()
		if err != nil {
			if ctx.Err() != nil {
				return ErrNetworkTimeout
			}
			return err
		}
		c.trackQuotaUsage(100) // search.list uses 100 units

		videos = videos[:0]
		for _, item := range resp.Items {
			if item.Id == nil || item.Id.VideoId == "" {
				continue
			}
			v := VideoSummary{
				ID:        item.Id.VideoId,
				ChannelID: channelID,
			}
			if item.Snippet != nil {
				v.Title = item.Snippet.Title
				v.Description = item.Snippet.Description
				v.ChannelTitle = item.Snippet.ChannelTitle
				v.PublishedAt = item.Snippet.PublishedAt
				v.PublishTime = item.Snippet.PublishTime
				if item.Snippet.ChannelId != "" {
					v.ChannelID = item.Snippet.ChannelId
				}
			}
			videos = append(videos, v)
		}
		return nil
	})

	if err != nil {
		log.Printf("%v", &LookupError{Op: "catalog", Key: channelID, Err: err})
		return nil
	}

	return videos
}
