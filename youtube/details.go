package youtube

import (
	"context"
	"strconv"

	"ytreport/internal/retry"
)

// FetchVideoDetail fetches statistics and content metadata for a single
// video. It returns ErrVideoNotFound on an empty result set. Duration
// is taken directly from the content-details field of the response.
func (c *Client) FetchVideoDetail(ctx context.Context, videoID string) (*VideoDetail, error) {
	var detail *VideoDetail

	err := retry.Do(ctx, c.RetryConfig, lookupErrorClassifier, func(ctx context.Context) error {
		call := c.service.Videos.List([]string{"statistics", "contentDetails"}).
			Id(videoID).
			Context(ctx)

		resp, err := call.Do()
		if err != nil {
			if ctx.Err() != nil {
				return ErrNetworkTimeout
			}
			return err
		}
		c.trackQuotaUsage(1) // videos.list uses 1 unit

		if len(resp.Items) == 0 {
			return ErrVideoNotFound
		}

		item := resp.Items[0]
		detail = &VideoDetail{}
		if item.Statistics != nil {
			detail.ViewCount = strconv.FormatUint(item.Statistics.ViewCount, 10)
			detail.LikeCount = strconv.FormatUint(item.Statistics.LikeCount, 10)
			detail.CommentCount = strconv.FormatUint(item.Statistics.CommentCount, 10)
		}
		if item.ContentDetails != nil {
			detail.Duration = item.ContentDetails.Duration
		}
		return nil
	})

	if err != nil {
		return nil, &LookupError{Op: "detail", Key: videoID, Err: err}
	}

	return detail, nil
}
