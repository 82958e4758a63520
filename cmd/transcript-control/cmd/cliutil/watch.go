package cliutil

import (
	"context"
	"fmt"
	"io"
	"time"

	"transcript-control/internal/client/cache"
)

// Watch subscribes to key and calls render with every fresh value until ctx
// is done. Failed refreshes are reported to errOut and watching continues.
func Watch(ctx context.Context, c *cache.Cache, key cache.Key, fetch cache.Fetcher, interval time.Duration,
	errOut io.Writer, render func(value interface{})) {
	sub := c.Subscribe(key, fetch, cache.SubscribeOptions{PollInterval: interval})
	defer sub.Unsubscribe()

	for {
		select {
		case <-ctx.Done():
			return
		case u, ok := <-sub.Updates():
			if !ok {
				return
			}
			if u.Err != nil {
				fmt.Fprintf(errOut, "refresh failed: %v\n", u.Err)
				continue
			}
			render(u.Value)
		}
	}
}
