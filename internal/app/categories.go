package app

import (
	"context"
	"fmt"
	"io"
	"os"

	"ambient-weather/internal/feed"

	"go.uber.org/zap"
)

// Categories opens the configured category sources and merges them. It
// returns nil when neither -feed nor -cycle is set.
func (c *Config) Categories(ctx context.Context, logger *zap.Logger) (<-chan string, error) {
	var sources []<-chan string

	if c.Feed != "" {
		var r io.Reader = os.Stdin
		if c.Feed != "-" {
			f, err := os.Open(c.Feed)
			if err != nil {
				return nil, fmt.Errorf("open feed: %w", err)
			}
			go func() {
				<-ctx.Done()
				f.Close()
			}()
			r = f
		}
		sources = append(sources, feed.Lines(ctx, r, logger))
	}
	if list := c.CycleList(); len(list) > 0 {
		sources = append(sources, feed.Cycle(ctx, list, c.CycleEvery))
	}

	if len(sources) == 0 {
		return nil, nil
	}
	return feed.Merge(ctx, sources...), nil
}
