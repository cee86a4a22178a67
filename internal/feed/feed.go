// Package feed produces weather categories for a host to hand to the engine:
// line-oriented readers, WeatherAPI condition codes and timed demo cycles.
package feed

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"
)

// CategoryForCode maps a WeatherAPI condition code to a weather category.
func CategoryForCode(code int) string {
	switch {
	case code == 1000:
		return "Clear"
	case code >= 1003 && code <= 1030:
		return "Clouds"
	case code >= 1063 && code <= 1171:
		return "Rain"
	case code >= 1180 && code <= 1201:
		return "Rain"
	case code >= 1204 && code <= 1237:
		return "Snow"
	case code >= 1273 && code <= 1282:
		return "Thunderstorm"
	default:
		return "Clouds"
	}
}

// Normalize trims a raw feed line and resolves numeric condition codes. It
// reports false for lines that carry no category.
func Normalize(line string) (string, bool) {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return "", false
	}
	if code, err := strconv.Atoi(line); err == nil {
		return CategoryForCode(code), true
	}
	return line, true
}

// Scan reads one category per line from r and sends each to out until r is
// exhausted or ctx is done.
func Scan(ctx context.Context, r io.Reader, out chan<- string) error {
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		category, ok := Normalize(sc.Text())
		if !ok {
			continue
		}
		select {
		case out <- category:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("scan categories: %w", err)
	}
	return nil
}

// Lines runs Scan in a goroutine and returns its output channel, which is
// closed when scanning ends. Scan errors are logged.
func Lines(ctx context.Context, r io.Reader, logger *zap.Logger) <-chan string {
	if logger == nil {
		logger = zap.NewNop()
	}
	out := make(chan string)
	go func() {
		defer close(out)
		if err := Scan(ctx, r, out); err != nil && ctx.Err() == nil {
			logger.Warn("category feed stopped", zap.Error(err))
		}
	}()
	return out
}

// Cycle emits categories round-robin, the first immediately and then one per
// interval, until ctx is done.
func Cycle(ctx context.Context, categories []string, every time.Duration) <-chan string {
	out := make(chan string)
	if len(categories) == 0 || every <= 0 {
		close(out)
		return out
	}
	go func() {
		defer close(out)
		ticker := time.NewTicker(every)
		defer ticker.Stop()
		for i := 0; ; i++ {
			select {
			case out <- categories[i%len(categories)]:
			case <-ctx.Done():
				return
			}
			select {
			case <-ticker.C:
			case <-ctx.Done():
				return
			}
		}
	}()
	return out
}

// Merge fans several category channels into one, closed once all inputs are
// closed.
func Merge(ctx context.Context, ins ...<-chan string) <-chan string {
	out := make(chan string)
	var wg sync.WaitGroup
	for _, in := range ins {
		if in == nil {
			continue
		}
		wg.Add(1)
		go func(in <-chan string) {
			defer wg.Done()
			for c := range in {
				select {
				case out <- c:
				case <-ctx.Done():
					return
				}
			}
		}(in)
	}
	go func() {
		wg.Wait()
		close(out)
	}()
	return out
}
