package service

import (
	"context"
	"time"

	"github.com/dustin/go-humanize"
	"go.uber.org/zap"
)

type Purger interface {
	Purge(ctx context.Context, olderThan time.Duration) (*PurgeResult, error)
}

// RunPurgeLoop purges soft-deleted gallery rows older than after, once at start
// and then every interval, until ctx is done.
func RunPurgeLoop(ctx context.Context, purger Purger, interval, after time.Duration, log *zap.Logger) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		PurgeOnce(ctx, purger, after, log)

		select {
		case <-ticker.C:
		case <-ctx.Done():
			return
		}
	}
}

func PurgeOnce(ctx context.Context, purger Purger, after time.Duration, log *zap.Logger) (*PurgeResult, error) {
	result, err := purger.Purge(ctx, after)
	if err != nil {
		log.Error("gallery purge failed", zap.Error(err))
		return nil, err
	}

	if result.Removed > 0 {
		log.Info("gallery purge finished",
			zap.Int("removed", result.Removed),
			zap.String("reclaimed", humanize.IBytes(uint64(result.Bytes))),
		)
	}

	return result, nil
}
