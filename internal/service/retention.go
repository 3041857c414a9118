package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"
)

// Retention purges articles older than the configured retention window
// together with their notifications.
type Retention struct {
	articles ArticleStore
	days     int
	loc      *time.Location
	logger   *slog.Logger
	now      func() time.Time
}

func NewRetention(articles ArticleStore, days int, loc *time.Location, logger *slog.Logger) *Retention {
	return &Retention{
		articles: articles,
		days:     days,
		loc:      loc,
		logger:   logger.With("service", "retention"),
		now:      time.Now,
	}
}

func (r *Retention) Run(ctx context.Context) error {
	cutoff := r.now().In(r.loc).AddDate(0, 0, -r.days)

	purged, err := r.articles.PurgeOlderThan(ctx, cutoff)
	if err != nil {
		return fmt.Errorf("purge articles: %w", err)
	}

	r.logger.Info("retention purge complete", "cutoff", cutoff, "purged", purged)
	return nil
}
