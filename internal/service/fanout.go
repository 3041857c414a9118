package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"ptt_notifier/internal/domain"
)

// LINE flex carousels hold at most ten bubbles; a digest bundle above that
// would be rejected by the push API and stay pending forever.
const maxDigestItems = 10

// Fanout delivers one article to the two subscriber tiers: immediate-tier
// subscribers get a push right away, batched-tier subscribers get a pending
// ledger record that the hourly digest bundles up.
type Fanout struct {
	subscribers    SubscriberStore
	ledger         NotificationStore
	notifier       Notifier
	digestMaxItems int
	logger         *slog.Logger
	now            func() time.Time
}

func NewFanout(
	subscribers SubscriberStore,
	ledger NotificationStore,
	notifier Notifier,
	digestMaxItems int,
	logger *slog.Logger,
) *Fanout {
	if digestMaxItems <= 0 || digestMaxItems > maxDigestItems {
		digestMaxItems = maxDigestItems
	}
	return &Fanout{
		subscribers:    subscribers,
		ledger:         ledger,
		notifier:       notifier,
		digestMaxItems: digestMaxItems,
		logger:         logger.With("service", "fanout"),
		now:            time.Now,
	}
}

// QueueBatched creates pending records for every active batched-tier
// subscriber. Runs inside the intake transaction.
func (f *Fanout) QueueBatched(ctx context.Context, article domain.Article) (int, error) {
	subs, err := f.subscribers.ListActiveByTier(ctx, domain.TierBatched)
	if err != nil {
		return 0, fmt.Errorf("list batched subscribers: %w", err)
	}

	queued := 0
	for _, sub := range subs {
		_, err := f.ledger.CreatePending(ctx, sub.ID, article.ID)
		if errors.Is(err, domain.ErrNotificationExists) {
			continue
		}
		if err != nil {
			return queued, fmt.Errorf("queue subscriber %d: %w", sub.ID, err)
		}
		queued++
	}
	return queued, nil
}

// SendImmediate pushes the article to every active immediate-tier subscriber
// and records each outcome. A transport failure is recorded as a failed
// delivery and not retried.
func (f *Fanout) SendImmediate(ctx context.Context, article domain.Article) (sent, failed int) {
	subs, err := f.subscribers.ListActiveByTier(ctx, domain.TierImmediate)
	if err != nil {
		f.logger.Error("list immediate subscribers failed", "error", err)
		return 0, 0
	}

	for _, sub := range subs {
		rec, err := f.ledger.CreatePending(ctx, sub.ID, article.ID)
		if errors.Is(err, domain.ErrNotificationExists) {
			continue
		}
		if err != nil {
			f.logger.Error("create pending failed",
				"subscriber_id", sub.ID,
				"article_id", article.ID,
				"error", err,
			)
			continue
		}

		sendErr := f.notifier.SendArticle(ctx, sub.LineUserID, article)
		success := sendErr == nil
		if sendErr != nil {
			f.logger.Warn("immediate send failed",
				"subscriber_id", sub.ID,
				"article_id", article.ID,
				"error", sendErr,
			)
		}

		if err := f.ledger.MarkSent(ctx, rec.ID, success, f.now()); err != nil {
			f.logger.Error("mark sent failed", "notification_id", rec.ID, "error", err)
		}

		if success {
			sent++
		} else {
			failed++
		}
	}
	return sent, failed
}

// RunDigest bundles each subscriber's pending notifications into one push.
// It sweeps every active subscriber, not only those currently on the batched
// tier, so records queued before a tier change still get delivered. On a
// transport failure the whole bundle stays pending for the next tick.
func (f *Fanout) RunDigest(ctx context.Context) (*domain.DigestStats, error) {
	start := time.Now()

	subs, err := f.subscribers.ListActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("list active subscribers: %w", err)
	}

	stats := &domain.DigestStats{}
	for _, sub := range subs {
		pending, err := f.ledger.ListPendingForSubscriber(ctx, sub.ID)
		if err != nil {
			f.logger.Error("list pending failed", "subscriber_id", sub.ID, "error", err)
			continue
		}
		if len(pending) == 0 {
			continue
		}
		stats.Subscribers++

		bundle := pending
		if len(bundle) > f.digestMaxItems {
			bundle = bundle[:f.digestMaxItems]
		}

		if err := f.notifier.SendDigest(ctx, sub.LineUserID, bundle); err != nil {
			stats.Failures++
			f.logger.Warn("digest send failed, leaving bundle pending",
				"subscriber_id", sub.ID,
				"articles", len(bundle),
				"error", err,
			)
			continue
		}

		ids := make([]int64, len(bundle))
		for i, p := range bundle {
			ids[i] = p.NotificationID
		}
		if err := f.ledger.MarkSentBatch(ctx, ids, f.now()); err != nil {
			f.logger.Error("mark sent batch failed", "subscriber_id", sub.ID, "error", err)
			continue
		}

		stats.Delivered++
		stats.Articles += len(bundle)
	}

	stats.Duration = time.Since(start)

	s := f.logger.With(
		"subscribers", stats.Subscribers,
		"delivered", stats.Delivered,
		"articles", stats.Articles,
		"failures", stats.Failures,
		"duration", stats.Duration,
	)
	if stats.Subscribers > 0 {
		s.Info("digest completed")
	} else {
		s.Debug("digest completed")
	}

	return stats, nil
}
