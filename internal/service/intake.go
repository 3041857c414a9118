package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"ptt_notifier/internal/domain"
)

// Intake runs one tick of the ingestion pipeline: fetch candidates, keep
// keyword matches, store the genuinely new ones and hand them to fanout and
// outreach. Per-article failures never abort the rest of the batch.
type Intake struct {
	source    Source
	articles  ArticleStore
	tx        TransactionManager
	publisher Publisher // nil disables event publishing
	fanout    FanoutDispatcher
	outreach  Outreach // nil disables the personalized path
	keywords  []string
	logger    *slog.Logger
}

func NewIntake(
	source Source,
	articles ArticleStore,
	tx TransactionManager,
	publisher Publisher,
	fanout FanoutDispatcher,
	outreach Outreach,
	keywords []string,
	logger *slog.Logger,
) *Intake {
	return &Intake{
		source:    source,
		articles:  articles,
		tx:        tx,
		publisher: publisher,
		fanout:    fanout,
		outreach:  outreach,
		keywords:  keywords,
		logger:    logger.With("service", "intake"),
	}
}

func (s *Intake) Run(ctx context.Context) (*domain.IntakeStats, error) {
	start := time.Now()

	candidates, err := s.source.FetchCandidates(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch candidates: %w", err)
	}

	stats := &domain.IntakeStats{Fetched: len(candidates)}

	for i := range candidates {
		article := &candidates[i]
		if article.BoardID == "" {
			continue
		}
		if !MatchesKeywords(s.keywords, article.Title, article.Content) {
			continue
		}
		stats.Matched++

		existing, err := s.articles.GetByBoardID(ctx, article.BoardID)
		if err != nil {
			stats.Errors++
			s.logger.Error("lookup failed", "board_id", article.BoardID, "error", err)
			continue
		}
		if existing != nil {
			stats.Duplicates++
			continue
		}

		// The insert and the batched-tier queuing commit together so a
		// stored article is never left without its intended pending
		// records.
		var queued int
		err = s.tx.WithTransaction(ctx, func(txCtx context.Context) error {
			if _, err := s.articles.Insert(txCtx, article); err != nil {
				return err
			}
			queued, err = s.fanout.QueueBatched(txCtx, *article)
			return err
		})
		if errors.Is(err, domain.ErrDuplicateArticle) {
			// Another intake tick stored it first.
			stats.Duplicates++
			continue
		}
		if err != nil {
			stats.Errors++
			s.logger.Error("store article failed", "board_id", article.BoardID, "error", err)
			continue
		}

		stats.New++
		stats.QueuedBatched += queued
		s.logger.Info("stored new article",
			"board_id", article.BoardID,
			"title", article.Title,
			"author", article.Author,
		)

		if s.publisher != nil {
			if err := s.publisher.Publish(ctx, article); err != nil {
				s.logger.Warn("publish article event failed", "board_id", article.BoardID, "error", err)
			}
		}

		sent, failed := s.fanout.SendImmediate(ctx, *article)
		stats.Notified += sent
		stats.NotifyFailures += failed

		if s.outreach != nil {
			ok, err := s.outreach.Process(ctx, *article, false)
			if err != nil {
				s.logger.Warn("outreach processing failed", "board_id", article.BoardID, "error", err)
			} else if ok {
				stats.QueuedOutreach++
			}
		}
	}

	stats.Duration = time.Since(start)

	s.logger.Info("intake completed",
		"fetched", stats.Fetched,
		"matched", stats.Matched,
		"new", stats.New,
		"duplicates", stats.Duplicates,
		"notified", stats.Notified,
		"notify_failures", stats.NotifyFailures,
		"queued_batched", stats.QueuedBatched,
		"queued_outreach", stats.QueuedOutreach,
		"errors", stats.Errors,
		"duration", stats.Duration,
	)

	return stats, nil
}
