package service

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"
	"time"

	"ptt_notifier/internal/domain"
)

// Source produces candidate articles from the watched board.
type Source interface {
	FetchCandidates(ctx context.Context) ([]domain.Article, error)
}

// ArticleStore is the durable record of every observed article.
type ArticleStore interface {
	GetByBoardID(ctx context.Context, boardID string) (*domain.Article, error)
	Insert(ctx context.Context, article *domain.Article) (int64, error)
	PurgeOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
}

type SubscriberStore interface {
	ListActive(ctx context.Context) ([]domain.Subscriber, error)
	ListActiveByTier(ctx context.Context, tier domain.Tier) ([]domain.Subscriber, error)
}

// NotificationStore is the tiered-fanout delivery ledger.
type NotificationStore interface {
	CreatePending(ctx context.Context, subscriberID, articleID int64) (*domain.Notification, error)
	MarkSent(ctx context.Context, id int64, success bool, at time.Time) error
	MarkSentBatch(ctx context.Context, ids []int64, at time.Time) error
	ListPendingForSubscriber(ctx context.Context, subscriberID int64) ([]domain.PendingNotification, error)
}

// Notifier delivers notifications to a subscriber.
type Notifier interface {
	SendArticle(ctx context.Context, lineUserID string, article domain.Article) error
	SendDigest(ctx context.Context, lineUserID string, items []domain.PendingNotification) error
}

// Publisher emits an event for every newly stored article.
type Publisher interface {
	Publish(ctx context.Context, article *domain.Article) error
	Close() error
}

// FanoutDispatcher is the per-article fanout consumed by intake.
type FanoutDispatcher interface {
	QueueBatched(ctx context.Context, article domain.Article) (int, error)
	SendImmediate(ctx context.Context, article domain.Article) (sent, failed int)
}

// Outreach offers a new article to the personalized-mail dispatcher.
type Outreach interface {
	Process(ctx context.Context, article domain.Article, immediate bool) (bool, error)
}

// DispatchLedger is the outreach path's independent delivery ledger.
type DispatchLedger interface {
	HasSentTo(ctx context.Context, pttID string) (bool, error)
	HasProcessedArticle(ctx context.Context, boardID string) (bool, error)
	CreatePending(ctx context.Context, pttID, boardID, articleTitle, mailTitle string) (int64, error)
	MarkSent(ctx context.Context, id int64, success bool, at time.Time) error
}

// Quota gates outreach sends against the daily cap.
type Quota interface {
	CanSend(ctx context.Context) (bool, error)
}

// ContentGenerator produces a personalized mail subject and body.
type ContentGenerator interface {
	Generate(ctx context.Context, title, content, author string) (subject, body string, err error)
}

// MailTransport is the board's direct-mail channel. Sessions must not be
// shared: every send runs its own Login/Logout pair.
type MailTransport interface {
	Login(ctx context.Context) error
	SendMail(ctx context.Context, pttID, subject, body string) error
	Logout(ctx context.Context) error
}

// TransactionManager scopes store writes to one transaction.
type TransactionManager interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}
