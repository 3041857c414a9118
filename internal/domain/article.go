package domain

import "time"

// Article is a single board post observed from PTT.
type Article struct {
	ID       int64
	BoardID  string // PTT article id, e.g. "M.1701234567.A.123"
	Title    string
	Author   string
	Content  string
	URL      string
	PostedAt *time.Time // board-reported post time, nil when unparsable
	SeenAt   time.Time  // when this system first stored the article
}

type Tier string

const (
	TierImmediate Tier = "immediate"
	TierBatched   Tier = "batched"
)

// ParseTier maps free-form admin input onto a tier, defaulting to batched.
func ParseTier(s string) Tier {
	if s == string(TierImmediate) {
		return TierImmediate
	}
	return TierBatched
}

// Subscriber is an addressable notification target.
type Subscriber struct {
	ID         int64
	LineUserID string
	Tier       Tier
	Active     bool
	CreatedAt  time.Time
}

// Notification is the durable record of one (subscriber, article) delivery.
// SentAt is nil while the delivery is still pending.
type Notification struct {
	ID           int64
	SubscriberID int64
	ArticleID    int64
	SentAt       *time.Time
	Success      *bool
	CreatedAt    time.Time
}

// PendingNotification is a pending ledger row joined with its article,
// as consumed by the digest fanout.
type PendingNotification struct {
	NotificationID int64
	ArticleID      int64
	Title          string
	Author         string
	URL            string
	PostedAt       *time.Time
	CreatedAt      time.Time
}

// DispatchRecord is one personalized-mail attempt in the outreach ledger.
type DispatchRecord struct {
	ID           int64
	PTTID        string
	BoardID      string
	ArticleTitle string
	MailTitle    string
	SentAt       *time.Time
	Success      *bool
	CreatedAt    time.Time
}
