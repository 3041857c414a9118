package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"ptt_notifier/internal/domain"
)

// NotificationStore is the delivery ledger for the tiered fanout. The unique
// (subscriber_id, article_id) constraint is the dedup key that prevents a
// subscriber from ever being queued twice for the same article.
type NotificationStore struct {
	db *sqlx.DB
}

func NewNotificationStore(db *sqlx.DB) *NotificationStore {
	return &NotificationStore{db: db}
}

// CreatePending is the single gate deciding whether a subscriber has already
// been queued for an article: a second call for the same pair returns
// domain.ErrNotificationExists.
func (s *NotificationStore) CreatePending(ctx context.Context, subscriberID, articleID int64) (*domain.Notification, error) {
	query := `
		INSERT INTO notifications (subscriber_id, article_id)
		VALUES ($1, $2)
		RETURNING id, created_at`

	n := &domain.Notification{SubscriberID: subscriberID, ArticleID: articleID}
	err := GetExecutor(ctx, s.db).QueryRowxContext(ctx, query, subscriberID, articleID).Scan(&n.ID, &n.CreatedAt)

	var pqErr *pq.Error
	if errors.As(err, &pqErr) && string(pqErr.Code) == uniqueViolation {
		return nil, domain.ErrNotificationExists
	}
	if err != nil {
		return nil, fmt.Errorf("create pending notification: %w", err)
	}
	return n, nil
}

// MarkSent records the delivery outcome. Re-marking with the same outcome is
// a no-op; a different outcome surfaces domain.ErrOutcomeConflict.
func (s *NotificationStore) MarkSent(ctx context.Context, id int64, success bool, at time.Time) error {
	res, err := s.db.ExecContext(ctx, `
		UPDATE notifications SET sent_at = $2, success = $3
		WHERE id = $1 AND sent_at IS NULL`,
		id, at, success,
	)
	if err != nil {
		return fmt.Errorf("mark sent: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rows > 0 {
		return nil
	}

	// Already marked: no-op when the outcome matches, conflict otherwise.
	var recorded sql.NullBool
	err = s.db.GetContext(ctx, &recorded, `SELECT success FROM notifications WHERE id = $1`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("mark sent: notification %d not found", id)
	}
	if err != nil {
		return fmt.Errorf("mark sent: %w", err)
	}
	if recorded.Valid && recorded.Bool == success {
		return nil
	}
	return domain.ErrOutcomeConflict
}

// MarkSentBatch marks every listed record delivered-with-success in one
// statement; used by the digest path after a successful bundle send.
func (s *NotificationStore) MarkSentBatch(ctx context.Context, ids []int64, at time.Time) error {
	if len(ids) == 0 {
		return nil
	}

	_, err := s.db.ExecContext(ctx, `
		UPDATE notifications SET sent_at = $2, success = TRUE
		WHERE id = ANY($1) AND sent_at IS NULL`,
		pq.Array(ids), at,
	)
	if err != nil {
		return fmt.Errorf("mark sent batch: %w", err)
	}
	return nil
}

// ListPendingForSubscriber returns pending records joined with their
// articles, oldest first.
func (s *NotificationStore) ListPendingForSubscriber(ctx context.Context, subscriberID int64) ([]domain.PendingNotification, error) {
	query := `
		SELECT n.id AS notification_id, a.id AS article_id,
		       a.title, a.author, a.url, a.posted_at, n.created_at
		FROM notifications n
		JOIN articles a ON a.id = n.article_id
		WHERE n.subscriber_id = $1 AND n.sent_at IS NULL
		ORDER BY n.created_at ASC, n.id ASC`

	rows, err := s.db.QueryContext(ctx, query, subscriberID)
	if err != nil {
		return nil, fmt.Errorf("list pending: %w", err)
	}
	defer rows.Close()

	var pending []domain.PendingNotification
	for rows.Next() {
		var (
			p        domain.PendingNotification
			postedAt sql.NullTime
		)
		if err := rows.Scan(&p.NotificationID, &p.ArticleID, &p.Title, &p.Author, &p.URL, &postedAt, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan pending: %w", err)
		}
		if postedAt.Valid {
			t := postedAt.Time
			p.PostedAt = &t
		}
		pending = append(pending, p)
	}
	return pending, rows.Err()
}

func (s *NotificationStore) CountPending(ctx context.Context) (int, error) {
	var count int
	err := s.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM notifications WHERE sent_at IS NULL`)
	return count, err
}

// Recent returns the latest delivery records, most recent first.
func (s *NotificationStore) Recent(ctx context.Context, limit int) ([]domain.Notification, error) {
	query := `
		SELECT id, subscriber_id, article_id, sent_at, success, created_at
		FROM notifications
		ORDER BY created_at DESC, id DESC
		LIMIT $1`

	rows, err := s.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("recent notifications: %w", err)
	}
	defer rows.Close()

	var out []domain.Notification
	for rows.Next() {
		var (
			n       domain.Notification
			sentAt  sql.NullTime
			success sql.NullBool
		)
		if err := rows.Scan(&n.ID, &n.SubscriberID, &n.ArticleID, &sentAt, &success, &n.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan notification: %w", err)
		}
		if sentAt.Valid {
			t := sentAt.Time
			n.SentAt = &t
		}
		if success.Valid {
			b := success.Bool
			n.Success = &b
		}
		out = append(out, n)
	}
	return out, rows.Err()
}
