package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"ptt_notifier/internal/domain"
)

type SubscriberStore struct {
	db *sqlx.DB
}

func NewSubscriberStore(db *sqlx.DB) *SubscriberStore {
	return &SubscriberStore{db: db}
}

// GetOrCreate registers a subscriber on first sight. An existing subscriber
// is returned as-is; the requested tier does not overwrite a stored one.
func (s *SubscriberStore) GetOrCreate(ctx context.Context, lineUserID string, tier domain.Tier) (*domain.Subscriber, error) {
	query := `
		INSERT INTO subscribers (line_user_id, tier)
		VALUES ($1, $2)
		ON CONFLICT (line_user_id) DO UPDATE SET line_user_id = EXCLUDED.line_user_id
		RETURNING id, line_user_id, tier, active, created_at`

	var row subscriberRow
	if err := s.db.GetContext(ctx, &row, query, lineUserID, tier); err != nil {
		return nil, fmt.Errorf("get or create subscriber: %w", err)
	}
	return row.toDomain(), nil
}

// UpdateTier changes the delivery tier; returns nil when no such subscriber.
func (s *SubscriberStore) UpdateTier(ctx context.Context, lineUserID string, tier domain.Tier) (*domain.Subscriber, error) {
	query := `
		UPDATE subscribers SET tier = $2
		WHERE line_user_id = $1
		RETURNING id, line_user_id, tier, active, created_at`

	var row subscriberRow
	err := s.db.GetContext(ctx, &row, query, lineUserID, tier)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("update tier: %w", err)
	}
	return row.toDomain(), nil
}

// SetActive soft-deletes (or reactivates) a subscriber. Delivery history is
// kept; only future fanout is affected.
func (s *SubscriberStore) SetActive(ctx context.Context, lineUserID string, active bool) error {
	res, err := s.db.ExecContext(ctx,
		`UPDATE subscribers SET active = $2 WHERE line_user_id = $1`,
		lineUserID, active,
	)
	if err != nil {
		return fmt.Errorf("set active: %w", err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func (s *SubscriberStore) ListActive(ctx context.Context) ([]domain.Subscriber, error) {
	return s.list(ctx, `
		SELECT id, line_user_id, tier, active, created_at
		FROM subscribers
		WHERE active ORDER BY id`)
}

func (s *SubscriberStore) ListActiveByTier(ctx context.Context, tier domain.Tier) ([]domain.Subscriber, error) {
	return s.list(ctx, `
		SELECT id, line_user_id, tier, active, created_at
		FROM subscribers
		WHERE active AND tier = $1 ORDER BY id`, tier)
}

func (s *SubscriberStore) CountActive(ctx context.Context) (int, error) {
	var count int
	err := s.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM subscribers WHERE active`)
	return count, err
}

func (s *SubscriberStore) list(ctx context.Context, query string, args ...any) ([]domain.Subscriber, error) {
	var rows []subscriberRow
	if err := s.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list subscribers: %w", err)
	}

	subs := make([]domain.Subscriber, 0, len(rows))
	for _, r := range rows {
		subs = append(subs, *r.toDomain())
	}
	return subs, nil
}

type subscriberRow struct {
	ID         int64     `db:"id"`
	LineUserID string    `db:"line_user_id"`
	Tier       string    `db:"tier"`
	Active     bool      `db:"active"`
	CreatedAt  time.Time `db:"created_at"`
}

func (r subscriberRow) toDomain() *domain.Subscriber {
	return &domain.Subscriber{
		ID:         r.ID,
		LineUserID: r.LineUserID,
		Tier:       domain.ParseTier(r.Tier),
		Active:     r.Active,
		CreatedAt:  r.CreatedAt,
	}
}
