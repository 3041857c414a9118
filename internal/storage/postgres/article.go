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

const uniqueViolation = "23505"

type ArticleStore struct {
	db *sqlx.DB
}

func NewArticleStore(db *sqlx.DB) *ArticleStore {
	return &ArticleStore{db: db}
}

// GetByBoardID returns nil when no article with the given board id exists.
func (s *ArticleStore) GetByBoardID(ctx context.Context, boardID string) (*domain.Article, error) {
	query := `
		SELECT id, board_id, title, author, content, url, posted_at, seen_at
		FROM articles
		WHERE board_id = $1`

	var row articleRow
	err := s.db.GetContext(ctx, &row, query, boardID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get article: %w", err)
	}
	return row.toDomain(), nil
}

// Insert stores a new article and returns its id. A unique violation on the
// board id maps to domain.ErrDuplicateArticle so callers can treat the
// lookup-then-insert race as expected contention.
func (s *ArticleStore) Insert(ctx context.Context, article *domain.Article) (int64, error) {
	query := `
		INSERT INTO articles (board_id, title, author, content, url, posted_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, seen_at`

	var (
		id     int64
		seenAt time.Time
	)
	err := GetExecutor(ctx, s.db).QueryRowxContext(ctx, query,
		article.BoardID,
		article.Title,
		article.Author,
		article.Content,
		article.URL,
		article.PostedAt,
	).Scan(&id, &seenAt)

	var pqErr *pq.Error
	if errors.As(err, &pqErr) && string(pqErr.Code) == uniqueViolation {
		return 0, domain.ErrDuplicateArticle
	}
	if err != nil {
		return 0, fmt.Errorf("insert article: %w", err)
	}

	article.ID = id
	article.SeenAt = seenAt
	return id, nil
}

// PurgeOlderThan deletes every article first seen before the cutoff, removing
// dependent notifications in the same transaction so the ledger never
// references a missing article. Returns the number of articles purged.
func (s *ArticleStore) PurgeOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin purge: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `
		DELETE FROM notifications
		WHERE article_id IN (SELECT id FROM articles WHERE seen_at < $1)`,
		cutoff,
	)
	if err != nil {
		return 0, fmt.Errorf("purge notifications: %w", err)
	}

	res, err := tx.ExecContext(ctx, `DELETE FROM articles WHERE seen_at < $1`, cutoff)
	if err != nil {
		return 0, fmt.Errorf("purge articles: %w", err)
	}

	count, err := res.RowsAffected()
	if err != nil {
		return 0, err
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit purge: %w", err)
	}
	return count, nil
}

func (s *ArticleStore) Count(ctx context.Context) (int, error) {
	var count int
	err := s.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM articles`)
	return count, err
}

type articleRow struct {
	ID       int64        `db:"id"`
	BoardID  string       `db:"board_id"`
	Title    string       `db:"title"`
	Author   string       `db:"author"`
	Content  string       `db:"content"`
	URL      string       `db:"url"`
	PostedAt sql.NullTime `db:"posted_at"`
	SeenAt   time.Time    `db:"seen_at"`
}

func (r articleRow) toDomain() *domain.Article {
	a := &domain.Article{
		ID:      r.ID,
		BoardID: r.BoardID,
		Title:   r.Title,
		Author:  r.Author,
		Content: r.Content,
		URL:     r.URL,
		SeenAt:  r.SeenAt,
	}
	if r.PostedAt.Valid {
		t := r.PostedAt.Time
		a.PostedAt = &t
	}
	return a
}
