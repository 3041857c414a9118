// Package sqlite holds the dispatch ledger for the personalized outreach
// path. It lives in its own SQLite database, deliberately separate from the
// postgres notification ledger, so the outreach quota and cooldown rules
// stay isolated from the tiered-fanout dedup rules.
package sqlite

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"ptt_notifier/internal/domain"
)

//go:embed migrations.sql
var migrationsFS embed.FS

type Ledger struct {
	db *sql.DB
}

func Open(path string) (*Ledger, error) {
	if path == "" {
		return nil, errors.New("sqlite ledger path is required")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	// SQLite prefers a small number of concurrent writers.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	_, _ = db.Exec("PRAGMA journal_mode = WAL")
	_, _ = db.Exec("PRAGMA synchronous = NORMAL")
	_, _ = db.Exec("PRAGMA busy_timeout = 5000")

	l := &Ledger{db: db}
	if err := l.migrate(context.Background()); err != nil {
		_ = db.Close()
		return nil, err
	}
	return l, nil
}

func (l *Ledger) migrate(ctx context.Context) error {
	b, err := migrationsFS.ReadFile("migrations.sql")
	if err != nil {
		return err
	}
	_, err = l.db.ExecContext(ctx, string(b))
	return err
}

func (l *Ledger) Close() error {
	if l == nil || l.db == nil {
		return nil
	}
	return l.db.Close()
}

// HasSentTo reports whether any mail to the recipient ever succeeded. This
// backs the "never contact the same recipient twice" rule.
func (l *Ledger) HasSentTo(ctx context.Context, pttID string) (bool, error) {
	var count int
	err := l.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM dispatches WHERE ptt_id = ? AND success = 1`,
		pttID,
	).Scan(&count)
	if err != nil {
		return false, fmt.Errorf("has sent to: %w", err)
	}
	return count > 0, nil
}

// HasProcessedArticle reports whether the article was ever attempted,
// regardless of outcome.
func (l *Ledger) HasProcessedArticle(ctx context.Context, boardID string) (bool, error) {
	var count int
	err := l.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM dispatches WHERE board_id = ?`,
		boardID,
	).Scan(&count)
	if err != nil {
		return false, fmt.Errorf("has processed article: %w", err)
	}
	return count > 0, nil
}

// CreatePending opens a dispatch record before the send is attempted.
func (l *Ledger) CreatePending(ctx context.Context, pttID, boardID, articleTitle, mailTitle string) (int64, error) {
	res, err := l.db.ExecContext(ctx, `
		INSERT INTO dispatches (ptt_id, board_id, article_title, mail_title, created_at)
		VALUES (?, ?, ?, ?, ?)`,
		pttID, boardID, articleTitle, mailTitle, time.Now().Unix(),
	)
	if err != nil {
		return 0, fmt.Errorf("create pending dispatch: %w", err)
	}
	return res.LastInsertId()
}

// MarkSent records the send outcome. Same contract as the notification
// ledger: re-marking with the same outcome is a no-op, a different outcome
// returns domain.ErrOutcomeConflict.
func (l *Ledger) MarkSent(ctx context.Context, id int64, success bool, at time.Time) error {
	res, err := l.db.ExecContext(ctx, `
		UPDATE dispatches SET sent_at = ?, success = ?
		WHERE id = ? AND sent_at IS NULL`,
		at.Unix(), boolToInt(success), id,
	)
	if err != nil {
		return fmt.Errorf("mark dispatch sent: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rows > 0 {
		return nil
	}

	var recorded sql.NullInt64
	err = l.db.QueryRowContext(ctx, `SELECT success FROM dispatches WHERE id = ?`, id).Scan(&recorded)
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("mark dispatch sent: record %d not found", id)
	}
	if err != nil {
		return fmt.Errorf("mark dispatch sent: %w", err)
	}
	if recorded.Valid && recorded.Int64 == int64(boolToInt(success)) {
		return nil
	}
	return domain.ErrOutcomeConflict
}

// CountSentOn counts successful sends whose timestamp falls on the calendar
// day of the given instant, in that instant's location.
func (l *Ledger) CountSentOn(ctx context.Context, day time.Time) (int, error) {
	y, m, d := day.Date()
	start := time.Date(y, m, d, 0, 0, 0, 0, day.Location())
	end := start.AddDate(0, 0, 1)

	var count int
	err := l.db.QueryRowContext(ctx, `
		SELECT COUNT(*) FROM dispatches
		WHERE success = 1 AND sent_at >= ? AND sent_at < ?`,
		start.Unix(), end.Unix(),
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count sent on: %w", err)
	}
	return count, nil
}

// Recent returns the latest dispatch records, most recent first.
func (l *Ledger) Recent(ctx context.Context, limit int) ([]domain.DispatchRecord, error) {
	rows, err := l.db.QueryContext(ctx, `
		SELECT id, ptt_id, board_id, article_title, mail_title, sent_at, success, created_at
		FROM dispatches
		ORDER BY created_at DESC, id DESC
		LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("recent dispatches: %w", err)
	}
	defer rows.Close()

	var out []domain.DispatchRecord
	for rows.Next() {
		var (
			r         domain.DispatchRecord
			sentAt    sql.NullInt64
			success   sql.NullInt64
			createdAt int64
		)
		if err := rows.Scan(&r.ID, &r.PTTID, &r.BoardID, &r.ArticleTitle, &r.MailTitle, &sentAt, &success, &createdAt); err != nil {
			return nil, fmt.Errorf("scan dispatch: %w", err)
		}
		r.CreatedAt = time.Unix(createdAt, 0)
		if sentAt.Valid {
			t := time.Unix(sentAt.Int64, 0)
			r.SentAt = &t
		}
		if success.Valid {
			b := success.Int64 != 0
			r.Success = &b
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
