// Package quota derives the daily outreach quota from the dispatch ledger.
// There is no cached counter: every check scans the ledger, so the quota can
// never drift from the record of what was actually sent, and a restart
// cannot reset it. Volume is tens of sends per day, so the scan is cheap.
package quota

import (
	"context"
	"time"
)

// LedgerReader is the slice of the dispatch ledger the tracker needs.
type LedgerReader interface {
	CountSentOn(ctx context.Context, day time.Time) (int, error)
}

type Tracker struct {
	ledger LedgerReader
	limit  int
	loc    *time.Location
	now    func() time.Time
}

func NewTracker(ledger LedgerReader, limit int, loc *time.Location) *Tracker {
	return &Tracker{
		ledger: ledger,
		limit:  limit,
		loc:    loc,
		now:    time.Now,
	}
}

// TodayCount returns the number of successful sends so far today, where
// "today" is the calendar day in the configured timezone.
func (t *Tracker) TodayCount(ctx context.Context) (int, error) {
	return t.ledger.CountSentOn(ctx, t.now().In(t.loc))
}

func (t *Tracker) CanSend(ctx context.Context) (bool, error) {
	count, err := t.TodayCount(ctx)
	if err != nil {
		return false, err
	}
	return count < t.limit, nil
}

func (t *Tracker) Remaining(ctx context.Context) (int, error) {
	count, err := t.TodayCount(ctx)
	if err != nil {
		return 0, err
	}
	if count >= t.limit {
		return 0, nil
	}
	return t.limit - count, nil
}

func (t *Tracker) DailyLimit() int {
	return t.limit
}
