package service

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"sync"
	"time"

	"ptt_notifier/internal/domain"
)

const (
	sendTimeout    = 2 * time.Minute
	cleanupTimeout = 10 * time.Second
)

// AutoMail is the personalized outreach dispatcher. An article's author is
// mailed at most once ever, each article is attempted at most once, and the
// daily cap is enforced at queue time. Queued sends fire after a randomized
// delay and can be cancelled until they do.
type AutoMail struct {
	ledger    DispatchLedger
	quota     Quota
	generator ContentGenerator
	transport MailTransport
	minDelay  time.Duration
	maxDelay  time.Duration
	logger    *slog.Logger
	now       func() time.Time

	mu     sync.Mutex
	timers map[dispatchKey]*time.Timer
}

type dispatchKey struct {
	BoardID string
	PTTID   string
}

type queuedMail struct {
	key          dispatchKey
	articleTitle string
	subject      string
	body         string
}

func NewAutoMail(
	ledger DispatchLedger,
	quota Quota,
	generator ContentGenerator,
	transport MailTransport,
	minDelay, maxDelay time.Duration,
	logger *slog.Logger,
) *AutoMail {
	return &AutoMail{
		ledger:    ledger,
		quota:     quota,
		generator: generator,
		transport: transport,
		minDelay:  minDelay,
		maxDelay:  maxDelay,
		logger:    logger.With("service", "auto_mail"),
		now:       time.Now,
		timers:    make(map[dispatchKey]*time.Timer),
	}
}

// Process decides whether the article's author should receive a personalized
// mail and, if so, generates the content and queues the send. Returns true
// when a send was queued (or, with immediate set, attempted). Skips are
// normal outcomes, not errors; a generation failure drops the article with
// no retry and no ledger record.
func (m *AutoMail) Process(ctx context.Context, article domain.Article, immediate bool) (bool, error) {
	if article.BoardID == "" || article.Author == "" {
		return false, nil
	}
	log := m.logger.With("board_id", article.BoardID, "ptt_id", article.Author)

	processed, err := m.ledger.HasProcessedArticle(ctx, article.BoardID)
	if err != nil {
		return false, fmt.Errorf("check article: %w", err)
	}
	if processed {
		log.Debug("article already attempted, skipping")
		return false, nil
	}

	contacted, err := m.ledger.HasSentTo(ctx, article.Author)
	if err != nil {
		return false, fmt.Errorf("check recipient: %w", err)
	}
	if contacted {
		log.Debug("recipient already contacted, skipping")
		return false, nil
	}

	ok, err := m.quota.CanSend(ctx)
	if err != nil {
		return false, fmt.Errorf("check quota: %w", err)
	}
	if !ok {
		log.Warn("daily quota exhausted, dropping article")
		return false, nil
	}

	subject, body, err := m.generator.Generate(ctx, article.Title, article.Content, article.Author)
	if err != nil {
		log.Error("content generation failed, dropping article", "error", err)
		return false, nil
	}

	mail := queuedMail{
		key:          dispatchKey{BoardID: article.BoardID, PTTID: article.Author},
		articleTitle: article.Title,
		subject:      subject,
		body:         body,
	}

	if immediate {
		return true, m.send(ctx, mail)
	}
	m.schedule(mail)
	return true, nil
}

// schedule arms a one-shot timer with a uniform random delay in
// [minDelay, maxDelay].
func (m *AutoMail) schedule(mail queuedMail) {
	delay := m.minDelay
	if m.maxDelay > m.minDelay {
		delay += time.Duration(rand.Int64N(int64(m.maxDelay-m.minDelay) + 1))
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if _, exists := m.timers[mail.key]; exists {
		return
	}
	m.timers[mail.key] = time.AfterFunc(delay, func() { m.fire(mail) })

	m.logger.Info("queued outreach mail",
		"ptt_id", mail.key.PTTID,
		"board_id", mail.key.BoardID,
		"delay", delay,
	)
}

func (m *AutoMail) fire(mail queuedMail) {
	m.mu.Lock()
	delete(m.timers, mail.key)
	m.mu.Unlock()

	ctx, cancel := context.WithTimeout(context.Background(), sendTimeout)
	defer cancel()

	if err := m.send(ctx, mail); err != nil {
		m.logger.Warn("outreach send failed",
			"ptt_id", mail.key.PTTID,
			"board_id", mail.key.BoardID,
			"error", err,
		)
	}
}

// send runs one delivery: open a ledger record, log in, mail, and record the
// outcome. The session is released and the outcome recorded on every exit
// path, including mid-send faults.
func (m *AutoMail) send(ctx context.Context, mail queuedMail) error {
	recID, err := m.ledger.CreatePending(ctx, mail.key.PTTID, mail.key.BoardID, mail.articleTitle, mail.subject)
	if err != nil {
		return fmt.Errorf("create dispatch record: %w", err)
	}

	success := false
	defer func() {
		// The send context may already be dead here. The outcome has to land
		// anyway, or HasSentTo stays false and the recipient gets mailed again.
		recCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), cleanupTimeout)
		defer cancel()
		if err := m.ledger.MarkSent(recCtx, recID, success, m.now()); err != nil {
			m.logger.Error("record dispatch outcome failed", "dispatch_id", recID, "error", err)
		}
	}()

	if err := m.transport.Login(ctx); err != nil {
		return fmt.Errorf("login: %w", err)
	}
	defer func() {
		logoutCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), cleanupTimeout)
		defer cancel()
		if err := m.transport.Logout(logoutCtx); err != nil {
			m.logger.Warn("logout failed", "error", err)
		}
	}()

	if err := m.transport.SendMail(ctx, mail.key.PTTID, mail.subject, mail.body); err != nil {
		return fmt.Errorf("send mail: %w", err)
	}

	success = true
	m.logger.Info("outreach mail sent", "ptt_id", mail.key.PTTID, "board_id", mail.key.BoardID)
	return nil
}

// Cancel stops a queued send that has not fired yet.
func (m *AutoMail) Cancel(boardID, pttID string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	key := dispatchKey{BoardID: boardID, PTTID: pttID}
	timer, ok := m.timers[key]
	if !ok {
		return false
	}
	timer.Stop()
	delete(m.timers, key)
	return true
}

// CancelAll stops every queued send; called on shutdown.
func (m *AutoMail) CancelAll() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	n := len(m.timers)
	for key, timer := range m.timers {
		timer.Stop()
		delete(m.timers, key)
	}
	return n
}

// QueuedCount returns the number of delayed sends not yet fired.
func (m *AutoMail) QueuedCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.timers)
}
