package api

import (
	"database/sql"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"ptt_notifier/internal/domain"
	"ptt_notifier/internal/quota"
	"ptt_notifier/internal/service"
	"ptt_notifier/internal/storage/postgres"
	"ptt_notifier/internal/storage/sqlite"
)

const recentDispatchLimit = 20

// Handler serves the operational API: status endpoints, manual triggers,
// and subscriber management. The ledger and tracker are nil when outreach
// is disabled.
type Handler struct {
	articles      *postgres.ArticleStore
	subscribers   *postgres.SubscriberStore
	notifications *postgres.NotificationStore
	ledger        *sqlite.Ledger
	tracker       *quota.Tracker
	intake        *service.Intake
	fanout        *service.Fanout
	logger        *slog.Logger
}

func NewHandler(
	articles *postgres.ArticleStore,
	subscribers *postgres.SubscriberStore,
	notifications *postgres.NotificationStore,
	ledger *sqlite.Ledger,
	tracker *quota.Tracker,
	intake *service.Intake,
	fanout *service.Fanout,
	logger *slog.Logger,
) *Handler {
	return &Handler{
		articles:      articles,
		subscribers:   subscribers,
		notifications: notifications,
		ledger:        ledger,
		tracker:       tracker,
		intake:        intake,
		fanout:        fanout,
		logger:        logger.With("component", "api"),
	}
}

func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "ok",
		"timestamp": time.Now().Format(time.RFC3339),
	})
}

func (h *Handler) GetStats(c *gin.Context) {
	ctx := c.Request.Context()
	stats := gin.H{}

	articles, err := h.articles.Count(ctx)
	if err != nil {
		h.logger.Error("count articles failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "stats unavailable"})
		return
	}
	stats["articles"] = articles

	if active, err := h.subscribers.CountActive(ctx); err == nil {
		stats["active_subscribers"] = active
	}
	if pending, err := h.notifications.CountPending(ctx); err == nil {
		stats["pending_notifications"] = pending
	}
	if h.tracker != nil {
		if sent, err := h.tracker.TodayCount(ctx); err == nil {
			stats["today_sent"] = sent
		}
		if remaining, err := h.tracker.Remaining(ctx); err == nil {
			stats["remaining_quota"] = remaining
		}
	}

	c.JSON(http.StatusOK, stats)
}

// GetNotifications exposes the latest fanout delivery records, including
// failed immediate sends, which are never retried and otherwise invisible.
func (h *Handler) GetNotifications(c *gin.Context) {
	recent, err := h.notifications.Recent(c.Request.Context(), recentDispatchLimit)
	if err != nil {
		h.logger.Error("read recent notifications failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "notifications unavailable"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"notifications": recent, "count": len(recent)})
}

func (h *Handler) GetQuota(c *gin.Context) {
	if h.tracker == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "outreach disabled"})
		return
	}
	ctx := c.Request.Context()

	sent, err := h.tracker.TodayCount(ctx)
	if err != nil {
		h.logger.Error("read quota failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "quota unavailable"})
		return
	}

	recent, err := h.ledger.Recent(ctx, recentDispatchLimit)
	if err != nil {
		h.logger.Error("read recent dispatches failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "quota unavailable"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"daily_limit": h.tracker.DailyLimit(),
		"sent_today":  sent,
		"remaining":   h.tracker.DailyLimit() - sent,
		"recent":      recent,
	})
}

// TriggerIntake runs one fetch cycle immediately, outside the schedule.
func (h *Handler) TriggerIntake(c *gin.Context) {
	stats, err := h.intake.Run(c.Request.Context())
	if err != nil {
		h.logger.Error("manual intake failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, stats)
}

// TriggerDigest flushes pending batched notifications immediately.
func (h *Handler) TriggerDigest(c *gin.Context) {
	stats, err := h.fanout.RunDigest(c.Request.Context())
	if err != nil {
		h.logger.Error("manual digest failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, stats)
}

// parseTier accepts only the two exact tier names, unlike
// domain.ParseTier which quietly defaults.
func parseTier(s string) (domain.Tier, bool) {
	switch domain.Tier(s) {
	case domain.TierImmediate, domain.TierBatched:
		return domain.Tier(s), true
	}
	return "", false
}

type subscribeRequest struct {
	LineUserID string `json:"line_user_id" binding:"required"`
	Tier       string `json:"tier"`
}

func (h *Handler) CreateSubscriber(c *gin.Context) {
	var req subscribeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	tier := domain.TierBatched
	if req.Tier != "" {
		parsed, ok := parseTier(req.Tier)
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "tier must be immediate or batched"})
			return
		}
		tier = parsed
	}

	sub, err := h.subscribers.GetOrCreate(c.Request.Context(), req.LineUserID, tier)
	if err != nil {
		h.logger.Error("create subscriber failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "create subscriber failed"})
		return
	}
	c.JSON(http.StatusOK, sub)
}

type tierRequest struct {
	Tier string `json:"tier" binding:"required"`
}

func (h *Handler) UpdateSubscriberTier(c *gin.Context) {
	var req tierRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	tier, ok := parseTier(req.Tier)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "tier must be immediate or batched"})
		return
	}

	sub, err := h.subscribers.UpdateTier(c.Request.Context(), c.Param("id"), tier)
	if err != nil {
		h.logger.Error("update tier failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "update tier failed"})
		return
	}
	if sub == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "subscriber not found"})
		return
	}
	c.JSON(http.StatusOK, sub)
}

// DeactivateSubscriber turns the subscriber off without deleting its
// notification history.
func (h *Handler) DeactivateSubscriber(c *gin.Context) {
	err := h.subscribers.SetActive(c.Request.Context(), c.Param("id"), false)
	if errors.Is(err, sql.ErrNoRows) {
		c.JSON(http.StatusNotFound, gin.H{"error": "subscriber not found"})
		return
	}
	if err != nil {
		h.logger.Error("deactivate subscriber failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "deactivate failed"})
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) ListSubscribers(c *gin.Context) {
	subs, err := h.subscribers.ListActive(c.Request.Context())
	if err != nil {
		h.logger.Error("list subscribers failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "list failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"subscribers": subs, "count": len(subs)})
}
