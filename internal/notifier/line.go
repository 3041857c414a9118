package notifier

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"ptt_notifier/internal/config"
	"ptt_notifier/internal/domain"
)

const timeDisplayLayout = "2006-01-02 15:04"

// Line pushes flex messages through the LINE Messaging API. A single
// article becomes one bubble; a digest becomes a carousel of up to ten
// bubbles, the API's carousel limit.
type Line struct {
	endpoint string
	token    string
	client   *http.Client
	logger   *slog.Logger
}

func NewLine(cfg config.LineConfig, logger *slog.Logger) *Line {
	return &Line{
		endpoint: cfg.Endpoint,
		token:    cfg.ChannelToken,
		client:   &http.Client{Timeout: cfg.Timeout},
		logger:   logger.With("component", "line_notifier"),
	}
}

type pushRequest struct {
	To       string        `json:"to"`
	Messages []flexMessage `json:"messages"`
}

type flexMessage struct {
	Type     string         `json:"type"`
	AltText  string         `json:"altText"`
	Contents map[string]any `json:"contents"`
}

// SendArticle pushes one article as a flex bubble.
func (l *Line) SendArticle(ctx context.Context, lineUserID string, article domain.Article) error {
	msg := flexMessage{
		Type:     "flex",
		AltText:  article.Title,
		Contents: articleBubble(article.Title, article.Author, article.URL, article.PostedAt),
	}
	return l.push(ctx, lineUserID, msg)
}

// SendDigest pushes the pending items as one carousel message.
func (l *Line) SendDigest(ctx context.Context, lineUserID string, items []domain.PendingNotification) error {
	if len(items) == 0 {
		return nil
	}

	bubbles := make([]map[string]any, 0, len(items))
	for _, item := range items {
		bubbles = append(bubbles, articleBubble(item.Title, item.Author, item.URL, item.PostedAt))
	}

	msg := flexMessage{
		Type:    "flex",
		AltText: fmt.Sprintf("%d 篇新文章", len(items)),
		Contents: map[string]any{
			"type":     "carousel",
			"contents": bubbles,
		},
	}
	return l.push(ctx, lineUserID, msg)
}

func (l *Line) push(ctx context.Context, to string, msg flexMessage) error {
	body, err := json.Marshal(pushRequest{To: to, Messages: []flexMessage{msg}})
	if err != nil {
		return fmt.Errorf("marshal push request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, l.endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build push request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+l.token)

	resp, err := l.client.Do(req)
	if err != nil {
		return fmt.Errorf("push message: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("push message: status %d: %s", resp.StatusCode, snippet)
	}

	l.logger.Debug("message pushed", "status", resp.StatusCode)
	return nil
}

func articleBubble(title, author, url string, postedAt *time.Time) map[string]any {
	posted := "時間不明"
	if postedAt != nil {
		posted = postedAt.Format(timeDisplayLayout)
	}

	return map[string]any{
		"type": "bubble",
		"body": map[string]any{
			"type":   "box",
			"layout": "vertical",
			"contents": []map[string]any{
				{"type": "text", "text": title, "weight": "bold", "size": "md", "wrap": true},
				{"type": "text", "text": author, "size": "sm", "color": "#888888"},
				{"type": "text", "text": posted, "size": "xs", "color": "#aaaaaa"},
			},
		},
		"footer": map[string]any{
			"type":   "box",
			"layout": "vertical",
			"contents": []map[string]any{
				{
					"type":  "button",
					"style": "link",
					"action": map[string]any{
						"type":  "uri",
						"label": "閱讀文章",
						"uri":   url,
					},
				},
			},
		},
	}
}
