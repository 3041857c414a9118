package mailer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"
)

// Client talks to the PTT mail bridge over HTTP. The bridge holds one
// terminal session at a time, so callers wrap every send in a Login and
// Logout pair and never interleave sessions.
type Client struct {
	baseURL  string
	username string
	password string
	client   *http.Client
	logger   *slog.Logger
}

func New(baseURL, username, password string, logger *slog.Logger) *Client {
	return &Client{
		baseURL:  baseURL,
		username: username,
		password: password,
		client:   &http.Client{Timeout: 60 * time.Second},
		logger:   logger.With("component", "mail_bridge"),
	}
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type mailRequest struct {
	To      string `json:"to"`
	Title   string `json:"title"`
	Content string `json:"content"`
}

func (c *Client) Login(ctx context.Context) error {
	return c.post(ctx, "/login", loginRequest{Username: c.username, Password: c.password})
}

func (c *Client) SendMail(ctx context.Context, pttID, subject, body string) error {
	return c.post(ctx, "/mail", mailRequest{To: pttID, Title: subject, Content: body})
}

func (c *Client) Logout(ctx context.Context) error {
	return c.post(ctx, "/logout", nil)
}

func (c *Client) post(ctx context.Context, path string, payload any) error {
	var reqBody io.Reader
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("marshal %s request: %w", path, err)
		}
		reqBody = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("build %s request: %w", path, err)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("%s: status %d: %s", path, resp.StatusCode, snippet)
	}
	return nil
}
