// Package ptt scrapes a PTT web board for candidate articles.
package ptt

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/time/rate"

	"ptt_notifier/internal/domain"
)

const userAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"

// Config holds PTT board source configuration.
type Config struct {
	BoardURL  string
	Keywords  []string
	Timeout   time.Duration
	FetchRate float64 // article page fetches per second
}

// Source fetches the newest board index page and the content of every entry
// whose title matches the keyword set. Page fetches are rate limited so the
// crawl stays well below the board's abuse thresholds.
type Source struct {
	httpClient *http.Client
	boardURL   string
	baseURL    string
	keywords   []string
	limiter    *rate.Limiter
	loc        *time.Location
	logger     *slog.Logger
}

func New(cfg Config, loc *time.Location, logger *slog.Logger) *Source {
	baseURL := "https://www.ptt.cc"
	if u, err := url.Parse(cfg.BoardURL); err == nil && u.Host != "" {
		baseURL = u.Scheme + "://" + u.Host
	}

	return &Source{
		httpClient: &http.Client{Timeout: cfg.Timeout},
		boardURL:   cfg.BoardURL,
		baseURL:    baseURL,
		keywords:   cfg.Keywords,
		limiter:    rate.NewLimiter(rate.Limit(cfg.FetchRate), 1),
		loc:        loc,
		logger:     logger.With("source", "ptt"),
	}
}

// FetchCandidates returns the keyword-matching articles of the newest index
// page, with full content. A failed article-page fetch drops that entry only.
func (s *Source) FetchCandidates(ctx context.Context) ([]domain.Article, error) {
	doc, err := s.fetchDocument(ctx, s.boardURL)
	if err != nil {
		return nil, fmt.Errorf("fetch board index: %w", err)
	}

	entries := parseBoardIndex(doc, s.baseURL)
	s.logger.Debug("parsed board index", "entries", len(entries))

	var articles []domain.Article
	for _, entry := range entries {
		if entry.BoardID == "" {
			continue // deleted post
		}
		if !titleMatches(s.keywords, entry.Title) {
			continue
		}

		if err := s.limiter.Wait(ctx); err != nil {
			return articles, err
		}

		pageDoc, err := s.fetchDocument(ctx, entry.URL)
		if err != nil {
			s.logger.Warn("fetch article page failed",
				"board_id", entry.BoardID,
				"url", entry.URL,
				"error", err,
			)
			continue
		}

		page := parseArticlePage(pageDoc, s.loc)
		author := entry.Author
		if page.Author != "" {
			author = page.Author
		}

		articles = append(articles, domain.Article{
			BoardID:  entry.BoardID,
			Title:    entry.Title,
			Author:   author,
			Content:  page.Content,
			URL:      entry.URL,
			PostedAt: page.PostedAt,
		})
	}

	return articles, nil
}

func (s *Source) fetchDocument(ctx context.Context, pageURL string) (*goquery.Document, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("User-Agent", userAgent)
	// Bypasses the board's age gate.
	req.Header.Set("Cookie", "over18=1")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status: %d", resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("parse document: %w", err)
	}
	return doc, nil
}

// titleMatches is a cheap pre-filter bounding how many article pages get
// fetched; the intake filter re-checks title and body together.
func titleMatches(keywords []string, title string) bool {
	lower := strings.ToLower(title)
	for _, kw := range keywords {
		if strings.Contains(lower, strings.ToLower(kw)) {
			return true
		}
	}
	return false
}
