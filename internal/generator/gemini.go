package generator

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"ptt_notifier/internal/domain"
)

const (
	defaultBaseURL = "https://generativelanguage.googleapis.com/v1beta"
	subjectPrefix  = "標題:"
	partSeparator  = "---"
)

// Gemini generates a personalized mail subject and body from an article.
// The model is asked to reply in a fixed two-part format; replies that do
// not follow it are rejected with ErrGenerationFailed so the caller drops
// the article instead of mailing garbage.
type Gemini struct {
	baseURL string
	apiKey  string
	model   string
	client  *http.Client
	logger  *slog.Logger
}

func NewGemini(apiKey, model string, logger *slog.Logger) *Gemini {
	return &Gemini{
		baseURL: defaultBaseURL,
		apiKey:  apiKey,
		model:   model,
		client:  &http.Client{Timeout: 30 * time.Second},
		logger:  logger.With("component", "gemini"),
	}
}

type generateRequest struct {
	Contents []requestContent `json:"contents"`
}

type requestContent struct {
	Parts []contentPart `json:"parts"`
}

type contentPart struct {
	Text string `json:"text"`
}

type generateResponse struct {
	Candidates []struct {
		Content struct {
			Parts []contentPart `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

func (g *Gemini) Generate(ctx context.Context, title, content, author string) (string, string, error) {
	prompt := buildPrompt(title, content, author)

	reply, err := g.complete(ctx, prompt)
	if err != nil {
		return "", "", err
	}

	subject, body, err := parseReply(reply)
	if err != nil {
		g.logger.Warn("model reply unusable", "error", err)
		return "", "", err
	}
	return subject, body, nil
}

func (g *Gemini) complete(ctx context.Context, prompt string) (string, error) {
	payload, err := json.Marshal(generateRequest{
		Contents: []requestContent{{Parts: []contentPart{{Text: prompt}}}},
	})
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/models/%s:generateContent?key=%s", g.baseURL, g.model, g.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("call model: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return "", fmt.Errorf("call model: status %d: %s", resp.StatusCode, snippet)
	}

	var parsed generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", fmt.Errorf("decode response: %w", err)
	}
	if len(parsed.Candidates) == 0 || len(parsed.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("%w: empty candidates", domain.ErrGenerationFailed)
	}
	return parsed.Candidates[0].Content.Parts[0].Text, nil
}

func buildPrompt(title, content, author string) string {
	var b strings.Builder
	b.WriteString("你是一位專業的貸款顧問。以下是 ")
	b.WriteString(author)
	b.WriteString(" 在 PTT 發表的求助文章，請撰寫一封站內信，親切地回應他的需求並邀請他進一步諮詢。\n\n")
	b.WriteString("文章標題: ")
	b.WriteString(title)
	b.WriteString("\n文章內容:\n")
	b.WriteString(content)
	b.WriteString("\n\n請嚴格依照以下格式回覆，不要加入其他說明:\n")
	b.WriteString(subjectPrefix)
	b.WriteString(" <信件標題>\n")
	b.WriteString(partSeparator)
	b.WriteString("\n<信件內文>")
	return b.String()
}

// parseReply splits the model reply into subject and body. Expected shape:
//
//	標題: <subject>
//	---
//	<body>
func parseReply(reply string) (string, string, error) {
	head, body, found := strings.Cut(reply, partSeparator)
	if !found {
		return "", "", fmt.Errorf("%w: missing separator", domain.ErrGenerationFailed)
	}

	head = strings.TrimSpace(head)
	idx := strings.Index(head, subjectPrefix)
	if idx < 0 {
		return "", "", fmt.Errorf("%w: missing subject line", domain.ErrGenerationFailed)
	}
	subject := strings.TrimSpace(head[idx+len(subjectPrefix):])
	body = strings.TrimSpace(body)

	if subject == "" || body == "" {
		return "", "", fmt.Errorf("%w: empty subject or body", domain.ErrGenerationFailed)
	}
	return subject, body, nil
}
