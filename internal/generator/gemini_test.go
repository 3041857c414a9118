package generator

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ptt_notifier/internal/domain"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
}

func modelReply(text string) string {
	b, _ := json.Marshal(map[string]any{
		"candidates": []map[string]any{
			{"content": map[string]any{"parts": []map[string]any{{"text": text}}}},
		},
	})
	return string(b)
}

func TestGenerate(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Contains(t, r.URL.Path, "gemini-2.0-flash:generateContent")
		assert.Equal(t, "test-key", r.URL.Query().Get("key"))

		var req generateRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Len(t, req.Contents, 1)
		assert.Contains(t, req.Contents[0].Parts[0].Text, "[問題] 個人信貸請益")
		assert.Contains(t, req.Contents[0].Parts[0].Text, "loanseeker")

		fmt.Fprint(w, modelReply("標題: 貸款諮詢邀請\n---\n您好，看到您的文章，歡迎進一步諮詢。"))
	}))
	defer srv.Close()

	g := NewGemini("test-key", "gemini-2.0-flash", testLogger())
	g.baseURL = srv.URL

	subject, body, err := g.Generate(context.Background(), "[問題] 個人信貸請益", "想請問條件", "loanseeker")
	require.NoError(t, err)
	assert.Equal(t, "貸款諮詢邀請", subject)
	assert.Equal(t, "您好，看到您的文章，歡迎進一步諮詢。", body)
}

func TestGenerate_MalformedReply(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, modelReply("抱歉，我無法協助撰寫這封信。"))
	}))
	defer srv.Close()

	g := NewGemini("test-key", "gemini-2.0-flash", testLogger())
	g.baseURL = srv.URL

	_, _, err := g.Generate(context.Background(), "t", "c", "a")
	assert.ErrorIs(t, err, domain.ErrGenerationFailed)
}

func TestGenerate_EmptyCandidates(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, `{"candidates":[]}`)
	}))
	defer srv.Close()

	g := NewGemini("test-key", "gemini-2.0-flash", testLogger())
	g.baseURL = srv.URL

	_, _, err := g.Generate(context.Background(), "t", "c", "a")
	assert.ErrorIs(t, err, domain.ErrGenerationFailed)
}

func TestGenerate_HTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "quota exceeded", http.StatusTooManyRequests)
	}))
	defer srv.Close()

	g := NewGemini("test-key", "gemini-2.0-flash", testLogger())
	g.baseURL = srv.URL

	_, _, err := g.Generate(context.Background(), "t", "c", "a")
	assert.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrGenerationFailed)
}

func TestParseReply(t *testing.T) {
	cases := []struct {
		name        string
		reply       string
		wantSubject string
		wantBody    string
		wantErr     bool
	}{
		{
			name:        "well formed",
			reply:       "標題: 貸款諮詢\n---\n您好",
			wantSubject: "貸款諮詢",
			wantBody:    "您好",
		},
		{
			name:        "leading chatter before subject",
			reply:       "好的，以下是信件。\n標題: 貸款諮詢\n---\n您好",
			wantSubject: "貸款諮詢",
			wantBody:    "您好",
		},
		{
			name:        "extra whitespace",
			reply:       "  標題:   貸款諮詢  \n---\n\n您好\n",
			wantSubject: "貸款諮詢",
			wantBody:    "您好",
		},
		{name: "missing separator", reply: "標題: 貸款諮詢 您好", wantErr: true},
		{name: "missing subject", reply: "貸款諮詢\n---\n您好", wantErr: true},
		{name: "empty body", reply: "標題: 貸款諮詢\n---\n  ", wantErr: true},
		{name: "empty reply", reply: "", wantErr: true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			subject, body, err := parseReply(tc.reply)
			if tc.wantErr {
				assert.ErrorIs(t, err, domain.ErrGenerationFailed)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.wantSubject, subject)
			assert.Equal(t, tc.wantBody, body)
		})
	}
}
