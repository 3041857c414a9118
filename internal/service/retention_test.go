package service

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"ptt_notifier/internal/service/mocks"
)

func TestRetention_Run(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	taipei, err := time.LoadLocation("Asia/Taipei")
	require.NoError(t, err)

	articles := mocks.NewMockArticleStore(ctrl)
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))

	r := NewRetention(articles, 180, taipei, logger)
	now := time.Date(2024, 9, 1, 3, 0, 0, 0, taipei)
	r.now = func() time.Time { return now }

	articles.EXPECT().
		PurgeOlderThan(gomock.Any(), now.AddDate(0, 0, -180)).
		Return(int64(42), nil)

	assert.NoError(t, r.Run(context.Background()))
}

func TestRetention_RunError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	articles := mocks.NewMockArticleStore(ctrl)
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))

	r := NewRetention(articles, 180, time.UTC, logger)

	articles.EXPECT().
		PurgeOlderThan(gomock.Any(), gomock.Any()).
		Return(int64(0), errors.New("connection reset"))

	assert.Error(t, r.Run(context.Background()))
}

func TestMatchesKeywords(t *testing.T) {
	keywords := []string{"信貸", "個人信貸"}

	assert.True(t, MatchesKeywords(keywords, "[問題] 個人信貸請益", ""))
	assert.True(t, MatchesKeywords(keywords, "[問題] 資金需求", "考慮辦信貸"))
	assert.False(t, MatchesKeywords(keywords, "[問題] 房貸請益", "二十年期"))
	assert.False(t, MatchesKeywords(nil, "[問題] 個人信貸請益", ""))
	assert.False(t, MatchesKeywords([]string{""}, "任何標題", "任何內文"))

	assert.True(t, MatchesKeywords([]string{"LOAN"}, "need a loan", ""))
}
