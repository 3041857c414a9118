package service

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"ptt_notifier/internal/domain"
	"ptt_notifier/internal/service/mocks"
)

type AutoMailTestSuite struct {
	suite.Suite
	ctrl *gomock.Controller

	ledger    *mocks.MockDispatchLedger
	quota     *mocks.MockQuota
	generator *mocks.MockContentGenerator
	transport *mocks.MockMailTransport

	logger *slog.Logger
}

func (s *AutoMailTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())

	s.ledger = mocks.NewMockDispatchLedger(s.ctrl)
	s.quota = mocks.NewMockQuota(s.ctrl)
	s.generator = mocks.NewMockContentGenerator(s.ctrl)
	s.transport = mocks.NewMockMailTransport(s.ctrl)

	s.logger = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
}

func (s *AutoMailTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestAutoMailTestSuite(t *testing.T) {
	suite.Run(t, new(AutoMailTestSuite))
}

func (s *AutoMailTestSuite) newAutoMail(minDelay, maxDelay time.Duration) *AutoMail {
	return NewAutoMail(s.ledger, s.quota, s.generator, s.transport, minDelay, maxDelay, s.logger)
}

func outreachArticle() domain.Article {
	return domain.Article{
		ID:      1,
		BoardID: "M.1710000000.A.ABC",
		Title:   "[問題] 個人信貸請益",
		Author:  "loanseeker",
		Content: "想請問信貸條件",
	}
}

func (s *AutoMailTestSuite) TestProcess_SkipsArticleWithoutAuthor() {
	am := s.newAutoMail(time.Minute, time.Minute)
	art := outreachArticle()
	art.Author = ""

	queued, err := am.Process(context.Background(), art, true)

	s.NoError(err)
	s.False(queued)
}

func (s *AutoMailTestSuite) TestProcess_SkipsAttemptedArticle() {
	am := s.newAutoMail(time.Minute, time.Minute)
	art := outreachArticle()
	ctx := context.Background()

	s.ledger.EXPECT().HasProcessedArticle(ctx, art.BoardID).Return(true, nil)

	queued, err := am.Process(ctx, art, true)

	s.NoError(err)
	s.False(queued)
}

func (s *AutoMailTestSuite) TestProcess_SkipsContactedRecipient() {
	am := s.newAutoMail(time.Minute, time.Minute)
	art := outreachArticle()
	ctx := context.Background()

	s.ledger.EXPECT().HasProcessedArticle(ctx, art.BoardID).Return(false, nil)
	s.ledger.EXPECT().HasSentTo(ctx, art.Author).Return(true, nil)

	queued, err := am.Process(ctx, art, true)

	s.NoError(err)
	s.False(queued)
}

func (s *AutoMailTestSuite) TestProcess_QuotaExhausted() {
	am := s.newAutoMail(time.Minute, time.Minute)
	art := outreachArticle()
	ctx := context.Background()

	s.ledger.EXPECT().HasProcessedArticle(ctx, art.BoardID).Return(false, nil)
	s.ledger.EXPECT().HasSentTo(ctx, art.Author).Return(false, nil)
	s.quota.EXPECT().CanSend(ctx).Return(false, nil)

	queued, err := am.Process(ctx, art, true)

	s.NoError(err)
	s.False(queued)
}

func (s *AutoMailTestSuite) TestProcess_GenerationFailureDropsArticle() {
	am := s.newAutoMail(time.Minute, time.Minute)
	art := outreachArticle()
	ctx := context.Background()

	s.ledger.EXPECT().HasProcessedArticle(ctx, art.BoardID).Return(false, nil)
	s.ledger.EXPECT().HasSentTo(ctx, art.Author).Return(false, nil)
	s.quota.EXPECT().CanSend(ctx).Return(true, nil)
	s.generator.EXPECT().Generate(ctx, art.Title, art.Content, art.Author).
		Return("", "", domain.ErrGenerationFailed)

	queued, err := am.Process(ctx, art, true)

	s.NoError(err)
	s.False(queued)
	s.Equal(0, am.QueuedCount())
}

func (s *AutoMailTestSuite) TestProcess_ImmediateSend() {
	am := s.newAutoMail(time.Minute, time.Minute)
	art := outreachArticle()
	ctx := context.Background()

	s.ledger.EXPECT().HasProcessedArticle(ctx, art.BoardID).Return(false, nil)
	s.ledger.EXPECT().HasSentTo(ctx, art.Author).Return(false, nil)
	s.quota.EXPECT().CanSend(ctx).Return(true, nil)
	s.generator.EXPECT().Generate(ctx, art.Title, art.Content, art.Author).
		Return("貸款諮詢", "您好，看到您的文章", nil)

	gomock.InOrder(
		s.ledger.EXPECT().CreatePending(ctx, art.Author, art.BoardID, art.Title, "貸款諮詢").Return(int64(7), nil),
		s.transport.EXPECT().Login(ctx).Return(nil),
		s.transport.EXPECT().SendMail(ctx, art.Author, "貸款諮詢", "您好，看到您的文章").Return(nil),
		s.transport.EXPECT().Logout(gomock.Any()).Return(nil),
		s.ledger.EXPECT().MarkSent(gomock.Any(), int64(7), true, gomock.Any()).Return(nil),
	)

	queued, err := am.Process(ctx, art, true)

	s.NoError(err)
	s.True(queued)
}

func (s *AutoMailTestSuite) TestProcess_LoginFailureRecorded() {
	am := s.newAutoMail(time.Minute, time.Minute)
	art := outreachArticle()
	ctx := context.Background()

	s.ledger.EXPECT().HasProcessedArticle(ctx, art.BoardID).Return(false, nil)
	s.ledger.EXPECT().HasSentTo(ctx, art.Author).Return(false, nil)
	s.quota.EXPECT().CanSend(ctx).Return(true, nil)
	s.generator.EXPECT().Generate(ctx, art.Title, art.Content, art.Author).
		Return("貸款諮詢", "內文", nil)

	s.ledger.EXPECT().CreatePending(ctx, art.Author, art.BoardID, art.Title, "貸款諮詢").Return(int64(8), nil)
	s.transport.EXPECT().Login(ctx).Return(errors.New("wrong password"))
	s.ledger.EXPECT().MarkSent(gomock.Any(), int64(8), false, gomock.Any()).Return(nil)

	queued, err := am.Process(ctx, art, true)

	s.Error(err)
	s.True(queued)
}

func (s *AutoMailTestSuite) TestProcess_SendFailureStillLogsOut() {
	am := s.newAutoMail(time.Minute, time.Minute)
	art := outreachArticle()
	ctx := context.Background()

	s.ledger.EXPECT().HasProcessedArticle(ctx, art.BoardID).Return(false, nil)
	s.ledger.EXPECT().HasSentTo(ctx, art.Author).Return(false, nil)
	s.quota.EXPECT().CanSend(ctx).Return(true, nil)
	s.generator.EXPECT().Generate(ctx, art.Title, art.Content, art.Author).
		Return("貸款諮詢", "內文", nil)

	gomock.InOrder(
		s.ledger.EXPECT().CreatePending(ctx, art.Author, art.BoardID, art.Title, "貸款諮詢").Return(int64(9), nil),
		s.transport.EXPECT().Login(ctx).Return(nil),
		s.transport.EXPECT().SendMail(ctx, art.Author, "貸款諮詢", "內文").Return(errors.New("recipient rejected")),
		s.transport.EXPECT().Logout(gomock.Any()).Return(nil),
		s.ledger.EXPECT().MarkSent(gomock.Any(), int64(9), false, gomock.Any()).Return(nil),
	)

	queued, err := am.Process(ctx, art, true)

	s.Error(err)
	s.True(queued)
}

func (s *AutoMailTestSuite) TestProcess_DeadlineDuringSendStillRecordsOutcome() {
	am := s.newAutoMail(time.Minute, time.Minute)
	art := outreachArticle()
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	s.ledger.EXPECT().HasProcessedArticle(ctx, art.BoardID).Return(false, nil)
	s.ledger.EXPECT().HasSentTo(ctx, art.Author).Return(false, nil)
	s.quota.EXPECT().CanSend(ctx).Return(true, nil)
	s.generator.EXPECT().Generate(ctx, art.Title, art.Content, art.Author).
		Return("貸款諮詢", "內文", nil)

	s.ledger.EXPECT().CreatePending(ctx, art.Author, art.BoardID, art.Title, "貸款諮詢").Return(int64(11), nil)
	s.transport.EXPECT().Login(ctx).Return(nil)
	s.transport.EXPECT().SendMail(ctx, art.Author, "貸款諮詢", "內文").
		DoAndReturn(func(ctx context.Context, _, _, _ string) error {
			<-ctx.Done()
			return ctx.Err()
		})
	s.transport.EXPECT().Logout(gomock.Any()).
		DoAndReturn(func(ctx context.Context) error {
			s.NoError(ctx.Err(), "logout must run on a live context")
			return nil
		})
	s.ledger.EXPECT().MarkSent(gomock.Any(), int64(11), false, gomock.Any()).
		DoAndReturn(func(ctx context.Context, _ int64, _ bool, _ time.Time) error {
			s.NoError(ctx.Err(), "outcome must be recorded on a live context")
			return nil
		})

	queued, err := am.Process(ctx, art, true)

	s.Error(err)
	s.True(queued)
}

func (s *AutoMailTestSuite) TestProcess_DelayedSendFires() {
	am := s.newAutoMail(5*time.Millisecond, 10*time.Millisecond)
	art := outreachArticle()
	ctx := context.Background()

	s.ledger.EXPECT().HasProcessedArticle(ctx, art.BoardID).Return(false, nil)
	s.ledger.EXPECT().HasSentTo(ctx, art.Author).Return(false, nil)
	s.quota.EXPECT().CanSend(ctx).Return(true, nil)
	s.generator.EXPECT().Generate(ctx, art.Title, art.Content, art.Author).
		Return("貸款諮詢", "內文", nil)

	done := make(chan struct{})
	s.ledger.EXPECT().CreatePending(gomock.Any(), art.Author, art.BoardID, art.Title, "貸款諮詢").Return(int64(10), nil)
	s.transport.EXPECT().Login(gomock.Any()).Return(nil)
	s.transport.EXPECT().SendMail(gomock.Any(), art.Author, "貸款諮詢", "內文").Return(nil)
	s.transport.EXPECT().Logout(gomock.Any()).Return(nil)
	s.ledger.EXPECT().MarkSent(gomock.Any(), int64(10), true, gomock.Any()).
		DoAndReturn(func(context.Context, int64, bool, time.Time) error {
			close(done)
			return nil
		})

	queued, err := am.Process(ctx, art, false)

	s.NoError(err)
	s.True(queued)

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		s.Fail("delayed send did not fire")
	}
}

func (s *AutoMailTestSuite) TestCancel() {
	am := s.newAutoMail(time.Hour, time.Hour)
	art := outreachArticle()
	ctx := context.Background()

	s.ledger.EXPECT().HasProcessedArticle(ctx, art.BoardID).Return(false, nil)
	s.ledger.EXPECT().HasSentTo(ctx, art.Author).Return(false, nil)
	s.quota.EXPECT().CanSend(ctx).Return(true, nil)
	s.generator.EXPECT().Generate(ctx, art.Title, art.Content, art.Author).
		Return("貸款諮詢", "內文", nil)

	queued, err := am.Process(ctx, art, false)
	s.NoError(err)
	s.True(queued)
	s.Equal(1, am.QueuedCount())

	s.True(am.Cancel(art.BoardID, art.Author))
	s.Equal(0, am.QueuedCount())
	s.False(am.Cancel(art.BoardID, art.Author))
}

func (s *AutoMailTestSuite) TestCancelAll() {
	am := s.newAutoMail(time.Hour, time.Hour)
	ctx := context.Background()

	for _, boardID := range []string{"M.1710000000.A.ABC", "M.1710000001.A.DEF"} {
		art := outreachArticle()
		art.BoardID = boardID
		art.Author = "user_" + boardID[len(boardID)-3:]

		s.ledger.EXPECT().HasProcessedArticle(ctx, art.BoardID).Return(false, nil)
		s.ledger.EXPECT().HasSentTo(ctx, art.Author).Return(false, nil)
		s.quota.EXPECT().CanSend(ctx).Return(true, nil)
		s.generator.EXPECT().Generate(ctx, art.Title, art.Content, art.Author).
			Return("貸款諮詢", "內文", nil)

		queued, err := am.Process(ctx, art, false)
		s.NoError(err)
		s.True(queued)
	}

	s.Equal(2, am.QueuedCount())
	s.Equal(2, am.CancelAll())
	s.Equal(0, am.QueuedCount())
}
