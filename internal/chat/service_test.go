package chat_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"kbportal/internal/ai"
	"kbportal/internal/chat"
	"kbportal/internal/mocks"
	"kbportal/internal/observability"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type ChatSuite struct {
	suite.Suite

	ai  *mocks.Provider
	svc *chat.Service
}

func (s *ChatSuite) SetupTest() {
	s.ai = mocks.NewProvider(s.T())
	s.svc = chat.NewService(s.ai, "mock", 10, observability.NewNopLogger())
}

func (s *ChatSuite) TestEmptyMessageRejected() {
	_, err := s.svc.Send(context.Background(), "   ", false)
	s.ErrorIs(err, chat.ErrEmptyMessage)
	s.Empty(s.svc.History())
}

func (s *ChatSuite) TestSendRecordsExchange() {
	s.ai.EXPECT().
		Answer(mock.Anything, ai.Request{Question: "สวัสดี"}).
		Return(ai.Answer{Text: "เรื่องการลาพักร้อน", Confidence: 0.9}, nil).
		Once()

	r, err := s.svc.Send(context.Background(), "  สวัสดี ", false)
	s.Require().NoError(err)

	s.Equal("เรื่องการลาพักร้อน", r.Answer)
	s.NotEmpty(r.MessageID)
	s.NotNil(r.Sources)
	s.Len(r.FollowUps, 3)
	s.Equal("วิธีการยื่นคำขอลาพักร้อนออนไลน์", r.FollowUps[0])

	h := s.svc.History()
	s.Require().Len(h, 1)
	s.Equal("สวัสดี", h[0].User)
}

func (s *ChatSuite) TestHistoryIsBoundedAndContextIsLastFive() {
	s.ai.EXPECT().
		Answer(mock.Anything, mock.Anything).
		Return(ai.Answer{Text: "ok"}, nil).
		Times(12)

	for i := 0; i < 12; i++ {
		_, err := s.svc.Send(context.Background(), fmt.Sprintf("q%d", i), false)
		s.Require().NoError(err)
	}

	h := s.svc.History()
	s.Require().Len(h, 10)
	s.Equal("q2", h[0].User)
	s.Equal("q11", h[9].User)

	s.ai.EXPECT().
		Answer(mock.Anything, mock.MatchedBy(func(r ai.Request) bool {
			return len(r.Context) == 5 && r.Context[0].User == "q7" && r.Context[4].User == "q11"
		})).
		Return(ai.Answer{Text: "with context"}, nil).
		Once()

	_, err := s.svc.Send(context.Background(), "next", true)
	s.Require().NoError(err)

	info := s.svc.Info()
	s.Equal(10, info.HistoryLength)
	s.Equal(10, info.Capacity)
	s.NotNil(info.LastActivity)
}

func (s *ChatSuite) TestProviderErrorKeepsHistory() {
	s.ai.EXPECT().
		Answer(mock.Anything, mock.Anything).
		Return(ai.Answer{}, errors.New("down")).
		Once()

	_, err := s.svc.Send(context.Background(), "hello", false)
	s.Error(err)
	s.Empty(s.svc.History())
}

func (s *ChatSuite) TestClear() {
	s.ai.EXPECT().
		Answer(mock.Anything, mock.Anything).
		Return(ai.Answer{Text: "ok"}, nil).
		Once()

	_, err := s.svc.Send(context.Background(), "hello", false)
	s.Require().NoError(err)

	s.svc.Clear()
	s.Empty(s.svc.History())
	s.Nil(s.svc.Info().LastActivity)
}

func TestChatSuite(t *testing.T) {
	suite.Run(t, new(ChatSuite))
}

func TestFollowUps(t *testing.T) {
	s := chat.FollowUps("ติดต่อ IT Support")
	if s[0] != "วิธีการรีเซ็ตรหัสผ่านระบบ" {
		t.Fatalf("unexpected follow-ups: %v", s)
	}

	generic := chat.FollowUps("nothing relevant")
	if len(generic) != 3 || generic[1] != "ขั้นตอนถัดไปคืออะไร" {
		t.Fatalf("unexpected generic follow-ups: %v", generic)
	}

	if n := len(chat.SuggestedQuestions()); n != 8 {
		t.Fatalf("expected 8 suggested questions, got %d", n)
	}
}
