package search

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"kbportal/internal/ai"
	"kbportal/internal/observability"
)

var ErrEmptyQuestion = errors.New("question is required")

const noAnswer = "ไม่พบคำตอบสำหรับคำถามนี้"

type Result struct {
	Answer    string    `json:"answer"`
	Question  string    `json:"question"`
	Timestamp time.Time `json:"timestamp"`
	Mock      bool      `json:"isMock,omitempty"`
}

// Hit is one entry of a result list shown to the user.
type Hit struct {
	ID             string    `json:"id"`
	Title          string    `json:"title"`
	Content        string    `json:"content"`
	Category       string    `json:"category"`
	FileType       string    `json:"fileType"`
	LastUpdated    time.Time `json:"lastUpdated"`
	RelevanceScore float64   `json:"relevanceScore"`
	SearchType     string    `json:"searchType"`
	Highlights     []string  `json:"highlights"`
	IsError        bool      `json:"isError,omitempty"`
}

type Service struct {
	provider ai.Provider
	index    []Hit
	logger   *observability.Logger
	now      func() time.Time
}

func NewService(p ai.Provider, index []Hit, logger *observability.Logger) *Service {
	return &Service{
		provider: p,
		index:    index,
		logger:   logger,
		now:      time.Now,
	}
}

// Search asks the answer provider.
func (s *Service) Search(ctx context.Context, question string) (Result, error) {
	q := strings.TrimSpace(question)
	if q == "" {
		return Result{}, ErrEmptyQuestion
	}

	a, err := s.provider.Answer(ctx, ai.Request{Question: q})
	if err != nil {
		return Result{}, fmt.Errorf("search %q: %w", q, err)
	}

	answer := a.Text
	if answer == "" {
		answer = noAnswer
	}

	return Result{
		Answer:    answer,
		Question:  q,
		Timestamp: s.now(),
	}, nil
}

// Perform always returns a displayable list: the answer, a canned answer
// when the upstream fails on its side, or an error entry otherwise.
func (s *Service) Perform(ctx context.Context, question string) []Hit {
	res, err := s.Search(ctx, question)
	if err == nil {
		return []Hit{s.answerHit(res, "คำตอบสำหรับ: "+res.Question, "search-result")}
	}

	if ai.Unavailable(err) {
		s.logger.Warn("search api failed, using canned answer", "err", err)
		mock := s.MockResult(question)
		hit := s.answerHit(mock, "คำตอบจำลอง: "+question, "mock-result")
		return []Hit{hit}
	}

	s.logger.Error("search failed", "err", err)

	return []Hit{{
		ID:          fmt.Sprint(s.now().UnixMilli()),
		Title:       "เกิดข้อผิดพลาดในการค้นหา",
		Content:     err.Error(),
		Category:    "error",
		FileType:    "error",
		LastUpdated: s.now(),
		SearchType:  "error",
		Highlights:  []string{},
		IsError:     true,
	}}
}

var cannedAnswers = map[string]string{
	"hello":   "สวัสดีครับ! ยินดีต้อนรับสู่ระบบค้นหาข้อมูล คุณสามารถถามคำถามเกี่ยวกับเอกสาร นโยบาย หรือข้อมูลต่างๆ ได้",
	"test":    "ระบบทำงานปกติ คุณสามารถค้นหาข้อมูลได้ตามปกติ",
	"weather": "ขออภัย ระบบนี้ไม่มีข้อมูลสภาพอากาศ แต่สามารถค้นหาข้อมูลเอกสารและนโยบายต่างๆ ได้",
}

// MockResult is the canned answer used while the upstream is failing.
func (s *Service) MockResult(query string) Result {
	answer, ok := cannedAnswers[strings.ToLower(query)]
	if !ok {
		answer = fmt.Sprintf("ขออภัย ขณะนี้ระบบ AI Search API กำลังมีปัญหาชั่วคราว\n\nสำหรับคำถาม: \"%s\"\n\n"+
			"กรุณาลองใหม่อีกครั้งในภายหลัง หรือใช้ฟีเจอร์ค้นหาเอกสารแทน", query)
	}

	return Result{
		Answer:    answer,
		Question:  query,
		Timestamp: s.now(),
		Mock:      true,
	}
}

func (s *Service) answerHit(r Result, title, category string) Hit {
	return Hit{
		ID:             fmt.Sprint(r.Timestamp.UnixMilli()),
		Title:          title,
		Content:        r.Answer,
		Category:       category,
		FileType:       "api-response",
		LastUpdated:    r.Timestamp,
		RelevanceScore: 1.0,
		SearchType:     "api",
		Highlights:     []string{r.Question},
	}
}
