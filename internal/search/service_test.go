package search

import (
	"context"
	"errors"
	"testing"
	"time"

	"kbportal/internal/ai"
	"kbportal/internal/mocks"
	"kbportal/internal/observability"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2024, 1, 20, 12, 0, 0, 0, time.UTC)

func newTestService(t *testing.T) (*Service, *mocks.Provider) {
	p := mocks.NewProvider(t)
	s := NewService(p, SeedIndex(), observability.NewNopLogger())
	s.now = func() time.Time { return fixedNow }
	return s, p
}

func TestSearchEmptyQuestion(t *testing.T) {
	s, _ := newTestService(t)

	_, err := s.Search(context.Background(), "  ")
	require.ErrorIs(t, err, ErrEmptyQuestion)
}

func TestSearchEmptyAnswer(t *testing.T) {
	s, p := newTestService(t)
	p.EXPECT().
		Answer(mock.Anything, ai.Request{Question: "ลาป่วย"}).
		Return(ai.Answer{}, nil).
		Once()

	r, err := s.Search(context.Background(), " ลาป่วย ")
	require.NoError(t, err)
	require.Equal(t, noAnswer, r.Answer)
	require.Equal(t, "ลาป่วย", r.Question)
	require.Equal(t, fixedNow, r.Timestamp)
}

func TestPerformSuccess(t *testing.T) {
	s, p := newTestService(t)
	p.EXPECT().
		Answer(mock.Anything, mock.Anything).
		Return(ai.Answer{Text: "ลาได้ 10 วัน"}, nil).
		Once()

	hits := s.Perform(context.Background(), "ลาพักร้อน")
	require.Len(t, hits, 1)
	require.Equal(t, "คำตอบสำหรับ: ลาพักร้อน", hits[0].Title)
	require.Equal(t, "ลาได้ 10 วัน", hits[0].Content)
	require.Equal(t, "api", hits[0].SearchType)
	require.False(t, hits[0].IsError)
}

func TestPerformServerErrorUsesCannedAnswer(t *testing.T) {
	s, p := newTestService(t)
	p.EXPECT().
		Answer(mock.Anything, mock.Anything).
		Return(ai.Answer{}, &ai.StatusError{Code: 503}).
		Once()

	hits := s.Perform(context.Background(), "hello")
	require.Len(t, hits, 1)
	require.Equal(t, "คำตอบจำลอง: hello", hits[0].Title)
	require.Equal(t, "mock-result", hits[0].Category)
	require.Equal(t, cannedAnswers["hello"], hits[0].Content)
}

func TestPerformClientErrorIsReported(t *testing.T) {
	s, p := newTestService(t)
	p.EXPECT().
		Answer(mock.Anything, mock.Anything).
		Return(ai.Answer{}, errors.New("connection refused")).
		Once()

	hits := s.Perform(context.Background(), "hello")
	require.Len(t, hits, 1)
	require.True(t, hits[0].IsError)
	require.Contains(t, hits[0].Content, "connection refused")
}

func TestMockResultDefault(t *testing.T) {
	s, _ := newTestService(t)

	r := s.MockResult("อะไรก็ได้")
	require.True(t, r.Mock)
	require.Contains(t, r.Answer, `"อะไรก็ได้"`)
}

func TestDocuments(t *testing.T) {
	s, _ := newTestService(t)

	tests := []struct {
		name    string
		filters Filters
		want    []string
	}{
		{"default relevance", Filters{}, []string{"1", "2", "3"}},
		{"category", Filters{Category: "credit"}, []string{"2"}},
		{"all category", Filters{Category: "all"}, []string{"1", "2", "3"}},
		{"file type", Filters{FileType: "document"}, []string{"3"}},
		{"seven days", Filters{DateRange: "7days"}, []string{"1"}},
		{"thirty days", Filters{DateRange: "30days"}, []string{"1", "2", "3"}},
		{"title", Filters{SortBy: "title"}, []string{"2", "1", "3"}},
		{"date", Filters{SortBy: "date", Category: "all"}, []string{"1", "2", "3"}},
		{"category sort", Filters{SortBy: "category"}, []string{"2", "1", "3"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hits, err := s.Documents(tt.filters)
			require.NoError(t, err)

			ids := make([]string, len(hits))
			for i, h := range hits {
				ids[i] = h.ID
			}
			require.Equal(t, tt.want, ids)
		})
	}
}

func TestDocumentsRejectsUnknownFilters(t *testing.T) {
	s, _ := newTestService(t)

	_, err := s.Documents(Filters{DateRange: "decade"})
	require.Error(t, err)

	_, err = s.Documents(Filters{SortBy: "size"})
	require.Error(t, err)
}

func TestRelatedQuestions(t *testing.T) {
	require.Equal(t, "วิธีการขอลาป่วยฉุกเฉินต้องทำอย่างไร?", RelatedQuestions("ลาพักร้อน", 5)[0])
	require.Equal(t, "เอกสารที่ต้องใช้ในการขอสินเชื่อมีอะไรบ้าง?", RelatedQuestions("สินเชื่อบ้าน", 5)[0])
	require.Equal(t, "วันหยุดชดเชยจะประกาศเมื่อไหร่?", RelatedQuestions("วันหยุด", 5)[0])
	require.Equal(t, "วิธีการรีเซ็ตรหัสผ่านระบบทำอย่างไร?", RelatedQuestions("IT support", 5)[0])
	require.Equal(t, genericRelated, RelatedQuestions("xyz", 5))
	require.Len(t, RelatedQuestions("xyz", 2), 2)
}

func TestCompareHolidays(t *testing.T) {
	_, err := CompareHolidays("2568", "")
	require.ErrorIs(t, err, ErrMissingYear)

	changes, err := CompareHolidays("2568", "2569")
	require.NoError(t, err)
	require.Len(t, changes, 4)

	kinds := map[string]int{}
	for _, c := range changes {
		kinds[c.Kind]++
	}
	require.Equal(t, map[string]int{"unchanged": 1, "modified": 1, "added": 1, "removed": 1}, kinds)
	require.Nil(t, changes[2].Dates.Year1)
	require.Nil(t, changes[3].Dates.Year2)
}
