package content

import (
	"context"
	"time"
)

// NotFoundContent is returned in place of an error for unknown documents.
const NotFoundContent = "ไม่พบเนื้อหาไฟล์"

type Content struct {
	Content string `json:"content"`
}

type Source interface {
	Fetch(ctx context.Context, id string) (Content, error)
}

// MemorySource serves documents from a fixed table after an optional delay.
type MemorySource struct {
	docs  map[string]string
	delay time.Duration
}

func NewMemorySource(docs map[string]string, delay time.Duration) *MemorySource {
	cp := make(map[string]string, len(docs))
	for k, v := range docs {
		cp[k] = v
	}
	return &MemorySource{
		docs:  cp,
		delay: delay,
	}
}

func (m *MemorySource) Fetch(ctx context.Context, id string) (Content, error) {
	if m.delay > 0 {
		t := time.NewTimer(m.delay)
		defer t.Stop()

		select {
		case <-t.C:
		case <-ctx.Done():
			return Content{}, ctx.Err()
		}
	}

	c, ok := m.docs[id]
	if !ok {
		return Content{Content: NotFoundContent}, nil
	}
	return Content{Content: c}, nil
}
