package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const (
	noAnswer          = "ขออภัย ไม่สามารถสร้างคำตอบได้ในขณะนี้"
	defaultConfidence = 0.85
)

// StatusError is returned for non-2xx upstream responses.
type StatusError struct {
	Code int
	Body string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("search api status %d: %s", e.Code, e.Body)
}

// Server reports whether the upstream failed on its side.
func (e *StatusError) Server() bool {
	return e.Code >= 500
}

// RemoteProvider asks the upstream search API, which takes {"question"}
// and replies with {"answer"}.
type RemoteProvider struct {
	url    string
	client *http.Client
}

func NewRemote(url string, timeout time.Duration) *RemoteProvider {
	return &RemoteProvider{
		url: url,
		client: &http.Client{
			Timeout: timeout,
		},
	}
}

type remoteRequest struct {
	Question string     `json:"question"`
	Context  []Exchange `json:"context,omitempty"`
}

type remoteResponse struct {
	Answer     string   `json:"answer"`
	Confidence float64  `json:"confidence"`
	Sources    []string `json:"sources"`
}

func (p *RemoteProvider) Answer(ctx context.Context, r Request) (Answer, error) {
	b, err := json.Marshal(remoteRequest{
		Question: r.Question,
		Context:  r.Context,
	})
	if err != nil {
		return Answer{}, fmt.Errorf("marshal search request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.url, bytes.NewReader(b))
	if err != nil {
		return Answer{}, fmt.Errorf("build search request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	res, err := p.client.Do(req)
	if err != nil {
		return Answer{}, err
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		msg, _ := io.ReadAll(io.LimitReader(res.Body, 4096))
		return Answer{}, &StatusError{Code: res.StatusCode, Body: string(msg)}
	}

	var out remoteResponse
	if err := json.NewDecoder(res.Body).Decode(&out); err != nil {
		return Answer{}, fmt.Errorf("decode search response: %w", err)
	}

	a := Answer{
		Text:       out.Answer,
		Confidence: out.Confidence,
		Sources:    out.Sources,
		Provider:   "remote",
	}
	if a.Text == "" {
		a.Text = noAnswer
	}
	if a.Confidence == 0 {
		a.Confidence = defaultConfidence
	}
	if a.Sources == nil {
		a.Sources = []string{}
	}

	return a, nil
}
