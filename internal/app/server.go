package app

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"kbportal/internal/ai"
	"kbportal/internal/chat"
	"kbportal/internal/comparison"
	"kbportal/internal/config"
	"kbportal/internal/content"
	"kbportal/internal/dedup"
	"kbportal/internal/observability"
	"kbportal/internal/ratelimit"
	"kbportal/internal/search"
	"kbportal/internal/worker"
)

type Server struct {
	cfg    *config.Config
	logger *observability.Logger
	http   *http.Server

	catalog    *content.Catalog
	source     content.Source
	comparison *comparison.Service
	viewer     *comparison.Viewer
	chat       *chat.Service
	search     *search.Service
	feedback   *worker.Adapter
	feedbacks  *worker.MemoryLog
	processor  *worker.Processor
	limiter    *ratelimit.Limiter

	closers []io.Closer
}

func NewServer(cfg *config.Config, logger *observability.Logger) (*Server, error) {

	s := &Server{
		cfg:    cfg,
		logger: logger,
	}

	if err := s.wire(); err != nil {
		return nil, err
	}

	s.http = &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      s.routes(),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 20 * time.Second,
	}

	return s, nil
}

// wire builds the services the handlers share.
func (s *Server) wire() error {

	src, err := content.NewSource(s.cfg, s.logger)
	if err != nil {
		return fmt.Errorf("content source: %w", err)
	}
	s.source = src
	s.track(src)

	if rs, ok := src.(*content.RedisSource); ok {
		s.seedRedis(rs)
	}

	s.catalog = content.NewCatalog(content.SeedDocuments())
	s.comparison = comparison.NewService(src, s.logger)
	s.viewer = comparison.NewViewer(s.comparison)

	chatProvider := "rules"
	if s.cfg.SearchAPIURL != "" {
		chatProvider = "remote"
	}
	s.chat = chat.NewService(
		ai.NewProvider(s.cfg, ai.NewChatEngine()),
		chatProvider,
		s.cfg.ChatHistorySize,
		s.logger,
	)

	// search needs to see upstream failures to fall back to canned answers
	answers := ai.NewUpstream(s.cfg)
	if answers == nil {
		answers = ai.Instrument(ai.NewAnswerEngine(), "rules")
	}
	s.search = search.NewService(answers, search.SeedIndex(), s.logger)

	queue := worker.NewQueue(s.cfg)
	s.track(queue)

	var seen dedup.Store = dedup.NewMemory()
	if s.cfg.QueueType == "redis" {
		rd := dedup.NewRedis(s.cfg.RedisAddr, "kbportal:feedback:", 24*time.Hour)
		s.track(rd)
		seen = rd
	}

	s.feedback = worker.NewAdapter(queue)
	s.feedbacks = worker.NewMemoryLog(1000)
	s.processor = worker.NewProcessor(queue, seen, s.feedbacks, s.logger)

	s.limiter = ratelimit.New(s.cfg.RateLimitRPS, s.cfg.RateLimitBurst)

	observability.InitMetrics()

	return nil
}

// seedRedis fills missing document keys so a fresh redis serves the catalog.
func (s *Server) seedRedis(rs *content.RedisSource) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	n, err := rs.Seed(ctx, content.SeedContent(), false)
	if err != nil {
		s.logger.Warn("seed redis content failed", "err", err)
		return
	}
	s.logger.Info("redis content seeded", "written", n)
}

func (s *Server) track(v any) {
	if c, ok := v.(io.Closer); ok {
		s.closers = append(s.closers, c)
	}
}

// Handler exposes the routed handler for tests and embedding.
func (s *Server) Handler() http.Handler {
	return s.http.Handler
}

const shutdownTimeout = 10 * time.Second

// Start serves until ctx is cancelled or the listener fails. It returns
// once in-flight requests finished and the feedback processor stopped, so
// Close may release backends afterwards.
func (s *Server) Start(ctx context.Context) error {

	pctx, stopProcessor := context.WithCancel(ctx)
	defer stopProcessor()
	s.processor.Start(pctx)

	go func() {
		<-pctx.Done()
		sctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		_ = s.http.Shutdown(sctx)
	}()

	s.logger.Info("starting server",
		"port", s.cfg.Port,
		"env", s.cfg.Env,
		"content", s.cfg.ContentSource,
	)

	err := s.http.ListenAndServe()

	stopProcessor()
	select {
	case <-s.processor.Done():
	case <-time.After(shutdownTimeout):
		s.logger.Warn("feedback processor did not stop in time")
	}

	if err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("listen: %w", err)
	}

	return nil
}

// Close releases backend connections and watchers.
func (s *Server) Close() error {
	var first error
	for _, c := range s.closers {
		if err := c.Close(); err != nil && first == nil {
			first = err
		}
	}
	return first
}

func (s *Server) health(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}
