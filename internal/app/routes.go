package app

import (
	"net/http"

	"kbportal/internal/auth"

	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func (s *Server) routes() http.Handler {

	api := http.NewServeMux()

	api.HandleFunc("POST /api/search", s.handleSearch)
	api.HandleFunc("POST /api/search/perform", s.handlePerform)
	api.HandleFunc("GET /api/search/documents", s.handleSearchDocuments)
	api.HandleFunc("GET /api/holidays/compare", s.handleHolidays)

	api.HandleFunc("GET /api/documents", s.handleDocuments)
	api.HandleFunc("GET /api/documents/{id}", s.handleDocument)
	api.HandleFunc("GET /api/documents/{id}/content", s.handleDocumentText)

	api.HandleFunc("GET /api/compare", s.handleCompare)
	api.HandleFunc("GET /api/compare/patch", s.handlePatch)
	api.HandleFunc("POST /api/compare/select", s.handleSelect)
	api.HandleFunc("GET /api/compare/current", s.handleCurrent)

	api.HandleFunc("POST /api/chat", s.handleChat)
	api.HandleFunc("GET /api/chat/history", s.handleHistory)
	api.HandleFunc("DELETE /api/chat/history", s.handleClearHistory)
	api.HandleFunc("GET /api/chat/suggestions", s.handleSuggestions)
	api.HandleFunc("GET /api/chat/info", s.handleChatInfo)

	api.HandleFunc("POST /api/ai/related-questions", s.handleRelated)
	api.HandleFunc("POST /api/ai/feedback", s.handleFeedback)
	api.HandleFunc("GET /api/ai/feedback/stats", s.handleFeedbackStats)

	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", s.health)
	mux.Handle("GET /metrics", promhttp.Handler())
	mux.Handle("/api/", s.rateLimit(auth.Middleware(s.cfg.AuthSecret, s.logger)(api)))

	return mux
}
