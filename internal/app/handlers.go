package app

import (
	"errors"
	"net/http"

	"kbportal/internal/ai"
	"kbportal/internal/chat"
	"kbportal/internal/compare"
	"kbportal/internal/comparison"
	"kbportal/internal/content"
	"kbportal/internal/search"
	"kbportal/internal/worker"
)

type questionRequest struct {
	Question string `json:"question"`
}

func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	var req questionRequest
	if err := decode(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	res, err := s.search.Search(r.Context(), req.Question)
	if err != nil {
		var se *ai.StatusError
		switch {
		case errors.Is(err, search.ErrEmptyQuestion):
			writeError(w, http.StatusBadRequest, err.Error())
		case errors.As(err, &se):
			writeJSON(w, se.Code, map[string]any{
				"error":   "API Error",
				"status":  se.Code,
				"details": se.Body,
			})
		default:
			s.logger.Error("search failed", "err", err)
			writeError(w, http.StatusInternalServerError, err.Error())
		}
		return
	}

	writeJSON(w, http.StatusOK, res)
}

func (s *Server) handlePerform(w http.ResponseWriter, r *http.Request) {
	var req questionRequest
	if err := decode(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"results": s.search.Perform(r.Context(), req.Question),
	})
}

func (s *Server) handleSearchDocuments(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	hits, err := s.search.Documents(search.Filters{
		Category:  q.Get("category"),
		FileType:  q.Get("fileType"),
		DateRange: q.Get("dateRange"),
		SortBy:    q.Get("sortBy"),
	})
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"results": hits})
}

func (s *Server) handleHolidays(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	changes, err := search.CompareHolidays(q.Get("year1"), q.Get("year2"))
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"results": changes})
}

func (s *Server) handleDocuments(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	writeJSON(w, http.StatusOK, map[string]any{
		"documents": s.catalog.Filter(q.Get("q"), q.Get("category")),
	})
}

func (s *Server) handleDocument(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	doc, ok := s.catalog.Get(id)
	if !ok {
		writeError(w, http.StatusNotFound, "document not found")
		return
	}

	c, err := s.source.Fetch(r.Context(), id)
	if err != nil {
		s.logger.Error("fetch document failed", "id", id, "err", err)
		writeError(w, http.StatusBadGateway, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, struct {
		content.Document
		Content string `json:"content"`
	}{doc, c.Content})
}

// handleDocumentText serves the full body as plain text for copying.
func (s *Server) handleDocumentText(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	if _, ok := s.catalog.Get(id); !ok {
		writeError(w, http.StatusNotFound, "document not found")
		return
	}

	c, err := s.source.Fetch(r.Context(), id)
	if err != nil {
		s.logger.Error("fetch document failed", "id", id, "err", err)
		writeError(w, http.StatusBadGateway, err.Error())
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(c.Content))
}

type compareResponse struct {
	compare.Result
	View compare.View `json:"view"`
}

func (s *Server) handleCompare(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	mode, err := compare.ParseMode(q.Get("mode"))
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	res, err := s.comparison.Compare(r.Context(), q.Get("left"), q.Get("right"))
	if err != nil {
		s.comparisonError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, compareResponse{
		Result: res,
		View:   compare.Render(res.Records, mode),
	})
}

func (s *Server) handlePatch(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	patch, err := s.comparison.Patch(r.Context(), q.Get("left"), q.Get("right"))
	if err != nil {
		s.comparisonError(w, err)
		return
	}

	w.Header().Set("Content-Type", "text/x-diff; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(patch))
}

type selectRequest struct {
	Left  string `json:"left"`
	Right string `json:"right"`
	Mode  string `json:"mode"`
}

func (s *Server) handleSelect(w http.ResponseWriter, r *http.Request) {
	var req selectRequest
	if err := decode(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	mode, err := compare.ParseMode(req.Mode)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	sel, err := s.viewer.Select(r.Context(), req.Left, req.Right)
	if err != nil {
		s.comparisonError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, compareResponse{
		Result: sel.Result,
		View:   compare.Render(sel.Result.Records, mode),
	})
}

func (s *Server) handleCurrent(w http.ResponseWriter, r *http.Request) {
	sel, ok := s.viewer.Current()
	if !ok {
		writeError(w, http.StatusNotFound, "no comparison selected")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"left":   sel.LeftID,
		"right":  sel.RightID,
		"result": sel.Result,
	})
}

func (s *Server) comparisonError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, comparison.ErrMissingDocument):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, comparison.ErrStale):
		writeError(w, http.StatusConflict, err.Error())
	default:
		writeError(w, http.StatusBadGateway, err.Error())
	}
}

type chatRequest struct {
	Message        string `json:"message"`
	IncludeHistory bool   `json:"includeHistory"`
}

func (s *Server) handleChat(w http.ResponseWriter, r *http.Request) {
	var req chatRequest
	if err := decode(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	reply, err := s.chat.Send(r.Context(), req.Message, req.IncludeHistory)
	if err != nil {
		if errors.Is(err, chat.ErrEmptyMessage) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		writeError(w, http.StatusBadGateway, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, reply)
}

func (s *Server) handleHistory(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"history": s.chat.History()})
}

func (s *Server) handleClearHistory(w http.ResponseWriter, r *http.Request) {
	s.chat.Clear()
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleSuggestions(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"suggestions": chat.SuggestedQuestions()})
}

func (s *Server) handleChatInfo(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.chat.Info())
}

func (s *Server) handleRelated(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Query string `json:"query"`
	}
	if err := decode(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"questions": search.RelatedQuestions(req.Query, 5),
	})
}

type feedbackRequest struct {
	Query        string `json:"query"`
	Answer       string `json:"answer"`
	FeedbackType string `json:"feedbackType"`
	Comment      string `json:"comment"`
}

func (s *Server) handleFeedback(w http.ResponseWriter, r *http.Request) {
	var req feedbackRequest
	if err := decode(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	err := s.feedback.Submit(r.Context(), req.Query, req.Answer, req.FeedbackType, req.Comment)
	if err != nil {
		if errors.Is(err, worker.ErrInvalidFeedback) || errors.Is(err, worker.ErrMissingQuery) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		s.logger.Error("enqueue feedback failed", "err", err)
		writeError(w, http.StatusServiceUnavailable, "feedback queue unavailable")
		return
	}

	writeJSON(w, http.StatusAccepted, map[string]string{"status": "accepted"})
}

func (s *Server) handleFeedbackStats(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.feedbacks.Counts())
}
