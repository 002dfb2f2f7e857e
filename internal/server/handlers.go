package server

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"uae-chat/internal/chat"
	"uae-chat/internal/common"
	"uae-chat/internal/responses"
)

const (
	defaultSuggestionLimit = 5
	maxSuggestionLimit     = 20
	defaultHistoryLimit    = 10
	maxHistoryLimit        = 100
)

type createSessionRequest struct {
	Language string `json:"language"`
}

type sendRequest struct {
	Text string `json:"text" binding:"required"`
}

type quickReplyRequest struct {
	Index *int `json:"index" binding:"required"`
}

type languageRequest struct {
	Language string `json:"language" binding:"required"`
}

type sessionResponse struct {
	ID       string         `json:"id"`
	Language string         `json:"language"`
	Messages []chat.Message `json:"messages"`
}

type replyResponse struct {
	Reply chat.Message `json:"reply"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func abortWithError(c *gin.Context, code int, err error) {
	c.AbortWithStatusJSON(code, errorResponse{Error: err.Error()})
}

// statusFor maps session errors onto HTTP status codes
func statusFor(err error) int {
	switch {
	case errors.Is(err, chat.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, chat.ErrBusy):
		return http.StatusConflict
	case errors.Is(err, chat.ErrEmptyMessage), errors.Is(err, chat.ErrUnsupportedLanguage):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// session resolves :id or writes a 404
func (s *Server) session(c *gin.Context) (*chat.Session, bool) {
	sess, err := s.registry.Get(c.Param("id"))
	if err != nil {
		abortWithError(c, statusFor(err), err)
		return nil, false
	}
	return sess, true
}

func queryInt(c *gin.Context, key string, def, max int) int {
	n, err := strconv.Atoi(c.Query(key))
	if err != nil {
		return def
	}
	return common.ClampInt(n, 1, max)
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "sessions": s.registry.Len()})
}

func (s *Server) handleQuickReplies(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"quick_replies": responses.QuickReplies()})
}

func (s *Server) handleSuggestions(c *gin.Context) {
	limit := queryInt(c, "limit", defaultSuggestionLimit, maxSuggestionLimit)
	c.JSON(http.StatusOK, gin.H{"suggestions": s.complete.Autocomplete(c.Query("q"), limit)})
}

func (s *Server) handleHistory(c *gin.Context) {
	if s.store == nil {
		c.JSON(http.StatusOK, gin.H{"transcripts": []chat.Transcript{}})
		return
	}
	limit := queryInt(c, "limit", defaultHistoryLimit, maxHistoryLimit)
	list, err := s.store.List(c.Request.Context(), limit)
	if err != nil {
		s.logger.Printf("error listing history: %v", err)
		abortWithError(c, http.StatusInternalServerError, err)
		return
	}
	if list == nil {
		list = []chat.Transcript{}
	}
	c.JSON(http.StatusOK, gin.H{"transcripts": list})
}

func (s *Server) handleCreateSession(c *gin.Context) {
	var req createSessionRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			abortWithError(c, http.StatusBadRequest, err)
			return
		}
	}
	lang := req.Language
	if lang == "" {
		lang = s.language
	}
	if !responses.IsSupportedLanguage(lang) {
		abortWithError(c, http.StatusBadRequest, chat.ErrUnsupportedLanguage)
		return
	}

	sess := s.registry.Create(lang)
	c.JSON(http.StatusCreated, sessionResponse{
		ID:       sess.ID(),
		Language: sess.Language(),
		Messages: sess.Messages(),
	})
}

func (s *Server) handleMessages(c *gin.Context) {
	sess, ok := s.session(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, sessionResponse{
		ID:       sess.ID(),
		Language: sess.Language(),
		Messages: sess.Messages(),
	})
}

func (s *Server) handleSend(c *gin.Context) {
	sess, ok := s.session(c)
	if !ok {
		return
	}
	var req sendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, err)
		return
	}

	msg, err := sess.Send(c.Request.Context(), req.Text)
	if err != nil {
		abortWithError(c, statusFor(err), err)
		return
	}
	c.JSON(http.StatusOK, replyResponse{Reply: msg})
}

func (s *Server) handleQuickReply(c *gin.Context) {
	sess, ok := s.session(c)
	if !ok {
		return
	}
	var req quickReplyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, err)
		return
	}
	qr, err := quickReplyAt(*req.Index)
	if err != nil {
		abortWithError(c, http.StatusBadRequest, err)
		return
	}

	msg, err := sess.QuickReply(c.Request.Context(), qr)
	if err != nil {
		abortWithError(c, statusFor(err), err)
		return
	}
	c.JSON(http.StatusOK, replyResponse{Reply: msg})
}

func (s *Server) handleClear(c *gin.Context) {
	sess, ok := s.session(c)
	if !ok {
		return
	}
	if err := sess.Clear(c.Request.Context()); err != nil {
		if errors.Is(err, chat.ErrBusy) {
			abortWithError(c, http.StatusConflict, err)
			return
		}
		// the session is already reset; only the archive failed
		s.logger.Printf("error clearing session: %v", err)
	}
	c.JSON(http.StatusOK, sessionResponse{
		ID:       sess.ID(),
		Language: sess.Language(),
		Messages: sess.Messages(),
	})
}

func (s *Server) handleLanguage(c *gin.Context) {
	sess, ok := s.session(c)
	if !ok {
		return
	}
	var req languageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, err)
		return
	}
	msg, err := sess.SwitchLanguage(req.Language)
	if err != nil {
		abortWithError(c, statusFor(err), err)
		return
	}
	c.JSON(http.StatusOK, replyResponse{Reply: msg})
}

var errQuickReplyRange = errors.New("quick reply index out of range")

func quickReplyAt(i int) (responses.QuickReply, error) {
	all := responses.QuickReplies()
	if i < 0 || i >= len(all) {
		return responses.QuickReply{}, errQuickReplyRange
	}
	return all[i], nil
}
