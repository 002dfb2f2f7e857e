package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"uae-chat/internal/chat"
)

// wsRequest is one client frame. Type is "message", "quick_reply", "clear" or "language".
type wsRequest struct {
	Type     string `json:"type"`
	Text     string `json:"text,omitempty"`
	Index    int    `json:"index,omitempty"`
	Language string `json:"language,omitempty"`
}

// wsResponse is one server frame. Type is "messages", "reply" or "error".
type wsResponse struct {
	Type     string         `json:"type"`
	Reply    *chat.Message  `json:"reply,omitempty"`
	Messages []chat.Message `json:"messages,omitempty"`
	Error    string         `json:"error,omitempty"`
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

var errUnknownFrame = errors.New("unknown frame type")

func (s *Server) handleWebSocket(c *gin.Context) {
	sess, ok := s.session(c)
	if !ok {
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		s.logger.Printf("error upgrading connection: %v", err)
		return
	}
	defer conn.Close()

	sess.Attach()
	defer sess.Detach()

	if err := conn.WriteJSON(wsResponse{Type: "messages", Messages: sess.Messages()}); err != nil {
		s.logger.Printf("error sending initial messages: %v", err)
		return
	}

	ctx := c.Request.Context()
	for {
		var req wsRequest
		if err := conn.ReadJSON(&req); err != nil {
			if !websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				s.logger.Printf("connection closed for session %s: %v", sess.ID(), err)
			}
			return
		}

		// the registry may have dropped the session on shutdown
		if _, err := s.registry.Get(sess.ID()); err != nil {
			conn.WriteJSON(wsResponse{Type: "error", Error: err.Error()})
			return
		}

		if err := conn.WriteJSON(s.dispatch(c, sess, req)); err != nil {
			s.logger.Printf("error writing frame: %v", err)
			return
		}
		if ctx.Err() != nil {
			return
		}
	}
}

// dispatch runs one frame against the session; errors become error frames
func (s *Server) dispatch(c *gin.Context, sess *chat.Session, req wsRequest) wsResponse {
	ctx := c.Request.Context()

	var msg chat.Message
	var err error
	switch req.Type {
	case "message":
		msg, err = sess.Send(ctx, req.Text)
	case "quick_reply":
		qr, qerr := quickReplyAt(req.Index)
		if qerr != nil {
			return wsResponse{Type: "error", Error: qerr.Error()}
		}
		msg, err = sess.QuickReply(ctx, qr)
	case "language":
		msg, err = sess.SwitchLanguage(req.Language)
	case "clear":
		if err := sess.Clear(ctx); err != nil && errors.Is(err, chat.ErrBusy) {
			return wsResponse{Type: "error", Error: err.Error()}
		} else if err != nil {
			s.logger.Printf("error clearing session: %v", err)
		}
		return wsResponse{Type: "messages", Messages: sess.Messages()}
	default:
		err = errUnknownFrame
	}

	if err != nil {
		return wsResponse{Type: "error", Error: err.Error()}
	}
	return wsResponse{Type: "reply", Reply: &msg}
}
