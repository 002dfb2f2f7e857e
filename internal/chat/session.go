package chat

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"uae-chat/internal/analyzer"
	"uae-chat/internal/common"
	"uae-chat/internal/responses"
	"uae-chat/internal/router"
)

var (
	// ErrBusy is returned while a previous message is still being answered
	ErrBusy = errors.New("session is busy answering a previous message")
	// ErrEmptyMessage is returned for blank input
	ErrEmptyMessage = errors.New("message is empty")
	// ErrUnsupportedLanguage is returned by SwitchLanguage
	ErrUnsupportedLanguage = errors.New("unsupported language")
)

// Responder produces the bot's reply to a user message
type Responder interface {
	Route(ctx context.Context, query, category string) router.Reply
}

// Archiver stores transcripts of cleared or closed sessions
type Archiver interface {
	Save(ctx context.Context, t Transcript) error
}

// Session is a single user's conversation. Messages are append-only until
// Clear; only one message is answered at a time.
type Session struct {
	mu         sync.Mutex
	id         string
	convID     string
	language   string
	startedAt  time.Time
	lastActive time.Time
	messages   []Message
	busy       bool
	attached   int

	responder Responder
	archiver  Archiver
	logger    *log.Logger
	now       func() time.Time
}

// NewSession starts a session with the welcome message for lang. archiver may be nil.
func NewSession(responder Responder, archiver Archiver, lang string, logger *log.Logger) *Session {
	if !responses.IsSupportedLanguage(lang) {
		lang = responses.LanguageEnglish
	}
	s := &Session{
		id:        uuid.New().String(),
		language:  lang,
		responder: responder,
		archiver:  archiver,
		logger:    common.OrDiscard(logger),
		now:       time.Now,
	}
	s.reset()
	return s
}

// reset starts a new conversation with only the welcome message (must be called with lock held)
func (s *Session) reset() {
	now := s.now()
	s.convID = uuid.New().String()
	s.startedAt = now
	s.lastActive = now
	s.messages = []Message{s.botMessage(responses.Welcome(s.language), analyzer.CategoryGeneral, "")}
}

func (s *Session) botMessage(text, category, source string) Message {
	return Message{
		ID:        uuid.New().String(),
		Text:      text,
		IsUser:    false,
		Timestamp: s.now(),
		Category:  category,
		Source:    source,
	}
}

// ID returns the session id
func (s *Session) ID() string {
	return s.id
}

// Language returns the current interface language
func (s *Session) Language() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.language
}

// Busy reports whether a message is being answered
func (s *Session) Busy() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.busy
}

// Attach marks a live connection on the session. Attached sessions are
// never reaped. Every Attach must be paired with a Detach.
func (s *Session) Attach() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.attached++
}

// Detach releases a connection taken with Attach and counts as activity
func (s *Session) Detach() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.attached > 0 {
		s.attached--
	}
	s.lastActive = s.now()
}

// Attached reports whether any connection holds the session
func (s *Session) Attached() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.attached > 0
}

// LastActive returns the time of the most recent message
func (s *Session) LastActive() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastActive
}

// Messages returns a copy of the conversation
func (s *Session) Messages() []Message {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Message, len(s.messages))
	copy(out, s.messages)
	return out
}

// Send records text as a user message and appends the bot's reply
func (s *Session) Send(ctx context.Context, text string) (Message, error) {
	return s.ask(ctx, text, text, "")
}

// QuickReply sends a preset prompt: the label is shown, the query is answered
func (s *Session) QuickReply(ctx context.Context, reply responses.QuickReply) (Message, error) {
	return s.ask(ctx, reply.Text, reply.Query, reply.Category)
}

func (s *Session) ask(ctx context.Context, shown, query, category string) (Message, error) {
	shown = strings.TrimSpace(shown)
	query = strings.TrimSpace(query)
	if shown == "" || query == "" {
		return Message{}, ErrEmptyMessage
	}

	s.mu.Lock()
	if s.busy {
		s.mu.Unlock()
		return Message{}, ErrBusy
	}
	s.busy = true
	s.messages = append(s.messages, Message{
		ID:        uuid.New().String(),
		Text:      shown,
		IsUser:    true,
		Timestamp: s.now(),
	})
	s.lastActive = s.now()
	s.mu.Unlock()

	// a panicking responder must not leave the session busy
	defer func() {
		s.mu.Lock()
		s.busy = false
		s.mu.Unlock()
	}()

	reply := s.responder.Route(ctx, query, category)

	s.mu.Lock()
	defer s.mu.Unlock()
	msg := s.botMessage(reply.Text, reply.Category, reply.Source)
	s.messages = append(s.messages, msg)
	s.lastActive = s.now()
	return msg, nil
}

// SwitchLanguage changes the interface language and notes it in the chat
func (s *Session) SwitchLanguage(lang string) (Message, error) {
	if !responses.IsSupportedLanguage(lang) {
		return Message{}, fmt.Errorf("%w: %q", ErrUnsupportedLanguage, lang)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.language = lang
	msg := s.botMessage("Language switched to "+responses.LanguageName(lang), analyzer.CategoryGeneral, "")
	s.messages = append(s.messages, msg)
	s.lastActive = s.now()
	return msg, nil
}

// Transcript snapshots the conversation
func (s *Session) Transcript() Transcript {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.transcriptLocked()
}

func (s *Session) transcriptLocked() Transcript {
	msgs := make([]Message, len(s.messages))
	copy(msgs, s.messages)
	return Transcript{
		ID:        s.convID,
		SessionID: s.id,
		Language:  s.language,
		StartedAt: s.startedAt,
		EndedAt:   s.now(),
		Messages:  msgs,
	}
}

// Archive saves the transcript if the user said anything
func (s *Session) Archive(ctx context.Context) error {
	return s.archive(ctx, s.Transcript())
}

func (s *Session) archive(ctx context.Context, t Transcript) error {
	if s.archiver == nil || t.UserMessages() == 0 {
		return nil
	}
	if err := s.archiver.Save(ctx, t); err != nil {
		return fmt.Errorf("failed to archive session %s: %w", s.id, err)
	}
	s.logger.Printf("archived session %s (%d messages)", s.id, len(t.Messages))
	return nil
}

// Clear archives the conversation and starts over with the welcome message
func (s *Session) Clear(ctx context.Context) error {
	s.mu.Lock()
	if s.busy {
		s.mu.Unlock()
		return ErrBusy
	}
	t := s.transcriptLocked()
	s.reset()
	s.mu.Unlock()

	return s.archive(ctx, t)
}
