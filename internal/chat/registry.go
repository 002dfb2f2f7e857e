package chat

import (
	"context"
	"errors"
	"log"
	"sync"
	"time"

	"uae-chat/internal/common"
)

// ErrNotFound is returned for unknown session ids
var ErrNotFound = errors.New("session not found")

// Registry tracks live sessions by id and evicts idle ones
type Registry struct {
	mu       sync.RWMutex
	sessions map[string]*Session

	responder Responder
	archiver  Archiver
	idle      time.Duration
	logger    *log.Logger
	now       func() time.Time
}

// NewRegistry creates an empty registry. Sessions idle for longer than idle
// are archived and dropped by Reap.
func NewRegistry(responder Responder, archiver Archiver, idle time.Duration, logger *log.Logger) *Registry {
	return &Registry{
		sessions:  make(map[string]*Session),
		responder: responder,
		archiver:  archiver,
		idle:      idle,
		logger:    common.OrDiscard(logger),
		now:       time.Now,
	}
}

// Create starts a new session
func (r *Registry) Create(lang string) *Session {
	s := NewSession(r.responder, r.archiver, lang, r.logger)
	s.now = r.now
	s.mu.Lock()
	s.reset()
	s.mu.Unlock()

	r.mu.Lock()
	r.sessions[s.ID()] = s
	r.mu.Unlock()

	r.logger.Printf("started session %s (%s)", s.ID(), s.Language())
	return s
}

// Get looks a session up by id
func (r *Registry) Get(id string) (*Session, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.sessions[id]
	if !ok {
		return nil, ErrNotFound
	}
	return s, nil
}

// Len returns the number of live sessions
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}

// Reap archives and removes sessions that have been idle too long.
// Busy and attached sessions are left alone. It returns the number removed.
func (r *Registry) Reap(ctx context.Context) int {
	threshold := r.now().Add(-r.idle)

	r.mu.Lock()
	var stale []*Session
	for id, s := range r.sessions {
		if !s.Busy() && !s.Attached() && s.LastActive().Before(threshold) {
			stale = append(stale, s)
			delete(r.sessions, id)
		}
	}
	r.mu.Unlock()

	for _, s := range stale {
		if err := s.Archive(ctx); err != nil {
			r.logger.Printf("error archiving idle session: %v", err)
		}
		r.logger.Printf("removed session %s due to inactivity", s.ID())
	}
	return len(stale)
}

// Run reaps idle sessions every interval until ctx is done
func (r *Registry) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			r.Reap(ctx)
		}
	}
}

// Close archives every live session and empties the registry
func (r *Registry) Close(ctx context.Context) error {
	r.mu.Lock()
	sessions := r.sessions
	r.sessions = make(map[string]*Session)
	r.mu.Unlock()

	var errs []error
	for _, s := range sessions {
		if err := s.Archive(ctx); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
