package history

import (
	"context"
	"errors"
	"fmt"
	"log"

	"uae-chat/internal/chat"
)

// ErrNotFound is returned by Get for unknown transcript ids
var ErrNotFound = errors.New("transcript not found")

// Store persists archived chat transcripts
type Store interface {
	Save(ctx context.Context, t chat.Transcript) error
	// List returns up to limit transcripts, most recently ended first
	List(ctx context.Context, limit int) ([]chat.Transcript, error)
	Get(ctx context.Context, id string) (chat.Transcript, error)
	Close() error
}

// Open opens the store for backend ("json" or "sqlite") at path, keeping at
// most maxTranscripts.
func Open(backend, path string, maxTranscripts int, logger *log.Logger) (Store, error) {
	switch backend {
	case "json", "":
		s := NewFileStore(path, maxTranscripts, logger)
		if err := s.Load(); err != nil {
			return nil, err
		}
		return s, nil
	case "sqlite":
		return OpenSQLite(path, maxTranscripts, logger)
	default:
		return nil, fmt.Errorf("unknown history backend %q", backend)
	}
}
