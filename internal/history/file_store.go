package history

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"uae-chat/internal/chat"
	"uae-chat/internal/common"
)

// document is the on-disk layout of the JSON history file
type document struct {
	Transcripts []chat.Transcript `json:"transcripts"`
}

// FileStore keeps transcripts in a single JSON file
type FileStore struct {
	filePath       string
	mu             sync.RWMutex
	doc            *document
	maxTranscripts int
	logger         *log.Logger
}

// NewFileStore creates a JSON file store. Call Load before use.
func NewFileStore(filePath string, maxTranscripts int, logger *log.Logger) *FileStore {
	return &FileStore{
		filePath:       filePath,
		doc:            &document{Transcripts: []chat.Transcript{}},
		maxTranscripts: maxTranscripts,
		logger:         common.OrDiscard(logger),
	}
}

// Load loads history from disk
func (s *FileStore) Load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	dir := filepath.Dir(s.filePath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create history directory: %w", err)
	}

	if _, err := os.Stat(s.filePath); os.IsNotExist(err) {
		s.doc = &document{Transcripts: []chat.Transcript{}}
		return nil
	}

	data, err := os.ReadFile(s.filePath)
	if err != nil {
		return fmt.Errorf("failed to read history file: %w", err)
	}

	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		// Corrupted file - backup and start fresh
		backupPath := s.filePath + ".backup"
		if rerr := os.Rename(s.filePath, backupPath); rerr != nil {
			return fmt.Errorf("failed to back up corrupted history: %w", rerr)
		}
		s.logger.Printf("history file corrupted (%v), moved to %s", err, backupPath)
		doc = document{}
	}
	if doc.Transcripts == nil {
		doc.Transcripts = []chat.Transcript{}
	}
	s.doc = &doc
	return nil
}

// Save adds or replaces a transcript and writes the file
func (s *FileStore) Save(ctx context.Context, t chat.Transcript) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	replaced := false
	for i := range s.doc.Transcripts {
		if s.doc.Transcripts[i].ID == t.ID {
			s.doc.Transcripts[i] = t
			replaced = true
			break
		}
	}
	if !replaced {
		s.doc.Transcripts = append(s.doc.Transcripts, t)
	}

	return s.saveUnlocked()
}

// List returns up to limit transcripts, most recently ended first
func (s *FileStore) List(ctx context.Context, limit int) ([]chat.Transcript, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]chat.Transcript, len(s.doc.Transcripts))
	copy(out, s.doc.Transcripts)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].EndedAt.After(out[j].EndedAt)
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

// Get returns the transcript with the given id
func (s *FileStore) Get(ctx context.Context, id string) (chat.Transcript, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, t := range s.doc.Transcripts {
		if t.ID == id {
			return t, nil
		}
	}
	return chat.Transcript{}, ErrNotFound
}

// Close is a no-op; every Save is already on disk
func (s *FileStore) Close() error {
	return nil
}

// saveUnlocked prunes and writes the file (must be called with lock held)
func (s *FileStore) saveUnlocked() error {
	if s.maxTranscripts > 0 && len(s.doc.Transcripts) > s.maxTranscripts {
		s.doc.Transcripts = s.doc.Transcripts[len(s.doc.Transcripts)-s.maxTranscripts:]
	}

	data, err := json.MarshalIndent(s.doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal history: %w", err)
	}

	tempPath := s.filePath + ".tmp"
	if err := os.WriteFile(tempPath, data, 0600); err != nil {
		return fmt.Errorf("failed to write temp file: %w", err)
	}

	if err := os.Rename(tempPath, s.filePath); err != nil {
		return fmt.Errorf("failed to rename temp file: %w", err)
	}

	return nil
}
