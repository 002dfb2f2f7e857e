package history

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"uae-chat/internal/chat"
)

var base = time.Date(2026, 2, 1, 9, 0, 0, 0, time.UTC)

func transcript(n int) chat.Transcript {
	start := base.Add(time.Duration(n) * time.Hour)
	return chat.Transcript{
		ID:        fmt.Sprintf("t-%d", n),
		SessionID: fmt.Sprintf("s-%d", n),
		Language:  "en",
		StartedAt: start,
		EndedAt:   start.Add(10 * time.Minute),
		Messages: []chat.Message{
			{ID: "m1", Text: "Welcome", Timestamp: start, Category: "general"},
			{ID: "m2", Text: fmt.Sprintf("question %d", n), IsUser: true, Timestamp: start.Add(time.Minute)},
			{ID: "m3", Text: "answer", Timestamp: start.Add(2 * time.Minute), Category: "tourist", Source: "search"},
		},
	}
}

// openStores returns one store per backend, each in its own temp dir
func openStores(t *testing.T, max int) map[string]Store {
	t.Helper()
	stores := map[string]Store{}
	for _, backend := range []string{"json", "sqlite"} {
		path := filepath.Join(t.TempDir(), "history."+backend)
		s, err := Open(backend, path, max, nil)
		if err != nil {
			t.Fatalf("Open(%s): %v", backend, err)
		}
		t.Cleanup(func() { s.Close() })
		stores[backend] = s
	}
	return stores
}

func TestStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	for name, s := range openStores(t, 10) {
		t.Run(name, func(t *testing.T) {
			want := transcript(1)
			if err := s.Save(ctx, want); err != nil {
				t.Fatalf("Save: %v", err)
			}

			got, err := s.Get(ctx, want.ID)
			if err != nil {
				t.Fatalf("Get: %v", err)
			}
			if got.SessionID != want.SessionID || got.Language != want.Language {
				t.Errorf("got %+v", got)
			}
			if !got.StartedAt.Equal(want.StartedAt) || !got.EndedAt.Equal(want.EndedAt) {
				t.Errorf("times = %v..%v, want %v..%v", got.StartedAt, got.EndedAt, want.StartedAt, want.EndedAt)
			}
			if len(got.Messages) != 3 {
				t.Fatalf("got %d messages, want 3", len(got.Messages))
			}
			m := got.Messages[1]
			if !m.IsUser || m.Text != "question 1" || !m.Timestamp.Equal(want.Messages[1].Timestamp) {
				t.Errorf("message = %+v", m)
			}
			if got.Messages[2].Source != "search" || got.Messages[2].Category != "tourist" {
				t.Errorf("message metadata = %+v", got.Messages[2])
			}
		})
	}
}

func TestStoreGetMissing(t *testing.T) {
	for name, s := range openStores(t, 10) {
		t.Run(name, func(t *testing.T) {
			if _, err := s.Get(context.Background(), "nope"); !errors.Is(err, ErrNotFound) {
				t.Errorf("err = %v, want ErrNotFound", err)
			}
		})
	}
}

func TestStoreSaveReplacesSameID(t *testing.T) {
	ctx := context.Background()
	for name, s := range openStores(t, 10) {
		t.Run(name, func(t *testing.T) {
			tr := transcript(1)
			s.Save(ctx, tr)
			tr.Messages = tr.Messages[:1]
			if err := s.Save(ctx, tr); err != nil {
				t.Fatalf("Save: %v", err)
			}

			list, _ := s.List(ctx, 0)
			if len(list) != 1 {
				t.Fatalf("got %d transcripts, want 1", len(list))
			}
			if len(list[0].Messages) != 1 {
				t.Errorf("got %d messages, want 1", len(list[0].Messages))
			}
		})
	}
}

func TestStoreListNewestFirstAndPrunes(t *testing.T) {
	ctx := context.Background()
	for name, s := range openStores(t, 3) {
		t.Run(name, func(t *testing.T) {
			for i := 1; i <= 5; i++ {
				if err := s.Save(ctx, transcript(i)); err != nil {
					t.Fatalf("Save(%d): %v", i, err)
				}
			}

			list, err := s.List(ctx, 0)
			if err != nil {
				t.Fatalf("List: %v", err)
			}
			var ids []string
			for _, tr := range list {
				ids = append(ids, tr.ID)
			}
			if fmt.Sprint(ids) != "[t-5 t-4 t-3]" {
				t.Errorf("ids = %v, want [t-5 t-4 t-3]", ids)
			}
			if _, err := s.Get(ctx, "t-1"); !errors.Is(err, ErrNotFound) {
				t.Error("oldest transcript should be pruned")
			}

			limited, _ := s.List(ctx, 2)
			if len(limited) != 2 || limited[0].ID != "t-5" {
				t.Errorf("List(2) = %d items", len(limited))
			}
		})
	}
}

func TestFileStorePersistsAcrossLoads(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "nested", "history.json")

	s := NewFileStore(path, 10, nil)
	if err := s.Load(); err != nil {
		t.Fatalf("Load: %v", err)
	}
	s.Save(ctx, transcript(7))

	reloaded := NewFileStore(path, 10, nil)
	if err := reloaded.Load(); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if _, err := reloaded.Get(ctx, "t-7"); err != nil {
		t.Errorf("Get after reload: %v", err)
	}
	if _, err := os.Stat(path + ".tmp"); !os.IsNotExist(err) {
		t.Error("temp file should be renamed away")
	}
}

func TestFileStoreBacksUpCorruptedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.json")
	if err := os.WriteFile(path, []byte("{not json"), 0600); err != nil {
		t.Fatal(err)
	}

	s := NewFileStore(path, 10, nil)
	if err := s.Load(); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if _, err := os.Stat(path + ".backup"); err != nil {
		t.Errorf("expected backup file: %v", err)
	}
	list, _ := s.List(context.Background(), 0)
	if len(list) != 0 {
		t.Errorf("got %d transcripts from a corrupted file", len(list))
	}
}

func TestOpenUnknownBackend(t *testing.T) {
	if _, err := Open("redis", filepath.Join(t.TempDir(), "x"), 10, nil); err == nil {
		t.Error("expected error for unknown backend")
	}
}

func TestSessionArchivesIntoStore(t *testing.T) {
	ctx := context.Background()
	for name, s := range openStores(t, 10) {
		t.Run(name, func(t *testing.T) {
			var archiver chat.Archiver = s
			tr := transcript(2)
			if err := archiver.Save(ctx, tr); err != nil {
				t.Fatalf("Save: %v", err)
			}
			if got, _ := s.Get(ctx, tr.ID); got.UserMessages() != 1 {
				t.Errorf("UserMessages = %d, want 1", got.UserMessages())
			}
		})
	}
}
