package history

import (
	"context"
	"database/sql"
	_ "embed"
	"errors"
	"fmt"
	"log"
	"time"

	_ "modernc.org/sqlite"

	"uae-chat/internal/chat"
	"uae-chat/internal/common"
)

//go:embed schema.sql
var schemaSQL string

// SQLiteStore keeps transcripts in a SQLite database
type SQLiteStore struct {
	conn           *sql.DB
	maxTranscripts int
	logger         *log.Logger
}

// OpenSQLite opens (and creates if needed) the database at path
func OpenSQLite(path string, maxTranscripts int, logger *log.Logger) (*SQLiteStore, error) {
	logger = common.OrDiscard(logger)

	conn, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	conn.SetMaxOpenConns(1)
	conn.SetMaxIdleConns(1)

	pragmas := []string{
		"PRAGMA journal_mode=WAL;",
		"PRAGMA synchronous=NORMAL;",
		"PRAGMA temp_store=MEMORY;",
	}
	for _, pragma := range pragmas {
		if _, err := conn.Exec(pragma); err != nil {
			_ = conn.Close()
			return nil, fmt.Errorf("apply pragma %q: %w", pragma, err)
		}
	}

	if _, err := conn.Exec(schemaSQL); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("apply schema: %w", err)
	}

	return &SQLiteStore{conn: conn, maxTranscripts: maxTranscripts, logger: logger}, nil
}

func (s *SQLiteStore) Close() error {
	return s.conn.Close()
}

// Save upserts the transcript and replaces its messages
func (s *SQLiteStore) Save(ctx context.Context, t chat.Transcript) error {
	tx, err := s.conn.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin save: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		`INSERT INTO transcripts (id, session_id, language, started_at, ended_at)
		 VALUES (?, ?, ?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET
		   session_id = excluded.session_id,
		   language = excluded.language,
		   started_at = excluded.started_at,
		   ended_at = excluded.ended_at`,
		t.ID, t.SessionID, t.Language, t.StartedAt.UnixNano(), t.EndedAt.UnixNano(),
	)
	if err != nil {
		return fmt.Errorf("upsert transcript: %w", err)
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM messages WHERE transcript_id = ?`, t.ID); err != nil {
		return fmt.Errorf("clear messages: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO messages (transcript_id, seq, id, text, is_user, created_at, category, source)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare message insert: %w", err)
	}
	defer stmt.Close()

	for i, m := range t.Messages {
		if _, err := stmt.ExecContext(ctx,
			t.ID, i, m.ID, m.Text, m.IsUser, m.Timestamp.UnixNano(), nullString(m.Category), nullString(m.Source),
		); err != nil {
			return fmt.Errorf("insert message: %w", err)
		}
	}

	if err := s.prune(ctx, tx); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit save: %w", err)
	}
	return nil
}

// prune drops everything but the newest maxTranscripts transcripts
func (s *SQLiteStore) prune(ctx context.Context, tx *sql.Tx) error {
	if s.maxTranscripts <= 0 {
		return nil
	}

	const keep = `SELECT id FROM transcripts ORDER BY ended_at DESC, rowid DESC LIMIT ?`
	if _, err := tx.ExecContext(ctx,
		`DELETE FROM messages WHERE transcript_id NOT IN (`+keep+`)`, s.maxTranscripts); err != nil {
		return fmt.Errorf("prune messages: %w", err)
	}
	res, err := tx.ExecContext(ctx,
		`DELETE FROM transcripts WHERE id NOT IN (`+keep+`)`, s.maxTranscripts)
	if err != nil {
		return fmt.Errorf("prune transcripts: %w", err)
	}
	if n, _ := res.RowsAffected(); n > 0 {
		s.logger.Printf("pruned %d old transcripts", n)
	}
	return nil
}

// List returns up to limit transcripts, most recently ended first
func (s *SQLiteStore) List(ctx context.Context, limit int) ([]chat.Transcript, error) {
	if limit <= 0 {
		limit = -1
	}

	rows, err := s.conn.QueryContext(ctx,
		`SELECT id, session_id, language, started_at, ended_at
		 FROM transcripts ORDER BY ended_at DESC, rowid DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("list transcripts: %w", err)
	}

	var out []chat.Transcript
	for rows.Next() {
		t, err := scanTranscript(rows)
		if err != nil {
			rows.Close()
			return nil, fmt.Errorf("scan transcript: %w", err)
		}
		out = append(out, t)
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return nil, fmt.Errorf("list transcripts: %w", err)
	}
	rows.Close()

	for i := range out {
		msgs, err := s.messages(ctx, out[i].ID)
		if err != nil {
			return nil, err
		}
		out[i].Messages = msgs
	}
	return out, nil
}

// Get returns the transcript with the given id
func (s *SQLiteStore) Get(ctx context.Context, id string) (chat.Transcript, error) {
	row := s.conn.QueryRowContext(ctx,
		`SELECT id, session_id, language, started_at, ended_at
		 FROM transcripts WHERE id = ?`, id)

	t, err := scanTranscript(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return chat.Transcript{}, ErrNotFound
		}
		return chat.Transcript{}, fmt.Errorf("get transcript: %w", err)
	}

	t.Messages, err = s.messages(ctx, id)
	if err != nil {
		return chat.Transcript{}, err
	}
	return t, nil
}

func (s *SQLiteStore) messages(ctx context.Context, transcriptID string) ([]chat.Message, error) {
	rows, err := s.conn.QueryContext(ctx,
		`SELECT id, text, is_user, created_at, category, source
		 FROM messages WHERE transcript_id = ? ORDER BY seq`, transcriptID)
	if err != nil {
		return nil, fmt.Errorf("list messages: %w", err)
	}
	defer rows.Close()

	msgs := []chat.Message{}
	for rows.Next() {
		var m chat.Message
		var createdAt int64
		var category, source sql.NullString
		if err := rows.Scan(&m.ID, &m.Text, &m.IsUser, &createdAt, &category, &source); err != nil {
			return nil, fmt.Errorf("scan message: %w", err)
		}
		m.Timestamp = time.Unix(0, createdAt)
		m.Category = category.String
		m.Source = source.String
		msgs = append(msgs, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list messages: %w", err)
	}
	return msgs, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanTranscript(row scanner) (chat.Transcript, error) {
	var t chat.Transcript
	var startedAt, endedAt int64
	if err := row.Scan(&t.ID, &t.SessionID, &t.Language, &startedAt, &endedAt); err != nil {
		return chat.Transcript{}, err
	}
	t.StartedAt = time.Unix(0, startedAt)
	t.EndedAt = time.Unix(0, endedAt)
	return t, nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
