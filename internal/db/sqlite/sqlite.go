// Package sqlite implements db.Repository on an embedded SQLite database.
package sqlite

import (
	"context"
	"database/sql"
	_ "embed"
	"errors"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"github.com/crackalamoo/futhorc/internal/db"
)

//go:embed schema.sql
var schema string

type Store struct {
	conn *sql.DB
}

var _ db.Repository = (*Store)(nil)

// New opens (creating if needed) the database at path and applies the
// schema. Use ":memory:" for an ephemeral store.
func New(ctx context.Context, path string) (*Store, error) {
	conn, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening SQLite database: %w", err)
	}

	// WAL keeps readers from blocking the write path.
	if _, err := conn.ExecContext(ctx, "PRAGMA journal_mode=WAL"); err != nil {
		conn.Close()
		return nil, fmt.Errorf("setting WAL mode: %w", err)
	}
	if _, err := conn.ExecContext(ctx, "PRAGMA busy_timeout=5000"); err != nil {
		conn.Close()
		return nil, fmt.Errorf("setting busy timeout: %w", err)
	}

	if _, err := conn.ExecContext(ctx, schema); err != nil {
		conn.Close()
		return nil, fmt.Errorf("initializing schema: %w", err)
	}

	return &Store{conn: conn}, nil
}

func (s *Store) CreateTranslation(ctx context.Context, params db.CreateTranslationParams) (db.Translation, error) {
	createdAt := time.Now().UTC().Format(time.RFC3339)
	result, err := s.conn.ExecContext(ctx, `
		INSERT INTO translations (source, input, output, created_at)
		VALUES (?, ?, ?, ?)`,
		params.Source, params.Input, params.Output, createdAt)
	if err != nil {
		return db.Translation{}, fmt.Errorf("inserting translation: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return db.Translation{}, fmt.Errorf("reading insert id: %w", err)
	}
	return s.GetTranslation(ctx, id)
}

func (s *Store) GetTranslation(ctx context.Context, id int64) (db.Translation, error) {
	row := s.conn.QueryRowContext(ctx, `
		SELECT id, source, input, output, created_at
		FROM translations WHERE id = ?`, id)

	t, err := scanTranslation(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return db.Translation{}, db.ErrNoRows
		}
		return db.Translation{}, fmt.Errorf("getting translation %d: %w", id, err)
	}
	return t, nil
}

func (s *Store) ListTranslations(ctx context.Context, limit int) ([]db.Translation, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := s.conn.QueryContext(ctx, `
		SELECT id, source, input, output, created_at
		FROM translations
		ORDER BY id DESC
		LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("listing translations: %w", err)
	}
	defer rows.Close()

	var out []db.Translation
	for rows.Next() {
		t, err := scanTranslation(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("scanning translation: %w", err)
		}
		out = append(out, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating translations: %w", err)
	}
	return out, nil
}

func scanTranslation(scan func(...any) error) (db.Translation, error) {
	var t db.Translation
	var createdAtStr string
	if err := scan(&t.ID, &t.Source, &t.Input, &t.Output, &createdAtStr); err != nil {
		return db.Translation{}, err
	}
	t.CreatedAt, _ = time.Parse(time.RFC3339, createdAtStr)
	return t, nil
}

func (s *Store) Close() error {
	return s.conn.Close()
}
