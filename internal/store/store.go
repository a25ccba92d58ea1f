// Package store owns the on-disk index: a SQLite table of file records plus
// an FTS5 mirror kept in sync by triggers, and a small key/value area for
// statistics. It is the only component that writes the index.
package store

import (
	"database/sql"
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

//go:embed schema.sql
var schemaSQL string

// DBFileName is the SQLite database file created inside the index directory.
const DBFileName = "code.db"

// Exists reports whether an index has already been created at indexPath,
// without creating one. Read-only callers use this to distinguish "no
// index yet" from "empty index" before calling Open, which would otherwise
// silently create an empty database.
func Exists(indexPath string) bool {
	_, err := os.Stat(filepath.Join(indexPath, DBFileName))
	return err == nil
}

// Store is a persisted index at a caller-chosen directory.
type Store struct {
	db   *sql.DB
	path string
}

// Open creates the index directory if absent, opens (or creates) the
// database file inside it, and ensures the schema exists.
func Open(indexPath string) (*Store, error) {
	if err := os.MkdirAll(indexPath, 0755); err != nil {
		return nil, fmt.Errorf("create index directory: %w", err)
	}

	dbPath := filepath.Join(indexPath, DBFileName)
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	s := &Store{db: db, path: dbPath}
	if err := s.initSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("init schema: %w", err)
	}
	return s, nil
}

// Path returns the underlying database file path.
func (s *Store) Path() string { return s.path }

// Close releases the underlying database handle.
func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

func (s *Store) initSchema() error {
	_, err := s.db.Exec(schemaSQL)
	return err
}

// Upsert inserts or replaces a file record by path.
func (s *Store) Upsert(rec FileRecord) error {
	_, err := s.db.Exec(`
		INSERT INTO files (path, content, language, size, last_modified, content_hash, indexed_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(path) DO UPDATE SET
			content=excluded.content,
			language=excluded.language,
			size=excluded.size,
			last_modified=excluded.last_modified,
			content_hash=excluded.content_hash,
			indexed_at=excluded.indexed_at
	`,
		rec.Path, rec.Content, rec.Language, rec.Size,
		rec.LastModified.Format(time.RFC3339Nano),
		rec.ContentHash,
		rec.IndexedAt.Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("upsert %s: %w", rec.Path, err)
	}
	return nil
}

// Delete removes a file record by path. A no-op if the path is not stored.
func (s *Store) Delete(path string) error {
	_, err := s.db.Exec(`DELETE FROM files WHERE path = ?`, path)
	if err != nil {
		return fmt.Errorf("delete %s: %w", path, err)
	}
	return nil
}

// LookupFingerprint returns the stored content hash for path, or "" if the
// path is not indexed.
func (s *Store) LookupFingerprint(path string) (string, error) {
	var hash string
	err := s.db.QueryRow(`SELECT content_hash FROM files WHERE path = ?`, path).Scan(&hash)
	if err == sql.ErrNoRows {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("lookup fingerprint %s: %w", path, err)
	}
	return hash, nil
}

// Enumerate returns every stored path, optionally filtered by language,
// ordered by path.
func (s *Store) Enumerate(language string) ([]string, error) {
	var (
		rows *sql.Rows
		err  error
	)
	if language != "" {
		rows, err = s.db.Query(`SELECT path FROM files WHERE language = ? ORDER BY path`, language)
	} else {
		rows, err = s.db.Query(`SELECT path FROM files ORDER BY path`)
	}
	if err != nil {
		return nil, fmt.Errorf("enumerate: %w", err)
	}
	defer rows.Close()

	var paths []string
	for rows.Next() {
		var p string
		if err := rows.Scan(&p); err != nil {
			return nil, fmt.Errorf("enumerate scan: %w", err)
		}
		paths = append(paths, p)
	}
	return paths, rows.Err()
}

// FullTextQuery runs a sanitized FTS5 query and returns hits ordered by
// ascending BM25 (most relevant first). It returns ErrQuerySyntax, not the
// raw driver error, when the engine rejects the query's syntax.
func (s *Store) FullTextQuery(sanitized string, filters Filters, limit int) ([]FullTextHit, error) {
	where := ""
	args := []any{sanitized}
	if filters.Language != "" {
		where += " AND f.language = ?"
		args = append(args, filters.Language)
	}
	if filters.PathSubstr != "" {
		where += " AND f.path LIKE ?"
		args = append(args, "%"+filters.PathSubstr+"%")
	}
	args = append(args, limit)

	sqlText := fmt.Sprintf(`
		SELECT f.path, f.content, f.language, bm25(files_fts) AS score
		FROM files_fts
		JOIN files f ON files_fts.rowid = f.id
		WHERE files_fts MATCH ?%s
		ORDER BY score
		LIMIT ?
	`, where)

	rows, err := s.db.Query(sqlText, args...)
	if err != nil {
		if isFTSSyntaxError(err) {
			return nil, ErrQuerySyntax
		}
		return nil, fmt.Errorf("full-text query: %w", err)
	}
	defer rows.Close()

	var hits []FullTextHit
	for rows.Next() {
		var h FullTextHit
		if err := rows.Scan(&h.Path, &h.Content, &h.Language, &h.Score); err != nil {
			return nil, fmt.Errorf("full-text scan: %w", err)
		}
		hits = append(hits, h)
	}
	return hits, rows.Err()
}

// isFTSSyntaxError reports whether err looks like an FTS5 MATCH syntax
// rejection rather than some other storage failure.
func isFTSSyntaxError(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "fts5") || strings.Contains(msg, "malformed match") ||
		strings.Contains(msg, "unterminated string")
}

// SubstringQuery performs a simple containment scan over stored content.
func (s *Store) SubstringQuery(needle string, filters Filters, limit int) ([]SubstringHit, error) {
	where := []string{"content LIKE ?"}
	args := []any{"%" + needle + "%"}
	if filters.Language != "" {
		where = append(where, "language = ?")
		args = append(args, filters.Language)
	}
	if filters.PathSubstr != "" {
		where = append(where, "path LIKE ?")
		args = append(args, "%"+filters.PathSubstr+"%")
	}
	args = append(args, limit)

	sqlText := fmt.Sprintf(`
		SELECT path, content, language FROM files
		WHERE %s
		ORDER BY path
		LIMIT ?
	`, strings.Join(where, " AND "))

	rows, err := s.db.Query(sqlText, args...)
	if err != nil {
		return nil, fmt.Errorf("substring query: %w", err)
	}
	defer rows.Close()

	var hits []SubstringHit
	for rows.Next() {
		var h SubstringHit
		if err := rows.Scan(&h.Path, &h.Content, &h.Language); err != nil {
			return nil, fmt.Errorf("substring scan: %w", err)
		}
		hits = append(hits, h)
	}
	return hits, rows.Err()
}

// ReadAll returns every stored (path, content, language) triple, for symbol
// scanning and file-name summaries that need the full body.
func (s *Store) ReadAll() ([]SubstringHit, error) {
	rows, err := s.db.Query(`SELECT path, content, language FROM files ORDER BY path`)
	if err != nil {
		return nil, fmt.Errorf("read all: %w", err)
	}
	defer rows.Close()

	var all []SubstringHit
	for rows.Next() {
		var h SubstringHit
		if err := rows.Scan(&h.Path, &h.Content, &h.Language); err != nil {
			return nil, fmt.Errorf("read all scan: %w", err)
		}
		all = append(all, h)
	}
	return all, rows.Err()
}

// FileNameQuery matches stored paths against a SQL LIKE pattern already
// translated from the caller's glob syntax.
func (s *Store) FileNameQuery(likePattern string, limit int) ([]SubstringHit, error) {
	rows, err := s.db.Query(`
		SELECT path, content, language FROM files
		WHERE path LIKE ? ESCAPE '\'
		ORDER BY path
		LIMIT ?
	`, likePattern, limit)
	if err != nil {
		return nil, fmt.Errorf("file-name query: %w", err)
	}
	defer rows.Close()

	var hits []SubstringHit
	for rows.Next() {
		var h SubstringHit
		if err := rows.Scan(&h.Path, &h.Content, &h.Language); err != nil {
			return nil, fmt.Errorf("file-name scan: %w", err)
		}
		hits = append(hits, h)
	}
	return hits, rows.Err()
}

// Clear drops all file rows, mirror rows, and statistics.
func (s *Store) Clear() error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("clear: %w", err)
	}
	defer tx.Rollback()

	for _, stmt := range []string{
		`DELETE FROM files`,
		`DELETE FROM files_fts`,
		`DELETE FROM index_stats`,
	} {
		if _, err := tx.Exec(stmt); err != nil {
			return fmt.Errorf("clear: %w", err)
		}
	}
	return tx.Commit()
}
