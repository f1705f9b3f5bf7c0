package dictionary

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog/log"
	_ "modernc.org/sqlite"
)

// SQLiteDictionary validates words against a local word list stored in a
// SQLite database. It is useful offline and as a no-network fallback
// provider; definitions are stored when the word list carries them.
type SQLiteDictionary struct {
	db *sql.DB
}

// OpenSQLiteDictionary opens (or creates) the word database at path.
func OpenSQLiteDictionary(path string) (*SQLiteDictionary, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	_, err = db.Exec(`CREATE TABLE IF NOT EXISTS dictionary (
		word TEXT PRIMARY KEY,
		definition TEXT
	)`)
	if err != nil {
		db.Close()
		return nil, err
	}
	return &SQLiteDictionary{db: db}, nil
}

func (s *SQLiteDictionary) Name() string {
	return "sqlite"
}

// Close releases the underlying database handle.
func (s *SQLiteDictionary) Close() error {
	return s.db.Close()
}

// BuildWordList loads a plain-text word file (one word per line) into the
// database. Existing entries are kept.
func (s *SQLiteDictionary) BuildWordList(path string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	tx, err := s.db.Begin()
	if err != nil {
		return 0, err
	}
	stmt, err := tx.Prepare(
		"INSERT OR IGNORE INTO dictionary (word) VALUES (?)")
	if err != nil {
		tx.Rollback()
		return 0, err
	}
	defer stmt.Close()

	count := 0
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		word := strings.ToLower(strings.TrimSpace(scanner.Text()))
		if word == "" {
			continue
		}
		if _, err := stmt.Exec(word); err != nil {
			tx.Rollback()
			return 0, err
		}
		count++
	}
	if err := scanner.Err(); err != nil {
		tx.Rollback()
		return 0, err
	}
	if err := tx.Commit(); err != nil {
		return 0, err
	}
	log.Info().Int("words", count).Str("path", path).Msg("loaded word list")
	return count, nil
}

// AddWord inserts a single word, optionally with a definition.
func (s *SQLiteDictionary) AddWord(word, definition string) error {
	_, err := s.db.Exec(
		"INSERT OR REPLACE INTO dictionary (word, definition) VALUES (?, ?)",
		strings.ToLower(word), definition)
	return err
}

// Lookup implements the Lookup interface.
func (s *SQLiteDictionary) Lookup(ctx context.Context, word string) (*Entry, error) {
	word = strings.TrimSpace(word)
	entry := &Entry{Word: strings.ToUpper(word)}
	var def sql.NullString
	err := s.db.QueryRowContext(ctx,
		"SELECT definition FROM dictionary WHERE word = ?",
		strings.ToLower(word)).Scan(&def)
	switch err {
	case nil:
		entry.Valid = true
		entry.Definition = def.String
	case sql.ErrNoRows:
		// Not a word; a normal answer.
	default:
		return nil, fmt.Errorf("%w: %v", ErrLookupUnavailable, err)
	}
	return entry, nil
}
