package wordlist

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"

	"github.com/NullVsVoid/Spell-Checker-Final/internal/spell"
)

// DefaultPostgresQuery selects one word per row from the conventional table.
const DefaultPostgresQuery = `SELECT word FROM dictionary_words`

// OpenPostgres opens and pings a Postgres connection for dictionary loading.
func OpenPostgres(dsn string) (*sql.DB, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}
	return db, nil
}

// PostgresSource reads dictionary words out of a Postgres table.
type PostgresSource struct {
	db    *sql.DB
	query string
}

// NewPostgresSource wraps db. An empty query falls back to
// DefaultPostgresQuery; a custom query must return a single text column.
func NewPostgresSource(db *sql.DB, query string) *PostgresSource {
	if query == "" {
		query = DefaultPostgresQuery
	}
	return &PostgresSource{db: db, query: query}
}

// Words runs the query and returns the normalized, non-empty words.
func (s *PostgresSource) Words(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, s.query)
	if err != nil {
		return nil, fmt.Errorf("query word list: %w", err)
	}
	defer rows.Close()

	var words []string
	for rows.Next() {
		var w string
		if err := rows.Scan(&w); err != nil {
			return nil, fmt.Errorf("scan word row: %w", err)
		}
		if n := spell.Normalize(w); n != "" {
			words = append(words, n)
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate word rows: %w", err)
	}
	return words, nil
}
