// Package postgres implements the reflection log on Postgres, matching
// the hosted database the bot originally ran against.
package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/lib/pq"

	"github.com/irkoudo/yehoshua-focus/internal/domain"
)

type Store struct {
	db *sql.DB
}

func NewStore(dsn string) (*Store, error) {
	if dsn == "" {
		return nil, fmt.Errorf("database url is required for Postgres store")
	}

	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("opening postgres: %w", err)
	}
	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("pinging postgres: %w", err)
	}

	return &Store{db: db}, nil
}

// Schema is the table the store expects:
//
//	CREATE TABLE reflections (
//	    id          uuid PRIMARY KEY,
//	    user_email  text NOT NULL,
//	    content     text NOT NULL,
//	    moment      text NOT NULL,
//	    subject     text NOT NULL DEFAULT '',
//	    ai_response text NOT NULL DEFAULT '',
//	    created_at  timestamptz NOT NULL DEFAULT now()
//	);
//	CREATE INDEX reflections_user_day ON reflections (user_email, created_at);

// QueryToday implements domain.ReflectionStore.
func (s *Store) QueryToday(ctx context.Context, sender string, day domain.Timestamp) (domain.MemorySnapshot, error) {
	year, month, dom := day.Date()
	dayStart := time.Date(year, month, dom, 0, 0, 0, 0, day.Location())

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, user_email, content, moment, subject, ai_response, created_at
		FROM reflections
		WHERE user_email = $1 AND created_at >= $2
		ORDER BY created_at ASC`,
		sender, dayStart)
	if err != nil {
		return nil, fmt.Errorf("postgres QueryToday: %w", err)
	}
	defer rows.Close()

	var out domain.MemorySnapshot
	for rows.Next() {
		var rec domain.ReflectionRecord
		var moment string
		if err := rows.Scan(&rec.ID, &rec.SenderAddress, &rec.Content, &moment,
			&rec.Subject, &rec.AIResponse, &rec.CreatedAt); err != nil {
			return nil, fmt.Errorf("postgres scan reflection: %w", err)
		}
		rec.Moment = domain.Moment(moment)
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("postgres QueryToday rows: %w", err)
	}

	return out, nil
}

// AppendReflection implements domain.ReflectionStore.
func (s *Store) AppendReflection(ctx context.Context, rec *domain.ReflectionRecord) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO reflections (id, user_email, content, moment, subject, ai_response, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		rec.ID, rec.SenderAddress, rec.Content, string(rec.Moment),
		rec.Subject, rec.AIResponse, rec.CreatedAt)
	if err != nil {
		return fmt.Errorf("postgres AppendReflection: %w", err)
	}
	return nil
}

// Close releases the connection pool.
func (s *Store) Close() error {
	return s.db.Close()
}
