// Package store handles SQLite persistence.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/verte-zerg/elemquiz/internal/model"

	_ "modernc.org/sqlite" // SQLite driver.
)

// Store wraps SQLite access for round history.
type Store struct {
	db *sql.DB
}

// Open opens or creates the SQLite database and applies migrations.
func Open(path string) (*Store, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		if cerr := db.Close(); cerr != nil {
			// Best-effort close on migration failure.
			_ = cerr
		}
		return nil, err
	}
	return store, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS rounds (
			id INTEGER PRIMARY KEY,
			started_at TEXT NOT NULL,
			ended_at TEXT NOT NULL,
			mode TEXT NOT NULL,
			questions INTEGER NOT NULL,
			score INTEGER NOT NULL,
			total INTEGER NOT NULL,
			retry_passes INTEGER NOT NULL,
			unresolved INTEGER NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS round_element_stats (
			round_id INTEGER NOT NULL,
			element INTEGER NOT NULL,
			correct INTEGER NOT NULL,
			incorrect INTEGER NOT NULL,
			PRIMARY KEY (round_id, element)
		);`,
		`CREATE INDEX IF NOT EXISTS idx_rounds_ended_at ON rounds(ended_at);`,
		`CREATE INDEX IF NOT EXISTS idx_round_element_stats_element ON round_element_stats(element);`,
	}
	for _, stmt := range stmts {
		if _, err := s.db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

// InsertRound stores a completed round and its per-element stats.
func (s *Store) InsertRound(ctx context.Context, stats model.RoundStats, elems []model.ElementStats) (id int64, err error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer func() {
		if err != nil {
			if rerr := tx.Rollback(); rerr != nil {
				// Best-effort rollback.
				_ = rerr
			}
		}
	}()

	res, err := tx.ExecContext(ctx,
		`INSERT INTO rounds (started_at, ended_at, mode, questions, score, total, retry_passes, unresolved)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		stats.StartedAt.Format(time.RFC3339Nano),
		stats.EndedAt.Format(time.RFC3339Nano),
		stats.Mode.String(),
		stats.Questions,
		stats.Score,
		stats.Total,
		stats.RetryPasses,
		stats.Unresolved,
	)
	if err != nil {
		return 0, err
	}
	id, err = res.LastInsertId()
	if err != nil {
		return 0, err
	}

	if len(elems) > 0 {
		stmt, perr := tx.PrepareContext(ctx,
			`INSERT INTO round_element_stats (round_id, element, correct, incorrect)
			 VALUES (?, ?, ?, ?)`)
		if perr != nil {
			err = perr
			return 0, err
		}
		defer func() {
			if cerr := stmt.Close(); cerr != nil {
				// Best-effort statement close.
				_ = cerr
			}
		}()
		for _, es := range elems {
			if _, err = stmt.ExecContext(ctx, id, es.Number, es.Correct, es.Incorrect); err != nil {
				return 0, err
			}
		}
	}

	if err = tx.Commit(); err != nil {
		return 0, err
	}
	return id, nil
}

// GetWeakElements aggregates element stats over the most recent rounds,
// optionally restricted to one mode.
func (s *Store) GetWeakElements(ctx context.Context, window int, mode string) ([]model.ElementAggregate, error) {
	if window <= 0 {
		return nil, nil
	}
	query := `WITH recent_rounds AS (
		SELECT id FROM rounds
		WHERE (? = '' OR mode = ?)
		ORDER BY ended_at DESC
		LIMIT ?
	)
	SELECT es.element, SUM(es.correct) AS correct, SUM(es.incorrect) AS incorrect
	FROM round_element_stats es
	JOIN recent_rounds r ON r.id = es.round_id
	GROUP BY es.element`

	rows, err := s.db.QueryContext(ctx, query, mode, mode, window)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			// Best-effort rows close.
			_ = cerr
		}
	}()
	return scanElementAggregates(rows)
}

// ListRounds returns round aggregates filtered by stats config, oldest first.
func (s *Store) ListRounds(ctx context.Context, cfg model.StatsConfig) ([]model.RoundAggregate, error) {
	clauses := []string{"1=1"}
	args := []any{}
	if cfg.Mode != "" {
		clauses = append(clauses, "mode = ?")
		args = append(args, cfg.Mode)
	}
	if cfg.Since != nil {
		clauses = append(clauses, "ended_at >= ?")
		args = append(args, cfg.Since.Format(time.RFC3339Nano))
	}
	query := fmt.Sprintf(`SELECT id, ended_at, mode, questions, score, total, retry_passes
		FROM rounds
		WHERE %s
		ORDER BY ended_at ASC`, strings.Join(clauses, " AND "))
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			// Best-effort rows close.
			_ = cerr
		}
	}()

	var rounds []model.RoundAggregate
	for rows.Next() {
		var agg model.RoundAggregate
		var endedAt string
		if err := rows.Scan(&agg.RoundID, &endedAt, &agg.Mode, &agg.Questions, &agg.Score, &agg.Total, &agg.RetryPasses); err != nil {
			return nil, err
		}
		parsed, err := time.Parse(time.RFC3339Nano, endedAt)
		if err != nil {
			return nil, err
		}
		agg.EndedAt = parsed
		rounds = append(rounds, agg)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return rounds, nil
}

// ListElementAggregatesForRounds aggregates per-element stats across rounds.
func (s *Store) ListElementAggregatesForRounds(ctx context.Context, roundIDs []int64) ([]model.ElementAggregate, error) {
	if len(roundIDs) == 0 {
		return nil, nil
	}
	placeholders := make([]string, len(roundIDs))
	args := make([]any, len(roundIDs))
	for i, id := range roundIDs {
		placeholders[i] = "?"
		args[i] = id
	}
	query := fmt.Sprintf(`SELECT element, SUM(correct) AS correct, SUM(incorrect) AS incorrect
		FROM round_element_stats
		WHERE round_id IN (%s)
		GROUP BY element`, strings.Join(placeholders, ","))
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			// Best-effort rows close.
			_ = cerr
		}
	}()
	return scanElementAggregates(rows)
}

func scanElementAggregates(rows *sql.Rows) ([]model.ElementAggregate, error) {
	var result []model.ElementAggregate
	for rows.Next() {
		var agg model.ElementAggregate
		if err := rows.Scan(&agg.Number, &agg.Correct, &agg.Incorrect); err != nil {
			return nil, err
		}
		result = append(result, agg)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
