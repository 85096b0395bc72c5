package scores

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/finlab/finance-engine/internal/game"
)

// PostgresStore implements Store using PostgreSQL as the source of truth.
type PostgresStore struct {
	pool *pgxpool.Pool
}

// NewPostgresStore creates a new PostgreSQL-backed store.
func NewPostgresStore(pool *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{pool: pool}
}

// EnsureSchema creates the two tables if they do not exist.
func (s *PostgresStore) EnsureSchema(ctx context.Context) error {
	_, err := s.pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS best_scores (
			game  TEXT PRIMARY KEY,
			score BIGINT NOT NULL
		);
		CREATE TABLE IF NOT EXISTS preferences (
			key   TEXT PRIMARY KEY,
			value TEXT NOT NULL
		)`)
	return err
}

func (s *PostgresStore) BestScore(ctx context.Context, kind game.Kind) (int64, error) {
	var score int64
	err := s.pool.QueryRow(ctx,
		`SELECT score FROM best_scores WHERE game = $1`, string(kind)).Scan(&score)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("best score %s: %w", kind, err)
	}
	return score, nil
}

func (s *PostgresStore) BestScores(ctx context.Context) (map[game.Kind]int64, error) {
	rows, err := s.pool.Query(ctx, `SELECT game, score FROM best_scores`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make(map[game.Kind]int64)
	for rows.Next() {
		var kind string
		var score int64
		if err := rows.Scan(&kind, &score); err != nil {
			return nil, err
		}
		out[game.Kind(kind)] = score
	}
	return out, rows.Err()
}

func (s *PostgresStore) RecordScore(ctx context.Context, kind game.Kind, score int64) (bool, error) {
	// The WHERE clause makes the upsert a no-op unless the new score is
	// strictly better; RowsAffected tells the two cases apart.
	tag, err := s.pool.Exec(ctx,
		`INSERT INTO best_scores (game, score) VALUES ($1, $2)
		 ON CONFLICT (game) DO UPDATE SET score = EXCLUDED.score
		 WHERE best_scores.score < EXCLUDED.score`,
		string(kind), score)
	if err != nil {
		return false, fmt.Errorf("record score %s: %w", kind, err)
	}
	return tag.RowsAffected() > 0, nil
}

func (s *PostgresStore) Theme(ctx context.Context) (string, error) {
	var theme string
	err := s.pool.QueryRow(ctx,
		`SELECT value FROM preferences WHERE key = 'theme'`).Scan(&theme)
	if errors.Is(err, pgx.ErrNoRows) {
		return DefaultTheme, nil
	}
	if err != nil {
		return "", fmt.Errorf("get theme: %w", err)
	}
	return theme, nil
}

func (s *PostgresStore) SetTheme(ctx context.Context, theme string) error {
	_, err := s.pool.Exec(ctx,
		`INSERT INTO preferences (key, value) VALUES ('theme', $1)
		 ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value`, theme)
	return err
}
