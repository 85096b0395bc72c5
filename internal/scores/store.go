// Package scores defines the persistence interface for the per-game best
// scores and the theme preference. Implementations include PostgreSQL
// (source of truth), Redis (read-through cache), and in-memory (default
// when no database is configured).
package scores

import (
	"context"

	"github.com/finlab/finance-engine/internal/game"
)

// DefaultTheme is returned until a preference has been saved.
const DefaultTheme = "light"

// Store is the persistence interface. Best scores are write-if-better:
// RecordScore keeps the stored value unless the new score is strictly
// higher.
type Store interface {
	// BestScore returns the stored best for one game, zero if none.
	BestScore(ctx context.Context, kind game.Kind) (int64, error)

	// BestScores returns the stored bests for all games.
	BestScores(ctx context.Context) (map[game.Kind]int64, error)

	// RecordScore stores score if it beats the current best and reports
	// whether it did.
	RecordScore(ctx context.Context, kind game.Kind, score int64) (bool, error)

	// Theme returns the saved theme preference, or DefaultTheme.
	Theme(ctx context.Context) (string, error)

	// SetTheme saves the theme preference.
	SetTheme(ctx context.Context, theme string) error
}
