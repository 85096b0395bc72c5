// Package game implements the turn-based mini-games behind the arcade:
// budgeting scenarios, the tile-matching savings challenge, and the timed
// trivia quiz. Each game is an isolated per-kind session record behind the
// Game interface; nothing is shared between kinds, and a session accepts no
// mutation after it ends.
//
// The package is pure state transition. Timers and deferred turn advances
// belong to the owning service, which drives Tick on the quiz.
package game

import "errors"

var (
	// ErrSessionEnded is returned for any mutation after the terminal turn.
	ErrSessionEnded = errors.New("game: session has ended")

	// ErrInvalidChoice is returned when a choice index is out of range for
	// the current turn.
	ErrInvalidChoice = errors.New("game: invalid choice")
)

// Kind identifies a game type.
type Kind string

const (
	KindBudget  Kind = "budget"
	KindStocks  Kind = "stocks"
	KindSavings Kind = "savings"
	KindQuiz    Kind = "quiz"
)

// Valid reports whether k names a known game.
func (k Kind) Valid() bool {
	switch k {
	case KindBudget, KindStocks, KindSavings, KindQuiz:
		return true
	}
	return false
}

// TimeoutChoice is the forced choice submitted when a quiz countdown
// reaches zero.
const TimeoutChoice = -1

// Game is the common surface of a turn-based session: a strictly increasing
// turn index bounded by the total, an accumulated score, and a terminal
// state after which Choose fails.
type Game interface {
	Kind() Kind
	Snapshot() *Snapshot
	Choose(index int) (*Outcome, error)
	Ended() bool
}

// Ticker is implemented by games driven by a countdown (the quiz). Tick
// decrements the timer and forces a timeout choice at zero.
type Ticker interface {
	Tick() (*Outcome, error)
}

// Snapshot is the render-facing state shared by every game kind. Fields not
// applicable to a kind are zero and omitted from JSON.
type Snapshot struct {
	Kind       Kind  `json:"kind"`
	Turn       int   `json:"turn"`
	TotalTurns int   `json:"total_turns"`
	Score      int64 `json:"score"`
	Saved      int64 `json:"saved,omitempty"`
	Ended      bool  `json:"ended"`

	// Budget
	Month     int   `json:"month,omitempty"`
	Income    int64 `json:"income,omitempty"`
	Remaining int64 `json:"remaining,omitempty"`

	// Savings match
	Round  int    `json:"round,omitempty"`
	Target int64  `json:"target,omitempty"`
	Tiles  []Tile `json:"tiles,omitempty"`

	// Quiz
	Streak   int64         `json:"streak,omitempty"`
	TimeLeft int           `json:"time_left,omitempty"`
	Question *QuestionView `json:"question,omitempty"`

	Scenario *BudgetScenario `json:"scenario,omitempty"`
}

// Outcome describes the effect of one choice or tick.
type Outcome struct {
	Correct       bool   `json:"correct"`
	Points        int64  `json:"points,omitempty"`
	TimedOut      bool   `json:"timed_out,omitempty"`
	Matched       bool   `json:"matched,omitempty"`
	MatchedTarget bool   `json:"matched_target,omitempty"`
	Ignored       bool   `json:"ignored,omitempty"` // selection had no effect (already matched/selected tile)
	Message       string `json:"message,omitempty"`
}
