package game

import "github.com/finlab/finance-engine/internal/rng"

// Savings match constants. Each round lays out 8 pairs, one of them forced
// to the round's target amount.
const (
	matchRounds      = 12
	matchPairs       = 8
	matchTargetScore = 50
	matchPairScore   = 10
	maxTileValue     = 50
)

// Tile is one face-up amount on the savings grid.
type Tile struct {
	ID       int   `json:"id"`
	Value    int64 `json:"value"`
	Matched  bool  `json:"matched"`
	Selected bool  `json:"selected"`
}

// Match is the tile-matching savings game: pair equal amounts to score,
// pair the round's target amount to bank double its value.
type Match struct {
	rnd rng.Source

	round        int
	target       int64
	score        int64
	saved        int64
	tiles        []Tile
	selected     int // tile ID of the pending first pick, -1 if none
	matchedPairs int
	ended        bool
}

// NewMatch starts a session at round 1 (target amount 1).
func NewMatch(rnd rng.Source) *Match {
	m := &Match{rnd: rnd, round: 1, selected: -1}
	m.dealRound()
	return m
}

// dealRound lays out 8 random pairs and forces one pair to the target.
func (m *Match) dealRound() {
	m.target = int64(m.round)
	amounts := make([]int64, 0, matchPairs*2)
	for i := 0; i < matchPairs; i++ {
		v := int64(m.rnd.Intn(maxTileValue) + 1)
		amounts = append(amounts, v, v)
	}
	amounts[0], amounts[1] = m.target, m.target
	m.rnd.Shuffle(len(amounts), func(i, j int) { amounts[i], amounts[j] = amounts[j], amounts[i] })

	m.tiles = make([]Tile, len(amounts))
	for i, v := range amounts {
		m.tiles[i] = Tile{ID: i, Value: v}
	}
	m.selected = -1
	m.matchedPairs = 0
}

func (m *Match) Kind() Kind { return KindSavings }

func (m *Match) Ended() bool { return m.ended }

// Choose selects the tile with the given ID. The first pick of a pair is
// held; the second either matches (both tiles lock, score accrues) or
// clears the selection. Picks on matched or already-selected tiles are
// ignored rather than failed.
func (m *Match) Choose(index int) (*Outcome, error) {
	if m.ended {
		return nil, ErrSessionEnded
	}
	if index < 0 || index >= len(m.tiles) {
		return nil, ErrInvalidChoice
	}

	tile := &m.tiles[index]
	if tile.Matched || tile.Selected {
		return &Outcome{Ignored: true}, nil
	}

	if m.selected < 0 {
		tile.Selected = true
		m.selected = tile.ID
		return &Outcome{}, nil
	}

	first := &m.tiles[m.selected]
	m.selected = -1

	if first.Value != tile.Value {
		first.Selected = false
		return &Outcome{}, nil
	}

	first.Matched, first.Selected = true, false
	tile.Matched = true
	m.matchedPairs++

	out := &Outcome{Correct: true, Matched: true}
	if tile.Value == m.target {
		m.score += matchTargetScore
		m.saved += m.target * 2
		out.Points = matchTargetScore
		out.MatchedTarget = true
	} else {
		m.score += matchPairScore
		out.Points = matchPairScore
	}

	if m.matchedPairs >= matchPairs {
		m.nextRound()
	}
	return out, nil
}

func (m *Match) nextRound() {
	m.round++
	if m.round > matchRounds {
		m.ended = true
		return
	}
	m.dealRound()
}

// Score is the accumulated match score.
func (m *Match) Score() int64 { return m.score }

// Saved is the banked savings amount.
func (m *Match) Saved() int64 { return m.saved }

func (m *Match) Snapshot() *Snapshot {
	turn := m.round
	if m.ended {
		turn = matchRounds
	}
	tiles := make([]Tile, len(m.tiles))
	copy(tiles, m.tiles)
	return &Snapshot{
		Kind:       KindSavings,
		Turn:       turn,
		TotalTurns: matchRounds,
		Score:      m.score,
		Saved:      m.saved,
		Round:      turn,
		Target:     m.target,
		Tiles:      tiles,
		Ended:      m.ended,
	}
}
