package arcade

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/finlab/finance-engine/internal/config"
	"github.com/finlab/finance-engine/internal/game"
	"github.com/finlab/finance-engine/internal/market"
	"github.com/finlab/finance-engine/internal/metrics"
	"github.com/finlab/finance-engine/internal/rng"
)

var (
	// ErrSessionNotFound is returned when a session ID is unknown or expired.
	ErrSessionNotFound = errors.New("arcade: session not found")
	// ErrNotStockSession is returned when a market operation targets a
	// non-stocks session.
	ErrNotStockSession = errors.New("arcade: session is not a stock market game")
	// ErrInvalidSide is returned for trade sides other than BUY or SELL.
	ErrInvalidSide = errors.New("arcade: side must be BUY or SELL")
)

// quizTickInterval is the countdown resolution.
const quizTickInterval = time.Second

// Session is one active game. All access goes through its mutex; the
// quiz countdown goroutine competes with HTTP handlers for it.
type Session struct {
	ID      string
	Kind    game.Kind
	Started time.Time

	mu   sync.Mutex
	game game.Game         // nil for stocks
	sim  *market.Simulator // stocks only

	stopTick chan struct{} // quiz only
	tickOnce sync.Once
}

func (s *Session) cancelTicker() {
	if s.stopTick != nil {
		s.tickOnce.Do(func() { close(s.stopTick) })
	}
}

// SessionState is the unified view of a session returned to clients.
// Exactly one of Game or Market is set.
type SessionState struct {
	SessionID string           `json:"session_id"`
	Kind      game.Kind        `json:"kind"`
	Game      *game.Snapshot   `json:"game,omitempty"`
	Market    *market.Snapshot `json:"market,omitempty"`
}

// Manager owns the active sessions. Sessions live until the client ends
// them; the quiz countdown runs in a per-session goroutine.
type Manager struct {
	mu       sync.Mutex
	sessions map[string]*Session

	content   *config.Content
	hub       *WSHub // optional
	newSource func() rng.Source
}

// NewManager creates a session manager over the given catalogs.
// Pass nil for hub if WebSocket broadcasting is not needed.
func NewManager(content *config.Content, hub *WSHub) *Manager {
	return &Manager{
		sessions:  make(map[string]*Session),
		content:   content,
		hub:       hub,
		newSource: rng.NewTimeSeeded,
	}
}

// SetSourceFactory overrides the random source used for new sessions.
// Tests use this to make sessions deterministic.
func (m *Manager) SetSourceFactory(f func() rng.Source) {
	m.newSource = f
}

// Start creates a new session of the given kind.
func (m *Manager) Start(kind game.Kind) (*SessionState, error) {
	if !kind.Valid() {
		return nil, game.ErrInvalidChoice
	}

	src := m.newSource()
	s := &Session{
		ID:      uuid.New().String(),
		Kind:    kind,
		Started: time.Now().UTC(),
	}

	switch kind {
	case game.KindStocks:
		s.sim = market.New(
			m.content.Market.Securities,
			m.content.Market.News,
			m.content.Market.TotalDays,
			m.content.InitialCashDecimal(),
			src,
		)
	case game.KindBudget:
		s.game = game.NewBudget(m.content.BudgetScenarios, src)
	case game.KindSavings:
		s.game = game.NewMatch(src)
	case game.KindQuiz:
		quiz := game.NewQuiz(m.content.QuizQuestions, src)
		s.game = quiz
		s.stopTick = make(chan struct{})
		go m.runCountdown(s, quiz)
	}

	m.mu.Lock()
	m.sessions[s.ID] = s
	m.mu.Unlock()

	metrics.GamesStarted.WithLabelValues(string(kind)).Inc()
	if m.hub != nil {
		m.hub.Broadcast(WSMessage{Type: "game_started", SessionID: s.ID, Game: string(kind)})
	}
	return m.state(s), nil
}

// Get returns the session for id.
func (m *Manager) Get(id string) (*Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return s, nil
}

// End removes a session and stops its countdown.
func (m *Manager) End(id string) error {
	m.mu.Lock()
	s, ok := m.sessions[id]
	if ok {
		delete(m.sessions, id)
	}
	m.mu.Unlock()
	if !ok {
		return ErrSessionNotFound
	}
	s.cancelTicker()
	return nil
}

// State returns the current view of a session.
func (m *Manager) State(id string) (*SessionState, error) {
	s, err := m.Get(id)
	if err != nil {
		return nil, err
	}
	return m.state(s), nil
}

func (m *Manager) state(s *Session) *SessionState {
	s.mu.Lock()
	defer s.mu.Unlock()
	state := &SessionState{SessionID: s.ID, Kind: s.Kind}
	if s.Kind == game.KindStocks {
		state.Market = s.sim.Snapshot()
	} else {
		state.Game = s.game.Snapshot()
	}
	return state
}

// Choose applies a player choice to a turn-based session.
func (m *Manager) Choose(id string, choice int) (*game.Outcome, *SessionState, error) {
	s, err := m.Get(id)
	if err != nil {
		return nil, nil, err
	}
	if s.Kind == game.KindStocks {
		return nil, nil, ErrNotStockSession
	}

	s.mu.Lock()
	outcome, err := s.game.Choose(choice)
	if err != nil {
		s.mu.Unlock()
		return nil, nil, err
	}
	snap := s.game.Snapshot()
	ended := s.game.Ended()
	s.mu.Unlock()

	if ended {
		m.finish(s, snap)
	}
	return outcome, &SessionState{SessionID: s.ID, Kind: s.Kind, Game: snap}, nil
}

// AdvanceDay rolls a stock session forward one trading day.
func (m *Manager) AdvanceDay(id string) (*market.DayReport, error) {
	s, err := m.Get(id)
	if err != nil {
		return nil, err
	}
	if s.Kind != game.KindStocks {
		return nil, ErrNotStockSession
	}

	s.mu.Lock()
	report, err := s.sim.AdvanceDay()
	var snap *market.Snapshot
	ended := err == nil && s.sim.Ended()
	if ended {
		snap = s.sim.Snapshot()
	}
	s.mu.Unlock()
	if err != nil {
		return nil, err
	}

	if m.hub != nil {
		m.hub.Broadcast(WSMessage{Type: "day_advanced", SessionID: s.ID, Game: string(game.KindStocks), Payload: report})
	}
	if ended {
		m.finish(s, &SessionState{SessionID: s.ID, Kind: s.Kind, Market: snap})
	}
	return report, nil
}

// AdvanceAll rolls every active stock session forward one day. Used by
// the cron scheduler.
func (m *Manager) AdvanceAll() {
	m.mu.Lock()
	ids := make([]string, 0, len(m.sessions))
	for id, s := range m.sessions {
		if s.Kind == game.KindStocks {
			ids = append(ids, id)
		}
	}
	m.mu.Unlock()

	for _, id := range ids {
		_, _ = m.AdvanceDay(id)
	}
}

// Trade executes a buy or sell on a stock session.
func (m *Manager) Trade(id, symbol, side string, quantity int64) (*market.Trade, error) {
	s, err := m.Get(id)
	if err != nil {
		return nil, err
	}
	if s.Kind != game.KindStocks {
		return nil, ErrNotStockSession
	}
	if side != "BUY" && side != "SELL" {
		return nil, ErrInvalidSide
	}

	s.mu.Lock()
	var trade *market.Trade
	if side == "BUY" {
		trade, err = s.sim.Buy(symbol, quantity)
	} else {
		trade, err = s.sim.Sell(symbol, quantity)
	}
	s.mu.Unlock()
	if err != nil {
		metrics.TradeRejections.WithLabelValues(rejectionReason(err)).Inc()
		return nil, err
	}

	metrics.TradesTotal.WithLabelValues(side).Inc()
	if m.hub != nil {
		m.hub.Broadcast(WSMessage{Type: "trade_executed", SessionID: s.ID, Game: string(game.KindStocks), Payload: trade})
	}
	return trade, nil
}

func rejectionReason(err error) string {
	switch {
	case errors.Is(err, market.ErrInsufficientFunds):
		return "insufficient_funds"
	case errors.Is(err, market.ErrInsufficientShares):
		return "insufficient_shares"
	case errors.Is(err, market.ErrInvalidQuantity):
		return "invalid_quantity"
	case errors.Is(err, market.ErrUnknownSymbol):
		return "unknown_symbol"
	case errors.Is(err, market.ErrSessionEnded):
		return "session_ended"
	default:
		return "other"
	}
}

// finish reports a terminal session. The session stays registered so the
// client can read the final state and record a score.
func (m *Manager) finish(s *Session, payload any) {
	s.cancelTicker()
	metrics.GamesCompleted.WithLabelValues(string(s.Kind)).Inc()
	if m.hub != nil {
		m.hub.Broadcast(WSMessage{Type: "game_over", SessionID: s.ID, Game: string(s.Kind), Payload: payload})
	}
}

// runCountdown drives the quiz timer. A tick that drains the clock
// submits a timeout choice.
func (m *Manager) runCountdown(s *Session, quiz *game.Quiz) {
	ticker := time.NewTicker(quizTickInterval)
	defer ticker.Stop()
	for {
		select {
		case <-s.stopTick:
			return
		case <-ticker.C:
			s.mu.Lock()
			if quiz.Ended() {
				s.mu.Unlock()
				return
			}
			outcome, _ := quiz.Tick()
			ended := quiz.Ended()
			var snap *game.Snapshot
			if outcome != nil && outcome.TimedOut || ended {
				snap = quiz.Snapshot()
			}
			s.mu.Unlock()

			if outcome != nil && outcome.TimedOut && m.hub != nil {
				m.hub.Broadcast(WSMessage{Type: "question_timeout", SessionID: s.ID, Game: string(game.KindQuiz), Payload: snap})
			}
			if ended {
				m.finish(s, &SessionState{SessionID: s.ID, Kind: s.Kind, Game: snap})
				return
			}
		}
	}
}
