// Package arcade provides the HTTP handlers and session management for
// the mini-games: the budget challenge, the stock market simulator, the
// savings match, and the trivia quiz.
package arcade

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/finlab/finance-engine/internal/game"
	"github.com/finlab/finance-engine/internal/market"
	"github.com/finlab/finance-engine/internal/scores"
)

// Service handles game session requests.
type Service struct {
	manager *Manager
	store   scores.Store
}

// NewService creates a new arcade service.
func NewService(manager *Manager, store scores.Store) *Service {
	return &Service{manager: manager, store: store}
}

// Routes mounts the arcade endpoints on a fresh router.
func (s *Service) Routes() chi.Router {
	r := chi.NewRouter()
	r.Post("/games", s.StartGame)
	r.Get("/games/{sessionID}", s.GetState)
	r.Delete("/games/{sessionID}", s.EndGame)
	r.Post("/games/{sessionID}/choose", s.Choose)
	r.Post("/games/{sessionID}/advance", s.AdvanceDay)
	r.Post("/games/{sessionID}/trade", s.Trade)
	r.Post("/games/{sessionID}/score", s.RecordScore)
	r.Get("/scores", s.BestScores)
	r.Get("/theme", s.GetTheme)
	r.Put("/theme", s.SetTheme)
	return r
}

// --- Request/Response types ---

// StartGameRequest is the JSON body for POST /games.
type StartGameRequest struct {
	Game game.Kind `json:"game"`
}

// ChooseRequest is the JSON body for POST /games/{sessionID}/choose.
type ChooseRequest struct {
	Choice int `json:"choice"`
}

// TradeRequest is the JSON body for POST /games/{sessionID}/trade.
type TradeRequest struct {
	Symbol   string `json:"symbol"`
	Side     string `json:"side"` // "BUY" or "SELL"
	Quantity int64  `json:"quantity"`
}

// ChooseResponse pairs the outcome of a choice with the resulting state.
type ChooseResponse struct {
	Outcome *game.Outcome `json:"outcome"`
	State   *SessionState `json:"state"`
}

// RecordScoreResponse reports whether a final score beat the stored best.
type RecordScoreResponse struct {
	Game     game.Kind `json:"game"`
	Score    int64     `json:"score"`
	Improved bool      `json:"improved"`
	Best     int64     `json:"best"`
}

// --- HTTP Handlers ---

// StartGame handles POST /api/v1/games
func (s *Service) StartGame(w http.ResponseWriter, r *http.Request) {
	var req StartGameRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if !req.Game.Valid() {
		writeError(w, "game must be one of budget, stocks, savings, quiz", http.StatusBadRequest)
		return
	}

	state, err := s.manager.Start(req.Game)
	if err != nil {
		writeError(w, err.Error(), http.StatusBadRequest)
		return
	}

	slog.Info("game started", "session", state.SessionID, "game", req.Game)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(state)
}

// GetState handles GET /api/v1/games/{sessionID}
func (s *Service) GetState(w http.ResponseWriter, r *http.Request) {
	state, err := s.manager.State(chi.URLParam(r, "sessionID"))
	if err != nil {
		writeGameError(w, err)
		return
	}
	writeJSON(w, state)
}

// EndGame handles DELETE /api/v1/games/{sessionID}
func (s *Service) EndGame(w http.ResponseWriter, r *http.Request) {
	if err := s.manager.End(chi.URLParam(r, "sessionID")); err != nil {
		writeGameError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Choose handles POST /api/v1/games/{sessionID}/choose
func (s *Service) Choose(w http.ResponseWriter, r *http.Request) {
	var req ChooseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	outcome, state, err := s.manager.Choose(chi.URLParam(r, "sessionID"), req.Choice)
	if err != nil {
		writeGameError(w, err)
		return
	}
	writeJSON(w, ChooseResponse{Outcome: outcome, State: state})
}

// AdvanceDay handles POST /api/v1/games/{sessionID}/advance
func (s *Service) AdvanceDay(w http.ResponseWriter, r *http.Request) {
	report, err := s.manager.AdvanceDay(chi.URLParam(r, "sessionID"))
	if err != nil {
		writeGameError(w, err)
		return
	}
	writeJSON(w, report)
}

// Trade handles POST /api/v1/games/{sessionID}/trade
func (s *Service) Trade(w http.ResponseWriter, r *http.Request) {
	var req TradeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	sessionID := chi.URLParam(r, "sessionID")
	trade, err := s.manager.Trade(sessionID, req.Symbol, req.Side, req.Quantity)
	if err != nil {
		writeGameError(w, err)
		return
	}

	slog.Info("trade executed",
		"session", sessionID,
		"symbol", trade.Symbol,
		"side", trade.Side,
		"qty", trade.Quantity,
		"price", trade.Price.String(),
		"cash", trade.Cash.String(),
	)
	writeJSON(w, trade)
}

// RecordScore handles POST /api/v1/games/{sessionID}/score
// Persists the session's final score if it beats the stored best. Only
// ended sessions can record.
func (s *Service) RecordScore(w http.ResponseWriter, r *http.Request) {
	state, err := s.manager.State(chi.URLParam(r, "sessionID"))
	if err != nil {
		writeGameError(w, err)
		return
	}

	score, ended := finalScore(state)
	if !ended {
		writeError(w, "session has not ended", http.StatusConflict)
		return
	}

	improved, err := s.store.RecordScore(r.Context(), state.Kind, score)
	if err != nil {
		writeError(w, "failed to record score", http.StatusInternalServerError)
		return
	}
	best, err := s.store.BestScore(r.Context(), state.Kind)
	if err != nil {
		writeError(w, "failed to load best score", http.StatusInternalServerError)
		return
	}

	slog.Info("score recorded", "game", state.Kind, "score", score, "improved", improved)
	writeJSON(w, RecordScoreResponse{Game: state.Kind, Score: score, Improved: improved, Best: best})
}

// BestScores handles GET /api/v1/scores
func (s *Service) BestScores(w http.ResponseWriter, r *http.Request) {
	best, err := s.store.BestScores(r.Context())
	if err != nil {
		writeError(w, "failed to load scores", http.StatusInternalServerError)
		return
	}
	writeJSON(w, best)
}

// GetTheme handles GET /api/v1/theme
func (s *Service) GetTheme(w http.ResponseWriter, r *http.Request) {
	theme, err := s.store.Theme(r.Context())
	if err != nil {
		writeError(w, "failed to load theme", http.StatusInternalServerError)
		return
	}
	writeJSON(w, map[string]string{"theme": theme})
}

// SetTheme handles PUT /api/v1/theme
func (s *Service) SetTheme(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Theme string `json:"theme"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if req.Theme != "light" && req.Theme != "dark" {
		writeError(w, "theme must be light or dark", http.StatusBadRequest)
		return
	}

	if err := s.store.SetTheme(r.Context(), req.Theme); err != nil {
		writeError(w, "failed to save theme", http.StatusInternalServerError)
		return
	}
	writeJSON(w, map[string]string{"theme": req.Theme})
}

// finalScore extracts the recordable score from a terminal state. Stock
// sessions record profit truncated to whole currency units.
func finalScore(state *SessionState) (score int64, ended bool) {
	if state.Market != nil {
		return state.Market.Profit.IntPart(), state.Market.Ended
	}
	return state.Game.Score, state.Game.Ended
}

// writeGameError maps session and game errors to HTTP statuses.
func writeGameError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, ErrSessionNotFound):
		status = http.StatusNotFound
	case errors.Is(err, game.ErrSessionEnded), errors.Is(err, market.ErrSessionEnded),
		errors.Is(err, market.ErrInsufficientFunds), errors.Is(err, market.ErrInsufficientShares):
		status = http.StatusConflict
	case errors.Is(err, game.ErrInvalidChoice), errors.Is(err, ErrInvalidSide),
		errors.Is(err, ErrNotStockSession), errors.Is(err, market.ErrInvalidQuantity),
		errors.Is(err, market.ErrUnknownSymbol):
		status = http.StatusBadRequest
	}
	writeError(w, err.Error(), status)
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v)
}

// writeError writes a JSON error response.
func writeError(w http.ResponseWriter, message string, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}
