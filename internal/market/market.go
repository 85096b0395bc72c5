// Package market implements the stock-trading simulation: a small basket of
// synthetic securities advanced day by day under a random walk plus scheduled
// news shocks, with buy/sell settlement against a cash balance.
//
// All monetary values use shopspring/decimal — never float64 for money. The
// random walk multiplier is drawn in float64 from an injected rng.Source and
// converted once per update.
package market

import (
	"errors"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/finlab/finance-engine/internal/rng"
)

var (
	// ErrInvalidQuantity is returned when a trade quantity is not positive.
	ErrInvalidQuantity = errors.New("market: quantity must be positive")

	// ErrUnknownSymbol is returned when a trade references a symbol outside
	// the session's catalog.
	ErrUnknownSymbol = errors.New("market: unknown symbol")

	// ErrInsufficientFunds is returned when a buy would cost more than the
	// available cash. The portfolio is left untouched.
	ErrInsufficientFunds = errors.New("market: insufficient funds")

	// ErrInsufficientShares is returned when a sell exceeds the held
	// quantity. The portfolio is left untouched.
	ErrInsufficientShares = errors.New("market: insufficient shares")

	// ErrSessionEnded is returned for any mutation after the final day.
	ErrSessionEnded = errors.New("market: session has ended")
)

// MinPrice is the floor enforced after every price update. Securities never
// trade below 5 currency units.
var MinPrice = decimal.NewFromInt(5)

// PriceScale is the number of decimal places prices are rounded to.
const PriceScale int32 = 4

// AllSymbols marks a news event that hits every security.
const AllSymbols = "ALL"

// SecuritySpec describes one catalog entry before session jitter is applied.
type SecuritySpec struct {
	Symbol     string  `json:"symbol" yaml:"symbol"`
	Name       string  `json:"name" yaml:"name"`
	BasePrice  float64 `json:"base_price" yaml:"base_price"`
	Volatility float64 `json:"volatility" yaml:"volatility"` // daily std-dev proxy in (0,1)
}

// NewsEvent is a scripted one-day price shock drawn uniformly each day.
type NewsEvent struct {
	Kind     string  `json:"kind" yaml:"kind"` // positive, negative, neutral
	Symbol   string  `json:"symbol" yaml:"symbol"`
	Headline string  `json:"headline" yaml:"headline"`
	Impact   float64 `json:"impact" yaml:"impact"` // signed fraction
}

// Security is the live per-session state of one catalog entry.
type Security struct {
	SecuritySpec
	Price         decimal.Decimal   `json:"price"`
	PreviousPrice decimal.Decimal   `json:"previous_price"`
	History       []decimal.Decimal `json:"history"` // append-only, one entry per completed day
}

// Quote is the render-facing view of one security.
type Quote struct {
	Symbol        string          `json:"symbol"`
	Name          string          `json:"name"`
	Price         decimal.Decimal `json:"price"`
	PreviousPrice decimal.Decimal `json:"previous_price"`
	ChangePct     decimal.Decimal `json:"change_pct"`
}

// Trade is the receipt returned from a settled buy or sell.
type Trade struct {
	Symbol   string          `json:"symbol"`
	Side     string          `json:"side"` // "BUY" or "SELL"
	Quantity int64           `json:"quantity"`
	Price    decimal.Decimal `json:"price"`
	Amount   decimal.Decimal `json:"amount"` // cash debited (buy) or credited (sell)
	Cash     decimal.Decimal `json:"cash"`   // cash after settlement
	Held     int64           `json:"held"`   // shares held after settlement
}

// DayReport summarizes one advanced day.
type DayReport struct {
	Day    int        `json:"day"`
	News   *NewsEvent `json:"news,omitempty"`
	Quotes []Quote    `json:"quotes"`
	Ended  bool       `json:"ended"`
}

// Snapshot is the full render-facing session state.
type Snapshot struct {
	Day            int              `json:"day"`
	TotalDays      int              `json:"total_days"`
	Cash           decimal.Decimal  `json:"cash"`
	Holdings       map[string]int64 `json:"holdings"`
	Quotes         []Quote          `json:"quotes"`
	News           *NewsEvent       `json:"news,omitempty"`
	PortfolioValue decimal.Decimal  `json:"portfolio_value"` // cash + marked holdings
	Profit         decimal.Decimal  `json:"profit"`
	Ended          bool             `json:"ended"`
}

// Simulator owns one trading session. A mutex serializes day advances and
// trades, mirroring single-instance trade execution.
type Simulator struct {
	mu sync.Mutex

	rnd        rng.Source
	securities []*Security
	news       []NewsEvent

	day         int
	totalDays   int
	cash        decimal.Decimal
	initialCash decimal.Decimal
	holdings    map[string]int64
	lastNews    *NewsEvent
	ended       bool
}

// New creates a session over the given catalogs. Starting prices are the
// base price scaled by a uniform jitter in [0.9, 1.1].
func New(specs []SecuritySpec, news []NewsEvent, totalDays int, initialCash decimal.Decimal, rnd rng.Source) *Simulator {
	securities := make([]*Security, 0, len(specs))
	for _, spec := range specs {
		jitter := 0.9 + rnd.Float64()*0.2
		price := decimal.NewFromFloat(spec.BasePrice * jitter).Round(PriceScale)
		securities = append(securities, &Security{
			SecuritySpec:  spec,
			Price:         price,
			PreviousPrice: decimal.NewFromFloat(spec.BasePrice),
		})
	}
	return &Simulator{
		rnd:         rnd,
		securities:  securities,
		news:        news,
		day:         1,
		totalDays:   totalDays,
		cash:        initialCash,
		initialCash: initialCash,
		holdings:    make(map[string]int64),
	}
}

// AdvanceDay draws one news event, walks every price, and advances the day
// counter. Advancing past the final day ends the session instead.
func (s *Simulator) AdvanceDay() (*DayReport, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.ended {
		return nil, ErrSessionEnded
	}
	if s.day >= s.totalDays {
		s.ended = true
		return &DayReport{Day: s.day, News: s.lastNews, Quotes: s.quotes(), Ended: true}, nil
	}

	event := s.news[s.rnd.Intn(len(s.news))]
	s.lastNews = &event

	for _, sec := range s.securities {
		sec.PreviousPrice = sec.Price

		walk := (s.rnd.Float64() - 0.5) * 2 * sec.Volatility
		impact := 0.0
		if event.Symbol == sec.Symbol || event.Symbol == AllSymbols {
			impact = event.Impact
		}

		price := sec.Price.Mul(decimal.NewFromFloat(1 + walk + impact)).Round(PriceScale)
		if price.LessThan(MinPrice) {
			price = MinPrice
		}
		sec.Price = price
		sec.History = append(sec.History, price)
	}

	s.day++
	return &DayReport{Day: s.day, News: s.lastNews, Quotes: s.quotes(), Ended: false}, nil
}

// Buy settles a purchase at the current price. Validation happens before any
// mutation, so a failed trade leaves cash and holdings unchanged.
func (s *Simulator) Buy(symbol string, qty int64) (*Trade, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.ended {
		return nil, ErrSessionEnded
	}
	if qty <= 0 {
		return nil, ErrInvalidQuantity
	}
	sec := s.findSecurity(symbol)
	if sec == nil {
		return nil, ErrUnknownSymbol
	}

	cost := sec.Price.Mul(decimal.NewFromInt(qty))
	if cost.GreaterThan(s.cash) {
		return nil, ErrInsufficientFunds
	}

	s.cash = s.cash.Sub(cost)
	s.holdings[symbol] += qty

	return &Trade{
		Symbol:   symbol,
		Side:     "BUY",
		Quantity: qty,
		Price:    sec.Price,
		Amount:   cost,
		Cash:     s.cash,
		Held:     s.holdings[symbol],
	}, nil
}

// Sell settles a sale at the current price, subject to held quantity.
func (s *Simulator) Sell(symbol string, qty int64) (*Trade, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.ended {
		return nil, ErrSessionEnded
	}
	if qty <= 0 {
		return nil, ErrInvalidQuantity
	}
	sec := s.findSecurity(symbol)
	if sec == nil {
		return nil, ErrUnknownSymbol
	}
	if qty > s.holdings[symbol] {
		return nil, ErrInsufficientShares
	}

	proceeds := sec.Price.Mul(decimal.NewFromInt(qty))
	s.cash = s.cash.Add(proceeds)
	s.holdings[symbol] -= qty

	return &Trade{
		Symbol:   symbol,
		Side:     "SELL",
		Quantity: qty,
		Price:    sec.Price,
		Amount:   proceeds,
		Cash:     s.cash,
		Held:     s.holdings[symbol],
	}, nil
}

// PortfolioValue marks held shares to the current prices and adds cash.
func (s *Simulator) PortfolioValue() decimal.Decimal {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.valueLocked()
}

// Profit is the portfolio value minus the session's initial cash.
func (s *Simulator) Profit() decimal.Decimal {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.valueLocked().Sub(s.initialCash)
}

// Ended reports whether the final day has passed.
func (s *Simulator) Ended() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ended
}

// Snapshot returns the full render-facing state.
func (s *Simulator) Snapshot() *Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	holdings := make(map[string]int64, len(s.holdings))
	for sym, qty := range s.holdings {
		if qty > 0 {
			holdings[sym] = qty
		}
	}

	value := s.valueLocked()
	return &Snapshot{
		Day:            s.day,
		TotalDays:      s.totalDays,
		Cash:           s.cash,
		Holdings:       holdings,
		Quotes:         s.quotes(),
		News:           s.lastNews,
		PortfolioValue: value,
		Profit:         value.Sub(s.initialCash),
		Ended:          s.ended,
	}
}

func (s *Simulator) valueLocked() decimal.Decimal {
	value := s.cash
	for sym, qty := range s.holdings {
		if qty <= 0 {
			continue
		}
		if sec := s.findSecurity(sym); sec != nil {
			value = value.Add(sec.Price.Mul(decimal.NewFromInt(qty)))
		}
	}
	return value
}

func (s *Simulator) findSecurity(symbol string) *Security {
	for _, sec := range s.securities {
		if sec.Symbol == symbol {
			return sec
		}
	}
	return nil
}

func (s *Simulator) quotes() []Quote {
	hundred := decimal.NewFromInt(100)
	quotes := make([]Quote, 0, len(s.securities))
	for _, sec := range s.securities {
		change := decimal.Zero
		if sec.PreviousPrice.IsPositive() {
			change = sec.Price.Sub(sec.PreviousPrice).Div(sec.PreviousPrice).Mul(hundred).Round(2)
		}
		quotes = append(quotes, Quote{
			Symbol:        sec.Symbol,
			Name:          sec.Name,
			Price:         sec.Price,
			PreviousPrice: sec.PreviousPrice,
			ChangePct:     change,
		})
	}
	return quotes
}
