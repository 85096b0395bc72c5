package game

import "github.com/finlab/finance-engine/internal/rng"

// Budget session constants. Two scenarios make one simulated month.
const (
	budgetIncome         = 5000
	budgetScenarios      = 12
	scenariosPerMonth    = 2
	budgetChoiceFeedback = "There might be better options."
)

// BudgetChoice is one option in a scenario. Impact is a signed follow-on
// effect; only the best choice's positive impact credits savings.
type BudgetChoice struct {
	Text   string `json:"text" yaml:"text"`
	Cost   int64  `json:"cost" yaml:"cost"`
	Impact int64  `json:"impact" yaml:"impact"`
	Best   bool   `json:"best" yaml:"best"`
}

// BudgetScenario is one spending decision presented to the player.
type BudgetScenario struct {
	Title       string         `json:"title" yaml:"title"`
	Description string         `json:"description" yaml:"description"`
	Choices     []BudgetChoice `json:"choices" yaml:"choices"`
}

// Budget is the budgeting game session: a shuffled scenario queue drawn
// without replacement, a monthly budget, and accumulated savings.
//
// Savings only ever grows: unspent budget rolls in at month boundaries
// (non-negative part only, overspending is not carried as debt) and best
// choices add their bonus. Poor choices cost feedback, not savings.
type Budget struct {
	month     int
	income    int64
	remaining int64
	savings   int64
	idx       int
	queue     []BudgetScenario
}

// NewBudget starts a session over a shuffled copy of the catalog.
func NewBudget(catalog []BudgetScenario, rnd rng.Source) *Budget {
	queue := make([]BudgetScenario, len(catalog))
	copy(queue, catalog)
	rnd.Shuffle(len(queue), func(i, j int) { queue[i], queue[j] = queue[j], queue[i] })
	if len(queue) > budgetScenarios {
		queue = queue[:budgetScenarios]
	}
	return &Budget{
		month:     1,
		income:    budgetIncome,
		remaining: budgetIncome,
		queue:     queue,
	}
}

func (b *Budget) Kind() Kind { return KindBudget }

func (b *Budget) Ended() bool { return b.idx >= len(b.queue) }

// Current returns the scenario awaiting a choice, or nil once ended.
func (b *Budget) Current() *BudgetScenario {
	if b.Ended() {
		return nil
	}
	return &b.queue[b.idx]
}

// Choose applies choice index to the current scenario and advances the turn.
// Month boundaries roll the non-negative remaining budget into savings; the
// final month rolls over when the last scenario resolves.
func (b *Budget) Choose(index int) (*Outcome, error) {
	if b.Ended() {
		return nil, ErrSessionEnded
	}
	scenario := b.queue[b.idx]
	if index < 0 || index >= len(scenario.Choices) {
		return nil, ErrInvalidChoice
	}

	choice := scenario.Choices[index]
	b.remaining -= choice.Cost

	out := &Outcome{Correct: choice.Best}
	if choice.Best {
		if choice.Impact > 0 {
			b.savings += choice.Impact
			out.Points = choice.Impact
		}
		out.Message = "Great choice! You saved wisely."
	} else if choice.Impact < 0 {
		out.Message = "That might not be the best choice."
	} else {
		out.Message = budgetChoiceFeedback
	}

	b.idx++
	if b.Ended() {
		b.rollMonth()
	} else if b.idx%scenariosPerMonth == 0 {
		b.rollMonth()
		b.month++
		b.remaining = b.income
	}
	return out, nil
}

func (b *Budget) rollMonth() {
	if b.remaining > 0 {
		b.savings += b.remaining
	}
}

// Savings is the session's accumulated score.
func (b *Budget) Savings() int64 { return b.savings }

func (b *Budget) Snapshot() *Snapshot {
	return &Snapshot{
		Kind:       KindBudget,
		Turn:       b.idx,
		TotalTurns: len(b.queue),
		Score:      b.savings,
		Saved:      b.savings,
		Month:      b.month,
		Income:     b.income,
		Remaining:  b.remaining,
		Scenario:   b.Current(),
		Ended:      b.Ended(),
	}
}
