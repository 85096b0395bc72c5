// Package projection implements the month-by-month balance evolution engine
// behind every calculator: compound growth, amortizing loans, and
// contribution-driven investment paths.
//
// Balances here are analytic projections, not settled money, so the package
// works in float64; transcendental factors ((1+r/n)^(n/12) and friends) have
// no exact decimal representation anyway. Settled money lives in
// internal/market, which uses shopspring/decimal.
package projection

import (
	"errors"
	"math"
)

var (
	// ErrNegativePrincipal is returned when a principal or starting balance
	// is negative.
	ErrNegativePrincipal = errors.New("projection: principal must not be negative")

	// ErrNonPositivePrincipal is returned where a strictly positive
	// principal is required (loans).
	ErrNonPositivePrincipal = errors.New("projection: principal must be positive")

	// ErrNegativeRate is returned when an annual rate is negative.
	ErrNegativeRate = errors.New("projection: rate must not be negative")

	// ErrNonPositiveTerm is returned when a horizon in years is zero or
	// negative.
	ErrNonPositiveTerm = errors.New("projection: term must be positive")

	// ErrInvalidFrequency is returned when the compounding frequency is not
	// a positive number of periods per year.
	ErrInvalidFrequency = errors.New("projection: compounding frequency must be positive")

	// ErrNegativeContribution is returned when a periodic contribution is
	// negative.
	ErrNegativeContribution = errors.New("projection: contribution must not be negative")
)

// MonthsPerYear is the sampling granularity of every series.
const MonthsPerYear = 12

// Rule selects the per-month balance update applied by Project.
type Rule int

const (
	// RuleCompound applies frequency-aware compounding plus a monthly
	// contribution. The n=12 and n=365 cases are handled separately from
	// the general case; the three branches produce deliberately different
	// totals and all three are load-bearing.
	RuleCompound Rule = iota

	// RuleGrowth applies flat monthly compounding at annualRate/12 plus a
	// monthly contribution (investment, retirement, savings-goal paths).
	RuleGrowth
)

// Input are the parameters of a growth projection.
type Input struct {
	Principal    float64 `json:"principal"`      // starting balance, >= 0
	AnnualRate   float64 `json:"annual_rate"`    // nominal annual rate as a fraction, >= 0
	Years        float64 `json:"years"`          // horizon, > 0
	Frequency    int     `json:"frequency"`      // compounding periods per year (RuleCompound only)
	Contribution float64 `json:"contribution"`   // added once per month, >= 0
}

// Validate checks the input against the given rule.
func (in Input) Validate(rule Rule) error {
	if in.Principal < 0 {
		return ErrNegativePrincipal
	}
	if in.AnnualRate < 0 {
		return ErrNegativeRate
	}
	if in.Years <= 0 {
		return ErrNonPositiveTerm
	}
	if in.Contribution < 0 {
		return ErrNegativeContribution
	}
	if rule == RuleCompound && in.Frequency <= 0 {
		return ErrInvalidFrequency
	}
	return nil
}

// Point is one sampled month of a projection.
type Point struct {
	Month       int     `json:"month"`
	Balance     float64 `json:"balance"`
	Contributed float64 `json:"contributed"` // principal plus contributions to date
}

// Series holds the monthly path and its yearly reduction. The yearly slice
// is the subsequence of months divisible by 12, so a fractional final year
// never appears in it; callers relying on the last sample must read the
// monthly slice.
type Series struct {
	Monthly []Point `json:"monthly"`
	Yearly  []Point `json:"yearly"`
}

// Final returns the last monthly sample.
func (s *Series) Final() Point {
	return s.Monthly[len(s.Monthly)-1]
}

// Project evolves the balance month by month under the given rule and
// returns the sampled series. The monthly series has floor(years*12)+1
// entries, month 0 being the untouched starting balance.
func Project(in Input, rule Rule) (*Series, error) {
	if err := in.Validate(rule); err != nil {
		return nil, err
	}

	totalMonths := int(math.Floor(in.Years * MonthsPerYear))
	s := &Series{
		Monthly: make([]Point, 0, totalMonths+1),
		Yearly:  make([]Point, 0, totalMonths/MonthsPerYear+1),
	}

	balance := in.Principal
	contributed := in.Principal

	for month := 0; month <= totalMonths; month++ {
		p := Point{Month: month, Balance: balance, Contributed: contributed}
		s.Monthly = append(s.Monthly, p)
		if month%MonthsPerYear == 0 {
			s.Yearly = append(s.Yearly, p)
		}

		if month == totalMonths {
			break
		}
		switch rule {
		case RuleCompound:
			balance = stepCompound(balance, in)
		case RuleGrowth:
			balance = balance*(1+in.AnnualRate/MonthsPerYear) + in.Contribution
		}
		contributed += in.Contribution
	}

	return s, nil
}

// stepCompound advances one month under frequency-aware compounding.
//
// The three branches are not interchangeable: n=365 approximates a month as
// 30 daily factors and the general branch compresses n periods per year into
// a fractional (1+r/n)^(n/12) factor. Collapsing them into one closed form
// shifts the totals.
func stepCompound(balance float64, in Input) float64 {
	switch in.Frequency {
	case MonthsPerYear:
		return balance*(1+in.AnnualRate/MonthsPerYear) + in.Contribution
	case 365:
		const daysInMonth = 30
		for d := 0; d < daysInMonth; d++ {
			balance *= 1 + in.AnnualRate/365
		}
		return balance + in.Contribution
	default:
		n := float64(in.Frequency)
		return balance*math.Pow(1+in.AnnualRate/n, n/MonthsPerYear) + in.Contribution
	}
}

// AmortizationRow is one period of a level-payment loan schedule.
type AmortizationRow struct {
	Month     int     `json:"month"` // 1-based
	Interest  float64 `json:"interest"`
	Principal float64 `json:"principal"`
	Balance   float64 `json:"balance"` // after this payment
}

// YearTotals aggregates principal and interest paid over one schedule year.
// The final entry may cover a partial year.
type YearTotals struct {
	Year      int     `json:"year"` // 1-based
	Principal float64 `json:"principal"`
	Interest  float64 `json:"interest"`
}

// Amortize produces the full monthly schedule for a level payment. The final
// balance may carry a small floating-point residual; when clampZero is set
// (mortgages) the running balance is floored at zero instead.
func Amortize(principal, payment, monthlyRate float64, months int, clampZero bool) []AmortizationRow {
	rows := make([]AmortizationRow, 0, months)
	balance := principal
	for month := 1; month <= months; month++ {
		interest := balance * monthlyRate
		principalPart := payment - interest
		balance -= principalPart
		if clampZero && balance < 0 {
			balance = 0
		}
		rows = append(rows, AmortizationRow{
			Month:     month,
			Interest:  interest,
			Principal: principalPart,
			Balance:   balance,
		})
	}
	return rows
}

// AggregateYears reduces a monthly schedule to per-year principal/interest
// totals. A trailing partial year gets its own entry, matching how the
// schedule is presented.
func AggregateYears(rows []AmortizationRow) []YearTotals {
	var out []YearTotals
	var principal, interest float64
	for i, r := range rows {
		principal += r.Principal
		interest += r.Interest
		if (i+1)%MonthsPerYear == 0 || i == len(rows)-1 {
			out = append(out, YearTotals{
				Year:      (i / MonthsPerYear) + 1,
				Principal: principal,
				Interest:  interest,
			})
			principal, interest = 0, 0
		}
	}
	return out
}

// BalancePath samples the remaining balance of an amortizing loan at months
// 0..months. The balance is clamped at zero, which is the observed behavior
// for mortgage schedules.
func BalancePath(principal, payment, monthlyRate float64, months int) []Point {
	points := make([]Point, 0, months+1)
	balance := principal
	paid := 0.0
	for month := 0; month <= months; month++ {
		points = append(points, Point{Month: month, Balance: balance, Contributed: paid})
		if month == months || monthlyRate <= 0 {
			continue
		}
		interest := balance * monthlyRate
		principalPart := payment - interest
		balance = math.Max(0, balance-principalPart)
		paid += principalPart
	}
	return points
}

// YearlySubset filters a monthly point slice down to months divisible by 12.
func YearlySubset(monthly []Point) []Point {
	var out []Point
	for _, p := range monthly {
		if p.Month%MonthsPerYear == 0 {
			out = append(out, p)
		}
	}
	return out
}
