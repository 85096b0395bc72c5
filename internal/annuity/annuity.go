// Package annuity holds the level-payment algebra shared by the loan
// calculators and the savings-goal planner. Both directions use the same
// annuity factor ((1+i)^m − 1)/i; LoanPayment solves for the payment that
// retires a present value, SolvePayment for the deposit that reaches a
// future value.
package annuity

import (
	"errors"
	"math"
)

var (
	// ErrNonPositiveMonths is returned when the horizon is zero or negative.
	ErrNonPositiveMonths = errors.New("annuity: months must be positive")

	// ErrNegativeRate is returned when the periodic rate is negative.
	ErrNegativeRate = errors.New("annuity: rate must not be negative")

	// ErrNonPositivePrincipal is returned when a loan principal is zero or
	// negative.
	ErrNonPositivePrincipal = errors.New("annuity: principal must be positive")
)

// LoanPayment returns the level monthly payment that amortizes principal p
// at periodic rate i over m months. A zero rate degrades to straight-line
// division rather than propagating a division by zero.
func LoanPayment(p, i float64, m int) (float64, error) {
	if p <= 0 {
		return 0, ErrNonPositivePrincipal
	}
	if i < 0 {
		return 0, ErrNegativeRate
	}
	if m <= 0 {
		return 0, ErrNonPositiveMonths
	}
	if i == 0 {
		return p / float64(m), nil
	}
	factor := math.Pow(1+i, float64(m))
	return p * i * factor / (factor - 1), nil
}

// SolvePayment returns the level monthly deposit x such that
//
//	current·(1+i)^m + x·((1+i)^m − 1)/i = goal
//
// A zero rate degrades to (goal−current)/m. Goals already covered by the
// compounded current balance need no deposit, so negative solutions clamp
// to zero.
func SolvePayment(goal, current, i float64, m int) (float64, error) {
	if i < 0 {
		return 0, ErrNegativeRate
	}
	if m <= 0 {
		return 0, ErrNonPositiveMonths
	}
	if i == 0 {
		return math.Max(0, (goal-current)/float64(m)), nil
	}
	factor := math.Pow(1+i, float64(m))
	remaining := goal - current*factor
	payment := remaining * i / (factor - 1)
	return math.Max(0, payment), nil
}

// FutureValue returns the balance after m months of compounding current at
// periodic rate i with a level deposit each month. It is the forward form of
// SolvePayment and exists mainly so the two can be cross-checked.
func FutureValue(current, deposit, i float64, m int) float64 {
	if i == 0 {
		return current + deposit*float64(m)
	}
	factor := math.Pow(1+i, float64(m))
	return current*factor + deposit*(factor-1)/i
}
