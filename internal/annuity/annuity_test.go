package annuity

import (
	"math"
	"testing"
)

const tolerance = 1e-6

func approxEqual(a, b float64) bool {
	return math.Abs(a-b) < tolerance
}

// --- LoanPayment tests ---

func TestLoanPayment_KnownValue(t *testing.T) {
	// 10000 at 6% annual over 12 months: the standard amortization tables
	// give 860.66.
	payment, err := LoanPayment(10000, 0.06/12, 12)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if math.Abs(payment-860.66) > 0.01 {
		t.Errorf("expected payment ~860.66, got %.4f", payment)
	}
}

func TestLoanPayment_ZeroRate(t *testing.T) {
	payment, err := LoanPayment(1200, 0, 12)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !approxEqual(payment, 100) {
		t.Errorf("zero rate should divide evenly: expected 100, got %.4f", payment)
	}
}

func TestLoanPayment_RetiresPrincipal(t *testing.T) {
	principal := 25000.0
	rate := 0.045 / 12
	months := 60

	payment, err := LoanPayment(principal, rate, months)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Simulate the amortization; the balance must land on zero.
	balance := principal
	for m := 0; m < months; m++ {
		balance = balance*(1+rate) - payment
	}
	if math.Abs(balance) > 0.01 {
		t.Errorf("expected zero terminal balance, got %.6f", balance)
	}
}

func TestLoanPayment_InvalidInput(t *testing.T) {
	tests := []struct {
		name    string
		p, i    float64
		m       int
		wantErr error
	}{
		{"zero principal", 0, 0.05, 12, ErrNonPositivePrincipal},
		{"negative principal", -100, 0.05, 12, ErrNonPositivePrincipal},
		{"negative rate", 1000, -0.01, 12, ErrNegativeRate},
		{"zero months", 1000, 0.05, 0, ErrNonPositiveMonths},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := LoanPayment(tt.p, tt.i, tt.m); err != tt.wantErr {
				t.Errorf("expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}

// --- SolvePayment tests ---

func TestSolvePayment_InvertsFutureValue(t *testing.T) {
	tests := []struct {
		goal, current, annualRate float64
		months                    int
	}{
		{10000, 0, 0.05, 24},
		{10000, 2000, 0.05, 24},
		{50000, 10000, 0.08, 120},
		{1500, 500, 0.03, 6},
	}

	for _, tt := range tests {
		i := tt.annualRate / 12
		payment, err := SolvePayment(tt.goal, tt.current, i, tt.months)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		got := FutureValue(tt.current, payment, i, tt.months)
		if math.Abs(got-tt.goal) > 0.01 {
			t.Errorf("goal=%.0f current=%.0f: depositing %.4f reaches %.4f",
				tt.goal, tt.current, payment, got)
		}
	}
}

func TestSolvePayment_ZeroRate(t *testing.T) {
	payment, err := SolvePayment(1200, 200, 0, 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !approxEqual(payment, 100) {
		t.Errorf("expected 100, got %.4f", payment)
	}
}

func TestSolvePayment_GoalAlreadyCovered(t *testing.T) {
	// The compounded current balance exceeds the goal; the deposit clamps
	// to zero instead of going negative.
	payment, err := SolvePayment(1000, 5000, 0.05/12, 12)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if payment != 0 {
		t.Errorf("expected zero deposit, got %.4f", payment)
	}
}

func TestSolvePayment_InvalidInput(t *testing.T) {
	if _, err := SolvePayment(1000, 0, -0.01, 12); err != ErrNegativeRate {
		t.Errorf("expected ErrNegativeRate, got %v", err)
	}
	if _, err := SolvePayment(1000, 0, 0.01, 0); err != ErrNonPositiveMonths {
		t.Errorf("expected ErrNonPositiveMonths, got %v", err)
	}
}

// --- FutureValue tests ---

func TestFutureValue_ZeroRate(t *testing.T) {
	if got := FutureValue(500, 100, 0, 12); !approxEqual(got, 1700) {
		t.Errorf("expected 1700, got %.4f", got)
	}
}

func TestFutureValue_MatchesIteration(t *testing.T) {
	current, deposit := 1000.0, 250.0
	i := 0.06 / 12
	months := 36

	balance := current
	for m := 0; m < months; m++ {
		balance = balance*(1+i) + deposit
	}

	got := FutureValue(current, deposit, i, months)
	if math.Abs(got-balance) > 0.01 {
		t.Errorf("closed form %.4f diverges from iteration %.4f", got, balance)
	}
}
