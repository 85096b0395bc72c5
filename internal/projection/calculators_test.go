package projection

import (
	"math"
	"testing"
)

// --- CompoundInterest tests ---

func TestCompoundInterest_KnownValue(t *testing.T) {
	result, err := CompoundInterest(Input{Principal: 1000, AnnualRate: 0.05, Years: 1, Frequency: 12})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if math.Abs(result.FinalAmount-1051.16) > 0.01 {
		t.Errorf("expected final ~1051.16, got %.4f", result.FinalAmount)
	}
	if result.TotalContributions != 1000 {
		t.Errorf("expected contributions 1000, got %.2f", result.TotalContributions)
	}
	if math.Abs(result.InterestEarned-51.16) > 0.01 {
		t.Errorf("expected interest ~51.16, got %.4f", result.InterestEarned)
	}
}

func TestCompoundInterest_WithContributions(t *testing.T) {
	result, err := CompoundInterest(Input{
		Principal: 5000, AnnualRate: 0.06, Years: 10, Frequency: 12, Contribution: 200,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if want := 5000 + 200*120.0; result.TotalContributions != want {
		t.Errorf("expected contributions %.0f, got %.2f", want, result.TotalContributions)
	}
	if result.FinalAmount <= result.TotalContributions {
		t.Errorf("growth at a positive rate must beat contributions: %.2f <= %.2f",
			result.FinalAmount, result.TotalContributions)
	}
	if math.Abs(result.InterestEarned-(result.FinalAmount-result.TotalContributions)) > 1e-9 {
		t.Errorf("interest earned must be final minus contributed")
	}
}

func TestCompoundInterest_InvalidFrequency(t *testing.T) {
	if _, err := CompoundInterest(Input{Principal: 1000, Years: 1}); err != ErrInvalidFrequency {
		t.Errorf("expected ErrInvalidFrequency, got %v", err)
	}
}

// --- SimpleInterest tests ---

func TestSimpleInterest_KnownValue(t *testing.T) {
	result, err := SimpleInterest(1000, 0.05, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.Interest != 100 {
		t.Errorf("expected interest 100, got %.2f", result.Interest)
	}
	if result.TotalAmount != 1100 {
		t.Errorf("expected total 1100, got %.2f", result.TotalAmount)
	}
	if math.Abs(result.YearlyInterest-50) > 1e-9 {
		t.Errorf("expected yearly interest 50, got %.4f", result.YearlyInterest)
	}
	if final := result.Series.Final(); math.Abs(final.Balance-1100) > 1e-9 {
		t.Errorf("series must end at the total amount, got %.4f", final.Balance)
	}
}

func TestSimpleInterest_LinearAccrual(t *testing.T) {
	result, err := SimpleInterest(1200, 0.10, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Equal increments every month.
	monthly := result.Series.Monthly
	step := monthly[1].Balance - monthly[0].Balance
	for i := 2; i < len(monthly); i++ {
		if got := monthly[i].Balance - monthly[i-1].Balance; math.Abs(got-step) > 1e-9 {
			t.Fatalf("accrual not linear at month %d", i)
		}
	}
}

// --- CAGR tests ---

func TestCAGR_Doubling(t *testing.T) {
	result, err := CAGR(1000, 2000, 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := (math.Pow(2, 0.1) - 1) * 100 // 7.177%
	if math.Abs(result.CAGRPct-want) > 1e-6 {
		t.Errorf("expected CAGR %.4f%%, got %.4f%%", want, result.CAGRPct)
	}
	if result.TotalReturnPct != 100 {
		t.Errorf("expected total return 100%%, got %.2f%%", result.TotalReturnPct)
	}
	if result.AbsoluteReturn != 1000 {
		t.Errorf("expected absolute return 1000, got %.2f", result.AbsoluteReturn)
	}
}

func TestCAGR_SeriesEndsAtFinal(t *testing.T) {
	result, err := CAGR(500, 1800, 4)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if final := result.Series.Final(); math.Abs(final.Balance-1800) > 0.01 {
		t.Errorf("smooth path must land on the final value, got %.4f", final.Balance)
	}
}

func TestCAGR_Rejections(t *testing.T) {
	if _, err := CAGR(0, 1000, 5); err != ErrNonPositiveInitial {
		t.Errorf("expected ErrNonPositiveInitial, got %v", err)
	}
	if _, err := CAGR(1000, -1, 5); err != ErrNegativeFinal {
		t.Errorf("expected ErrNegativeFinal, got %v", err)
	}
	if _, err := CAGR(1000, 2000, 0); err != ErrNonPositiveTerm {
		t.Errorf("expected ErrNonPositiveTerm, got %v", err)
	}
}

// --- ROI tests ---

func TestROI_Profit(t *testing.T) {
	result, err := ROI(1000, 1500, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.ROIPct != 50 {
		t.Errorf("expected ROI 50%%, got %.2f%%", result.ROIPct)
	}
	want := (math.Sqrt(1.5) - 1) * 100 // 22.474%
	if math.Abs(result.AnnualizedROIPct-want) > 1e-6 {
		t.Errorf("expected annualized %.4f%%, got %.4f%%", want, result.AnnualizedROIPct)
	}
	if !result.Profit {
		t.Error("expected profit flag")
	}
}

func TestROI_Loss(t *testing.T) {
	result, err := ROI(1000, 800, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Profit {
		t.Error("expected loss")
	}
	if result.ROIPct != -20 {
		t.Errorf("expected ROI -20%%, got %.2f%%", result.ROIPct)
	}
}

// --- Loan tests ---

func TestLoan_KnownValue(t *testing.T) {
	result, err := Loan(10000, 0.06, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if math.Abs(result.MonthlyPayment-860.66) > 0.01 {
		t.Errorf("expected payment ~860.66, got %.4f", result.MonthlyPayment)
	}
	if math.Abs(result.TotalInterest-327.97) > 0.05 {
		t.Errorf("expected interest ~327.97, got %.4f", result.TotalInterest)
	}
	if len(result.Schedule) != 12 {
		t.Errorf("expected 12 schedule rows, got %d", len(result.Schedule))
	}
	if math.Abs(result.YearlyPayment-result.MonthlyPayment*12) > 1e-9 {
		t.Errorf("yearly payment must be 12 monthly payments")
	}
}

func TestLoan_ZeroRate(t *testing.T) {
	result, err := Loan(12000, 0, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.MonthlyPayment != 1000 {
		t.Errorf("expected straight-line payment 1000, got %.4f", result.MonthlyPayment)
	}
	if result.TotalInterest != 0 {
		t.Errorf("expected zero interest, got %.4f", result.TotalInterest)
	}
}

func TestLoan_NonPositivePrincipal(t *testing.T) {
	if _, err := Loan(0, 0.05, 5); err != ErrNonPositivePrincipal {
		t.Errorf("expected ErrNonPositivePrincipal, got %v", err)
	}
}

// --- Mortgage tests ---

func TestMortgage_KnownValue(t *testing.T) {
	result, err := Mortgage(MortgageInput{
		HomePrice:   300000,
		DownPayment: 60000,
		Years:       30,
		AnnualRate:  0.04,
		PropertyTax: 3600,
		Insurance:   1200,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.LoanAmount != 240000 {
		t.Errorf("expected loan amount 240000, got %.2f", result.LoanAmount)
	}
	if math.Abs(result.PrincipalAndInterest-1145.80) > 0.05 {
		t.Errorf("expected P&I ~1145.80, got %.4f", result.PrincipalAndInterest)
	}
	if result.MonthlyTax != 300 || result.MonthlyInsurance != 100 {
		t.Errorf("escrow mismatch: tax %.2f insurance %.2f", result.MonthlyTax, result.MonthlyInsurance)
	}
	if want := result.PrincipalAndInterest + 400; math.Abs(result.TotalMonthly-want) > 1e-9 {
		t.Errorf("total monthly must include escrow: %.4f vs %.4f", result.TotalMonthly, want)
	}
	if result.DownPaymentPct != 20 {
		t.Errorf("expected 20%% down, got %.2f%%", result.DownPaymentPct)
	}
}

func TestMortgage_BalanceClampedAtZero(t *testing.T) {
	result, err := Mortgage(MortgageInput{HomePrice: 100000, DownPayment: 20000, Years: 15, AnnualRate: 0.035})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, p := range result.Series.Monthly {
		if p.Balance < 0 {
			t.Fatalf("balance went negative at month %d", p.Month)
		}
	}
	if final := result.Series.Final(); final.Balance > 1 {
		t.Errorf("expected terminal balance near zero, got %.4f", final.Balance)
	}
}

func TestMortgage_ZeroRate(t *testing.T) {
	result, err := Mortgage(MortgageInput{HomePrice: 120000, DownPayment: 0, Years: 10, AnnualRate: 0})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.PrincipalAndInterest != 1000 {
		t.Errorf("expected straight-line P&I 1000, got %.4f", result.PrincipalAndInterest)
	}
	if result.TotalInterest != 0 {
		t.Errorf("expected zero interest, got %.4f", result.TotalInterest)
	}
}

func TestMortgage_DownPaymentTooLarge(t *testing.T) {
	_, err := Mortgage(MortgageInput{HomePrice: 100000, DownPayment: 100000, Years: 30, AnnualRate: 0.04})
	if err != ErrDownPaymentTooLarge {
		t.Errorf("expected ErrDownPaymentTooLarge, got %v", err)
	}
}

// --- Investment tests ---

func TestInvestment_MatchesClosedForm(t *testing.T) {
	result, err := Investment(10000, 500, 0.07, 20)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	i := 0.07 / 12
	factor := math.Pow(1+i, 240)
	want := 10000*factor + 500*(factor-1)/i
	if math.Abs(result.FinalBalance-want) > 0.05 {
		t.Errorf("expected %.2f, got %.2f", want, result.FinalBalance)
	}
	if want := 10000 + 500*240.0; result.TotalContributions != want {
		t.Errorf("expected contributions %.0f, got %.2f", want, result.TotalContributions)
	}
}

// --- Retirement tests ---

func TestRetirement_FourPercentRule(t *testing.T) {
	result, err := Retirement(30, 65, 50000, 1000, 0.07)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.Years != 35 {
		t.Errorf("expected 35 years, got %.1f", result.Years)
	}
	if want := result.FinalBalance * 0.04; math.Abs(result.YearlyIncome-want) > 1e-6 {
		t.Errorf("yearly income must be 4%% of the final balance")
	}
	if want := result.YearlyIncome / 12; math.Abs(result.MonthlyIncome-want) > 1e-6 {
		t.Errorf("monthly income must be a twelfth of the yearly income")
	}
}

func TestRetirement_AgeOrder(t *testing.T) {
	if _, err := Retirement(65, 65, 0, 0, 0.05); err != ErrRetirementAgeOrder {
		t.Errorf("expected ErrRetirementAgeOrder, got %v", err)
	}
}

// --- SavingsGoal tests ---

func TestSavingsGoal_PathReachesGoal(t *testing.T) {
	result, err := SavingsGoal(10000, 1000, 2, 0.05)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if final := result.Series.Final(); math.Abs(final.Balance-10000) > 0.5 {
		t.Errorf("projected path must land on the goal, got %.2f", final.Balance)
	}
	if result.AmountToSave != 9000 {
		t.Errorf("expected amount to save 9000, got %.2f", result.AmountToSave)
	}
	if math.Abs(result.WeeklyNeeded-result.MonthlyNeeded/4.33) > 1e-9 {
		t.Errorf("weekly breakdown mismatch")
	}
	if math.Abs(result.DailyNeeded-result.MonthlyNeeded/30) > 1e-9 {
		t.Errorf("daily breakdown mismatch")
	}
}

func TestSavingsGoal_InterestReducesDeposits(t *testing.T) {
	withInterest, err := SavingsGoal(12000, 0, 2, 0.06)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	withoutInterest, err := SavingsGoal(12000, 0, 2, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if withInterest.MonthlyNeeded >= withoutInterest.MonthlyNeeded {
		t.Errorf("interest must lower the needed deposit: %.2f >= %.2f",
			withInterest.MonthlyNeeded, withoutInterest.MonthlyNeeded)
	}
	if withoutInterest.MonthlyNeeded != 500 {
		t.Errorf("zero rate divides evenly: expected 500, got %.2f", withoutInterest.MonthlyNeeded)
	}
	if withInterest.InterestEarned <= 0 {
		t.Errorf("expected positive interest earned, got %.2f", withInterest.InterestEarned)
	}
}

func TestSavingsGoal_GoalNotAboveCurrent(t *testing.T) {
	if _, err := SavingsGoal(5000, 5000, 2, 0.05); err != ErrGoalNotAboveCurrent {
		t.Errorf("expected ErrGoalNotAboveCurrent, got %v", err)
	}
}
