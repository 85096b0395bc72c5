package projection

import (
	"errors"
	"math"

	"github.com/finlab/finance-engine/internal/annuity"
)

var (
	// ErrNonPositiveInitial is returned when a starting value that anchors a
	// growth ratio (CAGR, ROI) is zero or negative.
	ErrNonPositiveInitial = errors.New("projection: initial value must be positive")

	// ErrGoalNotAboveCurrent is returned when a savings goal does not exceed
	// the current balance.
	ErrGoalNotAboveCurrent = errors.New("projection: goal must exceed current savings")

	// ErrDownPaymentTooLarge is returned when the down payment meets or
	// exceeds the home price.
	ErrDownPaymentTooLarge = errors.New("projection: down payment must be below home price")

	// ErrRetirementAgeOrder is returned when the retirement age is not
	// beyond the current age.
	ErrRetirementAgeOrder = errors.New("projection: retirement age must exceed current age")

	// ErrNegativeFinal is returned when a final value is negative; the
	// growth-ratio math would otherwise produce NaN.
	ErrNegativeFinal = errors.New("projection: final value must not be negative")
)

// CompoundResult is the compound-interest calculator output.
type CompoundResult struct {
	FinalAmount        float64 `json:"final_amount"`
	TotalContributions float64 `json:"total_contributions"`
	InterestEarned     float64 `json:"interest_earned"`
	EffectiveReturnPct float64 `json:"effective_return_pct"`
	Series             *Series `json:"series"`
}

// CompoundInterest projects principal P at a nominal annual rate with the
// given compounding frequency and a monthly contribution.
func CompoundInterest(in Input) (*CompoundResult, error) {
	series, err := Project(in, RuleCompound)
	if err != nil {
		return nil, err
	}

	totalMonths := float64(len(series.Monthly) - 1)
	final := series.Final().Balance
	contrib := in.Principal + in.Contribution*totalMonths
	earned := final - contrib

	effective := 0.0
	if contrib > 0 {
		effective = earned / contrib * 100
	}

	return &CompoundResult{
		FinalAmount:        final,
		TotalContributions: contrib,
		InterestEarned:     earned,
		EffectiveReturnPct: effective,
		Series:             series,
	}, nil
}

// SimpleResult is the simple-interest calculator output.
type SimpleResult struct {
	Interest        float64 `json:"interest"`
	TotalAmount     float64 `json:"total_amount"`
	MonthlyInterest float64 `json:"monthly_interest"`
	YearlyInterest  float64 `json:"yearly_interest"`
	Series          *Series `json:"series"`
}

// SimpleInterest computes P·r·t and a linear accrual path. Unlike the
// iterated projections this series rounds the horizon up to whole months.
func SimpleInterest(principal, rate, years float64) (*SimpleResult, error) {
	if principal < 0 {
		return nil, ErrNegativePrincipal
	}
	if rate < 0 {
		return nil, ErrNegativeRate
	}
	if years <= 0 {
		return nil, ErrNonPositiveTerm
	}

	interest := principal * rate * years
	series := closedFormSeries(int(math.Ceil(years*MonthsPerYear)), func(m int) float64 {
		return principal + principal*rate*(float64(m)/MonthsPerYear)
	}, principal)

	return &SimpleResult{
		Interest:        interest,
		TotalAmount:     principal + interest,
		MonthlyInterest: interest / (years * MonthsPerYear),
		YearlyInterest:  interest / years,
		Series:          series,
	}, nil
}

// CAGRResult is the compound-annual-growth-rate calculator output.
type CAGRResult struct {
	CAGRPct          float64 `json:"cagr_pct"`
	TotalReturnPct   float64 `json:"total_return_pct"`
	AbsoluteReturn   float64 `json:"absolute_return"`
	AvgYearlyGrowth  float64 `json:"avg_yearly_growth"`
	AvgMonthlyGrowth float64 `json:"avg_monthly_growth"`
	Series           *Series `json:"series"`
}

// CAGR derives the constant annual rate linking an initial and final value,
// plus the smooth growth path at that rate.
func CAGR(initial, final, years float64) (*CAGRResult, error) {
	if initial <= 0 {
		return nil, ErrNonPositiveInitial
	}
	if final < 0 {
		return nil, ErrNegativeFinal
	}
	if years <= 0 {
		return nil, ErrNonPositiveTerm
	}

	cagr := math.Pow(final/initial, 1/years) - 1
	absolute := final - initial
	series := closedFormSeries(int(math.Ceil(years*MonthsPerYear)), func(m int) float64 {
		return initial * math.Pow(1+cagr, float64(m)/MonthsPerYear)
	}, initial)

	return &CAGRResult{
		CAGRPct:          cagr * 100,
		TotalReturnPct:   absolute / initial * 100,
		AbsoluteReturn:   absolute,
		AvgYearlyGrowth:  absolute / years,
		AvgMonthlyGrowth: absolute / (years * MonthsPerYear),
		Series:           series,
	}, nil
}

// ROIResult is the return-on-investment calculator output.
type ROIResult struct {
	TotalReturn      float64 `json:"total_return"`
	ROIPct           float64 `json:"roi_pct"`
	AnnualizedROIPct float64 `json:"annualized_roi_pct"`
	AvgYearlyReturn  float64 `json:"avg_yearly_return"`
	AvgMonthlyReturn float64 `json:"avg_monthly_return"`
	Profit           bool    `json:"profit"`
	Series           *Series `json:"series"`
}

// ROI reports the simple and annualized return between an initial cost and a
// final value.
func ROI(initial, final, years float64) (*ROIResult, error) {
	if initial <= 0 {
		return nil, ErrNonPositiveInitial
	}
	if final < 0 {
		return nil, ErrNegativeFinal
	}
	if years <= 0 {
		return nil, ErrNonPositiveTerm
	}

	totalReturn := final - initial
	annualized := math.Pow(final/initial, 1/years) - 1
	series := closedFormSeries(int(math.Ceil(years*MonthsPerYear)), func(m int) float64 {
		return initial * math.Pow(1+annualized, float64(m)/MonthsPerYear)
	}, initial)

	return &ROIResult{
		TotalReturn:      totalReturn,
		ROIPct:           totalReturn / initial * 100,
		AnnualizedROIPct: annualized * 100,
		AvgYearlyReturn:  totalReturn / years,
		AvgMonthlyReturn: totalReturn / (years * MonthsPerYear),
		Profit:           totalReturn >= 0,
		Series:           series,
	}, nil
}

// LoanResult is the loan calculator output: the level payment, its totals,
// and the amortization schedule in monthly and per-year form.
type LoanResult struct {
	MonthlyPayment float64           `json:"monthly_payment"`
	TotalPayment   float64           `json:"total_payment"`
	TotalInterest  float64           `json:"total_interest"`
	InterestPct    float64           `json:"interest_pct"` // interest share of total payment
	YearlyPayment  float64           `json:"yearly_payment"`
	Schedule       []AmortizationRow `json:"schedule"`
	YearlyTotals   []YearTotals      `json:"yearly_totals"`
}

// Loan amortizes a principal over whole years at a nominal annual rate.
// A zero rate degrades to straight-line payments instead of dividing by zero.
func Loan(principal, annualRate, years float64) (*LoanResult, error) {
	if annualRate < 0 {
		return nil, ErrNegativeRate
	}
	if years <= 0 {
		return nil, ErrNonPositiveTerm
	}

	monthlyRate := annualRate / MonthsPerYear
	months := int(math.Round(years * MonthsPerYear))
	payment, err := annuity.LoanPayment(principal, monthlyRate, months)
	if err != nil {
		return nil, ErrNonPositivePrincipal
	}

	total := payment * float64(months)
	interest := total - principal
	schedule := Amortize(principal, payment, monthlyRate, months, false)

	return &LoanResult{
		MonthlyPayment: payment,
		TotalPayment:   total,
		TotalInterest:  interest,
		InterestPct:    interest / total * 100,
		YearlyPayment:  payment * MonthsPerYear,
		Schedule:       schedule,
		YearlyTotals:   AggregateYears(schedule),
	}, nil
}

// MortgageInput are the mortgage calculator parameters. Tax and insurance
// are annual amounts escrowed into the monthly payment.
type MortgageInput struct {
	HomePrice   float64 `json:"home_price"`
	DownPayment float64 `json:"down_payment"`
	Years       float64 `json:"years"`
	AnnualRate  float64 `json:"annual_rate"`
	PropertyTax float64 `json:"property_tax"`
	Insurance   float64 `json:"insurance"`
}

// MortgageResult is the mortgage calculator output.
type MortgageResult struct {
	TotalMonthly         float64 `json:"total_monthly"`
	PrincipalAndInterest float64 `json:"principal_and_interest"`
	MonthlyTax           float64 `json:"monthly_tax"`
	MonthlyInsurance     float64 `json:"monthly_insurance"`
	DownPaymentPct       float64 `json:"down_payment_pct"`
	LoanAmount           float64 `json:"loan_amount"`
	TotalInterest        float64 `json:"total_interest"`
	Series               *Series `json:"series"` // remaining balance, clamped at zero
}

// Mortgage computes the escrowed monthly payment and the remaining-balance
// path for the financed portion of a home purchase.
func Mortgage(in MortgageInput) (*MortgageResult, error) {
	if in.HomePrice <= 0 {
		return nil, ErrNonPositivePrincipal
	}
	if in.Years <= 0 {
		return nil, ErrNonPositiveTerm
	}
	if in.AnnualRate < 0 {
		return nil, ErrNegativeRate
	}
	if in.DownPayment >= in.HomePrice {
		return nil, ErrDownPaymentTooLarge
	}

	principal := in.HomePrice - in.DownPayment
	monthlyRate := in.AnnualRate / MonthsPerYear
	months := int(math.Round(in.Years * MonthsPerYear))

	// Zero-rate mortgages fall back to straight-line principal payments.
	pAndI := principal / float64(months)
	if monthlyRate > 0 {
		var err error
		pAndI, err = annuity.LoanPayment(principal, monthlyRate, months)
		if err != nil {
			return nil, ErrNonPositivePrincipal
		}
	}

	monthly := BalancePath(principal, pAndI, monthlyRate, months)
	series := &Series{Monthly: monthly, Yearly: YearlySubset(monthly)}

	return &MortgageResult{
		TotalMonthly:         pAndI + in.PropertyTax/MonthsPerYear + in.Insurance/MonthsPerYear,
		PrincipalAndInterest: pAndI,
		MonthlyTax:           in.PropertyTax / MonthsPerYear,
		MonthlyInsurance:     in.Insurance / MonthsPerYear,
		DownPaymentPct:       in.DownPayment / in.HomePrice * 100,
		LoanAmount:           principal,
		TotalInterest:        pAndI*float64(months) - principal,
		Series:               series,
	}, nil
}

// GrowthResult is shared by the investment and retirement calculators.
type GrowthResult struct {
	FinalBalance       float64 `json:"final_balance"`
	TotalContributions float64 `json:"total_contributions"`
	Earnings           float64 `json:"earnings"`
	ReturnPct          float64 `json:"return_pct"`
	Series             *Series `json:"series"`
}

// Investment projects an initial amount with monthly contributions at a flat
// annual return.
func Investment(initial, monthly, annualRate, years float64) (*GrowthResult, error) {
	series, err := Project(Input{
		Principal:    initial,
		AnnualRate:   annualRate,
		Years:        years,
		Contribution: monthly,
	}, RuleGrowth)
	if err != nil {
		return nil, err
	}

	totalMonths := float64(len(series.Monthly) - 1)
	final := series.Final().Balance
	contrib := initial + monthly*totalMonths
	earnings := final - contrib

	ret := 0.0
	if contrib > 0 {
		ret = earnings / contrib * 100
	}

	return &GrowthResult{
		FinalBalance:       final,
		TotalContributions: contrib,
		Earnings:           earnings,
		ReturnPct:          ret,
		Series:             series,
	}, nil
}

// RetirementResult extends the growth projection with safe-withdrawal
// income estimates.
type RetirementResult struct {
	GrowthResult
	Years         float64 `json:"years"`
	MonthlyIncome float64 `json:"monthly_income"` // 4% rule
	YearlyIncome  float64 `json:"yearly_income"`  // 4% rule
}

// safeWithdrawalRate is the classic 4% annual drawdown estimate.
const safeWithdrawalRate = 0.04

// Retirement projects savings from the current age to the retirement age
// and estimates sustainable income under the 4% rule.
func Retirement(currentAge, retirementAge, current, monthly, annualRate float64) (*RetirementResult, error) {
	if retirementAge <= currentAge {
		return nil, ErrRetirementAgeOrder
	}

	years := retirementAge - currentAge
	growth, err := Investment(current, monthly, annualRate, years)
	if err != nil {
		return nil, err
	}

	return &RetirementResult{
		GrowthResult:  *growth,
		Years:         years,
		MonthlyIncome: growth.FinalBalance * safeWithdrawalRate / MonthsPerYear,
		YearlyIncome:  growth.FinalBalance * safeWithdrawalRate,
	}, nil
}

// SavingsPlanResult is the savings-goal calculator output.
type SavingsPlanResult struct {
	MonthlyNeeded  float64 `json:"monthly_needed"`
	WeeklyNeeded   float64 `json:"weekly_needed"`
	DailyNeeded    float64 `json:"daily_needed"`
	InterestEarned float64 `json:"interest_earned"`
	AmountToSave   float64 `json:"amount_to_save"`
	Goal           float64 `json:"goal"`
	Series         *Series `json:"series"`
}

// weeksPerMonth is the convention used to break a monthly amount into weeks.
const weeksPerMonth = 4.33

// SavingsGoal inverts the annuity formula to find the level monthly deposit
// reaching the goal, then projects the resulting path.
func SavingsGoal(goal, current, years, annualRate float64) (*SavingsPlanResult, error) {
	if goal <= 0 {
		return nil, ErrNonPositivePrincipal
	}
	if years <= 0 {
		return nil, ErrNonPositiveTerm
	}
	if annualRate < 0 {
		return nil, ErrNegativeRate
	}
	if goal <= current {
		return nil, ErrGoalNotAboveCurrent
	}

	months := int(math.Round(years * MonthsPerYear))
	needed, err := annuity.SolvePayment(goal, current, annualRate/MonthsPerYear, months)
	if err != nil {
		return nil, err
	}

	series, err := Project(Input{
		Principal:    current,
		AnnualRate:   annualRate,
		Years:        years,
		Contribution: needed,
	}, RuleGrowth)
	if err != nil {
		return nil, err
	}

	deposited := needed * float64(months)
	return &SavingsPlanResult{
		MonthlyNeeded:  needed,
		WeeklyNeeded:   needed / weeksPerMonth,
		DailyNeeded:    needed / 30,
		InterestEarned: math.Max(0, goal-current-deposited),
		AmountToSave:   goal - current,
		Goal:           goal,
		Series:         series,
	}, nil
}

// closedFormSeries samples a closed-form value function at months 0..months
// with a constant contributed amount.
func closedFormSeries(months int, value func(m int) float64, contributed float64) *Series {
	monthly := make([]Point, 0, months+1)
	for m := 0; m <= months; m++ {
		monthly = append(monthly, Point{Month: m, Balance: value(m), Contributed: contributed})
	}
	return &Series{Monthly: monthly, Yearly: YearlySubset(monthly)}
}
