// Package schedule computes month-by-month loan amortization schedules,
// optionally re-derived to respect a maximum monthly payment cap.
package schedule

import (
	"fmt"
	"math"
	"time"

	"github.com/iwvelando/loan-schedule/pkg/constants"
	"github.com/iwvelando/loan-schedule/pkg/datetime"
	"github.com/iwvelando/loan-schedule/pkg/mathutil"
	"go.uber.org/zap"
)

// LoanParameters holds the inputs for one schedule computation. PropertyTaxes
// and HomeInsurance are annual figures pro-rated to monthly; HOAFees and PMI
// are already monthly amounts and are applied as-is.
type LoanParameters struct {
	Name          string
	Principal     float64
	InterestRate  float64 // annual, as a percentage
	Term          int     // years
	DownPayment   float64
	StartDate     time.Time // zero value resolves to the generator's clock
	PropertyTaxes float64   // annual
	HomeInsurance float64   // annual
	HOAFees       float64   // monthly
	PMI           float64   // monthly
}

// Payment holds the values for a given month's payment.
type Payment struct {
	Month            string  `json:"month"`
	MonthlyPayment   float64 `json:"monthlyPayment"`
	Principal        float64 `json:"principal"`
	Interest         float64 `json:"interest"`
	RemainingBalance float64 `json:"remainingBalance"`
	TotalPayment     float64 `json:"totalMonthlyPayment"`
}

// Schedule is an ordered, chronological sequence of monthly payments.
type Schedule []Payment

// LoanAmount returns the financed amount after the down payment.
func (p LoanParameters) LoanAmount() float64 {
	return p.Principal - p.DownPayment
}

// AdditionalMonthlyCosts returns the recurring costs added on top of
// principal and interest: annual property taxes and home insurance pro-rated
// to monthly, plus the flat monthly HOA fees and PMI.
func (p LoanParameters) AdditionalMonthlyCosts() float64 {
	return (p.PropertyTaxes+p.HomeInsurance)/constants.MonthsPerYear + p.HOAFees + p.PMI
}

// Validate rejects parameters the amortization formulas cannot meaningfully
// process. Zero interest is valid and handled with simple division.
func (p LoanParameters) Validate() error {
	if p.Principal < 0 {
		return &InvalidParametersError{Field: "principal", Reason: fmt.Sprintf("must be non-negative, got %.2f", p.Principal)}
	}
	if p.InterestRate < 0 {
		return &InvalidParametersError{Field: "interestRate", Reason: fmt.Sprintf("must be non-negative, got %.2f", p.InterestRate)}
	}
	if p.Term <= 0 {
		return &InvalidParametersError{Field: "term", Reason: fmt.Sprintf("must be a positive number of years, got %d", p.Term)}
	}
	if p.DownPayment < 0 {
		return &InvalidParametersError{Field: "downPayment", Reason: fmt.Sprintf("must be non-negative, got %.2f", p.DownPayment)}
	}
	if p.DownPayment > p.Principal {
		return &InvalidParametersError{Field: "downPayment", Reason: fmt.Sprintf("%.2f exceeds principal %.2f", p.DownPayment, p.Principal)}
	}
	return nil
}

// CalculateMonthlyPayment calculates the fixed monthly payment for a loan
// using the standard annuity formula.
func CalculateMonthlyPayment(loanAmount, annualInterestRate float64, termMonths int) float64 {
	if annualInterestRate == 0 {
		// The annuity formula's denominator is zero at 0%, so simply divide
		// the loan amount by the term.
		return loanAmount / float64(termMonths)
	}

	periodicInterestRate := annualInterestRate / (constants.PercentageMultiplier * constants.MonthsPerYear)
	power := math.Pow(1.00+periodicInterestRate, float64(termMonths))
	return loanAmount * periodicInterestRate * power / (power - 1.00)
}

// CalculateInterestPayment calculates the interest portion of a payment.
func CalculateInterestPayment(remainingBalance, annualInterestRate float64) float64 {
	return remainingBalance * annualInterestRate / (constants.PercentageMultiplier * constants.MonthsPerYear)
}

// Generator produces amortization schedules. The zero logger defaults to a
// nop logger and the clock defaults to time.Now; the clock only matters when
// LoanParameters.StartDate is unset.
type Generator struct {
	logger *zap.Logger
	now    func() time.Time
}

// NewGenerator creates a new generator instance.
func NewGenerator(logger *zap.Logger) *Generator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Generator{logger: logger, now: time.Now}
}

// NewGeneratorWithFixedTime creates a generator whose default start date is
// fixed, for deterministic tests.
func NewGeneratorWithFixedTime(logger *zap.Logger, fixed time.Time) *Generator {
	g := NewGenerator(logger)
	g.now = func() time.Time { return fixed }
	return g
}

func (g *Generator) startDate(params LoanParameters) time.Time {
	if params.StartDate.IsZero() {
		return g.now()
	}
	return params.StartDate
}

// Generate creates the standard fixed-payment amortization schedule, one
// record per month for the full term.
func (g *Generator) Generate(params LoanParameters) (Schedule, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	return g.generate(params, g.startDate(params)), nil
}

func (g *Generator) generate(params LoanParameters, start time.Time) Schedule {
	nPayments := params.Term * constants.MonthsPerYear
	loanAmount := params.LoanAmount()

	monthlyPayment := CalculateMonthlyPayment(loanAmount, params.InterestRate, nPayments)
	totalPayment := monthlyPayment + params.AdditionalMonthlyCosts()

	result := make(Schedule, 0, nPayments)
	for month := 1; month <= nPayments; month++ {
		interestPayment := CalculateInterestPayment(loanAmount, params.InterestRate)
		principalPayment := monthlyPayment - interestPayment
		loanAmount -= principalPayment

		result = append(result, Payment{
			Month:            datetime.MonthLabel(start, month-1),
			MonthlyPayment:   mathutil.Round(monthlyPayment),
			Principal:        mathutil.Round(principalPayment),
			Interest:         mathutil.Round(interestPayment),
			RemainingBalance: mathutil.Round(loanAmount),
			TotalPayment:     mathutil.Round(totalPayment),
		})
	}

	return result
}

// Adjust creates a schedule constrained by a maximum total monthly payment.
// A nil cap delegates to Generate. The cap must be strictly greater than the
// standard schedule's first-month total payment (PITI); otherwise principal
// never decreases and the loan never terminates, so an InvalidCapError is
// returned. Whatever the cap leaves after interest and recurring costs goes
// to principal, and the schedule ends early once the balance reaches zero.
func (g *Generator) Adjust(params LoanParameters, maxMonthlyPayment *float64) (Schedule, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}

	// Resolve the start date once so the capped schedule is labeled
	// consistently with the baseline it is validated against.
	start := g.startDate(params)
	standard := g.generate(params, start)
	if maxMonthlyPayment == nil {
		return standard, nil
	}

	maxPayment := *maxMonthlyPayment
	referencePITI := standard[0].TotalPayment
	if maxPayment <= referencePITI {
		return nil, &InvalidCapError{MaxMonthlyPayment: maxPayment, TotalMonthlyPayment: referencePITI}
	}

	g.logger.Debug(fmt.Sprintf("adjusting schedule for loan %s to max monthly payment %.2f", params.Name, maxPayment),
		zap.String("op", "schedule.Adjust"),
	)

	additionalCosts := params.AdditionalMonthlyCosts()
	loanAmount := params.LoanAmount()

	result := make(Schedule, 0, len(standard))
	for month := 1; month <= len(standard); month++ {
		interestPayment := CalculateInterestPayment(loanAmount, params.InterestRate)
		principalPayment := maxPayment - interestPayment - additionalCosts
		loanAmount -= principalPayment

		if loanAmount <= 0 {
			// Paid off; clamp the balance and charge only what is actually
			// due this month rather than the full cap.
			loanAmount = 0
			finalPayment := principalPayment + interestPayment
			result = append(result, Payment{
				Month:            datetime.MonthLabel(start, month-1),
				MonthlyPayment:   mathutil.Round(finalPayment),
				Principal:        mathutil.Round(principalPayment),
				Interest:         mathutil.Round(interestPayment),
				RemainingBalance: mathutil.Round(loanAmount),
				TotalPayment:     mathutil.Round(finalPayment),
			})
			g.logger.Debug(fmt.Sprintf("loan %s paid off after %d of %d months", params.Name, month, len(standard)),
				zap.String("op", "schedule.Adjust"),
			)
			break
		}

		result = append(result, Payment{
			Month:            datetime.MonthLabel(start, month-1),
			MonthlyPayment:   mathutil.Round(principalPayment + interestPayment),
			Principal:        mathutil.Round(principalPayment),
			Interest:         mathutil.Round(interestPayment),
			RemainingBalance: mathutil.Round(loanAmount),
			TotalPayment:     mathutil.Round(maxPayment),
		})
	}

	return result, nil
}
