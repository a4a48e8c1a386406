// Package output provides utilities for formatting and displaying schedules.
package output

import (
	"fmt"
	"strings"

	"github.com/iwvelando/loan-schedule/pkg/schedule"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// LoanResult pairs a computed schedule with the loan it was computed for.
type LoanResult struct {
	Name     string
	Capped   bool
	Schedule schedule.Schedule
}

// PrettyFormat outputs a human-readable rather than machine-readable table.
func PrettyFormat(results []LoanResult) {
	p := message.NewPrinter(language.English)
	for i, result := range results {
		kind := "standard"
		if result.Capped {
			kind = "capped"
		}
		fmt.Printf("--- %s schedule for loan %s ---\n", kind, result.Name)
		fmt.Printf("Month   | Payment | Principal | Interest | Balance | Total\n")
		fmt.Printf("_____   | _______ | _________ | ________ | _______ | _____\n")
		for _, payment := range result.Schedule {
			_, _ = p.Printf("%s | $%.2f | $%.2f | $%.2f | $%.2f | $%.2f\n",
				payment.Month, payment.MonthlyPayment, payment.Principal,
				payment.Interest, payment.RemainingBalance, payment.TotalPayment)
		}
		summary := result.Schedule.Summarize()
		_, _ = p.Printf("paid off %s after %d payments; total paid $%.2f of which $%.2f interest\n",
			summary.PayoffMonth, summary.Months, summary.TotalPaid, summary.TotalInterest)
		if i < len(results)-1 {
			fmt.Printf("\n")
		}
	}
}

// CsvString renders the results in comma-separated value format.
func CsvString(results []LoanResult) string {
	var builder strings.Builder
	builder.WriteString(`"loan","month","monthly payment","principal","interest","remaining balance","total monthly payment"`)
	builder.WriteString("\n")
	for _, result := range results {
		for _, payment := range result.Schedule {
			builder.WriteString(fmt.Sprintf(`"%s","%s","%.2f","%.2f","%.2f","%.2f","%.2f"`,
				result.Name, payment.Month, payment.MonthlyPayment, payment.Principal,
				payment.Interest, payment.RemainingBalance, payment.TotalPayment))
			builder.WriteString("\n")
		}
	}
	return builder.String()
}

// CsvFormat outputs in comma-separated value format.
func CsvFormat(results []LoanResult) {
	fmt.Print(CsvString(results))
}
