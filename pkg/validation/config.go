// Package validation provides configuration validation utilities.
package validation

import (
	"fmt"

	"github.com/iwvelando/loan-schedule/pkg/constants"
	"github.com/iwvelando/loan-schedule/pkg/mathutil"
	"github.com/iwvelando/loan-schedule/pkg/schedule"
)

// ValidateOutputFormat checks that the requested output format is supported.
func ValidateOutputFormat(format string) error {
	switch format {
	case constants.OutputFormatPretty, constants.OutputFormatCSV:
		return nil
	default:
		return fmt.Errorf("invalid output format %q; expected %q or %q",
			format, constants.OutputFormatPretty, constants.OutputFormatCSV)
	}
}

// ValidateLoanParameters performs config-level review of one loan and returns
// warnings. The core rejects hard errors itself; warnings here surface likely
// mistakes before any schedule is computed.
func ValidateLoanParameters(params schedule.LoanParameters, maxMonthlyPayment *float64) []string {
	var warnings []string

	name := params.Name
	if name == "" {
		name = "(unnamed)"
		warnings = append(warnings, "loan has no name; output will be hard to attribute")
	}

	if err := params.Validate(); err != nil {
		warnings = append(warnings, fmt.Sprintf("loan %s will be rejected: %v", name, err))
		return warnings
	}

	if mathutil.IsZero(params.Principal) {
		warnings = append(warnings, fmt.Sprintf("loan %s has zero principal; schedule will be all zeros", name))
	}
	if params.Term > 50 {
		warnings = append(warnings, fmt.Sprintf("loan %s has an unusually long term of %d years", name, params.Term))
	}

	if maxMonthlyPayment != nil && params.Term > 0 {
		monthlyPayment := schedule.CalculateMonthlyPayment(params.LoanAmount(), params.InterestRate, params.Term*constants.MonthsPerYear)
		piti := monthlyPayment + params.AdditionalMonthlyCosts()
		if *maxMonthlyPayment <= piti {
			warnings = append(warnings, fmt.Sprintf("loan %s max monthly payment %.2f does not exceed the total monthly payment (PITI) %.2f and will be rejected",
				name, *maxMonthlyPayment, piti))
		}
	}

	return warnings
}
