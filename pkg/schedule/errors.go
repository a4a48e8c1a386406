package schedule

import "fmt"

// InvalidCapError indicates a requested maximum monthly payment that is not
// strictly greater than the standard schedule's first-month total payment
// (PITI). Such a cap leaves nothing for principal, so the loan would never
// terminate. Not retryable; the caller must raise the cap or omit it.
type InvalidCapError struct {
	MaxMonthlyPayment   float64
	TotalMonthlyPayment float64
}

func (e *InvalidCapError) Error() string {
	return fmt.Sprintf("max monthly payment of $%.2f is not greater than the total monthly payment (PITI) of $%.2f",
		e.MaxMonthlyPayment, e.TotalMonthlyPayment)
}

// InvalidParametersError indicates loan parameters that would produce a
// nonsensical schedule.
type InvalidParametersError struct {
	Field  string
	Reason string
}

func (e *InvalidParametersError) Error() string {
	return fmt.Sprintf("invalid loan parameter %s: %s", e.Field, e.Reason)
}
