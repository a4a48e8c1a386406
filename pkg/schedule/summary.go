package schedule

// Summary holds aggregate figures derived from a schedule.
type Summary struct {
	Months         int     `json:"months"`
	PayoffMonth    string  `json:"payoffMonth"`
	TotalPaid      float64 `json:"totalPaid"`
	TotalPrincipal float64 `json:"totalPrincipal"`
	TotalInterest  float64 `json:"totalInterest"`
}

// Summarize aggregates the per-month figures of a schedule. Totals are sums
// of the emitted (rounded) record fields, so they can differ from an
// unrounded accumulation by a few cents over long terms.
func (s Schedule) Summarize() Summary {
	var summary Summary
	summary.Months = len(s)
	if len(s) == 0 {
		return summary
	}
	summary.PayoffMonth = s[len(s)-1].Month
	for _, payment := range s {
		summary.TotalPaid += payment.TotalPayment
		summary.TotalPrincipal += payment.Principal
		summary.TotalInterest += payment.Interest
	}
	return summary
}
