package borrower

// Derive appends the engineered ratios to a base record. Pure and total:
// non-positive denominators yield 0 rather than an error or NaN.
func Derive(r Record) ExtendedRecord {
	ext := ExtendedRecord{Record: r}

	if r.Income > 0 {
		ext.LoanToIncome = r.LoanAmount / r.Income
	}
	if r.Age > 0 {
		ext.EmploymentRatio = float64(r.MonthsEmployed) / float64(r.Age)
	}
	// NumCreditLines is validated >= 0 upstream, so the denominator is never zero.
	ext.CreditUtilizationProxy = r.LoanAmount / float64(r.NumCreditLines+1)

	return ext
}
