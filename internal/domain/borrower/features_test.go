package borrower

import (
	"math"
	"testing"
)

func baseRecord() Record {
	return Record{
		Age:            35,
		Income:         80_000,
		LoanAmount:     200_000,
		CreditScore:    650,
		MonthsEmployed: 60,
		NumCreditLines: 5,
		InterestRate:   7.5,
		LoanTermMonths: 360,
		DTIRatio:       0.35,
		Education:      EducationBachelor,
		EmploymentType: EmploymentSalaried,
		MaritalStatus:  MaritalMarried,
		LoanPurpose:    PurposeHomePurchase,
	}
}

func almostEqual(a, b float64) bool { return math.Abs(a-b) < 1e-6 }

func TestDerive_WorkedExamples(t *testing.T) {
	ext := Derive(baseRecord())

	// 200000 / 80000
	if ext.LoanToIncome != 2.5 {
		t.Fatalf("LoanToIncome = %v, want 2.5", ext.LoanToIncome)
	}
	// 60 / 35
	if !almostEqual(ext.EmploymentRatio, 1.714286) {
		t.Fatalf("EmploymentRatio = %v, want ~1.714286", ext.EmploymentRatio)
	}
	// 200000 / (5+1)
	if !almostEqual(ext.CreditUtilizationProxy, 33333.333333) {
		t.Fatalf("CreditUtilizationProxy = %v, want ~33333.33", ext.CreditUtilizationProxy)
	}
}

func TestDerive_ZeroIncomeGuard(t *testing.T) {
	for _, income := range []float64{0, -1} {
		r := baseRecord()
		r.Income = income
		ext := Derive(r)
		if ext.LoanToIncome != 0 {
			t.Fatalf("income=%v: LoanToIncome = %v, want 0", income, ext.LoanToIncome)
		}
		if math.IsNaN(ext.LoanToIncome) || math.IsInf(ext.LoanToIncome, 0) {
			t.Fatalf("income=%v: LoanToIncome not finite", income)
		}
	}
}

func TestDerive_ZeroAgeGuard(t *testing.T) {
	for _, age := range []int{0, -5} {
		r := baseRecord()
		r.Age = age
		ext := Derive(r)
		if ext.EmploymentRatio != 0 {
			t.Fatalf("age=%d: EmploymentRatio = %v, want 0", age, ext.EmploymentRatio)
		}
	}
}

func TestDerive_CreditLinesDenominatorNeverZero(t *testing.T) {
	for _, n := range []int{0, 1, 15} {
		r := baseRecord()
		r.NumCreditLines = n
		ext := Derive(r)
		want := r.LoanAmount / float64(n+1)
		if !almostEqual(ext.CreditUtilizationProxy, want) {
			t.Fatalf("n=%d: CreditUtilizationProxy = %v, want %v", n, ext.CreditUtilizationProxy, want)
		}
	}
}

func TestDerive_Idempotent(t *testing.T) {
	r := baseRecord()
	first := Derive(r)
	second := Derive(r)
	if first != second {
		t.Fatalf("Derive not idempotent:\nfirst  %+v\nsecond %+v", first, second)
	}
	// the base record itself must be untouched
	if r != baseRecord() {
		t.Fatalf("Derive mutated its input: %+v", r)
	}
}
