package http

import (
	"errors"
	"testing"
)

func TestLoanTermValidation(t *testing.T) {
	type P struct {
		LoanTermMonths int `validate:"loanterm"`
	}
	cv := NewValidator()

	for _, months := range []int{120, 180, 240, 300, 360} {
		if err := cv.Validate(P{LoanTermMonths: months}); err != nil {
			t.Fatalf("expected valid term %d, got err: %v", months, err)
		}
	}

	for _, months := range []int{0, -120, 60, 200, 359, 361, 480} {
		err := cv.Validate(P{LoanTermMonths: months})
		if err == nil {
			t.Fatalf("expected error for term %d", months)
		}
		fe := ToFieldErrors(err)
		if !containsFieldMsg(fe, "LoanTermMonths", "120, 180, 240, 300, 360") {
			t.Fatalf("expected loanterm message for %d, got: %+v", months, fe)
		}
	}
}

func TestDec2Validation(t *testing.T) {
	type P struct {
		Rate float64 `validate:"dec2"`
	}
	cv := NewValidator()

	for _, v := range []float64{7.5, 2.00, 0.9, 24.99} {
		if err := cv.Validate(P{Rate: v}); err != nil {
			t.Fatalf("expected dec2 OK for %v, got %v", v, err)
		}
	}
	for _, v := range []float64{1.234, 2.9999} {
		err := cv.Validate(P{Rate: v})
		if err == nil {
			t.Fatalf("expected dec2 error for %v", v)
		}
		fe := ToFieldErrors(err)
		if !containsFieldMsg(fe, "Rate", "at most 2 decimal places") {
			t.Fatalf("expected 'at most 2 decimal places' for %v, got %+v", v, fe)
		}
	}
}

func TestOneofAndBoundsMapping(t *testing.T) {
	type P struct {
		Education string  `validate:"required,oneof=HighSchool Bachelor Master PhD"`
		Age       int     `validate:"gte=18,lte=70"`
		DTIRatio  float64 `validate:"gte=0,lte=1"`
	}
	cv := NewValidator()

	// Intentionally violate all
	err := cv.Validate(P{
		Education: "",  // required
		Age:       17,  // gte=18
		DTIRatio:  1.2, // lte=1
	})
	if err == nil {
		t.Fatalf("expected validation errors")
	}
	fe := ToFieldErrors(err)

	if !containsFieldMsg(fe, "Education", "is required") {
		t.Fatalf("missing 'is required' for Education: %+v", fe)
	}
	if !containsFieldMsg(fe, "Age", "greater than or equal to 18") {
		t.Fatalf("missing gte message for Age: %+v", fe)
	}
	if !containsFieldMsg(fe, "DTIRatio", "less than or equal to 1") {
		t.Fatalf("missing lte message for DTIRatio: %+v", fe)
	}

	// oneof mapping includes allowed values
	err = cv.Validate(P{Education: "Bootcamp", Age: 30, DTIRatio: 0.3})
	if err == nil {
		t.Fatalf("expected oneof error")
	}
	fe = ToFieldErrors(err)
	if !containsFieldMsg(fe, "Education", "HighSchool Bachelor Master PhD") {
		t.Fatalf("missing oneof message for Education: %+v", fe)
	}
}

func TestToFieldErrors_NonValidation(t *testing.T) {
	err := errors.New("boom")
	fe := ToFieldErrors(err)
	if len(fe) != 1 {
		t.Fatalf("expected 1 field error, got %d", len(fe))
	}
	if fe[0].Field != "_" || fe[0].Message != "boom" {
		t.Fatalf("unexpected mapping: %+v", fe[0])
	}
}
