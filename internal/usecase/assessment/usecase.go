package assessment

import (
	"context"
	"errors"
	"fmt"

	"mortgage-risk-api/internal/domain/borrower"
	"mortgage-risk-api/internal/domain/risk"
)

var ErrInvalidInput = errors.New("invalid input")

type Usecase struct{ scorer risk.Scorer }

// NewUsecase: the scorer is the classifier loaded at process start,
// shared read-only across assessments.
func NewUsecase(s risk.Scorer) *Usecase { return &Usecase{scorer: s} }

// Assess runs one derive → score → tier pass over the input. The record
// holds no identity and is discarded once the DTO is built.
func (u *Usecase) Assess(ctx context.Context, in AssessInput) (*AssessmentDTO, error) {
	rec := in.toRecord()
	if err := validateRecord(rec); err != nil {
		return nil, err
	}

	ext := borrower.Derive(rec)

	p, err := u.scorer.Score(ctx, ext)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", risk.ErrScoring, err)
	}

	tier, recommendation := risk.Classify(p)

	return &AssessmentDTO{
		Probability:    p,
		Tier:           string(tier),
		Recommendation: recommendation,
		GaugeColor:     risk.GaugeColor(tier),
		Ratios: RatiosDTO{
			LoanToIncome:    ext.LoanToIncome,
			DTIRatio:        ext.DTIRatio,
			EmploymentRatio: ext.EmploymentRatio,
		},
	}, nil
}

// validateRecord rejects out-of-domain fields before feature derivation.
// Nothing is clamped; the only tolerated degenerate values are the
// divide-by-zero guards inside Derive.
func validateRecord(r borrower.Record) error {
	switch {
	case r.Age < 18 || r.Age > 70:
		return fmt.Errorf("%w: age %d outside [18,70]", ErrInvalidInput, r.Age)
	case r.Income < 0:
		return fmt.Errorf("%w: income must be non-negative", ErrInvalidInput)
	case r.LoanAmount < 0:
		return fmt.Errorf("%w: loan_amount must be non-negative", ErrInvalidInput)
	case r.CreditScore < 300 || r.CreditScore > 850:
		return fmt.Errorf("%w: credit_score %d outside [300,850]", ErrInvalidInput, r.CreditScore)
	case r.MonthsEmployed < 0 || r.MonthsEmployed > 480:
		return fmt.Errorf("%w: months_employed %d outside [0,480]", ErrInvalidInput, r.MonthsEmployed)
	case r.NumCreditLines < 0 || r.NumCreditLines > 15:
		return fmt.Errorf("%w: num_credit_lines %d outside [0,15]", ErrInvalidInput, r.NumCreditLines)
	case r.InterestRate < 1.0 || r.InterestRate > 25.0:
		return fmt.Errorf("%w: interest_rate %v outside [1.0,25.0]", ErrInvalidInput, r.InterestRate)
	case !borrower.ValidLoanTerm(r.LoanTermMonths):
		return fmt.Errorf("%w: loan_term_months %d not an accepted term", ErrInvalidInput, r.LoanTermMonths)
	case r.DTIRatio < 0 || r.DTIRatio > 1:
		return fmt.Errorf("%w: dti_ratio %v outside [0,1]", ErrInvalidInput, r.DTIRatio)
	case !r.Education.Valid():
		return fmt.Errorf("%w: unknown education %q", ErrInvalidInput, r.Education)
	case !r.EmploymentType.Valid():
		return fmt.Errorf("%w: unknown employment_type %q", ErrInvalidInput, r.EmploymentType)
	case !r.MaritalStatus.Valid():
		return fmt.Errorf("%w: unknown marital_status %q", ErrInvalidInput, r.MaritalStatus)
	case !r.LoanPurpose.Valid():
		return fmt.Errorf("%w: unknown loan_purpose %q", ErrInvalidInput, r.LoanPurpose)
	}
	return nil
}
