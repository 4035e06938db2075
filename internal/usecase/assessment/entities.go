package assessment

import "mortgage-risk-api/internal/domain/borrower"

type AssessInput struct {
	Age            int     `json:"age"`
	Income         float64 `json:"income"`
	LoanAmount     float64 `json:"loan_amount"`
	CreditScore    int     `json:"credit_score"`
	MonthsEmployed int     `json:"months_employed"`
	NumCreditLines int     `json:"num_credit_lines"`
	InterestRate   float64 `json:"interest_rate"`
	LoanTermMonths int     `json:"loan_term_months"`
	DTIRatio       float64 `json:"dti_ratio"`
	Education      string  `json:"education"`
	EmploymentType string  `json:"employment_type"`
	MaritalStatus  string  `json:"marital_status"`
	HasMortgage    bool    `json:"has_mortgage"`
	HasDependents  bool    `json:"has_dependents"`
	HasCoSigner    bool    `json:"has_co_signer"`
	LoanPurpose    string  `json:"loan_purpose"`
}

type RatiosDTO struct {
	LoanToIncome    float64 `json:"loan_to_income"`
	DTIRatio        float64 `json:"dti_ratio"`
	EmploymentRatio float64 `json:"employment_ratio"`
}

type AssessmentDTO struct {
	Probability    float64   `json:"probability"`
	Tier           string    `json:"tier"`
	Recommendation string    `json:"recommendation"`
	GaugeColor     string    `json:"gauge_color"`
	Ratios         RatiosDTO `json:"ratios"`
}

func (in AssessInput) toRecord() borrower.Record {
	return borrower.Record{
		Age:            in.Age,
		Income:         in.Income,
		LoanAmount:     in.LoanAmount,
		CreditScore:    in.CreditScore,
		MonthsEmployed: in.MonthsEmployed,
		NumCreditLines: in.NumCreditLines,
		InterestRate:   in.InterestRate,
		LoanTermMonths: in.LoanTermMonths,
		DTIRatio:       in.DTIRatio,
		Education:      borrower.Education(in.Education),
		EmploymentType: borrower.EmploymentType(in.EmploymentType),
		MaritalStatus:  borrower.MaritalStatus(in.MaritalStatus),
		HasMortgage:    in.HasMortgage,
		HasDependents:  in.HasDependents,
		HasCoSigner:    in.HasCoSigner,
		LoanPurpose:    borrower.LoanPurpose(in.LoanPurpose),
	}
}
