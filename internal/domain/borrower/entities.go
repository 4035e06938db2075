package borrower

type Education string

const (
	EducationHighSchool Education = "HighSchool"
	EducationBachelor   Education = "Bachelor"
	EducationMaster     Education = "Master"
	EducationPhD        Education = "PhD"
)

type EmploymentType string

const (
	EmploymentSalaried     EmploymentType = "Salaried"
	EmploymentSelfEmployed EmploymentType = "SelfEmployed"
	EmploymentUnemployed   EmploymentType = "Unemployed"
)

type MaritalStatus string

const (
	MaritalSingle   MaritalStatus = "Single"
	MaritalMarried  MaritalStatus = "Married"
	MaritalDivorced MaritalStatus = "Divorced"
)

type LoanPurpose string

const (
	PurposeHomePurchase LoanPurpose = "HomePurchase"
	PurposeRefinance    LoanPurpose = "Refinance"
	PurposeInvestment   LoanPurpose = "Investment"
)

// LoanTerms lists the accepted loan terms in months.
var LoanTerms = []int{120, 180, 240, 300, 360}

func ValidLoanTerm(months int) bool {
	for _, t := range LoanTerms {
		if months == t {
			return true
		}
	}
	return false
}

func (e Education) Valid() bool {
	switch e {
	case EducationHighSchool, EducationBachelor, EducationMaster, EducationPhD:
		return true
	}
	return false
}

func (e EmploymentType) Valid() bool {
	switch e {
	case EmploymentSalaried, EmploymentSelfEmployed, EmploymentUnemployed:
		return true
	}
	return false
}

func (m MaritalStatus) Valid() bool {
	switch m {
	case MaritalSingle, MaritalMarried, MaritalDivorced:
		return true
	}
	return false
}

func (p LoanPurpose) Valid() bool {
	switch p {
	case PurposeHomePurchase, PurposeRefinance, PurposeInvestment:
		return true
	}
	return false
}

// Record holds the raw borrower attributes as collected from the caller.
// A Record has no identity: it is built for one assessment, scored, and
// discarded.
type Record struct {
	Age            int
	Income         float64
	LoanAmount     float64
	CreditScore    int
	MonthsEmployed int
	NumCreditLines int
	InterestRate   float64
	LoanTermMonths int
	DTIRatio       float64
	Education      Education
	EmploymentType EmploymentType
	MaritalStatus  MaritalStatus
	HasMortgage    bool
	HasDependents  bool
	HasCoSigner    bool
	LoanPurpose    LoanPurpose
}

// ExtendedRecord is a Record plus the derived ratios the classifier expects.
// Derived fields are never set independently; Derive recomputes them from
// the base record on every assessment.
type ExtendedRecord struct {
	Record
	LoanToIncome           float64
	EmploymentRatio        float64
	CreditUtilizationProxy float64
}
