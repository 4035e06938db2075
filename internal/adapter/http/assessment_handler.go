package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"mortgage-risk-api/internal/domain/risk"
	"mortgage-risk-api/internal/usecase/assessment"
)

type AssessmentHandler struct{ uc *assessment.Usecase }

func NewAssessmentHandler(uc *assessment.Usecase) *AssessmentHandler {
	return &AssessmentHandler{uc: uc}
}

type assessReq struct {
	Age            int     `json:"age"              validate:"gte=18,lte=70"`
	Income         float64 `json:"income"           validate:"gte=0"`
	LoanAmount     float64 `json:"loan_amount"      validate:"gte=0"`
	CreditScore    int     `json:"credit_score"     validate:"gte=300,lte=850"`
	MonthsEmployed int     `json:"months_employed"  validate:"gte=0,lte=480"`
	NumCreditLines int     `json:"num_credit_lines" validate:"gte=0,lte=15"`
	InterestRate   float64 `json:"interest_rate"    validate:"gte=1,lte=25,dec2"`
	LoanTermMonths int     `json:"loan_term_months" validate:"loanterm"`
	DTIRatio       float64 `json:"dti_ratio"        validate:"gte=0,lte=1"`
	Education      string  `json:"education"        validate:"required,oneof=HighSchool Bachelor Master PhD"`
	EmploymentType string  `json:"employment_type"  validate:"required,oneof=Salaried SelfEmployed Unemployed"`
	MaritalStatus  string  `json:"marital_status"   validate:"required,oneof=Single Married Divorced"`
	HasMortgage    bool    `json:"has_mortgage"`
	HasDependents  bool    `json:"has_dependents"`
	HasCoSigner    bool    `json:"has_co_signer"`
	LoanPurpose    string  `json:"loan_purpose"     validate:"required,oneof=HomePurchase Refinance Investment"`
}

func (h *AssessmentHandler) Assess(c echo.Context) error {
	var req assessReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}

	dto, err := h.uc.Assess(c.Request().Context(), assessment.AssessInput(req))
	if err != nil {
		// Map domain errors → HTTP codes
		switch {
		case errors.Is(err, assessment.ErrInvalidInput):
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		case errors.Is(err, risk.ErrScoring):
			return c.JSON(http.StatusBadGateway, ErrorResponse{Error: "scoring failed"})
		default:
			return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "assessment failed"})
		}
	}
	return c.JSON(http.StatusOK, dto)
}
