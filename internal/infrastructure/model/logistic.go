package model

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"os"

	"mortgage-risk-api/internal/domain/borrower"
	"mortgage-risk-api/internal/domain/risk"
)

// artifact is the on-disk shape of a trained logistic classifier:
// an intercept, one weight per numeric feature (booleans are 0/1
// indicators), and one weight per category of each enum feature.
type artifact struct {
	Version      string                        `json:"version"`
	Intercept    float64                       `json:"intercept"`
	Coefficients map[string]float64            `json:"coefficients"`
	Categories   map[string]map[string]float64 `json:"categories"`
}

// LogisticModel scores extended borrower records. Immutable after load,
// so concurrent Score calls need no locking.
type LogisticModel struct {
	version      string
	intercept    float64
	coefficients map[string]float64
	categories   map[string]map[string]float64
}

// LoadArtifact reads and sanity-checks the classifier artifact. A load
// failure is fatal to the caller: there is no fallback scorer.
func LoadArtifact(path string) (*LogisticModel, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read model artifact: %w", err)
	}
	var a artifact
	if err := json.Unmarshal(raw, &a); err != nil {
		return nil, fmt.Errorf("decode model artifact %s: %w", path, err)
	}
	if len(a.Coefficients) == 0 {
		return nil, fmt.Errorf("model artifact %s has no coefficients", path)
	}
	if !isFinite(a.Intercept) {
		return nil, fmt.Errorf("model artifact %s: intercept is not finite", path)
	}
	for name, w := range a.Coefficients {
		if !isFinite(w) {
			return nil, fmt.Errorf("model artifact %s: coefficient %q is not finite", path, name)
		}
	}
	for feature, weights := range a.Categories {
		for cat, w := range weights {
			if !isFinite(w) {
				return nil, fmt.Errorf("model artifact %s: weight %s=%s is not finite", path, feature, cat)
			}
		}
	}
	return &LogisticModel{
		version:      a.Version,
		intercept:    a.Intercept,
		coefficients: a.Coefficients,
		categories:   a.Categories,
	}, nil
}

func (m *LogisticModel) Version() string { return m.version }

// Score computes sigmoid(intercept + w·x) over the record's features.
// Implements risk.Scorer.
func (m *LogisticModel) Score(ctx context.Context, rec borrower.ExtendedRecord) (float64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	z := m.intercept
	for name, value := range numericFeatures(rec) {
		if w, ok := m.coefficients[name]; ok {
			z += w * value
		}
	}
	for feature, category := range categoryFeatures(rec) {
		weights, ok := m.categories[feature]
		if !ok {
			continue // feature unused by this artifact version
		}
		w, ok := weights[category]
		if !ok {
			return 0, fmt.Errorf("%w: unknown category %q for %s", risk.ErrScoring, category, feature)
		}
		z += w
	}

	p := 1.0 / (1.0 + math.Exp(-z))
	if math.IsNaN(p) {
		return 0, fmt.Errorf("%w: non-finite probability", risk.ErrScoring)
	}
	return p, nil
}

func numericFeatures(rec borrower.ExtendedRecord) map[string]float64 {
	return map[string]float64{
		"Age":                    float64(rec.Age),
		"Income":                 rec.Income,
		"LoanAmount":             rec.LoanAmount,
		"CreditScore":            float64(rec.CreditScore),
		"MonthsEmployed":         float64(rec.MonthsEmployed),
		"NumCreditLines":         float64(rec.NumCreditLines),
		"InterestRate":           rec.InterestRate,
		"LoanTerm":               float64(rec.LoanTermMonths),
		"DTIRatio":               rec.DTIRatio,
		"LoanToIncome":           rec.LoanToIncome,
		"EmploymentRatio":        rec.EmploymentRatio,
		"CreditUtilizationProxy": rec.CreditUtilizationProxy,
		"HasMortgage":            boolToFloat(rec.HasMortgage),
		"HasDependents":          boolToFloat(rec.HasDependents),
		"HasCoSigner":            boolToFloat(rec.HasCoSigner),
	}
}

func categoryFeatures(rec borrower.ExtendedRecord) map[string]string {
	return map[string]string{
		"Education":      string(rec.Education),
		"EmploymentType": string(rec.EmploymentType),
		"MaritalStatus":  string(rec.MaritalStatus),
		"LoanPurpose":    string(rec.LoanPurpose),
	}
}

func boolToFloat(b bool) float64 {
	if b {
		return 1
	}
	return 0
}

func isFinite(f float64) bool { return !math.IsNaN(f) && !math.IsInf(f, 0) }
