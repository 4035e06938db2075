package scorermock

import (
	"context"
	"errors"

	"mortgage-risk-api/internal/domain/borrower"
)

// Scorer is a function-backed mock that satisfies risk.Scorer.
type Scorer struct {
	ScoreFn func(ctx context.Context, rec borrower.ExtendedRecord) (float64, error)
}

func (m *Scorer) Score(ctx context.Context, rec borrower.ExtendedRecord) (float64, error) {
	if m.ScoreFn != nil {
		return m.ScoreFn(ctx, rec)
	}
	return 0, errors.New("not implemented")
}

// Fixed returns a mock that always scores p.
func Fixed(p float64) *Scorer {
	return &Scorer{ScoreFn: func(context.Context, borrower.ExtendedRecord) (float64, error) {
		return p, nil
	}}
}
