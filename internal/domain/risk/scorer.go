package risk

import (
	"context"
	"errors"

	"mortgage-risk-api/internal/domain/borrower"
)

// ErrScoring marks a failed classifier call. There are no transient-failure
// semantics for this domain: callers surface it, they do not retry.
var ErrScoring = errors.New("classifier scoring failed")

// Scorer is the port to the pre-trained default classifier. Implementations
// are loaded once at process start, are immutable afterwards, and must be
// safe for concurrent read-only scoring.
type Scorer interface {
	// Score returns P(default) in [0,1] for the extended record.
	Score(ctx context.Context, rec borrower.ExtendedRecord) (float64, error)
}
