package risk

type Tier string

const (
	TierLow      Tier = "low"
	TierModerate Tier = "moderate"
	TierHigh     Tier = "high"
)

// Band boundaries on P(default). Lower bounds are exclusive of the band
// below: 0.20 is already moderate, 0.40 is already high.
const (
	moderateThreshold = 0.20
	highThreshold     = 0.40
)

const (
	recommendApprove = "approve under standard guidelines"
	recommendVerify  = "proceed with caution / additional verification"
	recommendReject  = "recommend rejection absent strong compensating factors"
)

// Classify maps a default probability to a risk tier and the canned
// underwriting recommendation for that tier.
//
// Precondition: p is in [0,1]. Values outside that range are a contract
// violation by the upstream classifier and are not handled here.
func Classify(p float64) (Tier, string) {
	switch {
	case p < moderateThreshold:
		return TierLow, recommendApprove
	case p < highThreshold:
		return TierModerate, recommendVerify
	default:
		return TierHigh, recommendReject
	}
}

// GaugeColor is the 1:1 presentation mapping used by the risk gauge.
// Rendering consumes only this and the tier; no risk logic lives here.
func GaugeColor(t Tier) string {
	switch t {
	case TierLow:
		return "#2ecc71"
	case TierModerate:
		return "#f39c12"
	default:
		return "#e74c3c"
	}
}
