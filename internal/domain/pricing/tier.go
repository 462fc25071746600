package pricing

import "strings"

// Tier classifies a customer for discount and shipping purposes.
type Tier string

const (
	TierRegular  Tier = "REGULAR"
	TierPremium  Tier = "PREMIUM"
	TierVIP      Tier = "VIP"
	TierEmployee Tier = "EMPLOYEE"
	// TierUnknown is the fallback for unrecognized tier strings. It carries
	// no discount and standard shipping eligibility.
	TierUnknown Tier = "UNKNOWN"
)

// ParseTier normalizes a raw tier string case-insensitively. Unrecognized
// values map to TierUnknown; parsing never fails.
func ParseTier(s string) Tier {
	switch Tier(strings.ToUpper(strings.TrimSpace(s))) {
	case TierRegular:
		return TierRegular
	case TierPremium:
		return TierPremium
	case TierVIP:
		return TierVIP
	case TierEmployee:
		return TierEmployee
	default:
		return TierUnknown
	}
}

func (t Tier) String() string {
	return string(t)
}
