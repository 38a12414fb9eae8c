package enums

import "fmt"

// Tier represents a subscription level controlling access to gated views.
type Tier string

const (
	TierStandard Tier = "standard"
	TierPro      Tier = "pro"
	TierElite    Tier = "elite"
)

var validTiers = []Tier{
	TierStandard,
	TierPro,
	TierElite,
}

var tierRanks = map[Tier]int{
	TierStandard: 0,
	TierPro:      1,
	TierElite:    2,
}

// String implements fmt.Stringer.
func (t Tier) String() string {
	return string(t)
}

// IsValid reports whether the value is a known Tier.
func (t Tier) IsValid() bool {
	for _, candidate := range validTiers {
		if candidate == t {
			return true
		}
	}
	return false
}

// AtLeast reports whether the tier grants everything the required tier grants.
func (t Tier) AtLeast(required Tier) bool {
	return tierRanks[t] >= tierRanks[required]
}

// ParseTier converts raw input into a Tier.
func ParseTier(value string) (Tier, error) {
	for _, candidate := range validTiers {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid tier %q", value)
}
