package valueobjects

// MembershipLevel is a customer's loyalty tier.
type MembershipLevel string

const (
	MembershipBronze   MembershipLevel = "bronze"
	MembershipSilver   MembershipLevel = "silver"
	MembershipGold     MembershipLevel = "gold"
	MembershipPlatinum MembershipLevel = "platinum"
)

// Loyalty point thresholds for each tier.
const (
	SilverThreshold   = 200
	GoldThreshold     = 500
	PlatinumThreshold = 1000
)

// MembershipForPoints returns the tier a point total qualifies for.
func MembershipForPoints(points int) MembershipLevel {
	switch {
	case points >= PlatinumThreshold:
		return MembershipPlatinum
	case points >= GoldThreshold:
		return MembershipGold
	case points >= SilverThreshold:
		return MembershipSilver
	default:
		return MembershipBronze
	}
}

func (m MembershipLevel) String() string {
	return string(m)
}
