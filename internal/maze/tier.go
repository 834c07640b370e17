package maze

import "strings"

// Tier grades how quickly a maze was escaped.
type Tier int

const (
	TierNone Tier = iota
	TierLow
	TierMid
	TierTop
)

// Stars returns the number of stars awarded for the tier.
func (t Tier) Stars() int {
	switch t {
	case TierTop:
		return 3
	case TierMid:
		return 2
	case TierLow:
		return 1
	default:
		return 0
	}
}

// Symbol returns the star string shown on completion, e.g. "★★☆".
func (t Tier) Symbol() string {
	if t == TierNone {
		return ""
	}
	return strings.Repeat("★", t.Stars()) + strings.Repeat("☆", 3-t.Stars())
}

func (t Tier) String() string {
	switch t {
	case TierTop:
		return "top"
	case TierMid:
		return "mid"
	case TierLow:
		return "low"
	default:
		return "none"
	}
}

// ParseTier converts a stored tier name back to a Tier.
func ParseTier(s string) Tier {
	switch s {
	case "top":
		return TierTop
	case "mid":
		return TierMid
	case "low":
		return TierLow
	default:
		return TierNone
	}
}

// TierPolicy maps elapsed whole seconds to a tier.
// Elapsed <= TopSeconds is top, <= MidSeconds is mid, anything slower is low.
type TierPolicy struct {
	TopSeconds int
	MidSeconds int
}

// DefaultTierPolicy returns the 30s / 60s thresholds.
func DefaultTierPolicy() TierPolicy {
	return TierPolicy{TopSeconds: 30, MidSeconds: 60}
}

// Grade returns the tier for the elapsed seconds.
func (p TierPolicy) Grade(seconds int) Tier {
	switch {
	case seconds <= p.TopSeconds:
		return TierTop
	case seconds <= p.MidSeconds:
		return TierMid
	default:
		return TierLow
	}
}
