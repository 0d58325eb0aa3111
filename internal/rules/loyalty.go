package rules

// LoyaltyChange is the before/after/delta triple shown to the admin
// before a points mutation is confirmed.
type LoyaltyChange struct {
	Previous int `json:"previous"`
	Delta    int `json:"delta"`
	NewTotal int `json:"new_total"`
}

// SetLoyaltyTotal replaces the balance outright. Negative requests are
// clamped to zero; the balance can never go below the floor.
func SetLoyaltyTotal(current, requested int) LoyaltyChange {
	newTotal := requested
	if newTotal < 0 {
		newTotal = 0
	}

	return LoyaltyChange{
		Previous: current,
		Delta:    newTotal - current,
		NewTotal: newTotal,
	}
}

// AddLoyaltyPoints adds a delta to the balance. Negative deltas are
// clamped to zero before adding; removing points is not a supported
// operation on this surface.
func AddLoyaltyPoints(current, delta int) LoyaltyChange {
	if delta < 0 {
		delta = 0
	}

	return LoyaltyChange{
		Previous: current,
		Delta:    delta,
		NewTotal: current + delta,
	}
}
