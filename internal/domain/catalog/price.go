package catalog

import "fmt"

// PriceTier is an ordered price bracket, "$" (cheapest) to "$$$$".
type PriceTier string

// Price tiers in ascending order.
const (
	Tier1 PriceTier = "$"
	Tier2 PriceTier = "$$"
	Tier3 PriceTier = "$$$"
	Tier4 PriceTier = "$$$$"
)

var tierRank = map[PriceTier]int{Tier1: 1, Tier2: 2, Tier3: 3, Tier4: 4}

// ParsePriceTier validates s as a known tier.
func ParsePriceTier(s string) (PriceTier, error) {
	t := PriceTier(s)
	if !t.IsValid() {
		return "", fmt.Errorf("unknown price tier %q (want $, $$, $$$ or $$$$)", s)
	}
	return t, nil
}

// IsValid reports whether t is one of the known tiers.
func (t PriceTier) IsValid() bool {
	_, ok := tierRank[t]
	return ok
}

// Rank returns the 1-based position of t, or 0 for an unknown tier.
func (t PriceTier) Rank() int { return tierRank[t] }
