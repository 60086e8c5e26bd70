package odds

// AmericanToImplied converts an American price to the probability it implies.
// Example: -150 → 0.6 (60%), +150 → 0.4 (40%). Zero yields 0.
func AmericanToImplied(price int) float64 {
	switch {
	case price > 0:
		return 100.0 / (float64(price) + 100.0)
	case price < 0:
		p := float64(-price)
		return p / (p + 100.0)
	default:
		return 0
	}
}

// Implied returns the raw implied probabilities of both sides, in pair order.
func (p OutcomePair) Implied() (float64, float64) {
	return AmericanToImplied(p.side0.Price), AmericanToImplied(p.side1.Price)
}

// Hold is the bookmaker's margin: how far the implied probabilities sum past 1.
func (p OutcomePair) Hold() float64 {
	a, b := p.Implied()
	if a <= 0 || b <= 0 {
		return 0
	}
	return a + b - 1
}

// NoVig scales both implied probabilities so they sum to 1.
// Returns zeros if either price is missing.
func (p OutcomePair) NoVig() (float64, float64) {
	a, b := p.Implied()
	if a <= 0 || b <= 0 {
		return 0, 0
	}
	total := a + b
	return a / total, b / total
}
