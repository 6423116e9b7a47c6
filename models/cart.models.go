package models

// CartLine represents one position on the current receipt. Lines keep
// insertion order; scanning the same code again bumps Quantity instead
// of appending a second line.
type CartLine struct {
	Code           string `json:"code"`
	Name           string `json:"name"`
	UnitPriceCents int64  `json:"unit_price_cents"`
	Quantity       int    `json:"quantity"`
}

// LineTotalCents returns the position total for this line.
func (l CartLine) LineTotalCents() int64 {
	return l.UnitPriceCents * int64(l.Quantity)
}
