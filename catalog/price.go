package catalog

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ParseToCents parses operator price input into cents. Comma and dot
// both work as the decimal separator. With wholeUnits on, fractional
// input is rejected and the value is taken as whole currency units.
func ParseToCents(text string, wholeUnits bool) (int64, error) {
	raw := strings.TrimSpace(text)
	if raw == "" {
		return 0, ErrInvalidPrice
	}
	raw = strings.ReplaceAll(raw, " ", "")

	if wholeUnits {
		n, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || n < 0 {
			return 0, fmt.Errorf("%w: %q", ErrInvalidPrice, text)
		}
		return n * 100, nil
	}

	norm := strings.ReplaceAll(raw, ",", ".")
	f, err := strconv.ParseFloat(norm, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) || f < 0 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidPrice, text)
	}
	return int64(math.Round(f * 100)), nil
}

// FormatCents renders cents for display and receipts: "1,50 €", or a
// rounded "2 €" when whole-unit display is on.
func FormatCents(cents int64, wholeUnits bool) string {
	if wholeUnits {
		return fmt.Sprintf("%d €", int64(math.Round(float64(cents)/100)))
	}
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return fmt.Sprintf("%s%d,%02d €", sign, cents/100, cents%100)
}
