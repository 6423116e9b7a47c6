package catalog

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
	"strings"

	"go-register/ean"
	"go-register/models"
)

// baseEntry is the products.json value shape. Price may be a number
// (cents) or a string in currency units ("1,50").
type baseEntry struct {
	Name  string          `json:"name"`
	Price json.RawMessage `json:"price"`
}

// LoadBaseFile reads the shipped base catalog, a JSON object mapping
// codes to {name, price}. Entries with an invalid code, blank name or
// unparseable price are dropped rather than failing the whole load.
func LoadBaseFile(path string) (map[string]models.Product, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer f.Close()

	var raw map[string]baseEntry
	if err := json.NewDecoder(f).Decode(&raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	out := make(map[string]models.Product, len(raw))
	for k, v := range raw {
		code, err := ean.Normalize(k)
		if err != nil || ean.Validate(code) != nil {
			continue
		}
		name := strings.TrimSpace(v.Name)
		if name == "" {
			continue
		}
		cents, ok := parseBasePrice(v.Price)
		if !ok {
			continue
		}
		out[code] = models.Product{Code: code, Name: name, PriceCents: cents}
	}
	return out, nil
}

// parseBasePrice accepts a JSON number (taken as cents) or a string
// (parsed as currency units with a flexible decimal separator).
func parseBasePrice(raw json.RawMessage) (int64, bool) {
	if len(raw) == 0 {
		return 0, false
	}
	var n float64
	if err := json.Unmarshal(raw, &n); err == nil {
		if n < 0 || math.IsNaN(n) {
			return 0, false
		}
		return int64(math.Round(n)), true
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		cents, perr := ParseToCents(s, false)
		if perr != nil {
			return 0, false
		}
		return cents, true
	}
	return 0, false
}
