package register

import (
	"go-register/ean"
	"go-register/models"
)

// AddByCode runs normalize → validate → lookup and on success bumps the
// existing line for that code or appends a new one. Each stage fails
// with its own error (ean.ErrInvalidLength, ean.ErrInvalidCheckDigit,
// catalog.ErrNotFound) and leaves the cart untouched.
func (s *Session) AddByCode(raw string) (models.CartLine, error) {
	code, err := ean.Normalize(raw)
	if err != nil {
		s.sounder.Error()
		return models.CartLine{}, err
	}
	if err := ean.Validate(code); err != nil {
		s.sounder.Error()
		return models.CartLine{}, err
	}
	p, err := s.catalog.Lookup(code)
	if err != nil {
		s.sounder.Error()
		return models.CartLine{}, err
	}

	// cue fires after the lock is released: sounders may read back
	// session state (main.go's does, for the sound setting)
	s.mu.Lock()
	var line models.CartLine
	bumped := false
	for i := range s.cart {
		if s.cart[i].Code == code {
			s.cart[i].Quantity++
			line = s.cart[i]
			bumped = true
			break
		}
	}
	if !bumped {
		line = models.CartLine{Code: code, Name: p.Name, UnitPriceCents: p.PriceCents, Quantity: 1}
		s.cart = append(s.cart, line)
	}
	s.mu.Unlock()

	s.sounder.ScanOK()
	return line, nil
}

// RemoveOne decrements the quantity of the line at index, dropping the
// line at zero. An out-of-range index is treated as already removed.
func (s *Session) RemoveOne(index int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if index < 0 || index >= len(s.cart) {
		return
	}
	s.cart[index].Quantity--
	if s.cart[index].Quantity <= 0 {
		s.cart = append(s.cart[:index], s.cart[index+1:]...)
	}
}

// RemoveLastAdded (storno) decrements the most recently appended line.
// No-op on an empty cart.
func (s *Session) RemoveLastAdded() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.cart) == 0 {
		return
	}
	last := len(s.cart) - 1
	s.cart[last].Quantity--
	if s.cart[last].Quantity <= 0 {
		s.cart = s.cart[:last]
	}
}

// ClearCart empties the line sequence. The tender ledger stays as is;
// use NewTransaction to reset both.
func (s *Session) ClearCart() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart = nil
}

// TotalCents sums the cart; zero when empty, never negative.
func (s *Session) TotalCents() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.totalLocked()
}

func (s *Session) totalLocked() int64 {
	var total int64
	for _, l := range s.cart {
		total += l.LineTotalCents()
	}
	return total
}

// Lines returns a copy of the cart in insertion order.
func (s *Session) Lines() []models.CartLine {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.CartLine, len(s.cart))
	copy(out, s.cart)
	return out
}
