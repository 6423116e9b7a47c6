package register

import (
	"context"
	"fmt"

	"go-register/catalog"
	"go-register/models"
)

// Tap records a cash denomination as given. Non-positive denominations
// are ignored. Denominations at or above the big-note threshold are
// gated behind the session's Confirmer while the confirm policy is on;
// without an explicit yes the ledger stays unchanged and
// ErrConfirmationRequired is returned.
func (s *Session) Tap(denom int64) error {
	if denom <= 0 {
		return nil
	}
	s.mu.Lock()
	gated := s.settings.ConfirmBigNotes && denom >= s.settings.BigNoteThresholdCents
	wholeUnits := s.settings.WholeUnits
	s.mu.Unlock()

	if gated {
		msg := fmt.Sprintf("Wirklich %s gegeben?", catalog.FormatCents(denom, wholeUnits))
		if !s.confirmer.Confirm(msg) {
			return ErrConfirmationRequired
		}
	}
	return s.TapConfirmed(denom)
}

// TapConfirmed records a tap whose confirmation the operator already
// answered, bypassing the gate.
func (s *Session) TapConfirmed(denom int64) error {
	if denom <= 0 {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tender.tap(denom)
	return nil
}

// UndoLast reverts the most recent tap; no-op on empty history.
func (s *Session) UndoLast() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tender.undoLast()
}

// ResetGiven zeroes the tender ledger without touching the cart.
func (s *Session) ResetGiven() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tender.reset()
}

// SetExact sets the given amount to exactly the cart total ("exact
// change" shortcut); tap history and counts are cleared.
func (s *Session) SetExact() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tender.setExact(s.totalLocked())
}

// GivenCents returns the running given amount.
func (s *Session) GivenCents() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tender.givenCents
}

// ChangeDueCents returns max(0, given − total).
func (s *Session) ChangeDueCents() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tender.changeDue(s.totalLocked())
}

// PayState classifies the current tender against the total.
func (s *Session) PayState() PayState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tender.state(s.totalLocked())
}

// TapHistory returns a copy of the tap history, most recent last.
func (s *Session) TapHistory() []int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tender.tapsCopy()
}

// BuildReceipt renders the current transaction without printing it.
func (s *Session) BuildReceipt() models.ReceiptDocument {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.buildReceiptLocked()
}

func (s *Session) buildReceiptLocked() models.ReceiptDocument {
	lines := make([]models.CartLine, len(s.cart))
	copy(lines, s.cart)
	return BuildReceipt(lines, s.totalLocked(), s.tender.givenCents, s.now(), s.settings.WholeUnits)
}

// beginPrint validates the finalization preconditions and reserves the
// printer. Returns the receipt and a snapshot of the transaction taken
// while everything was still consistent. The error cue fires after the
// lock is released; sounders may read back session state.
func (s *Session) beginPrint() (models.ReceiptDocument, models.Sale, error) {
	s.mu.Lock()

	if s.printing {
		s.mu.Unlock()
		return models.ReceiptDocument{}, models.Sale{}, ErrPrintInProgress
	}
	total := s.totalLocked()
	if total <= 0 {
		s.mu.Unlock()
		s.sounder.Error()
		return models.ReceiptDocument{}, models.Sale{}, ErrEmptyCart
	}
	if s.tender.givenCents < total {
		s.mu.Unlock()
		s.sounder.Error()
		return models.ReceiptDocument{}, models.Sale{}, ErrInsufficientPayment
	}

	doc := s.buildReceiptLocked()
	items := make([]models.CartLine, len(s.cart))
	copy(items, s.cart)
	sale := models.Sale{
		Time:        doc.CreatedAt,
		Items:       items,
		TotalCents:  total,
		GivenCents:  s.tender.givenCents,
		ChangeCents: s.tender.changeDue(total),
	}
	s.printing = true
	s.mu.Unlock()
	return doc, sale, nil
}

func (s *Session) endPrint() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.printing = false
}

// PrintOnly prints the current receipt and leaves the transaction
// untouched so the cashier can hand out a copy or retry.
func (s *Session) PrintOnly(ctx context.Context) error {
	doc, _, err := s.beginPrint()
	if err != nil {
		return err
	}
	defer s.endPrint()

	if err := s.printer.Print(ctx, doc); err != nil {
		s.sounder.Error()
		return fmt.Errorf("%w: %v", ErrPrinterUnavailable, err)
	}
	s.sounder.PrintOK()
	return nil
}

// PayAndPrint finalizes the transaction: preconditions checked, receipt
// printed, and only after a successful print the cart and tender reset
// for the next customer and the sale lands in the journal. A failed
// print leaves everything in place for a retry.
func (s *Session) PayAndPrint(ctx context.Context) error {
	doc, sale, err := s.beginPrint()
	if err != nil {
		return err
	}
	defer s.endPrint()

	if err := s.printer.Print(ctx, doc); err != nil {
		s.sounder.Error()
		return fmt.Errorf("%w: %v", ErrPrinterUnavailable, err)
	}

	s.mu.Lock()
	s.resetLocked()
	s.mu.Unlock()

	if s.journal != nil {
		s.journal.Append(sale)
	}
	s.sounder.PrintOK()
	return nil
}
