// Package register holds the transaction core: the cart ledger, the
// cash tendering ledger, receipt building and payment finalization.
// Everything here is synchronous and free of I/O except the injected
// Printer; rendering, persistence and transport live elsewhere.
package register

import (
	"sync"
	"time"

	"go-register/catalog"
	"go-register/models"
)

// Session owns the single active transaction: one cart, one tender
// ledger, the current settings. All methods are safe for concurrent use;
// a single mutex serializes every mutation so a rejected operation can
// never leave the ledgers half-changed.
type Session struct {
	mu       sync.Mutex
	catalog  *catalog.Catalog
	settings models.Settings

	cart   []models.CartLine
	tender Tender

	printer   Printer
	confirmer Confirmer
	sounder   Sounder
	journal   *Journal

	printing bool
	now      func() time.Time
}

// Option configures a Session.
type Option func(*Session)

// WithConfirmer sets the yes/no prompt collaborator. Without one,
// gated taps are refused.
func WithConfirmer(c Confirmer) Option { return func(s *Session) { s.confirmer = c } }

// WithSounder sets the audio cue collaborator.
func WithSounder(snd Sounder) Option { return func(s *Session) { s.sounder = snd } }

// WithJournal records completed sales into the given journal.
func WithJournal(j *Journal) Option { return func(s *Session) { s.journal = j } }

// WithClock overrides the receipt timestamp source.
func WithClock(now func() time.Time) Option { return func(s *Session) { s.now = now } }

// NewSession builds a session over the catalog and print collaborator.
func NewSession(cat *catalog.Catalog, printer Printer, settings models.Settings, opts ...Option) *Session {
	s := &Session{
		catalog:   cat,
		printer:   printer,
		settings:  settings,
		confirmer: ConfirmerFunc(func(string) bool { return false }),
		sounder:   NopSounder{},
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Settings returns the current register settings.
func (s *Session) Settings() models.Settings {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.settings
}

// UpdateSettings swaps in new settings. Takes effect immediately for
// parsing, display and the big-note gate.
func (s *Session) UpdateSettings(settings models.Settings) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.settings = settings
}

// State is a consistent snapshot of the running transaction for the UI.
type State struct {
	Lines       []models.CartLine `json:"lines"`
	TotalCents  int64             `json:"total_cents"`
	GivenCents  int64             `json:"given_cents"`
	ChangeCents int64             `json:"change_cents"`
	PayState    PayState          `json:"pay_state"`
	TapCounts   map[int64]int     `json:"tap_counts"`
	Printing    bool              `json:"printing"`
}

// Snapshot returns the current transaction state.
func (s *Session) Snapshot() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

func (s *Session) snapshotLocked() State {
	lines := make([]models.CartLine, len(s.cart))
	copy(lines, s.cart)
	total := s.totalLocked()
	return State{
		Lines:       lines,
		TotalCents:  total,
		GivenCents:  s.tender.givenCents,
		ChangeCents: s.tender.changeDue(total),
		PayState:    s.tender.state(total),
		TapCounts:   s.tender.countsCopy(),
		Printing:    s.printing,
	}
}

// NewTransaction resets cart and tender for the next customer.
func (s *Session) NewTransaction() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.resetLocked()
}

func (s *Session) resetLocked() {
	s.cart = nil
	s.tender.reset()
}
