package register

import (
	"context"

	"go-register/models"
)

// Printer hands a finished receipt to the print bridge. The session
// does not retry; a failure is reported and the operator may try again.
type Printer interface {
	Print(ctx context.Context, doc models.ReceiptDocument) error
}

// Confirmer answers yes/no prompts, used for large-denomination taps.
// Injecting it keeps the session testable with always-yes/always-no
// fakes and lets the HTTP adapter turn the prompt into a round trip.
type Confirmer interface {
	Confirm(message string) bool
}

// ConfirmerFunc adapts a function to the Confirmer interface.
type ConfirmerFunc func(message string) bool

func (f ConfirmerFunc) Confirm(message string) bool { return f(message) }

// Sounder plays the register's audio cues. The session emits cues for
// every accepted scan, rejected input and finished print.
type Sounder interface {
	ScanOK()
	Error()
	PrintOK()
}

// NopSounder ignores all cues.
type NopSounder struct{}

func (NopSounder) ScanOK()  {}
func (NopSounder) Error()   {}
func (NopSounder) PrintOK() {}
