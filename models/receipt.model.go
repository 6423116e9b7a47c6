package models

import (
	"strings"
	"time"
)

// ReceiptDocument is the printable form of a finished transaction:
// an ordered sequence of text lines the print bridge renders verbatim.
type ReceiptDocument struct {
	Lines     []string  `json:"lines"`
	CreatedAt time.Time `json:"created_at"`
}

// Text joins the receipt lines with newlines, the payload shape the
// print bridge expects.
func (r ReceiptDocument) Text() string {
	return strings.Join(r.Lines, "\n")
}

// Sale is one completed (paid and printed) transaction in the journal.
type Sale struct {
	Time        time.Time  `json:"time"`
	Items       []CartLine `json:"items"`
	TotalCents  int64      `json:"total_cents"`
	GivenCents  int64      `json:"given_cents"`
	ChangeCents int64      `json:"change_cents"`
}
