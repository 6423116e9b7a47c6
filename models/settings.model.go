package models

// CentMode controls which coin denominations the register offers.
type CentMode string

const (
	CentModeAll    CentMode = "all"    // every coin down to 1 cent
	CentModeCoarse CentMode = "coarse" // 10 cents and up
	CentModeNone   CentMode = "none"   // whole-euro coins only
)

// Settings holds the operator-facing register configuration. It is
// persisted as a small JSON document and only editable through the
// admin surface.
type Settings struct {
	CentMode        CentMode `json:"cent_mode"`
	BigNotes        bool     `json:"big_notes"`         // offer 100/200/500 euro notes
	ConfirmBigNotes bool     `json:"confirm_big_notes"` // gate big-note taps behind a prompt
	Sound           bool     `json:"sound"`
	WholeUnits      bool     `json:"whole_units"` // display and enter whole euros only

	// BigNoteThresholdCents is the smallest denomination that counts as
	// a big note for the confirmation gate.
	BigNoteThresholdCents int64 `json:"big_note_threshold_cents"`
}

// DefaultSettings mirrors a fresh register: all coins, no big notes,
// confirmation on, sound on, cent display on.
func DefaultSettings() Settings {
	return Settings{
		CentMode:              CentModeAll,
		BigNotes:              false,
		ConfirmBigNotes:       true,
		Sound:                 true,
		WholeUnits:            false,
		BigNoteThresholdCents: 10000,
	}
}
