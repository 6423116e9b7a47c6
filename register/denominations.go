package register

import "go-register/models"

// Denomination sets in cents. Which ones the register offers depends on
// the cent-mode and big-notes settings.
var (
	coinsAll    = []int64{1, 2, 5, 10, 20, 50, 100, 200}
	coinsCoarse = []int64{10, 20, 50, 100, 200}
	coinsNone   = []int64{100, 200}
	notesBase   = []int64{500, 1000, 2000, 5000}
	notesBig    = []int64{10000, 20000, 50000}
)

// Denominations returns the coin and note buttons for the given
// settings, smallest first.
func Denominations(s models.Settings) (coins, notes []int64) {
	switch s.CentMode {
	case models.CentModeCoarse:
		coins = coinsCoarse
	case models.CentModeNone:
		coins = coinsNone
	default:
		coins = coinsAll
	}
	notes = notesBase
	if s.BigNotes {
		notes = append(append([]int64{}, notesBase...), notesBig...)
	}
	return coins, notes
}
