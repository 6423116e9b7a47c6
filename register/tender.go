package register

// Tender is the cash ledger for the running transaction: the amount
// declared as given, the tap history for undo, and per-denomination
// counts for the money buttons. The given amount always equals the sum
// of the tap history; the counts are its multiset view. Tender is not
// safe for concurrent use on its own; the Session serializes access.
type Tender struct {
	givenCents int64
	taps       []int64
	counts     map[int64]int
}

// PayState classifies the tender against the cart total.
type PayState string

const (
	Underpaid  PayState = "underpaid"
	ExactMatch PayState = "exact"
	Overpaid   PayState = "overpaid"
)

func (t *Tender) tap(denom int64) {
	if denom <= 0 {
		return
	}
	t.givenCents += denom
	t.taps = append(t.taps, denom)
	if t.counts == nil {
		t.counts = make(map[int64]int)
	}
	t.counts[denom]++
}

// undoLast pops the most recent tap. No-op on empty history.
func (t *Tender) undoLast() {
	if len(t.taps) == 0 {
		return
	}
	last := t.taps[len(t.taps)-1]
	t.taps = t.taps[:len(t.taps)-1]

	t.givenCents -= last
	if t.givenCents < 0 {
		t.givenCents = 0
	}
	if c := t.counts[last] - 1; c <= 0 {
		delete(t.counts, last)
	} else {
		t.counts[last] = c
	}
}

func (t *Tender) reset() {
	t.givenCents = 0
	t.taps = nil
	t.counts = nil
}

// setExact sets the given amount to exactly the total, bypassing the
// tap mechanism. Tap history and counts are cleared.
func (t *Tender) setExact(totalCents int64) {
	t.reset()
	t.givenCents = totalCents
}

func (t *Tender) changeDue(totalCents int64) int64 {
	if d := t.givenCents - totalCents; d > 0 {
		return d
	}
	return 0
}

func (t *Tender) state(totalCents int64) PayState {
	switch {
	case t.givenCents < totalCents:
		return Underpaid
	case t.givenCents > totalCents:
		return Overpaid
	default:
		return ExactMatch
	}
}

func (t *Tender) countsCopy() map[int64]int {
	out := make(map[int64]int, len(t.counts))
	for denom, c := range t.counts {
		out[denom] = c
	}
	return out
}

func (t *Tender) tapsCopy() []int64 {
	out := make([]int64, len(t.taps))
	copy(out, t.taps)
	return out
}
