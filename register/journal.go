package register

import (
	"sync"
	"time"

	"go-register/models"
)

// Journal records completed sales for the day so the admin can pull a
// revenue summary. In-memory only; the register is reset between
// market days.
type Journal struct {
	mu    sync.Mutex
	sales []models.Sale
}

// NewJournal returns an empty journal.
func NewJournal() *Journal {
	return &Journal{}
}

// Append records one completed sale.
func (j *Journal) Append(sale models.Sale) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.sales = append(j.sales, sale)
}

// Sales returns a copy of all recorded sales, oldest first.
func (j *Journal) Sales() []models.Sale {
	j.mu.Lock()
	defer j.mu.Unlock()
	out := make([]models.Sale, len(j.sales))
	copy(out, j.sales)
	return out
}

// Summary totals the journal: number of sales, revenue and items sold.
func (j *Journal) Summary() (count int, revenueCents int64, items int) {
	j.mu.Lock()
	defer j.mu.Unlock()
	for _, s := range j.sales {
		count++
		revenueCents += s.TotalCents
		for _, it := range s.Items {
			items += it.Quantity
		}
	}
	return count, revenueCents, items
}

// Since returns sales recorded at or after the given time.
func (j *Journal) Since(t time.Time) []models.Sale {
	j.mu.Lock()
	defer j.mu.Unlock()
	var out []models.Sale
	for _, s := range j.sales {
		if !s.Time.Before(t) {
			out = append(out, s)
		}
	}
	return out
}
