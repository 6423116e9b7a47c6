package register

import (
	"fmt"
	"time"

	"go-register/catalog"
	"go-register/models"
)

const (
	receiptTitle   = "KINDERLADEN"
	receiptSep     = "--------------------------------"
	receiptClosing = "Danke fürs Einkaufen! :)"
)

// BuildReceipt renders a transaction into printable text lines. It is a
// pure transform; amounts are formatted with the same display mode the
// operator saw so the printed receipt matches the screen.
func BuildReceipt(lines []models.CartLine, totalCents, givenCents int64, at time.Time, wholeUnits bool) models.ReceiptDocument {
	eur := func(cents int64) string { return catalog.FormatCents(cents, wholeUnits) }

	out := make([]string, 0, len(lines)+9)
	out = append(out,
		receiptTitle,
		at.Format("02.01.2006 15:04"),
		receiptSep,
	)
	for _, l := range lines {
		out = append(out, fmt.Sprintf("%s x%d  %s", l.Name, l.Quantity, eur(l.LineTotalCents())))
	}
	change := givenCents - totalCents
	if change < 0 {
		change = 0
	}
	out = append(out,
		receiptSep,
		fmt.Sprintf("SUMME:   %s", eur(totalCents)),
		fmt.Sprintf("GEGEBEN: %s", eur(givenCents)),
		fmt.Sprintf("RUECKG.: %s", eur(change)),
		receiptSep,
		receiptClosing,
	)
	return models.ReceiptDocument{Lines: out, CreatedAt: at}
}
