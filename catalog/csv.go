package catalog

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"go-register/ean"
	"go-register/models"
)

// CSV interchange: semicolon-separated, fixed column order
// {code, name, price}, with a header row on export.
const csvHeader = "ean;name;price"

// ExportCSV writes the merged catalog, name-sorted, prices always with
// two decimals and a comma separator so the file round-trips through
// ImportCSV regardless of the display mode.
func (c *Catalog) ExportCSV(w io.Writer) error {
	cw := csv.NewWriter(w)
	cw.Comma = ';'

	if err := cw.Write(strings.Split(csvHeader, ";")); err != nil {
		return err
	}
	for _, p := range c.List("") {
		price := fmt.Sprintf("%d,%02d", p.PriceCents/100, p.PriceCents%100)
		if err := cw.Write([]string{p.Code, p.Name, price}); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// ImportCSV reads {code, name, price} rows into the override layer.
// The header row is recognized and skipped; malformed rows are counted
// as skipped instead of aborting the import. Overrides are persisted
// once at the end.
func (c *Catalog) ImportCSV(ctx context.Context, r io.Reader, wholeUnits bool) (added, skipped int, err error) {
	cr := csv.NewReader(r)
	cr.Comma = ';'
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true
	cr.TrimLeadingSpace = true

	imported := map[string]models.Product{}
	for {
		record, rerr := cr.Read()
		if rerr == io.EOF {
			break
		}
		if rerr != nil {
			skipped++
			continue
		}
		if len(record) == 0 {
			continue
		}
		first := strings.ToLower(strings.TrimSpace(record[0]))
		if first == "" || first == "ean" || first == "code" {
			continue
		}
		if len(record) < 3 {
			skipped++
			continue
		}

		code, nerr := ean.Normalize(record[0])
		if nerr != nil || ean.Validate(code) != nil {
			skipped++
			continue
		}
		name := strings.TrimSpace(record[1])
		if name == "" {
			skipped++
			continue
		}
		cents, perr := ParseToCents(record[2], wholeUnits)
		if perr != nil {
			skipped++
			continue
		}

		imported[code] = models.Product{Code: code, Name: name, PriceCents: cents}
		added++
	}

	if added == 0 {
		return added, skipped, nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	prev := c.snapshotOverrides()
	for code, p := range imported {
		c.overrides[code] = p
	}
	c.remerge()
	if serr := c.save(ctx); serr != nil {
		// keep memory and store consistent
		c.overrides = prev
		c.remerge()
		return added, skipped, serr
	}
	return added, skipped, nil
}
