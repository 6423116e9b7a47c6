// Package catalog maintains the product catalog as two layers: a
// read-only base catalog shipped with the register and admin-entered
// overrides persisted through a Store. Overrides shadow base entries
// with the same code; deleting an override reverts the merged view to
// the base entry.
package catalog

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	"go-register/ean"
	"go-register/models"
)

// Store persists the override layer. Implementations are last-write-wins;
// saves happen under the catalog lock so they never interleave.
type Store interface {
	Load(ctx context.Context) (map[string]models.Product, error)
	Save(ctx context.Context, overrides map[string]models.Product) error
}

// Catalog is the merged product mapping the register sells from.
// All methods are safe for concurrent use.
type Catalog struct {
	mu        sync.Mutex
	base      map[string]models.Product
	overrides map[string]models.Product
	merged    map[string]models.Product
	store     Store
}

// New builds a catalog over the given base layer and loads overrides
// from the store. A store load failure is returned wrapped in
// ErrUnavailable; the caller may continue with an empty override layer.
func New(ctx context.Context, base map[string]models.Product, store Store) (*Catalog, error) {
	c := &Catalog{
		base:      base,
		overrides: make(map[string]models.Product),
		store:     store,
	}
	if c.base == nil {
		c.base = make(map[string]models.Product)
	}
	var loadErr error
	if store != nil {
		ov, err := store.Load(ctx)
		if err != nil {
			loadErr = fmt.Errorf("%w: %v", ErrUnavailable, err)
		} else if ov != nil {
			c.overrides = ov
		}
	}
	c.remerge()
	return c, loadErr
}

// remerge rebuilds the merged view. Catalogs are small (tens to low
// hundreds of entries), so a full rebuild per change is fine.
// Caller holds c.mu or is the constructor.
func (c *Catalog) remerge() {
	m := make(map[string]models.Product, len(c.base)+len(c.overrides))
	for code, p := range c.base {
		m[code] = p
	}
	for code, p := range c.overrides {
		m[code] = p
	}
	c.merged = m
}

// Lookup returns the merged product for a normalized code.
func (c *Catalog) Lookup(code string) (models.Product, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	p, ok := c.merged[code]
	if !ok {
		return models.Product{}, ErrNotFound
	}
	return p, nil
}

// Upsert validates and writes an override entry. The code may be a
// 7/12-digit base (the check digit is completed) and the price uses the
// register's current display mode for parsing.
func (c *Catalog) Upsert(ctx context.Context, rawCode, name, priceText string, wholeUnits bool) (models.Product, error) {
	code, err := ean.Normalize(rawCode)
	if err != nil {
		return models.Product{}, fmt.Errorf("%w: %v", ErrInvalidCode, err)
	}
	if err := ean.Validate(code); err != nil {
		return models.Product{}, fmt.Errorf("%w: %v", ErrInvalidCode, err)
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return models.Product{}, ErrEmptyName
	}
	cents, err := ParseToCents(priceText, wholeUnits)
	if err != nil {
		return models.Product{}, err
	}

	p := models.Product{Code: code, Name: name, PriceCents: cents}

	c.mu.Lock()
	defer c.mu.Unlock()
	prev, had := c.overrides[code]
	c.overrides[code] = p
	c.remerge()
	if err := c.save(ctx); err != nil {
		// keep memory and store consistent
		if had {
			c.overrides[code] = prev
		} else {
			delete(c.overrides, code)
		}
		c.remerge()
		return models.Product{}, err
	}
	return p, nil
}

// Remove deletes an override entry. Base-layer entries cannot be
// deleted, only shadowed; the merged view falls back to the base entry
// if one exists.
func (c *Catalog) Remove(ctx context.Context, rawCode string) error {
	code, err := ean.Normalize(rawCode)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidCode, err)
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	prev, ok := c.overrides[code]
	if !ok {
		return ErrNotAnOverride
	}
	delete(c.overrides, code)
	c.remerge()
	if err := c.save(ctx); err != nil {
		c.overrides[code] = prev
		c.remerge()
		return err
	}
	return nil
}

// save persists the override layer. Caller holds c.mu.
func (c *Catalog) save(ctx context.Context) error {
	if c.store == nil {
		return nil
	}
	if err := c.store.Save(ctx, c.snapshotOverrides()); err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return nil
}

func (c *Catalog) snapshotOverrides() map[string]models.Product {
	out := make(map[string]models.Product, len(c.overrides))
	for code, p := range c.overrides {
		out[code] = p
	}
	return out
}

// ReplaceBase swaps in a freshly loaded base layer and rebuilds the
// merged view. Overrides are untouched.
func (c *Catalog) ReplaceBase(base map[string]models.Product) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if base == nil {
		base = make(map[string]models.Product)
	}
	c.base = base
	c.remerge()
}

// List returns merged entries whose code or name contains the filter
// (case-insensitive), sorted by name. An empty filter returns everything.
func (c *Catalog) List(filter string) []models.Product {
	f := strings.ToLower(strings.TrimSpace(filter))
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]models.Product, 0, len(c.merged))
	for code, p := range c.merged {
		if f == "" || strings.Contains(code, f) || strings.Contains(strings.ToLower(p.Name), f) {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Name != out[j].Name {
			return out[i].Name < out[j].Name
		}
		return out[i].Code < out[j].Code
	})
	return out
}

// Len returns the merged entry count.
func (c *Catalog) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.merged)
}
