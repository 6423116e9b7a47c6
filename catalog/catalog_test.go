package catalog

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-register/models"
)

// Valid test codes:
//
//	4006381333931 (EAN-13), 96385074 (EAN-8), 12345670 (EAN-8)
const (
	codeA = "96385074"
	codeB = "12345670"
)

type memStore struct {
	data     map[string]models.Product
	saves    int
	failSave bool
}

func (m *memStore) Load(context.Context) (map[string]models.Product, error) {
	return m.data, nil
}

func (m *memStore) Save(_ context.Context, ov map[string]models.Product) error {
	if m.failSave {
		return errors.New("disk full")
	}
	m.saves++
	m.data = ov
	return nil
}

func newTestCatalog(t *testing.T, base map[string]models.Product) (*Catalog, *memStore) {
	t.Helper()
	st := &memStore{data: map[string]models.Product{}}
	c, err := New(context.Background(), base, st)
	require.NoError(t, err)
	return c, st
}

func TestLookupMergesBaseAndOverrides(t *testing.T) {
	base := map[string]models.Product{
		codeA: {Code: codeA, Name: "A", PriceCents: 100},
	}
	c, _ := newTestCatalog(t, base)

	p, err := c.Lookup(codeA)
	require.NoError(t, err)
	assert.Equal(t, "A", p.Name)
	assert.Equal(t, int64(100), p.PriceCents)

	_, err = c.Lookup(codeB)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestOverridePrecedenceAndRevert(t *testing.T) {
	base := map[string]models.Product{
		codeA: {Code: codeA, Name: "A", PriceCents: 100},
	}
	c, st := newTestCatalog(t, base)
	ctx := context.Background()

	_, err := c.Upsert(ctx, codeA, "B", "1,50", false)
	require.NoError(t, err)

	p, err := c.Lookup(codeA)
	require.NoError(t, err)
	assert.Equal(t, "B", p.Name)
	assert.Equal(t, int64(150), p.PriceCents)
	assert.Equal(t, 1, st.saves)

	// deleting the override reverts to the base entry
	require.NoError(t, c.Remove(ctx, codeA))
	p, err = c.Lookup(codeA)
	require.NoError(t, err)
	assert.Equal(t, "A", p.Name)
	assert.Equal(t, int64(100), p.PriceCents)

	// the base entry itself cannot be deleted
	assert.ErrorIs(t, c.Remove(ctx, codeA), ErrNotAnOverride)
}

func TestUpsertValidation(t *testing.T) {
	c, _ := newTestCatalog(t, nil)
	ctx := context.Background()

	_, err := c.Upsert(ctx, "123", "X", "1", false)
	assert.ErrorIs(t, err, ErrInvalidCode)

	_, err = c.Upsert(ctx, "96385075", "X", "1", false) // bad check digit
	assert.ErrorIs(t, err, ErrInvalidCode)

	_, err = c.Upsert(ctx, codeA, "   ", "1", false)
	assert.ErrorIs(t, err, ErrEmptyName)

	_, err = c.Upsert(ctx, codeA, "X", "-1", false)
	assert.ErrorIs(t, err, ErrInvalidPrice)

	assert.Equal(t, 0, c.Len())
}

func TestUpsertCompletesPartialCode(t *testing.T) {
	c, _ := newTestCatalog(t, nil)

	p, err := c.Upsert(context.Background(), "9638507", "Juice", "0,50", false)
	require.NoError(t, err)
	assert.Equal(t, codeA, p.Code)

	got, err := c.Lookup(codeA)
	require.NoError(t, err)
	assert.Equal(t, "Juice", got.Name)
}

func TestUpsertRollsBackOnSaveFailure(t *testing.T) {
	c, st := newTestCatalog(t, nil)
	st.failSave = true

	_, err := c.Upsert(context.Background(), codeA, "X", "1", false)
	assert.ErrorIs(t, err, ErrUnavailable)

	_, err = c.Lookup(codeA)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestListFiltersAndSorts(t *testing.T) {
	base := map[string]models.Product{
		codeA: {Code: codeA, Name: "Zitrone", PriceCents: 100},
		codeB: {Code: codeB, Name: "Apfel", PriceCents: 50},
	}
	c, _ := newTestCatalog(t, base)

	all := c.List("")
	require.Len(t, all, 2)
	assert.Equal(t, "Apfel", all[0].Name)
	assert.Equal(t, "Zitrone", all[1].Name)

	assert.Len(t, c.List("apf"), 1)
	assert.Len(t, c.List(codeA), 1)
	assert.Len(t, c.List("nope"), 0)
}

func TestReplaceBaseKeepsOverrides(t *testing.T) {
	c, _ := newTestCatalog(t, nil)
	_, err := c.Upsert(context.Background(), codeA, "Mine", "1", false)
	require.NoError(t, err)

	c.ReplaceBase(map[string]models.Product{
		codeA: {Code: codeA, Name: "Theirs", PriceCents: 999},
		codeB: {Code: codeB, Name: "New", PriceCents: 10},
	})

	p, err := c.Lookup(codeA)
	require.NoError(t, err)
	assert.Equal(t, "Mine", p.Name)

	p, err = c.Lookup(codeB)
	require.NoError(t, err)
	assert.Equal(t, "New", p.Name)
}
