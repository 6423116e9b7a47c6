package utils

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-register/models"
)

func TestSettingsRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")

	// missing file falls back to defaults
	got, err := LoadSettings(path)
	require.NoError(t, err)
	assert.Equal(t, models.DefaultSettings(), got)

	want := models.DefaultSettings()
	want.CentMode = models.CentModeCoarse
	want.BigNotes = true
	want.WholeUnits = true
	require.NoError(t, SaveSettings(path, want))

	got, err = LoadSettings(path)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestLoadSettingsRejectsGarbage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")
	require.NoError(t, os.WriteFile(path, []byte("{nope"), 0o644))
	_, err := LoadSettings(path)
	assert.Error(t, err)
}

func TestBuildSalesReport(t *testing.T) {
	at := time.Date(2026, 8, 29, 10, 30, 0, 0, time.UTC)
	sales := []models.Sale{
		{
			Time:       at,
			TotalCents: 250,
			Items: []models.CartLine{
				{Name: "Saft", UnitPriceCents: 50, Quantity: 2},
				{Name: "Kakao", UnitPriceCents: 150, Quantity: 1},
			},
		},
		{
			Time:       at.Add(time.Hour),
			TotalCents: 100,
			Items:      []models.CartLine{{Name: "Saft", UnitPriceCents: 50, Quantity: 2}},
		},
	}

	body := BuildSalesReport(sales)
	assert.Contains(t, body, "10:30   3 Artikel  2,50 €")
	assert.Contains(t, body, "Verkäufe: 2")
	assert.Contains(t, body, "Artikel:  5")
	assert.Contains(t, body, "Umsatz:   3,50 €")
}

func TestAdminPIN(t *testing.T) {
	require.NoError(t, SetAdminPIN("1234"))
	assert.True(t, CheckAdminPIN("1234"))
	assert.False(t, CheckAdminPIN("0000"))
	assert.False(t, CheckAdminPIN(""))
}

func TestGenerateJWT(t *testing.T) {
	JwtKey = []byte("test-secret")
	token, err := GenerateJWT("admin")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
}
