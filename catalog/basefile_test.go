package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadBaseFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "products.json")
	data := `{
		"96385074": {"name": "Saft", "price": 50},
		"1234567":  {"name": "Kakao", "price": "1,50"},
		"96385075": {"name": "BadCheck", "price": 10},
		"96385074x": {"name": "", "price": 10},
		"123": {"name": "TooShort", "price": 10}
	}`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	got, err := LoadBaseFile(path)
	require.NoError(t, err)
	require.Len(t, got, 2)

	assert.Equal(t, int64(50), got["96385074"].PriceCents)
	// 7-digit key normalized to a full EAN-8, string price parsed as euros
	assert.Equal(t, "Kakao", got["12345670"].Name)
	assert.Equal(t, int64(150), got["12345670"].PriceCents)
}

func TestLoadBaseFileMissing(t *testing.T) {
	_, err := LoadBaseFile(filepath.Join(t.TempDir(), "nope.json"))
	assert.ErrorIs(t, err, ErrUnavailable)
}
