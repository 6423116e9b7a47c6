package ean

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckDigitEAN13(t *testing.T) {
	cd, err := CheckDigitEAN13("400638133393")
	require.NoError(t, err)
	assert.Equal(t, 1, cd)

	_, err = CheckDigitEAN13("1234")
	assert.ErrorIs(t, err, ErrInvalidLength)
}

func TestCheckDigitEAN8(t *testing.T) {
	cd, err := CheckDigitEAN8("9638507")
	require.NoError(t, err)
	assert.Equal(t, 4, cd)

	_, err = CheckDigitEAN8("96385074")
	assert.ErrorIs(t, err, ErrInvalidLength)
}

func TestIsValid(t *testing.T) {
	assert.True(t, IsValid("4006381333931"))
	assert.False(t, IsValid("4006381333932"))
	assert.True(t, IsValid("96385074"))
	assert.False(t, IsValid("96385075"))
	assert.False(t, IsValid("1234567"))
	assert.False(t, IsValid(""))
}

func TestValidate(t *testing.T) {
	assert.NoError(t, Validate("4006381333931"))
	assert.ErrorIs(t, Validate("400638"), ErrInvalidLength)
	assert.ErrorIs(t, Validate("4006381333932"), ErrInvalidCheckDigit)
}

func TestNormalizeCompletesPartialCodes(t *testing.T) {
	got, err := Normalize("400638133393")
	require.NoError(t, err)
	assert.Equal(t, "4006381333931", got)
	assert.True(t, IsValid(got))

	got, err = Normalize("9638507")
	require.NoError(t, err)
	assert.Equal(t, "96385074", got)
	assert.True(t, IsValid(got))
}

func TestNormalizePassesFullCodesThrough(t *testing.T) {
	// Full-length codes are returned as-is; the check digit is not
	// verified here, that is Validate's job.
	got, err := Normalize("4006381333932")
	require.NoError(t, err)
	assert.Equal(t, "4006381333932", got)
}

func TestNormalizeStripsNoise(t *testing.T) {
	got, err := Normalize(" 4006-381 333931\n")
	require.NoError(t, err)
	assert.Equal(t, "4006381333931", got)
}

func TestNormalizeRejectsBadLengths(t *testing.T) {
	for _, in := range []string{"", "   ", "abc", "123456", "12345678901234"} {
		_, err := Normalize(in)
		assert.ErrorIs(t, err, ErrInvalidLength, "input %q", in)
	}
}

func TestNormalizePreservesLeadingZeros(t *testing.T) {
	cd, err := CheckDigitEAN13("000000000000")
	require.NoError(t, err)
	got, err := Normalize("000000000000")
	require.NoError(t, err)
	assert.Equal(t, fmt.Sprintf("000000000000%d", cd), got)
	assert.Len(t, got, 13)
}

// Every 12-digit base must normalize to a code whose last digit equals
// the computed check digit; spot-check a spread of bases.
func TestNormalizeAgreesWithCheckDigit(t *testing.T) {
	bases := []string{
		"000000000000", "123456789012", "999999999999",
		"400638133393", "590123412345", "978020137962",
	}
	for _, base := range bases {
		cd, err := CheckDigitEAN13(base)
		require.NoError(t, err)
		full, err := Normalize(base)
		require.NoError(t, err)
		assert.Equal(t, base+fmt.Sprint(cd), full)
		assert.True(t, IsValid(full), "normalized %q should be valid", full)
	}
}
