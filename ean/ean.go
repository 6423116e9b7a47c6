// Package ean validates and normalizes EAN-8 and EAN-13 barcodes.
// Codes are handled as digit strings throughout so leading zeros
// survive; nothing here touches the catalog or any I/O.
package ean

import (
	"errors"
	"strings"
)

var (
	// ErrInvalidLength means the input did not reduce to 7, 8, 12 or 13 digits.
	ErrInvalidLength = errors.New("code must have 7/8 or 12/13 digits")
	// ErrInvalidCheckDigit means the code's last digit does not match the
	// checksum over the preceding digits.
	ErrInvalidCheckDigit = errors.New("invalid check digit")
)

// OnlyDigits strips every non-digit character from s.
func OnlyDigits(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// CheckDigitEAN13 computes the check digit for a 12-digit EAN-13 base.
// Even positions (0-indexed) weigh 1, odd positions weigh 3.
func CheckDigitEAN13(base12 string) (int, error) {
	s := OnlyDigits(base12)
	if len(s) != 12 {
		return 0, ErrInvalidLength
	}
	sum := 0
	for i, r := range s {
		d := int(r - '0')
		if i%2 == 0 {
			sum += d
		} else {
			sum += 3 * d
		}
	}
	return (10 - sum%10) % 10, nil
}

// CheckDigitEAN8 computes the check digit for a 7-digit EAN-8 base.
// Even positions weigh 3, odd positions weigh 1.
func CheckDigitEAN8(base7 string) (int, error) {
	s := OnlyDigits(base7)
	if len(s) != 7 {
		return 0, ErrInvalidLength
	}
	sum := 0
	for i, r := range s {
		d := int(r - '0')
		if i%2 == 0 {
			sum += 3 * d
		} else {
			sum += d
		}
	}
	return (10 - sum%10) % 10, nil
}

// IsValid reports whether code is a checksum-correct EAN-8 or EAN-13.
func IsValid(code string) bool {
	s := OnlyDigits(code)
	var cd int
	var err error
	switch len(s) {
	case 13:
		cd, err = CheckDigitEAN13(s[:12])
	case 8:
		cd, err = CheckDigitEAN8(s[:7])
	default:
		return false
	}
	if err != nil {
		return false
	}
	return cd == int(s[len(s)-1]-'0')
}

// Validate returns nil for a checksum-correct full code, ErrInvalidLength
// for a wrong-sized one and ErrInvalidCheckDigit otherwise.
func Validate(code string) error {
	s := OnlyDigits(code)
	if len(s) != 8 && len(s) != 13 {
		return ErrInvalidLength
	}
	if !IsValid(s) {
		return ErrInvalidCheckDigit
	}
	return nil
}

// Normalize strips non-digits and completes partial codes: 12 digits
// gain an EAN-13 check digit, 7 digits an EAN-8 one. Full 8/13-digit
// inputs pass through unchecked; validity is a separate step.
func Normalize(raw string) (string, error) {
	s := OnlyDigits(raw)
	switch len(s) {
	case 13, 8:
		return s, nil
	case 12:
		cd, err := CheckDigitEAN13(s)
		if err != nil {
			return "", err
		}
		return s + string(rune('0'+cd)), nil
	case 7:
		cd, err := CheckDigitEAN8(s)
		if err != nil {
			return "", err
		}
		return s + string(rune('0'+cd)), nil
	default:
		return "", ErrInvalidLength
	}
}
