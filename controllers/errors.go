package controllers

import (
	"encoding/json"
	"errors"
	"net/http"

	"go-register/catalog"
	"go-register/ean"
	"go-register/register"
)

// writeError maps domain errors to HTTP statuses and a JSON body the
// operator UI can show directly. Unknown errors come back as 500.
func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, ean.ErrInvalidLength),
		errors.Is(err, ean.ErrInvalidCheckDigit),
		errors.Is(err, catalog.ErrInvalidCode),
		errors.Is(err, catalog.ErrEmptyName),
		errors.Is(err, catalog.ErrInvalidPrice),
		errors.Is(err, register.ErrEmptyCart),
		errors.Is(err, register.ErrInsufficientPayment):
		status = http.StatusBadRequest
	case errors.Is(err, catalog.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, catalog.ErrNotAnOverride),
		errors.Is(err, register.ErrConfirmationRequired),
		errors.Is(err, register.ErrPrintInProgress):
		status = http.StatusConflict
	case errors.Is(err, register.ErrPrinterUnavailable):
		status = http.StatusBadGateway
	case errors.Is(err, catalog.ErrUnavailable):
		status = http.StatusServiceUnavailable
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": err.Error()})
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v)
}
