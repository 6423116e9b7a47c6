package bridge

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-register/models"
)

func TestPrintClientSendsText(t *testing.T) {
	var got printRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/print", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		json.NewEncoder(w).Encode(printResponse{OK: true, Info: "/dev/ttyUSB0"})
	}))
	defer srv.Close()

	c := NewPrintClient(srv.URL)
	doc := models.ReceiptDocument{Lines: []string{"KINDERLADEN", "SUMME:   1,00 €"}}
	require.NoError(t, c.Print(context.Background(), doc))
	assert.Equal(t, "KINDERLADEN\nSUMME:   1,00 €", got.Text)
}

func TestPrintClientReportsBridgeFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(printResponse{OK: false, Error: "printer offline"})
	}))
	defer srv.Close()

	err := NewPrintClient(srv.URL).Print(context.Background(), models.ReceiptDocument{Lines: []string{"x"}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "printer offline")
}

func TestPrintClientReportsOKFalse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(printResponse{OK: false, Error: "empty text"})
	}))
	defer srv.Close()

	err := NewPrintClient(srv.URL).Print(context.Background(), models.ReceiptDocument{})
	assert.Error(t, err)
}

func TestPrintClientUnreachable(t *testing.T) {
	c := NewPrintClient("http://127.0.0.1:1")
	err := c.Print(context.Background(), models.ReceiptDocument{Lines: []string{"x"}})
	assert.Error(t, err)
}
