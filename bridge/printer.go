// Package bridge talks to the hardware bridge that fronts the serial
// barcode scanner and the ESC/POS receipt printer: receipts go out as
// a POST to /print, scans come in over the bridge's /events SSE stream.
package bridge

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"go-register/models"
)

// PrintClient sends receipt text to the bridge's /print endpoint. It
// performs no retries; the register reports the failure and the cashier
// tries again.
type PrintClient struct {
	BaseURL string
	Client  *http.Client
}

// NewPrintClient returns a print client for the bridge at baseURL.
func NewPrintClient(baseURL string) *PrintClient {
	return &PrintClient{
		BaseURL: baseURL,
		Client:  &http.Client{Timeout: 10 * time.Second},
	}
}

type printRequest struct {
	Text string `json:"text"`
}

type printResponse struct {
	OK    bool   `json:"ok"`
	Info  string `json:"info,omitempty"`
	Error string `json:"error,omitempty"`
}

// Print posts the receipt and succeeds only on a 200 with {"ok": true}.
func (c *PrintClient) Print(ctx context.Context, doc models.ReceiptDocument) error {
	body, err := json.Marshal(printRequest{Text: doc.Text()})
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+"/print", bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.Client.Do(req)
	if err != nil {
		return fmt.Errorf("print request: %w", err)
	}
	defer resp.Body.Close()

	var pr printResponse
	if err := json.NewDecoder(resp.Body).Decode(&pr); err != nil {
		return fmt.Errorf("print response: %w", err)
	}
	if resp.StatusCode != http.StatusOK || !pr.OK {
		msg := pr.Error
		if msg == "" {
			msg = pr.Info
		}
		return fmt.Errorf("bridge refused print (status %d): %s", resp.StatusCode, msg)
	}
	return nil
}
