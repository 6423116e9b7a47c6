package bridge

import (
	"bufio"
	"context"
	"log"
	"net/http"
	"strings"
	"sync/atomic"
	"time"
)

// ScanHandler receives one raw scanned code per scan event.
type ScanHandler func(code string)

// ScannerFeed consumes the bridge's /events SSE stream and hands every
// scan to the handler, exactly as if the code had been typed in. The
// feed reconnects on its own; Connected reflects the current link so
// the UI can show a scanner indicator.
type ScannerFeed struct {
	URL     string
	Client  *http.Client
	Handler ScanHandler

	connected atomic.Bool
}

// NewScannerFeed returns a feed for the bridge at baseURL.
func NewScannerFeed(baseURL string, handler ScanHandler) *ScannerFeed {
	return &ScannerFeed{
		// no overall timeout: the stream is long-lived
		URL:     baseURL + "/events",
		Client:  &http.Client{},
		Handler: handler,
	}
}

// Connected reports whether the feed currently holds an open stream.
func (f *ScannerFeed) Connected() bool {
	return f.connected.Load()
}

// Run consumes the stream until ctx is done, reconnecting after errors.
func (f *ScannerFeed) Run(ctx context.Context) {
	for {
		if err := f.consume(ctx); err != nil && ctx.Err() == nil {
			log.Printf("scanner feed: %v (reconnecting)", err)
		}
		f.connected.Store(false)
		select {
		case <-ctx.Done():
			return
		case <-time.After(time.Second):
		}
	}
}

func (f *ScannerFeed) consume(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.URL, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "text/event-stream")

	resp, err := f.Client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return &statusError{resp.StatusCode}
	}
	f.connected.Store(true)

	// Minimal SSE parse: "event:"/"data:" fields, blank line dispatches.
	// Named events (the bridge's "hello") only signal connectivity;
	// unnamed message events carry scanned codes.
	var event, data string
	scanner := bufio.NewScanner(resp.Body)
	for scanner.Scan() {
		line := scanner.Text()
		switch {
		case line == "":
			if data != "" && (event == "" || event == "message") {
				f.Handler(strings.TrimSpace(data))
			}
			event, data = "", ""
		case strings.HasPrefix(line, "event:"):
			event = strings.TrimSpace(strings.TrimPrefix(line, "event:"))
		case strings.HasPrefix(line, "data:"):
			data = strings.TrimSpace(strings.TrimPrefix(line, "data:"))
		}
	}
	return scanner.Err()
}

type statusError struct{ code int }

func (e *statusError) Error() string {
	return "unexpected stream status " + http.StatusText(e.code)
}
