package bridge

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScannerFeedDeliversScans(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/events", r.URL.Path)
		w.Header().Set("Content-Type", "text/event-stream")
		fl := w.(http.Flusher)

		// same shape the hardware bridge emits
		fmt.Fprint(w, "event: hello\ndata: ready\n\n")
		fl.Flush()
		fmt.Fprint(w, "data: 96385074\n\n")
		fl.Flush()
		fmt.Fprint(w, "data: 4006381333931\n\n")
		fl.Flush()
		<-r.Context().Done()
	}))
	defer srv.Close()

	var mu sync.Mutex
	var codes []string
	feed := NewScannerFeed(srv.URL, func(code string) {
		mu.Lock()
		defer mu.Unlock()
		codes = append(codes, code)
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go feed.Run(ctx)

	require.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return len(codes) == 2
	}, 2*time.Second, 10*time.Millisecond)

	mu.Lock()
	assert.Equal(t, []string{"96385074", "4006381333931"}, codes)
	mu.Unlock()

	// the hello event is connectivity only, never a scan
	assert.True(t, feed.Connected())
}

func TestScannerFeedDisconnected(t *testing.T) {
	feed := NewScannerFeed("http://127.0.0.1:1", func(string) {})
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()
	feed.Run(ctx)
	assert.False(t, feed.Connected())
}
