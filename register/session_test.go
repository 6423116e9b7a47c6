package register

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"go-register/catalog"
	"go-register/models"
)

// Shared test fixtures. Codes are checksum-valid:
// 96385074 (EAN-8), 12345670 (EAN-8), 4006381333931 (EAN-13).
const (
	codeJuice = "96385074"
	codeCocoa = "12345670"
	codePen   = "4006381333931"
)

func testCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	base := map[string]models.Product{
		codeJuice: {Code: codeJuice, Name: "Saft", PriceCents: 50},
		codeCocoa: {Code: codeCocoa, Name: "Kakao", PriceCents: 150},
		codePen:   {Code: codePen, Name: "Stift", PriceCents: 125},
	}
	c, err := catalog.New(context.Background(), base, nil)
	require.NoError(t, err)
	return c
}

type fakePrinter struct {
	mu     sync.Mutex
	fail   bool
	block  chan struct{}
	prints []models.ReceiptDocument
}

func (p *fakePrinter) Print(_ context.Context, doc models.ReceiptDocument) error {
	if p.block != nil {
		<-p.block
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.fail {
		return errors.New("bridge offline")
	}
	p.prints = append(p.prints, doc)
	return nil
}

func (p *fakePrinter) count() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.prints)
}

var (
	alwaysYes = ConfirmerFunc(func(string) bool { return true })
	alwaysNo  = ConfirmerFunc(func(string) bool { return false })
)

func testSession(t *testing.T, opts ...Option) (*Session, *fakePrinter) {
	t.Helper()
	p := &fakePrinter{}
	fixed := func() time.Time { return time.Date(2026, 8, 29, 10, 30, 0, 0, time.UTC) }
	all := append([]Option{WithClock(fixed), WithConfirmer(alwaysYes)}, opts...)
	s := NewSession(testCatalog(t), p, models.DefaultSettings(), all...)
	return s, p
}

// sessionSounder mirrors the production wiring: each cue reads the
// session's settings to decide whether sound is on.
type sessionSounder struct {
	session *Session
	mu      sync.Mutex
	cues    []string
}

func (ss *sessionSounder) cue(name string) {
	if !ss.session.Settings().Sound {
		return
	}
	ss.mu.Lock()
	defer ss.mu.Unlock()
	ss.cues = append(ss.cues, name)
}

func (ss *sessionSounder) ScanOK()  { ss.cue("scan-ok") }
func (ss *sessionSounder) Error()   { ss.cue("error") }
func (ss *sessionSounder) PrintOK() { ss.cue("print-ok") }

func TestSounderMayReadSessionState(t *testing.T) {
	snd := &sessionSounder{}
	s, _ := testSession(t, WithSounder(snd))
	snd.session = s

	var scanErr, payErr error
	done := make(chan struct{})
	go func() {
		defer close(done)
		_, scanErr = s.AddByCode(codeJuice)
		payErr = s.PayAndPrint(context.Background())
	}()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("session locked up while emitting cues")
	}
	require.NoError(t, scanErr)
	require.ErrorIs(t, payErr, ErrInsufficientPayment)

	snd.mu.Lock()
	defer snd.mu.Unlock()
	require.Equal(t, []string{"scan-ok", "error"}, snd.cues)
}
