package controllers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"go-register/register"
)

// RegisterController handles the cashier-facing requests: scanning,
// cart mutations, cash taps and payment finalization.
type RegisterController struct {
	Session *register.Session
	Scanner interface{ Connected() bool }
}

// NewRegisterController creates a new RegisterController
func NewRegisterController(session *register.Session, scanner interface{ Connected() bool }) *RegisterController {
	return &RegisterController{
		Session: session,
		Scanner: scanner,
	}
}

// GetState returns the full register state for the operator UI
func (rc *RegisterController) GetState(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, rc.stateResponse())
}

type stateResponse struct {
	register.State
	ScannerConnected bool    `json:"scanner_connected"`
	Coins            []int64 `json:"coins"`
	Notes            []int64 `json:"notes"`
}

func (rc *RegisterController) stateResponse() stateResponse {
	coins, notes := register.Denominations(rc.Session.Settings())
	connected := false
	if rc.Scanner != nil {
		connected = rc.Scanner.Connected()
	}
	return stateResponse{
		State:            rc.Session.Snapshot(),
		ScannerConnected: connected,
		Coins:            coins,
		Notes:            notes,
	}
}

// AddByCode adds a scanned or typed code to the cart
func (rc *RegisterController) AddByCode(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Code string `json:"code"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid input", http.StatusBadRequest)
		return
	}
	line, err := rc.Session.AddByCode(req.Code)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, map[string]interface{}{
		"line":  line,
		"state": rc.stateResponse(),
	})
}

// RemoveOne decrements the line at the given index
func (rc *RegisterController) RemoveOne(w http.ResponseWriter, r *http.Request) {
	params := mux.Vars(r)
	index, err := strconv.Atoi(params["index"])
	if err != nil {
		http.Error(w, "Invalid line index", http.StatusBadRequest)
		return
	}
	rc.Session.RemoveOne(index)
	writeJSON(w, rc.stateResponse())
}

// RemoveLast removes one unit of the most recently added line (storno)
func (rc *RegisterController) RemoveLast(w http.ResponseWriter, r *http.Request) {
	rc.Session.RemoveLastAdded()
	writeJSON(w, rc.stateResponse())
}

// ClearCart empties the cart and the given amount, like sweeping
// everything off the counter
func (rc *RegisterController) ClearCart(w http.ResponseWriter, r *http.Request) {
	rc.Session.ClearCart()
	rc.Session.ResetGiven()
	writeJSON(w, rc.stateResponse())
}

// NewTransaction starts a fresh receipt
func (rc *RegisterController) NewTransaction(w http.ResponseWriter, r *http.Request) {
	rc.Session.NewTransaction()
	writeJSON(w, rc.stateResponse())
}

// Tap records a cash denomination. Large denominations come back as a
// 409 until the UI resubmits with confirmed=true.
func (rc *RegisterController) Tap(w http.ResponseWriter, r *http.Request) {
	var req struct {
		DenominationCents int64 `json:"denomination_cents"`
		Confirmed         bool  `json:"confirmed"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid input", http.StatusBadRequest)
		return
	}

	var err error
	if req.Confirmed {
		err = rc.Session.TapConfirmed(req.DenominationCents)
	} else {
		err = rc.Session.Tap(req.DenominationCents)
	}
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, rc.stateResponse())
}

// UndoTap reverts the most recent cash tap
func (rc *RegisterController) UndoTap(w http.ResponseWriter, r *http.Request) {
	rc.Session.UndoLast()
	writeJSON(w, rc.stateResponse())
}

// ResetGiven zeroes the given amount
func (rc *RegisterController) ResetGiven(w http.ResponseWriter, r *http.Request) {
	rc.Session.ResetGiven()
	writeJSON(w, rc.stateResponse())
}

// SetExact sets the given amount to exactly the total
func (rc *RegisterController) SetExact(w http.ResponseWriter, r *http.Request) {
	rc.Session.SetExact()
	writeJSON(w, rc.stateResponse())
}

// Print prints the current receipt without finishing the transaction
func (rc *RegisterController) Print(w http.ResponseWriter, r *http.Request) {
	if err := rc.Session.PrintOnly(r.Context()); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, "Receipt printed")
}

// Pay finalizes the transaction: print the receipt, then start a new one
func (rc *RegisterController) Pay(w http.ResponseWriter, r *http.Request) {
	if err := rc.Session.PayAndPrint(r.Context()); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, map[string]interface{}{
		"message": "Paid, receipt printed",
		"state":   rc.stateResponse(),
	})
}
