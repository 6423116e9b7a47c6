package register

import "errors"

// Domain errors for the register session. Every failed operation is a
// no-op on the cart and tender ledgers; controllers turn these into
// operator-facing messages.
var (
	ErrEmptyCart            = errors.New("cart is empty")
	ErrInsufficientPayment  = errors.New("given amount is less than the total")
	ErrPrinterUnavailable   = errors.New("printer unavailable")
	ErrPrintInProgress      = errors.New("a print is already in progress")
	ErrConfirmationRequired = errors.New("large denomination requires confirmation")
)
