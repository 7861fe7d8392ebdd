package instrument

import "errors"

var (
	// ErrInsufficientFunds occurs when a balance cannot cover the requested
	// amount. The source balance is left unchanged.
	ErrInsufficientFunds = errors.New("insufficient funds")

	// ErrIncorrectPassword indicates a failed authentication gate on a
	// password-protected instrument.
	ErrIncorrectPassword = errors.New("incorrect password")

	// ErrInvalidAccountType indicates an account selector outside the set the
	// instrument supports.
	ErrInvalidAccountType = errors.New("invalid account type")

	// ErrNonPositiveAmount indicates an amount that must be strictly positive
	// was zero or negative.
	ErrNonPositiveAmount = errors.New("amount must be positive")
)
