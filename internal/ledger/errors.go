package ledger

import (
	"errors"
	"fmt"
)

var (
	ErrSelfTransfer    = errors.New("transfer from an address to itself")
	ErrZeroAmount      = errors.New("amount must be greater than zero")
	ErrBalanceOverflow = errors.New("recipient balance would overflow")
	ErrSelfApproval    = errors.New("approval from an address to itself")
)

// InsufficientBalanceError reports that a sender holds less than the
// requested transfer amount. Match it with errors.As.
type InsufficientBalanceError struct {
	Required  Balance
	Available Balance
}

func (e InsufficientBalanceError) Error() string {
	return fmt.Sprintf("insufficient balance: required %d, available %d", e.Required, e.Available)
}

// InsufficientAllowanceError reports that a spender's remaining allowance
// is below the requested delegated transfer amount.
type InsufficientAllowanceError struct {
	Required  Balance
	Available Balance
}

func (e InsufficientAllowanceError) Error() string {
	return fmt.Sprintf("insufficient allowance: required %d, available %d", e.Required, e.Available)
}
