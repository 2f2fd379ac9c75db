package interfaces

import "github.com/sheikh-saqib/token-ledger-system/internal/ledger"

// TokenLedger is the contract callers outside the core program against: the
// query and mutation operations of a single-token ledger. Implementations
// return the ledger package's error values unchanged so callers can match
// them with errors.Is / errors.As.
type TokenLedger interface {
	TotalSupply() ledger.Balance
	BalanceOf(addr ledger.Address) ledger.Balance
	Allowance(owner, spender ledger.Address) ledger.Balance
	Transfer(from, to ledger.Address, amount ledger.Balance) error
	Approve(owner, spender ledger.Address, amount ledger.Balance) error
	TransferFrom(spender, from, to ledger.Address, amount ledger.Balance) error
}

// Compile-time check: ensure the core ledger satisfies TokenLedger
var _ TokenLedger = (*ledger.Ledger)(nil)
