package models

import "time"

// Kind names one of the ledger commands the CLI understands.
type Kind string

const (
	KindBalance      Kind = "balance"
	KindAllowance    Kind = "allowance"
	KindSupply       Kind = "supply"
	KindTransfer     Kind = "transfer"
	KindApprove      Kind = "approve"
	KindTransferFrom Kind = "transferfrom"
)

// Operation represents one parsed intent against the ledger. Which of the
// address fields are set depends on Kind: transfers fill From/To, approvals
// fill Owner/Spender, delegated transfers fill Spender/From/To.
type Operation struct {
	ID        string
	Kind      Kind
	From      string
	To        string
	Owner     string
	Spender   string
	Amount    uint64
	CreatedAt time.Time
}
