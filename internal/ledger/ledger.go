package ledger

import "math"

// Address identifies an account. It is opaque: the ledger only ever compares
// addresses for equality and uses them as map keys.
type Address string

// Balance is a non-negative token quantity. All arithmetic on balances is
// checked; an addition that would wrap fails with ErrBalanceOverflow instead.
type Balance uint64

const maxBalance = Balance(math.MaxUint64)

// allowanceKey is the directional (owner, spender) pair an allowance is
// recorded under. (a, b) and (b, a) are independent entries.
type allowanceKey struct {
	Owner   Address
	Spender Address
}

// Ledger is the state machine for a single fungible token: per-address
// balances, delegated spending allowances and a total supply fixed at
// construction time. The sum of all balances equals the total supply at
// every observable point; transfers move value between entries but never
// create or destroy it.
//
// A Ledger assumes a single writer. It holds no locks; callers that share
// one across goroutines must serialize every mutating call themselves.
type Ledger struct {
	balances    map[Address]Balance
	allowances  map[allowanceKey]Balance
	totalSupply Balance
}

// New creates a ledger whose entire supply is credited to creator. A zero
// initial supply is legal.
func New(creator Address, initialSupply Balance) *Ledger {
	return &Ledger{
		balances:    map[Address]Balance{creator: initialSupply},
		allowances:  make(map[allowanceKey]Balance),
		totalSupply: initialSupply,
	}
}

// TotalSupply returns the supply fixed at construction.
func (l *Ledger) TotalSupply() Balance {
	return l.totalSupply
}

// BalanceOf returns the balance held by addr. An address that was never
// credited reads as zero.
func (l *Ledger) BalanceOf(addr Address) Balance {
	return l.balances[addr]
}

// Allowance returns the amount spender may still move out of owner's
// balance. A pair that was never approved reads as zero.
func (l *Ledger) Allowance(owner, spender Address) Balance {
	return l.allowances[allowanceKey{Owner: owner, Spender: spender}]
}

// Transfer moves amount from one address to another. Validation runs in a
// fixed order and the first failing check wins; on any error the ledger is
// left exactly as it was before the call.
func (l *Ledger) Transfer(from, to Address, amount Balance) error {
	if from == to {
		return ErrSelfTransfer
	}
	if amount == 0 {
		return ErrZeroAmount
	}

	fromBal := l.balances[from]
	if fromBal < amount {
		return InsufficientBalanceError{Required: amount, Available: fromBal}
	}

	toBal := l.balances[to]
	if amount > maxBalance-toBal {
		return ErrBalanceOverflow
	}

	l.balances[from] = fromBal - amount
	l.balances[to] = toBal + amount
	return nil
}

// Approve sets the allowance spender may move on owner's behalf. It always
// overwrites the previous value rather than adding to it; a zero amount is
// legal and reads back the same as an allowance that was never granted.
func (l *Ledger) Approve(owner, spender Address, amount Balance) error {
	if owner == spender {
		return ErrSelfApproval
	}

	l.allowances[allowanceKey{Owner: owner, Spender: spender}] = amount
	return nil
}

// TransferFrom moves amount from one address to another on behalf of
// spender, bounded by the allowance from granted spender. The allowance is
// checked before the balance; when both are short the allowance error is
// the one reported. On success the (from, spender) allowance shrinks by
// exactly amount.
func (l *Ledger) TransferFrom(spender, from, to Address, amount Balance) error {
	if from == to {
		return ErrSelfTransfer
	}
	if amount == 0 {
		return ErrZeroAmount
	}

	key := allowanceKey{Owner: from, Spender: spender}
	remaining := l.allowances[key]
	if remaining < amount {
		return InsufficientAllowanceError{Required: amount, Available: remaining}
	}

	fromBal := l.balances[from]
	if fromBal < amount {
		return InsufficientBalanceError{Required: amount, Available: fromBal}
	}

	toBal := l.balances[to]
	if amount > maxBalance-toBal {
		return ErrBalanceOverflow
	}

	l.balances[from] = fromBal - amount
	l.balances[to] = toBal + amount
	l.allowances[key] = remaining - amount
	return nil
}
