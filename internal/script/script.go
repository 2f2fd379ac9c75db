package script

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	shellwords "github.com/mattn/go-shellwords"

	"github.com/sheikh-saqib/token-ledger-system/internal/interfaces"
	"github.com/sheikh-saqib/token-ledger-system/internal/ledger"
	"github.com/sheikh-saqib/token-ledger-system/internal/models"
)

// Skippable reports whether a line carries no command at all: blank lines
// and '#' comments.
func Skippable(line string) bool {
	trimmed := strings.TrimSpace(line)
	return trimmed == "" || strings.HasPrefix(trimmed, "#")
}

// Parse turns one command line into an Operation. Each operation is stamped
// with a fresh ID and timestamp so a caller can trace it through its logs.
//
// The command language is one operation per line:
//
//	balance <addr>
//	allowance <owner> <spender>
//	supply
//	transfer <from> <to> <amount>
//	approve <owner> <spender> <amount>
//	transferfrom <spender> <from> <to> <amount>
func Parse(line string) (models.Operation, error) {
	words, err := shellwords.Parse(line)
	if err != nil {
		return models.Operation{}, fmt.Errorf("parse line: %w", err)
	}
	if len(words) == 0 {
		return models.Operation{}, fmt.Errorf("empty command")
	}

	op := models.Operation{
		ID:        uuid.New().String(),
		Kind:      models.Kind(strings.ToLower(words[0])),
		CreatedAt: time.Now(),
	}
	args := words[1:]

	switch op.Kind {
	case models.KindBalance:
		if err := wantArgs(op.Kind, args, 1); err != nil {
			return models.Operation{}, err
		}
		op.Owner = args[0]
	case models.KindAllowance:
		if err := wantArgs(op.Kind, args, 2); err != nil {
			return models.Operation{}, err
		}
		op.Owner, op.Spender = args[0], args[1]
	case models.KindSupply:
		if err := wantArgs(op.Kind, args, 0); err != nil {
			return models.Operation{}, err
		}
	case models.KindTransfer:
		if err := wantArgs(op.Kind, args, 3); err != nil {
			return models.Operation{}, err
		}
		op.From, op.To = args[0], args[1]
		if op.Amount, err = parseAmount(args[2]); err != nil {
			return models.Operation{}, err
		}
	case models.KindApprove:
		if err := wantArgs(op.Kind, args, 3); err != nil {
			return models.Operation{}, err
		}
		op.Owner, op.Spender = args[0], args[1]
		if op.Amount, err = parseAmount(args[2]); err != nil {
			return models.Operation{}, err
		}
	case models.KindTransferFrom:
		if err := wantArgs(op.Kind, args, 4); err != nil {
			return models.Operation{}, err
		}
		op.Spender, op.From, op.To = args[0], args[1], args[2]
		if op.Amount, err = parseAmount(args[3]); err != nil {
			return models.Operation{}, err
		}
	default:
		return models.Operation{}, fmt.Errorf("unknown command %q", words[0])
	}
	return op, nil
}

func wantArgs(kind models.Kind, args []string, n int) error {
	if len(args) != n {
		return fmt.Errorf("%s: expected %d argument(s), got %d", kind, n, len(args))
	}
	return nil
}

func parseAmount(s string) (uint64, error) {
	amount, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid amount %q: must be a base-10 unsigned integer", s)
	}
	return amount, nil
}

// Result is the outcome of applying one operation.
type Result struct {
	Op     models.Operation
	Output string // set for queries
	Err    error  // ledger error, nil on success
}

// Runner applies parsed operations to a ledger.
type Runner struct {
	ledger interfaces.TokenLedger
}

func NewRunner(l interfaces.TokenLedger) *Runner {
	return &Runner{ledger: l}
}

// Exec parses and applies a single line. A parse failure is returned as the
// second value and never reaches the ledger; a ledger failure is carried in
// Result.Err and leaves the ledger untouched and usable.
func (r *Runner) Exec(line string) (Result, error) {
	op, err := Parse(line)
	if err != nil {
		return Result{}, err
	}
	return r.Apply(op), nil
}

// Apply runs one operation against the ledger.
func (r *Runner) Apply(op models.Operation) Result {
	res := Result{Op: op}
	switch op.Kind {
	case models.KindBalance:
		res.Output = fmt.Sprintf("%s: %d", op.Owner, r.ledger.BalanceOf(ledger.Address(op.Owner)))
	case models.KindAllowance:
		res.Output = fmt.Sprintf("%s -> %s: %d",
			op.Owner, op.Spender, r.ledger.Allowance(ledger.Address(op.Owner), ledger.Address(op.Spender)))
	case models.KindSupply:
		res.Output = fmt.Sprintf("total supply: %d", r.ledger.TotalSupply())
	case models.KindTransfer:
		res.Err = r.ledger.Transfer(ledger.Address(op.From), ledger.Address(op.To), ledger.Balance(op.Amount))
	case models.KindApprove:
		res.Err = r.ledger.Approve(ledger.Address(op.Owner), ledger.Address(op.Spender), ledger.Balance(op.Amount))
	case models.KindTransferFrom:
		res.Err = r.ledger.TransferFrom(
			ledger.Address(op.Spender), ledger.Address(op.From), ledger.Address(op.To), ledger.Balance(op.Amount))
	}
	return res
}
