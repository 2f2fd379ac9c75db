package script

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sheikh-saqib/token-ledger-system/internal/ledger"
	"github.com/sheikh-saqib/token-ledger-system/internal/models"
)

func TestSkippable(t *testing.T) {
	require.True(t, Skippable(""))
	require.True(t, Skippable("   "))
	require.True(t, Skippable("# a comment"))
	require.True(t, Skippable("  # indented comment"))
	require.False(t, Skippable("supply"))
}

func TestParse(t *testing.T) {
	tests := []struct {
		line string
		want models.Operation
	}{
		{"balance alice", models.Operation{Kind: models.KindBalance, Owner: "alice"}},
		{"allowance alice bob", models.Operation{Kind: models.KindAllowance, Owner: "alice", Spender: "bob"}},
		{"supply", models.Operation{Kind: models.KindSupply}},
		{"transfer alice bob 100", models.Operation{Kind: models.KindTransfer, From: "alice", To: "bob", Amount: 100}},
		{"approve alice bob 50", models.Operation{Kind: models.KindApprove, Owner: "alice", Spender: "bob", Amount: 50}},
		{"transferfrom bob alice charlie 25", models.Operation{Kind: models.KindTransferFrom, Spender: "bob", From: "alice", To: "charlie", Amount: 25}},
		{"TRANSFER alice bob 1", models.Operation{Kind: models.KindTransfer, From: "alice", To: "bob", Amount: 1}},
		{`balance "spaced name"`, models.Operation{Kind: models.KindBalance, Owner: "spaced name"}},
	}
	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			op, err := Parse(tt.line)
			require.NoError(t, err)
			require.NotEmpty(t, op.ID)
			require.False(t, op.CreatedAt.IsZero())

			// Compare everything except the generated fields.
			op.ID = ""
			op.CreatedAt = tt.want.CreatedAt
			require.Equal(t, tt.want, op)
		})
	}
}

func TestParseErrors(t *testing.T) {
	lines := []string{
		"",
		"mint alice 100",
		"balance",
		"balance alice bob",
		"transfer alice bob",
		"transfer alice bob ten",
		"transfer alice bob -5",
		"transfer alice bob 18446744073709551616", // max uint64 + 1
		"approve alice bob 1.5",
		"transferfrom bob alice charlie",
	}
	for _, line := range lines {
		t.Run(line, func(t *testing.T) {
			_, err := Parse(line)
			require.Error(t, err)
		})
	}
}

func TestParseGeneratesUniqueIDs(t *testing.T) {
	first, err := Parse("supply")
	require.NoError(t, err)
	second, err := Parse("supply")
	require.NoError(t, err)
	require.NotEqual(t, first.ID, second.ID)
}

func TestRunner(t *testing.T) {
	r := NewRunner(ledger.New("alice", 1000))

	lines := []string{
		"transfer alice bob 100",
		"approve alice bob 100",
		"transferfrom bob alice charlie 50",
	}
	for _, line := range lines {
		res, err := r.Exec(line)
		require.NoError(t, err)
		require.NoError(t, res.Err)
	}

	res, err := r.Exec("balance alice")
	require.NoError(t, err)
	require.Equal(t, "alice: 850", res.Output)

	res, err = r.Exec("allowance alice bob")
	require.NoError(t, err)
	require.Equal(t, "alice -> bob: 50", res.Output)

	res, err = r.Exec("supply")
	require.NoError(t, err)
	require.Equal(t, "total supply: 1000", res.Output)
}

func TestRunnerLedgerErrors(t *testing.T) {
	r := NewRunner(ledger.New("alice", 100))

	res, err := r.Exec("transfer alice bob 200")
	require.NoError(t, err)

	var insufficient ledger.InsufficientBalanceError
	require.ErrorAs(t, res.Err, &insufficient)
	require.Equal(t, ledger.Balance(200), insufficient.Required)
	require.Equal(t, ledger.Balance(100), insufficient.Available)

	// A failing command leaves the ledger usable for the next one.
	res, err = r.Exec("transfer alice bob 40")
	require.NoError(t, err)
	require.NoError(t, res.Err)

	res, err = r.Exec("balance bob")
	require.NoError(t, err)
	require.Equal(t, "bob: 40", res.Output)
}

func TestRunnerParseErrorNeverReachesLedger(t *testing.T) {
	r := NewRunner(ledger.New("alice", 100))

	_, err := r.Exec("transfer alice bob ten")
	require.Error(t, err)

	res, execErr := r.Exec("balance alice")
	require.NoError(t, execErr)
	require.Equal(t, "alice: 100", res.Output)
}
