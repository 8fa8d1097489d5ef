package main

import (
	"bytes"
	"context"
	"flag"
	"path/filepath"
	"testing"
	"time"

	"github.com/SscSPs/expense_manager_backend/internal/core/domain"
	"github.com/SscSPs/expense_manager_backend/internal/dto"
	"github.com/SscSPs/expense_manager_backend/internal/platform/config"
	"github.com/google/subcommands"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const owner = "owner-1"

func newTestEnv(t *testing.T) (*environment, *bytes.Buffer) {
	t.Helper()
	var out bytes.Buffer
	return &environment{
		cfg: &config.Config{
			StoreBackend:     config.BackendSQLite,
			SQLitePath:       filepath.Join(t.TempDir(), "expenses.db"),
			BalanceCacheSize: 16,
			BalanceCacheTTL:  time.Minute,
			DisplayCurrency:  "USD",
			DefaultPageLimit: 10,
		},
		out:   &out,
		style: "notty",
	}, &out
}

func execute(ctx context.Context, cmd subcommands.Command, args ...string) subcommands.ExitStatus {
	f := flag.NewFlagSet(cmd.Name(), flag.ContinueOnError)
	cmd.SetFlags(f)
	if err := f.Parse(args); err != nil {
		return subcommands.ExitUsageError
	}
	return cmd.Execute(ctx, f)
}

func TestBalancesAndAudit(t *testing.T) {
	ctx := context.Background()
	env, out := newTestEnv(t)

	require.Equal(t, subcommands.ExitSuccess, execute(ctx, &migrateCmd{env: env}))
	assert.Contains(t, out.String(), "migrations applied")

	svc, closeStore, err := env.services(ctx)
	require.NoError(t, err)
	defer closeStore()

	for _, name := range []string{"Checking", "Wallet"} {
		_, err := svc.Account.CreateAccount(ctx, owner, dto.CreateAccountRequest{Name: name, Type: "personal"})
		require.NoError(t, err)
	}
	credit, err := svc.Transaction.CreateTransaction(ctx, owner, dto.CreateTransactionRequest{
		Date: "2024-01-01", Amount: "100", Type: "credit", Account: "Checking",
	})
	require.NoError(t, err)
	wallet := "Wallet"
	_, err = svc.Transaction.CreateTransaction(ctx, owner, dto.CreateTransactionRequest{
		Date: "2024-01-02", Amount: "30", Type: "transferred", Account: "Checking", ToAccount: &wallet,
	})
	require.NoError(t, err)

	out.Reset()
	require.Equal(t, subcommands.ExitSuccess, execute(ctx, &balancesCmd{env: env}, "-owner", owner))
	assert.Contains(t, out.String(), "Checking")
	assert.Contains(t, out.String(), "70.00")
	assert.Contains(t, out.String(), "$30.00")

	out.Reset()
	require.Equal(t, subcommands.ExitSuccess, execute(ctx, &auditCmd{env: env}, "-owner", owner))
	assert.Contains(t, out.String(), "matches")

	require.NoError(t, svc.Transaction.DeleteTransaction(ctx, owner, credit.TransactionID))

	out.Reset()
	assert.Equal(t, subcommands.ExitFailure, execute(ctx, &auditCmd{env: env}, "-owner", owner))
	assert.Contains(t, out.String(), "stale")
	assert.Contains(t, out.String(), "-30.00")
}

func TestOwnerRequired(t *testing.T) {
	env, _ := newTestEnv(t)
	ctx := context.Background()
	assert.Equal(t, subcommands.ExitUsageError, execute(ctx, &balancesCmd{env: env}))
	assert.Equal(t, subcommands.ExitUsageError, execute(ctx, &auditCmd{env: env}))
}

func TestMigrateVersion(t *testing.T) {
	ctx := context.Background()
	env, out := newTestEnv(t)

	require.Equal(t, subcommands.ExitSuccess, execute(ctx, &migrateCmd{env: env}, "-version"))
	assert.Contains(t, out.String(), "no migrations applied")

	require.Equal(t, subcommands.ExitSuccess, execute(ctx, &migrateCmd{env: env}))
	out.Reset()
	require.Equal(t, subcommands.ExitSuccess, execute(ctx, &migrateCmd{env: env}, "-version"))
	assert.Contains(t, out.String(), "version 1 (dirty: false)")
}

func TestBalancesMarkdown(t *testing.T) {
	md := balancesMarkdown([]domain.AccountBalance{
		{Account: domain.Account{Name: "Cash|Box", Kind: "cash"}, Balance: decimal.RequireFromString("-5")},
	}, "USD")

	assert.Contains(t, md, `| Cash\|Box | cash | -5.00 |`)
	assert.Contains(t, balancesMarkdown(nil, "USD"), "No accounts.")
}

func TestAuditMarkdown_ResolvesNames(t *testing.T) {
	md := auditMarkdown([]domain.SnapshotDrift{{
		TransactionID: "txn-2",
		AccountID:     "acc-1",
		Stored:        decimal.RequireFromString("70"),
		Recomputed:    decimal.RequireFromString("-30"),
	}}, []domain.Account{{AccountID: "acc-1", Name: "Checking"}})

	assert.Contains(t, md, "| txn-2 | Checking | 70.00 | -30.00 |")
}
