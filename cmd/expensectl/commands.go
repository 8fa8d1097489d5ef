package main

import (
	"context"
	"flag"
	"fmt"

	"github.com/SscSPs/expense_manager_backend/internal/repositories/database"
	"github.com/google/subcommands"
)

type migrateCmd struct {
	env     *environment
	down    bool
	version bool
}

func (*migrateCmd) Name() string     { return "migrate" }
func (*migrateCmd) Synopsis() string { return "apply database migrations for the configured backend" }
func (*migrateCmd) Usage() string {
	return `expensectl migrate [-down | -version]

  Applies every pending migration to the store selected by STORE_BACKEND.
  -down reverts the most recent migration, -version prints the current one.
`
}

func (c *migrateCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.down, "down", false, "Revert the most recent migration.")
	f.BoolVar(&c.version, "version", false, "Print the current schema version and exit.")
}

func (c *migrateCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfg, err := c.env.config()
	if err != nil {
		return fail(err)
	}
	m, err := database.NewMigrator(cfg)
	if err != nil {
		return fail(err)
	}
	defer m.Close()

	switch {
	case c.version:
		version, dirty, ok, err := m.Version()
		if err != nil {
			return fail(err)
		}
		if !ok {
			fmt.Fprintln(c.env.out, "no migrations applied")
			return subcommands.ExitSuccess
		}
		fmt.Fprintf(c.env.out, "version %d (dirty: %t)\n", version, dirty)
	case c.down:
		if err := m.Down(); err != nil {
			return fail(err)
		}
		fmt.Fprintln(c.env.out, "reverted one migration")
	default:
		applied, err := m.Up()
		if err != nil {
			return fail(err)
		}
		if applied {
			fmt.Fprintln(c.env.out, "migrations applied")
		} else {
			fmt.Fprintln(c.env.out, "no change")
		}
	}
	return subcommands.ExitSuccess
}

type balancesCmd struct {
	env   *environment
	owner string
}

func (*balancesCmd) Name() string     { return "balances" }
func (*balancesCmd) Synopsis() string { return "print the aggregate balance of every account of an owner" }
func (*balancesCmd) Usage() string {
	return `expensectl balances -owner <user id>
`
}

func (c *balancesCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.owner, "owner", "", "User id whose accounts are listed.")
}

func (c *balancesCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.owner == "" {
		f.Usage()
		return subcommands.ExitUsageError
	}
	svc, closeStore, err := c.env.services(ctx)
	if err != nil {
		return fail(err)
	}
	defer closeStore()

	balances, err := svc.Balance.GetBalances(ctx, c.owner)
	if err != nil {
		return fail(err)
	}
	cfg, _ := c.env.config()
	if err := c.env.print(balancesMarkdown(balances, cfg.DisplayCurrency)); err != nil {
		return fail(err)
	}
	return subcommands.ExitSuccess
}

type auditCmd struct {
	env   *environment
	owner string
}

func (*auditCmd) Name() string { return "audit" }
func (*auditCmd) Synopsis() string {
	return "report stored running balances that differ from a recomputation"
}
func (*auditCmd) Usage() string {
	return `expensectl audit -owner <user id>

  Recomputes the running balance of every transaction in insertion order and
  lists those whose stored transaction_balance differs. Nothing is rewritten.
  Exits with status 1 when drift is found.
`
}

func (c *auditCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.owner, "owner", "", "User id whose ledger is audited.")
}

func (c *auditCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.owner == "" {
		f.Usage()
		return subcommands.ExitUsageError
	}
	svc, closeStore, err := c.env.services(ctx)
	if err != nil {
		return fail(err)
	}
	defer closeStore()

	drifts, err := svc.Transaction.AuditSnapshots(ctx, c.owner)
	if err != nil {
		return fail(err)
	}
	accounts, err := svc.Account.ListAccounts(ctx, c.owner)
	if err != nil {
		return fail(err)
	}
	if err := c.env.print(auditMarkdown(drifts, accounts)); err != nil {
		return fail(err)
	}
	if len(drifts) > 0 {
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
