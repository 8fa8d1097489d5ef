package main

import (
	"fmt"
	"strings"

	"github.com/SscSPs/expense_manager_backend/internal/core/domain"
	"github.com/SscSPs/expense_manager_backend/internal/dto"
	"github.com/SscSPs/expense_manager_backend/internal/utils"
	"github.com/charmbracelet/glamour"
)

func renderMarkdown(markdown, style string) (string, error) {
	opts := []glamour.TermRendererOption{glamour.WithWordWrap(100)}
	if style == "" {
		opts = append(opts, glamour.WithAutoStyle())
	} else {
		opts = append(opts, glamour.WithStandardStyle(style))
	}
	r, err := glamour.NewTermRenderer(opts...)
	if err != nil {
		return "", fmt.Errorf("create markdown renderer: %w", err)
	}
	return r.Render(markdown)
}

func balancesMarkdown(balances []domain.AccountBalance, currency string) string {
	var b strings.Builder
	b.WriteString("# Balances\n\n")
	if len(balances) == 0 {
		b.WriteString("No accounts.\n")
		return b.String()
	}
	b.WriteString("| Account | Type | Balance | Display |\n|---|---|---:|---:|\n")
	for _, ab := range balances {
		fmt.Fprintf(&b, "| %s | %s | %s | %s |\n",
			escapeCell(ab.Account.Name), escapeCell(ab.Account.Kind),
			utils.FormatAmount(ab.Balance), utils.DisplayAmount(ab.Balance, currency))
	}
	return b.String()
}

func auditMarkdown(drifts []domain.SnapshotDrift, accounts []domain.Account) string {
	var b strings.Builder
	b.WriteString("# Snapshot audit\n\n")
	if len(drifts) == 0 {
		b.WriteString("Every stored transaction balance matches.\n")
		return b.String()
	}
	names := dto.AccountNames(accounts)
	fmt.Fprintf(&b, "%d transaction(s) carry a stale balance.\n\n", len(drifts))
	b.WriteString("| Transaction | Account | Stored | Recomputed |\n|---|---|---:|---:|\n")
	for _, d := range drifts {
		account := d.AccountID
		if name, ok := names[d.AccountID]; ok {
			account = name
		}
		fmt.Fprintf(&b, "| %s | %s | %s | %s |\n",
			d.TransactionID, escapeCell(account),
			utils.FormatAmount(d.Stored), utils.FormatAmount(d.Recomputed))
	}
	return b.String()
}

func escapeCell(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}
