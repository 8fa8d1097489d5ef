package domain

import "github.com/shopspring/decimal"

const (
	DefaultFilterPage  = 1
	DefaultFilterLimit = 20
	MaxFilterLimit     = 500
)

// TransactionFilter is the store-level form of a transaction search.
// Account names have already been resolved to ids.
type TransactionFilter struct {
	Page       int
	Limit      int
	SearchTerm string // case-insensitive substring of description, place or category
	DateFrom   *Date  // inclusive
	DateTo     *Date  // inclusive
	Types      []TransactionType
	Categories []string
	AccountIDs []string
	MinAmount  *decimal.Decimal
	MaxAmount  *decimal.Decimal
}

// Normalize applies defaults and clamps paging values.
func (f *TransactionFilter) Normalize() {
	if f.Page < 1 {
		f.Page = DefaultFilterPage
	}
	if f.Limit < 1 {
		f.Limit = DefaultFilterLimit
	}
	if f.Limit > MaxFilterLimit {
		f.Limit = MaxFilterLimit
	}
}

// Offset is the number of rows to skip for the current page.
func (f TransactionFilter) Offset() int {
	return (f.Page - 1) * f.Limit
}

// TransactionPage is one page of filter results.
type TransactionPage struct {
	Transactions []Transaction
	Page         int
	Limit        int
	Total        int
}
