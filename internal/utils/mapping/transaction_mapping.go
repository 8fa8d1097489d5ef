package mapping

import (
	"github.com/SscSPs/expense_manager_backend/internal/core/domain"
	"github.com/SscSPs/expense_manager_backend/internal/models"
)

// ToModelTransaction converts a domain Transaction to a model Transaction.
// Seq is left zero; the store assigns it.
func ToModelTransaction(d domain.Transaction) models.Transaction {
	return models.Transaction{
		TransactionID:      d.TransactionID,
		OwnerID:            d.OwnerID,
		Date:               d.Date.Time(),
		Description:        d.Description,
		Place:              d.Place,
		Amount:             d.Amount,
		TransactionType:    string(d.Type),
		Category:           d.Category,
		AccountID:          d.AccountID,
		ToAccountID:        d.ToAccountID,
		PaidBy:             d.PaidBy,
		Status:             string(d.Status),
		TransactionBalance: d.TransactionBalance,
		AuditFields:        ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainTransaction converts a model Transaction to a domain Transaction
func ToDomainTransaction(m models.Transaction) domain.Transaction {
	return domain.Transaction{
		TransactionID:      m.TransactionID,
		OwnerID:            m.OwnerID,
		Date:               domain.DateFromTime(m.Date),
		Description:        m.Description,
		Place:              m.Place,
		Amount:             m.Amount,
		Type:               domain.TransactionType(m.TransactionType),
		Category:           m.Category,
		AccountID:          m.AccountID,
		ToAccountID:        m.ToAccountID,
		PaidBy:             m.PaidBy,
		Status:             domain.TransactionStatus(m.Status),
		TransactionBalance: m.TransactionBalance,
		AuditFields:        ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainTransactionSlice converts a slice of model Transactions to a slice of domain Transactions
func ToDomainTransactionSlice(ms []models.Transaction) []domain.Transaction {
	ds := make([]domain.Transaction, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainTransaction(m)
	}
	return ds
}
