package models

// Account is the row shape of the accounts table.
type Account struct {
	AccountID   string `db:"account_id"`
	OwnerID     string `db:"owner_id"`
	Name        string `db:"name"`
	Kind        string `db:"kind"`
	AuditFields        // Embed common audit fields
}
