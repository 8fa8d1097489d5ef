package models

// User is the row shape of the users table.
type User struct {
	UserID       string `db:"user_id"`
	Email        string `db:"email"`
	Username     string `db:"username"`
	FullName     string `db:"full_name"`
	PasswordHash string `db:"password_hash"`
	AuditFields
}
