package domain

// User owns accounts and transactions. Email is the login identifier.
type User struct {
	UserID       string `json:"userID"`
	Email        string `json:"email"`
	Username     string `json:"username"`
	FullName     string `json:"fullName"`
	PasswordHash string `json:"-"`
	AuditFields
}
