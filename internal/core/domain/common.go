package domain

import "time"

// AuditFields holds creation and last-update information shared by entities.
// CreatedBy and LastUpdatedBy hold user ids.
type AuditFields struct {
	CreatedAt     time.Time `json:"createdAt"`
	CreatedBy     string    `json:"createdBy"`
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
	LastUpdatedBy string    `json:"lastUpdatedBy"`
}
