package domain

import "time"

// Note belongs to exactly one tenant. UserID and TenantID are always stamped
// from the authenticated request identity, never from the request body.
type Note struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	UserID    string    `json:"userId"`
	TenantID  string    `json:"tenantId"`
	CreatedAt time.Time `json:"createdAt"`
}
