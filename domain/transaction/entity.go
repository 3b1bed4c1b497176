package transaction

import "time"

// Transaction A purchase record. Immutable once created; the cost is kept
// as text so the search filter can match it as a substring.
type Transaction struct {
	ID        string    `json:"_id"`
	UserID    string    `json:"userId"`
	Cost      string    `json:"cost"`
	CreatedAt time.Time `json:"createdAt"`
}
