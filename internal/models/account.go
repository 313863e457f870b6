package models

// Account is a bank account record belonging to the resolved user.
// Read-only on this side of the API; refetched fresh on every resolution.
type Account struct {
	ID      string `json:"_id"`
	UserID  string `json:"user_id"`
	Balance Amount `json:"balance"`
}
