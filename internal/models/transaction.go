package models

import (
	"fmt"
	"time"
)

const (
	DirectionDebit  = "debit"
	DirectionCredit = "credit"
)

// Transaction is an activity record belonging to the resolved user,
// served most-recent-first by the upstream API.
type Transaction struct {
	ID          string    `json:"_id"`
	UserID      string    `json:"user_id"`
	Description string    `json:"description"`
	Amount      Amount    `json:"amount"`
	Direction   string    `json:"direction"`
	OccurredAt  time.Time `json:"occurred_at"`
}

func (t *Transaction) IsDebit() bool {
	return t.Direction == DirectionDebit
}

// DisplayAmount renders the signed amount the way the activity list shows it:
// debits as "-$X.XX", everything else as "+$X.XX".
func (t *Transaction) DisplayAmount() string {
	sign := "+"
	if t.IsDebit() {
		sign = "-"
	}
	return fmt.Sprintf("%s$%s", sign, t.Amount.Abs().StringFixed(2))
}
