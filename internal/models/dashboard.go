package models

import "github.com/shopspring/decimal"

// DashboardStats is the derived headline view-model: total balance across all
// of the user's accounts plus the account and card counts. It is recomputed
// from a single atomic snapshot of both collections, never field by field.
type DashboardStats struct {
	Balance  decimal.Decimal `json:"balance"`
	Accounts int             `json:"accounts"`
	Cards    int             `json:"cards"`
}

// ZeroStats is the value stats hold before the first successful fan-in.
func ZeroStats() DashboardStats {
	return DashboardStats{Balance: decimal.Zero}
}

// SectionState holds one independently loading dashboard section.
// A section starts loading with no items; once the fetch settles the loading
// flag clears whether or not items arrived.
type SectionState[T any] struct {
	Items   []T  `json:"items"`
	Loading bool `json:"loading"`
}

// DashboardSnapshot is an atomic copy of the whole composed view-model.
type DashboardSnapshot struct {
	UserID       string                    `json:"user_id"`
	Stats        DashboardStats            `json:"stats"`
	Cards        SectionState[Card]        `json:"cards"`
	Transactions SectionState[Transaction] `json:"transactions"`
}
