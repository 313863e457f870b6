package services

import (
	"fintech-dashboard/internal/models"

	"github.com/shopspring/decimal"
)

// Aggregate derives the headline dashboard stats from a joint snapshot of the
// user's accounts and cards. Pure and total: malformed balances have already
// collapsed to zero at decode time, so any well-typed input aggregates
// without error.
func Aggregate(accounts []models.Account, cards []models.Card) models.DashboardStats {
	total := decimal.Zero
	for i := range accounts {
		total = total.Add(accounts[i].Balance.Decimal)
	}

	return models.DashboardStats{
		Balance:  total,
		Accounts: len(accounts),
		Cards:    len(cards),
	}
}
