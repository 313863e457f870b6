package dto

import (
	"fintech-dashboard/internal/models"
)

// CreateUserRequest is the payload posted to /users when the session has to
// create its own user. Validated before it ever leaves the process.
type CreateUserRequest struct {
	Name  string `json:"name" validate:"required,min=1,max=100"`
	Email string `json:"email" validate:"required,email"`
}

// DashboardResponse is the composed view-model served to the UI: the resolved
// user id, the aggregated stats, and both sections with their loading flags.
type DashboardResponse struct {
	UserID       string                               `json:"user_id"`
	Stats        models.DashboardStats                `json:"stats"`
	Cards        models.SectionState[CardView]        `json:"cards"`
	Transactions models.SectionState[TransactionView] `json:"transactions"`
}

// CardView is a card record decorated with its presentation color.
type CardView struct {
	models.Card
	DisplayColor string `json:"display_color"`
}

// TransactionView is a transaction record decorated with its signed display
// amount.
type TransactionView struct {
	models.Transaction
	DisplayAmount string `json:"display_amount"`
}

// NewDashboardResponse builds the response from a controller snapshot.
func NewDashboardResponse(snap models.DashboardSnapshot) DashboardResponse {
	cards := make([]CardView, 0, len(snap.Cards.Items))
	for i := range snap.Cards.Items {
		card := snap.Cards.Items[i]
		cards = append(cards, CardView{Card: card, DisplayColor: card.DisplayColor()})
	}

	txs := make([]TransactionView, 0, len(snap.Transactions.Items))
	for i := range snap.Transactions.Items {
		tx := snap.Transactions.Items[i]
		txs = append(txs, TransactionView{Transaction: tx, DisplayAmount: tx.DisplayAmount()})
	}

	return DashboardResponse{
		UserID: snap.UserID,
		Stats:  snap.Stats,
		Cards: models.SectionState[CardView]{
			Items:   cards,
			Loading: snap.Cards.Loading,
		},
		Transactions: models.SectionState[TransactionView]{
			Items:   txs,
			Loading: snap.Transactions.Loading,
		},
	}
}
