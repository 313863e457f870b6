package models

const (
	CardStatusActive = "active"
	CardStatusFrozen = "frozen"

	// DefaultCardColor matches the fallback used by the card presentation
	// when the upstream record carries no color of its own.
	DefaultCardColor = "#7c3aed"
)

// Card is a payment card record belonging to the resolved user.
type Card struct {
	ID         string `json:"_id"`
	UserID     string `json:"user_id"`
	Brand      string `json:"brand"`
	Last4      string `json:"last4"`
	Cardholder string `json:"cardholder"`
	Status     string `json:"status"`
	Color      string `json:"color,omitempty"`
}

// DisplayColor returns the card's accent color, falling back to the default
// when the record has none.
func (c *Card) DisplayColor() string {
	if c.Color == "" {
		return DefaultCardColor
	}
	return c.Color
}
