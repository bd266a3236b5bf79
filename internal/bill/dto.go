package bill

import "github.com/patunganyuk/patungan/internal/bill/split"

// ItemEntry represents one manually entered line item.
// UnitPrice is per unit; the stored line price is Quantity * UnitPrice.
type ItemEntry struct {
	Name      string  `json:"name" validate:"required,min=1,max=255"`
	Quantity  int     `json:"quantity" validate:"required,gt=0"`
	UnitPrice float64 `json:"unit_price" validate:"required,gt=0"`
}

// SetBillRequest represents the request to start a round from manual items
type SetBillRequest struct {
	Items []ItemEntry `json:"items" validate:"required,min=1"`
	Tax   float64     `json:"tax,omitempty"`
}

// SetAssigneesRequest represents the request to replace an item's assignees.
// When All is true the full roster is assigned and ParticipantIDs is ignored.
type SetAssigneesRequest struct {
	ParticipantIDs []string `json:"participant_ids"`
	All            bool     `json:"all,omitempty"`
}

// SplitResponse represents the computed settlement for the whole round
type SplitResponse struct {
	Results       []ResultResponse `json:"results"`
	FullyAssigned bool             `json:"fully_assigned"`
	ShareText     string           `json:"share_text,omitempty"`
}

// ResultResponse represents one participant's settlement
type ResultResponse struct {
	ParticipantID string            `json:"participant_id"`
	Name          string            `json:"name"`
	Initials      string            `json:"initials"`
	Subtotal      float64           `json:"subtotal"`
	TaxShare      float64           `json:"tax_share"`
	Total         float64           `json:"total"`
	Display       string            `json:"display"`
	Items         []split.ItemShare `json:"items"`
}
