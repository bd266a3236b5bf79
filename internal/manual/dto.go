package manual

// SetTotalRequest carries the raw total bill input. The value is
// free-form text; non-digits are stripped before parsing.
type SetTotalRequest struct {
	Total string `json:"total"`
}

// AddParticipantRequest represents the request to add a manual participant
type AddParticipantRequest struct {
	Name string `json:"name" validate:"required,min=1,max=100"`
}

// SetAmountRequest carries the raw contribution input for one participant
type SetAmountRequest struct {
	Amount string `json:"amount"`
}

// ReconciliationResponse represents the collected-vs-owed state of the round
type ReconciliationResponse struct {
	TotalBill        int64  `json:"total_bill"`
	TotalCollected   int64  `json:"total_collected"`
	RemainingBalance int64  `json:"remaining_balance"`
	Status           Status `json:"status"`
	Display          string `json:"display"`
	ShareText        string `json:"share_text,omitempty"`
}
