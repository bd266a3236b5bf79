package session

// AddParticipantRequest represents the request to add a participant
type AddParticipantRequest struct {
	Name string `json:"name" validate:"required,min=1,max=100"`
}

// SetBankRequest represents the request to store transfer instructions
type SetBankRequest struct {
	BankName      string `json:"bank_name"`
	AccountNumber string `json:"account_number"`
	AccountName   string `json:"account_name"`
}
