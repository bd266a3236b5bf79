package receipt

// ValidatePhotoRequest carries the uploaded image as a base64 data URI
type ValidatePhotoRequest struct {
	Image string `json:"image" validate:"required"`
}

// ProcessReceiptRequest carries the image for a full scan round
type ProcessReceiptRequest struct {
	Image string `json:"image" validate:"required"`
}

// ValidationResponse represents the receipt classifier's verdict
type ValidationResponse struct {
	IsReceipt bool   `json:"is_receipt"`
	Reason    string `json:"reason,omitempty"`
}

// ProofValidationResponse represents the proof-of-purchase classifier's verdict
type ProofValidationResponse struct {
	IsValid bool   `json:"is_valid"`
	Reason  string `json:"reason,omitempty"`
}
