package receipt

// Validation is the vision service's verdict on whether an uploaded
// photo is a genuine receipt, invoice, or bill.
type Validation struct {
	IsReceipt bool   `json:"is_receipt"`
	Reason    string `json:"reason"`
}

// ProofValidation is the verdict on whether a photo works as proof of
// purchase (storefront, shop interior, groceries, cart). A receipt
// does not count; that is what Validation is for.
type ProofValidation struct {
	IsValid bool   `json:"is_valid"`
	Reason  string `json:"reason"`
}

// ExtractedItem is one line item as read off the receipt. Price is the
// raw currency string exactly as printed; parsing it is the currency
// package's job, never this package's callers'.
type ExtractedItem struct {
	Item     string `json:"item"`
	Quantity int    `json:"quantity"`
	Price    string `json:"price"`
}

// Extraction is the structured result of reading a receipt image.
// Subtotal and tax are optional on real receipts and arrive empty when
// the vision model could not find them.
type Extraction struct {
	Items    []ExtractedItem `json:"items"`
	Subtotal string          `json:"subtotal,omitempty"`
	Tax      string          `json:"tax,omitempty"`
	Total    string          `json:"total"`
}

// RejectionError carries the user-facing reason a photo was refused.
// The reason is descriptive prose, not a machine code, matching how
// the vision flow reports problems.
type RejectionError struct {
	Reason string
}

func (e *RejectionError) Error() string {
	return e.Reason
}
