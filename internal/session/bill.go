package session

// Item represents a single line on a bill.
// Price is the TOTAL price for the line (quantity already folded in),
// matching how receipts print line amounts.
type Item struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	Quantity   int      `json:"quantity"`
	Price      float64  `json:"price"`
	AssignedTo []string `json:"assigned_to"`
}

// Bill holds the line items and totals for one settlement round.
// A bill is created once per round (one receipt scan or one manual
// entry batch) and replaced entirely when the user starts over.
type Bill struct {
	Items    []Item  `json:"items"`
	Subtotal float64 `json:"subtotal"`
	Tax      float64 `json:"tax"`
	Total    float64 `json:"total"`
}

// NewBill builds a normalized Bill from raw extraction or manual entry.
// Defaulting happens here, once, so the settlement calculation never
// has to reason about absent fields:
//   - subtotal falls back to the sum of item prices
//   - tax falls back to 0 (tax is never assumed when the receipt
//     doesn't state one)
//   - total falls back to subtotal + tax
func NewBill(items []Item, subtotal, tax, total float64) *Bill {
	if subtotal <= 0 {
		subtotal = sumPrices(items)
	}
	if tax < 0 {
		tax = 0
	}
	if total <= 0 {
		total = subtotal + tax
	}
	return &Bill{
		Items:    items,
		Subtotal: subtotal,
		Tax:      tax,
		Total:    total,
	}
}

// RecalculateTotals refreshes subtotal and total after an item edit,
// keeping the current tax.
func (b *Bill) RecalculateTotals() {
	b.Subtotal = sumPrices(b.Items)
	b.Total = b.Subtotal + b.Tax
}

// RemoveTax zeroes the bill's tax and collapses total back to the
// subtotal (recomputed from items if the subtotal was never set).
func (b *Bill) RemoveTax() {
	b.Tax = 0
	if b.Subtotal > 0 {
		b.Total = b.Subtotal
	} else {
		b.Total = sumPrices(b.Items)
	}
}

// FullyAssigned reports whether every item has at least one assignee.
// The results view is gated on this.
func (b *Bill) FullyAssigned() bool {
	for _, item := range b.Items {
		if len(item.AssignedTo) == 0 {
			return false
		}
	}
	return true
}

func sumPrices(items []Item) float64 {
	var sum float64
	for _, item := range items {
		sum += item.Price
	}
	return sum
}
