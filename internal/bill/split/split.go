// Package split computes per-participant settlements for an itemized bill.
//
// Each item is divided evenly among the participants assigned to it, and
// the bill's tax is then distributed proportionally to each participant's
// claimed share of the subtotal. The computation is a pure function of its
// inputs: it never mutates them and has no hidden state.
package split

// Item is a bill line entering the settlement calculation.
// Price is the total price for the line, not the unit price.
type Item struct {
	Name       string
	Price      float64
	AssignedTo []string
}

// ItemShare records one participant's slice of a single item.
type ItemShare struct {
	Name       string  `json:"name"`
	Price      float64 `json:"price"`
	SplitPrice float64 `json:"split_price"`
}

// Result is the computed settlement for one participant.
type Result struct {
	ParticipantID string      `json:"participant_id"`
	Subtotal      float64     `json:"subtotal"`
	TaxShare      float64     `json:"tax_share"`
	Total         float64     `json:"total"`
	Items         []ItemShare `json:"items"`
}

// Compute calculates each participant's share of the bill.
//
// Items with no assignees are skipped entirely: they contribute to nobody's
// share and stay out of every item-detail list. Tax is distributed in
// proportion to each participant's claimed subtotal; while nothing has been
// assigned yet the claimed subtotal is zero and every tax share is zero,
// which also guards the division.
//
// One Result is returned per participant, in roster order, including
// participants with no assigned items (all zeroes, empty item list).
// With no participants the result is empty.
func Compute(items []Item, tax float64, participantIDs []string) []Result {
	if len(participantIDs) == 0 {
		return []Result{}
	}

	subtotals := make(map[string]float64, len(participantIDs))
	details := make(map[string][]ItemShare, len(participantIDs))
	for _, id := range participantIDs {
		subtotals[id] = 0
		details[id] = []ItemShare{}
	}

	for _, item := range items {
		if len(item.AssignedTo) == 0 {
			continue
		}

		// Plain division; rounding is a display concern only.
		splitPrice := item.Price / float64(len(item.AssignedTo))
		for _, id := range item.AssignedTo {
			if _, ok := subtotals[id]; !ok {
				continue
			}
			subtotals[id] += splitPrice
			details[id] = append(details[id], ItemShare{
				Name:       item.Name,
				Price:      item.Price,
				SplitPrice: splitPrice,
			})
		}
	}

	var totalClaimed float64
	for _, id := range participantIDs {
		totalClaimed += subtotals[id]
	}

	results := make([]Result, len(participantIDs))
	for i, id := range participantIDs {
		subtotal := subtotals[id]

		var taxShare float64
		if totalClaimed > 0 {
			taxShare = (subtotal / totalClaimed) * tax
		}

		results[i] = Result{
			ParticipantID: id,
			Subtotal:      subtotal,
			TaxShare:      taxShare,
			Total:         subtotal + taxShare,
			Items:         details[id],
		}
	}

	return results
}
