package manual

import (
	"strconv"
	"strings"
)

// Status classifies the collected-vs-owed balance of a manual round.
type Status string

const (
	// StatusOpen means nothing meaningful has been entered yet.
	StatusOpen Status = "OPEN"
	// StatusShortfall means the group still owes money.
	StatusShortfall Status = "SHORTFALL"
	// StatusSurplus means the group has overpaid.
	StatusSurplus Status = "SURPLUS"
	// StatusSettled means collected exactly matches a non-zero total.
	StatusSettled Status = "SETTLED"
)

// Contribution is one participant's entered amount, in whole rupiah.
type Contribution struct {
	ParticipantID string
	Amount        int64
}

// Summary is the reconciliation of contributions against the total bill.
type Summary struct {
	TotalCollected   int64  `json:"total_collected"`
	RemainingBalance int64  `json:"remaining_balance"`
	Status           Status `json:"status"`
}

// Reconcile computes the collected amount and remaining balance for a
// manual round. It is a pure function of the current total and the
// current contributions; every mutation recomputes from scratch.
//
// A positive remaining balance is a shortfall, a negative one a
// surplus. A zero balance against a non-zero total is the settled
// (paid in full) state.
func Reconcile(totalBill int64, contributions []Contribution) Summary {
	var collected int64
	for _, c := range contributions {
		collected += c.Amount
	}

	remaining := totalBill - collected

	status := StatusOpen
	switch {
	case remaining > 0:
		status = StatusShortfall
	case remaining < 0:
		status = StatusSurplus
	case totalBill > 0:
		status = StatusSettled
	}

	return Summary{
		TotalCollected:   collected,
		RemainingBalance: remaining,
		Status:           status,
	}
}

// ParseAmount turns free-form user input into a contribution amount.
// Every non-digit rune is stripped before parsing, so "Rp40.000" and
// "40000" both come out as 40000. Empty or unparsable input defaults
// to 0; the result is never negative.
func ParseAmount(value string) int64 {
	var digits strings.Builder
	for _, r := range value {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}

	n, err := strconv.ParseInt(digits.String(), 10, 64)
	if err != nil {
		return 0
	}
	return n
}
