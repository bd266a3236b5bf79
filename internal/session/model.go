package session

import (
	"strings"
	"time"
)

// Participant is a person sharing an itemized bill.
type Participant struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Initials string `json:"initials"`
}

// ManualParticipant is a person in the manual (non-itemized) flow,
// carrying the amount they have thrown in so far. It has no item
// assignment relationship.
type ManualParticipant struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Initials string `json:"initials"`
	Amount   int64  `json:"amount"`
}

// ManualState is the manual-collection side of a session.
type ManualState struct {
	TotalBill    int64               `json:"total_bill"`
	Participants []ManualParticipant `json:"participants"`
}

// BankDetails are optional transfer instructions appended to share text.
type BankDetails struct {
	BankName      string `json:"bank_name"`
	AccountNumber string `json:"account_number"`
	AccountName   string `json:"account_name"`
}

// Session is one client's complete splitting state. Each browser
// session owns exactly one, identified by a UUID; there is no shared
// state across sessions.
type Session struct {
	ID           string        `json:"id"`
	Bill         *Bill         `json:"bill,omitempty"`
	Participants []Participant `json:"participants"`
	Manual       ManualState   `json:"manual"`
	Bank         BankDetails   `json:"bank"`
	CreatedAt    time.Time     `json:"created_at"`
	UpdatedAt    time.Time     `json:"updated_at"`
}

// DeriveInitials builds the 1-2 letter avatar abbreviation for a name.
// Multi-word names take the first letter of the first and last words;
// single words take their first two characters. Always uppercased.
func DeriveInitials(name string) string {
	fields := strings.Fields(name)
	if len(fields) > 1 {
		first := []rune(fields[0])
		last := []rune(fields[len(fields)-1])
		return strings.ToUpper(string(first[0]) + string(last[0]))
	}

	runes := []rune(strings.TrimSpace(name))
	if len(runes) == 0 {
		return ""
	}
	if len(runes) == 1 {
		return strings.ToUpper(string(runes[0]))
	}
	return strings.ToUpper(string(runes[:2]))
}

// ValidName reports whether a participant name is usable after trimming.
func ValidName(name string) bool {
	return strings.TrimSpace(name) != ""
}
