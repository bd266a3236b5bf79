package manual

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReconcile(t *testing.T) {
	tests := []struct {
		name          string
		totalBill     int64
		amounts       []int64
		wantCollected int64
		wantRemaining int64
		wantStatus    Status
	}{
		{
			name:          "shortfall",
			totalBill:     100000,
			amounts:       []int64{40000, 35000},
			wantCollected: 75000,
			wantRemaining: 25000,
			wantStatus:    StatusShortfall,
		},
		{
			name:          "settled exactly",
			totalBill:     90000,
			amounts:       []int64{30000, 60000},
			wantCollected: 90000,
			wantRemaining: 0,
			wantStatus:    StatusSettled,
		},
		{
			name:          "surplus",
			totalBill:     50000,
			amounts:       []int64{30000, 30000},
			wantCollected: 60000,
			wantRemaining: -10000,
			wantStatus:    StatusSurplus,
		},
		{
			name:          "nothing entered yet",
			totalBill:     0,
			amounts:       nil,
			wantCollected: 0,
			wantRemaining: 0,
			wantStatus:    StatusOpen,
		},
		{
			name:          "total set but nobody paid",
			totalBill:     20000,
			amounts:       []int64{0, 0},
			wantCollected: 0,
			wantRemaining: 20000,
			wantStatus:    StatusShortfall,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			contributions := make([]Contribution, len(tt.amounts))
			for i, amount := range tt.amounts {
				contributions[i] = Contribution{ParticipantID: "p", Amount: amount}
			}

			summary := Reconcile(tt.totalBill, contributions)

			assert.Equal(t, tt.wantCollected, summary.TotalCollected)
			assert.Equal(t, tt.wantRemaining, summary.RemainingBalance)
			assert.Equal(t, tt.wantStatus, summary.Status)
		})
	}
}

func TestParseAmount(t *testing.T) {
	tests := []struct {
		input string
		want  int64
	}{
		{"40000", 40000},
		{"Rp40.000", 40000},
		{"40,000", 40000},
		{"  12 500 ", 12500},
		{"", 0},
		{"abc", 0},
		{"-500", 500}, // sign is stripped with everything else
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseAmount(tt.input))
		})
	}
}
