package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDeriveInitials(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"Budi Santoso", "BS"},
		{"Siti Nurhaliza Binti Ahmad", "SA"},
		{"alice", "AL"},
		{"bob marley", "BM"},
		{"X", "X"},
		{"  spaced  out  ", "SO"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DeriveInitials(tt.name))
		})
	}
}

func TestValidName(t *testing.T) {
	assert.True(t, ValidName("Budi"))
	assert.True(t, ValidName("  Budi  "))
	assert.False(t, ValidName(""))
	assert.False(t, ValidName("   "))
}

func TestNewBillDefaults(t *testing.T) {
	items := []Item{
		{ID: "1", Name: "A", Quantity: 1, Price: 30000},
		{ID: "2", Name: "B", Quantity: 2, Price: 20000},
	}

	t.Run("everything derived", func(t *testing.T) {
		b := NewBill(items, 0, 0, 0)
		assert.Equal(t, 50000.0, b.Subtotal)
		assert.Equal(t, 0.0, b.Tax)
		assert.Equal(t, 50000.0, b.Total)
	})

	t.Run("stated values win", func(t *testing.T) {
		b := NewBill(items, 50000, 5500, 55500)
		assert.Equal(t, 50000.0, b.Subtotal)
		assert.Equal(t, 5500.0, b.Tax)
		assert.Equal(t, 55500.0, b.Total)
	})

	t.Run("total derived from stated tax", func(t *testing.T) {
		b := NewBill(items, 0, 5000, 0)
		assert.Equal(t, 50000.0, b.Subtotal)
		assert.Equal(t, 55000.0, b.Total)
	})
}

func TestBillRemoveTax(t *testing.T) {
	b := NewBill([]Item{{ID: "1", Name: "A", Quantity: 1, Price: 40000}}, 0, 4000, 0)
	assert.Equal(t, 44000.0, b.Total)

	b.RemoveTax()
	assert.Equal(t, 0.0, b.Tax)
	assert.Equal(t, 40000.0, b.Total)
}

func TestBillFullyAssigned(t *testing.T) {
	b := &Bill{Items: []Item{
		{ID: "1", AssignedTo: []string{"a"}},
		{ID: "2", AssignedTo: nil},
	}}
	assert.False(t, b.FullyAssigned())

	b.Items[1].AssignedTo = []string{"b"}
	assert.True(t, b.FullyAssigned())
}
