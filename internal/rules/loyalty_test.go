package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSetLoyaltyTotal(t *testing.T) {
	got := SetLoyaltyTotal(100, 250)

	assert.Equal(t, 100, got.Previous)
	assert.Equal(t, 150, got.Delta)
	assert.Equal(t, 250, got.NewTotal)
}

func TestSetLoyaltyTotal_ClampsNegative(t *testing.T) {
	got := SetLoyaltyTotal(100, -50)

	assert.Equal(t, 100, got.Previous)
	assert.Equal(t, -100, got.Delta)
	assert.Equal(t, 0, got.NewTotal)
}

func TestSetLoyaltyTotal_ToZero(t *testing.T) {
	got := SetLoyaltyTotal(42, 0)

	assert.Equal(t, 42, got.Previous)
	assert.Equal(t, -42, got.Delta)
	assert.Equal(t, 0, got.NewTotal)
}

func TestAddLoyaltyPoints(t *testing.T) {
	got := AddLoyaltyPoints(100, 25)

	assert.Equal(t, 100, got.Previous)
	assert.Equal(t, 25, got.Delta)
	assert.Equal(t, 125, got.NewTotal)
}

func TestAddLoyaltyPoints_ClampsNegativeDelta(t *testing.T) {
	// Removing points is not supported; negative adds become no-ops.
	got := AddLoyaltyPoints(100, -30)

	assert.Equal(t, 100, got.Previous)
	assert.Equal(t, 0, got.Delta)
	assert.Equal(t, 100, got.NewTotal)
}

func TestAddLoyaltyPoints_ZeroIsIdempotent(t *testing.T) {
	got := AddLoyaltyPoints(77, 0)

	assert.Equal(t, 77, got.NewTotal)
	assert.Equal(t, 0, got.Delta)
}

func TestLoyalty_NewTotalNeverNegative(t *testing.T) {
	for _, requested := range []int{-1000, -1, 0, 1, 1000} {
		assert.GreaterOrEqual(t, SetLoyaltyTotal(0, requested).NewTotal, 0)
		assert.GreaterOrEqual(t, SetLoyaltyTotal(500, requested).NewTotal, 0)
		assert.GreaterOrEqual(t, AddLoyaltyPoints(0, requested).NewTotal, 0)
	}
}

func TestLoyalty_AddNeverDecreases(t *testing.T) {
	for _, delta := range []int{-10, 0, 10} {
		got := AddLoyaltyPoints(50, delta)
		assert.GreaterOrEqual(t, got.NewTotal, 50)
	}
}

func TestLoyalty_SetAndAddAreInverses(t *testing.T) {
	// Applying add with the delta a set produced lands on the same total.
	current := 120
	set := SetLoyaltyTotal(current, 200)
	add := AddLoyaltyPoints(current, set.Delta)

	assert.Equal(t, set.NewTotal, add.NewTotal)
}
