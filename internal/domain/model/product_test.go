package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWeightTier_Multiplier(t *testing.T) {
	tests := []struct {
		name     string
		tier     WeightTier
		expected float64
	}{
		{name: "quarter kilo", tier: TierQuarterKilo, expected: 0.25},
		{name: "half kilo", tier: TierHalfKilo, expected: 0.5},
		{name: "full kilo", tier: TierFullKilo, expected: 1.0},
		{name: "unknown tier falls back to full price", tier: WeightTier("2 KG"), expected: 1.0},
		{name: "empty tier falls back to full price", tier: WeightTier(""), expected: 1.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.tier.Multiplier())
		})
	}
}

func TestWeightTier_Valid(t *testing.T) {
	for _, tier := range Tiers {
		assert.True(t, tier.Valid(), "tier %q should be valid", tier)
	}
	assert.False(t, WeightTier("2 KG").Valid())
	assert.False(t, WeightTier("").Valid())
	assert.False(t, WeightTier("1/2 kg").Valid(), "tier labels are case sensitive")
}

func TestDefaultTier(t *testing.T) {
	assert.Equal(t, TierHalfKilo, DefaultTier)
}

func TestProduct_LargestWeight(t *testing.T) {
	tests := []struct {
		name     string
		product  Product
		expected WeightOption
		found    bool
	}{
		{
			name:    "no weights",
			product: Product{Name: "Brownie"},
			found:   false,
		},
		{
			name: "single weight",
			product: Product{
				Weights: []WeightOption{{Weight: "1/2 KG", Price: 150}},
			},
			expected: WeightOption{Weight: "1/2 KG", Price: 150},
			found:    true,
		},
		{
			name: "picks highest price, not last entry",
			product: Product{
				Weights: []WeightOption{
					{Weight: "1 KG", Price: 400},
					{Weight: "1/4 KG", Price: 120},
					{Weight: "1/2 KG", Price: 220},
				},
			},
			expected: WeightOption{Weight: "1 KG", Price: 400},
			found:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			largest, ok := tt.product.LargestWeight()
			assert.Equal(t, tt.found, ok)
			if tt.found {
				assert.Equal(t, tt.expected, largest)
			}
		})
	}
}
