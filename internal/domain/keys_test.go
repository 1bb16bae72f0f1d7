package domain

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGalleryRecordID(t *testing.T) {
	assert.Equal(t, "7", GalleryRecordID(7))
	assert.Equal(t, "0", GalleryRecordID(0))
	assert.Equal(t, "4294967295", GalleryRecordID(4294967295))
}

func TestCurrencyRecordID(t *testing.T) {
	tests := []struct {
		name     string
		currency string
		expected string
	}{
		{
			name:     "lowercase address",
			currency: "0x000000000000000000000000000000000000000a",
			expected: "10",
		},
		{
			name:     "mixed case address normalized",
			currency: "0x000000000000000000000000000000000000000A",
			expected: "10",
		},
		{
			name:     "non-hex input falls through unchanged",
			currency: "not-an-address",
			expected: "not-an-address",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, CurrencyRecordID(tt.currency))
		})
	}
}

func TestEncodeNestedDecimal(t *testing.T) {
	tests := []struct {
		name     string
		matrix   [][]*big.Int
		expected string
	}{
		{
			name:     "empty matrix",
			matrix:   [][]*big.Int{},
			expected: "[]",
		},
		{
			name:     "single empty row",
			matrix:   [][]*big.Int{{}},
			expected: "[[]]",
		},
		{
			name: "two rows",
			matrix: [][]*big.Int{
				{big.NewInt(1), big.NewInt(2)},
				{big.NewInt(3)},
			},
			expected: `[["1","2"],["3"]]`,
		},
		{
			name: "values above 64 bits",
			matrix: [][]*big.Int{
				{new(big.Int).Lsh(big.NewInt(1), 128)},
			},
			expected: `[["340282366920938463463374607431768211456"]]`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, EncodeNestedDecimal(tt.matrix))
		})
	}
}
