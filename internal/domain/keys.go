package domain

import (
	"math/big"
	"strconv"
	"strings"
)

// GalleryRecordID encodes a 32-bit gallery id into its stable record id
func GalleryRecordID(galleryID uint32) string {
	return strconv.FormatUint(uint64(galleryID), 10)
}

// CollectionRecordID encodes a 256-bit collection id into its stable
// record id. Collection records are addressed by collection id alone, so
// re-emitting the same id overwrites the existing record.
func CollectionRecordID(collectionID string) string {
	return collectionID
}

// CurrencyRecordID encodes a currency contract address into its stable
// record id: the decimal value of the address bytes.
func CurrencyRecordID(currency string) string {
	hex := strings.TrimPrefix(strings.ToLower(currency), "0x")
	n, ok := new(big.Int).SetString(hex, 16)
	if !ok {
		return currency
	}
	return n.String()
}

// EncodeNestedDecimal serializes a matrix of big integers as nested JSON
// arrays of decimal strings, e.g. [["1","2"],["3"]]. This is the exact
// byte format Order matrices are stored in.
func EncodeNestedDecimal(matrix [][]*big.Int) string {
	var sb strings.Builder
	sb.WriteString("[")
	for i, row := range matrix {
		if i > 0 {
			sb.WriteString(",")
		}
		sb.WriteString("[")
		for j, n := range row {
			if j > 0 {
				sb.WriteString(",")
			}
			sb.WriteString(`"`)
			sb.WriteString(n.String())
			sb.WriteString(`"`)
		}
		sb.WriteString("]")
	}
	sb.WriteString("]")
	return sb.String()
}
