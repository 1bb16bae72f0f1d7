package domain

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestIsValidKind(t *testing.T) {
	tests := []struct {
		name     string
		kind     EventKind
		expected bool
	}{
		{
			name:     "valid gallery created",
			kind:     KindGalleryCreated,
			expected: true,
		},
		{
			name:     "valid order created",
			kind:     KindOrderCreated,
			expected: true,
		},
		{
			name:     "valid oracle updated",
			kind:     KindOracleUpdated,
			expected: true,
		},
		{
			name:     "invalid empty kind",
			kind:     EventKind(""),
			expected: false,
		},
		{
			name:     "invalid random kind",
			kind:     EventKind("token_transferred"),
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := IsValidKind(tt.kind)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestEventKindContract(t *testing.T) {
	tests := []struct {
		name     string
		kind     EventKind
		expected Contract
	}{
		{
			name:     "gallery created belongs to autograph data",
			kind:     KindGalleryCreated,
			expected: ContractAutographData,
		},
		{
			name:     "autograph created belongs to autograph data",
			kind:     KindAutographCreated,
			expected: ContractAutographData,
		},
		{
			name:     "currency added belongs to print splits",
			kind:     KindCurrencyAdded,
			expected: ContractPrintSplits,
		},
		{
			name:     "treasury split set belongs to print splits",
			kind:     KindTreasurySplitSet,
			expected: ContractPrintSplits,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.kind.Contract())
		})
	}
}

func TestEventKey(t *testing.T) {
	tests := []struct {
		name     string
		event    Event
		expected string
	}{
		{
			name: "tx hash with log index",
			event: Event{
				TxHash:   "0xabc123",
				LogIndex: 7,
			},
			expected: "0xabc123:7",
		},
		{
			name: "zero log index",
			event: Event{
				TxHash:   "0xdef456",
				LogIndex: 0,
			},
			expected: "0xdef456:0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.event.Key())
		})
	}
}

func TestEventKeyDistinctPerLog(t *testing.T) {
	// Two logs in the same transaction must never collide
	a := Event{TxHash: "0xabc", LogIndex: 1}
	b := Event{TxHash: "0xabc", LogIndex: 2}
	assert.NotEqual(t, a.Key(), b.Key())
}

func TestEventValid(t *testing.T) {
	payload, err := json.Marshal(GalleryCreatedPayload{
		CollectionIDs: []string{"101"},
		Designer:      "0x1111111111111111111111111111111111111111",
		GalleryID:     7,
	})
	assert.NoError(t, err)

	tests := []struct {
		name     string
		event    Event
		expected bool
	}{
		{
			name: "valid event",
			event: Event{
				Kind:           KindGalleryCreated,
				TxHash:         "0xabc",
				LogIndex:       0,
				BlockNumber:    100,
				BlockTimestamp: time.Unix(1700000000, 0),
				Payload:        payload,
			},
			expected: true,
		},
		{
			name: "unknown kind",
			event: Event{
				Kind:        EventKind("bogus"),
				TxHash:      "0xabc",
				BlockNumber: 100,
				Payload:     payload,
			},
			expected: false,
		},
		{
			name: "missing tx hash",
			event: Event{
				Kind:        KindGalleryCreated,
				BlockNumber: 100,
				Payload:     payload,
			},
			expected: false,
		},
		{
			name: "missing payload",
			event: Event{
				Kind:        KindGalleryCreated,
				TxHash:      "0xabc",
				BlockNumber: 100,
			},
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.event.Valid())
		})
	}
}
