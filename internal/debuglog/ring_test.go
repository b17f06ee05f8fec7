package debuglog

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"canopy/internal/domain"
)

func record(endpoint string) domain.APICallRecord {
	return domain.APICallRecord{
		Endpoint:  endpoint,
		Method:    "GET",
		Timestamp: time.Now(),
	}
}

func TestRecordNewestFirst(t *testing.T) {
	ring := NewRing(10)

	ring.Record(record("/api/v2/grows"))
	ring.Record(record("/api/v2/plants/dashboard"))

	entries := ring.Entries()
	require.Len(t, entries, 2)
	assert.Equal(t, "/api/v2/plants/dashboard", entries[0].Endpoint, "newest entry should be first")
	assert.Equal(t, "/api/v2/grows", entries[1].Endpoint)
}

func TestCapacityEviction(t *testing.T) {
	ring := NewRing(DefaultCapacity)

	for i := 0; i < DefaultCapacity+1; i++ {
		ring.Record(record(fmt.Sprintf("/call-%d", i)))
	}

	entries := ring.Entries()
	require.Len(t, entries, DefaultCapacity, "ring must never exceed capacity")
	assert.Equal(t, fmt.Sprintf("/call-%d", DefaultCapacity), entries[0].Endpoint)
	// The oldest entry (/call-0) was evicted
	assert.Equal(t, "/call-1", entries[len(entries)-1].Endpoint)
}

func TestClear(t *testing.T) {
	ring := NewRing(5)
	ring.Record(record("/api/v2/auth/me"))

	ring.Clear()

	assert.Empty(t, ring.Entries())
	assert.Zero(t, ring.Len())
}

func TestEntriesReturnsSnapshot(t *testing.T) {
	ring := NewRing(5)
	ring.Record(record("/api/v2/grows"))

	entries := ring.Entries()
	entries[0].Endpoint = "mutated"

	assert.Equal(t, "/api/v2/grows", ring.Entries()[0].Endpoint,
		"mutating the returned slice must not affect the ring")
}

func TestDefaultCapacityFallback(t *testing.T) {
	ring := NewRing(0)
	for i := 0; i < DefaultCapacity*2; i++ {
		ring.Record(record("/x"))
	}
	assert.Equal(t, DefaultCapacity, ring.Len())
}
