package util

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestGenerateUUID(t *testing.T) {
	id := GenerateUUID()

	parsed, err := uuid.Parse(id)
	assert.NoError(t, err)
	assert.Equal(t, uuid.Version(4), parsed.Version())
}

func TestGenerateUUID_Uniqueness(t *testing.T) {
	// Link and event IDs come from here, so collisions would corrupt
	// both tables.
	seen := make(map[string]bool)

	for i := 0; i < 1000; i++ {
		id := GenerateUUID()
		assert.False(t, seen[id], "generated IDs must not repeat")
		seen[id] = true
	}

	assert.Equal(t, 1000, len(seen))
}

func TestGenerateUUID_Concurrent(t *testing.T) {
	seen := make(map[string]bool)
	done := make(chan string, 100)

	for i := 0; i < 100; i++ {
		go func() {
			done <- GenerateUUID()
		}()
	}

	for i := 0; i < 100; i++ {
		id := <-done
		assert.False(t, seen[id], "generated IDs must not repeat under concurrency")
		seen[id] = true
	}

	assert.Equal(t, 100, len(seen))
}
