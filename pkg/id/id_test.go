package id

import (
	"math/rand"
	"testing"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewIsULID(t *testing.T) {
	s := New()
	assert.Len(t, s, ulid.EncodedSize)
	_, err := ulid.ParseStrict(s)
	assert.NoError(t, err)
}

func TestGeneratorMonotonic(t *testing.T) {
	fixed := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	g := NewGenerator(rand.New(rand.NewSource(1)), func() time.Time { return fixed })

	prev := ""
	for i := 0; i < 100; i++ {
		s, err := g.Next()
		require.NoError(t, err)
		assert.Greater(t, s, prev)
		prev = s

		u := ulid.MustParse(s)
		assert.Equal(t, ulid.Timestamp(fixed), u.Time())
	}
}
