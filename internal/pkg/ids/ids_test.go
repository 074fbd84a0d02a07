package ids

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsID(t *testing.T) {
	id := New()
	assert.True(t, IsID(id))
	assert.True(t, IsID(strings.ToLower(id)))

	assert.False(t, IsID("bridal-mehndi-trends-2026"))
	assert.False(t, IsID(""))
	assert.False(t, IsID("BK-"+id))
	assert.False(t, IsID(strings.Repeat("U", 26)), "U is not in the Crockford alphabet")
}

func TestBookingReferenceUnique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		ref := BookingReference()
		assert.True(t, strings.HasPrefix(ref, "BK-"))
		assert.False(t, seen[ref])
		seen[ref] = true
	}
}

func TestNormalize(t *testing.T) {
	id := New()
	assert.Equal(t, id, Normalize(strings.ToLower(id)))
	assert.Equal(t, id, Normalize(id))
	assert.Equal(t, "bridal-mehndi-trends-2026", Normalize("bridal-mehndi-trends-2026"))
	assert.Equal(t, "bk-abc", Normalize("bk-abc"))
}
