package platform

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTrimToPrefixLen(t *testing.T) {
	assert.Equal(t, "RZ09-0483", trimToPrefixLen("RZ09-04831234567"))
	assert.Equal(t, "RZ09", trimToPrefixLen("RZ09"))
}

func TestHasRazerPrefix(t *testing.T) {
	assert.True(t, hasRazerPrefix("RZ09-0483"))
	assert.False(t, hasRazerPrefix("RZ10-0483"))
	assert.False(t, hasRazerPrefix("RZ09"))
}
