package cache

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCachedPIDMissingWhenNoFileWritten(t *testing.T) {
	c := NewAt(t.TempDir())
	_, ok := c.CachedPID()
	assert.False(t, ok)
}

func TestSetThenGetCachedPIDRoundTrips(t *testing.T) {
	c := NewAt(t.TempDir())
	require.NoError(t, c.SetCachedDevice(0x0253, "Razer Blade 14 (2023)", "RZ09-0483"))

	pid, ok := c.CachedPID()
	require.True(t, ok)
	assert.Equal(t, uint16(0x0253), pid)
}

func TestClearCachedDeviceRemovesEntry(t *testing.T) {
	c := NewAt(t.TempDir())
	require.NoError(t, c.SetCachedDevice(0x0253, "name", "model"))
	require.NoError(t, c.ClearCachedDevice())

	_, ok := c.CachedPID()
	assert.False(t, ok)
}

func TestClearCachedDeviceIsIdempotent(t *testing.T) {
	c := NewAt(t.TempDir())
	assert.NoError(t, c.ClearCachedDevice())
	assert.NoError(t, c.ClearCachedDevice())
}
