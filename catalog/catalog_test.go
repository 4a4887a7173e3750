package catalog_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/stvnksslr/razer-ctl/catalog"
)

func TestEveryDescriptorFeatureIsInTheClosedSet(t *testing.T) {
	for _, d := range catalog.Supported {
		for _, f := range d.Features {
			assert.True(t, catalog.AllFeatures[f], "descriptor %s declares unknown feature %s", d.Name, f)
		}
	}
}

func TestByPIDFindsExactMatch(t *testing.T) {
	d, ok := catalog.ByPID(0x0253)
	assert.True(t, ok)
	assert.Equal(t, "RZ09-0483", d.ModelNumberPrefix)
}

func TestByPIDMissReturnsFalse(t *testing.T) {
	_, ok := catalog.ByPID(0xffff)
	assert.False(t, ok)
}

func TestByModelPrefixMatchesLongerModelString(t *testing.T) {
	d, ok := catalog.ByModelPrefix("RZ09-04831234567")
	assert.True(t, ok)
	assert.Equal(t, uint16(0x0253), d.PID)
}

func TestByModelPrefixMissReturnsFalse(t *testing.T) {
	_, ok := catalog.ByModelPrefix("RZ09-9999999")
	assert.False(t, ok)
}

func TestDescriptorSupports(t *testing.T) {
	d, ok := catalog.ByPID(0x0277)
	assert.True(t, ok)
	assert.True(t, d.Supports(catalog.FeatureBatteryCare))
	assert.False(t, d.Supports(catalog.FeatureLidLogo))
}
