package style

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
)

func TestUserAgentDefaults(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "styleres.dom")
	defer teardown()
	//
	assert.Equal(t, Property("table-cell"), UserAgentDefault("TD", "display"))
	assert.Equal(t, Property("block"), UserAgentDefault("p", "display"))
	assert.Equal(t, Property("none"), UserAgentDefault("head", "display"))
	assert.Equal(t, Property("none"), UserAgentDefault("#text", "display"))
	assert.Equal(t, Property("block"), UserAgentDefault("x-custom", "display"))
	assert.Equal(t, Property("auto"), UserAgentDefault("img", "width"))
	assert.Equal(t, Property("static"), UserAgentDefault("div", "position"))
	assert.Equal(t, Property("1"), UserAgentDefault("td", "-fs-table-cell-colspan"))
	assert.Equal(t, Property("ltr"), UserAgentDefault("p", "direction"))
	assert.Equal(t, NullStyle, UserAgentDefault("p", "font-family"))
}

func TestInitializeDefaults(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "styleres.dom")
	defer teardown()
	//
	pmap := InitializeDefaultPropertyValues([]KeyValue{{"-x-mark", "on"}})
	p, ok := pmap.Property("-x-mark")
	assert.True(t, ok)
	assert.Equal(t, Property("on"), p)
	p, _ = pmap.Property("border-collapse")
	assert.Equal(t, Property("separate"), p)
	p, _ = pmap.Property("border-bottom-left-radius")
	assert.Equal(t, Property("0"), p)
	g := pmap.Group(PGMargins)
	if assert.NotNil(t, g) {
		assert.Len(t, g.Properties(), 4)
		assert.Equal(t, "margin-bottom", g.Properties()[0].Key)
	}
	assert.Equal(t, Property("manual"), UserAgentDefault("p", "hyphens"))
}
