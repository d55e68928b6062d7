package cssom

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"

	"github.com/npillmayer/styleres/dom/style"
)

func TestStylesheetInfoDefaults(t *testing.T) {
	info := NewLinked(Author, "a.css", Type(DefaultType))
	assert.Equal(t, "all", info.Media())
	assert.Equal(t, "text/css", info.Type())
	assert.Equal(t, "a.css", info.URI())
	assert.False(t, info.IsInline())
	assert.True(t, info.AppliesTo("print"))
	//
	emb := NewEmbedded(Author, "p { color: red }", Media("screen, Print"), Title("t"))
	assert.True(t, emb.IsInline())
	assert.Equal(t, "", emb.Type())
	assert.Equal(t, "t", emb.Title())
	assert.True(t, emb.AppliesTo("print"))
	assert.False(t, emb.AppliesTo("speech"))
	assert.Equal(t, "author", emb.Origin().String())
}

func TestApplyDeclarations(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "styleres.dom")
	defer teardown()
	//
	pmap := ApplyDeclarations(nil, []Declaration{
		{Key: "width", Value: "100px"},
		{Key: "color", Value: "red", Important: true},
		{Key: "padding", Value: "1px"},
		{Key: "width", Value: "50%"},
		{Key: "color", Value: "blue"},
	})
	p, _ := pmap.Property("width")
	assert.Equal(t, style.Property("50%"), p, "later declaration wins")
	p, _ = pmap.Property("color")
	assert.Equal(t, style.Property("red"), p, "important declaration is kept")
	p, _ = pmap.Property("padding-left")
	assert.Equal(t, style.Property("1px"), p)
}
