package dom

import (
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"

	"github.com/npillmayer/styleres/dom/htmladapter"
)

func TestPredicates(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "styleres.dom")
	defer teardown()
	//
	h, err := html.Parse(strings.NewReader(
		`<html><head><title>T</title><meta><META></head><body><p> A <i>B</i> C </p></body></html>`))
	require.NoError(t, err)
	doc := htmladapter.FromHTML(h)
	head := doc.Head()
	require.NotNil(t, head)
	title := FirstChild(head, IsElement("TITLE"))
	require.NotNil(t, title)
	assert.Equal(t, "title", title.NodeName())
	assert.Equal(t, "T", DirectText(title))
	assert.Len(t, Children(head, IsElement("meta")), 2)
	ps, err := doc.Select("p")
	require.NoError(t, err)
	require.Len(t, ps, 1)
	p := ps[0]
	assert.Equal(t, " A  C ", DirectText(p))
	assert.Len(t, Children(p, NodeIsText), 2)
	assert.Len(t, Children(p, NodeIsElement), 1)
	assert.Nil(t, FirstChild(head, IsElement("link")))
	assert.Nil(t, FirstChild(nil, NodeIsText))
	assert.Nil(t, Children(nil, NodeIsText))
	assert.False(t, NodeIsText(nil))
}
