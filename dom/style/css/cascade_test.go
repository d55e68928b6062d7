package css_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/npillmayer/styleres/dom/htmladapter"
	"github.com/npillmayer/styleres/dom/style"
	"github.com/npillmayer/styleres/dom/style/collect"
	"github.com/npillmayer/styleres/dom/style/css"
	"github.com/npillmayer/styleres/dom/w3cdom"
)

const page = `<html><head></head><body style="color: green; margin-left: 4pt">
<table><tr><td id="cell" colspan="3">x</td></tr></table></body></html>`

func TestCascade(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "styleres.dom")
	defer teardown()
	//
	doc, err := htmladapter.Parse(strings.NewReader(page))
	require.NoError(t, err)
	c := collect.New(doc, collect.WithDefaultSheets(collect.NewDefaultSheetCache(nil, nil)))
	cells, err := doc.Select("#cell")
	require.NoError(t, err)
	require.Len(t, cells, 1)
	td := cells[0]
	//
	p, err := css.GetProperty(td, "color", c.ElementProperties)
	require.NoError(t, err)
	assert.Equal(t, style.Property("green"), p, "color is inherited from body")
	p, err = css.GetProperty(td, "margin-left", c.ElementProperties)
	require.NoError(t, err)
	assert.Equal(t, style.Property("0"), p, "margins are not inherited")
	p, err = css.GetProperty(td, "-fs-table-cell-colspan", c.ElementProperties)
	require.NoError(t, err)
	assert.Equal(t, style.Property("3"), p)
	p, err = css.GetProperty(td, "display", c.ElementProperties)
	require.NoError(t, err)
	assert.Equal(t, style.Property("table-cell"), p)
	p, err = css.GetProperty(td, "caption-side", c.ElementProperties)
	require.NoError(t, err)
	assert.Equal(t, style.Property("top"), p, "user-agent default")
}

func TestCascadeErrors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "styleres.dom")
	defer teardown()
	//
	_, err := css.GetProperty(nil, "color", nil)
	assert.ErrorIs(t, err, css.ErrNoNode)
	_, err = css.GetProperty(nil, "width", nil)
	assert.ErrorIs(t, err, css.ErrNoNode)
	//
	doc, err := htmladapter.Parse(strings.NewReader(page))
	require.NoError(t, err)
	broken := errors.New("broken")
	failing := func(w3cdom.Node) (*style.PropertyMap, error) { return nil, broken }
	_, err = css.GetProperty(doc.DocumentElement(), "color", failing)
	assert.ErrorIs(t, err, broken)
	assert.Equal(t, style.NullStyle, css.GetLocalProperty(nil, "color"))
}

const keywordPage = `<html><head></head><body>
<div style="margin-left: 7pt; color: red; width: 40%">
<p id="para" style="margin-left: inherit; color: initial; width: initial">
<span id="span" style="color: inherit; margin-left: inherit">x</span></p></div>
</body></html>`

func TestCascadeKeywords(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "styleres.dom")
	defer teardown()
	//
	doc, err := htmladapter.Parse(strings.NewReader(keywordPage))
	require.NoError(t, err)
	c := collect.New(doc, collect.WithDefaultSheets(collect.NewDefaultSheetCache(nil, nil)))
	para := selectNode(t, doc, "#para")
	span := selectNode(t, doc, "#span")
	//
	p, err := css.GetProperty(para, "margin-left", c.ElementProperties)
	require.NoError(t, err)
	assert.Equal(t, style.Property("7pt"), p, "inherit takes the parent's value")
	p, err = css.GetProperty(span, "margin-left", c.ElementProperties)
	require.NoError(t, err)
	assert.Equal(t, style.Property("7pt"), p, "inherit chains through the parent")
	p, err = css.GetProperty(para, "width", c.ElementProperties)
	require.NoError(t, err)
	assert.Equal(t, style.Property("auto"), p, "initial resets to the user-agent default")
	p, err = css.GetProperty(para, "color", c.ElementProperties)
	require.NoError(t, err)
	assert.Equal(t, style.Property("default"), p)
	p, err = css.GetProperty(span, "color", c.ElementProperties)
	require.NoError(t, err)
	assert.Equal(t, style.Property("default"), p, "span inherits the reset color of p")
	p, err = css.GetCascadedProperty(span, "width", c.ElementProperties)
	require.NoError(t, err)
	assert.Equal(t, style.Property("auto"), p)
}

func selectNode(t *testing.T, doc *htmladapter.Document, selector string) w3cdom.Node {
	nodes, err := doc.Select(selector)
	require.NoError(t, err)
	require.Len(t, nodes, 1)
	return nodes[0]
}
