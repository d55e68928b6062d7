package domdbg

import (
	"bytes"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/npillmayer/styleres/dom/htmladapter"
	"github.com/npillmayer/styleres/dom/style"
	"github.com/npillmayer/styleres/dom/style/cssom"
	"github.com/npillmayer/styleres/dom/w3cdom"
)

const page = `<html><head><style>p { margin: 1em }</style></head>
<body><p style="padding-top: 3px">Hello <b>World</b></p></body></html>`

func TestGraphViz(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "styleres.dom")
	defer teardown()
	//
	doc, err := htmladapter.Parse(strings.NewReader(page))
	require.NoError(t, err)
	styles := func(n w3cdom.Node) (*style.PropertyMap, error) {
		if n.NodeName() != "p" {
			return nil, nil
		}
		pmap := style.NewPropertyMap()
		pmap.Add("padding-top", style.Property("3px"))
		return pmap, nil
	}
	var buf bytes.Buffer
	err = ToGraphViz(doc, &buf, styles, nil)
	require.NoError(t, err)
	dot := buf.String()
	assert.True(t, strings.HasPrefix(dot, "digraph g {"))
	assert.True(t, strings.HasSuffix(dot, "}\n"))
	assert.Contains(t, dot, `label="p"`)
	assert.Contains(t, dot, "node00001 -> node00002")
	assert.Contains(t, dot, "padding-top")
}

func TestPrintTree(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "styleres.dom")
	defer teardown()
	//
	doc, err := htmladapter.Parse(strings.NewReader(page))
	require.NoError(t, err)
	out := PrintTree(doc, func(n w3cdom.Node) string {
		if s, ok := w3cdom.AttributeValue(n, "style"); ok {
			return s
		}
		return ""
	})
	t.Logf("\n%s", out)
	assert.Contains(t, out, "html")
	assert.Contains(t, out, "p { padding-top: 3px }")
	assert.Contains(t, out, "b")
	assert.NotContains(t, out, "#text")
}

func TestPrintStylesheets(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "styleres.dom")
	defer teardown()
	//
	infos := []*cssom.StylesheetInfo{
		cssom.NewLinked(cssom.Author, "book.css", cssom.Media("print")),
		cssom.NewEmbedded(cssom.Author, "p {\n  margin: 1em\n}"),
	}
	out := PrintStylesheets(infos)
	t.Logf("\n%s", out)
	assert.Contains(t, out, cssom.Author.String())
	assert.Contains(t, out, "book.css")
	assert.Contains(t, out, "[print]")
	assert.Contains(t, out, "p { margin: 1em }")
}
