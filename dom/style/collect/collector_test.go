package collect

import (
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"
	"golang.org/x/text/language"

	"github.com/npillmayer/styleres/dom/htmladapter"
	"github.com/npillmayer/styleres/dom/style"
	"github.com/npillmayer/styleres/dom/style/cssom"
	"github.com/npillmayer/styleres/dom/w3cdom"
)

const page = `<!DOCTYPE html>
<html>
<head>
  <title>
     A   Study in
     Scarlet </title>
  <meta http-equiv="Content-Language" content=" en-GB ">
  <meta http-equiv="refresh" content="">
  <meta name="author" content="Doyle">
  <link rel="Stylesheet" href="base.css" title="Base">
  <link rel="alternate stylesheet" href="alt.css">
  <link rel="icon" href="favicon.ico">
  <link rel="stylesheet" type="text/xsl" href="x.xsl">
  <style media="print">  p { color: black }  </style>
  <style>   </style>
  <link rel="stylesheet" type="text/css" href="late.css" media="screen">
</head>
<body>
  <table>
    <colgroup span="2" width="120"><col span=" 3 " width="40%"></colgroup>
    <tr><td colspan=" 2 " rowspan="3" style="color: red">x</td><th colspan="">y</th></tr>
  </table>
  <img width="100" height="50%" style="border: none">
  <img width="" height="  ">
  <canvas width="300" height="150"></canvas>
  <p id="  intro " class="lead big" lang="de">Text</p>
  <p id="   ">no id</p>
  <a href="#top" name="top">link</a>
</body>
</html>`

func parsePage(t *testing.T, opts ...htmladapter.Option) *htmladapter.Document {
	doc, err := htmladapter.Parse(strings.NewReader(page), opts...)
	require.NoError(t, err)
	return doc
}

func selectOne(t *testing.T, doc *htmladapter.Document, selector string) w3cdom.Node {
	nodes, err := doc.Select(selector)
	require.NoError(t, err)
	require.NotEmpty(t, nodes, "no match for %q", selector)
	return nodes[0]
}

func TestStylesheets(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "styleres.collect")
	defer teardown()
	//
	hosted := cssom.NewLinked(cssom.Author, "from-pi.css")
	c := New(parsePage(t, htmladapter.WithStylesheets(hosted)))
	sheets := c.Stylesheets()
	require.Len(t, sheets, 4)
	assert.Same(t, hosted, sheets[0], "host sources come first")
	//
	base := sheets[1]
	assert.Equal(t, "base.css", base.URI())
	assert.Equal(t, "text/css", base.Type())
	assert.Equal(t, "all", base.Media())
	assert.Equal(t, "Base", base.Title())
	assert.Equal(t, cssom.Author, base.Origin())
	//
	embedded := sheets[2]
	assert.True(t, embedded.IsInline())
	assert.Equal(t, "p { color: black }", embedded.Content())
	assert.Equal(t, "print", embedded.Media())
	//
	late := sheets[3]
	assert.Equal(t, "late.css", late.URI())
	assert.Equal(t, "screen", late.Media())
}

func TestMissingHead(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "styleres.collect")
	defer teardown()
	//
	root := &html.Node{Type: html.DocumentNode}
	body := &html.Node{Type: html.ElementNode, Data: "body"}
	root.AppendChild(body)
	c := New(htmladapter.FromHTML(root))
	assert.Empty(t, c.Stylesheets())
	assert.Empty(t, c.Metadata())
	assert.Equal(t, "", c.Title())
	assert.Equal(t, "", c.Lang(htmladapter.Wrap(body)))
}

func TestElementStyling(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "styleres.collect")
	defer teardown()
	//
	doc := parsePage(t)
	c := New(doc)
	assert.Equal(t, "-fs-table-cell-colspan: 2;-fs-table-cell-rowspan: 3;color: red",
		c.ElementStyling(selectOne(t, doc, "td")))
	assert.Equal(t, "", c.ElementStyling(selectOne(t, doc, "th")), "empty colspan is absent")
	imgs, _ := doc.Select("img")
	require.Len(t, imgs, 2)
	assert.Equal(t, "width: 100px;height: 50%;border: none", c.ElementStyling(imgs[0]))
	assert.Equal(t, "", c.ElementStyling(imgs[1]))
	assert.Equal(t, "width: 300px;height: 150px;", c.ElementStyling(selectOne(t, doc, "canvas")))
	assert.Equal(t, "-fs-table-cell-colspan: 2;width: 120px;", c.ElementStyling(selectOne(t, doc, "colgroup")))
	assert.Equal(t, "-fs-table-cell-colspan: 3;width: 40%;", c.ElementStyling(selectOne(t, doc, "col")))
	assert.Equal(t, "", c.ElementStyling(selectOne(t, doc, "a")))
	assert.Equal(t, "", c.ElementStyling(nil))
}

func TestElementProperties(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "styleres.collect")
	defer teardown()
	//
	doc, err := htmladapter.Parse(strings.NewReader(
		`<html><body><img width="100" height="20" style="width: 50%"><p></p></body></html>`))
	require.NoError(t, err)
	c := New(doc)
	pmap, err := c.ElementProperties(selectOne(t, doc, "img"))
	require.NoError(t, err)
	w, ok := pmap.Property("width")
	require.True(t, ok)
	assert.Equal(t, style.Property("50%"), w, "style attribute overrides presentational width")
	h, _ := pmap.Property("height")
	assert.Equal(t, style.Property("20px"), h)
	//
	pmap, err = c.ElementProperties(selectOne(t, doc, "p"))
	require.NoError(t, err)
	assert.Equal(t, 0, pmap.Size())
}

func TestElementAttributes(t *testing.T) {
	doc := parsePage(t)
	c := New(doc)
	ps, _ := doc.Select("p")
	require.Len(t, ps, 2)
	id, ok := c.ElementID(ps[0])
	assert.True(t, ok)
	assert.Equal(t, "intro", id)
	_, ok = c.ElementID(ps[1])
	assert.False(t, ok, "blank id counts as absent")
	assert.Equal(t, "lead big", c.ElementClass(ps[0]))
	assert.Equal(t, "", c.ElementClass(ps[1]))
	//
	a := selectOne(t, doc, "a")
	href, ok := c.LinkURI(a)
	assert.True(t, ok)
	assert.Equal(t, "#top", href)
	name, ok := c.AnchorName(a)
	assert.True(t, ok)
	assert.Equal(t, "top", name)
	_, ok = c.LinkURI(ps[0])
	assert.False(t, ok)
}

func TestMetadata(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "styleres.collect")
	defer teardown()
	//
	doc := parsePage(t)
	c := New(doc)
	meta := c.Metadata()
	assert.Equal(t, map[string]string{"content-language": "en-GB"}, meta)
	v, ok := c.MetaValue("content-language")
	assert.True(t, ok)
	assert.Equal(t, "en-GB", v)
	//
	assert.Equal(t, "A Study in Scarlet", c.Title())
	//
	ps, _ := doc.Select("p")
	assert.Equal(t, "de", c.Lang(ps[0]))
	assert.Equal(t, "en-GB", c.Lang(ps[1]), "language falls back to Content-Language")
	tag, err := c.LanguageTag(ps[1])
	require.NoError(t, err)
	assert.Equal(t, "en-GB", tag.String())
}

func TestMetadataKeysFoldCase(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "styleres.collect")
	defer teardown()
	//
	doc, err := htmladapter.Parse(strings.NewReader(`<html><head>
<meta http-equiv="Content-Language" content="fr">
<meta http-equiv="CONTENT-LANGUAGE" content="de">
<meta http-equiv="X-Custom" content="1">
</head><body></body></html>`))
	require.NoError(t, err)
	c := New(doc)
	assert.Equal(t, map[string]string{"content-language": "de", "x-custom": "1"}, c.Metadata())
	for i := 0; i < 10; i++ {
		v, ok := c.MetaValue("Content-Language")
		assert.True(t, ok)
		assert.Equal(t, "de", v)
	}
	_, ok := c.MetaValue("refresh")
	assert.False(t, ok)
}

func TestTitleKeepsNonBreakingSpace(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "styleres.collect")
	defer teardown()
	//
	doc, err := htmladapter.Parse(strings.NewReader(
		"<html><head><title>  Fish&nbsp;&amp;&nbsp;Chips\n\t x </title></head><body></body></html>"))
	require.NoError(t, err)
	c := New(doc)
	assert.Equal(t, "Fish\u00a0&\u00a0Chips x", c.Title())
}

func TestLanguageTagErrors(t *testing.T) {
	doc, err := htmladapter.Parse(strings.NewReader(
		`<html><body><p lang="not a language">x</p><div>y</div></body></html>`))
	require.NoError(t, err)
	c := New(doc)
	_, err = c.LanguageTag(selectOne(t, doc, "p"))
	assert.Error(t, err)
	tag, err := c.LanguageTag(selectOne(t, doc, "div"))
	require.NoError(t, err)
	assert.Equal(t, language.Und, tag)
}
