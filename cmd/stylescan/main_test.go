package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const page = `<html lang="de"><head>
<title>  Ein   Buch </title>
<meta http-equiv="Content-Type" content="text/html">
<link rel="stylesheet" href="screen.css" media="screen">
<link rel="stylesheet" href="print.css" media="print">
<style>p { color: red }</style>
</head><body><table><tr><td colspan="2" style="color: blue">x</td></tr></table></body></html>`

func writePage(t *testing.T) string {
	fname := filepath.Join(t.TempDir(), "page.html")
	require.NoError(t, os.WriteFile(fname, []byte(page), 0644))
	return fname
}

func TestScanFile(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "styleres.cli")
	defer teardown()
	//
	fname := writePage(t)
	var out bytes.Buffer
	err := scanFile(options{medium: "all", tree: true}, fname, &out)
	require.NoError(t, err)
	s := out.String()
	t.Logf("\n%s", s)
	assert.Contains(t, s, `title: "Ein Buch"`)
	assert.Contains(t, s, `lang:  "de"`)
	assert.Contains(t, s, `meta content-type = "text/html"`)
	assert.Contains(t, s, "screen.css")
	assert.Contains(t, s, "print.css")
	assert.Contains(t, s, "p { color: red }")
	assert.Contains(t, s, "td { -fs-table-cell-colspan: 2;color: blue }")
}

func TestScanFileMedia(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "styleres.cli")
	defer teardown()
	//
	fname := writePage(t)
	var out bytes.Buffer
	err := scanFile(options{medium: "print"}, fname, &out)
	require.NoError(t, err)
	s := out.String()
	assert.Contains(t, s, "print.css")
	assert.NotContains(t, s, "screen.css")
	assert.NotContains(t, s, "Element styling")
}

func TestScanFileProperty(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "styleres.cli")
	defer teardown()
	//
	fname := writePage(t)
	var out bytes.Buffer
	err := scanFile(options{medium: "all", key: "display"}, fname, &out)
	require.NoError(t, err)
	s := out.String()
	assert.Contains(t, s, "Property display:")
	assert.Contains(t, s, "td { display: table-cell }")
	assert.Contains(t, s, "head { display: none }")
}

func TestScanFileGraph(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "styleres.cli")
	defer teardown()
	//
	fname := writePage(t)
	dot := filepath.Join(t.TempDir(), "page.dot")
	var out bytes.Buffer
	err := scanFile(options{medium: "all", dot: dot}, fname, &out)
	require.NoError(t, err)
	data, err := os.ReadFile(dot)
	require.NoError(t, err)
	assert.Contains(t, string(data), "digraph g {")
	assert.Contains(t, string(data), "Table")
	//
	err = scanFile(options{medium: "all"}, filepath.Join(t.TempDir(), "missing.html"), &out)
	assert.Error(t, err)
}
