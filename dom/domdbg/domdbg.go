/*
Package domdbg implements helpers to debug a DOM tree and the style sources
found for it.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>


*/
package domdbg

import (
	"fmt"
	"io"
	"strings"
	"text/template"

	tp "github.com/xlab/treeprint"

	"github.com/npillmayer/styleres/dom"
	"github.com/npillmayer/styleres/dom/style"
	"github.com/npillmayer/styleres/dom/style/cssom"
	"github.com/npillmayer/styleres/dom/w3cdom"
)

// StyleFunc returns the style properties of a DOM node, e.g.
// collect.Collector.ElementProperties. It may return nil.
type StyleFunc func(w3cdom.Node) (*style.PropertyMap, error)

// Parameters for GraphViz drawing.
type graphParamsType struct {
	Fontname       string
	StyleGroups    []string
	Styles         StyleFunc
	NodeTmpl       *template.Template
	EdgeTmpl       *template.Template
	StylegroupTmpl *template.Template
	PgedgeTmpl     *template.Template
	PgpgTmpl       *template.Template
	count          int
}

var defaultGroups = []string{
	style.PGMargins,
	style.PGPadding,
	style.PGBorder,
	style.PGDimension,
	style.PGTable,
}

// ToGraphViz outputs a diagram for a DOM tree. The diagram is in
// GraphViz (DOT) format. Clients have to provide the root node of
// the DOM, a Writer, a function to get the styles of a node and an
// optional list of style parameter groups. The diagram will include all
// styles belonging to one of the parameter groups.
//
// If the client does not provide a list of style groups, the following
// default will be used:
//
//     - Margins
//     - Padding
//     - Border
//     - Dimension
//     - Table
//
func ToGraphViz(doc w3cdom.Node, w io.Writer, styles StyleFunc, styleGroups []string) error {
	tmpl, err := template.New("dom").Parse(graphHeadTmpl)
	if err != nil {
		return err
	}
	gparams := graphParamsType{Fontname: "Helvetica", Styles: styles}
	gparams.NodeTmpl = template.Must(template.New("domnode").Funcs(
		template.FuncMap{
			"shortstring": shortText,
		}).Parse(domNodeTmpl))
	gparams.EdgeTmpl = template.Must(template.New("domedge").Parse(domEdgeTmpl))
	gparams.StylegroupTmpl = template.Must(template.New("stylegroup").Parse(styleGroupTmpl))
	gparams.PgedgeTmpl = template.Must(template.New("pgedge").Parse(pgEdgeTmpl))
	gparams.PgpgTmpl = template.Must(template.New("pgpgedge").Parse(pgpgEdgeTmpl))
	gparams.StyleGroups = styleGroups
	if styleGroups == nil {
		gparams.StyleGroups = defaultGroups
	}
	if err = tmpl.Execute(w, gparams); err != nil {
		return err
	}
	if doc != nil {
		if _, err = nodes(doc, w, &gparams); err != nil {
			return err
		}
	}
	_, err = w.Write([]byte("}\n"))
	return err
}

type node struct {
	N    w3cdom.Node
	Name string
}

// nodes writes n and its sub-tree and returns the node name of n.
func nodes(n w3cdom.Node, w io.Writer, gparams *graphParamsType) (string, error) {
	name, err := domNode(n, w, gparams)
	if err != nil {
		return "", err
	}
	for ch := n.FirstChild(); ch != nil; ch = ch.NextSibling() {
		chname, err := nodes(ch, w, gparams)
		if err != nil {
			return "", err
		}
		e := edge{node{n, name}, node{ch, chname}}
		if err := gparams.EdgeTmpl.Execute(w, e); err != nil {
			return "", err
		}
	}
	return name, nil
}

func domNode(n w3cdom.Node, w io.Writer, gparams *graphParamsType) (string, error) {
	gparams.count++
	name := fmt.Sprintf("node%05d", gparams.count)
	if err := gparams.NodeTmpl.Execute(w, &node{n, name}); err != nil {
		return "", err
	}
	return name, domStyles(n, name, w, gparams)
}

func domStyles(n w3cdom.Node, name string, w io.Writer, gparams *graphParamsType) error {
	if gparams.Styles == nil {
		return nil
	}
	pmap, err := gparams.Styles(n)
	if err != nil || pmap == nil {
		return nil // unstylable nodes are drawn without styles
	}
	var prev *style.PropertyGroup
	for _, s := range gparams.StyleGroups {
		pg := pmap.Group(s)
		if pg == nil {
			continue
		}
		if err := gparams.StylegroupTmpl.Execute(w, pg); err != nil {
			return err
		}
		if prev == nil {
			err = gparams.PgedgeTmpl.Execute(w, pgedge{name, pg})
		} else {
			err = gparams.PgpgTmpl.Execute(w, []*style.PropertyGroup{prev, pg})
		}
		if err != nil {
			return err
		}
		prev = pg
	}
	return nil
}

type edge struct {
	N1, N2 node
}

type pgedge struct {
	Name      string
	PropGroup *style.PropertyGroup
}

func shortText(n w3cdom.Node) string {
	text := n.NodeValue()
	s := "\"\\\""
	if len(text) > 10 {
		s += text[:10] + "...\\\"\""
	} else {
		s += text + "\\\"\""
	}
	s = strings.Replace(s, "\n", `\\n`, -1)
	s = strings.Replace(s, "\t", `\\t`, -1)
	s = strings.Replace(s, " ", "\u2423", -1)
	return s
}

// --- Tree printing ----------------------------------------------------

// PrintTree returns an indented tree of the elements below n. If styles is
// given, the non-empty styling of each element is printed along with it.
func PrintTree(n w3cdom.Node, styles func(w3cdom.Node) string) string {
	p := tp.New()
	ppt(p, n, styles)
	return p.String()
}

func ppt(p tp.Tree, n w3cdom.Node, styles func(w3cdom.Node) string) {
	for ch := n.FirstChild(); ch != nil; ch = ch.NextSibling() {
		if !dom.NodeIsElement(ch) {
			continue
		}
		label := ch.NodeName()
		if styles != nil {
			if s := styles(ch); s != "" {
				label = fmt.Sprintf("%s { %s }", label, s)
			}
		}
		if ch.Children().Length() == 0 {
			p.AddNode(label)
			continue
		}
		ppt(p.AddBranch(label), ch, styles)
	}
}

// PrintStylesheets returns a tree of style sources, grouped by origin.
func PrintStylesheets(infos []*cssom.StylesheetInfo) string {
	p := tp.New()
	branches := make(map[cssom.Origin]tp.Tree)
	for _, info := range infos {
		b, ok := branches[info.Origin()]
		if !ok {
			b = p.AddBranch(info.Origin().String())
			branches[info.Origin()] = b
		}
		src := info.URI()
		if info.IsInline() {
			src = shorten(info.Content(), 30)
		}
		b.AddMetaNode(info.Media(), src)
	}
	return p.String()
}

func shorten(s string, n int) string {
	s = strings.Join(strings.Fields(s), " ")
	if len(s) > n {
		return s[:n] + "…"
	}
	return s
}

// --- Templates --------------------------------------------------------

const graphHeadTmpl = `digraph g {                                                                                                             
  graph [labelloc="t" label="" splines=true overlap=false rankdir = "LR"];
  graph [{{ .Fontname }} = "helvetica" fontsize=14] ;
   node [fontname = "{{ .Fontname }}" fontsize=14] ;
   edge [fontname = "{{ .Fontname }}" fontsize=14] ;
`

const domNodeTmpl = `{{ if eq .N.NodeName "#text" }}
{{ .Name }}	[ label={{ shortstring .N }} shape=box style=filled fillcolor=grey95 fontname="Courier" fontsize=11.0 ] ;
{{ else }}
{{ .Name }}	[ label={{ printf "%q" .N.NodeName }} shape=ellipse style=filled fillcolor=lightblue3 ] ;
{{ end }}
`

const styleGroupTmpl = `{{ printf "pg%p" . }} [ style="filled" penwidth=1 fillcolor="ivory3" shape="Mrecord" fontsize=12
    label=<<table border="0" cellborder="0" cellpadding="2" cellspacing="0" bgcolor="ivory3">
      <tr><td bgcolor="azure4" align="center" colspan="2"><font color="white">{{ .Name }}</font></td></tr>
      {{ range .Properties }}
      <tr><td align="right">{{ .Key }}:</td><td>{{ .Value }}</td></tr>
      {{ else }}
      <tr><td colspan="2">no styles</td></tr>
      {{ end }}
    </table>> ] ;
`

//const domEdgeTmpl = `{{ .N1.Name }} -> {{ .N2.Name }} [dir=none weight=1] ;
const domEdgeTmpl = `{{ .N1.Name }} -> {{ .N2.Name }} [weight=1] ;
`

const pgEdgeTmpl = `{{ .Name }} -> {{ printf "pg%p" .PropGroup }} [dir=none weight=1 style="dashed"] ;
`

const pgpgEdgeTmpl = `{{ index . 0 | printf "pg%p"  }} -> {{ index . 1 | printf "pg%p" }} [dir=none weight=1 style="dashed"] ;
`
