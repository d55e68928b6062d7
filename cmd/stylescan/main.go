// stylescan reads HTML documents and lists the style sources which take part
// in styling them: the user agent default stylesheet, stylesheets linked or
// embedded in the document head, and the per-element declarations
// synthesized from presentational attributes.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"sort"
	"syscall"

	"github.com/npillmayer/schuko/gconf"
	"github.com/npillmayer/schuko/tracing"
	cli "github.com/urfave/cli/v3"
	"go.uber.org/multierr"

	"github.com/npillmayer/styleres/config/yamlconf"
	"github.com/npillmayer/styleres/dom/domdbg"
	"github.com/npillmayer/styleres/dom/htmladapter"
	"github.com/npillmayer/styleres/dom/style/collect"
	"github.com/npillmayer/styleres/dom/style/css"
	"github.com/npillmayer/styleres/dom/style/cssom"
	"github.com/npillmayer/styleres/dom/w3cdom"
	"github.com/npillmayer/styleres/tracing/zapadapter"
)

func tracer() tracing.Trace {
	return tracing.Select("styleres.cli")
}

// initialize loads the configuration and sets up tracing before any
// document is read.
func initialize(ctx context.Context, cmd *cli.Command) (context.Context, error) {
	var conf *yamlconf.Conf
	if configFile := cmd.String("config"); configFile != "" {
		var err error
		if conf, err = yamlconf.LoadFile(configFile); err != nil {
			return ctx, fmt.Errorf("unable to prepare configuration: %w", err)
		}
	} else {
		conf = &yamlconf.Conf{}
	}
	if ua := cmd.String("user-agent-css"); ua != "" {
		conf.Set(collect.DefaultSheetKey, ua)
	}
	if cmd.Bool("debug") {
		conf.Set("tracing.adapter", "zap")
		conf.Set("tracing.level", "Debug")
	}
	tracing.RegisterTraceAdapter("zap", zapadapter.GetAdapter(), false)
	gconf.Initialize(conf)
	adapter := tracing.GetAdapterFromConfiguration(conf, "")
	tracing.SetTraceSelector(tracing.SelectorForAdapter(adapter))
	tracer().SetTraceLevel(tracing.TraceLevelFromString(conf.GetString("tracing.level")))
	tracer().P("adapter", conf.GetString("tracing.adapter")).Infof("tracing initialized")
	return ctx, nil
}

func scan(ctx context.Context, cmd *cli.Command) (err error) {
	if cmd.NArg() == 0 {
		return fmt.Errorf("no input documents")
	}
	opts := options{
		medium: cmd.String("media"),
		tree:   cmd.Bool("tree"),
		dot:    cmd.String("dot"),
		key:    cmd.String("property"),
	}
	for _, fname := range cmd.Args().Slice() {
		if e := scanFile(opts, fname, os.Stdout); e != nil {
			tracer().P("file", fname).Errorf("%v", e)
			err = multierr.Append(err, e)
		}
	}
	return
}

type options struct {
	medium string // list only stylesheets for this medium
	tree   bool   // print the element tree
	dot    string // GraphViz output file
	key    string // property to resolve for every element of the tree
}

func scanFile(opts options, fname string, out io.Writer) error {
	f, err := os.Open(fname)
	if err != nil {
		return fmt.Errorf("unable to open document: %w", err)
	}
	defer f.Close()
	doc, err := htmladapter.Parse(f)
	if err != nil {
		return fmt.Errorf("unable to parse document %s: %w", fname, err)
	}
	c := collect.New(doc)
	fmt.Fprintf(out, "Document %s\n", fname)
	fmt.Fprintf(out, "  title: %q\n", c.Title())
	if root := doc.DocumentElement(); root != nil {
		fmt.Fprintf(out, "  lang:  %q\n", c.Lang(root))
	}
	meta := c.Metadata()
	keys := make([]string, 0, len(meta))
	for k := range meta {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(out, "  meta %s = %q\n", k, meta[k])
	}
	var sheets []*cssom.StylesheetInfo
	var ua *cssom.StylesheetInfo
	switch m := c.DefaultStylesheet().Match(); m {
	case m.Just(&ua):
		sheets = append(sheets, ua)
	case m.Nothing():
		tracer().Infof("no user agent stylesheet")
	}
	for _, info := range c.Stylesheets() {
		if opts.medium == cssom.DefaultMedia || info.AppliesTo(opts.medium) {
			sheets = append(sheets, info)
		}
	}
	fmt.Fprintf(out, "Stylesheets for media %q:\n%s", opts.medium, domdbg.PrintStylesheets(sheets))
	if opts.tree {
		fmt.Fprintf(out, "Element styling:\n%s", domdbg.PrintTree(doc, c.ElementStyling))
	}
	if opts.key != "" {
		resolve := func(n w3cdom.Node) string {
			p, err := css.GetProperty(n, opts.key, c.ElementProperties)
			if err != nil {
				return err.Error()
			}
			return fmt.Sprintf("%s: %s", opts.key, p)
		}
		fmt.Fprintf(out, "Property %s:\n%s", opts.key, domdbg.PrintTree(doc, resolve))
	}
	if opts.dot != "" {
		return writeGraph(opts.dot, doc, c)
	}
	return nil
}

func writeGraph(fname string, doc w3cdom.Node, c *collect.Collector) error {
	f, err := os.Create(fname)
	if err != nil {
		return fmt.Errorf("unable to create destination file '%s': %w", fname, err)
	}
	err = domdbg.ToGraphViz(doc, f, c.ElementProperties, nil)
	return multierr.Append(err, f.Close())
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	app := &cli.Command{
		Name:      "stylescan",
		Usage:     "lists the style sources of HTML documents",
		ArgsUsage: "DOCUMENT...",
		Before:    initialize,
		Action:    scan,
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "config", Aliases: []string{"c"}, Usage: "load configuration from `FILE` (YAML)"},
			&cli.StringFlag{Name: "user-agent-css", Usage: "location of the user agent default stylesheet (`PATH`)"},
			&cli.StringFlag{Name: "media", Value: cssom.DefaultMedia, Usage: "list stylesheets for `MEDIUM` only"},
			&cli.BoolFlag{Name: "tree", Aliases: []string{"t"}, Usage: "print the element tree with synthesized declarations"},
			&cli.StringFlag{Name: "property", Aliases: []string{"p"}, Usage: "resolve property `KEY` for every element"},
			&cli.StringFlag{Name: "dot", Usage: "write a GraphViz diagram of the styled document to `FILE`"},
			&cli.BoolFlag{Name: "debug", Aliases: []string{"d"}, Usage: "trace to stderr"},
		},
	}

	var err error
	defer func() {
		stop()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Program ended with error: %v\n", err)
			os.Exit(1)
		}
	}()
	err = app.Run(ctx, os.Args)
}
