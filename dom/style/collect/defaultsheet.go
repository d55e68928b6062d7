package collect

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/npillmayer/schuko"
	"github.com/npillmayer/schuko/gconf"

	"github.com/npillmayer/styleres/dom/style/cssom"
	"github.com/npillmayer/styleres/maybe"
	"github.com/npillmayer/styleres/resource"
)

// Configuration key for the location of the user-agent default stylesheet.
const DefaultSheetKey = "css.user-agent-default-css"

// DefaultSheetName is the file name of the user-agent default stylesheet
// within the configured directory.
const DefaultSheetName = "XhtmlNamespaceHandler.css"

// XHTMLNamespace is the URI of the user-agent default stylesheet descriptor.
const XHTMLNamespace = "http://www.w3.org/1999/xhtml"

// ErrNoDefaultSheet is reported if no location for the user-agent default
// stylesheet is configured.
var ErrNoDefaultSheet = errors.New("no user-agent default stylesheet configured")

// Loader opens a stylesheet resource.
type Loader func(path string) (io.ReadCloser, error)

// FileLoader opens files of the local file system.
func FileLoader(path string) (io.ReadCloser, error) {
	return os.Open(path)
}

type sheetState uint8

const (
	unresolved sheetState = iota
	resolved
	failed
)

// DefaultSheetCache holds the user-agent default stylesheet. It is resolved
// on first request and never again, whether loading succeeded or not.
type DefaultSheetCache struct {
	mu     sync.Mutex
	state  sheetState
	info   *cssom.StylesheetInfo
	conf   schuko.Configuration
	loader Loader
}

// DefaultSheets is the process-wide cache, configured from the global
// configuration (package gconf).
var DefaultSheets = NewDefaultSheetCache(nil, nil)

// NewDefaultSheetCache creates a cache. If conf is nil, the global
// configuration is used. If loader is nil, stylesheets are read from the
// file system.
func NewDefaultSheetCache(conf schuko.Configuration, loader Loader) *DefaultSheetCache {
	if loader == nil {
		loader = FileLoader
	}
	return &DefaultSheetCache{conf: conf, loader: loader}
}

// Get returns the user-agent default stylesheet, loading and parsing it with
// p on first call. The descriptor is shared by every caller and its sheet is
// a read-only view (see cssom.ReadOnly). If loading fails, a single error is traced and Nothing is
// returned for this and every subsequent call.
func (cache *DefaultSheetCache) Get(p cssom.Parser) maybe.Maybe[*cssom.StylesheetInfo] {
	cache.mu.Lock()
	defer cache.mu.Unlock()
	if cache.state == unresolved {
		path := cache.location()
		info, err := cache.load(path, p)
		if err != nil {
			tracer().P("path", path).Errorf("cannot load user-agent default stylesheet: %v", err)
			cache.state = failed
		} else {
			cache.info = info
			cache.state = resolved
		}
	}
	return maybe.Of(cache.info, cache.state == resolved)
}

// Reset forgets the cached state. It is intended for tests.
func (cache *DefaultSheetCache) Reset() {
	cache.mu.Lock()
	defer cache.mu.Unlock()
	cache.state = unresolved
	cache.info = nil
}

func (cache *DefaultSheetCache) location() string {
	var loc string
	if cache.conf != nil {
		loc = cache.conf.GetString(DefaultSheetKey)
	} else {
		loc = gconf.GetString(DefaultSheetKey)
	}
	loc = strings.TrimSpace(loc)
	if loc == "" || strings.HasSuffix(strings.ToLower(loc), ".css") {
		return loc
	}
	return filepath.Join(loc, DefaultSheetName)
}

func (cache *DefaultSheetCache) load(path string, p cssom.Parser) (*cssom.StylesheetInfo, error) {
	if path == "" {
		return nil, ErrNoDefaultSheet
	}
	if p == nil {
		return nil, fmt.Errorf("no CSS parser given")
	}
	rc, err := cache.loader(path)
	if err != nil {
		return nil, err
	} else if rc == nil {
		return nil, fmt.Errorf("no input for %s", path)
	}
	res := resource.New(rc)
	defer res.Close()
	sheet, err := p.ParseStylesheet(res.Reader())
	if err != nil {
		return nil, err
	}
	tracer().P("path", path).Debugf("user-agent default stylesheet loaded in %s", res.Loaded())
	return cssom.NewLinked(cssom.UserAgent, XHTMLNamespace,
		cssom.Type(cssom.DefaultType), cssom.Parsed(cssom.ReadOnly(sheet))), nil
}
