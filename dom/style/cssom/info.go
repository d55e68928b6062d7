package cssom

import (
	"fmt"
	"strings"
)

// Origin is the cascade origin of a style source.
type Origin uint8

// Cascade origins, in ascending order of precedence for normal declarations.
const (
	UserAgent Origin = iota
	User
	Author
)

func (o Origin) String() string {
	switch o {
	case UserAgent:
		return "user-agent"
	case User:
		return "user"
	case Author:
		return "author"
	}
	return fmt.Sprintf("origin(%d)", o)
}

// Defaults for stylesheet descriptors.
const (
	DefaultMedia = "all"
	DefaultType  = "text/css"
)

// StylesheetInfo describes a stylesheet participating in the cascade: either
// a reference to a stylesheet by URI or the CSS text of an embedded sheet.
// StylesheetInfos are immutable.
type StylesheetInfo struct {
	origin  Origin
	media   string
	typ     string
	uri     string
	content string
	title   string
	sheet   StyleSheet
}

// SheetOption configures a StylesheetInfo.
type SheetOption func(*StylesheetInfo)

// Media sets the media list of a stylesheet. An empty list means "all".
func Media(media string) SheetOption {
	return func(info *StylesheetInfo) {
		info.media = strings.TrimSpace(media)
	}
}

// Type sets the content type of a stylesheet.
func Type(typ string) SheetOption {
	return func(info *StylesheetInfo) {
		info.typ = strings.TrimSpace(typ)
	}
}

// Title sets the title of a stylesheet.
func Title(title string) SheetOption {
	return func(info *StylesheetInfo) {
		info.title = title
	}
}

// Parsed attaches the parsed representation of a stylesheet.
func Parsed(sheet StyleSheet) SheetOption {
	return func(info *StylesheetInfo) {
		info.sheet = sheet
	}
}

// NewLinked creates a descriptor for a stylesheet referenced by URI.
func NewLinked(origin Origin, uri string, opts ...SheetOption) *StylesheetInfo {
	info := &StylesheetInfo{origin: origin, uri: uri}
	return info.apply(opts)
}

// NewEmbedded creates a descriptor for a stylesheet given as CSS text.
func NewEmbedded(origin Origin, content string, opts ...SheetOption) *StylesheetInfo {
	info := &StylesheetInfo{origin: origin, content: content}
	return info.apply(opts)
}

func (info *StylesheetInfo) apply(opts []SheetOption) *StylesheetInfo {
	for _, opt := range opts {
		opt(info)
	}
	if info.media == "" {
		info.media = DefaultMedia
	}
	return info
}

// Origin returns the cascade origin.
func (info *StylesheetInfo) Origin() Origin { return info.origin }

// Media returns the media list as written, e.g. "screen, print".
func (info *StylesheetInfo) Media() string { return info.media }

// Type returns the content type. Embedded sheets may have an empty type.
func (info *StylesheetInfo) Type() string { return info.typ }

// URI returns the location of a linked stylesheet.
func (info *StylesheetInfo) URI() string { return info.uri }

// Content returns the CSS text of an embedded stylesheet.
func (info *StylesheetInfo) Content() string { return info.content }

// Title returns the stylesheet title.
func (info *StylesheetInfo) Title() string { return info.title }

// IsInline is true for stylesheets carrying their CSS text.
func (info *StylesheetInfo) IsInline() bool { return info.content != "" }

// Sheet returns the parsed stylesheet, if one has been attached.
func (info *StylesheetInfo) Sheet() StyleSheet { return info.sheet }

// AppliesTo is true if the stylesheet applies to medium, i.e. if its media
// list contains medium or "all".
func (info *StylesheetInfo) AppliesTo(medium string) bool {
	medium = strings.ToLower(strings.TrimSpace(medium))
	for _, m := range strings.Split(info.media, ",") {
		m = strings.ToLower(strings.TrimSpace(m))
		if m == DefaultMedia || m == medium {
			return true
		}
	}
	return false
}

func (info *StylesheetInfo) String() string {
	src := info.uri
	if info.IsInline() {
		src = fmt.Sprintf("<%d bytes inline>", len(info.content))
	}
	return fmt.Sprintf("[%s %s media=%q type=%q title=%q]", info.origin, src,
		info.media, info.typ, info.title)
}
