package css

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/npillmayer/styleres/css/ident"
	"github.com/npillmayer/styleres/css/value"
)

// DisplayMode is a type for CSS property "display".
//
type DisplayMode uint16

// Flags for box context and display mode (outer and inner).
const (
	NoMode          DisplayMode = iota   // unset or error condition
	DisplayNone     DisplayMode = 0x0001 // CSS outer display = none
	BlockMode       DisplayMode = 0x0002 // CSS block context (inner or outer)
	InlineMode      DisplayMode = 0x0004 // CSS inline context
	FlowRootMode    DisplayMode = 0x0010 // CSS flow-root display property
	ListItemMode    DisplayMode = 0x0020 // CSS list-item display
	FlexMode        DisplayMode = 0x0040 // CSS inner display = flex
	GridMode        DisplayMode = 0x0080 // CSS inner display = grid
	TableMode       DisplayMode = 0x0100 // CSS table display property (inner or outer)
	InnerBlockMode  DisplayMode = 0x0200 // CSS inner block mode (inline-block)
	InnerInlineMode DisplayMode = 0x0400 // CSS inner inline mode (paragraphs)
)

var allDisplayModes = []DisplayMode{
	DisplayNone, BlockMode, InlineMode, ListItemMode, FlowRootMode, FlexMode,
	GridMode, TableMode, InnerBlockMode, InnerInlineMode,
}

// Outer returns outer mode
func (disp DisplayMode) Outer() DisplayMode {
	return disp & 0x000f
}

// Inner returns inner mode
func (disp DisplayMode) Inner() DisplayMode {
	return disp & 0xfff0
}

// IsBlockLevel return true if it has outer display level of BlockMode.
//
// A block-level element is defined as (from CSS 2.1):
// Block-level elements are those elements of the source document that are formatted visually
// as blocks (e.g., paragraphs). The following values of the 'display' property make an element
// block-level: 'block', 'list-item', and 'table'.
//
func (disp DisplayMode) IsBlockLevel() bool {
	return disp&0x000f == BlockMode
}

/*
func (disp DisplayMode) BlockOrInline() DisplayMode {
	if disp.Overlaps(InlineMode) {
		return InlineMode
	}
	return BlockMode
}
*/

// Set sets a given atomic mode within this display mode.
func (disp *DisplayMode) Set(d DisplayMode) {
	*disp = (*disp) | d
}

// Contains checks if a display mode contains a given atomic mode.
// Returns false for d = NoMode.
func (disp DisplayMode) Contains(d DisplayMode) bool {
	return d != NoMode && (disp&d > 0)
}

// Overlaps returns true if a given display mode shares at least one atomic
// mode flag with disp (excluding NoMode).
func (disp DisplayMode) Overlaps(d DisplayMode) bool {
	for _, m := range allDisplayModes {
		if disp.Contains(m) && d.Contains(m) {
			return true
		}
	}
	return false
}

// FullString returns all atomic modes set in a display mode.
func (disp DisplayMode) FullString() string {
	var b bytes.Buffer
	first := true
	for _, m := range allDisplayModes {
		if disp.Contains(m) {
			if !first {
				b.WriteString(" ")
			}
			first = false
			b.WriteString(m.String())
		}
	}
	return b.String()
}

// Symbol returns a Unicode symbol for a mode.
func (disp DisplayMode) Symbol() string {
	//if disp == FlowMode {
	//return "\u25a7"
	//} else
	if disp.Contains(BlockMode) || disp.Contains(InnerBlockMode) {
		return "\u25a9"
	} else if disp.Contains(InlineMode) || disp.Contains(InnerInlineMode) {
		return "\u25ba"
	} else if disp.Contains(FlexMode) {
		return "\u25a4"
	} else if disp.Contains(GridMode) {
		return "\u25f0"
	} else if disp.Contains(ListItemMode) {
		return "\u25a3"
	} else if disp.Contains(TableMode) {
		return "\u25a5"
	} else if disp == NoMode {
		return "\u2013"
	}
	return "?"
}

var modeNames = map[DisplayMode]string{
	NoMode:          "NoMode",
	DisplayNone:     "DisplayNone",
	BlockMode:       "BlockMode",
	InlineMode:      "InlineMode",
	FlowRootMode:    "FlowRootMode",
	ListItemMode:    "ListItemMode",
	FlexMode:        "FlexMode",
	GridMode:        "GridMode",
	TableMode:       "TableMode",
	InnerBlockMode:  "InnerBlockMode",
	InnerInlineMode: "InnerInlineMode",
}

func (disp DisplayMode) String() string {
	if name, ok := modeNames[disp]; ok {
		return name
	}
	return fmt.Sprintf("DisplayMode(0x%04x)", uint16(disp))
}

// displayModes maps display keywords to mode flags (outer and inner).
// Internal table display types are treated as block boxes in table context.
var displayModes = map[*ident.Ident]DisplayMode{
	ident.None:             DisplayNone,
	ident.Block:            BlockMode | InnerBlockMode,
	ident.Inline:           InlineMode | InnerInlineMode,
	ident.ListItem:         ListItemMode | BlockMode,
	ident.InlineBlock:      InlineMode | InnerBlockMode,
	ident.RunIn:            InlineMode | InnerInlineMode,
	ident.Table:            BlockMode | TableMode,
	ident.InlineTable:      InlineMode | TableMode,
	ident.TableCaption:     BlockMode | TableMode,
	ident.TableCell:        BlockMode | TableMode,
	ident.TableColumn:      BlockMode | TableMode,
	ident.TableColumnGroup: BlockMode | TableMode,
	ident.TableFooterGroup: BlockMode | TableMode,
	ident.TableHeaderGroup: BlockMode | TableMode,
	ident.TableRow:         BlockMode | TableMode,
	ident.TableRowGroup:    BlockMode | TableMode,
}

// DisplayFromIdent returns mode flags for a display keyword token.
func DisplayFromIdent(id *ident.Ident) (DisplayMode, error) {
	if id == nil {
		return NoMode, nil
	}
	if mode, ok := displayModes[id]; ok {
		return mode, nil
	}
	return BlockMode, fmt.Errorf("unknown display mode: %s", id)
}

// ParseDisplay returns mode flags from a display property string (outer and inner).
// Unknown display modes are reported as an error, together with BlockMode.
func ParseDisplay(display string) (DisplayMode, error) {
	if strings.TrimSpace(display) == "" {
		return NoMode, nil
	}
	v, err := value.ParseValue(display)
	if err != nil {
		return BlockMode, fmt.Errorf("unknown display mode: %s", display)
	}
	var id *ident.Ident
	switch m := v.Ident(nil).Match(); m {
	case m.Just(&id):
		tracer().Debugf("display keyword %s has id %d", id, id.ID())
		return DisplayFromIdent(id)
	}
	return BlockMode, fmt.Errorf("unknown display mode: %s", display)
}
