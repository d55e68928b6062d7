package ident

// std is the builder for the process-wide registry. It is used during package
// initialization only and frozen by init(); nothing interns into it afterwards.
var std = NewBuilder()

// Intrinsic CSS keywords. Downstream code compares against these tokens with ==.
var (
	Absolute             = std.Intern("absolute")
	Always               = std.Intern("always")
	Armenian             = std.Intern("armenian")
	Auto                 = std.Intern("auto")
	Avoid                = std.Intern("avoid")
	Baseline             = std.Intern("baseline")
	Blink                = std.Intern("blink")
	Block                = std.Intern("block")
	Bold                 = std.Intern("bold")
	Bolder               = std.Intern("bolder")
	BorderBox            = std.Intern("border-box")
	Both                 = std.Intern("both")
	Bottom               = std.Intern("bottom")
	Capitalize           = std.Intern("capitalize")
	Center               = std.Intern("center")
	Circle               = std.Intern("circle")
	CJKIdeographic       = std.Intern("cjk-ideographic")
	CloseQuote           = std.Intern("close-quote")
	Collapse             = std.Intern("collapse")
	Compact              = std.Intern("compact")
	Contain              = std.Intern("contain")
	ContentBox           = std.Intern("content-box")
	Cover                = std.Intern("cover")
	Create               = std.Intern("create")
	Dashed               = std.Intern("dashed")
	Decimal              = std.Intern("decimal")
	DecimalLeadingZero   = std.Intern("decimal-leading-zero")
	Disc                 = std.Intern("disc")
	Dotted               = std.Intern("dotted")
	Double               = std.Intern("double")
	Dynamic              = std.Intern("dynamic")
	Fixed                = std.Intern("fixed")
	FontWeight100        = std.Intern("100")
	FontWeight200        = std.Intern("200")
	FontWeight300        = std.Intern("300")
	FontWeight400        = std.Intern("400")
	FontWeight500        = std.Intern("500")
	FontWeight600        = std.Intern("600")
	FontWeight700        = std.Intern("700")
	FontWeight800        = std.Intern("800")
	FontWeight900        = std.Intern("900")
	FSContentPlaceholder = std.Intern("-fs-content-placeholder")
	FSInitialValue       = std.Intern("-fs-initial-value")
	Georgian             = std.Intern("georgian")
	Groove               = std.Intern("groove")
	Hebrew               = std.Intern("hebrew")
	Hidden               = std.Intern("hidden")
	Hide                 = std.Intern("hide")
	Hiragana             = std.Intern("hiragana")
	HiraganaIroha        = std.Intern("hiragana-iroha")
	Inherit              = std.Intern("inherit")
	Inline               = std.Intern("inline")
	InlineBlock          = std.Intern("inline-block")
	InlineTable          = std.Intern("inline-table")
	Inset                = std.Intern("inset")
	Inside               = std.Intern("inside")
	Italic               = std.Intern("italic")
	Justify              = std.Intern("justify")
	Katakana             = std.Intern("katakana")
	KatakanaIroha        = std.Intern("katakana-iroha")
	Keep                 = std.Intern("keep")
	Landscape            = std.Intern("landscape")
	Left                 = std.Intern("left")
	Lighter              = std.Intern("lighter")
	Line                 = std.Intern("line")
	LineThrough          = std.Intern("line-through")
	ListItem             = std.Intern("list-item")
	LowerAlpha           = std.Intern("lower-alpha")
	LowerGreek           = std.Intern("lower-greek")
	LowerLatin           = std.Intern("lower-latin")
	LowerRoman           = std.Intern("lower-roman")
	Lowercase            = std.Intern("lowercase")
	LTR                  = std.Intern("ltr")
	Marker               = std.Intern("marker")
	Middle               = std.Intern("middle")
	NoCloseQuote         = std.Intern("no-close-quote")
	NoOpenQuote          = std.Intern("no-open-quote")
	NoRepeat             = std.Intern("no-repeat")
	None                 = std.Intern("none")
	Normal               = std.Intern("normal")
	Nowrap               = std.Intern("nowrap")
	BreakWord            = std.Intern("break-word")
	Oblique              = std.Intern("oblique")
	OpenQuote            = std.Intern("open-quote")
	Outset               = std.Intern("outset")
	Outside              = std.Intern("outside")
	Overline             = std.Intern("overline")
	Paginate             = std.Intern("paginate")
	Pointer              = std.Intern("pointer")
	Portrait             = std.Intern("portrait")
	Pre                  = std.Intern("pre")
	PreLine              = std.Intern("pre-line")
	PreWrap              = std.Intern("pre-wrap")
	Relative             = std.Intern("relative")
	Repeat               = std.Intern("repeat")
	RepeatX              = std.Intern("repeat-x")
	RepeatY              = std.Intern("repeat-y")
	Ridge                = std.Intern("ridge")
	Right                = std.Intern("right")
	RunIn                = std.Intern("run-in")
	Scroll               = std.Intern("scroll")
	Separate             = std.Intern("separate")
	Show                 = std.Intern("show")
	SmallCaps            = std.Intern("small-caps")
	Solid                = std.Intern("solid")
	Square               = std.Intern("square")
	Static               = std.Intern("static")
	Sub                  = std.Intern("sub")
	Super                = std.Intern("super")
	Table                = std.Intern("table")
	TableCaption         = std.Intern("table-caption")
	TableCell            = std.Intern("table-cell")
	TableColumn          = std.Intern("table-column")
	TableColumnGroup     = std.Intern("table-column-group")
	TableFooterGroup     = std.Intern("table-footer-group")
	TableHeaderGroup     = std.Intern("table-header-group")
	TableRow             = std.Intern("table-row")
	TableRowGroup        = std.Intern("table-row-group")
	TextBottom           = std.Intern("text-bottom")
	TextTop              = std.Intern("text-top")
	Thick                = std.Intern("thick")
	Thin                 = std.Intern("thin")
	Top                  = std.Intern("top")
	Transparent          = std.Intern("transparent")
	Underline            = std.Intern("underline")
	UpperAlpha           = std.Intern("upper-alpha")
	UpperLatin           = std.Intern("upper-latin")
	UpperRoman           = std.Intern("upper-roman")
	Uppercase            = std.Intern("uppercase")
	Visible              = std.Intern("visible")
	Crosshair            = std.Intern("crosshair")
	Default              = std.Intern("default")
	Embed                = std.Intern("embed")
	EResize              = std.Intern("e-resize")
	Help                 = std.Intern("help")
	Large                = std.Intern("large")
	Larger               = std.Intern("larger")
	Medium               = std.Intern("medium")
	Move                 = std.Intern("move")
	NResize              = std.Intern("n-resize")
	NEResize             = std.Intern("ne-resize")
	NWResize             = std.Intern("nw-resize")
	Progress             = std.Intern("progress")
	SResize              = std.Intern("s-resize")
	SEResize             = std.Intern("se-resize")
	Small                = std.Intern("small")
	Smaller              = std.Intern("smaller")
	Start                = std.Intern("start")
	SWResize             = std.Intern("sw-resize")
	Text                 = std.Intern("text")
	WResize              = std.Intern("w-resize")
	Wait                 = std.Intern("wait")
	XLarge               = std.Intern("x-large")
	XSmall               = std.Intern("x-small")
	XXLarge              = std.Intern("xx-large")
	XXSmall              = std.Intern("xx-small")
	Manual               = std.Intern("manual")
	Initial              = std.Intern("initial")
)

var standard *Registry

func init() {
	standard = std.Freeze()
	std = nil
}
