package css_test

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"

	"github.com/npillmayer/styleres/css/ident"
	"github.com/npillmayer/styleres/dom/style/css"
)

func TestParseDisplay(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "styleres.dom")
	defer teardown()
	//
	for input, want := range map[string]css.DisplayMode{
		"":             css.NoMode,
		"none":         css.DisplayNone,
		"Block":        css.BlockMode | css.InnerBlockMode,
		" inline ":     css.InlineMode | css.InnerInlineMode,
		"inline-block": css.InlineMode | css.InnerBlockMode,
		"table-cell":   css.BlockMode | css.TableMode,
	} {
		mode, err := css.ParseDisplay(input)
		assert.NoError(t, err, input)
		assert.Equal(t, want, mode, input)
	}
	mode, err := css.ParseDisplay("wobbly")
	assert.Error(t, err)
	assert.Equal(t, css.BlockMode, mode)
	_, err = css.ParseDisplay("12px")
	assert.Error(t, err)
}

func TestDisplayFromIdent(t *testing.T) {
	mode, err := css.DisplayFromIdent(ident.ListItem)
	assert.NoError(t, err)
	assert.True(t, mode.IsBlockLevel())
	assert.True(t, mode.Contains(css.ListItemMode))
	_, err = css.DisplayFromIdent(ident.Auto)
	assert.Error(t, err)
	mode, _ = css.DisplayFromIdent(ident.InlineTable)
	assert.Equal(t, "InlineMode TableMode", mode.FullString())
	assert.Equal(t, "►", mode.Symbol())
}
