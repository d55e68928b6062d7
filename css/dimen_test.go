package css_test

import (
	"testing"

	"github.com/npillmayer/tyse/core/dimen"
	"github.com/npillmayer/tyse/core/percent"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/npillmayer/styleres/css"
	"github.com/npillmayer/styleres/css/value"
)

func TestDimenBasic(t *testing.T) {
	ten := css.JustDimen(dimen.PT * 10)
	var du dimen.DU
	switch m := ten.Match(); m {
	case m.Just(&du):
		t.Logf("du = %v", du)
	default:
		t.Errorf("expected Just(10pt) to be a fixed value, isn't: %#v", ten)
	}

	auto := css.Auto()
	switch m := auto.Match(); m {
	case m.Just(nil):
		t.Errorf("expected auto not to match a fixed value")
	case m.IsKind(css.Auto()):
		t.Logf("dimen is auto")
	default:
		t.Errorf("expected dimen auto to match auto, isn't: %#v", auto)
	}

	inherit := css.Inherit()
	if m := inherit.Match(); m.Just(nil) != nil {
		t.Errorf("expected inherit not to match a fixed value")
	}

	pcnt := css.Percentage(percent.FromInt(80))
	var p percent.Percent
	switch m := pcnt.Match(); m {
	case m.Percentage(&p):
		t.Logf("percent = %v", p)
	default:
		t.Errorf("expected Percentage(80) to be a percentage value, isn't: %#v", pcnt)
	}
}

func TestDimenPattern(t *testing.T) {
	ten := css.JustDimen(dimen.PT * 10)
	var du dimen.DU
	m := css.DimenPattern[int](ten)
	zehn := m.OneOf(css.DimenPatterns[int]{
		Just:    m.With(&du).Const(10),
		Auto:    0,
		Default: -1,
	})
	if zehn != 10 {
		t.Errorf("expected zehn == 10, isn't: %#v", zehn)
	}

	d := css.JustDimen(dimen.PT * 10)
	e := css.DimenPattern[dimen.DU](d)
	distance := e.OneOf(css.DimenPatterns[dimen.DU]{
		Just:    e.With(&du).Const(2 * du),
		Auto:    0,
		Default: -1,
	})
	if distance != 2*10*dimen.PT {
		t.Errorf("expected distance to be %v, isn't: %#v", 10*dimen.PT, distance)
	}
}

func TestFromValue(t *testing.T) {
	v, err := value.ParseValue("12pt")
	require.NoError(t, err)
	d, err := css.FromValue(v)
	require.NoError(t, err)
	var du dimen.DU
	require.NotNil(t, d.Match().Just(&du))
	assert.Equal(t, 12*dimen.PT, du)

	v, _ = value.ParseValue("AUTO")
	d, err = css.FromValue(v)
	require.NoError(t, err)
	assert.NotNil(t, d.Match().IsKind(css.Auto()))

	v, _ = value.ParseValue("50%")
	d, err = css.FromValue(v)
	require.NoError(t, err)
	var p percent.Percent
	require.NotNil(t, d.Match().Percentage(&p))
	assert.Equal(t, percent.FromInt(50), p)

	v, _ = value.ParseValue("1.5em")
	d, err = css.FromValue(v)
	require.NoError(t, err)
	var x float64
	require.NotNil(t, d.Match().Relative(value.UnitEM, &x))
	assert.Equal(t, 1.5, x)
	assert.Nil(t, d.Match().Relative(value.UnitVW, nil))

	v, _ = value.ParseValue("'text'")
	_, err = css.FromValue(v)
	assert.ErrorIs(t, err, value.ErrWrongKind)
}
