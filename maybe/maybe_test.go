package maybe_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	. "github.com/npillmayer/styleres/maybe"
)

func TestMaybeMatch(t *testing.T) {
	x := Just(7)
	y := Nothing[int]()

	var v int
	switch m := x.Match(); m {
	case m.Just(&v):
		t.Logf("Just(%d)", v)
	case m.Nothing():
		t.Error("expected Just(7) not to match Nothing")
	}
	assert.Equal(t, 7, v)

	var w int
	matchedNothing := false
	switch m := y.Match(); m {
	case m.Just(&w):
		t.Errorf("expected Nothing not to match Just, got %d", w)
	case m.Nothing():
		matchedNothing = true
	}
	assert.True(t, matchedNothing)
	assert.Equal(t, 0, w)
}

func TestMaybeOf(t *testing.T) {
	lookup := map[string]string{"lang": "fr"}
	v, ok := Of(lookup["lang"], true).Get()
	assert.True(t, ok)
	assert.Equal(t, "fr", v)

	_, found := lookup["dir"]
	assert.True(t, Of(lookup["dir"], found).IsNothing())
}

func TestMaybeWithDefault(t *testing.T) {
	assert.Equal(t, 7, Just(7).WithDefault(100))
	assert.Equal(t, 100, Nothing[int]().WithDefault(100))
}

func TestMaybeMapAndThen(t *testing.T) {
	double := func(n int) int { return n * 2 }
	assert.Equal(t, 14, Just(7).Map(double).WithDefault(0))
	assert.Equal(t, 20, Map(double, Just(10)).WithDefault(0))
	assert.True(t, Nothing[int]().Map(double).IsNothing())

	positive := func(n int) Maybe[bool] {
		if n > 0 {
			return Just(true)
		}
		return Nothing[bool]()
	}
	assert.True(t, AndThen(positive, Just(7)).WithDefault(false))
	assert.True(t, AndThen(positive, Just(-1)).IsNothing())
	assert.True(t, AndThen(positive, Nothing[int]()).IsNothing())
}
