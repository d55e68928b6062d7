package ident

import (
	"errors"
	"sync"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStandardIdentity(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "styleres.css")
	defer teardown()
	//
	for _, k := range []string{"auto", "nowrap", "table-cell", "-fs-initial-value", "700"} {
		a, err := Lookup(k)
		require.NoError(t, err)
		b, err := Lookup(k)
		require.NoError(t, err)
		if a != b {
			t.Errorf("expected interning %q twice to yield the same token", k)
		}
	}
	if Valueof("auto") != Auto {
		t.Error("expected token for 'auto' to be ident.Auto")
	}
	if Valueof("  NoWrap ") != Nowrap {
		t.Error("expected keyword lookup to be case-insensitive and trimmed")
	}
	assert.NotSame(t, Auto, None)
}

func TestDistinctTokens(t *testing.T) {
	seen := make(map[*Ident]string)
	ids := make(map[int]string)
	for k, id := range Standard().idents {
		if other, dup := seen[id]; dup {
			t.Errorf("keywords %q and %q share a token", k, other)
		}
		seen[id] = k
		if other, dup := ids[id.ID()]; dup {
			t.Errorf("keywords %q and %q share id %d", k, other, id.ID())
		}
		ids[id.ID()] = k
	}
	assert.Equal(t, Count(), len(seen))
}

func TestFirstSeenOrder(t *testing.T) {
	assert.Equal(t, 0, Absolute.ID())
	assert.Less(t, Auto.ID(), Block.ID())
	assert.Equal(t, Count()-1, Initial.ID())
}

func TestCountIsStable(t *testing.T) {
	n := Count()
	for i := 0; i < 10; i++ {
		Find("no-such-keyword")
		_, _ = Lookup("also-unknown")
		Lookup("auto")
	}
	assert.Equal(t, n, Count())
}

func TestStrictLookupFails(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "styleres.css")
	defer teardown()
	//
	id, err := Lookup("sparkly")
	assert.Nil(t, id)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownIdent))
	assert.Contains(t, err.Error(), "sparkly")
	assert.Panics(t, func() { MustLookup("sparkly") })
}

func TestFind(t *testing.T) {
	var id *Ident
	switch m := Find("pre-wrap").Match(); m {
	case m.Just(&id):
		assert.Same(t, PreWrap, id)
	case m.Nothing():
		t.Error("expected 'pre-wrap' to be a known keyword")
	}
	assert.True(t, Find("flux-capacitor").IsNothing())
	assert.True(t, Standard().LooksLikeIdent("inherit"))
	assert.False(t, Standard().LooksLikeIdent("inheritance"))
}

func TestFrozenRegistry(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "styleres.css")
	defer teardown()
	//
	b := NewBuilder()
	foo := b.Intern("-x-foo")
	bar := b.Intern("-x-bar")
	assert.Same(t, foo, b.Intern("-X-FOO"))
	r := b.Freeze()
	assert.Equal(t, 2, r.Count())
	assert.NotEqual(t, foo.ID(), bar.ID())
	assert.Same(t, foo, r.Valueof("-x-foo"))
	assert.Nil(t, Valueof("-x-foo"), "standard registry must not change")
	assert.False(t, Standard().LooksLikeIdent("-x-bar"))
}

func TestBuilder(t *testing.T) {
	b := NewBuilder()
	x := b.Intern("Foo")
	assert.Same(t, x, b.Intern("foo"))
	assert.Nil(t, b.Intern("   "))
	r := b.Freeze()
	assert.Equal(t, 1, r.Count())
	assert.Equal(t, "foo", r.Valueof("FOO").String())
}

func TestConcurrentLookups(t *testing.T) {
	var wg sync.WaitGroup
	results := make([]*Ident, 16)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				results[i] = Valueof("collapse")
			}
		}(i)
	}
	wg.Wait()
	for _, id := range results {
		assert.Same(t, Collapse, id)
	}
}
