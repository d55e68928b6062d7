/*
Package maybe provides an option type for values which may legitimately be absent.

It is used throughout the style-resolution packages wherever "not found" is a
normal outcome rather than an error, e.g. probing the keyword registry or
asking for the user-agent default stylesheet.

Clients usually destructure a Maybe with a type-switch-like pattern:

    var id *ident.Ident
    switch m := ident.Find("auto").Match(); m {
    case m.Just(&id):
        …
    case m.Nothing():
        …
    }

Values wrapped into a Maybe must be comparable for matching to work.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package maybe

// Maybe is either Just(x) or Nothing.
type Maybe[T any] interface {
	Match() Matcher[T]
	WithDefault(T) T
	Map(func(T) T) Maybe[T]
	Get() (T, bool)
	IsNothing() bool
}

type maybe[T any] struct {
	value T
	tag   bool
}

// Just wraps a present value.
func Just[T any](x T) Maybe[T] {
	return maybe[T]{value: x, tag: true}
}

// Nothing returns an absent value of type T.
func Nothing[T any]() Maybe[T] {
	return maybe[T]{tag: false}
}

// Of converts the common Go idiom (v, ok) into a Maybe.
func Of[T any](x T, ok bool) Maybe[T] {
	if !ok {
		return Nothing[T]()
	}
	return Just(x)
}

func (m maybe[T]) Match() Matcher[T] {
	return matcher[T]{m: m}
}

func (m maybe[T]) WithDefault(def T) T {
	if m.tag {
		return m.value
	}
	return def
}

func (m maybe[T]) Map(f func(T) T) Maybe[T] {
	if m.tag {
		return Just(f(m.value))
	}
	return m
}

// Get unwraps m back into (v, ok).
func (m maybe[T]) Get() (T, bool) {
	return m.value, m.tag
}

func (m maybe[T]) IsNothing() bool {
	return !m.tag
}

// AndThen chains a computation which may itself produce Nothing.
func AndThen[T, S any](f func(T) Maybe[S], x Maybe[T]) Maybe[S] {
	if v, ok := x.Get(); ok {
		return f(v)
	}
	return Nothing[S]()
}

// Map applies f to the wrapped value, if any.
func Map[T any](f func(T) T, x Maybe[T]) Maybe[T] {
	return x.Map(f)
}

// --- Matching --------------------------------------------------------------

// Matcher is used to destructure a Maybe in a switch statement.
// Exactly one of Just and Nothing returns a non-nil Matcher.
type Matcher[T any] interface {
	Just(*T) Matcher[T]
	Nothing() Matcher[T]
}

type matcher[T any] struct {
	m maybe[T]
}

func (mm matcher[T]) Just(v *T) Matcher[T] {
	if mm.m.tag {
		*v = mm.m.value
		return mm
	}
	return nil
}

func (mm matcher[T]) Nothing() Matcher[T] {
	if !mm.m.tag {
		return mm
	}
	return nil
}
