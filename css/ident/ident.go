package ident

import (
	"errors"
	"fmt"
	"strings"

	"github.com/npillmayer/styleres/maybe"
)

// ErrUnknownIdent is returned by strict lookups for keywords which have not been
// registered.
var ErrUnknownIdent = errors.New("unknown CSS identifier")

// Ident is an interned CSS keyword. There is exactly one instance per keyword
// and registry; instances are compared by identity.
type Ident struct {
	ident string
	id    int
}

// String returns the keyword as it appears in CSS, in lower case.
func (id *Ident) String() string {
	if id == nil {
		return "<nil>"
	}
	return id.ident
}

// ID returns the sequence number the keyword has been assigned at first sight.
func (id *Ident) ID() int {
	return id.id
}

func canonical(keyword string) string {
	return strings.ToLower(strings.TrimSpace(keyword))
}

// --- Builder ---------------------------------------------------------------

// Builder collects keywords for a registry. A Builder is not safe for
// concurrent use; it is meant to be used during initialization and then
// frozen.
type Builder struct {
	idents map[string]*Ident
	next   int
}

// NewBuilder creates an empty builder.
func NewBuilder() *Builder {
	return &Builder{idents: make(map[string]*Ident, 192)}
}

// Intern returns the token for keyword, creating it if it has not been seen
// before. Keywords are canonicalized to lower case. Interning an empty keyword
// returns nil.
func (b *Builder) Intern(keyword string) *Ident {
	k := canonical(keyword)
	if k == "" {
		return nil
	}
	if id, ok := b.idents[k]; ok {
		return id
	}
	id := &Ident{ident: k, id: b.next}
	b.next++
	b.idents[k] = id
	return id
}

// Freeze returns a registry holding all keywords interned so far. The builder
// must not be used afterwards.
func (b *Builder) Freeze() *Registry {
	r := &Registry{idents: b.idents}
	b.idents = nil
	return r
}

// --- Registry --------------------------------------------------------------

// Registry is an immutable table of interned keywords.
type Registry struct {
	idents map[string]*Ident
}

// Lookup returns the token for keyword. It is intended for keywords known to be
// part of the registry and fails with ErrUnknownIdent otherwise. Clients
// testing arbitrary input should call Find instead.
func (r *Registry) Lookup(keyword string) (*Ident, error) {
	if id := r.Valueof(keyword); id != nil {
		return id, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownIdent, keyword)
}

// Find returns the token for keyword, or Nothing if the keyword is not part
// of the registry.
func (r *Registry) Find(keyword string) maybe.Maybe[*Ident] {
	id := r.Valueof(keyword)
	return maybe.Of(id, id != nil)
}

// Valueof returns the token for keyword or nil.
func (r *Registry) Valueof(keyword string) *Ident {
	if r == nil {
		return nil
	}
	return r.idents[canonical(keyword)]
}

// LooksLikeIdent is a predicate: is keyword registered?
func (r *Registry) LooksLikeIdent(keyword string) bool {
	return r.Valueof(keyword) != nil
}

// Count returns the number of distinct keywords.
func (r *Registry) Count() int {
	if r == nil {
		return 0
	}
	return len(r.idents)
}

// --- Standard registry -----------------------------------------------------

// Standard returns the process-wide registry of intrinsic CSS keywords.
func Standard() *Registry {
	return standard
}

// Lookup is a strict lookup in the standard registry.
func Lookup(keyword string) (*Ident, error) {
	return standard.Lookup(keyword)
}

// MustLookup is like Lookup, but panics for unknown keywords. Use it for
// keywords which are known at compile time only.
func MustLookup(keyword string) *Ident {
	id, err := standard.Lookup(keyword)
	if err != nil {
		panic(err)
	}
	return id
}

// Find looks up keyword in the standard registry.
func Find(keyword string) maybe.Maybe[*Ident] {
	return standard.Find(keyword)
}

// Valueof returns the token for keyword from the standard registry, or nil.
func Valueof(keyword string) *Ident {
	return standard.Valueof(keyword)
}

// Count returns the number of keywords in the standard registry.
func Count() int {
	return standard.Count()
}
