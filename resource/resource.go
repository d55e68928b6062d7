/*
Package resource wraps input streams of loaded resources and records
their load timing.

A Resource is created when loading of a resource starts. The loader calls
Loaded when the resource has been consumed, which records the elapsed load
time. Timestamps are for diagnostics only.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package resource

import (
	"bufio"
	"io"
	"sync"
	"time"
)

// now is replaced in tests.
var now = time.Now

// Resource is a buffered input stream plus load timing.
type Resource struct {
	reader  *bufio.Reader
	closer  io.Closer
	created time.Time
	mu      sync.Mutex
	elapsed time.Duration
}

// New creates a resource for r and records the creation time. If r is an
// io.Closer, Close will close it. r may be nil.
func New(r io.Reader) *Resource {
	res := &Resource{created: now()}
	if r != nil {
		res.reader = bufio.NewReader(r)
		res.closer, _ = r.(io.Closer)
	}
	return res
}

// Reader returns the buffered input stream, or nil for a resource without
// input.
func (res *Resource) Reader() io.Reader {
	if res.reader == nil {
		return nil
	}
	return res.reader
}

// LoadTimestamp returns the time the resource has been created.
func (res *Resource) LoadTimestamp() time.Time {
	return res.created
}

// ElapsedLoadTime returns the load time recorded by Loaded, or 0.
func (res *Resource) ElapsedLoadTime() time.Duration {
	res.mu.Lock()
	defer res.mu.Unlock()
	return res.elapsed
}

// Loaded marks the resource as completely loaded and returns the elapsed
// load time.
func (res *Resource) Loaded() time.Duration {
	d := now().Sub(res.created)
	res.setElapsedLoadTime(d)
	return d
}

func (res *Resource) setElapsedLoadTime(d time.Duration) {
	res.mu.Lock()
	defer res.mu.Unlock()
	res.elapsed = d
}

// Close closes the underlying stream, if it is closable.
func (res *Resource) Close() error {
	if res.closer == nil {
		return nil
	}
	c := res.closer
	res.closer = nil
	return c.Close()
}
