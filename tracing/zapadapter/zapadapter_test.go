package zapadapter

import (
	"bytes"
	"testing"

	"github.com/npillmayer/schuko/tracing"
	"github.com/stretchr/testify/assert"
)

func TestLevels(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithOutput(&buf)
	assert.Equal(t, tracing.LevelError, l.GetTraceLevel())
	l.Debugf("Hello 1")
	l.Infof("Hello 2")
	assert.Equal(t, 0, buf.Len())
	l.Errorf("Hello %d", 3)
	assert.Contains(t, buf.String(), "ERROR")
	assert.Contains(t, buf.String(), "Hello 3")
	//
	l.SetTraceLevel(tracing.LevelDebug)
	assert.Equal(t, tracing.LevelDebug, l.GetTraceLevel())
	l.Debugf("Hello 4")
	assert.Contains(t, buf.String(), "DEBUG")
	assert.Contains(t, buf.String(), "Hello 4")
}

func TestFields(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithOutput(&buf)
	l.SetTraceLevel(tracing.LevelInfo)
	l.P("path", "/tmp/x.css").P("n", 7).Infof("World")
	out := buf.String()
	assert.Contains(t, out, "World")
	assert.Contains(t, out, `"path": "/tmp/x.css"`)
	assert.Contains(t, out, `"n": 7`)
	assert.Equal(t, tracing.LevelInfo, l.P("a", 1).GetTraceLevel())
}

func TestSetOutput(t *testing.T) {
	var first, second bytes.Buffer
	l := NewWithOutput(&first)
	l.SetOutput(&second)
	l.Errorf("moved")
	assert.Equal(t, 0, first.Len())
	assert.Contains(t, second.String(), "moved")
	assert.NotNil(t, GetAdapter()())
}
