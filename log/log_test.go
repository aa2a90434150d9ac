package log

import (
	"bytes"
	"io"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTrace(t *testing.T) {
	defer InitLog(io.Discard, os.Stderr)

	var buf bytes.Buffer
	Trace.Println("dropped")
	EnableTrace(&buf)
	Trace.Println("kept")

	assert.NotContains(t, buf.String(), "dropped")
	assert.Contains(t, buf.String(), "TRACE: ")
	assert.Contains(t, buf.String(), "kept")
}

func TestWarning(t *testing.T) {
	defer InitLog(io.Discard, os.Stderr)

	var buf bytes.Buffer
	InitLog(io.Discard, &buf)
	Warning.Printf("can't read %s", "a.xml")
	assert.Contains(t, buf.String(), "WARNING: ")
	assert.Contains(t, buf.String(), "can't read a.xml")
}
