// Package stream wraps the character codecs with compression filters and
// file handling. The codecs themselves only see plain text.
package stream

import (
	"io"
	"path/filepath"
	"strings"

	"github.com/dsnet/compress/bzip2"
	"github.com/klauspost/compress/gzip"
	"github.com/pkg/errors"
)

// Compression selects the filter applied around a document
type Compression int

const (
	None Compression = iota
	Gzip
	Bzip2
)

// DefaultLevel is the compression level used when none is configured
const DefaultLevel = 9

func (c Compression) String() string {
	switch c {
	case None:
		return "none"
	case Gzip:
		return "gzip"
	case Bzip2:
		return "bzip2"
	default:
		return "unknown"
	}
}

// ParseCompression maps a name as used in configuration files
func ParseCompression(s string) (Compression, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "none":
		return None, nil
	case "gzip", "gz":
		return Gzip, nil
	case "bzip2", "bz2":
		return Bzip2, nil
	default:
		return None, errors.Errorf("unknown compression %q", s)
	}
}

// CompressionFromPath guesses the compression from the file extension
func CompressionFromPath(path string) Compression {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".gz", ".gzip":
		return Gzip
	case ".bz2", ".bzip2":
		return Bzip2
	default:
		return None
	}
}

// Options for reading and writing documents
type Options struct {
	Compression Compression
	// Level is only used when writing, 1 (fastest) to 9 (smallest)
	Level int
}

type nopCloser struct {
	io.Writer
}

func (nopCloser) Close() error { return nil }

// NewReader returns a reader that removes compression c from r.
func NewReader(r io.Reader, c Compression) (io.ReadCloser, error) {
	switch c {
	case None:
		return io.NopCloser(r), nil
	case Gzip:
		zr, err := gzip.NewReader(r)
		if err != nil {
			return nil, errors.Wrap(err, "gzip")
		}
		return zr, nil
	case Bzip2:
		br, err := bzip2.NewReader(r, nil)
		if err != nil {
			return nil, errors.Wrap(err, "bzip2")
		}
		return br, nil
	default:
		return nil, errors.Errorf("unknown compression %d", c)
	}
}

// NewWriter returns a writer compressing into w. Close must be called to
// flush the compressed stream; it does not close w.
func NewWriter(w io.Writer, c Compression, level int) (io.WriteCloser, error) {
	if level == 0 {
		level = DefaultLevel
	}
	switch c {
	case None:
		return nopCloser{w}, nil
	case Gzip:
		zw, err := gzip.NewWriterLevel(w, level)
		if err != nil {
			return nil, errors.Wrap(err, "gzip")
		}
		return zw, nil
	case Bzip2:
		bw, err := bzip2.NewWriter(w, &bzip2.WriterConfig{Level: level})
		if err != nil {
			return nil, errors.Wrap(err, "bzip2")
		}
		return bw, nil
	default:
		return nil, errors.Errorf("unknown compression %d", c)
	}
}
