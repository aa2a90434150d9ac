package stream

import (
	"io"
	"os"

	"github.com/pkg/errors"

	"github.com/juruen/tegaki/character"
	"github.com/juruen/tegaki/encoding/markup"
	"github.com/juruen/tegaki/log"
)

// Read decodes one markup document from r. A compressed stream is read
// to its end so that its checksum is verified.
func Read(r io.Reader, opts Options) (*character.Character, error) {
	zr, err := NewReader(r, opts.Compression)
	if err != nil {
		return nil, err
	}
	defer zr.Close()

	c, err := markup.NewDecoder(zr).Decode()
	if err != nil {
		return nil, err
	}
	if opts.Compression != None {
		if _, err := io.Copy(io.Discard, zr); err != nil {
			return nil, errors.Wrap(err, opts.Compression.String())
		}
	}
	return c, nil
}

// Write encodes c as a markup document into w
func Write(w io.Writer, c *character.Character, opts Options) error {
	zw, err := NewWriter(w, opts.Compression, opts.Level)
	if err != nil {
		return err
	}
	if err := markup.NewEncoder(zw).Encode(c); err != nil {
		zw.Close()
		return err
	}
	return zw.Close()
}

// ReadFile reads the character stored at path
func ReadFile(path string, opts Options) (*character.Character, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	log.Trace.Printf("reading %s (%s)", path, opts.Compression)
	c, err := Read(f, opts)
	if err != nil {
		return nil, errors.Wrapf(err, "can't read %s", path)
	}
	return c, nil
}

// WriteFile stores c at path, replacing any existing file
func WriteFile(path string, c *character.Character, opts Options) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	log.Trace.Printf("writing %s (%s)", path, opts.Compression)
	if err = Write(f, c, opts); err != nil {
		return errors.Wrapf(err, "can't write %s", path)
	}
	return nil
}
