// Package source opens the byte sources md5sum hashes: files, standard input
// and, optionally, gzip or zstd streams inside either.
package source

import (
	"bufio"
	"bytes"
	"context"
	"io"
	"os"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/pkg/errors"

	"github.com/zeebo/md5/internal/log"
)

// Stdin is the name that selects standard input.
const Stdin = "-"

var (
	gzipMagic = []byte{0x1f, 0x8b}
	zstdMagic = []byte{0x28, 0xb5, 0x2f, 0xfd}
)

// Options controls how a source is opened.
type Options struct {
	// Decompress replaces gzip and zstd streams by their content. Anything
	// else is passed through unchanged.
	Decompress bool
}

// Open returns the source called name. Reads from it fail with ctx.Err()
// once ctx is done. Closing it never closes stdin.
func Open(ctx context.Context, name string, stdin io.Reader, opts Options) (io.ReadCloser, error) {
	rc := &readCloser{}

	if name == Stdin {
		rc.Reader = stdin
	} else {
		fh, err := os.Open(name)
		if err != nil {
			return nil, errors.WithStack(err)
		}
		advise(fh)
		rc.Reader = fh
		rc.closers = append(rc.closers, fh)
	}

	if opts.Decompress {
		if err := rc.decompress(name); err != nil {
			_ = rc.Close()
			return nil, err
		}
	}

	rc.Reader = &ctxReader{ctx: ctx, r: rc.Reader}
	return rc, nil
}

func (rc *readCloser) decompress(name string) error {
	br := bufio.NewReader(rc.Reader)
	rc.Reader = br

	// short or failing sources are hashed as is and fail later if at all
	magic, _ := br.Peek(len(zstdMagic))

	switch {
	case bytes.HasPrefix(magic, gzipMagic):
		log.Debugf("%s: gzip stream", name)
		zr, err := gzip.NewReader(br)
		if err != nil {
			return errors.Wrapf(err, "gzip %s", name)
		}
		rc.Reader = zr
		rc.closers = append(rc.closers, zr)

	case bytes.HasPrefix(magic, zstdMagic):
		log.Debugf("%s: zstd stream", name)
		zr, err := zstd.NewReader(br, zstd.WithDecoderConcurrency(1))
		if err != nil {
			return errors.Wrapf(err, "zstd %s", name)
		}
		rc.Reader = zr
		rc.closers = append(rc.closers, zr.IOReadCloser())
	}

	return nil
}

type readCloser struct {
	io.Reader
	closers []io.Closer
}

// Close closes in reverse opening order and returns the first error.
func (rc *readCloser) Close() (err error) {
	for i := len(rc.closers) - 1; i >= 0; i-- {
		if cerr := rc.closers[i].Close(); err == nil {
			err = cerr
		}
	}
	rc.closers = nil
	return errors.WithStack(err)
}

type ctxReader struct {
	ctx context.Context
	r   io.Reader
}

func (c *ctxReader) Read(p []byte) (int, error) {
	if err := c.ctx.Err(); err != nil {
		return 0, err
	}
	return c.r.Read(p)
}
