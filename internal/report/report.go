// Package report renders digest results as text lines or JSON objects.
package report

import (
	"encoding/hex"
	"io"

	"github.com/pkg/errors"
)

const (
	TagDigest = "digest"
	TagFile   = "file"
	TagBytes  = "bytes"

	DefaultTemplate = "{{" + TagDigest + "}}  {{" + TagFile + "}}"

	FormatText = "text"
	FormatJSON = "json"
)

// Result is the outcome of hashing one input.
type Result struct {
	File   string
	Digest [16]byte
	Bytes  int64
}

// Hex returns the digest as 32 lowercase hex characters.
func (r Result) Hex() string {
	return hex.EncodeToString(r.Digest[:])
}

// Formatter writes one Result per call.
type Formatter interface {
	Format(w io.Writer, r Result) error
}

// New returns the Formatter for the named format. The template is only used
// by the text format.
func New(format, tmpl string) (Formatter, error) {
	switch format {
	case FormatText:
		return NewText(tmpl)
	case FormatJSON:
		return JSON{}, nil
	default:
		return nil, errors.Errorf("unknown format %q", format)
	}
}
