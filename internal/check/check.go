// Package check parses checksum lists in the format md5sum prints:
//
//	<32 hex digits><space><space or '*'><name>
package check

import (
	"bufio"
	"encoding/hex"
	"io"
	"strings"

	"github.com/pkg/errors"
)

const (
	hexLen  = 32
	maxLine = 1 << 20
)

// Entry is one well formed line of a checksum list.
type Entry struct {
	Line   int
	Digest [16]byte
	Name   string
	Binary bool
}

// Reader walks the entries of a checksum list, counting the lines it cannot
// parse.
type Reader struct {
	s         *bufio.Scanner
	line      int
	entry     Entry
	malformed []int
	err       error
}

// NewReader returns a Reader for the list in r.
func NewReader(r io.Reader) *Reader {
	s := bufio.NewScanner(r)
	s.Buffer(make([]byte, 0, 4096), maxLine)
	return &Reader{s: s}
}

// Next advances to the next well formed entry. It returns false at the end of
// the list or on a read error.
func (r *Reader) Next() bool {
	for r.s.Scan() {
		r.line++

		text := strings.TrimSuffix(r.s.Text(), "\r")
		if strings.TrimSpace(text) == "" {
			continue
		}

		entry, ok := parseLine(text)
		if !ok {
			r.malformed = append(r.malformed, r.line)
			continue
		}

		entry.Line = r.line
		r.entry = entry
		return true
	}

	r.err = errors.Wrap(r.s.Err(), "read checksum list")
	return false
}

// Entry returns the entry found by the last call to Next.
func (r *Reader) Entry() Entry { return r.entry }

// Malformed returns the line numbers that were not well formed so far.
func (r *Reader) Malformed() []int { return r.malformed }

// Err returns the error that stopped Next, if any.
func (r *Reader) Err() error { return r.err }

func parseLine(text string) (e Entry, ok bool) {
	if len(text) < hexLen+3 || text[hexLen] != ' ' {
		return e, false
	}

	switch text[hexLen+1] {
	case ' ':
	case '*':
		e.Binary = true
	default:
		return e, false
	}

	if n, err := hex.Decode(e.Digest[:], []byte(text[:hexLen])); err != nil || n != len(e.Digest) {
		return e, false
	}

	e.Name = text[hexLen+2:]
	return e, true
}
