// Package md5 computes MD5 digests, as defined in RFC 1321, over streams of
// any length without holding them in memory.
//
// MD5 is cryptographically broken and should not be used for secure
// applications.
package md5

import (
	"hash"
	"io"

	"github.com/zeebo/md5/internal/consts"
)

var _ hash.Hash = (*Hasher)(nil)

// Hasher is a hash.Hash for MD5.
type Hasher struct {
	h hasher
}

// New returns a new Hasher.
func New() *Hasher {
	return &Hasher{h: newHasher()}
}

// Write implements part of the hash.Hash interface. It never returns an error.
func (h *Hasher) Write(p []byte) (int, error) {
	h.h.update(p)
	return len(p), nil
}

// WriteString is like Write but takes a string.
func (h *Hasher) WriteString(p string) (int, error) {
	h.h.update([]byte(p))
	return len(p), nil
}

// Reset implements part of the hash.Hash interface. It causes the Hasher to
// act as if it was newly created.
func (h *Hasher) Reset() {
	h.h.reset()
}

// Clone returns a new Hasher with the same state as h.
func (h *Hasher) Clone() *Hasher {
	return &Hasher{h: h.h}
}

// Size implements part of the hash.Hash interface. It returns the number of
// bytes the hash will output.
func (h *Hasher) Size() int {
	return Size
}

// BlockSize implements part of the hash.Hash interface.
func (h *Hasher) BlockSize() int {
	return BlockSize
}

// Sum implements part of the hash.Hash interface. It appends the digest of
// the Hasher to the provided buffer and returns it. It does not change the
// state of the Hasher.
func (h *Hasher) Sum(b []byte) []byte {
	sum := h.h.finalize()
	return append(b, sum[:]...)
}

// Sum returns the MD5 checksum of the data.
func Sum(data []byte) [Size]byte {
	h := newHasher()
	h.update(data)
	return h.finalize()
}

// SumReader reads r until EOF and returns the MD5 checksum of everything read
// along with the number of bytes consumed. If r fails, the returned error is a
// *ReadError and the checksum is zero.
func SumReader(r io.Reader) (sum [Size]byte, n int64, err error) {
	var block [consts.BlockWords]uint32

	br := newBlockReader(r)
	e := newEngine()

	for {
		m, err := br.next(&block)
		if err != nil {
			return sum, int64(br.len), err
		} else if m == 0 {
			break
		}
		e.process(&block)
	}

	return e.finalize(), int64(br.len), nil
}
