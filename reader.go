package md5

import (
	"io"

	"github.com/zeebo/md5/internal/consts"
	"github.com/zeebo/md5/internal/utils"
)

type readerState uint8

const (
	stateReading readerState = iota
	statePadding             // spill holds the final block
	stateDone
)

// blockReader presents an io.Reader as the finite sequence of padded blocks.
type blockReader struct {
	r     io.Reader
	state readerState
	len   uint64
	err   error
	buf   [consts.BlockLen]byte
	spill [consts.BlockLen]byte
}

func newBlockReader(r io.Reader) *blockReader {
	return &blockReader{r: r}
}

// next stores the next block into block and returns BlockSize. Once every
// block has been returned it returns 0, and keeps doing so.
func (b *blockReader) next(block *[consts.BlockWords]uint32) (int, error) {
	switch b.state {
	case stateReading:
		n, err := io.ReadFull(b.r, b.buf[:])
		b.len += uint64(n)

		switch err {
		case nil:
		case io.EOF, io.ErrUnexpectedEOF:
			if pad(&b.buf, &b.spill, n, b.len) {
				b.state = statePadding
			} else {
				b.state = stateDone
			}
		default:
			b.state = stateDone
			b.err = &ReadError{N: int64(b.len), Err: err}
			return 0, b.err
		}

		utils.BytesToWords(&b.buf, block)
		return consts.BlockLen, nil

	case statePadding:
		utils.BytesToWords(&b.spill, block)
		b.state = stateDone
		return consts.BlockLen, nil

	default:
		return 0, b.err
	}
}
