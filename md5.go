package md5

import (
	"github.com/zeebo/md5/internal/consts"
	"github.com/zeebo/md5/internal/utils"
)

//
// hasher contains state for an md5 hash fed by writes
//

type hasher struct {
	e   engine
	len uint64
	n   int
	buf [consts.BlockLen]byte
}

func newHasher() hasher {
	return hasher{e: newEngine()}
}

func (a *hasher) reset() {
	*a = newHasher()
}

func (a *hasher) update(buf []byte) {
	var block [consts.BlockWords]uint32

	a.len += uint64(len(buf))

	for len(buf) > 0 {
		if a.n == 0 && len(buf) >= consts.BlockLen {
			utils.BytesToWords((*[consts.BlockLen]byte)(buf), &block)
			a.e.process(&block)
			buf = buf[consts.BlockLen:]
			continue
		}

		n := copy(a.buf[a.n:], buf)
		a.n += n
		buf = buf[n:]

		if a.n == consts.BlockLen {
			utils.BytesToWords(&a.buf, &block)
			a.e.process(&block)
			a.n = 0
		}
	}
}

// finalize operates on a copy so that the hasher can keep being written to.
func (a hasher) finalize() [Size]byte {
	var extra [consts.BlockLen]byte
	var block [consts.BlockWords]uint32

	spill := pad(&a.buf, &extra, a.n, a.len)

	utils.BytesToWords(&a.buf, &block)
	a.e.process(&block)

	if spill {
		utils.BytesToWords(&extra, &block)
		a.e.process(&block)
	}

	return a.e.finalize()
}
