package md5

import (
	"github.com/zeebo/md5/internal/alg/compress"
	"github.com/zeebo/md5/internal/consts"
	"github.com/zeebo/md5/internal/utils"
)

// engine owns the chaining state for a single digest computation.
type engine struct {
	state [4]uint32
	done  bool
}

func newEngine() engine {
	return engine{state: iv}
}

// process folds the next block, in stream order, into the state.
func (e *engine) process(block *[consts.BlockWords]uint32) {
	if e.done {
		panic("md5: block processed after finalize")
	}
	compress.Block(&e.state, block)
}

// finalize serializes the state. It may be called any number of times.
func (e *engine) finalize() (out [Size]byte) {
	e.done = true
	utils.WordsToBytes(&e.state, &out)
	return out
}
