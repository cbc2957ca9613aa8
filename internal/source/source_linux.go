//go:build linux

package source

import (
	"os"

	"golang.org/x/sys/unix"

	"github.com/zeebo/md5/internal/log"
)

// advise tells the kernel the whole file is read once front to back.
func advise(fh *os.File) {
	if err := unix.Fadvise(int(fh.Fd()), 0, 0, unix.FADV_SEQUENTIAL); err != nil {
		log.Debugf("%s: fadvise: %v", fh.Name(), err)
	}
}
