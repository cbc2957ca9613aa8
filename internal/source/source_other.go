//go:build !linux

package source

import "os"

func advise(fh *os.File) {}
