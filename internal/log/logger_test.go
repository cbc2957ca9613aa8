package log

import (
	"bytes"
	"os"
	"testing"

	"github.com/zeebo/assert"
)

func capture(t *testing.T, verbose bool) *bytes.Buffer {
	var buf bytes.Buffer
	SetOutput(&buf)
	SetVerbose(verbose)
	t.Cleanup(func() {
		SetOutput(os.Stderr)
		SetVerbose(false)
	})
	return &buf
}

func TestLevels(t *testing.T) {
	buf := capture(t, false)

	Debugf("hidden %d", 1)
	Infof("info %d", 2)
	Warnf("warn %d", 3)
	Errorf("error %d", 4)

	assert.Equal(t, buf.String(), "[INF] info 2\n[WRN] warn 3\n[ERR] error 4\n")
}

func TestVerbose(t *testing.T) {
	buf := capture(t, true)

	Debugf("shown %s", "now")

	assert.Equal(t, buf.String(), "[DBG] shown now\n")
}
