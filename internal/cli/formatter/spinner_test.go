package formatter

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestStartSpinner_StopClearsLine(t *testing.T) {
	var buf bytes.Buffer
	stop := StartSpinner(&buf, "Importing log.csv")
	time.Sleep(3 * spinnerInterval)
	stop()

	out := buf.String()
	assert.Contains(t, stripANSI(out), "Importing log.csv")
	assert.True(t, strings.HasSuffix(out, "\r\033[K"))
}

func TestStartSpinner_StopTwice(t *testing.T) {
	var buf bytes.Buffer
	stop := StartSpinner(&buf, "x")
	assert.NotPanics(t, func() {
		stop()
		stop()
	})
	assert.True(t, strings.HasSuffix(buf.String(), "\r\033[K"))
}
