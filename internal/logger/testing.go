package logger

import (
	"bytes"

	"github.com/sirupsen/logrus"
)

type testingTB interface {
	Helper()
	Cleanup(func())
}

// Stub the logger.Default and return the buffer where the logging output will be recorded.
// Every level is recorded while stubbed.
// Stub will restore the logger.Default after the test.
func Stub(tb testingTB) *bytes.Buffer {
	tb.Helper()
	var (
		ogOut   = Default.Out
		ogLevel = Default.GetLevel()
	)
	tb.Cleanup(func() {
		Default.SetOutput(ogOut)
		Default.SetLevel(ogLevel)
	})
	buf := &bytes.Buffer{}
	Default.SetOutput(buf)
	Default.SetLevel(logrus.DebugLevel)
	return buf
}
