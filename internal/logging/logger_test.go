package logging

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetLevel(t *testing.T) {
	assert.Equal(t, logrus.DebugLevel, GetLevel("debug"))
	assert.Equal(t, logrus.WarnLevel, GetLevel("WARN"))
	assert.Equal(t, logrus.WarnLevel, GetLevel("warning"))
	assert.Equal(t, logrus.ErrorLevel, GetLevel("error"))
	assert.Equal(t, logrus.TraceLevel, GetLevel("trace"))
	assert.Equal(t, logrus.InfoLevel, GetLevel(""))
	assert.Equal(t, logrus.InfoLevel, GetLevel("chatty"))
}

func TestSetup_LogFile(t *testing.T) {
	std := logrus.StandardLogger()
	prevOut, prevLevel, prevFormatter := std.Out, std.GetLevel(), std.Formatter
	t.Cleanup(func() {
		logrus.SetOutput(prevOut)
		logrus.SetLevel(prevLevel)
		logrus.SetFormatter(prevFormatter)
	})

	base := filepath.Join(t.TempDir(), "megin")
	closer := Setup(LoggerSetupParams{
		LogFileName:   base,
		LogLevel:      "debug",
		LogFormatJSON: true,
	})

	assert.Equal(t, logrus.DebugLevel, logrus.GetLevel())
	assert.IsType(t, &logrus.JSONFormatter{}, std.Formatter)

	logrus.WithField("day", "monday").Info("hello")

	data, err := os.ReadFile(base + ".log")
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"hello"`)
	assert.Contains(t, string(data), `"day":"monday"`)

	require.NoError(t, closer.Close())
	logrus.SetOutput(prevOut)
	require.NoError(t, closer.Close())
}

func TestSetup_StderrCloserIsNoop(t *testing.T) {
	std := logrus.StandardLogger()
	prevOut, prevLevel := std.Out, std.GetLevel()
	t.Cleanup(func() {
		logrus.SetOutput(prevOut)
		logrus.SetLevel(prevLevel)
	})

	closer := Setup(LoggerSetupParams{LogLevel: "warn"})

	require.NotNil(t, closer)
	assert.Same(t, os.Stderr, std.Out)
	assert.NoError(t, closer.Close())
}
