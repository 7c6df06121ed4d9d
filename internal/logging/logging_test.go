package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_ConsoleOnly(t *testing.T) {
	var buf bytes.Buffer
	logger, closeFn := New(Options{Level: "debug", Console: &buf})
	defer closeFn()

	Component(logger, "controller").Debug("submitted")

	assert.Equal(t, logrus.DebugLevel, logger.GetLevel())
	assert.Contains(t, buf.String(), "component=controller")
	assert.Contains(t, buf.String(), "submitted")
}

func TestNew_UnknownLevelFallsBackToInfo(t *testing.T) {
	logger, closeFn := New(Options{Level: "chatty", Console: &bytes.Buffer{}})
	defer closeFn()

	assert.Equal(t, logrus.InfoLevel, logger.GetLevel())
}

func TestNew_WritesRotatedFile(t *testing.T) {
	dir := t.TempDir()
	var buf bytes.Buffer

	logger, closeFn := New(Options{Level: "info", Dir: dir, Console: &buf})
	logger.WithField("seq", 7).Info("clone finished")
	require.NoError(t, closeFn())

	data, err := os.ReadFile(filepath.Join(dir, FileName))
	require.NoError(t, err)
	assert.Contains(t, string(data), "clone finished")
	assert.Contains(t, string(data), "seq=7")
	assert.Contains(t, buf.String(), "clone finished")
}

func TestSetLevel(t *testing.T) {
	logger, closeFn := New(Options{Console: &bytes.Buffer{}})
	defer closeFn()

	assert.True(t, SetLevel(logger, "warn"))
	assert.Equal(t, logrus.WarnLevel, logger.GetLevel())

	assert.False(t, SetLevel(logger, "nope"))
	assert.Equal(t, logrus.WarnLevel, logger.GetLevel())
}
