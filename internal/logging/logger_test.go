package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/natefinch/lumberjack.v2"
)

func TestNew(t *testing.T) {
	t.Parallel()

	l, err := New(Options{})
	require.NoError(t, err)
	assert.Equal(t, logrus.InfoLevel, l.GetLevel())
	assert.Equal(t, os.Stdout, l.Out)

	l, err = New(Options{Level: "debug", JSON: true})
	require.NoError(t, err)
	assert.Equal(t, logrus.DebugLevel, l.GetLevel())
	assert.IsType(t, &logrus.JSONFormatter{}, l.Formatter)

	_, err = New(Options{Level: "loud"})
	assert.Error(t, err)
}

func TestNewWithFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "logs", "agentsmd.log")
	l, err := New(Options{Level: "info", JSON: true, File: path, MaxSizeMB: 1, MaxBackups: 2})
	require.NoError(t, err)

	rotator, ok := l.Out.(*lumberjack.Logger)
	require.True(t, ok)
	defer rotator.Close()

	l.WithField("component", "test").Info("hello")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(data), `"component":"test"`))
	assert.True(t, strings.Contains(string(data), `"msg":"hello"`))
}
