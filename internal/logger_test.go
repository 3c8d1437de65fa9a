package internal

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitLogger(t *testing.T) {
	defer func() {
		logrus.SetOutput(os.Stderr)
		logrus.SetLevel(DefaultLogLevel)
	}()

	InitLogger("", "")
	assert.Equal(t, DefaultLogLevel, logrus.GetLevel())

	InitLogger("", "debug")
	assert.Equal(t, logrus.DebugLevel, logrus.GetLevel())

	InitLogger("", "loud")
	assert.Equal(t, DefaultLogLevel, logrus.GetLevel())

	fp := filepath.Join(t.TempDir(), "app.log")
	InitLogger(fp, "info")
	logrus.Info("hello log")
	b, err := os.ReadFile(fp)
	require.NoError(t, err)
	assert.Contains(t, string(b), "hello log")
}

func TestInitLogger_BadLogfile(t *testing.T) {
	defer func() {
		logrus.SetOutput(os.Stderr)
		logrus.SetLevel(DefaultLogLevel)
	}()
	hook := test.NewGlobal()
	defer hook.Reset()

	bad := filepath.Join(t.TempDir(), "no-such-dir", "app.log")
	InitLogger(bad, "")

	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, logrus.WarnLevel, entry.Level)
	assert.Equal(t, bad, entry.Data["file"])
	assert.NotNil(t, entry.Data[logrus.ErrorKey])
}
