//go:build unit

package logging

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompactFormatter_Format(t *testing.T) {
	entry := &logrus.Entry{
		Time:    time.Date(2024, 1, 2, 13, 4, 5, 0, time.UTC),
		Level:   logrus.InfoLevel,
		Message: "Monitor mode enabled",
		Data: logrus.Fields{
			"component": "controller",
			"interface": "wlan0",
			"strategy":  "airmon",
			"result":    "wlan0mon",
		},
	}

	t.Run("WithoutTime", func(t *testing.T) {
		out, err := (&CompactFormatter{}).Format(entry)
		require.NoError(t, err)
		assert.Equal(t, "[INFO][controller][wlan0] Monitor mode enabled (result=wlan0mon, strategy=airmon)\n", string(out))
	})

	t.Run("WithTime", func(t *testing.T) {
		out, err := (&CompactFormatter{ShowTime: true}).Format(entry)
		require.NoError(t, err)
		assert.Equal(t, "[13:04:05][INFO][controller][wlan0] Monitor mode enabled (result=wlan0mon, strategy=airmon)\n", string(out))
	})
}

func TestParseLevel(t *testing.T) {
	cases := map[string]logrus.Level{
		"1":       logrus.DebugLevel,
		"2":       logrus.InfoLevel,
		"3":       logrus.WarnLevel,
		"4":       logrus.ErrorLevel,
		"5":       logrus.FatalLevel,
		"debug":   logrus.DebugLevel,
		"warning": logrus.WarnLevel,
	}
	for in, want := range cases {
		got, err := ParseLevel(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ParseLevel("loud")
	assert.Error(t, err)
}

func TestInitLogger(t *testing.T) {
	t.Cleanup(func() {
		closeLogFile()
		Logger = nil
	})

	t.Run("InvalidLevelDefaultsToInfo", func(t *testing.T) {
		InitLogger(LogConfig{Level: "loud", Format: "simple"})
		assert.Equal(t, logrus.InfoLevel, GetLogger().GetLevel())
	})

	t.Run("LogFile", func(t *testing.T) {
		logFile := filepath.Join(t.TempDir(), "killshot.log")
		InitLogger(LogConfig{Level: "info", Format: "simple", File: logFile})

		WithComponent("test").Info("written to file")

		data, err := os.ReadFile(logFile)
		require.NoError(t, err)
		assert.Contains(t, string(data), "[INFO][test] written to file")
	})

	t.Run("ReinitClosesPreviousFile", func(t *testing.T) {
		dir := t.TempDir()
		InitLogger(LogConfig{Level: "info", Format: "simple", File: filepath.Join(dir, "first.log")})
		first := logFile
		require.NotNil(t, first)

		InitLogger(LogConfig{Level: "info", Format: "simple", File: filepath.Join(dir, "second.log")})
		require.NotNil(t, logFile)
		assert.NotSame(t, first, logFile)

		_, err := first.Write([]byte("late"))
		assert.ErrorIs(t, err, os.ErrClosed)

		InitLogger(LogConfig{Level: "info", Format: "simple"})
		assert.Nil(t, logFile)
	})
}

func TestSetLogger(t *testing.T) {
	t.Cleanup(func() { Logger = nil })

	var buf bytes.Buffer
	l := logrus.New()
	l.SetOutput(&buf)
	l.SetFormatter(&CompactFormatter{})
	SetLogger(l)

	WithComponentAndInterface("controller", "wlan0").WithError(errors.New("boom")).Error("failed")
	assert.Equal(t, "[ERROR][controller][wlan0] failed (error=boom)\n", buf.String())
}
