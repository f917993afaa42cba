package diag

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassify(t *testing.T) {
	cases := []struct {
		err  error
		want Code
	}{
		{nil, CodeUnknown},
		{errors.New("boom"), CodeUnknown},
		{Errorf(ErrUsage, nil, "Usage: x"), CodeUsage},
		{Errorf(ErrPrecondition, nil, "Error: File 'a' is empty"), CodePrecondition},
		{Errorf(ErrRead, os.ErrClosed, "Error: reading"), CodeRead},
		{fmt.Errorf("outer: %w", Errorf(ErrWrite, nil, "Error: writing")), CodeWrite},
		{Errorf(ErrRead, context.Canceled, "Error: reading"), CodeCancel},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, Classify(tc.err), "%v", tc.err)
	}
}

func TestExitCode(t *testing.T) {
	assert.Equal(t, 0, ExitCode(nil))
	assert.Equal(t, 1, ExitCode(Errorf(ErrUsage, nil, "u")))
	assert.Equal(t, 1, ExitCode(errors.New("x")))
}

func TestErrorMessage(t *testing.T) {
	err := Errorf(ErrPrecondition, nil, "Error: File '%s' not found", "in.txt")
	assert.Equal(t, "Error: File 'in.txt' not found", err.Error())

	err = Errorf(ErrRead, os.ErrPermission, "Error: reading %s", "in.txt")
	assert.Equal(t, "Error: reading in.txt: permission denied", err.Error())
	assert.ErrorIs(t, err, os.ErrPermission)
	assert.ErrorIs(t, err, ErrRead)
}

func TestNewLogger_Text(t *testing.T) {
	var buf bytes.Buffer
	l, err := NewLogger(&buf, "warn", "text")
	require.NoError(t, err)
	l.Info("hidden")
	l.WithField("line", 3).Warn("shown")
	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "level=warning")
	assert.Contains(t, out, "msg=shown")
	assert.Contains(t, out, "line=3")
	assert.NotContains(t, out, "time=")
}

func TestNewLogger_JSON(t *testing.T) {
	var buf bytes.Buffer
	l, err := NewLogger(&buf, "debug", "json")
	require.NoError(t, err)
	l.WithField("k", "v").Debug("hello")

	var ev map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &ev))
	assert.Equal(t, "hello", ev["msg"])
	assert.Equal(t, "debug", ev["level"])
	assert.Equal(t, "v", ev["k"])
}

func TestNewLogger_Invalid(t *testing.T) {
	_, err := NewLogger(&bytes.Buffer{}, "loud", "text")
	assert.Error(t, err)
	_, err = NewLogger(&bytes.Buffer{}, "info", "xml")
	assert.Error(t, err)
}

func TestParseLevel(t *testing.T) {
	for in, want := range map[string]logrus.Level{
		"debug": logrus.DebugLevel,
		"INFO":  logrus.InfoLevel,
		"":      logrus.WarnLevel,
		"warn":  logrus.WarnLevel,
		"error": logrus.ErrorLevel,
	} {
		got, err := ParseLevel(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
}
