package logger

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"DCThemer/internal/console"

	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func withLogger(t *testing.T, l *slog.Logger) {
	t.Helper()
	prev := slog.Default()
	slog.SetDefault(l)
	t.Cleanup(func() {
		slog.SetDefault(prev)
		Cleanup()
	})
}

func TestMultiLineMessagesAreSplit(t *testing.T) {
	prevProfile := console.SetPreferredProfile(termenv.Ascii)
	defer console.SetPreferredProfile(prevProfile)

	var buf bytes.Buffer
	withLogger(t, newLogger(&buf, ""))

	Notice(context.Background(), "Scheme '{{_Scheme_}}%s{{|-|}}' applied.\nsecond line", "Dark")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "[NOTICE]")
	assert.Contains(t, lines[0], "Scheme 'Dark' applied.")
	assert.Contains(t, lines[1], "second line")
}

func TestLevelFiltering(t *testing.T) {
	prevProfile := console.SetPreferredProfile(termenv.Ascii)
	defer console.SetPreferredProfile(prevProfile)

	var buf bytes.Buffer
	withLogger(t, newLogger(&buf, ""))
	SetLevel(LevelNotice)

	Info(context.Background(), "hidden")
	Warn(context.Background(), "shown")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "[WARN  ]")
}

func TestFileHandlerStripsColour(t *testing.T) {
	prevProfile := console.SetPreferredProfile(termenv.ANSI)
	defer console.SetPreferredProfile(prevProfile)

	logPath := filepath.Join(t.TempDir(), "state", "dc-themer.log")
	var buf bytes.Buffer
	withLogger(t, newLogger(&buf, logPath))
	SetLevel(LevelNotice)

	Notice(context.Background(), "Copying '{{_File_}}%s{{|-|}}'", "doublecmd.xml")
	Cleanup()

	data, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Copying 'doublecmd.xml'")
	assert.NotContains(t, string(data), "\x1b[")
}
