package logger

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"DCThemer/internal/console"

	"github.com/lmittmann/tint"
)

// Custom log levels. Notice is the default console level so that Info is
// reserved for -v output.
const (
	LevelTrace  = slog.Level(-8)
	LevelDebug  = slog.LevelDebug
	LevelInfo   = slog.Level(-2)
	LevelNotice = slog.LevelInfo
	LevelWarn   = slog.LevelWarn
	LevelError  = slog.LevelError
)

// LevelVar allows dynamic changing of the console log level
var LevelVar = new(slog.LevelVar)

// FileLevelVar is the level of the log file handler.
var FileLevelVar = new(slog.LevelVar)

var logFile *os.File

func init() {
	LevelVar.Set(LevelNotice)
	FileLevelVar.Set(LevelInfo)
}

// SetLevel changes the console level. The file keeps at least Info.
func SetLevel(level slog.Level) {
	LevelVar.Set(level)
	if level < LevelInfo {
		FileLevelVar.Set(level)
	} else {
		FileLevelVar.Set(LevelInfo)
	}
}

func levelLabel(level slog.Level) string {
	switch level {
	case LevelTrace:
		return "[TRACE ]"
	case LevelDebug:
		return "[DEBUG ]"
	case LevelInfo:
		return "[INFO  ]"
	case LevelNotice:
		return "[NOTICE]"
	case LevelWarn:
		return "[WARN  ]"
	case LevelError:
		return "[ERROR ]"
	default:
		return "[" + level.String() + "]"
	}
}

func levelTag(level slog.Level) string {
	switch level {
	case LevelTrace:
		return "{{_Trace_}}"
	case LevelDebug:
		return "{{_Debug_}}"
	case LevelInfo:
		return "{{_Info_}}"
	case LevelNotice:
		return "{{_Notice_}}"
	case LevelWarn:
		return "{{_Warn_}}"
	case LevelError:
		return "{{_Error_}}"
	default:
		return ""
	}
}

// NewLogger builds the console handler on stderr and, when logFilePath is
// not empty, a colourless handler writing to that file.
func NewLogger(logFilePath string) *slog.Logger {
	return newLogger(os.Stderr, logFilePath)
}

func newLogger(w io.Writer, logFilePath string) *slog.Logger {
	replaceAttrConsole := func(groups []string, a slog.Attr) slog.Attr {
		if a.Key == slog.LevelKey {
			level := a.Value.Any().(slog.Level)
			a.Value = slog.StringValue(console.Parse(levelTag(level)+levelLabel(level)+"{{|-|}}") + "  ")
		}
		return a
	}

	consoleHandler := tint.NewHandler(w, &tint.Options{
		Level:       LevelVar,
		TimeFormat:  "2006-01-02 15:04:05",
		NoColor:     !console.ColorEnabled() || !isTTY(w),
		ReplaceAttr: replaceAttrConsole,
	})

	handlers := []slog.Handler{consoleHandler}

	if logFilePath != "" {
		if f, err := openLogFile(logFilePath); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to open log file: %v\n", err)
		} else {
			replaceAttrFile := func(groups []string, a slog.Attr) slog.Attr {
				switch a.Key {
				case slog.LevelKey:
					a.Value = slog.StringValue(levelLabel(a.Value.Any().(slog.Level)) + "  ")
				case slog.MessageKey:
					a.Value = slog.StringValue(console.Strip(a.Value.String()))
				}
				return a
			}
			handlers = append(handlers, tint.NewHandler(f, &tint.Options{
				Level:       FileLevelVar,
				TimeFormat:  "2006-01-02 15:04:05",
				NoColor:     true,
				ReplaceAttr: replaceAttrFile,
			}))
		}
	}

	return slog.New(&FanoutHandler{handlers: handlers})
}

func isTTY(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && console.IsTerminal(f)
}

func openLogFile(path string) (*os.File, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, err
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
	if err != nil {
		return nil, err
	}
	logFile = f
	return f, nil
}

// Cleanup closes the log file, if one was opened.
func Cleanup() {
	if logFile != nil {
		_ = logFile.Close()
		logFile = nil
	}
}

// FanoutHandler broadcasts records to multiple handlers
type FanoutHandler struct {
	handlers []slog.Handler
}

func (h *FanoutHandler) Enabled(ctx context.Context, level slog.Level) bool {
	for _, handler := range h.handlers {
		if handler.Enabled(ctx, level) {
			return true
		}
	}
	return false
}

func (h *FanoutHandler) Handle(ctx context.Context, r slog.Record) error {
	var errs []error
	for _, handler := range h.handlers {
		if handler.Enabled(ctx, r.Level) {
			if err := handler.Handle(ctx, r.Clone()); err != nil {
				errs = append(errs, err)
			}
		}
	}
	return errors.Join(errs...)
}

func (h *FanoutHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	newHandlers := make([]slog.Handler, len(h.handlers))
	for i, handler := range h.handlers {
		newHandlers[i] = handler.WithAttrs(attrs)
	}
	return &FanoutHandler{handlers: newHandlers}
}

func (h *FanoutHandler) WithGroup(name string) slog.Handler {
	newHandlers := make([]slog.Handler, len(h.handlers))
	for i, handler := range h.handlers {
		newHandlers[i] = handler.WithGroup(name)
	}
	return &FanoutHandler{handlers: newHandlers}
}

// log formats msg with args when it carries verbs, renders colour tags and
// emits one record per line so multi-line messages stay aligned.
func log(ctx context.Context, level slog.Level, msg string, args ...any) {
	h := slog.Default().Handler()
	if !h.Enabled(ctx, level) {
		return
	}

	if len(args) > 0 && strings.Contains(msg, "%") {
		msg = fmt.Sprintf(msg, args...)
		args = nil
	}
	msg = console.Parse(msg)

	now := time.Now()
	for i, line := range strings.Split(msg, "\n") {
		r := slog.NewRecord(now, level, line+resetSuffix(), 0)
		if i == 0 {
			r.Add(args...)
		}
		_ = h.Handle(ctx, r)
	}
}

func resetSuffix() string {
	if !console.ColorEnabled() {
		return ""
	}
	return console.CodeReset
}

func Trace(ctx context.Context, msg string, args ...any) {
	log(ctx, LevelTrace, msg, args...)
}

func Debug(ctx context.Context, msg string, args ...any) {
	log(ctx, LevelDebug, msg, args...)
}

func Info(ctx context.Context, msg string, args ...any) {
	log(ctx, LevelInfo, msg, args...)
}

func Notice(ctx context.Context, msg string, args ...any) {
	log(ctx, LevelNotice, msg, args...)
}

func Warn(ctx context.Context, msg string, args ...any) {
	log(ctx, LevelWarn, msg, args...)
}

func Error(ctx context.Context, msg string, args ...any) {
	log(ctx, LevelError, msg, args...)
}
