package output

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"

	"github.com/google/uuid"
	"gopkg.in/natefinch/lumberjack.v2"
)

// displayKey carries the styled console rendering of a message. The file
// handler drops it so log files only hold plain text.
const displayKey = "display"

// runKey is the attribute attached to every file record
const runKey = "run"

// simpleHandler writes messages without timestamps or level prefixes
type simpleHandler struct {
	writer    io.Writer
	debugMode bool
	quiet     *bool
}

func (h *simpleHandler) Enabled(_ context.Context, level slog.Level) bool {
	if level == slog.LevelDebug {
		return h.debugMode
	}
	return true
}

func (h *simpleHandler) Handle(_ context.Context, record slog.Record) error {
	if *h.quiet && record.Level < slog.LevelError {
		return nil
	}
	msg := record.Message
	record.Attrs(func(a slog.Attr) bool {
		if a.Key == displayKey {
			msg = a.Value.String()
			return false
		}
		return true
	})
	_, err := fmt.Fprintln(h.writer, msg)
	return err
}

func (h *simpleHandler) WithAttrs(_ []slog.Attr) slog.Handler {
	return h
}

func (h *simpleHandler) WithGroup(_ string) slog.Handler {
	return h
}

// createLumberjackLogger reads rotation settings from GITFLOW_LOG_* variables
func createLumberjackLogger(logFilePath string) *lumberjack.Logger {
	config := &lumberjack.Logger{
		Filename:   logFilePath,
		MaxSize:    1,
		MaxBackups: 2,
		MaxAge:     30,
		Compress:   false,
	}

	if v, ok := envInt("GITFLOW_LOG_MAX_SIZE"); ok && v > 0 {
		config.MaxSize = v
	}
	if v, ok := envInt("GITFLOW_LOG_MAX_BACKUPS"); ok && v >= 0 {
		config.MaxBackups = v
	}
	if v, ok := envInt("GITFLOW_LOG_MAX_AGE"); ok && v > 0 {
		config.MaxAge = v
	}

	return config
}

func envInt(name string) (int, bool) {
	raw := os.Getenv(name)
	if raw == "" {
		return 0, false
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	return v, true
}

// multiHandler fans out log records to multiple handlers
type multiHandler struct {
	handlers []slog.Handler
}

func (h *multiHandler) Enabled(ctx context.Context, level slog.Level) bool {
	for _, handler := range h.handlers {
		if handler.Enabled(ctx, level) {
			return true
		}
	}
	return false
}

func (h *multiHandler) Handle(ctx context.Context, record slog.Record) error {
	for _, handler := range h.handlers {
		if handler.Enabled(ctx, record.Level) {
			if err := handler.Handle(ctx, record.Clone()); err != nil {
				return err
			}
		}
	}
	return nil
}

func (h *multiHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	newHandlers := make([]slog.Handler, len(h.handlers))
	for i, handler := range h.handlers {
		newHandlers[i] = handler.WithAttrs(attrs)
	}
	return &multiHandler{handlers: newHandlers}
}

func (h *multiHandler) WithGroup(name string) slog.Handler {
	newHandlers := make([]slog.Handler, len(h.handlers))
	for i, handler := range h.handlers {
		newHandlers[i] = handler.WithGroup(name)
	}
	return &multiHandler{handlers: newHandlers}
}

// Options configures a Splog
type Options struct {
	// Writer receives console output. Defaults to os.Stdout.
	Writer io.Writer
	// LogFile enables rotating file logging when non-empty
	LogFile string
	// Debug shows debug messages on the console. File logs always include them.
	Debug bool
	// Color renders string arguments of narration with Emphasize
	Color bool
	// RunID tags every file record. A new UUID is generated when empty.
	RunID string
}

// Splog provides console narration and file logging for one invocation
type Splog struct {
	logger    *slog.Logger
	writer    io.Writer
	logWriter io.WriteCloser
	runID     string
	color     bool
	quiet     bool
}

// NewSplogWithOptions creates a splog with optional file logging
func NewSplogWithOptions(opts Options) (*Splog, error) {
	writer := opts.Writer
	if writer == nil {
		writer = os.Stdout
	}
	runID := opts.RunID
	if runID == "" {
		runID = uuid.NewString()
	}

	splog := &Splog{
		writer: writer,
		runID:  runID,
		color:  opts.Color,
	}

	handlers := []slog.Handler{&simpleHandler{
		writer:    writer,
		debugMode: opts.Debug,
		quiet:     &splog.quiet,
	}}

	if opts.LogFile != "" {
		if err := os.MkdirAll(filepath.Dir(opts.LogFile), 0750); err != nil {
			return nil, fmt.Errorf("failed to create log directory: %w", err)
		}

		lumberjackLogger := createLumberjackLogger(opts.LogFile)
		splog.logWriter = lumberjackLogger

		fileHandler := slog.NewTextHandler(lumberjackLogger, &slog.HandlerOptions{
			Level: slog.LevelDebug,
			ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
				switch a.Key {
				case slog.TimeKey:
					return slog.String(a.Key, a.Value.Time().Format("2006-01-02 15:04:05.000"))
				case displayKey:
					return slog.Attr{}
				}
				return a
			},
		}).WithAttrs([]slog.Attr{slog.String(runKey, runID)})

		handlers = append(handlers, fileHandler)
	}

	splog.logger = slog.New(&multiHandler{handlers: handlers})
	return splog, nil
}

// RunID identifies this invocation in log files and continuation state
func (s *Splog) RunID() string {
	return s.runID
}

// SetQuiet suppresses console output other than errors while quiet is true
func (s *Splog) SetQuiet(quiet bool) {
	s.quiet = quiet
}

func (s *Splog) log(level slog.Level, prefix, format string, args []any) {
	plain := prefix + format
	if len(args) > 0 {
		plain = fmt.Sprintf(prefix+format, args...)
	}

	var attrs []slog.Attr
	if s.color && len(args) > 0 {
		styled := make([]any, len(args))
		for i, arg := range args {
			if str, ok := arg.(string); ok {
				styled[i] = Emphasize(str)
			} else {
				styled[i] = arg
			}
		}
		attrs = append(attrs, slog.String(displayKey, fmt.Sprintf(prefix+format, styled...)))
	}

	s.logger.LogAttrs(context.Background(), level, plain, attrs...)
}

// Info writes an info message
// nolint // format string validation is handled internally via fmt.Sprintf
func (s *Splog) Info(format string, args ...any) {
	s.log(slog.LevelInfo, "", format, args)
}

// Debug writes a debug message
// nolint // format string validation is handled internally via fmt.Sprintf
func (s *Splog) Debug(format string, args ...any) {
	s.log(slog.LevelDebug, "", format, args)
}

// Warn writes a warning message
// nolint // format string validation is handled internally via fmt.Sprintf
func (s *Splog) Warn(format string, args ...any) {
	s.log(slog.LevelWarn, "⚠️  ", format, args)
}

// Error writes an error message
// nolint // format string validation is handled internally via fmt.Sprintf
func (s *Splog) Error(format string, args ...any) {
	s.log(slog.LevelError, "❌ ", format, args)
}

// Tip writes a tip message
// nolint // format string validation is handled internally via fmt.Sprintf
func (s *Splog) Tip(format string, args ...any) {
	s.log(slog.LevelInfo, "💡 ", format, args)
}

// Newline writes a newline to the console unless quiet
func (s *Splog) Newline() {
	if !s.quiet {
		_, _ = fmt.Fprintln(s.writer)
	}
}

// Close closes the log file if one was opened
func (s *Splog) Close() error {
	if s.logWriter != nil {
		return s.logWriter.Close()
	}
	return nil
}
