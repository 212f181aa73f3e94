package log

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"
)

// LogLevel represents the severity of a report line.
type LogLevel int

const (
	DEBUG LogLevel = iota
	INFO
	WARN
	ERROR
)

// String returns the uppercase name of the level.
func (l LogLevel) String() string {
	switch l {
	case DEBUG:
		return "DEBUG"
	case INFO:
		return "INFO"
	case WARN:
		return "WARN"
	case ERROR:
		return "ERROR"
	default:
		return fmt.Sprintf("LEVEL(%d)", int(l))
	}
}

// Slog maps l onto the corresponding slog level.
func (l LogLevel) Slog() slog.Level {
	switch l {
	case DEBUG:
		return slog.LevelDebug
	case WARN:
		return slog.LevelWarn
	case ERROR:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// VerbosityLevel maps a 0-5 command line verbosity onto a level: 0 and 1
// are ERROR, 2 is WARN, 3 is INFO and anything higher is DEBUG.
func VerbosityLevel(v int) LogLevel {
	switch {
	case v <= 1:
		return ERROR
	case v == 2:
		return WARN
	case v == 3:
		return INFO
	default:
		return DEBUG
	}
}

// LevelFromString parses a level name, case-insensitively. Unrecognised
// names return INFO.
func LevelFromString(s string) LogLevel {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "DEBUG":
		return DEBUG
	case "WARN", "WARNING":
		return WARN
	case "ERROR":
		return ERROR
	default:
		return INFO
	}
}

// LogEntry is a single report line, independent of any slog handler.
type LogEntry struct {
	Timestamp time.Time
	Level     LogLevel
	Message   string
	Fields    map[string]interface{}
}

// LogFormatter renders a LogEntry as one line of text.
type LogFormatter interface {
	Format(entry LogEntry) string
}

// TextFormatter renders entries as
//
//	[2024-01-01 12:00:00] INFO  message key=value
//
// with fields sorted by key.
type TextFormatter struct {
	// TimeFormat defaults to "2006-01-02 15:04:05".
	TimeFormat string
}

// Format implements LogFormatter.
func (f *TextFormatter) Format(entry LogEntry) string {
	tf := f.TimeFormat
	if tf == "" {
		tf = "2006-01-02 15:04:05"
	}
	var b strings.Builder
	fmt.Fprintf(&b, "[%s] %-5s %s", entry.Timestamp.Format(tf), entry.Level, entry.Message)
	for _, k := range sortedKeys(entry.Fields) {
		fmt.Fprintf(&b, " %s=%v", k, entry.Fields[k])
	}
	return b.String()
}

// JSONFormatter renders entries as one JSON object per line.
type JSONFormatter struct {
	// TimeFormat defaults to time.RFC3339.
	TimeFormat string
}

// Format implements LogFormatter.
func (f *JSONFormatter) Format(entry LogEntry) string {
	tf := f.TimeFormat
	if tf == "" {
		tf = time.RFC3339
	}
	obj := make(map[string]interface{}, 3+len(entry.Fields))
	for k, v := range entry.Fields {
		if err, ok := v.(error); ok {
			v = err.Error()
		}
		obj[k] = v
	}
	obj["time"] = entry.Timestamp.Format(tf)
	obj["level"] = entry.Level.String()
	obj["msg"] = entry.Message

	data, err := json.Marshal(obj)
	if err != nil {
		return fmt.Sprintf(`{"time":%q,"level":%q,"msg":%q,"error":"marshal failed"}`,
			entry.Timestamp.Format(tf), entry.Level.String(), entry.Message)
	}
	return string(data)
}

// sortedKeys returns the map keys in sorted order.
func sortedKeys(m map[string]interface{}) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
