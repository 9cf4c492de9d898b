package logging

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/bytedance/sonic"
)

// Format represents the output format of a Logger
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
)

// Field is a key-value pair attached to a log entry
type Field struct {
	Key   string
	Value interface{}
}

// F is shorthand for constructing a Field
func F(key string, value interface{}) Field {
	return Field{Key: key, Value: value}
}

// Entry is a single log record as written in JSON format
type Entry struct {
	Timestamp time.Time              `json:"timestamp"`
	Level     string                 `json:"level"`
	Message   string                 `json:"message"`
	Fields    map[string]interface{} `json:"fields,omitempty"`
}

// Logger writes structured debug entries to a single writer
type Logger struct {
	mu     sync.Mutex
	out    io.Writer
	format Format
	now    func() time.Time
}

// NewLogger creates a logger writing entries to out, stderr if nil
func NewLogger(out io.Writer, format Format) *Logger {
	if out == nil {
		out = os.Stderr
	}
	if format != FormatJSON {
		format = FormatText
	}
	return &Logger{
		out:    out,
		format: format,
		now:    time.Now,
	}
}

// Debug logs msg with fields
func (l *Logger) Debug(msg string, fields ...Field) {
	l.log(msg, fields)
}

// Debugf logs a formatted debug message
func (l *Logger) Debugf(format string, args ...interface{}) {
	l.log(fmt.Sprintf(format, args...), nil)
}

func (l *Logger) log(msg string, fields []Field) {
	l.mu.Lock()
	defer l.mu.Unlock()

	entry := Entry{
		Timestamp: l.now(),
		Level:     "DEBUG",
		Message:   strings.TrimRight(msg, "\n"),
	}
	if len(fields) > 0 {
		entry.Fields = make(map[string]interface{}, len(fields))
		for _, f := range fields {
			entry.Fields[f.Key] = f.Value
		}
	}

	var line string
	if l.format == FormatJSON {
		data, err := sonic.Marshal(entry)
		if err != nil {
			line = fmt.Sprintf("%s [%s] %s (marshal error: %v)", entry.Timestamp.Format(time.RFC3339), entry.Level, entry.Message, err)
		} else {
			line = string(data)
		}
	} else {
		line = formatText(entry)
	}

	fmt.Fprintln(l.out, line)
}

func formatText(entry Entry) string {
	var b strings.Builder
	b.WriteString(entry.Timestamp.Format(time.RFC3339))
	b.WriteString(" [")
	b.WriteString(entry.Level)
	b.WriteString("] ")
	b.WriteString(entry.Message)

	keys := make([]string, 0, len(entry.Fields))
	for k := range entry.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(&b, " %s=%v", k, entry.Fields[k])
	}
	return b.String()
}
