package formatter

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/philipp01105/stamplog/core"
)

func withLocal(t *testing.T, loc *time.Location) {
	t.Helper()
	orig := time.Local
	time.Local = loc
	t.Cleanup(func() { time.Local = orig })
}

func TestTextFormatter_Format(t *testing.T) {
	withLocal(t, time.UTC)

	f := NewTextFormatter(Config{})
	when := time.Date(2024, time.May, 1, 13, 37, 5, 999, time.UTC)

	tests := []struct {
		level core.Level
		want  string
	}{
		{core.InfoLevel, "[INFO]2024-05-01 13:37:05:hello\n"},
		{core.ErrorLevel, "[ERROR]2024-05-01 13:37:05:hello\n"},
		{core.FatalLevel, "[FATAL]2024-05-01 13:37:05:hello\n"},
		{core.DebugLevel, "[DEBUG]2024-05-01 13:37:05:hello\n"},
		{core.Level(9), "[UNKNOWN]2024-05-01 13:37:05:hello\n"},
	}

	for _, tt := range tests {
		t.Run(tt.level.String(), func(t *testing.T) {
			entry := &core.Entry{Time: when, Level: tt.level, Message: "hello"}
			got, err := f.Format(entry)
			if err != nil {
				t.Fatalf("Format() error = %v", err)
			}
			if string(got) != tt.want {
				t.Errorf("Format() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestTextFormatter_LocalZone(t *testing.T) {
	withLocal(t, time.FixedZone("UTC+2", 2*3600))

	f := NewTextFormatter(Config{})
	entry := &core.Entry{
		Time:    time.Date(2024, time.December, 31, 23, 0, 0, 0, time.UTC),
		Level:   core.InfoLevel,
		Message: "rollover",
	}

	var buf bytes.Buffer
	f.FormatEntry(entry, &buf)
	if got, want := buf.String(), "[INFO]2025-01-01 01:00:00:rollover\n"; got != want {
		t.Errorf("FormatEntry() = %q, want %q", got, want)
	}
}

func TestTextFormatter_MessageKeptVerbatim(t *testing.T) {
	f := NewTextFormatter(Config{})
	entry := &core.Entry{Time: time.Now(), Level: core.InfoLevel, Message: "a:b:c"}

	got, _ := f.Format(entry)
	if !strings.HasSuffix(string(got), ":a:b:c\n") {
		t.Errorf("Format() = %q, message not kept verbatim", got)
	}
}

func TestTextFormatter_FormatTo(t *testing.T) {
	withLocal(t, time.UTC)

	f := NewTextFormatter(Config{TimestampFormat: "15:04"})
	entry := &core.Entry{Time: time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC), Level: core.ErrorLevel, Message: "boom"}

	var buf bytes.Buffer
	if err := f.FormatTo(entry, &buf); err != nil {
		t.Fatalf("FormatTo() error = %v", err)
	}
	if got, want := buf.String(), "[ERROR]03:04:boom\n"; got != want {
		t.Errorf("FormatTo() = %q, want %q", got, want)
	}
}

func BenchmarkTextFormatter(b *testing.B) {
	f := NewTextFormatter(Config{})
	entry := &core.Entry{Time: time.Now(), Level: core.InfoLevel, Message: "benchmark message"}
	var buf bytes.Buffer

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		buf.Reset()
		f.FormatEntry(entry, &buf)
	}
}
