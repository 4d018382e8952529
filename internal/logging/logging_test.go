package logging

import (
	"bytes"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		name string
		want Level
	}{
		{"debug", LevelDebug},
		{"info", LevelInfo},
		{"warn", LevelWarn},
		{"error", LevelError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseLevel(tt.name)
			if err != nil {
				t.Fatalf("ParseLevel(%q) error = %v", tt.name, err)
			}
			if got != tt.want {
				t.Errorf("ParseLevel(%q) = %v, want %v", tt.name, got, tt.want)
			}
		})
	}

	if _, err := ParseLevel("verbose"); err == nil {
		t.Error("ParseLevel(\"verbose\") expected error")
	}
}

func TestLogger_MinimumLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, LevelWarn)

	logger.Debugf("dropped")
	logger.Infof("dropped too")
	logger.Warnf("kept: %d", 1)
	logger.Errorf("kept: %d", 2)

	out := buf.String()
	if strings.Contains(out, "dropped") {
		t.Errorf("messages below minimum level were logged:\n%s", out)
	}
	if !strings.Contains(out, "[WARN]: kept: 1") || !strings.Contains(out, "[ERROR]: kept: 2") {
		t.Errorf("expected warn and error lines, got:\n%s", out)
	}
}

func TestLogger_Format(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, LevelDebug)

	logger.Infof("hello %s", "world")

	line := strings.TrimSpace(buf.String())
	// "2006-01-02 15:04:05 [INFO]: hello world"
	if !strings.HasSuffix(line, "[INFO]: hello world") {
		t.Errorf("unexpected line: %q", line)
	}
	if len(line) < len("2006-01-02 15:04:05") {
		t.Errorf("missing timestamp: %q", line)
	}
}
