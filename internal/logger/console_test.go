package logger

import (
	"bytes"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNilWriterDiscards(t *testing.T) {
	log := NewConsoleLogger(nil, "trace")

	// Must not panic.
	log.Tracef("trace %d", 1)
	log.Infof("info")
	log.Errorf("error")
}

func TestTimestampPrefix(t *testing.T) {
	var buf bytes.Buffer
	log := NewConsoleLogger(&buf, "info")

	log.Infof("scanning %s", "dir")

	assert.Regexp(t, regexp.MustCompile(`^\[\d{2}:\d{2}:\d{2}\] scanning dir\n$`), buf.String())
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	log := NewConsoleLogger(&buf, "warn")

	log.Tracef("trace message")
	log.Debugf("debug message")
	log.Infof("info message")
	log.Warnf("warn message")
	log.Errorf("error message")

	out := buf.String()
	assert.NotContains(t, out, "trace message")
	assert.NotContains(t, out, "debug message")
	assert.NotContains(t, out, "info message")
	assert.Contains(t, out, "warn message")
	assert.Contains(t, out, "error message")
}

func TestWarnAndErrorLabels(t *testing.T) {
	var buf bytes.Buffer
	log := NewConsoleLogger(&buf, "info")

	log.Warnf("careful")
	log.Errorf("broken")

	// A buffer is not a terminal, so labels stay uncolored.
	assert.Contains(t, buf.String(), "warning: careful")
	assert.Contains(t, buf.String(), "error: broken")
}

func TestUnknownLevelDefaultsToInfo(t *testing.T) {
	var buf bytes.Buffer
	log := NewConsoleLogger(&buf, "shouting")

	log.Debugf("hidden")
	log.Infof("visible")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "visible")
}
