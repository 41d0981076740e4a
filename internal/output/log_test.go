package output

import (
	"bytes"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
)

func TestSetupLogging_TimestampDefaultOn(t *testing.T) {
	var buf bytes.Buffer
	SetupLogging(LogConfig{Writer: &buf})
	Info("test")
	assert.Regexp(t, `\d{2}:\d{2}:\d{2}`, buf.String(), "default output should contain a timestamp")
}

func TestSetupLogging_TimestampExplicitlyDisabled(t *testing.T) {
	var buf bytes.Buffer
	SetupLogging(LogConfig{Writer: &buf, Timestamps: BoolPtr(false)})
	Info("hello")
	out := strings.TrimSpace(buf.String())
	assert.NotRegexp(t, `^\d{1,2}:\d{2}:\d{2}`, out, "output should not start with a timestamp")
	assert.Contains(t, out, "hello")
}

func TestSetupLogging_VerboseEnablesDebugLevel(t *testing.T) {
	var buf bytes.Buffer
	SetupLogging(LogConfig{Writer: &buf, Verbose: true})
	assert.Equal(t, log.DebugLevel, Logger.GetLevel(), "verbose should set debug level")

	Debug("verbose-msg")
	assert.Contains(t, buf.String(), "verbose-msg")
}

func TestSetupLogging_DefaultInfoLevel(t *testing.T) {
	var buf bytes.Buffer
	SetupLogging(LogConfig{Writer: &buf})
	assert.Equal(t, log.InfoLevel, Logger.GetLevel(), "default should be info level")

	Debug("hidden")
	assert.NotContains(t, buf.String(), "hidden")
}

func TestProjectLogger_HasPrefix(t *testing.T) {
	SetupLogging(LogConfig{Writer: &bytes.Buffer{}})
	projectLog := ProjectLogger("demo")
	assert.NotNil(t, projectLog)
	assert.Contains(t, projectLog.GetPrefix(), "demo", "prefix should contain project name")
}

func TestProjectLogger_InheritsLevel(t *testing.T) {
	SetupLogging(LogConfig{Writer: &bytes.Buffer{}, Verbose: true})
	projectLog := ProjectLogger("demo")
	assert.Equal(t, log.DebugLevel, projectLog.GetLevel(), "project logger should inherit debug level")
}

func TestBoolPtr(t *testing.T) {
	assert.True(t, *BoolPtr(true))
	assert.False(t, *BoolPtr(false))
}
