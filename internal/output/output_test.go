package output

import (
	"bytes"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, log.DebugLevel, ParseLevel("debug"))
	assert.Equal(t, log.WarnLevel, ParseLevel(" WARN "))
	assert.Equal(t, log.ErrorLevel, ParseLevel("error"))
	assert.Equal(t, log.InfoLevel, ParseLevel("chatty"))
	assert.Equal(t, log.InfoLevel, ParseLevel(""))
}

func TestSetupLoggingTo(t *testing.T) {
	prev := Logger
	t.Cleanup(func() { Logger = prev })

	var buf bytes.Buffer
	SetupLoggingTo(&buf, "warn", false)

	Debug("hidden")
	Warn("shown", "key", "value")
	Component("http").Error("failed")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "shown")
	assert.Contains(t, out, "key=value")
	assert.Contains(t, out, "component=http")

	buf.Reset()
	SetupLoggingTo(&buf, "error", true)
	Debug("verbose wins")
	assert.Contains(t, buf.String(), "verbose wins")
}

func TestTable(t *testing.T) {
	tbl := NewTable("NAME", "DATABASE").
		Row("DemoApp", "POSTGRESQL").
		Row("Shop", "MYSQL")

	assert.Equal(t, 2, tbl.Len())
	out := tbl.String()
	for _, s := range []string{"NAME", "DATABASE", "DemoApp", "POSTGRESQL", "Shop", "MYSQL"} {
		assert.Contains(t, out, s)
	}
	assert.GreaterOrEqual(t, strings.Count(out, "\n"), 4)
}
