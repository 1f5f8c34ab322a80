package log

import (
	"bytes"
	"testing"

	cblog "github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want cblog.Level
	}{
		{"debug", cblog.DebugLevel},
		{"WARN", cblog.WarnLevel},
		{" error ", cblog.ErrorLevel},
		{"", cblog.InfoLevel},
		{"nonsense", cblog.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, parseLevel(tt.in))
		})
	}
}

func TestWarnfWritesToOutput(t *testing.T) {
	var buf bytes.Buffer
	l := newLogger(&buf)
	l.SetLevel(cblog.WarnLevel)

	l.Debugf("hidden %d", 1)
	l.Warnf("invalid color %q", "zzz")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, `invalid color "zzz"`)
}
