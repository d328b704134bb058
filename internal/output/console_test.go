package output

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetectLevel(t *testing.T) {
	tests := []struct {
		name string
		line string
		want string
	}{
		{name: "error", line: "[2024-01-01 10:00:00][ERROR] disk full\n", want: "ERROR"},
		{name: "micro", line: "[2024-01-01 10:00:00.000123][CORE_WARNING] x\n", want: "CORE_WARNING"},
		{name: "no prefix", line: "plain text\n", want: ""},
		{name: "unterminated", line: "[2024][INFO", want: ""},
		{name: "empty level", line: "[2024][] x", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DetectLevel([]byte(tt.line)))
		})
	}
}

func TestConsoleWriter_Write(t *testing.T) {
	colors := map[string]string{"ERROR": "\x1b[31m"}

	tests := []struct {
		name  string
		mode  ColorMode
		input string
		want  string
	}{
		{
			name:  "colored",
			mode:  ColorModeAlways,
			input: "[ts][ERROR] boom\n",
			want:  "\x1b[31m[ts][ERROR] boom\x1b[0m\n",
		},
		{
			name:  "level without color",
			mode:  ColorModeAlways,
			input: "[ts][INFO] fine\n",
			want:  "[ts][INFO] fine\n",
		},
		{
			name:  "never",
			mode:  ColorModeNever,
			input: "[ts][ERROR] boom\n",
			want:  "[ts][ERROR] boom\n",
		},
		{
			name:  "auto on buffer",
			mode:  ColorModeAuto,
			input: "[ts][ERROR] boom\n",
			want:  "[ts][ERROR] boom\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := &bytes.Buffer{}
			writer := NewConsoleWriter(buf, tt.mode, colors)

			n, err := writer.Write([]byte(tt.input))
			require.NoError(t, err)
			assert.Equal(t, len(tt.input), n)
			assert.Equal(t, tt.want, buf.String())
		})
	}
}

func TestIsTerminalBuffer(t *testing.T) {
	assert.False(t, IsTerminal(&bytes.Buffer{}))
}

func TestConsoleWriterClose(t *testing.T) {
	buf := &closableBuffer{Buffer: &bytes.Buffer{}}

	writer := NewConsoleWriter(buf, ColorModeNever, nil)

	require.NoError(t, writer.Sync())
	require.NoError(t, writer.Close())
	assert.True(t, buf.closed)

	require.NoError(t, NewConsoleWriter(os.Stderr, ColorModeNever, nil).Close())
}
