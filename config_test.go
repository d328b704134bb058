package daylog

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	config := DefaultConfig()

	assert.True(t, config.Enabled)
	assert.Equal(t, DefaultLogPath, config.LogPath)
	assert.Equal(t, DefaultThreshold, config.Threshold)
	assert.Empty(t, config.ThresholdSet)
	assert.Equal(t, os.FileMode(0o644), config.FileMode)
	assert.Equal(t, os.FileMode(0o755), config.DirMode)
	assert.Equal(t, "2006-01-02 15:04:05", config.DateFormat)
	assert.Equal(t, "log-", config.FilePrefix)
	assert.Equal(t, "log", config.FileExtension)
	assert.False(t, config.Console.Enable)
	assert.NotNil(t, config.Clock)
}

func TestEnvironmentConfigs(t *testing.T) {
	dev := DevelopmentConfig()
	assert.Equal(t, 7, dev.Threshold)
	assert.Equal(t, MicroDateFormat, dev.DateFormat)
	assert.True(t, dev.Console.Enable)

	prod := ProductionConfig()
	assert.Equal(t, 2, prod.Threshold)
	assert.False(t, prod.Console.Enable)
}

func TestConfigNow(t *testing.T) {
	fixed := time.Date(2024, time.May, 1, 12, 0, 0, 0, time.UTC)

	config := Config{Clock: func() time.Time { return fixed }}
	assert.Equal(t, fixed, config.Now())

	config.Clock = nil
	assert.WithinDuration(t, time.Now(), config.Now(), time.Second)
}

func TestThresholdCodes(t *testing.T) {
	config := Config{ThresholdSet: []string{"error", "SQL", "trace", "USER_NOTICE"}}

	codes := config.ThresholdCodes()
	assert.Len(t, codes, 3, "unknown names are skipped")
	assert.Contains(t, codes, 1)
	assert.Contains(t, codes, 3)
	assert.Contains(t, codes, 1024)
}

func TestParseFileMode(t *testing.T) {
	tests := []struct {
		input   string
		want    os.FileMode
		wantErr bool
	}{
		{input: "0644", want: 0o644},
		{input: "640", want: 0o640},
		{input: "0o600", want: 0o600},
		{input: " 0755 ", want: 0o755},
		{input: "", wantErr: true},
		{input: "0899", wantErr: true},
		{input: "17777", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseFileMode(tt.input)
			if tt.wantErr {
				require.Error(t, err)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
