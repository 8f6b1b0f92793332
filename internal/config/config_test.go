package config

import (
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vancomm/minesweeper-engine/internal/mines"
)

func TestDevelopment(t *testing.T) {
	t.Setenv("MINES_DEVELOPMENT", "1")
	assert.True(t, Development())
	t.Setenv("MINES_DEVELOPMENT", "0")
	assert.False(t, Development())
}

func TestNewGameDefaults(t *testing.T) {
	p, err := NewGame()
	require.NoError(t, err)
	assert.Equal(t, mines.Beginner, p)
}

func TestNewGameFromEnv(t *testing.T) {
	t.Setenv("MINES_ROWS", "16")
	t.Setenv("MINES_COLS", "30")
	t.Setenv("MINES_COUNT", "99")
	t.Setenv("MINES_SAFE_FIRST", "0")

	p, err := NewGame()
	require.NoError(t, err)
	assert.Equal(t, mines.Params{Rows: 16, Cols: 30, MineCount: 99}, p)
}

func TestNewGameErrors(t *testing.T) {
	tests := []struct {
		name, key, value string
	}{
		{"malformed rows", "MINES_ROWS", "nine"},
		{"malformed count", "MINES_COUNT", "1.5"},
		{"too many mines", "MINES_COUNT", "81"},
		{"zero cols", "MINES_COLS", "0"},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Setenv(test.key, test.value)
			_, err := NewGame()
			assert.Error(t, err)
		})
	}
}

func TestLogLevel(t *testing.T) {
	t.Setenv("MINES_LOG_LEVEL", "warn")
	level, err := LogLevel()
	require.NoError(t, err)
	assert.Equal(t, logrus.WarnLevel, level)

	t.Setenv("MINES_LOG_LEVEL", "loud")
	_, err = LogLevel()
	assert.Error(t, err)
}

func TestNewLogFileHook(t *testing.T) {
	t.Setenv("MINES_LOG_FILE", "")
	hook, err := NewLogFileHook(logrus.InfoLevel)
	require.NoError(t, err)
	assert.Nil(t, hook)

	t.Setenv("MINES_LOG_FILE", filepath.Join(t.TempDir(), "mines.log"))
	hook, err = NewLogFileHook(logrus.InfoLevel)
	require.NoError(t, err)
	assert.NotNil(t, hook)
}
