package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"termoca/board"
)

func TestDefaultConfigIsValid(t *testing.T) {
	cfg := DefaultConfig
	require.NoError(t, cfg.Validate())
	assert.Equal(t, 'c', cfg.Keys.Roll)
	assert.Equal(t, 'q', cfg.Keys.Quit)
}

func TestValidateRejectsBadValues(t *testing.T) {
	tests := map[string]func(c *Config){
		"color out of range": func(c *Config) { c.Theme.Colors.BonusColor = 256 },
		"negative color":     func(c *Config) { c.Theme.Colors.TextColor = -1 },
		"control key":        func(c *Config) { c.Keys.Roll = '\n' },
		"same keys":          func(c *Config) { c.Keys.Quit = c.Keys.Roll },
		"keys differ by case": func(c *Config) {
			c.Keys.Roll = 'C'
			c.Keys.Quit = 'c'
		},
	}
	for name, mutate := range tests {
		t.Run(name, func(t *testing.T) {
			cfg := DefaultConfig
			mutate(&cfg)
			err := cfg.Validate()
			var invalid *InvalidConfig
			assert.True(t, errors.As(err, &invalid), "got %v", err)
		})
	}
}

func TestReadCfgFileOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"keys":{"roll":32},"record":{"enabled":true}}`), 0644))

	cfg := DefaultConfig
	require.NoError(t, readCfgFile(path, &cfg))

	assert.Equal(t, ' ', cfg.Keys.Roll)
	assert.Equal(t, 'q', cfg.Keys.Quit, "fields missing from the file keep their default")
	assert.True(t, cfg.Record.Enabled)
	assert.Equal(t, DefaultTheme, cfg.Theme)
}

func TestReadCfgFileBadJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"keys":`), 0644))

	cfg := DefaultConfig
	err := readCfgFile(path, &cfg)
	var invalid *InvalidConfig
	assert.True(t, errors.As(err, &invalid), "got %v", err)
}

func TestSaveCfgFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	cfg := DefaultConfig
	cfg.Keys.Roll = 'r'
	require.NoError(t, saveCfgFile(path, &cfg, 0600))

	loaded := DefaultConfig
	require.NoError(t, readCfgFile(path, &loaded))
	assert.Equal(t, 'r', loaded.Keys.Roll)
}

func TestKindColor(t *testing.T) {
	cfg := DefaultConfig
	assert.Equal(t, cfg.Theme.Colors.StartColor, cfg.KindColor(board.Start))
	assert.Equal(t, cfg.Theme.Colors.EndColor, cfg.KindColor(board.End))
	assert.Equal(t, cfg.Theme.Colors.SetbackColor, cfg.KindColor(board.Setback))
	assert.Equal(t, cfg.Theme.Colors.BonusColor, cfg.KindColor(board.Bonus))
	assert.Equal(t, cfg.Theme.Colors.NormalColor, cfg.KindColor(board.Normal))
}

func TestHistoryDir(t *testing.T) {
	cfg := DefaultConfig
	assert.Contains(t, cfg.HistoryDir(), filepath.Join("termoca", "history"))
	cfg.Record.Dir = "/tmp/goose"
	assert.Equal(t, "/tmp/goose", cfg.HistoryDir())
}

func TestSetKindColor(t *testing.T) {
	cfg := DefaultConfig
	for i, kind := range board.Kinds {
		cfg.SetKindColor(kind, 100+i)
	}
	for i, kind := range board.Kinds {
		assert.Equal(t, 100+i, cfg.KindColor(kind))
	}
}
