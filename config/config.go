package config

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"unicode"

	"github.com/adrg/xdg"

	"termoca/board"
)

var (
	cfgFile    = "termoca/config.json"
	logFile    = "termoca/termoca.log"
	historyDir = "termoca/history"
)

type InvalidConfig struct {
	err string
}

func (e *InvalidConfig) Error() string {
	return fmt.Sprintf("Config error: %s", e.err)
}

// ConfigColors are 256-color palette indices, one border color per cell kind.
type ConfigColors struct {
	StartColor   int `json:"start"`
	EndColor     int `json:"end"`
	SetbackColor int `json:"setback"`
	BonusColor   int `json:"bonus"`
	NormalColor  int `json:"normal"`
	TextColor    int `json:"text"`
	TurnColor    int `json:"turn"`
}

type Theme struct {
	KindBorders bool         `json:"kind_borders"`
	Colors      ConfigColors `json:"colors"`
}

type ConfigKeys struct {
	Roll rune `json:"roll"`
	Quit rune `json:"quit"`
}

// RecordConfig controls the transcript written for every game.
type RecordConfig struct {
	Enabled bool   `json:"enabled"`
	Dir     string `json:"dir"` // empty means the XDG data dir
}

type Config struct {
	Theme  Theme        `json:"theme"`
	Keys   ConfigKeys   `json:"keys"`
	Record RecordConfig `json:"record"`
}

// InitConfig loads the config file if there is one, on top of DefaultConfig.
func InitConfig() (*Config, error) {
	config := DefaultConfig
	absPath, err := xdg.SearchConfigFile(cfgFile)
	if err == nil {
		if err := readCfgFile(absPath, &config); err != nil {
			return nil, err
		}
	}
	if err = config.Validate(); err != nil {
		return nil, err
	}
	return &config, nil
}

func (c *Config) Validate() error {
	colors := c.Theme.Colors
	for _, code := range []int{colors.StartColor, colors.EndColor, colors.SetbackColor, colors.BonusColor, colors.NormalColor, colors.TextColor, colors.TurnColor} {
		if code < 0 || code > 255 {
			return &InvalidConfig{fmt.Sprintf("color %d is outside the 256-color palette", code)}
		}
	}
	for _, r := range []rune{c.Keys.Roll, c.Keys.Quit} {
		if r < 32 || (r >= 127 && r <= 159) {
			return &InvalidConfig{"Unicode characters 1-31 and 127-159 are not allowed as keys"}
		}
	}
	// Keys are matched without regard to case.
	if unicode.ToLower(c.Keys.Roll) == unicode.ToLower(c.Keys.Quit) {
		return &InvalidConfig{"roll and quit keys must differ"}
	}
	return nil
}

// KindColor returns the palette index configured for a cell kind.
func (c *Config) KindColor(kind board.Kind) int {
	switch kind {
	case board.Start:
		return c.Theme.Colors.StartColor
	case board.End:
		return c.Theme.Colors.EndColor
	case board.Setback:
		return c.Theme.Colors.SetbackColor
	case board.Bonus:
		return c.Theme.Colors.BonusColor
	}
	return c.Theme.Colors.NormalColor
}

// SetKindColor changes the palette index used for a cell kind.
func (c *Config) SetKindColor(kind board.Kind, code int) {
	switch kind {
	case board.Start:
		c.Theme.Colors.StartColor = code
	case board.End:
		c.Theme.Colors.EndColor = code
	case board.Setback:
		c.Theme.Colors.SetbackColor = code
	case board.Bonus:
		c.Theme.Colors.BonusColor = code
	default:
		c.Theme.Colors.NormalColor = code
	}
}

func (c *Config) Save() error {
	absPath, err := xdg.ConfigFile(cfgFile)
	if err != nil {
		return fmt.Errorf("locate config file: %w", err)
	}
	return saveCfgFile(absPath, c, 0664)
}

// HistoryDir returns the directory transcripts are written to.
func (c *Config) HistoryDir() string {
	if c.Record.Dir != "" {
		return c.Record.Dir
	}
	return filepath.Join(xdg.DataHome, historyDir)
}

// LogFile returns the path of the debug log, creating its directory.
func LogFile() (string, error) {
	return xdg.StateFile(logFile)
}

func saveCfgFile(filePath string, a interface{}, perm fs.FileMode) error {
	jsonData, err := json.MarshalIndent(a, "", "  ")
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	if err := os.WriteFile(filePath, jsonData, perm); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

func readCfgFile(filePath string, a interface{}) error {
	configReader, err := os.ReadFile(filePath)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}
	if err := json.Unmarshal(configReader, a); err != nil {
		return &InvalidConfig{fmt.Sprintf("%s: %s", filePath, err)}
	}
	return nil
}
