package config

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"unicode/utf8"

	"github.com/adrg/xdg"
	"github.com/spf13/viper"
	"go.uber.org/zap/zapcore"

	"othello-local/engine"
)

var (
	cfgFile = "othello-local/config.json"
)

// Hint modes.
const (
	HintsAsk    = "ask"
	HintsAlways = "always"
	HintsNever  = "never"
)

type InvalidConfig struct {
	err string
}

func (e *InvalidConfig) Error() string {
	return fmt.Sprintf("Config error: %s", e.err)
}

type ConfigColors struct {
	BoardColor        int `json:"board" mapstructure:"board"`
	BoardColorAlt     int `json:"board_alt" mapstructure:"board_alt"`
	FirstColor        int `json:"first" mapstructure:"first"`
	SecondColor       int `json:"second" mapstructure:"second"`
	HintColor         int `json:"hint" mapstructure:"hint"`
	CursorColorBG     int `json:"cursor_bg" mapstructure:"cursor_bg"`
	LastPlayedColorBG int `json:"last_played_bg" mapstructure:"last_played_bg"`
}

// ConfigSymbols are single characters, stored as strings so the file stays readable.
type ConfigSymbols struct {
	First  string `json:"first" mapstructure:"first"`
	Second string `json:"second" mapstructure:"second"`
	Empty  string `json:"empty" mapstructure:"empty"`
	Hint   string `json:"hint" mapstructure:"hint"`
}

type Theme struct {
	DrawCursorBackground     bool          `json:"draw_cursor_bg" mapstructure:"draw_cursor_bg"`
	DrawLastPlayedBackground bool          `json:"draw_last_played_bg" mapstructure:"draw_last_played_bg"`
	Colors                   ConfigColors  `json:"colors" mapstructure:"colors"`
	Symbols                  ConfigSymbols `json:"symbols" mapstructure:"symbols"`
}

// LogConfig controls the zap logger. File is a zap output path, "stderr" by default.
type LogConfig struct {
	Level string `json:"level" mapstructure:"level"`
	File  string `json:"file" mapstructure:"file"`
}

type Config struct {
	Theme Theme     `json:"theme" mapstructure:"theme"`
	Hints string    `json:"hints" mapstructure:"hints"`
	Log   LogConfig `json:"log" mapstructure:"log"`
}

// InitConfig starts from DefaultConfig and overlays the user's config file, if any.
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
	symbols := []string{c.Theme.Symbols.First, c.Theme.Symbols.Second, c.Theme.Symbols.Empty, c.Theme.Symbols.Hint}
	for _, s := range symbols {
		if utf8.RuneCountInString(s) != 1 {
			return &InvalidConfig{fmt.Sprintf("symbol %q must be exactly one character", s)}
		}
		r, _ := utf8.DecodeRuneInString(s)
		if r < 32 || (r >= 127 && r <= 159) {
			return &InvalidConfig{"Unicode characters 1-31 and 127-159 are not allowed"}
		}
	}
	if c.Theme.Symbols.First == c.Theme.Symbols.Second {
		return &InvalidConfig{"first and second player symbols must differ"}
	}

	switch c.Hints {
	case HintsAsk, HintsAlways, HintsNever:
	default:
		return &InvalidConfig{fmt.Sprintf("hints must be %q, %q or %q, got %q", HintsAsk, HintsAlways, HintsNever, c.Hints)}
	}

	if _, err := c.Log.ZapLevel(); err != nil {
		return &InvalidConfig{fmt.Sprintf("log level %q: %s", c.Log.Level, err)}
	}
	return nil
}

// Glyphs returns the board characters. Call Validate first.
func (c *Config) Glyphs() engine.Glyphs {
	first, _ := utf8.DecodeRuneInString(c.Theme.Symbols.First)
	second, _ := utf8.DecodeRuneInString(c.Theme.Symbols.Second)
	empty, _ := utf8.DecodeRuneInString(c.Theme.Symbols.Empty)
	hint, _ := utf8.DecodeRuneInString(c.Theme.Symbols.Hint)
	return engine.Glyphs{First: first, Second: second, Empty: empty, Hint: hint}
}

// ZapLevel parses the configured log level.
func (l LogConfig) ZapLevel() (zapcore.Level, error) {
	var level zapcore.Level
	err := level.UnmarshalText([]byte(l.Level))
	return level, err
}

// Save writes the config to the user's xdg config directory and returns the path.
func (c *Config) Save() (string, error) {
	absPath, err := xdg.ConfigFile(cfgFile)
	if err != nil {
		return "", err
	}
	return absPath, saveCfgFile(absPath, c, 0664)
}

func saveCfgFile(filePath string, a interface{}, perm fs.FileMode) error {
	jsonData, err := json.MarshalIndent(a, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filePath, jsonData, perm)
}

func readCfgFile(filePath string, c *Config) error {
	v := viper.New()
	v.SetConfigFile(filePath)
	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("read config %s: %w", filePath, err)
	}
	if err := v.Unmarshal(c); err != nil {
		return &InvalidConfig{fmt.Sprintf("%s: %s", filePath, err)}
	}
	return nil
}
