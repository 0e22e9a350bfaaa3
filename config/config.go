package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/adrg/xdg"
)

var (
	cfgFile = "termfifteen/config.json"
)

type InvalidConfig struct {
	err string
}

func (e *InvalidConfig) Error() string {
	return fmt.Sprintf("Config error: %s", e.err)
}

type ConfigColors struct {
	TileColor      int `json:"tile"`
	TileColorAlt   int `json:"tile_alt"`
	TextColor      int `json:"text"`
	BlankColor     int `json:"blank"`
	MovableColorBG int `json:"movable_bg"`
	CursorColorFG  int `json:"cursor_fg"`
	CursorColorBG  int `json:"cursor_bg"`
	SolvedColorBG  int `json:"solved_bg"`
}

type ConfigSymbols struct {
	Blank  rune `json:"blank"`
	Cursor rune `json:"cursor"`
}

type Theme struct {
	CheckeredTiles    bool          `json:"checkered_tiles"`
	HighlightMovable  bool          `json:"highlight_movable"`
	DrawCursorOutline bool          `json:"draw_cursor_outline"`
	Colors            ConfigColors  `json:"colors"`
	Symbols           ConfigSymbols `json:"symbols"`
}

// GameConfig holds the defaults for a new puzzle. Options saved from the
// menu take precedence over it.
type GameConfig struct {
	DefaultBoardSize    int `json:"default_board_size"`
	DefaultLimitSeconds int `json:"default_limit_seconds"`
}

// InputConfig tunes how mouse drags become swipes. A terminal cell is
// treated as CellWidth by CellHeight units.
type InputConfig struct {
	SwipeThreshold float64 `json:"swipe_threshold"`
	CellWidth      float64 `json:"cell_width"`
	CellHeight     float64 `json:"cell_height"`
}

type LogConfig struct {
	Debug bool   `json:"debug"`
	Path  string `json:"path"` // empty: XDG state dir
}

type Config struct {
	Theme Theme       `json:"theme"`
	Game  GameConfig  `json:"game"`
	Input InputConfig `json:"input"`
	Log   LogConfig   `json:"log"`
}

// InitConfig returns the defaults overlaid with the user's config file, if
// there is one.
func InitConfig() (*Config, error) {
	config := DefaultConfig
	absPath, err := xdg.SearchConfigFile(cfgFile)
	if err == nil {
		if err := readCfgFile(absPath, &config); err != nil {
			return nil, &InvalidConfig{err.Error()}
		}
	}
	if err = config.Validate(); err != nil {
		return nil, err
	}
	return &config, nil
}

func (c *Config) Validate() error {
	for _, r := range []rune{c.Theme.Symbols.Blank, c.Theme.Symbols.Cursor} {
		if r < 32 || (r >= 127 && r <= 159) {
			return &InvalidConfig{"Unicode characters 1-31 and 127-159 are not allowed"}
		}
	}
	if c.Game.DefaultBoardSize < 3 || c.Game.DefaultBoardSize > 5 {
		return &InvalidConfig{fmt.Sprintf("default_board_size must be 3, 4 or 5, got %d", c.Game.DefaultBoardSize)}
	}
	if c.Game.DefaultLimitSeconds < 60 {
		return &InvalidConfig{fmt.Sprintf("default_limit_seconds must be at least 60, got %d", c.Game.DefaultLimitSeconds)}
	}
	if c.Input.SwipeThreshold <= 0 || c.Input.CellWidth <= 0 || c.Input.CellHeight <= 0 {
		return &InvalidConfig{"swipe_threshold, cell_width and cell_height must be positive"}
	}
	return nil
}

// Save writes the config to the user's XDG config directory.
func (c *Config) Save() error {
	absPath, err := xdg.ConfigFile(cfgFile)
	if err != nil {
		return err
	}
	return saveCfgFile(absPath, c, 0664)
}

func saveCfgFile(filePath string, a interface{}, perm fs.FileMode) error {
	jsonData, err := json.MarshalIndent(a, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filePath, jsonData, perm)
}

func readCfgFile(filePath string, a interface{}) error {
	configReader, err := os.ReadFile(filePath)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return err
	}
	return json.Unmarshal(configReader, a)
}
