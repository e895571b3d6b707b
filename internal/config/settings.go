package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// UnitSettings describes the starting unit.
type UnitSettings struct {
	Name      string `yaml:"name"`
	Health    int    `yaml:"health"`
	MoveRange int    `yaml:"moveRange"`
	Q         int    `yaml:"q"`
	R         int    `yaml:"r"`
}

type ScreenSettings struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// Settings — настройки запуска, загружаемые из YAML.
type Settings struct {
	BoardRadius   int            `yaml:"boardRadius"`
	HexSizeX      float64        `yaml:"hexSizeX"`
	HexSizeY      float64        `yaml:"hexSizeY"`
	MoveBlendRate float64        `yaml:"moveBlendRate"`
	MaxDeltaTime  float64        `yaml:"maxDeltaTime"`
	Unit          UnitSettings   `yaml:"unit"`
	Screen        ScreenSettings `yaml:"screen"`
	AssetDir      string         `yaml:"assetDir"`
	SaveAppName   string         `yaml:"saveAppName"`
}

// Default returns the built-in settings.
func Default() *Settings {
	return &Settings{
		BoardRadius:   BoardRadius,
		HexSizeX:      HexSizeX,
		HexSizeY:      HexSizeY,
		MoveBlendRate: MoveBlendRate,
		MaxDeltaTime:  MaxDeltaTime,
		Unit: UnitSettings{
			Name:      UnitName,
			Health:    UnitHealth,
			MoveRange: UnitMoveRange,
			Q:         UnitStartQ,
			R:         UnitStartR,
		},
		Screen:      ScreenSettings{Width: ScreenWidth, Height: ScreenHeight},
		AssetDir:    AssetDir,
		SaveAppName: SaveAppName,
	}
}

// Load reads settings from a YAML file. Fields missing from the file keep
// their default values.
func Load(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	s := Default()
	if err := yaml.Unmarshal(data, s); err != nil {
		return nil, fmt.Errorf("failed to parse config YAML from %s: %w", path, err)
	}
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return s, nil
}

// Validate checks value ranges.
func (s *Settings) Validate() error {
	if s.BoardRadius < 0 {
		return fmt.Errorf("%w: boardRadius must be >= 0, got %d", ErrInvalidConfig, s.BoardRadius)
	}
	if s.HexSizeX <= 0 || s.HexSizeY <= 0 {
		return fmt.Errorf("%w: hex size must be positive, got %vx%v", ErrInvalidConfig, s.HexSizeX, s.HexSizeY)
	}
	if s.MoveBlendRate <= 0 {
		return fmt.Errorf("%w: moveBlendRate must be positive, got %v", ErrInvalidConfig, s.MoveBlendRate)
	}
	if s.MaxDeltaTime <= 0 {
		return fmt.Errorf("%w: maxDeltaTime must be positive, got %v", ErrInvalidConfig, s.MaxDeltaTime)
	}
	if s.Unit.MoveRange < 0 {
		return fmt.Errorf("%w: unit moveRange must be >= 0, got %d", ErrInvalidConfig, s.Unit.MoveRange)
	}
	if s.Screen.Width <= 0 || s.Screen.Height <= 0 {
		return fmt.Errorf("%w: screen size must be positive", ErrInvalidConfig)
	}
	return nil
}
