// internal/config/config.go
package config

import "image/color"

const (
	ScreenWidth  = 1200
	ScreenHeight = 900
	HexSizeX     = 32.0 // полуширина гекса в мировых единицах
	HexSizeY     = 18.0
	BoardRadius  = 5
	MaxDeltaTime = 0.06

	// Стартовый юнит
	UnitName      = "Knight"
	UnitHealth    = 10
	UnitMoveRange = 4
	UnitStartQ    = 1
	UnitStartR    = 0

	MoveBlendRate = 5.0 // коэффициент экспоненциального сглаживания, 1/сек

	IndicatorOffsetX = 30
	IndicatorRadius  = 10.0

	TextCharWidth = 7
	TextOffsetY   = 4

	AssetDir    = "assets"
	SaveAppName = "hex_tactics"
)

var (
	BackgroundColor  = color.RGBA{20, 20, 30, 255}
	BaseTileColor    = color.RGBA{70, 120, 70, 255}
	ActivatedColor   = color.RGBA{70, 130, 180, 160}
	SelectedColor    = color.RGBA{255, 215, 0, 170}
	HoveredColor     = color.RGBA{240, 240, 240, 90}
	TileStrokeColor  = color.RGBA{20, 40, 20, 255}
	UnitColor        = color.RGBA{220, 60, 60, 255}
	TextLightColor   = color.RGBA{240, 240, 240, 255}
	TextDarkColor    = color.RGBA{20, 20, 30, 255}
	IndicatorStroke  = color.RGBA{240, 240, 240, 255}
	StrokeWidth      = 2.0
	PlayerModeColors = []color.RGBA{
		{128, 128, 128, 220}, // Idle
		{70, 130, 180, 220},  // UnitSelected
		{220, 60, 60, 220},   // UnitMoving
	}
)
