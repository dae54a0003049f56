package render

import (
	"image/color"

	"github.com/automoto/coindash/config"
)

// Palette maps each kind of entity to a fill colour.
type Palette struct {
	Wall, Player, Enemy, Variant, Coin, Door color.RGBA
}

// NormalPalette is the default colour scheme.
func NormalPalette() Palette {
	return Palette{
		Wall:    config.UI.Wall,
		Player:  config.UI.Player,
		Enemy:   config.UI.Enemy,
		Variant: config.UI.Variant,
		Coin:    config.UI.Coin,
		Door:    config.UI.Door,
	}
}

// HighContrastPalette is the alternate scheme toggled from the keyboard.
func HighContrastPalette() Palette {
	hc := config.UI.HighContrast
	return Palette{
		Wall:    hc["wall"],
		Player:  hc["player"],
		Enemy:   hc["enemy"],
		Variant: hc["variant"],
		Coin:    hc["coin"],
		Door:    hc["door"],
	}
}

func (p Palette) EnemyColor(kind config.EnemyKind) color.RGBA {
	if kind == config.EnemyVariant {
		return p.Variant
	}
	return p.Enemy
}
