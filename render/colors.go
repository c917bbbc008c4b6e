package render

import "github.com/gdamore/tcell/v2"

var (
	RgbBackground     = tcell.NewRGBColor(26, 27, 38)  // Tokyo Night background
	RgbBackgroundAlt  = tcell.NewRGBColor(32, 34, 48)  // Alternate tile shade
	RgbTileEdge       = tcell.NewRGBColor(60, 62, 80)  // Tile seam marker
	RgbPlayableBorder = tcell.NewRGBColor(90, 90, 110) // Letterbox edge

	RgbZombie     = tcell.NewRGBColor(120, 220, 120) // Sickly green
	RgbZombieHurt = tcell.NewRGBColor(255, 120, 120) // Invincible tint
	RgbCat        = tcell.NewRGBColor(255, 200, 80)  // Warm orange
	RgbFollower   = tcell.NewRGBColor(200, 160, 255) // Zombified cat
	RgbReleased   = tcell.NewRGBColor(150, 120, 190) // Fading follower
	RgbEnemy      = tcell.NewRGBColor(255, 80, 80)   // Red

	RgbStatusBar  = tcell.NewRGBColor(255, 255, 255)
	RgbStatusBg   = tcell.NewRGBColor(45, 45, 60)
	RgbLivesLow   = tcell.NewRGBColor(255, 80, 80)
	RgbBannerWin  = tcell.NewRGBColor(144, 238, 144)
	RgbBannerLose = tcell.NewRGBColor(255, 120, 120)
)

// style builds an opaque foreground-on-background style
func style(fg, bg tcell.Color) tcell.Style {
	return tcell.StyleDefault.Foreground(fg).Background(bg)
}
