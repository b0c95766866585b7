package render

import (
	"fmt"
	"image/color"
	"math"

	"github.com/automoto/castlecrush/config"
	"github.com/automoto/castlecrush/core"
	"github.com/automoto/castlecrush/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var (
	drawOp = &ebiten.DrawImageOptions{}
	pixel  *ebiten.Image
)

func whitePixel() *ebiten.Image {
	if pixel == nil {
		pixel = ebiten.NewImage(1, 1)
		pixel.Fill(color.White)
	}
	return pixel
}

// Draw renders one snapshot with flat debug shapes.
func Draw(screen *ebiten.Image, snap core.Snapshot, p config.PaletteConfig) {
	screen.Fill(p.Sky)

	for _, e := range snap.Entities {
		if e.Hidden {
			continue
		}
		switch e.Kind {
		case core.KindBoundary:
			drawBox(screen, e, p.Ground)
		case core.KindBlock:
			drawBox(screen, e, blockColor(p, e))
		case core.KindTarget:
			drawBox(screen, e, p.Target)
		case core.KindCannon:
			drawBox(screen, e, p.Cannon)
		case core.KindProjectile:
			vector.FillCircle(screen, float32(e.X), float32(e.Y), float32(e.Width/2), p.Projectile, true)
		}
	}

	drawAim(screen, snap.Aim, p)
	drawHint(screen, snap.Hint, p)
	drawHUD(screen, snap, p)
}

// drawBox fills a rotated rectangle centred on the entity.
func drawBox(screen *ebiten.Image, e core.EntityView, c color.Color) {
	drawOp.GeoM.Reset()
	drawOp.ColorScale.Reset()
	drawOp.GeoM.Scale(e.Width, e.Height)
	drawOp.GeoM.Translate(-e.Width/2, -e.Height/2)
	drawOp.GeoM.Rotate(e.Rotation)
	drawOp.GeoM.Translate(e.X, e.Y)
	drawOp.ColorScale.ScaleWithColor(c)
	screen.DrawImage(whitePixel(), drawOp)
}

func blockColor(p config.PaletteConfig, e core.EntityView) color.RGBA {
	if len(p.Block) == 0 {
		return color.RGBA{A: 255}
	}
	tier := min(e.DamageTier, len(p.Block)-1)
	c := p.Block[tier]
	if e.Flash > 0 {
		c = lerp(c, color.RGBA{R: 255, G: 255, B: 255, A: 255}, e.Flash)
	}
	return c
}

func lerp(a, b color.RGBA, t float32) color.RGBA {
	mix := func(x, y uint8) uint8 {
		return uint8(float32(x) + (float32(y)-float32(x))*t)
	}
	return color.RGBA{R: mix(a.R, b.R), G: mix(a.G, b.G), B: mix(a.B, b.B), A: mix(a.A, b.A)}
}

func drawAim(screen *ebiten.Image, aim core.AimView, p config.PaletteConfig) {
	tipX := aim.PivotX + math.Cos(aim.Angle)*aim.BarrelLength
	tipY := aim.PivotY + math.Sin(aim.Angle)*aim.BarrelLength
	vector.StrokeLine(screen, float32(aim.PivotX), float32(aim.PivotY), float32(tipX), float32(tipY), 12, p.Barrel, true)

	for _, s := range aim.Samples {
		c := p.AimDot
		c.A = uint8(float64(c.A) * s.Opacity)
		vector.FillCircle(screen, float32(s.X), float32(s.Y), float32(4*s.Scale), c, true)
	}

	if aim.Aiming && aim.MaxPower > 0 {
		const barW, barH = 60, 6
		x, y := float32(aim.PivotX-barW/2), float32(aim.PivotY+40)
		vector.FillRect(screen, x, y, barW, barH, color.RGBA{A: 160}, false)
		vector.FillRect(screen, x, y, float32(barW*aim.Power/aim.MaxPower), barH, p.Target, false)
	}
}

func drawHUD(screen *ebiten.Image, snap core.Snapshot, p config.PaletteConfig) {
	for i := 0; i < snap.Aim.ShotsAllowed; i++ {
		c := p.Projectile
		if i >= snap.Aim.ShotsRemaining {
			c.A = 60
		}
		vector.FillCircle(screen, float32(20+i*24), 20, 8, c, true)
	}
	status := fmt.Sprintf("round %d  [R] reset", snap.Number)
	if fonts.Loaded(fonts.HUD) {
		text.Draw(screen, status, fonts.HUD.Get(), 8, 48, p.Text)
	} else {
		ebitenutil.DebugPrintAt(screen, status, 8, 36)
	}
}

// drawHint shows a hand dragging back from the barrel pivot.
func drawHint(screen *ebiten.Image, hint core.HintView, p config.PaletteConfig) {
	if !hint.Visible {
		return
	}
	trail := color.RGBA{p.Hint.R / 3, p.Hint.G / 3, p.Hint.B / 3, p.Hint.A / 3}
	vector.StrokeLine(screen, float32(hint.FromX), float32(hint.FromY), float32(hint.X), float32(hint.Y), 3, trail, true)
	vector.FillCircle(screen, float32(hint.X), float32(hint.Y), 10, p.Hint, true)
	vector.StrokeCircle(screen, float32(hint.X), float32(hint.Y), 14, 2, p.Hint, true)
}
