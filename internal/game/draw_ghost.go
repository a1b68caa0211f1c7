package game

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/Garsondee/Ghost-Lanes/internal/sim"
)

// bodyColors gives each body tag a distinct fill.
var bodyColors = map[sim.Tag]color.RGBA{
	sim.TagSheet:   {R: 235, G: 235, B: 240, A: 255},
	sim.TagBlob:    {R: 120, G: 210, B: 120, A: 255},
	sim.TagWisp:    {R: 140, G: 190, B: 255, A: 255},
	sim.TagSkull:   {R: 200, G: 190, B: 170, A: 255},
	sim.TagPumpkin: {R: 240, G: 140, B: 40, A: 255},
	sim.TagJelly:   {R: 220, G: 110, B: 210, A: 255},
}

var (
	hatDark  = color.RGBA{R: 30, G: 28, B: 36, A: 255}
	hatGold  = color.RGBA{R: 235, G: 195, B: 60, A: 255}
	hatRed   = color.RGBA{R: 210, G: 60, B: 70, A: 255}
	hatBlue  = color.RGBA{R: 70, G: 110, B: 210, A: 255}
	eyeColor = color.RGBA{R: 20, G: 20, B: 30, A: 255}
)

func fade(c color.RGBA, alpha float64) color.RGBA {
	a := func(v uint8) uint8 { return uint8(float64(v) * alpha) }
	return color.RGBA{R: a(c.R), G: a(c.G), B: a(c.B), A: a(c.A)}
}

// drawGhost draws a variant with its body centred on (cx, cy) at the given
// radius. alpha scales the whole sprite for fade-outs.
func drawGhost(screen *ebiten.Image, v sim.Variant, cx, cy, radius float32, alpha float64) {
	body, ok := bodyColors[v.Body]
	if !ok {
		body = color.RGBA{R: 128, G: 128, B: 128, A: 255}
	}
	body = fade(body, alpha)

	switch v.Body {
	case sim.TagSheet, sim.TagWisp:
		// Rounded head with a skirt below.
		vector.DrawFilledCircle(screen, cx, cy, radius, body, true)
		vector.FillRect(screen, cx-radius, cy, 2*radius, radius, body, false)
		if v.Body == sim.TagWisp {
			vector.StrokeLine(screen, cx, cy+radius, cx+radius*0.6, cy+radius*1.6, 3, body, true)
		}
	case sim.TagBlob, sim.TagJelly:
		vector.DrawFilledCircle(screen, cx, cy+radius*0.2, radius, body, true)
		if v.Body == sim.TagJelly {
			for i := -1; i <= 1; i++ {
				x := cx + float32(i)*radius*0.6
				vector.StrokeLine(screen, x, cy+radius, x, cy+radius*1.5, 2, body, true)
			}
		}
	case sim.TagSkull:
		vector.DrawFilledCircle(screen, cx, cy, radius, body, true)
		vector.FillRect(screen, cx-radius*0.6, cy+radius*0.6, radius*1.2, radius*0.6, body, false)
	case sim.TagPumpkin:
		vector.DrawFilledCircle(screen, cx, cy, radius, body, true)
		vector.StrokeCircle(screen, cx, cy, radius*0.5, 1.5, fade(hatDark, alpha*0.4), true)
	default:
		vector.DrawFilledCircle(screen, cx, cy, radius, body, true)
	}

	eye := fade(eyeColor, alpha)
	vector.DrawFilledCircle(screen, cx-radius*0.35, cy-radius*0.1, radius*0.15, eye, true)
	vector.DrawFilledCircle(screen, cx+radius*0.35, cy-radius*0.1, radius*0.15, eye, true)

	drawHat(screen, v.Hat, cx, cy-radius, radius, alpha)
}

// drawHat draws hat sitting on the point (cx, top).
func drawHat(screen *ebiten.Image, hat sim.Tag, cx, top, radius float32, alpha float64) {
	switch hat {
	case sim.TagTopHat:
		vector.FillRect(screen, cx-radius*0.8, top-2, radius*1.6, 3, fade(hatDark, alpha), false)
		vector.FillRect(screen, cx-radius*0.5, top-radius, radius, radius, fade(hatDark, alpha), false)
	case sim.TagBeanie:
		vector.DrawFilledCircle(screen, cx, top+2, radius*0.6, fade(hatRed, alpha), true)
		vector.DrawFilledCircle(screen, cx, top-radius*0.55, 3, fade(hatRed, alpha), true)
	case sim.TagCrown:
		c := fade(hatGold, alpha)
		vector.FillRect(screen, cx-radius*0.6, top-radius*0.4, radius*1.2, radius*0.4, c, false)
		for i := -1; i <= 1; i++ {
			x := cx + float32(i)*radius*0.5
			vector.StrokeLine(screen, x, top-radius*0.4, x, top-radius*0.8, 3, c, true)
		}
	case sim.TagBow:
		c := fade(hatRed, alpha)
		vector.DrawFilledCircle(screen, cx-radius*0.3, top+2, radius*0.25, c, true)
		vector.DrawFilledCircle(screen, cx+radius*0.3, top+2, radius*0.25, c, true)
	case sim.TagPropeller:
		vector.FillRect(screen, cx-radius*0.5, top-3, radius, 4, fade(hatBlue, alpha), false)
		vector.StrokeLine(screen, cx, top-3, cx, top-radius*0.5, 2, fade(hatDark, alpha), true)
		vector.StrokeLine(screen, cx-radius*0.6, top-radius*0.5, cx+radius*0.6, top-radius*0.5, 2, fade(hatGold, alpha), true)
	case sim.TagWitchHat:
		c := fade(hatDark, alpha)
		vector.FillRect(screen, cx-radius, top-2, radius*2, 3, c, false)
		vector.StrokeLine(screen, cx-radius*0.5, top-2, cx, top-radius*1.4, 3, c, true)
		vector.StrokeLine(screen, cx+radius*0.5, top-2, cx, top-radius*1.4, 3, c, true)
	}
}

// Draw renders the sprite at its current position and bob phase.
func (gs *ghostSprite) Draw(screen *ebiten.Image) {
	drawGhost(screen, gs.variant, float32(gs.x), float32(gs.y+gs.bob()), ghostRadius, gs.alpha)
}
