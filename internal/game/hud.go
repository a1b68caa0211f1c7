package game

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/Garsondee/Ghost-Lanes/internal/sim"
)

const (
	buttonWidth  = 120
	buttonHeight = 56
	buttonGap    = 12
	previewSize  = 96
)

var labelFace = text.NewGoXFace(basicfont.Face7x13)

var (
	panelBg      = color.RGBA{R: 22, G: 18, B: 30, A: 255}
	buttonOff    = color.RGBA{R: 45, G: 40, B: 55, A: 255}
	buttonOn     = color.RGBA{R: 60, G: 120, B: 80, A: 255}
	buttonInvert = color.RGBA{R: 140, G: 70, B: 60, A: 255}
	outline      = color.RGBA{R: 110, G: 100, B: 130, A: 255}
	captureTint  = color.RGBA{R: 235, G: 195, B: 60, A: 40}
)

// drawLabel writes s with the basic bitmap face at (x, y).
func drawLabel(screen *ebiten.Image, s string, x, y float64, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(screen, s, labelFace, op)
}

// effectorCaption is the button label, e.g. "E2 +1 ON".
func effectorCaption(i int, e sim.EffectorView) string {
	c := e.Strength
	if e.Inverted {
		c = -c
	}
	state := "off"
	if e.Enabled {
		state = "ON"
	}
	return fmt.Sprintf("E%d %+d %s", i+1, c, state)
}

// drawPanel renders the effector buttons, the dial and the wanted poster.
func drawPanel(screen *ebiten.Image, snap sim.Snapshot, width int) {
	x0 := float32(borderWidth)
	y0 := float32(borderWidth)
	vector.FillRect(screen, x0, y0, float32(width), panelHeight-8, panelBg, false)

	for i, e := range snap.Effectors {
		bx := x0 + 12 + float32(i)*(buttonWidth+buttonGap)
		by := y0 + 12
		fill := buttonOff
		if e.Enabled {
			fill = buttonOn
			if e.Inverted {
				fill = buttonInvert
			}
		}
		vector.FillRect(screen, bx, by, buttonWidth, buttonHeight, fill, false)
		vector.StrokeRect(screen, bx, by, buttonWidth, buttonHeight, 1.5, outline, false)
		drawLabel(screen, effectorCaption(i, e), float64(bx+8), float64(by+8), color.White)
		if e.Inverted {
			drawLabel(screen, "inverted", float64(bx+8), float64(by+30), color.RGBA{R: 230, G: 180, B: 170, A: 255})
		}
	}

	dialX := x0 + 12 + sim.EffectorCount*(buttonWidth+buttonGap)
	vector.StrokeRect(screen, dialX, y0+12, 60, buttonHeight, 1.5, outline, false)
	drawLabel(screen, fmt.Sprintf("x%d", snap.Dial), float64(dialX+18), float64(y0+30), color.White)

	ebitenutil.DebugPrintAt(screen, "1-5 toggle  Shift+1-5 invert  D dial  Space fire  C capture  N new", int(x0)+12, int(y0)+buttonHeight+24)

	px := x0 + float32(width) - previewSize - 12
	py := y0 + 12
	vector.StrokeRect(screen, px, py, previewSize, previewSize, 1.5, hatGold, false)
	drawLabel(screen, "WANTED", float64(px+24), float64(py+4), hatGold)
	drawGhost(screen, snap.Target, px+previewSize/2, py+previewSize/2+14, 22, 1)
}

// drawTrack renders the lanes with the capture lane highlighted.
func drawTrack(screen *ebiten.Image, tl trackLayout, captureLane int) {
	for lane := 0; lane < tl.laneCount; lane++ {
		r := tl.lane(lane, 0)
		shade := uint8(28)
		if lane%2 == 1 {
			shade = 34
		}
		vector.FillRect(screen, float32(r.x), float32(r.y), float32(r.w), float32(r.h), color.RGBA{R: shade, G: shade, B: shade + 10, A: 255}, false)
		if lane == captureLane {
			vector.FillRect(screen, float32(r.x), float32(r.y), float32(r.w), float32(r.h), captureTint, false)
			ebitenutil.DebugPrintAt(screen, "CAPTURE", int(r.x)+26, int(r.y+r.h)-18)
		}
		vector.StrokeLine(screen, float32(r.x), float32(r.y), float32(r.x), float32(r.y+r.h), 1, outline, false)
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("%d", lane), int(r.x)+4, int(r.y)+2)
	}
	right := tl.left + tl.width()
	vector.StrokeLine(screen, float32(right), float32(tl.top), float32(right), float32(tl.top+laneHeight), 1, outline, false)
}

// drawHUD renders resources and, once the game is over, the result banner.
func drawHUD(screen *ebiten.Image, snap sim.Snapshot, tl trackLayout) {
	y := tl.top + laneHeight + 12
	drawLabel(screen, fmt.Sprintf("Charges: %d", snap.Resources.Charges), tl.left, y, color.White)
	drawLabel(screen, fmt.Sprintf("Reputation: %d", snap.Resources.Reputation), tl.left+140, y, color.White)
	drawLabel(screen, fmt.Sprintf("Turn: %d", snap.Turn), tl.left+300, y, color.White)

	if !snap.Result.Terminal() {
		return
	}
	banner := sim.Describe(snap.Result, snap.Reason) + "  (N: new session)"
	clr := color.RGBA{R: 120, G: 220, B: 120, A: 255}
	if snap.Result == sim.ResultLost {
		clr = color.RGBA{R: 230, G: 90, B: 90, A: 255}
	}
	drawLabel(screen, banner, tl.left, y+24, clr)
}
