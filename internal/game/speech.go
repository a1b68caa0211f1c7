package game

import (
	"fmt"
	"image/color"
	"math/rand"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/Garsondee/Ghost-Lanes/internal/sim"
)

// speechLifetime is how many ticks a bubble stays visible (~2 seconds).
const speechLifetime = 120

// SpeechBubble is a short callout anchored where a ghost was captured or
// slipped off the track.
type SpeechBubble struct {
	x, y   float32
	text   string
	detail string
	good   bool
	age    int
}

// capturePhrase picks the callout for one captured ghost.
func capturePhrase(rng *rand.Rand, isTarget bool) (string, string) {
	if isTarget {
		texts := []string{"Got it!", "Bagged!", "That's the one!", "Into the jar!"}
		return texts[rng.Intn(len(texts))], fmt.Sprintf("rep %+d", sim.RepTargetReward)
	}
	texts := []string{"Innocent!", "Wrong ghost!", "Hey, let me go!", "Not me!"}
	return texts[rng.Intn(len(texts))], fmt.Sprintf("rep %+d", sim.RepDecoyPenalty)
}

// bubblesForCapture adds one bubble per captured ghost at its sprite.
func (g *Game) bubblesForCapture(report sim.CaptureReport) {
	target := g.session.Spec().Target
	for _, c := range report.Captured {
		gs, ok := g.sprites.byID[c.ID]
		if !ok {
			continue
		}
		isTarget := c.Variant == target
		text, detail := capturePhrase(g.rng, isTarget)
		g.addBubble(float32(gs.x), float32(gs.y+gs.bob()), text, detail, isTarget)
	}
}

// bubblesForFire calls out every ghost that left the track.
func (g *Game) bubblesForFire(report sim.FireReport) {
	target := g.session.Spec().Target
	for _, mv := range report.Moves {
		if !mv.Exited {
			continue
		}
		gs, ok := g.sprites.byID[mv.GhostID]
		if !ok {
			continue
		}
		detail := ""
		if mv.Variant == target {
			detail = "the target!"
		}
		g.addBubble(float32(gs.x), float32(gs.y+gs.bob()), "Wheee!", detail, false)
	}
}

func (g *Game) addBubble(x, y float32, text, detail string, good bool) {
	// Stack bubbles that would land on the same spot.
	for _, b := range g.speechBubbles {
		if b.x == x && b.y <= y {
			y = b.y - 36
		}
	}
	g.speechBubbles = append(g.speechBubbles, &SpeechBubble{x: x, y: y, text: text, detail: detail, good: good})
}

// ageSpeech advances every bubble by one tick and drops expired ones.
func (g *Game) ageSpeech() {
	kept := g.speechBubbles[:0]
	for _, b := range g.speechBubbles {
		b.age++
		if b.age < speechLifetime {
			kept = append(kept, b)
		}
	}
	g.speechBubbles = kept
}

// drawSpeechBubbles renders active bubbles above their anchor points.
func (g *Game) drawSpeechBubbles(screen *ebiten.Image) {
	for _, b := range g.speechBubbles {
		progress := float64(b.age) / float64(speechLifetime)
		alpha := float32(1.0)
		if progress > 0.70 {
			alpha = float32(1.0 - (progress-0.70)/0.30)
		}
		if alpha < 0.05 {
			continue
		}

		const charW = 6
		const lineH = 14
		const padX = 5
		const padY = 3

		lines := 1
		maxLen := len(b.text)
		if b.detail != "" {
			lines = 2
			maxLen = max(maxLen, len(b.detail))
		}
		bgW := float32(maxLen*charW + padX*2)
		bgH := float32(lines*lineH + padY*2)
		bgX := b.x - bgW/2
		bgY := b.y - ghostRadius*2 - bgH

		vector.FillRect(screen, bgX, bgY, bgW, bgH, color.RGBA{R: 20, G: 18, B: 26, A: uint8(210 * alpha)}, false)

		accent := color.RGBA{R: 220, G: 70, B: 60, A: uint8(220 * alpha)}
		if b.good {
			accent = color.RGBA{R: 90, G: 200, B: 110, A: uint8(220 * alpha)}
		}
		vector.FillRect(screen, bgX, bgY, 3, bgH, accent, false)
		vector.StrokeRect(screen, bgX, bgY, bgW, bgH, 0.5, color.RGBA{R: 100, G: 100, B: 100, A: uint8(80 * alpha)}, false)

		textX := int(bgX + padX + 3)
		textY := int(bgY + padY)
		ebitenutil.DebugPrintAt(screen, b.text, textX, textY)
		if b.detail != "" {
			ebitenutil.DebugPrintAt(screen, b.detail, textX, textY+lineH)
		}
	}
}
