package game

import (
	"math"
	"math/rand"

	"github.com/Garsondee/Ghost-Lanes/internal/sim"
)

// Cosmetic motion: ghosts bob at π rad/s with a 10px radius around a point
// 15px above their spot, and scoot at 300px/s.
const (
	ghostRadius = 20
	bobOmega    = math.Pi
	bobRadius   = 10
	bobOffset   = 15
	scootSpeed  = 300.0
	fadePerSec  = 2.5
)

// ghostSprite is the on-screen state of one ghost. Only the lane index in the
// session matters to the rules; everything here is animation.
type ghostSprite struct {
	id      int
	variant sim.Variant

	x, y   float64
	tx, ty float64
	theta  float64

	scooting bool
	exiting  bool
	captured bool
	alpha    float64
	gone     bool
}

func newGhostSprite(rng *rand.Rand, tl trackLayout, g sim.GhostView) *ghostSprite {
	x, y := tl.ghostSpot(rng, g.Lane)
	return &ghostSprite{
		id:      g.ID,
		variant: g.Variant,
		x:       x,
		y:       y,
		tx:      x,
		ty:      y,
		theta:   rng.Float64() * 2 * math.Pi,
		alpha:   1,
	}
}

// scootTo starts a glide toward (x,y).
func (gs *ghostSprite) scootTo(x, y float64) {
	gs.tx, gs.ty = x, y
	gs.scooting = true
}

// busy reports whether the sprite is still animating a rules change.
func (gs *ghostSprite) busy() bool {
	return !gs.gone && (gs.scooting || gs.captured)
}

// bob is the vertical offset of the body at the current phase.
func (gs *ghostSprite) bob() float64 {
	return math.Sin(gs.theta)*bobRadius - bobOffset
}

func (gs *ghostSprite) update(dt float64) {
	gs.theta += bobOmega * dt

	if gs.captured {
		gs.alpha -= fadePerSec * dt
		if gs.alpha <= 0 {
			gs.alpha = 0
			gs.gone = true
		}
		return
	}

	if !gs.scooting {
		return
	}
	dx := gs.tx - gs.x
	dy := gs.ty - gs.y
	remaining := math.Hypot(dx, dy)
	step := scootSpeed * dt
	if step >= remaining {
		gs.x, gs.y = gs.tx, gs.ty
		gs.scooting = false
		if gs.exiting {
			gs.gone = true
		}
		return
	}
	gs.x += dx / remaining * step
	gs.y += dy / remaining * step
}

// spriteSet tracks every sprite that is still visible.
type spriteSet struct {
	byID   map[int]*ghostSprite
	order  []int
	layout trackLayout
	rng    *rand.Rand
}

func newSpriteSet(rng *rand.Rand, tl trackLayout, ghosts []sim.GhostView) *spriteSet {
	ss := &spriteSet{byID: make(map[int]*ghostSprite), layout: tl, rng: rng}
	for _, g := range ghosts {
		ss.byID[g.ID] = newGhostSprite(rng, tl, g)
		ss.order = append(ss.order, g.ID)
	}
	return ss
}

// applyFire starts glides for every move in report. Exiting ghosts slide one
// lane past the edge they left through.
func (ss *spriteSet) applyFire(report sim.FireReport) {
	for _, mv := range report.Moves {
		gs, ok := ss.byID[mv.GhostID]
		if !ok {
			continue
		}
		lane := mv.To
		if mv.Exited {
			gs.exiting = true
			if mv.To < 0 {
				lane = -1
			} else {
				lane = ss.layout.laneCount
			}
		}
		x, y := ss.layout.ghostSpot(ss.rng, lane)
		gs.scootTo(x, y)
	}
}

// applyCapture fades out every captured ghost.
func (ss *spriteSet) applyCapture(report sim.CaptureReport) {
	for _, g := range report.Captured {
		if gs, ok := ss.byID[g.ID]; ok {
			gs.captured = true
		}
	}
}

// update advances animation and drops finished sprites. It returns true
// while any sprite is still animating a rules change.
func (ss *spriteSet) update(dt float64) bool {
	busy := false
	kept := ss.order[:0]
	for _, id := range ss.order {
		gs := ss.byID[id]
		gs.update(dt)
		if gs.gone {
			delete(ss.byID, id)
			continue
		}
		if gs.busy() {
			busy = true
		}
		kept = append(kept, id)
	}
	ss.order = kept
	return busy
}

// visible returns sprites in stable draw order.
func (ss *spriteSet) visible() []*ghostSprite {
	out := make([]*ghostSprite, 0, len(ss.order))
	for _, id := range ss.order {
		out = append(out, ss.byID[id])
	}
	return out
}
