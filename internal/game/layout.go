package game

import "math/rand"

// Track geometry in logical pixels: 100×400 lanes with a 10px inner margin.
const (
	borderWidth    = 24
	panelHeight    = 150 // effector panel above the track
	hudHeight      = 70  // resources strip below the track
	laneWidth      = 100
	laneHeight     = 400
	laneMargin     = 10
	feedPanelWidth = 320
	minPlayWidth   = 860 // effector panel plus wanted poster
)

// rect is an axis-aligned box in screen space.
type rect struct {
	x float64
	y float64
	w float64
	h float64
}

// trackLayout converts lane indices to screen rectangles.
type trackLayout struct {
	laneCount int
	left      float64
	top       float64
}

func newTrackLayout(laneCount int) trackLayout {
	return trackLayout{
		laneCount: laneCount,
		left:      borderWidth,
		top:       borderWidth + panelHeight,
	}
}

// playWidth is the width of the area left of the feed panel, excluding borders.
func playWidth(laneCount int) int {
	return max(laneCount*laneWidth, minPlayWidth)
}

// screenSize is the logical window size for a track of laneCount lanes.
func screenSize(laneCount int) (int, int) {
	w := borderWidth + playWidth(laneCount) + borderWidth + feedPanelWidth
	h := borderWidth + panelHeight + laneHeight + hudHeight + borderWidth
	return w, h
}

// lane returns the bounds of lane shrunk by margin on every side. Lanes
// outside the track (-1, laneCount) are valid and used for exit targets.
func (tl trackLayout) lane(lane int, margin float64) rect {
	x := tl.left + float64(lane)*laneWidth + margin
	return rect{
		x: x,
		y: tl.top + margin,
		w: laneWidth - 2*margin,
		h: laneHeight - 2*margin,
	}
}

// width is the pixel width of the whole track.
func (tl trackLayout) width() float64 {
	return float64(tl.laneCount * laneWidth)
}

// randomPointIn picks a spot inside r; used to scatter ghosts within a lane.
func randomPointIn(rng *rand.Rand, r rect) (float64, float64) {
	return r.x + rng.Float64()*r.w, r.y + rng.Float64()*r.h
}

// ghostSpot is where a ghost settles inside a lane. The vertical room left
// for bobbing keeps sprites inside the lane.
func (tl trackLayout) ghostSpot(rng *rand.Rand, lane int) (float64, float64) {
	r := tl.lane(lane, laneMargin+ghostRadius)
	r.h -= bobRadius + bobOffset
	r.y += bobRadius + bobOffset
	return randomPointIn(rng, r)
}
