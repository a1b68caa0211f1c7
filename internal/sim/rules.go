package sim

import "fmt"

// Rules are the per-session constants: track size, where captures happen and
// the starting resources.
type Rules struct {
	LaneCount        int
	CaptureLane      int
	Charges          int
	Reputation       int
	CopiesPerVariant int
}

// DefaultRules is a nine-lane track with captures on the leftmost lane.
func DefaultRules() Rules {
	return Rules{
		LaneCount:        9,
		CaptureLane:      0,
		Charges:          3,
		Reputation:       5,
		CopiesPerVariant: 2,
	}
}

// spawnLanes lists the non-edge lanes ghosts may start in. The capture lane
// is excluded so no ghost begins already captured.
func (r Rules) spawnLanes() []int {
	var lanes []int
	for lane := 1; lane < r.LaneCount-1; lane++ {
		if lane == r.CaptureLane {
			continue
		}
		lanes = append(lanes, lane)
	}
	return lanes
}

func (r Rules) mustValidate() {
	switch {
	case r.LaneCount < 3:
		panic(fmt.Sprintf("sim: lane count %d leaves no interior lane", r.LaneCount))
	case r.CaptureLane < 0 || r.CaptureLane >= r.LaneCount:
		panic(fmt.Sprintf("sim: capture lane %d outside [0,%d)", r.CaptureLane, r.LaneCount))
	case r.Charges < 1:
		panic(fmt.Sprintf("sim: charges must be positive, got %d", r.Charges))
	case r.Reputation < 1:
		panic(fmt.Sprintf("sim: reputation must be positive, got %d", r.Reputation))
	case r.CopiesPerVariant < 1:
		panic(fmt.Sprintf("sim: copies per variant must be positive, got %d", r.CopiesPerVariant))
	case len(r.spawnLanes()) == 0:
		panic("sim: no spawnable lane left after excluding the capture lane")
	}
}
