package sim

import "fmt"

// GhostState is the lifecycle stage of a ghost on the lane track.
type GhostState int

const (
	GhostActive GhostState = iota
	GhostExited
	GhostCaptured
)

func (s GhostState) String() string {
	switch s {
	case GhostActive:
		return "active"
	case GhostExited:
		return "exited"
	case GhostCaptured:
		return "captured"
	default:
		return "unknown"
	}
}

// Ghost is one entity on the track. Only active ghosts move or get captured;
// exited and captured ghosts never come back.
type Ghost struct {
	ID      int
	Variant Variant
	Lane    int
	State   GhostState
}

// Active reports whether the ghost is still on the track.
func (g *Ghost) Active() bool {
	return g.State == GhostActive
}

// Label is the short name used in logs, e.g. "G07".
func (g *Ghost) Label() string {
	return fmt.Sprintf("G%02d", g.ID)
}

// Move records one ghost's transition during a fire action.
type Move struct {
	GhostID int
	Variant Variant
	From    int
	To      int // meaningless when Exited
	Exited  bool
}

// FireReport summarises a fire action.
type FireReport struct {
	Deltas        map[Tag]int
	Moves         []Move
	TargetEscaped bool
}

// DeltaMap computes the net per-tag step for a fire action: every enabled
// effector adds its contribution to each tag it references, then the sum is
// scaled by the dial. Tags with no enabled effector are absent.
func DeltaMap(cfg WaveConfig) map[Tag]int {
	deltas := make(map[Tag]int)
	for _, e := range cfg.Effectors {
		if !e.Enabled {
			continue
		}
		c := e.Contribution()
		for _, tag := range e.Tags {
			deltas[tag] += c
		}
	}
	for tag := range deltas {
		deltas[tag] *= cfg.Dial
	}
	return deltas
}

// Displacement is the lane change a ghost of variant v would receive.
func Displacement(v Variant, deltas map[Tag]int) int {
	return deltas[v.Body] + deltas[v.Hat]
}

// Fire applies one wave to every active ghost. Each ghost is resolved only
// from its own tags and the shared delta map, so the result does not depend
// on slice order.
func Fire(ghosts []*Ghost, cfg WaveConfig, target Variant, laneCount int) FireReport {
	report := FireReport{Deltas: DeltaMap(cfg)}
	if len(report.Deltas) == 0 {
		return report
	}
	for _, g := range ghosts {
		if !g.Active() {
			continue
		}
		total := Displacement(g.Variant, report.Deltas)
		if total == 0 {
			continue
		}
		next := g.Lane + total
		mv := Move{GhostID: g.ID, Variant: g.Variant, From: g.Lane, To: next}
		if next >= 0 && next < laneCount {
			g.Lane = next
		} else {
			g.State = GhostExited
			mv.Exited = true
			if g.Variant == target {
				report.TargetEscaped = true
			}
		}
		report.Moves = append(report.Moves, mv)
	}
	return report
}
