package sim

const (
	RepTargetReward = 1
	RepDecoyPenalty = -2
)

// Resources are the player's consumables. Only Capture mutates them.
type Resources struct {
	Charges    int
	Reputation int
}

// CaptureReport summarises a capture action.
type CaptureReport struct {
	Empty           bool
	Captured        []Ghost
	Targets         int
	Decoys          int
	ReputationDelta int
	Result          GameResult
	Reason          LossReason
}

// Capture collects every active ghost in captureLane. An empty lane is a
// no-op. Otherwise the reputation check runs before the charge is spent; a
// reputation at or below zero is clamped to zero and loses immediately.
func Capture(ghosts []*Ghost, target Variant, captureLane int, res *Resources) CaptureReport {
	var report CaptureReport
	for _, g := range ghosts {
		if !g.Active() || g.Lane != captureLane {
			continue
		}
		g.State = GhostCaptured
		report.Captured = append(report.Captured, *g)
		if g.Variant == target {
			report.Targets++
			report.ReputationDelta += RepTargetReward
		} else {
			report.Decoys++
			report.ReputationDelta += RepDecoyPenalty
		}
	}
	if len(report.Captured) == 0 {
		report.Empty = true
		return report
	}

	res.Reputation += report.ReputationDelta
	if res.Reputation <= 0 {
		res.Reputation = 0
		report.Result = ResultLost
		report.Reason = LossReputationExhausted
		return report
	}

	res.Charges--
	switch {
	case countActive(ghosts, target) == 0:
		report.Result = ResultWon
	case res.Charges == 0:
		report.Result = ResultLost
		report.Reason = LossChargesExhausted
	}
	return report
}

func countActive(ghosts []*Ghost, v Variant) int {
	n := 0
	for _, g := range ghosts {
		if g.Active() && g.Variant == v {
			n++
		}
	}
	return n
}
