package sim

// AutoPlayer is a greedy policy used by the headless report to play whole
// sessions without a human. It captures when doing so cannot sink the
// reputation, and otherwise fires the panel setting that best herds the
// target toward the capture lane without letting any target escape.
type AutoPlayer struct {
	MaxSteps int
	settings []Setting
}

// NewAutoPlayer builds a player that gives up after maxSteps steps.
func NewAutoPlayer(maxSteps int) *AutoPlayer {
	return &AutoPlayer{MaxSteps: maxSteps, settings: AllSettings()}
}

// herdScore ranks a prospective lane layout. Lower is better; fields are
// compared in order.
type herdScore struct {
	nearest int // closest target's distance to the capture lane
	decoys  int // decoys that would sit in the capture lane
	total   int // summed target distance
}

func (a herdScore) less(b herdScore) bool {
	if a.nearest != b.nearest {
		return a.nearest < b.nearest
	}
	if a.decoys != b.decoys {
		return a.decoys < b.decoys
	}
	return a.total < b.total
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// evaluate predicts the layout after firing deltas. ok is false when any
// target would leave the track.
func evaluate(ghosts []Ghost, target Variant, rules Rules, deltas map[Tag]int) (herdScore, bool) {
	score := herdScore{nearest: rules.LaneCount}
	for _, g := range ghosts {
		if !g.Active() {
			continue
		}
		lane := g.Lane + Displacement(g.Variant, deltas)
		inBounds := lane >= 0 && lane < rules.LaneCount
		if g.Variant == target {
			if !inBounds {
				return herdScore{}, false
			}
			dist := absInt(lane - rules.CaptureLane)
			if dist < score.nearest {
				score.nearest = dist
			}
			score.total += dist
			continue
		}
		if inBounds && lane == rules.CaptureLane {
			score.decoys++
		}
	}
	return score, true
}

// Step performs at most one capture or one fire (plus the toggles needed to
// reach the chosen setting). It returns false when the policy is stuck or
// the session is over.
func (ap *AutoPlayer) Step(s *Session) bool {
	if s.Result().Terminal() {
		return false
	}
	rules := s.Rules()
	target := s.Spec().Target

	inLane := s.ActiveInLane(rules.CaptureLane)
	targets, delta := 0, 0
	for _, g := range inLane {
		if g.Variant == target {
			targets++
			delta += RepTargetReward
		} else {
			delta += RepDecoyPenalty
		}
	}
	if targets > 0 && s.Resources().Reputation+delta > 0 {
		s.Capture()
		return true
	}

	ghosts := s.Ghosts()
	current, _ := evaluate(ghosts, target, rules, nil)
	wave := s.Wave()
	best, bestScore, found := Setting{}, current, false
	for _, st := range ap.settings {
		score, ok := evaluate(ghosts, target, rules, DeltaMap(st.Apply(wave)))
		if !ok || !score.less(bestScore) {
			continue
		}
		best, bestScore, found = st, score, true
	}
	if !found {
		return false
	}
	applySetting(s, best)
	s.Fire()
	s.Settle()
	return true
}

// Play steps until the session ends, the policy stalls, or MaxSteps is hit.
func (ap *AutoPlayer) Play(s *Session) GameResult {
	for i := 0; i < ap.MaxSteps; i++ {
		if !ap.Step(s) {
			break
		}
	}
	return s.Result()
}

// applySetting toggles the session's panel until it matches st.
func applySetting(s *Session, st Setting) {
	for i := 0; i < EffectorCount; i++ {
		e := s.Effector(i)
		if e.Enabled != st.Enabled[i] {
			s.ToggleEnabled(i)
		}
		if e.Inverted != st.Inverted[i] {
			s.ToggleInverted(i)
		}
	}
	for s.Wave().Dial != st.Dial {
		s.CycleDial()
	}
}
