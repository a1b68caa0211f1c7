package sim

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Session owns every piece of mutable puzzle state: the target spec, the
// effector panel, the ghosts and the player's resources. All actions go
// through it and each runs to completion before returning.
type Session struct {
	ID string

	rules  Rules
	spec   TargetSpec
	wave   WaveConfig
	ghosts []*Ghost
	res    Resources

	result GameResult
	reason LossReason
	turn   int

	// settled is false between a fire and the presentation finishing its
	// glide animation. The core never checks it.
	settled bool

	log    *ActionLog
	logger zerolog.Logger
}

type sessionSetup struct {
	seed   int64
	logger zerolog.Logger
	spec   *TargetSpec
	wave   *WaveConfig
	ghosts []Ghost
}

// SessionOption customises NewSession.
type SessionOption func(*sessionSetup)

// WithSeed makes puzzle generation and spawning deterministic.
func WithSeed(seed int64) SessionOption {
	return func(ss *sessionSetup) {
		ss.seed = seed
	}
}

// WithLogger routes session events to logger.
func WithLogger(logger zerolog.Logger) SessionOption {
	return func(ss *sessionSetup) {
		ss.logger = logger
	}
}

// WithPuzzle skips generation and uses the given spec and panel.
func WithPuzzle(spec TargetSpec, wave WaveConfig) SessionOption {
	return func(ss *sessionSetup) {
		ss.spec = &spec
		wc := wave.Clone()
		ss.wave = &wc
	}
}

// WithGhosts skips spawning and uses the given ghosts (copied).
func WithGhosts(ghosts []Ghost) SessionOption {
	return func(ss *sessionSetup) {
		ss.ghosts = append([]Ghost(nil), ghosts...)
	}
}

// NewSession generates (or accepts) a puzzle and populates the track.
func NewSession(rules Rules, opts ...SessionOption) *Session {
	rules.mustValidate()
	setup := sessionSetup{
		seed:   time.Now().UnixNano(),
		logger: zerolog.Nop(),
	}
	for _, o := range opts {
		o(&setup)
	}
	rng := rand.New(rand.NewSource(setup.seed)) // #nosec G404 -- puzzle generation only

	s := &Session{
		ID:      uuid.New().String(),
		rules:   rules,
		res:     Resources{Charges: rules.Charges, Reputation: rules.Reputation},
		settled: true,
		log:     NewActionLog(),
	}
	s.logger = setup.logger.With().Str("session", s.ID).Logger()

	if setup.spec != nil {
		s.spec = *setup.spec
		s.wave = *setup.wave
		if s.wave.Dial < MinDial || s.wave.Dial > MaxDial {
			panic(fmt.Sprintf("sim: dial %d outside [%d,%d]", s.wave.Dial, MinDial, MaxDial))
		}
	} else {
		s.spec, s.wave = NewPuzzle(rng)
	}

	if setup.ghosts != nil {
		for i := range setup.ghosts {
			g := setup.ghosts[i]
			if g.Lane < 0 || g.Lane >= rules.LaneCount {
				panic(fmt.Sprintf("sim: ghost %d lane %d outside [0,%d)", g.ID, g.Lane, rules.LaneCount))
			}
			s.ghosts = append(s.ghosts, &g)
		}
	} else {
		s.ghosts = SpawnGhosts(s.spec, rules, rng)
	}

	s.log.Add(0, "--", "session", "start",
		fmt.Sprintf("target=%s ghosts=%d charges=%d reputation=%d", s.spec.Target, len(s.ghosts), s.res.Charges, s.res.Reputation),
		float64(len(s.ghosts)))
	s.logger.Info().
		Int64("seed", setup.seed).
		Int("ghosts", len(s.ghosts)).
		Int("lanes", rules.LaneCount).
		Msg("session started")
	return s
}

// ToggleEnabled flips effector i on or off. Returns false once the session is over.
func (s *Session) ToggleEnabled(i int) bool {
	mustEffectorIndex(i)
	if s.result.Terminal() {
		return false
	}
	s.turn++
	e := &s.wave.Effectors[i]
	e.Enabled = !e.Enabled
	s.log.Add(s.turn, "--", "effector", "enabled", fmt.Sprintf("E%d %t", i+1, e.Enabled), float64(i))
	s.logger.Debug().Int("turn", s.turn).Str("action", "toggle_enabled").Int("effector", i).Bool("enabled", e.Enabled).Send()
	return true
}

// ToggleInverted flips the direction of effector i. Returns false once the session is over.
func (s *Session) ToggleInverted(i int) bool {
	mustEffectorIndex(i)
	if s.result.Terminal() {
		return false
	}
	s.turn++
	e := &s.wave.Effectors[i]
	e.Inverted = !e.Inverted
	s.log.Add(s.turn, "--", "effector", "inverted", fmt.Sprintf("E%d %t", i+1, e.Inverted), float64(i))
	s.logger.Debug().Int("turn", s.turn).Str("action", "toggle_inverted").Int("effector", i).Bool("inverted", e.Inverted).Send()
	return true
}

// CycleDial advances the dial strength. Returns false once the session is over.
func (s *Session) CycleDial() bool {
	if s.result.Terminal() {
		return false
	}
	s.turn++
	s.wave.CycleDial()
	s.log.Add(s.turn, "--", "dial", "cycle", fmt.Sprintf("x%d", s.wave.Dial), float64(s.wave.Dial))
	s.logger.Debug().Int("turn", s.turn).Str("action", "cycle_dial").Int("dial", s.wave.Dial).Send()
	return true
}

// Fire sends one wave down the track. Lane indices are final when it
// returns; the session is marked busy until Settle is called.
func (s *Session) Fire() FireReport {
	if s.result.Terminal() {
		return FireReport{}
	}
	s.turn++
	report := Fire(s.ghosts, s.wave, s.spec.Target, s.rules.LaneCount)
	s.log.Add(s.turn, "--", "fire", "wave", fmt.Sprintf("dial=x%d moves=%d", s.wave.Dial, len(report.Moves)), float64(len(report.Moves)))
	for _, mv := range report.Moves {
		label := fmt.Sprintf("G%02d", mv.GhostID)
		if mv.Exited {
			s.log.Add(s.turn, label, "exit", "offscreen", fmt.Sprintf("%s %d → %d", mv.Variant, mv.From, mv.To), float64(mv.To))
		} else {
			s.log.Add(s.turn, label, "move", "scoot", fmt.Sprintf("%d → %d", mv.From, mv.To), float64(mv.To))
		}
	}
	if len(report.Moves) > 0 {
		s.settled = false
	}
	s.logger.Debug().Int("turn", s.turn).Str("action", "fire").Int("dial", s.wave.Dial).Int("moves", len(report.Moves)).Send()
	if report.TargetEscaped {
		s.finish(ResultLost, LossTargetEscaped)
	}
	return report
}

// Capture resolves the capture lane against the target.
func (s *Session) Capture() CaptureReport {
	if s.result.Terminal() {
		return CaptureReport{Empty: true, Result: s.result, Reason: s.reason}
	}
	s.turn++
	report := Capture(s.ghosts, s.spec.Target, s.rules.CaptureLane, &s.res)
	if report.Empty {
		s.log.Add(s.turn, "--", "capture", "empty", fmt.Sprintf("lane %d", s.rules.CaptureLane), 0)
		s.logger.Debug().Int("turn", s.turn).Str("action", "capture").Bool("empty", true).Send()
		return report
	}
	for _, g := range report.Captured {
		key := "decoy"
		if g.Variant == s.spec.Target {
			key = "target"
		}
		s.log.Add(s.turn, g.Label(), "capture", key, g.Variant.String(), float64(g.Lane))
	}
	s.log.Add(s.turn, "--", "capture", "resources",
		fmt.Sprintf("reputation %+d → %d charges → %d", report.ReputationDelta, s.res.Reputation, s.res.Charges),
		float64(report.ReputationDelta))
	s.logger.Debug().
		Int("turn", s.turn).
		Str("action", "capture").
		Int("targets", report.Targets).
		Int("decoys", report.Decoys).
		Int("reputation", s.res.Reputation).
		Int("charges", s.res.Charges).
		Send()
	if report.Result.Terminal() {
		s.finish(report.Result, report.Reason)
	}
	return report
}

func (s *Session) finish(result GameResult, reason LossReason) {
	s.result = result
	s.reason = reason
	s.log.Add(s.turn, "--", "result", result.String(), reason.String(), float64(s.res.Reputation))
	s.logger.Info().
		Int("turn", s.turn).
		Str("result", result.String()).
		Str("reason", reason.String()).
		Int("reputation", s.res.Reputation).
		Int("charges", s.res.Charges).
		Msg("session finished")
}

// Settle marks the presentation's animation of the last fire as complete.
func (s *Session) Settle() {
	s.settled = true
}

// Settled reports whether the presentation has caught up with the last fire.
func (s *Session) Settled() bool {
	return s.settled
}

// Result is the current game result.
func (s *Session) Result() GameResult { return s.result }

// Reason explains a lost result.
func (s *Session) Reason() LossReason { return s.reason }

func (s *Session) Turn() int { return s.turn }

func (s *Session) Rules() Rules { return s.rules }

func (s *Session) Spec() TargetSpec { return s.spec }

func (s *Session) Resources() Resources { return s.res }

func (s *Session) Log() *ActionLog { return s.log }

// Wave returns a copy of the effector panel.
func (s *Session) Wave() WaveConfig { return s.wave.Clone() }

// Effector returns a copy of effector i.
func (s *Session) Effector(i int) Effector {
	mustEffectorIndex(i)
	e := s.wave.Effectors[i]
	e.Tags = append([]Tag(nil), e.Tags...)
	return e
}

// Ghosts returns a copy of every ghost, including exited and captured ones.
func (s *Session) Ghosts() []Ghost {
	out := make([]Ghost, len(s.ghosts))
	for i, g := range s.ghosts {
		out[i] = *g
	}
	return out
}

// ActiveInLane returns copies of the active ghosts in lane.
func (s *Session) ActiveInLane(lane int) []Ghost {
	var out []Ghost
	for _, g := range s.ghosts {
		if g.Active() && g.Lane == lane {
			out = append(out, *g)
		}
	}
	return out
}

// CountActive is the number of active ghosts of variant v.
func (s *Session) CountActive(v Variant) int {
	return countActive(s.ghosts, v)
}

// GhostView is the read-only shape of an active ghost handed to presentation.
type GhostView struct {
	ID      int
	Variant Variant
	Lane    int
}

// EffectorView carries what the panel needs to draw one button.
type EffectorView struct {
	Tags     []Tag
	Strength int
	Inverted bool
	Enabled  bool
}

// Snapshot is a deep copy of everything the presentation layer may read.
type Snapshot struct {
	ID          string
	Turn        int
	LaneCount   int
	CaptureLane int
	Target      Variant
	Ghosts      []GhostView
	Effectors   [EffectorCount]EffectorView
	Dial        int
	Resources   Resources
	Result      GameResult
	Reason      LossReason
	Settled     bool
}

// Snapshot copies the current state for rendering.
func (s *Session) Snapshot() Snapshot {
	snap := Snapshot{
		ID:          s.ID,
		Turn:        s.turn,
		LaneCount:   s.rules.LaneCount,
		CaptureLane: s.rules.CaptureLane,
		Target:      s.spec.Target,
		Dial:        s.wave.Dial,
		Resources:   s.res,
		Result:      s.result,
		Reason:      s.reason,
		Settled:     s.settled,
	}
	for _, g := range s.ghosts {
		if g.Active() {
			snap.Ghosts = append(snap.Ghosts, GhostView{ID: g.ID, Variant: g.Variant, Lane: g.Lane})
		}
	}
	for i, e := range s.wave.Effectors {
		snap.Effectors[i] = EffectorView{
			Tags:     append([]Tag(nil), e.Tags...),
			Strength: e.Strength,
			Inverted: e.Inverted,
			Enabled:  e.Enabled,
		}
	}
	return snap
}
