package sim

// TestSession is a scenario builder used by tests. It lets a test pin the
// puzzle, the effector strengths and every ghost's starting lane instead of
// relying on generation.
type TestSession struct {
	*Session

	rules     Rules
	seed      int64
	spec      TargetSpec
	strengths [EffectorCount]int
	ghosts    []Ghost
}

// testOptionKind controls the pass in which an option is applied.
type testOptionKind int

const (
	testOptInfra testOptionKind = iota // rules, seed, puzzle; applied first
	testOptGhost                       // ghost placement, needs the puzzle
)

// TestOption is a builder function applied to a TestSession during construction.
type TestOption struct {
	kind testOptionKind
	fn   func(*TestSession)
}

// FixedSpec is the puzzle every TestSession uses unless told otherwise.
//
//	target  = sheet/top_hat
//	decoys  = blob/top_hat, sheet/beanie, wisp/beanie, blob/crown
func FixedSpec() TargetSpec {
	target := Variant{Body: TagSheet, Hat: TagTopHat}
	return TargetSpec{
		Target: target,
		Decoys: [DecoyCount]Variant{
			{Body: TagBlob, Hat: TagTopHat},
			{Body: TagSheet, Hat: TagBeanie},
			{Body: TagWisp, Hat: TagBeanie},
			{Body: TagBlob, Hat: TagCrown},
		},
		DecoyBodies: [2]Tag{TagBlob, TagWisp},
		DecoyHats:   [2]Tag{TagBeanie, TagCrown},
	}
}

// WithTestRules replaces the default rules.
func WithTestRules(r Rules) TestOption {
	return TestOption{testOptInfra, func(ts *TestSession) {
		ts.rules = r
	}}
}

// WithTestSeed sets the generation seed (only matters for random ghosts).
func WithTestSeed(seed int64) TestOption {
	return TestOption{testOptInfra, func(ts *TestSession) {
		ts.seed = seed
	}}
}

// WithTestSpec replaces FixedSpec.
func WithTestSpec(spec TargetSpec) TestOption {
	return TestOption{testOptInfra, func(ts *TestSession) {
		ts.spec = spec
	}}
}

// WithStrengths pins each effector's ±1 strength.
func WithStrengths(s [EffectorCount]int) TestOption {
	return TestOption{testOptInfra, func(ts *TestSession) {
		ts.strengths = s
	}}
}

// WithCharges overrides the starting charges.
func WithCharges(n int) TestOption {
	return TestOption{testOptInfra, func(ts *TestSession) {
		ts.rules.Charges = n
	}}
}

// WithReputation overrides the starting reputation.
func WithReputation(n int) TestOption {
	return TestOption{testOptInfra, func(ts *TestSession) {
		ts.rules.Reputation = n
	}}
}

// WithGhostAt places a ghost of variant v in lane.
func WithGhostAt(v Variant, lane int) TestOption {
	return TestOption{testOptGhost, func(ts *TestSession) {
		ts.ghosts = append(ts.ghosts, Ghost{ID: len(ts.ghosts), Variant: v, Lane: lane})
	}}
}

// WithTargetAt places a target ghost in lane.
func WithTargetAt(lane int) TestOption {
	return TestOption{testOptGhost, func(ts *TestSession) {
		ts.ghosts = append(ts.ghosts, Ghost{ID: len(ts.ghosts), Variant: ts.spec.Target, Lane: lane})
	}}
}

// WithDecoyAt places a ghost of decoy i (0-based) in lane.
func WithDecoyAt(i, lane int) TestOption {
	return TestOption{testOptGhost, func(ts *TestSession) {
		ts.ghosts = append(ts.ghosts, Ghost{ID: len(ts.ghosts), Variant: ts.spec.Decoys[i], Lane: lane})
	}}
}

// NewTestSession constructs a TestSession in two ordered passes:
//  1. Infrastructure (rules, seed, spec, strengths)
//  2. Ghost placement
//
// With no ghost options the session spawns ghosts normally from the seed.
func NewTestSession(opts ...TestOption) *TestSession {
	ts := &TestSession{
		rules:     DefaultRules(),
		seed:      1,
		spec:      FixedSpec(),
		strengths: [EffectorCount]int{1, 1, 1, 1, 1},
	}
	for _, o := range opts {
		if o.kind == testOptInfra {
			o.fn(ts)
		}
	}
	for _, o := range opts {
		if o.kind == testOptGhost {
			o.fn(ts)
		}
	}

	wave := NewWaveConfig(ts.spec, ts.strengths)

	sessionOpts := []SessionOption{WithSeed(ts.seed), WithPuzzle(ts.spec, wave)}
	if len(ts.ghosts) > 0 {
		sessionOpts = append(sessionOpts, WithGhosts(ts.ghosts))
	}
	ts.Session = NewSession(ts.rules, sessionOpts...)
	return ts
}

// Lanes returns the lane of every ghost by ID; exited and captured ghosts map to -1.
func (ts *TestSession) Lanes() map[int]int {
	out := make(map[int]int)
	for _, g := range ts.Ghosts() {
		if g.Active() {
			out[g.ID] = g.Lane
		} else {
			out[g.ID] = -1
		}
	}
	return out
}

// GhostByID returns a copy of the ghost with id.
func (ts *TestSession) GhostByID(id int) (Ghost, bool) {
	for _, g := range ts.Ghosts() {
		if g.ID == id {
			return g, true
		}
	}
	return Ghost{}, false
}

// Enable turns on each listed effector that is currently off.
func (ts *TestSession) Enable(indices ...int) {
	for _, i := range indices {
		if !ts.Effector(i).Enabled {
			ts.ToggleEnabled(i)
		}
	}
}
