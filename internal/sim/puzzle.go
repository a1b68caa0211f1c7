package sim

import (
	"fmt"
	"math/rand"
)

const (
	// EffectorCount is the fixed number of player-togglable effectors.
	EffectorCount = 5
	// MaxEffectorTags caps how many tags a single effector can reference.
	MaxEffectorTags = 4
	// DecoyCount is the number of look-alike variants generated per puzzle.
	DecoyCount = 4

	MinDial = 1
	MaxDial = 3
)

// TargetSpec is the hidden target plus the decoys built around it.
//
// The decoy overlap pattern is fixed:
//
//	decoy 1 = (decoy body 1, target hat)
//	decoy 2 = (target body,  decoy hat 1)
//	decoy 3 = (decoy body 2, decoy hat 1)
//	decoy 4 = (decoy body 1, decoy hat 2)
type TargetSpec struct {
	Target      Variant
	Decoys      [DecoyCount]Variant
	DecoyBodies [2]Tag
	DecoyHats   [2]Tag
}

// Variants returns the target followed by every decoy.
func (ts TargetSpec) Variants() []Variant {
	out := make([]Variant, 0, 1+DecoyCount)
	out = append(out, ts.Target)
	out = append(out, ts.Decoys[:]...)
	return out
}

// Effector is one button on the panel. Strength and Inverted apply uniformly
// to every tag it references; a disabled effector contributes nothing.
type Effector struct {
	Tags     []Tag
	Strength int // +1 or -1, fixed at generation
	Inverted bool
	Enabled  bool
}

// Contribution is the signed step this effector adds to each referenced tag.
func (e Effector) Contribution() int {
	if e.Inverted {
		return -e.Strength
	}
	return e.Strength
}

// References reports whether the effector moves ghosts carrying tag.
func (e Effector) References(tag Tag) bool {
	for _, t := range e.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// WaveConfig is the full effector panel plus the dial multiplier.
type WaveConfig struct {
	Effectors [EffectorCount]Effector
	Dial      int
}

// CycleDial advances the dial 1 → 2 → 3 → 1.
func (wc *WaveConfig) CycleDial() {
	wc.Dial++
	if wc.Dial > MaxDial {
		wc.Dial = MinDial
	}
}

// Clone returns a copy that shares no tag slices with wc.
func (wc WaveConfig) Clone() WaveConfig {
	out := wc
	for i := range out.Effectors {
		out.Effectors[i].Tags = append([]Tag(nil), wc.Effectors[i].Tags...)
	}
	return out
}

func mustEffectorIndex(i int) {
	if i < 0 || i >= EffectorCount {
		panic(fmt.Sprintf("sim: effector index %d outside [0,%d)", i, EffectorCount))
	}
}

// drawDistinct takes n tags from universe without replacement using a partial
// Fisher-Yates shuffle over a private copy. It never retries.
func drawDistinct(rng *rand.Rand, universe []Tag, n int) []Tag {
	if len(universe) < n {
		panic(fmt.Sprintf("sim: tag universe of %d cannot supply %d distinct tags", len(universe), n))
	}
	pool := append([]Tag(nil), universe...)
	for i := 0; i < n; i++ {
		j := i + rng.Intn(len(pool)-i)
		pool[i], pool[j] = pool[j], pool[i]
	}
	return pool[:n]
}

// ChooseTarget draws the target variant and builds the four decoys around it.
func ChooseTarget(rng *rand.Rand) TargetSpec {
	hats := drawDistinct(rng, HatTags(), 3)
	bodies := drawDistinct(rng, BodyTags(), 3)

	target := Variant{Body: bodies[0], Hat: hats[0]}
	db1, db2 := bodies[1], bodies[2]
	dh1, dh2 := hats[1], hats[2]

	return TargetSpec{
		Target: target,
		Decoys: [DecoyCount]Variant{
			{Body: db1, Hat: target.Hat},
			{Body: target.Body, Hat: dh1},
			{Body: db2, Hat: dh1},
			{Body: db1, Hat: dh2},
		},
		DecoyBodies: [2]Tag{db1, db2},
		DecoyHats:   [2]Tag{dh1, dh2},
	}
}

// BuildWaveConfig binds the five effectors to the puzzle's tags and draws an
// independent ±1 strength for each. Every effector starts disabled and not
// inverted.
func BuildWaveConfig(spec TargetSpec, rng *rand.Rand) WaveConfig {
	var strengths [EffectorCount]int
	for i := range strengths {
		strengths[i] = 1
		if rng.Intn(2) == 0 {
			strengths[i] = -1
		}
	}
	return NewWaveConfig(spec, strengths)
}

// NewWaveConfig binds the effectors with the given strengths:
//
//	E1: target body + decoy body 1
//	E2: target body + decoy hat 1
//	E3: decoy body 2
//	E4: decoy hat 2
//	E5: target hat
func NewWaveConfig(spec TargetSpec, strengths [EffectorCount]int) WaveConfig {
	MustClassify(spec.Target.Body, TagKindBody)
	MustClassify(spec.Target.Hat, TagKindHat)

	bindings := [EffectorCount][]Tag{
		{spec.Target.Body, spec.DecoyBodies[0]},
		{spec.Target.Body, spec.DecoyHats[0]},
		{spec.DecoyBodies[1]},
		{spec.DecoyHats[1]},
		{spec.Target.Hat},
	}

	wc := WaveConfig{Dial: MinDial}
	for i, tags := range bindings {
		if strengths[i] != 1 && strengths[i] != -1 {
			panic(fmt.Sprintf("sim: effector %d strength %d is not ±1", i, strengths[i]))
		}
		wc.Effectors[i] = Effector{
			Tags:     tags,
			Strength: strengths[i],
		}
	}
	return wc
}

// NewPuzzle generates a complete target spec and its matching effector panel.
func NewPuzzle(rng *rand.Rand) (TargetSpec, WaveConfig) {
	spec := ChooseTarget(rng)
	return spec, BuildWaveConfig(spec, rng)
}
