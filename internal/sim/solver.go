package sim

import "github.com/zyedidia/generic/mapset"

// Setting is one complete choice of panel state: which effectors are on,
// which are inverted, and the dial.
type Setting struct {
	Enabled  [EffectorCount]bool
	Inverted [EffectorCount]bool
	Dial     int
}

// effectorModes is off, on, on-inverted. Inverting a disabled effector has
// no effect on a wave so it is not enumerated separately.
const effectorModes = 3

// AllSettings enumerates every distinct panel state, lowest dial first.
func AllSettings() []Setting {
	combos := 1
	for i := 0; i < EffectorCount; i++ {
		combos *= effectorModes
	}
	out := make([]Setting, 0, combos*(MaxDial-MinDial+1))
	for dial := MinDial; dial <= MaxDial; dial++ {
		for code := 0; code < combos; code++ {
			st := Setting{Dial: dial}
			c := code
			for i := 0; i < EffectorCount; i++ {
				switch c % effectorModes {
				case 1:
					st.Enabled[i] = true
				case 2:
					st.Enabled[i] = true
					st.Inverted[i] = true
				}
				c /= effectorModes
			}
			out = append(out, st)
		}
	}
	return out
}

// Apply returns a copy of wc with the panel set to st. Tag bindings and
// strengths are untouched.
func (st Setting) Apply(wc WaveConfig) WaveConfig {
	out := wc.Clone()
	for i := range out.Effectors {
		out.Effectors[i].Enabled = st.Enabled[i]
		out.Effectors[i].Inverted = st.Inverted[i]
	}
	out.Dial = st.Dial
	return out
}

// Isolates reports whether a wave fired with cfg moves the target by an
// amount no decoy shares.
func Isolates(spec TargetSpec, cfg WaveConfig) bool {
	deltas := DeltaMap(cfg)
	t := Displacement(spec.Target, deltas)
	if t == 0 {
		return false
	}
	decoyMoves := mapset.New[int]()
	for _, d := range spec.Decoys {
		decoyMoves.Put(Displacement(d, deltas))
	}
	return !decoyMoves.Has(t)
}

// FindIsolating returns the first setting that isolates the target.
func FindIsolating(spec TargetSpec, wc WaveConfig) (Setting, bool) {
	for _, st := range AllSettings() {
		if Isolates(spec, st.Apply(wc)) {
			return st, true
		}
	}
	return Setting{}, false
}
