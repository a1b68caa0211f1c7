package sim

import (
	"math/rand"
	"testing"
)

func TestAllSettings_Count(t *testing.T) {
	if n := len(AllSettings()); n != 243*3 {
		t.Fatalf("expected 729 settings, got %d", n)
	}
}

func TestAllSettings_NoInvertedWhileDisabled(t *testing.T) {
	for _, st := range AllSettings() {
		for i := 0; i < EffectorCount; i++ {
			if st.Inverted[i] && !st.Enabled[i] {
				t.Fatalf("setting %+v inverts disabled effector %d", st, i+1)
			}
		}
	}
}

func TestIsolates_TargetHatAloneIsAmbiguous(t *testing.T) {
	spec := FixedSpec()
	st := Setting{Dial: 1}
	st.Enabled[4] = true
	if Isolates(spec, st.Apply(NewWaveConfig(spec, [EffectorCount]int{1, 1, 1, 1, 1}))) {
		t.Fatal("expected target hat effector alone to also move blob/top_hat")
	}
}

func TestIsolates_EntangledBodyCancelledByDecoyEffector(t *testing.T) {
	spec := FixedSpec()
	st := Setting{Dial: 1}
	st.Enabled[1] = true // sheet+1 beanie+1
	st.Enabled[2] = true // wisp
	st.Inverted[2] = true
	if !Isolates(spec, st.Apply(NewWaveConfig(spec, [EffectorCount]int{1, 1, 1, 1, 1}))) {
		t.Fatal("expected E2 with inverted E3 to isolate the target")
	}
}

func TestFindIsolating_EveryGeneratedPuzzleIsSolvable(t *testing.T) {
	for seed := int64(1); seed <= 200; seed++ {
		spec, wc := NewPuzzle(rand.New(rand.NewSource(seed)))
		st, ok := FindIsolating(spec, wc)
		if !ok {
			t.Fatalf("seed %d: no isolating setting for target %s", seed, spec.Target)
		}
		if st.Dial != MinDial {
			t.Fatalf("seed %d: expected an isolating setting at dial 1, got %d", seed, st.Dial)
		}
	}
}

func TestSettingApply_LeavesBindingsAlone(t *testing.T) {
	spec := FixedSpec()
	wc := NewWaveConfig(spec, [EffectorCount]int{-1, 1, -1, 1, -1})
	st := Setting{Dial: 3}
	st.Enabled[0] = true
	out := st.Apply(wc)
	if out.Effectors[0].Strength != -1 || len(out.Effectors[0].Tags) != 2 {
		t.Fatalf("apply changed bindings: %+v", out.Effectors[0])
	}
	if wc.Effectors[0].Enabled {
		t.Fatal("apply mutated the source config")
	}
	if out.Dial != 3 {
		t.Fatalf("expected dial 3, got %d", out.Dial)
	}
}
