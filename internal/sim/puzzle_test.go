package sim

import (
	"math/rand"
	"testing"
)

func TestChooseTarget_DecoysNeverDuplicateTarget(t *testing.T) {
	for seed := int64(1); seed <= 300; seed++ {
		spec := ChooseTarget(rand.New(rand.NewSource(seed)))
		for i, d := range spec.Decoys {
			if d == spec.Target {
				t.Fatalf("seed %d: decoy %d equals target %s", seed, i, spec.Target)
			}
			if n := d.sharedDimensions(spec.Target); n > 1 {
				t.Fatalf("seed %d: decoy %d shares %d dimensions with target", seed, i, n)
			}
		}
	}
}

func TestChooseTarget_OverlapPattern(t *testing.T) {
	spec := ChooseTarget(rand.New(rand.NewSource(7)))
	tgt := spec.Target
	want := [DecoyCount]Variant{
		{Body: spec.DecoyBodies[0], Hat: tgt.Hat},
		{Body: tgt.Body, Hat: spec.DecoyHats[0]},
		{Body: spec.DecoyBodies[1], Hat: spec.DecoyHats[0]},
		{Body: spec.DecoyBodies[0], Hat: spec.DecoyHats[1]},
	}
	if spec.Decoys != want {
		t.Fatalf("expected decoys %v, got %v", want, spec.Decoys)
	}
	wantShared := [DecoyCount]int{1, 1, 0, 0}
	for i, d := range spec.Decoys {
		if got := d.sharedDimensions(tgt); got != wantShared[i] {
			t.Fatalf("decoy %d: expected %d shared dimensions, got %d", i, wantShared[i], got)
		}
	}
}

func TestChooseTarget_TagsDistinctAndClassified(t *testing.T) {
	for seed := int64(1); seed <= 100; seed++ {
		spec := ChooseTarget(rand.New(rand.NewSource(seed)))
		bodies := []Tag{spec.Target.Body, spec.DecoyBodies[0], spec.DecoyBodies[1]}
		hats := []Tag{spec.Target.Hat, spec.DecoyHats[0], spec.DecoyHats[1]}
		if bodies[0] == bodies[1] || bodies[0] == bodies[2] || bodies[1] == bodies[2] {
			t.Fatalf("seed %d: body tags not distinct: %v", seed, bodies)
		}
		if hats[0] == hats[1] || hats[0] == hats[2] || hats[1] == hats[2] {
			t.Fatalf("seed %d: hat tags not distinct: %v", seed, hats)
		}
		for _, b := range bodies {
			if Classify(b) != TagKindBody {
				t.Fatalf("seed %d: %d is not a body tag", seed, b)
			}
		}
		for _, h := range hats {
			if Classify(h) != TagKindHat {
				t.Fatalf("seed %d: %d is not a hat tag", seed, h)
			}
		}
	}
}

func TestBuildWaveConfig_Topology(t *testing.T) {
	for seed := int64(1); seed <= 100; seed++ {
		spec, wc := NewPuzzle(rand.New(rand.NewSource(seed)))
		tgt := spec.Target

		for _, i := range []int{0, 1} {
			e := wc.Effectors[i]
			if !e.References(tgt.Body) || len(e.Tags) != 2 {
				t.Fatalf("seed %d: effector %d should reference target body plus one decoy tag, got %v", seed, i+1, e.Tags)
			}
		}
		if wc.Effectors[0].Tags[1] == wc.Effectors[1].Tags[1] {
			t.Fatalf("seed %d: effectors 1 and 2 share their decoy tag", seed)
		}
		for _, i := range []int{2, 3} {
			e := wc.Effectors[i]
			if len(e.Tags) != 1 || e.References(tgt.Body) || e.References(tgt.Hat) {
				t.Fatalf("seed %d: effector %d should reference exactly one decoy tag, got %v", seed, i+1, e.Tags)
			}
		}
		if e := wc.Effectors[4]; len(e.Tags) != 1 || e.Tags[0] != tgt.Hat {
			t.Fatalf("seed %d: effector 5 should reference only the target hat, got %v", seed, e.Tags)
		}
	}
}

func TestBuildWaveConfig_InitialState(t *testing.T) {
	_, wc := NewPuzzle(rand.New(rand.NewSource(3)))
	if wc.Dial != 1 {
		t.Fatalf("expected dial 1, got %d", wc.Dial)
	}
	for i, e := range wc.Effectors {
		if e.Enabled || e.Inverted {
			t.Fatalf("effector %d should start disabled and not inverted: %+v", i+1, e)
		}
		if e.Strength != 1 && e.Strength != -1 {
			t.Fatalf("effector %d strength should be ±1, got %d", i+1, e.Strength)
		}
		if len(e.Tags) > MaxEffectorTags {
			t.Fatalf("effector %d references %d tags", i+1, len(e.Tags))
		}
	}
}

func TestBuildWaveConfig_StrengthsVaryAcrossSeeds(t *testing.T) {
	sawPos, sawNeg := false, false
	for seed := int64(1); seed <= 50; seed++ {
		_, wc := NewPuzzle(rand.New(rand.NewSource(seed)))
		for _, e := range wc.Effectors {
			if e.Strength > 0 {
				sawPos = true
			} else {
				sawNeg = true
			}
		}
	}
	if !sawPos || !sawNeg {
		t.Fatalf("expected both strength signs across seeds, pos=%t neg=%t", sawPos, sawNeg)
	}
}

func TestCycleDial_Wraps(t *testing.T) {
	wc := WaveConfig{Dial: 1}
	want := []int{2, 3, 1, 2}
	for i, w := range want {
		wc.CycleDial()
		if wc.Dial != w {
			t.Fatalf("step %d: expected dial %d, got %d", i, w, wc.Dial)
		}
	}
}

func TestEffectorContribution_Inverted(t *testing.T) {
	e := Effector{Strength: -1}
	if e.Contribution() != -1 {
		t.Fatalf("expected -1, got %d", e.Contribution())
	}
	e.Inverted = true
	if e.Contribution() != 1 {
		t.Fatalf("expected inverted contribution 1, got %d", e.Contribution())
	}
}

func TestDrawDistinct_PanicsWhenUniverseTooSmall(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for undersized universe")
		}
	}()
	drawDistinct(rand.New(rand.NewSource(1)), []Tag{TagTopHat, TagBeanie}, 3)
}
