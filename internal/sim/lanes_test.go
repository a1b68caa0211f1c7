package sim

import (
	"math/rand"
	"testing"
)

func TestFire_AllDisabledIsNoOp(t *testing.T) {
	ts := NewTestSession(WithTestSeed(11))
	before := ts.Lanes()
	report := ts.Fire()
	if len(report.Deltas) != 0 || len(report.Moves) != 0 {
		t.Fatalf("expected empty report, got deltas=%v moves=%d", report.Deltas, len(report.Moves))
	}
	after := ts.Lanes()
	for id, lane := range before {
		if after[id] != lane {
			t.Fatalf("ghost %d moved from %d to %d with no effector enabled", id, lane, after[id])
		}
	}
	if !ts.Settled() {
		t.Fatal("expected a no-move fire to leave the session settled")
	}
}

func TestDeltaMap_AccumulatesAndScales(t *testing.T) {
	wc := NewWaveConfig(FixedSpec(), [EffectorCount]int{1, 1, -1, 1, 1})
	wc.Effectors[0].Enabled = true // sheet, blob
	wc.Effectors[1].Enabled = true // sheet, beanie
	wc.Effectors[2].Enabled = true // wisp (-1)
	wc.Dial = 2

	got := DeltaMap(wc)
	want := map[Tag]int{TagSheet: 4, TagBlob: 2, TagBeanie: 2, TagWisp: -2}
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for tag, d := range want {
		if got[tag] != d {
			t.Fatalf("tag %s: expected delta %d, got %d", tag, d, got[tag])
		}
	}
}

func TestDeltaMap_CancellingEffectorsLeaveZero(t *testing.T) {
	wc := NewWaveConfig(FixedSpec(), [EffectorCount]int{1, -1, 1, 1, 1})
	wc.Effectors[0].Enabled = true
	wc.Effectors[1].Enabled = true
	if d := DeltaMap(wc)[TagSheet]; d != 0 {
		t.Fatalf("expected opposing effectors to cancel on sheet, got %d", d)
	}
}

func TestFire_MovesByBodyPlusHat(t *testing.T) {
	spec := FixedSpec()
	ts := NewTestSession(
		WithTargetAt(3),   // sheet/top_hat
		WithDecoyAt(1, 3), // sheet/beanie
		WithDecoyAt(2, 5), // wisp/beanie
		WithDecoyAt(3, 5), // blob/crown
	)
	ts.Enable(0, 1) // sheet+2, blob+1, beanie+1
	ts.Fire()

	lanes := ts.Lanes()
	if lanes[0] != 5 {
		t.Fatalf("expected target %s at lane 5, got %d", spec.Target, lanes[0])
	}
	if lanes[1] != 6 {
		t.Fatalf("expected sheet/beanie at lane 6, got %d", lanes[1])
	}
	if lanes[2] != 6 {
		t.Fatalf("expected wisp/beanie at lane 6, got %d", lanes[2])
	}
	if lanes[3] != 6 {
		t.Fatalf("expected blob/crown at lane 6, got %d", lanes[3])
	}
	if ts.Settled() {
		t.Fatal("expected session to be busy until Settle")
	}
	ts.Settle()
	if !ts.Settled() {
		t.Fatal("expected Settle to clear the busy flag")
	}
}

func TestFire_InvertedReversesDirection(t *testing.T) {
	ts := NewTestSession(WithTargetAt(4))
	ts.Enable(4)
	ts.ToggleInverted(4)
	ts.Fire()
	if lane := ts.Lanes()[0]; lane != 3 {
		t.Fatalf("expected inverted top hat effector to move target to 3, got %d", lane)
	}
}

func TestFire_TargetExitAtLaneZeroLoses(t *testing.T) {
	ts := NewTestSession(
		WithStrengths([EffectorCount]int{1, 1, 1, 1, -1}),
		WithTargetAt(0),
		WithTargetAt(4),
	)
	ts.Enable(4)
	report := ts.Fire()

	if !report.TargetEscaped {
		t.Fatal("expected TargetEscaped in fire report")
	}
	if g, _ := ts.GhostByID(0); g.State != GhostExited {
		t.Fatalf("expected ghost at lane 0 to exit, got %s", g.State)
	}
	if g, _ := ts.GhostByID(1); g.State != GhostActive || g.Lane != 3 {
		t.Fatalf("expected second target to move to lane 3, got %s lane %d", g.State, g.Lane)
	}
	if ts.Result() != ResultLost || ts.Reason() != LossTargetEscaped {
		t.Fatalf("expected lost/target_escaped, got %s/%s", ts.Result(), ts.Reason())
	}
}

func TestFire_DecoyExitIsNotALoss(t *testing.T) {
	ts := NewTestSession(
		WithTargetAt(4),
		WithDecoyAt(3, 8), // blob/crown
	)
	ts.Enable(3) // crown +1
	report := ts.Fire()
	if report.TargetEscaped || ts.Result() != ResultOngoing {
		t.Fatalf("expected ongoing after decoy exit, got %s", ts.Result())
	}
	if g, _ := ts.GhostByID(1); g.State != GhostExited {
		t.Fatalf("expected decoy to exit past the last lane, got %s", g.State)
	}
	if len(ts.Snapshot().Ghosts) != 1 {
		t.Fatalf("expected exited decoy to leave the active set")
	}

	ts.ToggleInverted(3)
	ts.Fire()
	if g, _ := ts.GhostByID(1); g.State != GhostExited {
		t.Fatalf("exited ghost must never re-enter, got %s", g.State)
	}
}

func TestFire_Deterministic(t *testing.T) {
	build := func() *TestSession {
		ts := NewTestSession(WithTestSeed(99))
		ts.Enable(0, 2, 4)
		ts.ToggleInverted(2)
		ts.CycleDial()
		return ts
	}
	a, b := build(), build()
	a.Fire()
	b.Fire()
	la, lb := a.Lanes(), b.Lanes()
	for id, lane := range la {
		if lb[id] != lane {
			t.Fatalf("ghost %d: lane %d vs %d across identical runs", id, lane, lb[id])
		}
	}
}

func TestFire_IndependentOfGhostOrder(t *testing.T) {
	spec := FixedSpec()
	rules := DefaultRules()
	wc := NewWaveConfig(spec, [EffectorCount]int{1, -1, 1, -1, 1})
	wc.Effectors[0].Enabled = true
	wc.Effectors[1].Enabled = true
	wc.Effectors[3].Enabled = true

	rng := rand.New(rand.NewSource(5))
	base := SpawnGhosts(spec, rules, rng)
	shuffled := make([]*Ghost, len(base))
	for i, g := range base {
		c := *g
		shuffled[len(base)-1-i] = &c
	}

	Fire(base, wc, spec.Target, rules.LaneCount)
	Fire(shuffled, wc, spec.Target, rules.LaneCount)

	byID := map[int]Ghost{}
	for _, g := range shuffled {
		byID[g.ID] = *g
	}
	for _, g := range base {
		if byID[g.ID] != *g {
			t.Fatalf("ghost %d differs by processing order: %+v vs %+v", g.ID, *g, byID[g.ID])
		}
	}
}

func TestSpawnGhosts_InteriorLanesAndCopies(t *testing.T) {
	rules := DefaultRules()
	rules.CaptureLane = 4
	spec := FixedSpec()
	ghosts := SpawnGhosts(spec, rules, rand.New(rand.NewSource(21)))

	counts := map[Variant]int{}
	for i, g := range ghosts {
		if g.ID != i {
			t.Fatalf("expected sequential ids, ghost %d has id %d", i, g.ID)
		}
		if g.Lane <= 0 || g.Lane >= rules.LaneCount-1 {
			t.Fatalf("ghost %d spawned on edge lane %d", g.ID, g.Lane)
		}
		if g.Lane == rules.CaptureLane {
			t.Fatalf("ghost %d spawned in the capture lane", g.ID)
		}
		counts[g.Variant]++
	}
	for _, v := range spec.Variants() {
		if counts[v] != rules.CopiesPerVariant {
			t.Fatalf("variant %s: expected %d copies, got %d", v, rules.CopiesPerVariant, counts[v])
		}
	}
}
