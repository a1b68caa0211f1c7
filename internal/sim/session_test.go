package sim

import (
	"strings"
	"testing"
)

func TestNewSession_GeneratesPopulatedTrack(t *testing.T) {
	s := NewSession(DefaultRules(), WithSeed(42))
	if s.ID == "" {
		t.Fatal("expected a session id")
	}
	snap := s.Snapshot()
	if want := (1 + DecoyCount) * DefaultRules().CopiesPerVariant; len(snap.Ghosts) != want {
		t.Fatalf("expected %d ghosts, got %d", want, len(snap.Ghosts))
	}
	if snap.Resources.Charges != 3 || snap.Resources.Reputation != 5 {
		t.Fatalf("unexpected starting resources: %+v", snap.Resources)
	}
	if snap.Result != ResultOngoing || !snap.Settled || snap.Dial != 1 {
		t.Fatalf("unexpected starting state: result=%s settled=%t dial=%d", snap.Result, snap.Settled, snap.Dial)
	}
	if snap.Target != s.Spec().Target {
		t.Fatalf("snapshot target %s differs from spec target %s", snap.Target, s.Spec().Target)
	}
}

func TestNewSession_SameSeedSamePuzzle(t *testing.T) {
	a := NewSession(DefaultRules(), WithSeed(8))
	b := NewSession(DefaultRules(), WithSeed(8))
	if a.Spec() != b.Spec() {
		t.Fatalf("expected identical specs, got %v vs %v", a.Spec(), b.Spec())
	}
	ga, gb := a.Ghosts(), b.Ghosts()
	for i := range ga {
		if ga[i] != gb[i] {
			t.Fatalf("ghost %d differs: %+v vs %+v", i, ga[i], gb[i])
		}
	}
	if a.ID == b.ID {
		t.Fatal("expected distinct session ids")
	}
}

func TestNewSession_InvalidCaptureLanePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for capture lane outside the track")
		}
	}()
	rules := DefaultRules()
	rules.CaptureLane = rules.LaneCount
	NewSession(rules)
}

func TestToggleEnabled_OutOfRangePanics(t *testing.T) {
	ts := NewTestSession()
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for effector index 5")
		}
	}()
	ts.ToggleEnabled(EffectorCount)
}

func TestToggles_FlipAndCountTurns(t *testing.T) {
	ts := NewTestSession()
	ts.ToggleEnabled(2)
	ts.ToggleInverted(2)
	ts.CycleDial()
	e := ts.Effector(2)
	if !e.Enabled || !e.Inverted {
		t.Fatalf("expected effector 3 enabled and inverted, got %+v", e)
	}
	if ts.Wave().Dial != 2 {
		t.Fatalf("expected dial 2, got %d", ts.Wave().Dial)
	}
	if ts.Turn() != 3 {
		t.Fatalf("expected turn 3, got %d", ts.Turn())
	}
	ts.ToggleEnabled(2)
	if ts.Effector(2).Enabled {
		t.Fatal("expected second toggle to disable effector 3")
	}
}

func TestActions_IgnoredAfterTerminalResult(t *testing.T) {
	ts := NewTestSession(WithTargetAt(0), WithDecoyAt(0, 3))
	ts.Capture()
	if ts.Result() != ResultWon {
		t.Fatalf("expected won, got %s", ts.Result())
	}
	turn := ts.Turn()
	res := ts.Resources()

	if ts.ToggleEnabled(0) || ts.ToggleInverted(0) || ts.CycleDial() {
		t.Fatal("expected toggles to be refused after the game ended")
	}
	ts.Fire()
	ts.Capture()
	if ts.Turn() != turn || ts.Resources() != res {
		t.Fatalf("expected no state change after end, turn %d→%d res %+v→%+v", turn, ts.Turn(), res, ts.Resources())
	}
	if n := ts.Log().CountCategory("result", ""); n != 1 {
		t.Fatalf("expected exactly one result entry, got %d", n)
	}
}

func TestSnapshot_IsDeepCopy(t *testing.T) {
	ts := NewTestSession(WithTargetAt(2))
	snap := ts.Snapshot()
	snap.Effectors[0].Tags[0] = TagJelly
	snap.Ghosts[0].Lane = 7
	if ts.Effector(0).Tags[0] == TagJelly {
		t.Fatal("mutating snapshot tags leaked into the session")
	}
	if g, _ := ts.GhostByID(0); g.Lane != 2 {
		t.Fatalf("mutating snapshot ghost leaked into the session, lane=%d", g.Lane)
	}
}

func TestSession_LogRecordsActions(t *testing.T) {
	ts := NewTestSession(WithTargetAt(2), WithDecoyAt(3, 0))
	ts.Enable(4)
	ts.Fire()
	ts.Capture()

	if !ts.Log().HasEntry("effector", "enabled", "E5 true") {
		t.Fatalf("expected effector toggle entry, log:\n%s", ts.Log().Format())
	}
	if _, ok := ts.Log().LastOf("move", "scoot"); !ok {
		t.Fatalf("expected a move entry, log:\n%s", ts.Log().Format())
	}
	if ts.Log().CountCategory("capture", "decoy") != 1 {
		t.Fatalf("expected one captured decoy entry, log:\n%s", ts.Log().Format())
	}
	if !strings.Contains(ts.Log().Format(), "session") {
		t.Fatal("expected session start line in formatted log")
	}
}
