package sim

import "testing"

func TestAutoPlayer_HerdsLoneTargetAndWins(t *testing.T) {
	ts := NewTestSession(
		WithStrengths([EffectorCount]int{1, 1, 1, 1, -1}),
		WithTargetAt(2),
	)
	ap := NewAutoPlayer(20)
	if got := ap.Play(ts.Session); got != ResultWon {
		t.Fatalf("expected won, got %s\n%s", got, ts.Log().Format())
	}
}

func TestAutoPlayer_NeverLetsTargetEscape(t *testing.T) {
	for seed := int64(1); seed <= 40; seed++ {
		s := NewSession(DefaultRules(), WithSeed(seed))
		NewAutoPlayer(60).Play(s)
		if s.Reason() == LossTargetEscaped {
			t.Fatalf("seed %d: auto-player fired a target off the track\n%s", seed, s.Log().Format())
		}
	}
}

func TestAutoPlayer_StepRefusesFinishedSession(t *testing.T) {
	ts := NewTestSession(WithTargetAt(0), WithDecoyAt(3, 0))
	ts.Capture()
	if ts.Result() != ResultWon {
		t.Fatalf("expected won setup, got %s", ts.Result())
	}
	if NewAutoPlayer(5).Step(ts.Session) {
		t.Fatal("expected Step to refuse a finished session")
	}
}

func TestAutoPlayer_HoldsCaptureThatWouldSinkReputation(t *testing.T) {
	ts := NewTestSession(
		WithReputation(2),
		WithTargetAt(0),
		WithDecoyAt(0, 0), // blob/top_hat shares the target hat
		WithDecoyAt(0, 0),
		WithTargetAt(5),
	)
	if !NewAutoPlayer(5).Step(ts.Session) {
		t.Fatalf("expected a herding move, log:\n%s", ts.Log().Format())
	}
	if ts.Log().CountCategory("capture", "") != 0 {
		t.Fatal("expected no capture while a decoy would drop reputation to zero")
	}
	if ts.Result() != ResultOngoing {
		t.Fatalf("expected ongoing, got %s", ts.Result())
	}
}

func TestHerdScore_Ordering(t *testing.T) {
	a := herdScore{nearest: 0, decoys: 2, total: 5}
	b := herdScore{nearest: 1, decoys: 0, total: 1}
	if !a.less(b) {
		t.Fatal("nearest distance should dominate")
	}
	c := herdScore{nearest: 0, decoys: 1, total: 9}
	if !c.less(a) {
		t.Fatal("fewer decoys in lane should win at equal distance")
	}
}
