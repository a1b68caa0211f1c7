package game

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/Garsondee/Ghost-Lanes/internal/sim"
)

type actionKind int

const (
	actNone actionKind = iota
	actToggle
	actInvert
	actDial
	actFire
	actCapture
	actCopy
	actNewSession
)

// inputAction is one player intent decoded from the keyboard.
type inputAction struct {
	kind  actionKind
	index int // effector for actToggle / actInvert
}

// mutates reports whether the action changes session state. Mutating
// actions wait while ghosts are still gliding.
func (a inputAction) mutates() bool {
	switch a.kind {
	case actToggle, actInvert, actDial, actFire, actCapture:
		return true
	default:
		return false
	}
}

var effectorKeys = [sim.EffectorCount]ebiten.Key{
	ebiten.KeyDigit1,
	ebiten.KeyDigit2,
	ebiten.KeyDigit3,
	ebiten.KeyDigit4,
	ebiten.KeyDigit5,
}

// actionForKey maps a key press to an action. shift selects inversion for
// the digit keys.
func actionForKey(k ebiten.Key, shift bool) inputAction {
	for i, ek := range effectorKeys {
		if k == ek {
			if shift {
				return inputAction{kind: actInvert, index: i}
			}
			return inputAction{kind: actToggle, index: i}
		}
	}
	switch k {
	case ebiten.KeyD:
		return inputAction{kind: actDial}
	case ebiten.KeySpace:
		return inputAction{kind: actFire}
	case ebiten.KeyC:
		return inputAction{kind: actCapture}
	case ebiten.KeyY:
		return inputAction{kind: actCopy}
	case ebiten.KeyN:
		return inputAction{kind: actNewSession}
	}
	return inputAction{}
}

var watchedKeys = append(effectorKeys[:],
	ebiten.KeyD, ebiten.KeySpace, ebiten.KeyC, ebiten.KeyY, ebiten.KeyN)

// readInput collects this frame's edge-triggered key presses.
func readInput() []inputAction {
	shift := ebiten.IsKeyPressed(ebiten.KeyShift)
	var out []inputAction
	for _, k := range watchedKeys {
		if !inpututil.IsKeyJustPressed(k) {
			continue
		}
		if a := actionForKey(k, shift); a.kind != actNone {
			out = append(out, a)
		}
	}
	return out
}

// actionResult carries what the presentation must animate after perform.
type actionResult struct {
	applied bool
	fire    *sim.FireReport
	capture *sim.CaptureReport
}

// perform applies a session-mutating action. Copy and new-session are
// handled by the Game because they reach outside the session.
func perform(s *sim.Session, a inputAction) actionResult {
	switch a.kind {
	case actToggle:
		return actionResult{applied: s.ToggleEnabled(a.index)}
	case actInvert:
		return actionResult{applied: s.ToggleInverted(a.index)}
	case actDial:
		return actionResult{applied: s.CycleDial()}
	case actFire:
		if s.Result().Terminal() {
			return actionResult{}
		}
		report := s.Fire()
		return actionResult{applied: true, fire: &report}
	case actCapture:
		if s.Result().Terminal() {
			return actionResult{}
		}
		report := s.Capture()
		return actionResult{applied: true, capture: &report}
	}
	return actionResult{}
}
