package sim

// GameResult is the session-level outcome signal.
type GameResult int

const (
	ResultOngoing GameResult = iota
	ResultWon
	ResultLost
)

func (r GameResult) String() string {
	switch r {
	case ResultOngoing:
		return "ongoing"
	case ResultWon:
		return "won"
	case ResultLost:
		return "lost"
	default:
		return "unknown"
	}
}

// Terminal reports whether the session is over.
func (r GameResult) Terminal() bool {
	return r == ResultWon || r == ResultLost
}

// LossReason explains a ResultLost.
type LossReason int

const (
	LossNone LossReason = iota
	LossTargetEscaped
	LossReputationExhausted
	LossChargesExhausted
)

func (r LossReason) String() string {
	switch r {
	case LossNone:
		return "none"
	case LossTargetEscaped:
		return "target_escaped"
	case LossReputationExhausted:
		return "reputation_exhausted"
	case LossChargesExhausted:
		return "charges_exhausted"
	default:
		return "unknown"
	}
}

// Describe returns a one-line human summary for the end screen.
func Describe(result GameResult, reason LossReason) string {
	switch {
	case result == ResultWon:
		return "Every target ghost is in the jar."
	case result == ResultLost && reason == LossTargetEscaped:
		return "The target slipped off the edge of the track."
	case result == ResultLost && reason == LossReputationExhausted:
		return "Too many innocent ghosts captured. Nobody trusts you now."
	case result == ResultLost && reason == LossChargesExhausted:
		return "Out of charges with the target still loose."
	default:
		return ""
	}
}
