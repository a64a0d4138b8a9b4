package model

// Phase is a coarse game-phase label.
type Phase string

const (
	PhaseEarly Phase = "early"
	PhaseMid   Phase = "mid"
	PhaseLate  Phase = "late"
)

// Phase boundaries in minutes.
const (
	EarlyGameEndMinute = 14
	MidGameEndMinute   = 25
)

// PhaseAtMinute classifies elapsed minutes: < 14 early, < 25 mid, else late.
func PhaseAtMinute(minutes float64) Phase {
	switch {
	case minutes < EarlyGameEndMinute:
		return PhaseEarly
	case minutes < MidGameEndMinute:
		return PhaseMid
	default:
		return PhaseLate
	}
}

// PhaseAt classifies a timeline timestamp in milliseconds.
func PhaseAt(ms int64) Phase {
	return PhaseAtMinute(float64(ms) / 60000)
}
