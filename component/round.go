package component

// Outcome is the round result; monotonic once it leaves Pending
type Outcome uint8

const (
	OutcomePending Outcome = iota
	OutcomeWon
	OutcomeLost
)

func (o Outcome) String() string {
	switch o {
	case OutcomeWon:
		return "won"
	case OutcomeLost:
		return "lost"
	default:
		return "pending"
	}
}

// RoundState tracks lives, train length and the outcome
type RoundState struct {
	Lives       int
	ChainLength int
	Outcome     Outcome
}

// Ended reports whether the outcome has fired
func (r RoundState) Ended() bool {
	return r.Outcome != OutcomePending
}
