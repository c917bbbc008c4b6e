package systems

import (
	"time"

	"github.com/lixenwraith/zombie-conga/component"
	"github.com/lixenwraith/zombie-conga/events"
)

// OutcomeSystem ends the round once, checking the win before the loss
type OutcomeSystem struct {
	winLength int
}

func NewOutcomeSystem(winLength int) *OutcomeSystem {
	return &OutcomeSystem{winLength: winLength}
}

func (s *OutcomeSystem) Priority() int {
	return 80
}

func (s *OutcomeSystem) Update(w *World, dt time.Duration) {
	if w.Round.Ended() {
		return
	}

	switch {
	case w.Round.ChainLength >= s.winLength:
		w.Round.Outcome = component.OutcomeWon
	case w.Round.Lives <= 0:
		w.Round.Outcome = component.OutcomeLost
	default:
		return
	}

	w.emit(events.EventRoundEnded, &events.RoundEndedPayload{
		Won:         w.Round.Outcome == component.OutcomeWon,
		Lives:       w.Round.Lives,
		ChainLength: w.Round.ChainLength,
	})
	w.emit(events.EventMusicStop, nil)
}
