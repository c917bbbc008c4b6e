package events

import (
	"time"
)

// EventType represents the type of simulation event
type EventType int

const (
	// EventPursuitStart signals the zombie began chasing a target
	// Trigger: SetTarget while not already pursuing
	// Consumer: presentation (walk animation) | Payload: nil
	EventPursuitStart EventType = iota

	// EventPursuitStop signals the zombie arrived at its target
	// Trigger: MovementSystem arrival snap
	// Consumer: presentation (walk animation) | Payload: nil
	EventPursuitStop

	// EventCatCaptured signals a cat joined the train
	// Trigger: CollisionSystem cat contact
	// Consumer: SoundManager (capture cue) | Payload: *CatCapturedPayload
	EventCatCaptured

	// EventEnemyHit signals the zombie was hit and became invincible
	// Trigger: CollisionSystem enemy contact (collapsed per tick)
	// Consumer: SoundManager (hit cue) | Payload: *EnemyHitPayload
	EventEnemyHit

	// EventFollowersReleased signals tail followers were flung from the train
	// Trigger: CollisionSystem enemy contact | Payload: *FollowersReleasedPayload
	EventFollowersReleased

	// EventCatExpired signals an uncaught cat timed out
	// Trigger: RoamerSystem | Payload: *RoamerPayload
	EventCatExpired

	// EventRoundEnded signals the outcome fired
	// Trigger: OutcomeSystem, exactly once per round
	// Consumer: SoundManager (jingle), scene flow | Payload: *RoundEndedPayload
	EventRoundEnded

	// EventMusicStart signals the background loop should play
	// Trigger: Simulation construction | Payload: nil
	EventMusicStart

	// EventMusicStop signals the background loop should stop
	// Trigger: OutcomeSystem | Payload: nil
	EventMusicStop
)

var eventNames = [...]string{
	EventPursuitStart:      "PursuitStart",
	EventPursuitStop:       "PursuitStop",
	EventCatCaptured:       "CatCaptured",
	EventEnemyHit:          "EnemyHit",
	EventFollowersReleased: "FollowersReleased",
	EventCatExpired:        "CatExpired",
	EventRoundEnded:        "RoundEnded",
	EventMusicStart:        "MusicStart",
	EventMusicStop:         "MusicStop",
}

func (t EventType) String() string {
	if t >= 0 && int(t) < len(eventNames) {
		return eventNames[t]
	}
	return "Unknown"
}

// GameEvent represents a single simulation event with metadata
type GameEvent struct {
	Type    EventType
	Payload any
	Frame   int64
	// Timestamp is simulation time, not wall clock
	Timestamp time.Duration
}
