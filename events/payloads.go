package events

import (
	"github.com/lixenwraith/zombie-conga/component"
	"github.com/lixenwraith/zombie-conga/vmath"
)

// CatCapturedPayload identifies the new follower
type CatCapturedPayload struct {
	ID          component.EntityID
	Position    vmath.Vec2
	ChainLength int
}

// EnemyHitPayload describes a collapsed enemy contact
type EnemyHitPayload struct {
	Enemies        []component.EntityID
	LivesRemaining int
}

// FollowersReleasedPayload lists the detached tail followers
type FollowersReleasedPayload struct {
	IDs         []component.EntityID
	ChainLength int
}

// RoamerPayload identifies a roamer
type RoamerPayload struct {
	ID   component.EntityID
	Kind component.RoamerKind
}

// RoundEndedPayload carries the outcome
type RoundEndedPayload struct {
	Won         bool
	Lives       int
	ChainLength int
}
