package physics

// PursuitProfile defines target pursuit behavior parameters
type PursuitProfile struct {
	Speed    float64 // Cruising speed (points/sec), also the per-second arrival radius
	TurnRate float64 // Max heading change (radians/sec)
}
