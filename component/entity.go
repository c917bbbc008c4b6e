package component

// EntityID identifies a simulation entity; zero is never assigned
type EntityID uint64

// EntityAllocator hands out monotonically increasing ids
type EntityAllocator struct {
	last EntityID
}

// Next returns a fresh id
func (a *EntityAllocator) Next() EntityID {
	a.last++
	return a.last
}
