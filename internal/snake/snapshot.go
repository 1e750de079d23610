package snake

// Snapshot is a read-only copy of everything a renderer needs for a frame.
type Snapshot struct {
	Body          []Cell  `json:"body"`
	Target        Cell    `json:"target"`
	Width         int     `json:"width"`
	Height        int     `json:"height"`
	Score         int     `json:"score"`
	Active        bool    `json:"active"`
	Heading       Heading `json:"heading"`
	Ticks         uint64  `json:"ticks"`
	GrowthPending bool    `json:"growthPending,omitempty"`
}

// Ready reports whether the arena had been laid out when the snapshot was taken.
func (s Snapshot) Ready() bool {
	return len(s.Body) > 0
}

// Head returns the head cell, or the zero cell for an empty snapshot.
func (s Snapshot) Head() Cell {
	if len(s.Body) == 0 {
		return Cell{}
	}
	return s.Body[0]
}

// Snapshot copies the current state.
func (a *Arena) Snapshot() Snapshot {
	a.mu.Lock()
	defer a.mu.Unlock()

	snap := Snapshot{
		Width:  a.width,
		Height: a.height,
		Score:  a.score,
		Active: a.active,
		Ticks:  a.ticks,
	}
	if a.actor != nil {
		snap.Body = a.actor.Body()
		snap.Heading = a.actor.Heading()
		snap.GrowthPending = a.actor.GrowthPending()
	}
	if a.target != nil {
		snap.Target = a.target.Position()
	}
	return snap
}
