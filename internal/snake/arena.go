package snake

import (
	"fmt"
	"math/rand"
	"sync"
)

// PointsPerTarget is the flat score increment for each target consumed.
const PointsPerTarget = 10

// Reconciliation reports which branch ReconcileResize took.
type Reconciliation int

const (
	// ReconcileUnchanged means the dimensions matched and nothing moved.
	ReconcileUnchanged Reconciliation = iota
	// ReconcileInitialized means this was the first layout pass.
	ReconcileInitialized
	// ReconcilePreserved means the body fit and was kept.
	ReconcilePreserved
	// ReconcileReset means the body did not fit and was replaced.
	ReconcileReset
)

func (r Reconciliation) String() string {
	switch r {
	case ReconcileInitialized:
		return "initialized"
	case ReconcilePreserved:
		return "preserved"
	case ReconcileReset:
		return "reset"
	default:
		return "unchanged"
	}
}

// GameOverEvent is emitted once when a session ends.
type GameOverEvent struct {
	Score      int
	Cause      CollisionKind
	Length     int
	Ticks      uint64
	Width      int
	Height     int
	Reconciles int
}

// TickResult describes what a single Tick did.
type TickResult struct {
	Moved    bool
	Ate      bool
	GameOver *GameOverEvent // non-nil on the tick that ended the session
}

// Arena owns the grid, the actor, the target and the session state.
// All methods are safe to call from different goroutines; tick and resize
// never interleave.
type Arena struct {
	mu sync.Mutex

	rng    *rand.Rand
	width  int
	height int
	actor  *Actor
	target *Target

	score      int
	active     bool
	ticks      uint64
	reconciles int

	listeners []func(GameOverEvent)
}

// NewArena creates an arena with no grid yet. The first ReconcileResize
// call lays out the actor and the target.
func NewArena(seed int64) *Arena {
	return &Arena{
		rng: rand.New(rand.NewSource(seed)),
	}
}

// NewArenaSize creates an arena already laid out on a width×height grid.
func NewArenaSize(width, height int, seed int64) *Arena {
	a := NewArena(seed)
	a.ReconcileResize(width, height)
	return a
}

// OnGameOver registers fn to be called when the session ends. Listeners run
// after the arena lock is released, so they may call back into the arena.
func (a *Arena) OnGameOver(fn func(GameOverEvent)) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.listeners = append(a.listeners, fn)
}

// Tick advances the simulation by one step. It does nothing while the
// session is inactive or before the first layout pass.
func (a *Arena) Tick() TickResult {
	a.mu.Lock()
	res := a.tickLocked()
	listeners := a.listeners
	a.mu.Unlock()

	if res.GameOver != nil {
		for _, fn := range listeners {
			fn(*res.GameOver)
		}
	}
	return res
}

func (a *Arena) tickLocked() TickResult {
	if !a.active || a.actor == nil {
		return TickResult{}
	}

	a.ticks++
	a.actor.Step()

	if kind := a.actor.Collision(); kind != CollisionNone {
		a.active = false
		return TickResult{
			Moved: true,
			GameOver: &GameOverEvent{
				Score:      a.score,
				Cause:      kind,
				Length:     a.actor.Len(),
				Ticks:      a.ticks,
				Width:      a.width,
				Height:     a.height,
				Reconciles: a.reconciles,
			},
		}
	}

	if a.actor.Head() == a.target.Position() {
		a.actor.MarkGrowthPending()
		a.score += PointsPerTarget
		a.respawnLocked()
		return TickResult{Moved: true, Ate: true}
	}
	return TickResult{Moved: true}
}

// SetHeading forwards a direction change to the actor. Reversals are
// ignored. It reports whether the heading was taken.
func (a *Arena) SetHeading(h Heading) bool {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.actor == nil {
		return false
	}
	return a.actor.SetHeading(h)
}

// RespawnTarget moves the target to a random cell not covered by the body.
func (a *Arena) RespawnTarget() {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.target == nil {
		return
	}
	a.respawnLocked()
}

func (a *Arena) respawnLocked() {
	a.target.respawn(a.actor.Occupies)
}

// Restart begins a new session on the current grid. It is only honored
// while the session is over; it reports whether a restart happened.
func (a *Arena) Restart() bool {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.active || a.actor == nil {
		return false
	}
	a.spawnLocked()
	a.score = 0
	a.active = true
	a.ticks = 0
	a.reconciles = 0
	return true
}

// spawnLocked replaces the actor and target for the current dimensions.
func (a *Arena) spawnLocked() {
	a.actor = NewActor(a.width, a.height)
	a.target = newTarget(a.width, a.height, a.rng)
	a.respawnLocked()
}

// ReconcileResize adapts the arena to new grid dimensions. A body that
// still fits is kept and only the target moves; a body that would be cut
// off is replaced. Score and active state survive either way.
// Either dimension below InitialLength panics: a fresh body would not fit.
func (a *Arena) ReconcileResize(width, height int) Reconciliation {
	if width < InitialLength || height < InitialLength {
		panic(fmt.Sprintf("snake: grid %dx%d is below the %d-cell minimum", width, height, InitialLength))
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	if a.actor == nil || a.target == nil {
		a.width, a.height = width, height
		a.spawnLocked()
		a.score = 0
		a.active = true
		return ReconcileInitialized
	}

	if width == a.width && height == a.height {
		return ReconcileUnchanged
	}

	a.width, a.height = width, height
	a.reconciles++

	if a.actor.FitsWithin(width, height) {
		a.actor.Resize(width, height)
		a.target.resize(width, height)
		if a.actor.Occupies(a.target.Position()) {
			a.respawnLocked()
		}
		return ReconcilePreserved
	}

	a.spawnLocked()
	return ReconcileReset
}

// Active reports whether the session is running.
func (a *Arena) Active() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.active
}

// Score returns the current score.
func (a *Arena) Score() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.score
}

// Size returns the current grid dimensions; 0×0 before the first layout.
func (a *Arena) Size() (width, height int) {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.width, a.height
}
