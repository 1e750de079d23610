package snake

// InitialLength is the body length of a freshly spawned actor.
const InitialLength = 3

// CollisionKind says what the head ran into.
type CollisionKind int

const (
	CollisionNone CollisionKind = iota
	CollisionBoundary
	CollisionSelf
)

func (k CollisionKind) String() string {
	switch k {
	case CollisionBoundary:
		return "boundary"
	case CollisionSelf:
		return "self"
	default:
		return "none"
	}
}

// Actor is the moving body. The head is body[0].
type Actor struct {
	body          []Cell
	heading       Heading
	moved         Heading // heading used by the most recent Step
	pendingGrowth bool
	width         int
	height        int
}

// NewActor spawns a three-cell body centered in a width×height grid,
// heading right. On a grid too narrow to center it the head moves right
// so the tail still lands in column 0.
func NewActor(width, height int) *Actor {
	x, y := max(width/2, InitialLength-1), height/2
	body := make([]Cell, 0, InitialLength)
	for i := range InitialLength {
		body = append(body, Cell{X: x - i, Y: y})
	}
	return &Actor{
		body:    body,
		heading: HeadingRight,
		moved:   HeadingRight,
		width:   width,
		height:  height,
	}
}

// Step advances the body one cell along the heading. The tail is dropped
// unless growth is pending. No collision checks happen here.
func (a *Actor) Step() {
	newHead := a.body[0].Add(a.heading)

	if a.pendingGrowth {
		a.body = append(a.body, Cell{})
		a.pendingGrowth = false
	}
	copy(a.body[1:], a.body[:len(a.body)-1])
	a.body[0] = newHead
	a.moved = a.heading
}

// SetHeading changes direction unless h is the opposite of either the
// pending heading or the heading used by the most recent Step. So after
// moving right, Up then Left within one tick keeps Up and drops Left.
// A rejected heading is silently ignored; the return value reports
// whether the heading was taken.
func (a *Actor) SetHeading(h Heading) bool {
	if h == a.heading.Opposite() || h == a.moved.Opposite() {
		return false
	}
	a.heading = h
	return true
}

// Collision classifies the head position after a step.
func (a *Actor) Collision() CollisionKind {
	head := a.body[0]
	if !head.In(a.width, a.height) {
		return CollisionBoundary
	}
	for _, c := range a.body[1:] {
		if c == head {
			return CollisionSelf
		}
	}
	return CollisionNone
}

// CheckCollision reports whether the head is out of bounds or on the body.
func (a *Actor) CheckCollision() bool {
	return a.Collision() != CollisionNone
}

// MarkGrowthPending makes the next Step keep the tail.
func (a *Actor) MarkGrowthPending() {
	a.pendingGrowth = true
}

// GrowthPending reports whether the next Step will grow the body.
func (a *Actor) GrowthPending() bool {
	return a.pendingGrowth
}

// Resize updates the bounds used by collision checks. The body is left
// alone; keeping it inside the new bounds is the caller's job.
func (a *Actor) Resize(width, height int) {
	a.width = width
	a.height = height
}

// Head returns the head cell.
func (a *Actor) Head() Cell {
	return a.body[0]
}

// Heading returns the heading the next Step will use.
func (a *Actor) Heading() Heading {
	return a.heading
}

// Len returns the body length.
func (a *Actor) Len() int {
	return len(a.body)
}

// Body returns a copy of the body, head first.
func (a *Actor) Body() []Cell {
	out := make([]Cell, len(a.body))
	copy(out, a.body)
	return out
}

// Occupies reports whether any body cell equals c.
func (a *Actor) Occupies(c Cell) bool {
	for _, b := range a.body {
		if b == c {
			return true
		}
	}
	return false
}

// FitsWithin reports whether every body cell lies inside width×height.
func (a *Actor) FitsWithin(width, height int) bool {
	for _, c := range a.body {
		if !c.In(width, height) {
			return false
		}
	}
	return true
}
