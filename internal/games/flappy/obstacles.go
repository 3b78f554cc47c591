package flappy

import (
	"math/rand"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

// Rand is the source of obstacle gap positions.
type Rand interface {
	// Float64Range returns a uniformly distributed value in [lo, hi).
	Float64Range(lo, hi float64) float64
}

// mathRand adapts math/rand to Rand.
type mathRand struct {
	r *rand.Rand
}

// NewRand returns a Rand seeded with the given value.
func NewRand(seed int64) Rand {
	return &mathRand{r: rand.New(rand.NewSource(seed))}
}

func (m *mathRand) Float64Range(lo, hi float64) float64 {
	return lo + m.r.Float64()*(hi-lo)
}

// Pair is one obstacle: a top and a bottom pipe sharing a horizontal
// position and a gap centre.
type Pair struct {
	ID   int     // Spawn sequence number; lets Snapshot readers follow a pair across steps
	X    float64 // Left edge of both pipes
	GapY float64 // Vertical centre of the gap
}

// TopRect returns the pipe spanning from the top of the screen to the gap.
func (p Pair) TopRect() core.Rect {
	return core.NewRect(p.X, 0, PipeWidth, p.GapY-PipeGap/2)
}

// BottomRect returns the pipe spanning from the gap to the bottom of the screen.
func (p Pair) BottomRect() core.Rect {
	bottomY := p.GapY + PipeGap/2
	return core.NewRect(p.X, bottomY, PipeWidth, ScreenHeight-bottomY)
}

// Overlaps reports whether r touches either pipe of the pair.
func (p Pair) Overlaps(r core.Rect) bool {
	return r.Overlaps(p.TopRect()) || r.Overlaps(p.BottomRect())
}

// PipeQueue is the FIFO of obstacle pairs, ordered left to right.
// The front pair is always the next one the player reaches.
type PipeQueue struct {
	pairs  []Pair
	rng    Rand
	nextID int
}

// NewPipeQueue creates an empty queue drawing gap positions from rng.
func NewPipeQueue(rng Rand) *PipeQueue {
	return &PipeQueue{
		pairs: make([]Pair, 0, 4),
		rng:   rng,
	}
}

// Len returns the number of queued pairs.
func (q *PipeQueue) Len() int {
	return len(q.pairs)
}

// Front returns the leftmost pair, or nil when the queue is empty.
// The pointer is valid until the next Pop or Spawn.
func (q *PipeQueue) Front() *Pair {
	if len(q.pairs) == 0 {
		return nil
	}
	return &q.pairs[0]
}

// Back returns the most recently spawned pair.
func (q *PipeQueue) Back() (Pair, bool) {
	if len(q.pairs) == 0 {
		return Pair{}, false
	}
	return q.pairs[len(q.pairs)-1], true
}

// Pop removes the front pair.
func (q *PipeQueue) Pop() {
	if len(q.pairs) == 0 {
		return
	}
	copy(q.pairs, q.pairs[1:])
	q.pairs = q.pairs[:len(q.pairs)-1]
}

// NeedsSpawn reports whether a new pair is due: the queue is empty or the
// newest pair has moved more than SpawnSpacing away from the spawn line.
func (q *PipeQueue) NeedsSpawn() bool {
	back, ok := q.Back()
	return !ok || back.X < ScreenWidth-SpawnSpacing
}

// Spawn enqueues a new pair at the right edge with a random gap centre.
func (q *PipeQueue) Spawn() Pair {
	p := Pair{
		ID:   q.nextID,
		X:    ScreenWidth,
		GapY: q.rng.Float64Range(GapMargin, ScreenHeight-GapMargin),
	}
	q.nextID++
	q.pairs = append(q.pairs, p)
	return p
}

// Clear removes all pairs. Spawn IDs keep increasing across clears.
func (q *PipeQueue) Clear() {
	q.pairs = q.pairs[:0]
}

// Pairs returns a copy of the queued pairs, front first.
func (q *PipeQueue) Pairs() []Pair {
	out := make([]Pair, len(q.pairs))
	copy(out, q.pairs)
	return out
}
