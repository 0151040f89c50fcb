package piece

import (
	"github.com/kamstrup/intmap"
)

// Randomizer picks a value in [0, n). *rand.Rand from math/rand/v2
// satisfies it.
type Randomizer interface {
	IntN(n int) int
}

// Queue holds the kind of the next piece to spawn and counts how many of
// each kind have been spawned since the last Reset.
type Queue struct {
	rng    Randomizer
	next   Kind
	primed bool
	stats  *intmap.Map[Kind, int]
}

// NewQueue returns an empty queue drawing from rng.
func NewQueue(rng Randomizer) *Queue {
	return &Queue{
		rng:   rng,
		stats: intmap.New[Kind, int](NumKinds),
	}
}

func (q *Queue) draw() Kind {
	k := Kind(q.rng.IntN(NumKinds))
	k.mustValid()
	return k
}

// Reset discards the queued kind and the statistics.
func (q *Queue) Reset() {
	q.primed = false
	q.stats.Clear()
}

// Peek returns the kind the next Spawn will produce.
func (q *Queue) Peek() Kind {
	if !q.primed {
		q.next = q.draw()
		q.primed = true
	}
	return q.next
}

// Spawn consumes the queued kind, refills the queue and returns the new
// piece in spawn position. The caller decides whether the placement is legal.
func (q *Queue) Spawn() Piece {
	k := q.Peek()
	q.next = q.draw()

	n, _ := q.stats.Get(k)
	q.stats.Put(k, n+1)

	return New(k)
}

// Count returns how many pieces of kind k were spawned.
func (q *Queue) Count(k Kind) int {
	n, _ := q.stats.Get(k)
	return n
}

// Total returns the number of pieces spawned.
func (q *Queue) Total() int {
	total := 0
	q.stats.ForEach(func(_ Kind, n int) bool {
		total += n
		return true
	})
	return total
}
