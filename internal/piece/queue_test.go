package piece

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
)

// scripted returns the kinds it was given in order, then repeats the last.
type scripted struct {
	kinds []Kind
	calls int
}

func (s *scripted) IntN(n int) int {
	k := s.kinds[min(s.calls, len(s.kinds)-1)]
	s.calls++
	return int(k) % n
}

func TestQueue_SpawnConsumesPreview(t *testing.T) {
	q := NewQueue(&scripted{kinds: []Kind{O, T, S}})

	assert.Equal(t, O, q.Peek())
	assert.Equal(t, O, q.Peek(), "peek does not consume")

	p := q.Spawn()
	assert.Equal(t, New(O), p)
	assert.Equal(t, T, q.Peek())

	p = q.Spawn()
	assert.Equal(t, T, p.Kind)
	assert.Equal(t, S, q.Peek())
}

func TestQueue_Stats(t *testing.T) {
	q := NewQueue(&scripted{kinds: []Kind{I, I, L}})
	q.Spawn()
	q.Spawn()
	q.Spawn()

	assert.Equal(t, 2, q.Count(I))
	assert.Equal(t, 1, q.Count(L))
	assert.Equal(t, 0, q.Count(O))
	assert.Equal(t, 3, q.Total())

	q.Reset()
	assert.Equal(t, 0, q.Total())
	assert.Equal(t, 0, q.Count(I))
}

func TestQueue_ResetDrawsFreshKind(t *testing.T) {
	rng := &scripted{kinds: []Kind{Z, J, L}}
	q := NewQueue(rng)
	assert.Equal(t, Z, q.Peek())

	q.Reset()
	assert.Equal(t, J, q.Peek())
}

func TestQueue_CoversAllKinds(t *testing.T) {
	q := NewQueue(rand.New(rand.NewPCG(1, 2)))
	for i := 0; i < 700; i++ {
		p := q.Spawn()
		assert.Equal(t, 0, p.Rotation)
		assert.Equal(t, SpawnAnchor, p.Anchor)
	}
	for _, k := range Kinds {
		assert.Positive(t, q.Count(k), "kind %s never spawned", k)
	}
	assert.Equal(t, 700, q.Total())
}
