package physics

// TrailCapacity is the number of past positions a particle keeps.
const TrailCapacity = 101

// Trail is a fixed-capacity FIFO of positions. Once full, each Push drops
// the oldest entry.
type Trail struct {
	buf   []Vector2D
	start int
	n     int
}

func NewTrail(capacity int) *Trail {
	if capacity < 1 {
		capacity = 1
	}
	return &Trail{buf: make([]Vector2D, capacity)}
}

func (t *Trail) Len() int { return t.n }
func (t *Trail) Cap() int { return len(t.buf) }

func (t *Trail) Push(p Vector2D) {
	if t.n < len(t.buf) {
		t.buf[(t.start+t.n)%len(t.buf)] = p
		t.n++
		return
	}
	t.buf[t.start] = p
	t.start = (t.start + 1) % len(t.buf)
}

// At returns the i-th entry counting from the oldest.
func (t *Trail) At(i int) Vector2D {
	if i < 0 || i >= t.n {
		panic("physics: trail index out of range")
	}
	return t.buf[(t.start+i)%len(t.buf)]
}

// Each calls fn oldest-first.
func (t *Trail) Each(fn func(i int, p Vector2D)) {
	for i := 0; i < t.n; i++ {
		fn(i, t.buf[(t.start+i)%len(t.buf)])
	}
}

// Points copies the trail oldest-first.
func (t *Trail) Points() []Vector2D {
	out := make([]Vector2D, t.n)
	t.Each(func(i int, p Vector2D) { out[i] = p })
	return out
}

// Newest copies the trail newest-first.
func (t *Trail) Newest() []Vector2D {
	out := make([]Vector2D, t.n)
	t.Each(func(i int, p Vector2D) { out[t.n-1-i] = p })
	return out
}

func (t *Trail) Reset() {
	t.start = 0
	t.n = 0
}

func (t *Trail) clone() *Trail {
	c := &Trail{buf: make([]Vector2D, len(t.buf)), start: t.start, n: t.n}
	copy(c.buf, t.buf)
	return c
}
