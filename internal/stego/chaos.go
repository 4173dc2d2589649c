package stego

// logisticR is the fixed control parameter of the logistic map. Values near
// 4.0 push the recurrence into its chaotic regime; the spec pins this to
// 3.99 rather than exposing it as a tunable.
const logisticR = 3.99

// ChaoticSequence is a key-seeded, restartable stream of pseudo-random
// pixel positions. Two sequences built from the same key produce identical
// output, and Reset() replays the stream from the beginning — both
// properties the reversible embed/extract algorithm depends on.
type ChaoticSequence struct {
	x0 float64
	x  float64
}

// NewChaoticSequence derives the initial state x0 from the key's digest and
// returns a sequence ready to be stepped with Next/NextIndex.
func NewChaoticSequence(key string) (*ChaoticSequence, error) {
	seed, err := deriveSeed(key)
	if err != nil {
		return nil, err
	}

	x0 := (float64(absSeed(seed)%9999) + 1) / 10000.0

	return &ChaoticSequence{x0: x0, x: x0}, nil
}

// Next advances the logistic map by one step and returns the new state.
// Evaluation order is fixed at r * (x * (1 - x)) so that a single process
// running embed and extract back to back is bit-exact; cross-platform
// bit-exactness is not required.
func (c *ChaoticSequence) Next() float64 {
	c.x = logisticR * (c.x * (1 - c.x))
	return c.x
}

// NextIndex advances the stream once and projects it into [0, n). n must be
// positive.
func (c *ChaoticSequence) NextIndex(n int) int {
	v := c.Next()
	idx := int(v * float64(n))
	idx %= n
	if idx < 0 {
		idx += n
	}
	return idx
}

// Reset restores the sequence to its initial state x0, so the next call to
// Next/NextIndex reproduces exactly what a freshly constructed sequence
// from the same key would produce.
func (c *ChaoticSequence) Reset() {
	c.x = c.x0
}
