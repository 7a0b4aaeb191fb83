package seed

// Hash reduces s to a 32-bit signed integer. Each step computes
// ((h << 5) - h) + c — that is, h*31 + c — with ordinary int32
// wraparound, which reproduces two's-complement truncation exactly.
// Go's fixed-size signed arithmetic wraps silently, so no explicit
// masking is needed.
//
// Iteration is by Unicode code point. For ASCII identifiers (every DID
// in practice) this is identical to iterating UTF-16 code units.
func Hash(s string) int32 {
	var h int32
	for _, r := range s {
		h = (h << 5) - h + int32(r)
	}
	return h
}

// Source is a deterministic pseudo-random stream seeded from an
// identifier. It is not safe for concurrent use; create one per
// generation call. A Source is never persisted — reconstructing it from
// the same identifier yields the same stream.
type Source struct {
	// state holds the LCG state. It is an int64 so that the seed
	// abs(MinInt32) = 2^31 is representable and the multiply
	// state*1103515245 stays exact; after the first draw the mask
	// confines it to [0, 2^31).
	state int64
}

// New returns a Source seeded from the absolute value of Hash(id).
func New(id string) *Source {
	h := int64(Hash(id))
	if h < 0 {
		h = -h
	}
	return &Source{state: h}
}

// Float advances the stream by one draw and returns the next value in
// [0, 1). The recurrence is the classic glibc LCG:
//
//	state = (state*1103515245 + 12345) & 0x7fffffff
//
// and the emitted value is state / 0x7fffffff.
func (s *Source) Float() float64 {
	s.state = (s.state*1103515245 + 12345) & 0x7fffffff
	return float64(s.state) / 0x7fffffff
}

// Range maps one draw onto [min, max).
func (s *Source) Range(min, max float64) float64 {
	return min + s.Float()*(max-min)
}

// IntRange maps one draw onto the integers min..max inclusive.
func (s *Source) IntRange(min, max int) int {
	n := max - min + 1
	i := int(s.Float() * float64(n))
	// A draw of exactly 1.0 (state landing on 0x7fffffff) would index
	// one past the end; clamp rather than skew the stream with a redraw.
	if i >= n {
		i = n - 1
	}
	return min + i
}

// Bool consumes one draw and reports whether it fell below p.
func (s *Source) Bool(p float64) bool {
	return s.Float() < p
}

// Pick maps one draw onto an index 0..n-1. It is the draw used for
// enum-style choices (petal shapes, center styles, leaf styles).
func (s *Source) Pick(n int) int {
	return s.IntRange(0, n-1)
}
