// Package isoline generates deterministic topographic contour artwork
// for an identity.
//
// A Config is carved from fixed bit slices of the identifier hash, so
// each parameter reads an independent-looking range of the same 32 bits.
// Rendering samples a seeded multi-octave value-noise field on a grid,
// runs marching squares at evenly spaced thresholds, stitches the
// resulting segments into chains, and draws closed chains as filled
// regions under smoothed stroke paths. Saddle cells bend their cuts
// outward instead of drawing a straight diagonal; the bend is a
// stylistic tie-break carried for output fidelity.
package isoline
