// Package flower generates deterministic flower artwork for an identity.
//
// A flower is described by Params, drawn field by field from a seeded
// random stream in a fixed order. That order is a compatibility contract:
// inserting, removing, or reordering a single draw changes every flower
// ever generated. RenderSVG keeps consuming the same stream for stem bend,
// per-petal jitter, and center placement, so the markup is a pure function
// of the identifier and its derived colors.
package flower
