// Package theme assembles the visual identity derived from an
// identifier: color palette, flower parameters, contour configuration,
// and CSS custom properties, plus cached rendering of the artwork.
//
// Derivation is pure; the cache only ever holds values that could be
// recomputed, so cache failures degrade to recomputation rather than
// surfacing as errors.
package theme
