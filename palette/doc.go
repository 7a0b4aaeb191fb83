// Package palette derives a garden's color scheme from its owner's DID.
//
// Generate is a pure function: the identifier's 32-bit hash picks a
// background hue, saturation, and lightness, and every other color is
// derived from the background by bounded iterative adjustment until it
// meets a documented WCAG-style contrast floor. Palettes are restricted
// to light backgrounds with black body text by design — the adjustment
// loops only ever lighten the background and darken the foregrounds.
//
// Contrast guarantees (enforced by construction, verified numerically in
// tests rather than proven):
//
//   - background vs black text: ≥ 4.5
//   - primary vs background: ≥ 3.0
//   - muted text vs background: ≥ 4.5
//   - border vs background: ≥ 2.0
//   - accent button text vs accent: ≥ 4.5
//
// The package also carries the color arithmetic the generators need:
// hex parsing and formatting, HSL conversions, WCAG relative luminance
// and contrast ratio, sRGB mixing, and a five-step perceptual (LCH)
// gradient used to pick the primary and accent colors.
package palette
