// Package seed provides the deterministic pseudo-random stream that every
// garden visual is derived from.
//
// A garden's entire visual identity — palette, flower geometry, isoline
// texture — is a pure function of the owner's DID. The derivation has two
// stages:
//
//   - Hash reduces the identifier to a 32-bit signed integer using the
//     classic ((h << 5) - h) + c string hash with two's-complement
//     wraparound at every step.
//   - Source is a linear congruential generator seeded from the absolute
//     value of that hash. Each draw advances
//     state = (state*1103515245 + 12345) & 0x7fffffff and emits
//     state / 0x7fffffff in [0, 1).
//
// # Determinism Contract
//
// The same identifier always yields the same hash, the same seed, and the
// same draw sequence, forever. There is no time, entropy, or platform
// dependence. Draw order is part of the contract: consumers that derive
// multiple values from one Source must document the order of their draws,
// because inserting or reordering a draw changes every value after it.
//
// The helper draws (Range, IntRange, Bool, Pick) each consume exactly one
// Float so that higher-level draw sequences stay auditable.
//
// # Why Not math/rand
//
// math/rand's generator and its stream are not stable across Go releases,
// and its seeding discards high bits. Gardens rendered years apart must be
// pixel-identical, so the generator is fixed here, in full, and pinned by
// golden tests.
package seed
