// Package migrate moves an account's records from the legacy
// com.spores.garden.* collections to their garden.spores.* successors.
//
// The driver is best effort by contract: it refuses to run for
// accounts the caller is not authenticated as, catches every failure
// at the top level instead of propagating it, and reports what
// happened through a typed Outcome. Per-record logic is idempotent, so
// an interrupted or repeated run converges on the same final state
// with no data loss; a second run over migrated data performs zero
// writes and zero deletes.
//
// Records are rewritten by deep copy: the $type discriminator and any
// embedded at:// cross-references are remapped onto the new namespace
// while every other field passes through untouched. When a record
// already exists under the new name with different content, both
// copies are kept and the divergence is logged; that conflict policy
// keeps user edits safe at the cost of letting two copies persist
// until someone reconciles them.
//
// A MarkerStore remembers which owners completed cleanly so later runs
// can skip the scan. It is purely an optimization; correctness never
// depends on the marker.
package migrate
