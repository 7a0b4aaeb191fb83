// Package nsid carries the mapping between the legacy and current
// record namespaces.
//
// The garden's records were originally written under com.spores.garden.*
// collection names and are migrated to garden.spores.*. The mapping is
// a fixed bijection over the nine logical record kinds; every helper in
// this package is total, returning names and URIs outside the mapping
// unchanged rather than failing. Callers treat rewriting as best
// effort, so an unrecognized input keeps its original form.
package nsid
