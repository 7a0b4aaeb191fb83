// Package repo models the record storage the garden reads and writes.
//
// A Record is a duck-typed payload addressed by collection and record
// key; Store is the seam between the migration engine and whatever
// holds the records. The package ships MemoryStore, a deterministic
// in-memory implementation used by tests, examples, and local hosts.
// Hosts backed by a real personal data server implement Store over
// their own client; the network transport itself is out of scope.
//
// Record values stay as map[string]any end to end. Payload shapes are
// owned by the lexicons, not by this package, so nothing here drops or
// normalizes fields it does not recognize.
package repo
