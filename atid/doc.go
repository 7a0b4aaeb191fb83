// Package atid handles the account identifiers the garden is keyed by.
//
// It validates the syntax of the two DID methods the protocol uses,
// did:plc and did:web, without any network resolution, and defines the
// Identity collaborator that migration uses to decide whether the
// caller is allowed to act on an account. Hosts that already carry a
// session plug it in behind Identity; tests and single-user tools use
// Static.
package atid
