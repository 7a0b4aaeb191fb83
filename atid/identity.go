package atid

// Identity reports which account the caller is operating as. Migration
// consults it before touching a repository: operations on an account
// the caller is not authenticated as are skipped, never attempted.
//
// Implementations must be safe for concurrent use.
type Identity interface {
	// DID returns the identifier of the authenticated account, or the
	// empty string when no account is authenticated.
	DID() string

	// IsAuthenticatedAs reports whether the caller is authenticated as
	// the given account.
	IsAuthenticatedAs(did string) bool
}

// Static is an Identity fixed to a single account. It is the right
// shape for single-user hosts and for tests; hosts with real sessions
// implement Identity over their own auth state instead.
type Static struct {
	did string
}

var _ Identity = (*Static)(nil)

// NewStatic returns an Identity permanently authenticated as did.
// Passing the empty string yields an identity that is authenticated as
// no one.
func NewStatic(did string) *Static {
	return &Static{did: did}
}

// DID returns the fixed account identifier.
func (s *Static) DID() string {
	return s.did
}

// IsAuthenticatedAs reports whether did matches the fixed account.
// The empty string never matches, even against an empty identity.
func (s *Static) IsAuthenticatedAs(did string) bool {
	return did != "" && s.did == did
}
