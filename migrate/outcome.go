package migrate

// Skip reasons reported in Outcome.Skipped.
const (
	// SkipNotAuthenticated means the caller is not authenticated as
	// the owner being migrated.
	SkipNotAuthenticated = "not authenticated as owner"

	// SkipAlreadyMigrated means the owner's completion marker is set.
	SkipAlreadyMigrated = "already migrated"
)

// Outcome reports what a single migration run did. Counters cover the
// work actually performed, so a run that aborted partway still
// accounts for everything up to the failure.
type Outcome struct {
	// RunID identifies the run in logs and traces.
	RunID string `json:"runId"`

	// Owner is the account the run targeted.
	Owner string `json:"owner"`

	// Skipped names the reason no records were processed, or is empty
	// when the run executed.
	Skipped string `json:"skipped,omitempty"`

	// Writes counts records written to the current namespace.
	Writes int `json:"writes"`

	// Deletes counts legacy records removed.
	Deletes int `json:"deletes"`

	// Skips counts legacy records whose write was unnecessary because
	// an equal current copy already existed.
	Skips int `json:"skips"`

	// Conflicts counts records left in both namespaces because the
	// copies differ.
	Conflicts int `json:"conflicts"`

	// Pages counts list pages fetched across all collections.
	Pages int `json:"pages"`

	// Collections holds per-kind detail in processing order.
	Collections []CollectionOutcome `json:"collections,omitempty"`

	// Err is the failure that stopped the run early, if any. Run never
	// propagates it; callers that care inspect it here.
	Err error `json:"-"`
}

// CollectionOutcome reports the work done for one logical kind.
type CollectionOutcome struct {
	// Kind is the short logical name from the mapping table.
	Kind string `json:"kind"`

	// Legacy and Current are the two collection names for the kind.
	Legacy  string `json:"legacy"`
	Current string `json:"current"`

	Writes    int `json:"writes"`
	Deletes   int `json:"deletes"`
	Skips     int `json:"skips"`
	Conflicts int `json:"conflicts"`
	Pages     int `json:"pages"`

	// Truncated marks a collection whose pagination stopped early,
	// either on the page cap or on a repeated cursor. Records past the
	// stopping point remain in the legacy namespace for a later run.
	Truncated bool `json:"truncated,omitempty"`
}

// Clean reports whether every record reached its final state: nothing
// failed, nothing conflicted, and no collection stopped early. The
// completion marker is only set after a clean run.
func (o *Outcome) Clean() bool {
	if o.Err != nil || o.Conflicts > 0 {
		return false
	}
	for _, c := range o.Collections {
		if c.Truncated {
			return false
		}
	}
	return true
}
