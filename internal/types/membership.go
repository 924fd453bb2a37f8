package types

// DefaultRole is the role granted on every membership upsert. Admin grants
// are out of scope for these tools.
const DefaultRole = "member"

// Membership states reported by the API after an upsert
const (
	// StateActive means the user was already a member
	StateActive = "active"
	// StatePending means an invitation was sent and not yet accepted
	StatePending = "pending"
)

// AddOutcome classifies the API response to a membership upsert
type AddOutcome int

const (
	// AddUnexpected covers any status the tool does not recognize
	AddUnexpected AddOutcome = iota
	// AddApplied means the membership was created or updated (HTTP 200/201)
	AddApplied
	// AddNotFoundOrForbidden is the API's ambiguous 404: the user may not
	// exist, or the caller may lack permission to manage them
	AddNotFoundOrForbidden
	// AddForbidden is an explicit HTTP 403
	AddForbidden
)

// AddResult represents the outcome of one membership upsert
type AddResult struct {
	Outcome AddOutcome
	// State and Role are set when Outcome is AddApplied
	State string
	Role  string
	// StatusCode and Detail describe failed upserts
	StatusCode int
	Detail     string
}

// RemoveResult represents the outcome of one removal call
type RemoveResult struct {
	Removed    bool
	StatusCode int
	Detail     string
}
