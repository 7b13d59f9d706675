package governance

// Proposal statuses
const (
	StatusOpen         = "OPEN"
	StatusPassed       = "PASSED"
	StatusRejected     = "REJECTED"
	StatusQuorumNotMet = "QUORUM_NOT_MET"
)

// Voting policy. Quorum counts total votes cast; approval is measured
// against the votes cast, not the member base.
const (
	MinQuorum         = 10
	ApprovalThreshold = 0.6
)

// Outcome finalizes a closed proposal from its vote counters.
func Outcome(votesFor, votesAgainst int) string {
	total := votesFor + votesAgainst
	if total < MinQuorum {
		return StatusQuorumNotMet
	}
	if float64(votesFor) >= ApprovalThreshold*float64(total) {
		return StatusPassed
	}
	return StatusRejected
}
