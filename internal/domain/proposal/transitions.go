package proposal

// The review pipeline is strictly linear; rejection is a side exit from any
// non-terminal state. Completed and rejected have no way out.

var next = map[Status]Status{
	StatusUnderReview:     StatusPreApproved,
	StatusPreApproved:     StatusApproved,
	StatusApproved:        StatusTransferStarted,
	StatusTransferStarted: StatusCompleted,
}

// Valid reports whether s is one of the closed set of proposal statuses.
func (s Status) Valid() bool {
	switch s {
	case StatusUnderReview, StatusPreApproved, StatusApproved,
		StatusTransferStarted, StatusCompleted, StatusRejected:
		return true
	}
	return false
}

// Terminal reports whether s admits no further transitions.
func (s Status) Terminal() bool {
	return s == StatusCompleted || s == StatusRejected
}

// Next returns the immediate successor in the review pipeline, if any.
func (s Status) Next() (Status, bool) {
	n, ok := next[s]
	return n, ok
}

// CanTransition reports whether from -> to is a legal move: one step forward
// along the pipeline, or a rejection of any non-terminal proposal.
func CanTransition(from, to Status) bool {
	if from.Terminal() {
		return false
	}
	if to == StatusRejected {
		return true
	}
	n, ok := from.Next()
	return ok && n == to
}

// Describe is the default history note when staff supply none.
func (s Status) Describe() string {
	switch s {
	case StatusUnderReview:
		return "proposal received and under review"
	case StatusPreApproved:
		return "documents verified, proposal pre-approved"
	case StatusApproved:
		return "proposal approved, quota reserved"
	case StatusTransferStarted:
		return "ownership transfer started"
	case StatusCompleted:
		return "transfer completed, quota sold"
	case StatusRejected:
		return "proposal rejected"
	}
	return string(s)
}
