package proposal

import "testing"

var allStatuses = []Status{
	StatusUnderReview,
	StatusPreApproved,
	StatusApproved,
	StatusTransferStarted,
	StatusCompleted,
	StatusRejected,
}

func TestCanTransition_Closure(t *testing.T) {
	// Legal moves are exactly: one step along the chain, or rejection from
	// any non-terminal state. Everything else must be refused.
	legal := map[[2]Status]bool{
		{StatusUnderReview, StatusPreApproved}:      true,
		{StatusPreApproved, StatusApproved}:         true,
		{StatusApproved, StatusTransferStarted}:     true,
		{StatusTransferStarted, StatusCompleted}:    true,
		{StatusUnderReview, StatusRejected}:         true,
		{StatusPreApproved, StatusRejected}:         true,
		{StatusApproved, StatusRejected}:            true,
		{StatusTransferStarted, StatusRejected}:     true,
	}

	for _, from := range allStatuses {
		for _, to := range allStatuses {
			want := legal[[2]Status{from, to}]
			if got := CanTransition(from, to); got != want {
				t.Errorf("CanTransition(%s, %s) = %v, want %v", from, to, got, want)
			}
		}
	}
}

func TestTerminalStatesHaveNoSuccessor(t *testing.T) {
	for _, s := range []Status{StatusCompleted, StatusRejected} {
		if !s.Terminal() {
			t.Errorf("%s should be terminal", s)
		}
		if n, ok := s.Next(); ok {
			t.Errorf("%s should have no successor, got %s", s, n)
		}
	}
}

func TestStatusValid(t *testing.T) {
	for _, s := range allStatuses {
		if !s.Valid() {
			t.Errorf("%s should be valid", s)
		}
	}
	if Status("cancelled").Valid() {
		t.Error("unknown status accepted")
	}
}
