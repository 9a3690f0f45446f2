package proposal

import (
	"context"

	domainProposal "cotamarket/internal/domain/proposal"
)

type GroupStatus string

const (
	GroupPending   GroupStatus = "pending"
	GroupPartial   GroupStatus = "partial"
	GroupApproved  GroupStatus = "approved"
	GroupCompleted GroupStatus = "completed"
	GroupRejected  GroupStatus = "rejected"
)

type GroupDTO struct {
	GroupID      string         `json:"group_id"`
	Status       GroupStatus    `json:"status"`
	Counts       map[string]int `json:"counts"`
	Members      []ProposalDTO  `json:"members"`
	PaymentReady bool           `json:"payment_ready"`
}

// DeriveGroupStatus reduces the member statuses of a composition to one
// group-level status. Read-only: grouping never mutates members.
//
//   - any member rejected        -> rejected
//   - all members completed     -> completed
//   - all members approved+     -> approved (payment may proceed)
//   - any member past review    -> partial
//   - otherwise                 -> pending
func DeriveGroupStatus(members []domainProposal.Status) GroupStatus {
	if len(members) == 0 {
		return GroupPending
	}

	completed, reachedApproved, advanced := 0, 0, 0
	for _, s := range members {
		if s == domainProposal.StatusRejected {
			return GroupRejected
		}
		if s == domainProposal.StatusCompleted {
			completed++
		}
		switch s {
		case domainProposal.StatusApproved, domainProposal.StatusTransferStarted, domainProposal.StatusCompleted:
			reachedApproved++
			advanced++
		case domainProposal.StatusPreApproved:
			advanced++
		}
	}

	switch {
	case completed == len(members):
		return GroupCompleted
	case reachedApproved == len(members):
		return GroupApproved
	case advanced > 0:
		return GroupPartial
	}
	return GroupPending
}

// GetGroup aggregates the proposals sharing groupID into the composite view
// used to render per-member progress and to gate "proceed to payment".
func (u *Usecase) GetGroup(ctx context.Context, groupID string) (*GroupDTO, error) {
	members, err := u.proposalRepo.ListByGroupID(ctx, groupID)
	if err != nil {
		return nil, err
	}
	if len(members) == 0 {
		return nil, domainProposal.ErrNotFound
	}

	statuses := make([]domainProposal.Status, 0, len(members))
	counts := make(map[string]int, len(members))
	dtos := make([]ProposalDTO, 0, len(members))
	for i := range members {
		statuses = append(statuses, members[i].Status)
		counts[string(members[i].Status)]++
		dtos = append(dtos, *toDTO(&members[i]))
	}

	derived := DeriveGroupStatus(statuses)
	return &GroupDTO{
		GroupID:      groupID,
		Status:       derived,
		Counts:       counts,
		Members:      dtos,
		PaymentReady: derived == GroupApproved,
	}, nil
}
