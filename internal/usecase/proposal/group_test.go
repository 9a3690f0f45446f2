package proposal

import (
	"context"
	"testing"

	domainProposal "cotamarket/internal/domain/proposal"
	"cotamarket/internal/domain/uow"
	"cotamarket/internal/testutil/proposalmock"
	"cotamarket/internal/testutil/uowmock"
)

func TestDeriveGroupStatus(t *testing.T) {
	s := func(v string) domainProposal.Status { return domainProposal.Status(v) }

	tests := []struct {
		name    string
		members []domainProposal.Status
		want    GroupStatus
	}{
		{"all under review", []domainProposal.Status{s("under_review"), s("under_review")}, GroupPending},
		{"mixed progress", []domainProposal.Status{s("approved"), s("pre_approved"), s("under_review")}, GroupPartial},
		{"any rejected wins", []domainProposal.Status{s("rejected"), s("approved"), s("approved")}, GroupRejected},
		{"all completed", []domainProposal.Status{s("completed"), s("completed")}, GroupCompleted},
		{"all at approved or later", []domainProposal.Status{s("approved"), s("transfer_started"), s("completed")}, GroupApproved},
		{"all pre-approved counts as partial", []domainProposal.Status{s("pre_approved"), s("pre_approved")}, GroupPartial},
		{"empty group", nil, GroupPending},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DeriveGroupStatus(tt.members); got != tt.want {
				t.Fatalf("got %s, want %s", got, tt.want)
			}
		})
	}
}

func TestGetGroup_PaymentGate(t *testing.T) {
	group := "6f9619ff-8b86-4d01-b42d-00cf4fc964ff"
	mk := func(id string, st domainProposal.Status) domainProposal.Proposal {
		return domainProposal.Proposal{ProposalID: id, GroupID: &group, Status: st, BuyerPFID: buyerID}
	}

	proposals := &proposalmock.Repo{
		ListByGroupIDFn: func(ctx context.Context, groupID string) ([]domainProposal.Proposal, error) {
			return []domainProposal.Proposal{
				mk("p1p1p1p1p1p1p1p1p1p1p1p1p1p1p1p1", domainProposal.StatusApproved),
				mk("p2p2p2p2p2p2p2p2p2p2p2p2p2p2p2p2", domainProposal.StatusApproved),
			}, nil
		},
	}
	history := &proposalmock.HistoryRepo{}
	uc := NewUsecase(proposals, history, uowmock.Passthrough(uow.Repos{Proposals: proposals, History: history}))

	dto, err := uc.GetGroup(context.Background(), group)
	if err != nil {
		t.Fatalf("GetGroup: %v", err)
	}
	if dto.Status != GroupApproved {
		t.Fatalf("status=%s", dto.Status)
	}
	if !dto.PaymentReady {
		t.Fatal("payment gate must open when every member is approved")
	}
	if dto.Counts[string(domainProposal.StatusApproved)] != 2 {
		t.Fatalf("counts: %+v", dto.Counts)
	}
}

func TestGetGroup_UnknownGroup(t *testing.T) {
	proposals := &proposalmock.Repo{
		ListByGroupIDFn: func(ctx context.Context, groupID string) ([]domainProposal.Proposal, error) {
			return nil, nil
		},
	}
	history := &proposalmock.HistoryRepo{}
	uc := NewUsecase(proposals, history, uowmock.New())

	if _, err := uc.GetGroup(context.Background(), "no-such-group"); err == nil {
		t.Fatal("want error for unknown group")
	}
}
