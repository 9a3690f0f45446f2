package proposal

import (
	"context"
	"errors"
	"time"

	domainProposal "cotamarket/internal/domain/proposal"
	domainQuota "cotamarket/internal/domain/quota"
	"cotamarket/internal/domain/uow"
	"cotamarket/pkg/id"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

type Usecase struct {
	proposalRepo domainProposal.Repository
	historyRepo  domainProposal.HistoryRepository
	uow          uow.UnitOfWork
}

func NewUsecase(proposals domainProposal.Repository, history domainProposal.HistoryRepository, tx uow.UnitOfWork) *Usecase {
	return &Usecase{proposalRepo: proposals, historyRepo: history, uow: tx}
}

var ErrInvalidInput = errors.New("invalid proposal input")

// Submit creates one proposal per target quota. More than one quota makes a
// composition: all members share a freshly generated group id. Preconditions
// are checked per quota under a row lock; any violation rolls back the whole
// submission.
//
// Multiple buyers may hold under_review proposals against the same quota;
// exclusivity is only enforced at approval time.
func (u *Usecase) Submit(ctx context.Context, in SubmitInput) ([]ProposalDTO, error) {
	if len(in.BuyerPFID) != 32 || len(in.CotaIDs) == 0 {
		return nil, ErrInvalidInput
	}
	buyerType := domainProposal.BuyerType(in.BuyerType)
	if buyerType != domainProposal.BuyerPF && buyerType != domainProposal.BuyerPJ {
		return nil, ErrInvalidInput
	}
	if buyerType == domainProposal.BuyerPJ && in.BuyerEntityID == "" {
		return nil, domainProposal.ErrMissingEntityID
	}

	var groupID *string
	if len(in.CotaIDs) > 1 {
		g := uuid.NewString()
		groupID = &g
	}

	var dtos []ProposalDTO
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		for _, cotaID := range in.CotaIDs {
			q, err := r.Quotas.GetByCotaIDForUpdate(ctx, cotaID)
			if err != nil {
				return domainQuota.ErrNotFound
			}
			if q.Status != domainQuota.StatusAvailable {
				return domainProposal.ErrQuotaUnavailable
			}
			if q.SellerID == in.BuyerPFID {
				return domainProposal.ErrSelfPurchase
			}

			p := &domainProposal.Proposal{
				ProposalID:      id.NewID32(),
				CotaID:          q.CotaID,
				BuyerPFID:       in.BuyerPFID,
				BuyerType:       buyerType,
				GroupID:         groupID,
				Status:          domainProposal.StatusUnderReview,
				StatusUpdatedAt: time.Now().UTC(),
			}
			if buyerType == domainProposal.BuyerPJ {
				entity := in.BuyerEntityID
				p.BuyerEntityID = &entity
			}
			if err := r.Proposals.Create(ctx, p); err != nil {
				return err
			}

			// Creation is itself a transition from the absent state.
			entry := &domainProposal.HistoryEntry{
				ProposalID: p.ID,
				OldStatus:  nil,
				NewStatus:  domainProposal.StatusUnderReview,
				ChangedBy:  in.BuyerPFID,
				Notes:      domainProposal.StatusUnderReview.Describe(),
			}
			if err := r.History.Append(ctx, entry); err != nil {
				return err
			}
			dtos = append(dtos, *toDTO(p))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger := log.With().Str("buyer_pf_id", in.BuyerPFID).Int("proposals", len(dtos)).Logger()
	if groupID != nil {
		logger = logger.With().Str("group_id", *groupID).Logger()
	}
	logger.Info().Msg("proposals submitted")
	return dtos, nil
}

// Transition moves one proposal a single step through the review pipeline.
// The proposal update, its history entry, and the quota side effect (reserve
// on approval, sell on completion) are one transaction; a conflicting
// reservation rolls everything back.
func (u *Usecase) Transition(ctx context.Context, in TransitionInput) (*ProposalDTO, error) {
	target := domainProposal.Status(in.Status)
	if !target.Valid() {
		return nil, domainProposal.ErrBadStatus
	}

	var dto *ProposalDTO
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		p, err := r.Proposals.GetByProposalIDForUpdate(ctx, in.ProposalID)
		if err != nil {
			return domainProposal.ErrNotFound
		}

		if !domainProposal.CanTransition(p.Status, target) {
			return domainProposal.ErrIllegalTransition
		}
		if target == domainProposal.StatusRejected {
			if in.RejectionReason == "" {
				return domainProposal.ErrMissingReason
			}
			reason := in.RejectionReason
			p.RejectionReason = &reason
		}
		if in.TransferFee != nil {
			p.TransferFee = in.TransferFee
		}

		// Quota side effect first: if it cannot apply, nothing is recorded.
		switch target {
		case domainProposal.StatusApproved:
			affected, err := r.Quotas.ReserveIfAvailable(ctx, p.CotaID)
			if err != nil {
				return err
			}
			if affected == 0 {
				return domainProposal.ErrConflictingReservation
			}
		case domainProposal.StatusCompleted:
			if err := r.Quotas.MarkSold(ctx, p.CotaID); err != nil {
				return err
			}
		}

		old := p.Status
		p.Status = target
		p.StatusUpdatedAt = time.Now().UTC()
		if err := r.Proposals.Save(ctx, p); err != nil {
			return err
		}

		notes := in.Notes
		if notes == "" {
			notes = target.Describe()
		}
		entry := &domainProposal.HistoryEntry{
			ProposalID: p.ID,
			OldStatus:  &old,
			NewStatus:  target,
			ChangedBy:  in.Actor,
			Notes:      notes,
		}
		if err := r.History.Append(ctx, entry); err != nil {
			return err
		}

		dto = toDTO(p)
		return nil
	})
	if err != nil {
		if errors.Is(err, domainProposal.ErrConflictingReservation) {
			log.Warn().
				Str("proposal_id", in.ProposalID).
				Str("actor", in.Actor).
				Msg("approval lost reservation race")
		}
		return nil, err
	}

	log.Info().
		Str("proposal_id", in.ProposalID).
		Str("actor", in.Actor).
		Str("status", in.Status).
		Msg("proposal transitioned")
	return dto, nil
}

func (u *Usecase) Get(ctx context.Context, proposalID string) (*ProposalDTO, []HistoryDTO, error) {
	p, err := u.proposalRepo.GetByProposalID(ctx, proposalID)
	if err != nil {
		return nil, nil, domainProposal.ErrNotFound
	}
	entries, err := u.historyRepo.ListByProposalID(ctx, p.ID)
	if err != nil {
		return nil, nil, err
	}

	history := make([]HistoryDTO, 0, len(entries))
	for _, e := range entries {
		var old *string
		if e.OldStatus != nil {
			s := string(*e.OldStatus)
			old = &s
		}
		history = append(history, HistoryDTO{
			OldStatus: old,
			NewStatus: string(e.NewStatus),
			ChangedBy: e.ChangedBy,
			Notes:     e.Notes,
			CreatedAt: e.CreatedAt,
		})
	}
	return toDTO(p), history, nil
}

func toDTO(p *domainProposal.Proposal) *ProposalDTO {
	return &ProposalDTO{
		ProposalID:      p.ProposalID,
		CotaID:          p.CotaID,
		BuyerPFID:       p.BuyerPFID,
		BuyerType:       string(p.BuyerType),
		BuyerEntityID:   p.BuyerEntityID,
		GroupID:         p.GroupID,
		Status:          string(p.Status),
		RejectionReason: p.RejectionReason,
		TransferFee:     p.TransferFee,
		CreatedAt:       p.CreatedAt,
	}
}
