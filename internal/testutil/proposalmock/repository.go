package proposalmock

import (
	"context"

	domain "cotamarket/internal/domain/proposal"
)

// Repo is a function-backed mock that satisfies proposal.Repository.
type Repo struct {
	CreateFn                   func(ctx context.Context, p *domain.Proposal) error
	GetByProposalIDFn          func(ctx context.Context, proposalID string) (*domain.Proposal, error)
	GetByProposalIDForUpdateFn func(ctx context.Context, proposalID string) (*domain.Proposal, error)
	ListByGroupIDFn            func(ctx context.Context, groupID string) ([]domain.Proposal, error)
	SaveFn                     func(ctx context.Context, p *domain.Proposal) error
}

var _ domain.Repository = (*Repo)(nil)

func (m *Repo) Create(ctx context.Context, p *domain.Proposal) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, p)
	}
	return nil
}

func (m *Repo) GetByProposalID(ctx context.Context, proposalID string) (*domain.Proposal, error) {
	if m.GetByProposalIDFn != nil {
		return m.GetByProposalIDFn(ctx, proposalID)
	}
	return nil, domain.ErrNotFound
}

func (m *Repo) GetByProposalIDForUpdate(ctx context.Context, proposalID string) (*domain.Proposal, error) {
	if m.GetByProposalIDForUpdateFn != nil {
		return m.GetByProposalIDForUpdateFn(ctx, proposalID)
	}
	return nil, domain.ErrNotFound
}

func (m *Repo) ListByGroupID(ctx context.Context, groupID string) ([]domain.Proposal, error) {
	if m.ListByGroupIDFn != nil {
		return m.ListByGroupIDFn(ctx, groupID)
	}
	return nil, nil
}

func (m *Repo) Save(ctx context.Context, p *domain.Proposal) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, p)
	}
	return nil
}

// HistoryRepo is a function-backed mock that satisfies proposal.HistoryRepository.
// By default it records appends in memory so tests can assert on them.
type HistoryRepo struct {
	AppendFn           func(ctx context.Context, e *domain.HistoryEntry) error
	ListByProposalIDFn func(ctx context.Context, proposalID uint64) ([]domain.HistoryEntry, error)

	Appended []domain.HistoryEntry
}

var _ domain.HistoryRepository = (*HistoryRepo)(nil)

func (m *HistoryRepo) Append(ctx context.Context, e *domain.HistoryEntry) error {
	if m.AppendFn != nil {
		return m.AppendFn(ctx, e)
	}
	m.Appended = append(m.Appended, *e)
	return nil
}

func (m *HistoryRepo) ListByProposalID(ctx context.Context, proposalID uint64) ([]domain.HistoryEntry, error) {
	if m.ListByProposalIDFn != nil {
		return m.ListByProposalIDFn(ctx, proposalID)
	}
	out := make([]domain.HistoryEntry, 0, len(m.Appended))
	for _, e := range m.Appended {
		if e.ProposalID == proposalID {
			out = append(out, e)
		}
	}
	return out, nil
}
