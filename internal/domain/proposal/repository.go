package proposal

import "context"

type Repository interface {
	Create(ctx context.Context, p *Proposal) error
	GetByProposalID(ctx context.Context, proposalID string) (*Proposal, error)
	GetByProposalIDForUpdate(ctx context.Context, proposalID string) (*Proposal, error)
	ListByGroupID(ctx context.Context, groupID string) ([]Proposal, error)
	Save(ctx context.Context, p *Proposal) error
}

// HistoryRepository only ever appends; there is no update or delete.
type HistoryRepository interface {
	Append(ctx context.Context, e *HistoryEntry) error
	ListByProposalID(ctx context.Context, proposalID uint64) ([]HistoryEntry, error)
}
