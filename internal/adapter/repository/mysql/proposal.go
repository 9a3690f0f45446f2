package mysql

import (
	"context"

	proposalDomain "cotamarket/internal/domain/proposal"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ProposalRepository struct{ db *gorm.DB }

func NewProposalRepository(db *gorm.DB) *ProposalRepository { return &ProposalRepository{db: db} }

func (r *ProposalRepository) Create(ctx context.Context, p *proposalDomain.Proposal) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *ProposalRepository) Save(ctx context.Context, p *proposalDomain.Proposal) error {
	return r.db.WithContext(ctx).Save(p).Error
}

func (r *ProposalRepository) GetByProposalID(ctx context.Context, proposalID string) (*proposalDomain.Proposal, error) {
	var out proposalDomain.Proposal
	res := r.db.WithContext(ctx).Where("proposal_id = ?", proposalID).First(&out)
	return &out, res.Error
}

func (r *ProposalRepository) GetByProposalIDForUpdate(ctx context.Context, proposalID string) (*proposalDomain.Proposal, error) {
	var out proposalDomain.Proposal
	res := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("proposal_id = ?", proposalID).
		First(&out)
	return &out, res.Error
}

func (r *ProposalRepository) ListByGroupID(ctx context.Context, groupID string) ([]proposalDomain.Proposal, error) {
	var out []proposalDomain.Proposal
	res := r.db.WithContext(ctx).
		Where("group_id = ?", groupID).
		Order("id ASC").
		Find(&out)
	return out, res.Error
}

type HistoryRepository struct{ db *gorm.DB }

func NewHistoryRepository(db *gorm.DB) *HistoryRepository { return &HistoryRepository{db: db} }

func (r *HistoryRepository) Append(ctx context.Context, e *proposalDomain.HistoryEntry) error {
	return r.db.WithContext(ctx).Create(e).Error
}

func (r *HistoryRepository) ListByProposalID(ctx context.Context, proposalID uint64) ([]proposalDomain.HistoryEntry, error) {
	var out []proposalDomain.HistoryEntry
	res := r.db.WithContext(ctx).
		Where("proposal_id = ?", proposalID).
		Order("id ASC").
		Find(&out)
	return out, res.Error
}
