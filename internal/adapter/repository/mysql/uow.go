package mysql

import (
	"context"

	"cotamarket/internal/domain/uow"

	"gorm.io/gorm"
)

type GormUoW struct{ db *gorm.DB }

func NewGormUoW(db *gorm.DB) *GormUoW { return &GormUoW{db: db} }

var _ uow.UnitOfWork = (*GormUoW)(nil)

func (u *GormUoW) WithinTx(ctx context.Context, fn func(r uow.Repos) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		r := uow.Repos{
			Quotas:    &QuotaRepository{db: tx},
			Proposals: &ProposalRepository{db: tx},
			History:   &HistoryRepository{db: tx},
		}
		return fn(r)
	})
}
