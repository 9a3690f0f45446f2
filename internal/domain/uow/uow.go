package uow

import (
	"context"

	"cotamarket/internal/domain/proposal"
	"cotamarket/internal/domain/quota"
)

type Repos struct {
	Quotas    quota.Repository
	Proposals proposal.Repository
	History   proposal.HistoryRepository
}

// UnitOfWork runs fn with all repositories bound to one transaction, so a
// proposal status change, its history entry, and the quota status side effect
// commit together or not at all.
type UnitOfWork interface {
	WithinTx(ctx context.Context, fn func(r Repos) error) error
}
