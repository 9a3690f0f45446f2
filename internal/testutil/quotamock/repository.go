package quotamock

import (
	"context"

	domain "cotamarket/internal/domain/quota"
)

// Repo is a function-backed mock that satisfies quota.Repository.
// Fill in the function fields a test needs; the rest are safe no-ops.
type Repo struct {
	CreateFn               func(ctx context.Context, q *domain.Quota) error
	GetByCotaIDFn          func(ctx context.Context, cotaID string) (*domain.Quota, error)
	GetByCotaIDForUpdateFn func(ctx context.Context, cotaID string) (*domain.Quota, error)
	SaveFn                 func(ctx context.Context, q *domain.Quota) error
	ReserveIfAvailableFn   func(ctx context.Context, cotaID string) (int64, error)
	MarkSoldFn             func(ctx context.Context, cotaID string) error
	SetStatusFn            func(ctx context.Context, cotaID string, s domain.Status) error
}

var _ domain.Repository = (*Repo)(nil)

func (m *Repo) Create(ctx context.Context, q *domain.Quota) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, q)
	}
	return nil
}

func (m *Repo) GetByCotaID(ctx context.Context, cotaID string) (*domain.Quota, error) {
	if m.GetByCotaIDFn != nil {
		return m.GetByCotaIDFn(ctx, cotaID)
	}
	return nil, domain.ErrNotFound
}

func (m *Repo) GetByCotaIDForUpdate(ctx context.Context, cotaID string) (*domain.Quota, error) {
	if m.GetByCotaIDForUpdateFn != nil {
		return m.GetByCotaIDForUpdateFn(ctx, cotaID)
	}
	return nil, domain.ErrNotFound
}

func (m *Repo) Save(ctx context.Context, q *domain.Quota) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, q)
	}
	return nil
}

func (m *Repo) ReserveIfAvailable(ctx context.Context, cotaID string) (int64, error) {
	if m.ReserveIfAvailableFn != nil {
		return m.ReserveIfAvailableFn(ctx, cotaID)
	}
	return 1, nil
}

func (m *Repo) MarkSold(ctx context.Context, cotaID string) error {
	if m.MarkSoldFn != nil {
		return m.MarkSoldFn(ctx, cotaID)
	}
	return nil
}

func (m *Repo) SetStatus(ctx context.Context, cotaID string, s domain.Status) error {
	if m.SetStatusFn != nil {
		return m.SetStatusFn(ctx, cotaID, s)
	}
	return nil
}
