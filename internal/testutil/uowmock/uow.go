package uowmock

import (
	"context"
	"errors"

	"cotamarket/internal/domain/uow"
)

// Ensure compile-time compliance
var _ uow.UnitOfWork = (*UoW)(nil)

var errUnimplemented = errors.New("uowmock: method not implemented")

// UoW is a function-backed mock that satisfies uow.UnitOfWork. The common
// setup passes fn straight through with a fixed set of repo mocks, which
// exercises the usecase body without a real transaction.
type UoW struct {
	WithinTxFn func(ctx context.Context, fn func(r uow.Repos) error) error
}

func New() *UoW { return &UoW{} }

// Passthrough returns a UoW that invokes fn immediately with the given repos.
func Passthrough(r uow.Repos) *UoW {
	return &UoW{
		WithinTxFn: func(ctx context.Context, fn func(r uow.Repos) error) error {
			return fn(r)
		},
	}
}

func (m *UoW) WithinTx(ctx context.Context, fn func(r uow.Repos) error) error {
	if m.WithinTxFn != nil {
		return m.WithinTxFn(ctx, fn)
	}
	return errUnimplemented
}
