package quota

import "context"

type Repository interface {
	Create(ctx context.Context, q *Quota) error
	GetByCotaID(ctx context.Context, cotaID string) (*Quota, error)
	GetByCotaIDForUpdate(ctx context.Context, cotaID string) (*Quota, error)
	Save(ctx context.Context, q *Quota) error

	// ReserveIfAvailable flips the quota to reserved with a single conditional
	// update ("... WHERE status = 'available'") and reports how many rows it
	// touched. Zero rows means another proposal won the reservation.
	ReserveIfAvailable(ctx context.Context, cotaID string) (int64, error)

	// MarkSold sets the quota to sold when its proposal completes.
	MarkSold(ctx context.Context, cotaID string) error

	// SetStatus is the staff override path; it bypasses the reservation guard.
	SetStatus(ctx context.Context, cotaID string, s Status) error
}
