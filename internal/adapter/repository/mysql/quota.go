package mysql

import (
	"context"
	"time"

	quotaDomain "cotamarket/internal/domain/quota"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type QuotaRepository struct{ db *gorm.DB }

func NewQuotaRepository(db *gorm.DB) *QuotaRepository { return &QuotaRepository{db: db} }

func (r *QuotaRepository) Create(ctx context.Context, q *quotaDomain.Quota) error {
	return r.db.WithContext(ctx).Create(q).Error
}

func (r *QuotaRepository) Save(ctx context.Context, q *quotaDomain.Quota) error {
	return r.db.WithContext(ctx).Save(q).Error
}

func (r *QuotaRepository) GetByCotaID(ctx context.Context, cotaID string) (*quotaDomain.Quota, error) {
	var out quotaDomain.Quota
	res := r.db.WithContext(ctx).Where("cota_id = ?", cotaID).First(&out)
	return &out, res.Error
}

func (r *QuotaRepository) GetByCotaIDForUpdate(ctx context.Context, cotaID string) (*quotaDomain.Quota, error) {
	var out quotaDomain.Quota
	res := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("cota_id = ?", cotaID).
		First(&out)
	return &out, res.Error
}

// ReserveIfAvailable is the guard against concurrent approvals: a single
// conditional update whose affected-row count tells the caller whether it won
// the reservation. A read-then-write here would reintroduce the race.
func (r *QuotaRepository) ReserveIfAvailable(ctx context.Context, cotaID string) (int64, error) {
	res := r.db.WithContext(ctx).
		Model(&quotaDomain.Quota{}).
		Where("cota_id = ? AND status = ?", cotaID, quotaDomain.StatusAvailable).
		Updates(map[string]any{
			"status":            quotaDomain.StatusReserved,
			"status_updated_at": time.Now().UTC(),
		})
	return res.RowsAffected, res.Error
}

func (r *QuotaRepository) MarkSold(ctx context.Context, cotaID string) error {
	return r.setStatus(ctx, cotaID, quotaDomain.StatusSold)
}

func (r *QuotaRepository) SetStatus(ctx context.Context, cotaID string, s quotaDomain.Status) error {
	return r.setStatus(ctx, cotaID, s)
}

func (r *QuotaRepository) setStatus(ctx context.Context, cotaID string, s quotaDomain.Status) error {
	res := r.db.WithContext(ctx).
		Model(&quotaDomain.Quota{}).
		Where("cota_id = ?", cotaID).
		Updates(map[string]any{
			"status":            s,
			"status_updated_at": time.Now().UTC(),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return quotaDomain.ErrNotFound
	}
	return nil
}
