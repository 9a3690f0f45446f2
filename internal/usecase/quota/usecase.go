package quota

import (
	"context"
	"errors"
	"time"

	"cotamarket/internal/domain/quota"
	"cotamarket/pkg/annuity"
	"cotamarket/pkg/id"

	"github.com/rs/zerolog/log"
)

type Usecase struct{ repo quota.Repository }

func NewUsecase(r quota.Repository) *Usecase { return &Usecase{repo: r} }

var ErrInvalidInput = errors.New("invalid quota input")

// applyDerived recomputes entry_percentage and monthly_rate from the stored
// amounts. Every write path (publish, seller edit, staff edit) goes through
// here so the derived columns never drift between call sites.
func applyDerived(q *quota.Quota) {
	q.EntryPercentage = annuity.EntryPercentage(q.EntryAmount, q.CreditAmount)

	rate, err := annuity.ImpliedRate(q.InstallmentCount, -q.InstallmentValue, q.OutstandingBalance)
	if err != nil {
		// Unsolvable terms leave the rate unknown; the save still goes through.
		q.MonthlyRate = nil
		return
	}
	q.MonthlyRate = &rate
}

func validAmounts(credit, entry, outstanding, installment float64, n int) bool {
	return credit > 0 && entry >= 0 && outstanding >= 0 && installment >= 0 && n > 0
}

func (u *Usecase) Publish(ctx context.Context, in PublishInput) (*QuotaDTO, error) {
	if len(in.SellerID) != 32 || !validAmounts(in.CreditAmount, in.EntryAmount, in.OutstandingBalance, in.InstallmentValue, in.InstallmentCount) {
		return nil, ErrInvalidInput
	}

	q := &quota.Quota{
		CotaID:             id.NewID32(),
		SellerID:           in.SellerID,
		CreditAmount:       in.CreditAmount,
		EntryAmount:        in.EntryAmount,
		OutstandingBalance: in.OutstandingBalance,
		InstallmentCount:   in.InstallmentCount,
		InstallmentValue:   in.InstallmentValue,
		Status:             quota.StatusAvailable,
		StatusUpdatedAt:    time.Now().UTC(),
	}
	applyDerived(q)

	if err := u.repo.Create(ctx, q); err != nil {
		return nil, err
	}
	log.Info().Str("cota_id", q.CotaID).Str("seller_id", q.SellerID).Msg("quota published")
	return toDTO(q), nil
}

// Update is the seller self-edit path: owner only, and only while the quota
// is still available.
func (u *Usecase) Update(ctx context.Context, in UpdateInput) (*QuotaDTO, error) {
	if !validAmounts(in.CreditAmount, in.EntryAmount, in.OutstandingBalance, in.InstallmentValue, in.InstallmentCount) {
		return nil, ErrInvalidInput
	}

	q, err := u.repo.GetByCotaID(ctx, in.CotaID)
	if err != nil {
		return nil, quota.ErrNotFound
	}
	if q.SellerID != in.SellerID {
		return nil, quota.ErrNotOwner
	}
	if q.Status != quota.StatusAvailable {
		return nil, quota.ErrNotEditable
	}

	applyUpdate(q, in)
	if err := u.repo.Save(ctx, q); err != nil {
		return nil, err
	}
	return toDTO(q), nil
}

// StaffUpdate edits the financial fields regardless of status. Change records
// go to the audit stream, separate from the automatic transition log.
func (u *Usecase) StaffUpdate(ctx context.Context, in UpdateInput, actor string) (*QuotaDTO, error) {
	if !validAmounts(in.CreditAmount, in.EntryAmount, in.OutstandingBalance, in.InstallmentValue, in.InstallmentCount) {
		return nil, ErrInvalidInput
	}

	q, err := u.repo.GetByCotaID(ctx, in.CotaID)
	if err != nil {
		return nil, quota.ErrNotFound
	}

	applyUpdate(q, in)
	if err := u.repo.Save(ctx, q); err != nil {
		return nil, err
	}
	log.Info().
		Str("event", "staff_edit").
		Str("cota_id", q.CotaID).
		Str("actor", actor).
		Msg("quota fields edited by staff")
	return toDTO(q), nil
}

// OverrideStatus is the documented escape hatch for manual correction: staff
// may force any status, bypassing the proposal lifecycle entirely.
func (u *Usecase) OverrideStatus(ctx context.Context, cotaID string, target quota.Status, actor string) error {
	if !target.Valid() {
		return quota.ErrBadStatus
	}
	if err := u.repo.SetStatus(ctx, cotaID, target); err != nil {
		return err
	}
	log.Warn().
		Str("event", "staff_override").
		Str("cota_id", cotaID).
		Str("actor", actor).
		Str("status", string(target)).
		Msg("quota status overridden by staff")
	return nil
}

func (u *Usecase) Get(ctx context.Context, cotaID string) (*QuotaDTO, error) {
	q, err := u.repo.GetByCotaID(ctx, cotaID)
	if err != nil {
		return nil, quota.ErrNotFound
	}
	return toDTO(q), nil
}

func applyUpdate(q *quota.Quota, in UpdateInput) {
	q.CreditAmount = in.CreditAmount
	q.EntryAmount = in.EntryAmount
	q.OutstandingBalance = in.OutstandingBalance
	q.InstallmentCount = in.InstallmentCount
	q.InstallmentValue = in.InstallmentValue
	applyDerived(q)
}

func toDTO(q *quota.Quota) *QuotaDTO {
	return &QuotaDTO{
		CotaID:             q.CotaID,
		SellerID:           q.SellerID,
		CreditAmount:       q.CreditAmount,
		EntryAmount:        q.EntryAmount,
		EntryPercentage:    q.EntryPercentage,
		OutstandingBalance: q.OutstandingBalance,
		InstallmentCount:   q.InstallmentCount,
		InstallmentValue:   q.InstallmentValue,
		MonthlyRate:        q.MonthlyRate,
		Status:             string(q.Status),
		CreatedAt:          q.CreatedAt,
	}
}
