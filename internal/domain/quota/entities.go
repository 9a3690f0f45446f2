package quota

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

type Status string

const (
	StatusAvailable Status = "available"
	StatusReserved  Status = "reserved"
	StatusSold      Status = "sold"
	StatusRemoved   Status = "removed"
)

// Valid reports whether s is one of the closed set of quota statuses.
func (s Status) Valid() bool {
	switch s {
	case StatusAvailable, StatusReserved, StatusSold, StatusRemoved:
		return true
	}
	return false
}

var (
	ErrNotFound    = errors.New("quota not found")
	ErrNotOwner    = errors.New("quota does not belong to this seller")
	ErrNotEditable = errors.New("quota is no longer editable by the seller")
	ErrBadStatus   = errors.New("unknown quota status")
)

// Quota is a contracted, not-yet-paid-off consortium position listed for sale.
// Column names match the legacy schema and must not change.
type Quota struct {
	ID                 uint64         `gorm:"primaryKey;column:id" json:"-"`
	CotaID             string         `gorm:"column:cota_id;size:32;uniqueIndex:ux_cotas_cota_id_active" json:"cota_id"`
	SellerID           string         `gorm:"column:seller_id;size:32;index:idx_cotas_seller" json:"seller_id"`
	CreditAmount       float64        `gorm:"column:credit_amount;type:decimal(18,2)" json:"credit_amount"`
	EntryAmount        float64        `gorm:"column:entry_amount;type:decimal(18,2)" json:"entry_amount"`
	EntryPercentage    float64        `gorm:"column:entry_percentage;type:decimal(8,4)" json:"entry_percentage"`
	OutstandingBalance float64        `gorm:"column:outstanding_balance;type:decimal(18,2)" json:"outstanding_balance"`
	InstallmentCount   int            `gorm:"column:n_installments" json:"n_installments"`
	InstallmentValue   float64        `gorm:"column:installment_value;type:decimal(18,2)" json:"installment_value"`
	MonthlyRate        *float64       `gorm:"column:monthly_rate;type:decimal(8,4)" json:"monthly_rate"`
	Status             Status         `gorm:"column:status;type:enum('available','reserved','sold','removed');default:'available'" json:"status"`
	StatusUpdatedAt    time.Time      `gorm:"column:status_updated_at;autoCreateTime" json:"status_updated_at"`
	CreatedAt          time.Time      `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt          time.Time      `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
	DeletedAt          gorm.DeletedAt `gorm:"column:deleted_at;index" json:"-"`
}

func (Quota) TableName() string { return "cotas" }
