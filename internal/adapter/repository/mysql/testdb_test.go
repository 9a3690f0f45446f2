package mysql

import (
	"testing"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// SQLite-friendly schemas for tests only (no MySQL enums).

type cotaSQLite struct {
	ID                 uint64         `gorm:"primaryKey;column:id"`
	CotaID             string         `gorm:"size:32;column:cota_id"`
	SellerID           string         `gorm:"size:32;column:seller_id"`
	CreditAmount       float64        `gorm:"column:credit_amount"`
	EntryAmount        float64        `gorm:"column:entry_amount"`
	EntryPercentage    float64        `gorm:"column:entry_percentage"`
	OutstandingBalance float64        `gorm:"column:outstanding_balance"`
	InstallmentCount   int            `gorm:"column:n_installments"`
	InstallmentValue   float64        `gorm:"column:installment_value"`
	MonthlyRate        *float64       `gorm:"column:monthly_rate"`
	Status             string         `gorm:"type:text;column:status"`
	StatusUpdatedAt    time.Time      `gorm:"column:status_updated_at"`
	CreatedAt          time.Time      `gorm:"column:created_at"`
	UpdatedAt          time.Time      `gorm:"column:updated_at"`
	DeletedAt          gorm.DeletedAt `gorm:"column:deleted_at"`
}

func (cotaSQLite) TableName() string { return "cotas" }

type proposalSQLite struct {
	ID              uint64         `gorm:"primaryKey;column:id"`
	ProposalID      string         `gorm:"size:32;column:proposal_id"`
	CotaID          string         `gorm:"size:32;column:cota_id"`
	BuyerPFID       string         `gorm:"size:32;column:buyer_pf_id"`
	BuyerType       string         `gorm:"type:text;column:buyer_type"`
	BuyerEntityID   *string        `gorm:"column:buyer_entity_id"`
	GroupID         *string        `gorm:"column:group_id"`
	Status          string         `gorm:"type:text;column:status"`
	RejectionReason *string        `gorm:"column:rejection_reason"`
	TransferFee     *float64       `gorm:"column:transfer_fee"`
	StatusUpdatedAt time.Time      `gorm:"column:status_updated_at"`
	CreatedAt       time.Time      `gorm:"column:created_at"`
	UpdatedAt       time.Time      `gorm:"column:updated_at"`
	DeletedAt       gorm.DeletedAt `gorm:"column:deleted_at"`
}

func (proposalSQLite) TableName() string { return "proposals" }

type historySQLite struct {
	ID         uint64    `gorm:"primaryKey;column:id"`
	ProposalID uint64    `gorm:"column:proposal_id"`
	OldStatus  *string   `gorm:"column:old_status"`
	NewStatus  string    `gorm:"column:new_status"`
	ChangedBy  string    `gorm:"size:32;column:changed_by"`
	Notes      string    `gorm:"column:notes"`
	CreatedAt  time.Time `gorm:"column:created_at"`
}

func (historySQLite) TableName() string { return "proposal_history" }

// openTestDB creates an in-memory sqlite DB and migrates the sqlite-safe
// schema, not the domain models.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&cotaSQLite{}, &proposalSQLite{}, &historySQLite{}); err != nil {
		t.Fatalf("auto-migrate: %v", err)
	}
	return db
}
