package proposal

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

type Status string

const (
	StatusUnderReview     Status = "under_review"
	StatusPreApproved     Status = "pre_approved"
	StatusApproved        Status = "approved"
	StatusTransferStarted Status = "transfer_started"
	StatusCompleted       Status = "completed"
	StatusRejected        Status = "rejected"
)

type BuyerType string

const (
	BuyerPF BuyerType = "PF" // the buyer personally
	BuyerPJ BuyerType = "PJ" // a company the buyer controls
)

var (
	ErrNotFound               = errors.New("proposal not found")
	ErrIllegalTransition      = errors.New("requested status is not reachable from the current status")
	ErrMissingReason          = errors.New("rejection requires a reason")
	ErrConflictingReservation = errors.New("quota was reserved by another proposal")
	ErrQuotaUnavailable       = errors.New("quota is not available for proposals")
	ErrSelfPurchase           = errors.New("seller cannot propose on their own quota")
	ErrMissingEntityID        = errors.New("legal-entity buyer requires an entity id")
	ErrBadStatus              = errors.New("unknown proposal status")
)

type Proposal struct {
	ID              uint64         `gorm:"primaryKey;column:id" json:"-"`
	ProposalID      string         `gorm:"column:proposal_id;size:32;uniqueIndex:ux_proposals_proposal_id_active" json:"proposal_id"`
	CotaID          string         `gorm:"column:cota_id;size:32;not null;index:idx_proposals_cota" json:"cota_id"`
	BuyerPFID       string         `gorm:"column:buyer_pf_id;size:32;index:idx_proposals_buyer" json:"buyer_pf_id"`
	BuyerType       BuyerType      `gorm:"column:buyer_type;type:enum('PF','PJ');default:'PF'" json:"buyer_type"`
	BuyerEntityID   *string        `gorm:"column:buyer_entity_id;size:32" json:"buyer_entity_id,omitempty"`
	GroupID         *string        `gorm:"column:group_id;size:36;index:idx_proposals_group" json:"group_id,omitempty"`
	Status          Status         `gorm:"column:status;type:enum('under_review','pre_approved','approved','transfer_started','completed','rejected');default:'under_review'" json:"status"`
	RejectionReason *string        `gorm:"column:rejection_reason;type:text" json:"rejection_reason,omitempty"`
	TransferFee     *float64       `gorm:"column:transfer_fee;type:decimal(18,2)" json:"transfer_fee,omitempty"`
	StatusUpdatedAt time.Time      `gorm:"column:status_updated_at;autoCreateTime" json:"status_updated_at"`
	CreatedAt       time.Time      `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time      `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
	DeletedAt       gorm.DeletedAt `gorm:"column:deleted_at;index" json:"-"`
}

func (Proposal) TableName() string { return "proposals" }

// HistoryEntry is append-only: exactly one row per successful transition,
// including the creation entry (OldStatus nil). Rows are never edited.
type HistoryEntry struct {
	ID         uint64    `gorm:"primaryKey;column:id" json:"-"`
	ProposalID uint64    `gorm:"column:proposal_id;not null;index:idx_history_proposal" json:"-"`
	OldStatus  *Status   `gorm:"column:old_status;size:20" json:"old_status"`
	NewStatus  Status    `gorm:"column:new_status;size:20;not null" json:"new_status"`
	ChangedBy  string    `gorm:"column:changed_by;size:32;not null" json:"changed_by"`
	Notes      string    `gorm:"column:notes;type:text" json:"notes"`
	CreatedAt  time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (HistoryEntry) TableName() string { return "proposal_history" }
