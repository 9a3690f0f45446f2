package proposal

import "time"

type SubmitInput struct {
	BuyerPFID     string   `json:"buyer_pf_id"`
	BuyerType     string   `json:"buyer_type"` // PF | PJ
	BuyerEntityID string   `json:"buyer_entity_id,omitempty"`
	CotaIDs       []string `json:"cota_ids"`
}

type TransitionInput struct {
	ProposalID      string   `json:"-"`
	Status          string   `json:"status"`
	Actor           string   `json:"-"`
	Notes           string   `json:"notes,omitempty"`
	RejectionReason string   `json:"rejection_reason,omitempty"`
	TransferFee     *float64 `json:"transfer_fee,omitempty"` // staff-entered, never computed
}

type ProposalDTO struct {
	ProposalID      string    `json:"proposal_id"`
	CotaID          string    `json:"cota_id"`
	BuyerPFID       string    `json:"buyer_pf_id"`
	BuyerType       string    `json:"buyer_type"`
	BuyerEntityID   *string   `json:"buyer_entity_id,omitempty"`
	GroupID         *string   `json:"group_id,omitempty"`
	Status          string    `json:"status"`
	RejectionReason *string   `json:"rejection_reason,omitempty"`
	TransferFee     *float64  `json:"transfer_fee,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
}

type HistoryDTO struct {
	OldStatus *string   `json:"old_status"`
	NewStatus string    `json:"new_status"`
	ChangedBy string    `json:"changed_by"`
	Notes     string    `json:"notes"`
	CreatedAt time.Time `json:"created_at"`
}
