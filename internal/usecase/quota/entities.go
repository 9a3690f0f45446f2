package quota

import "time"

type PublishInput struct {
	SellerID           string  `json:"seller_id"`
	CreditAmount       float64 `json:"credit_amount"`
	EntryAmount        float64 `json:"entry_amount"`
	OutstandingBalance float64 `json:"outstanding_balance"`
	InstallmentCount   int     `json:"n_installments"`
	InstallmentValue   float64 `json:"installment_value"`
}

type UpdateInput struct {
	CotaID             string  `json:"-"`
	SellerID           string  `json:"-"`
	CreditAmount       float64 `json:"credit_amount"`
	EntryAmount        float64 `json:"entry_amount"`
	OutstandingBalance float64 `json:"outstanding_balance"`
	InstallmentCount   int     `json:"n_installments"`
	InstallmentValue   float64 `json:"installment_value"`
}

type QuotaDTO struct {
	CotaID             string    `json:"cota_id"`
	SellerID           string    `json:"seller_id"`
	CreditAmount       float64   `json:"credit_amount"`
	EntryAmount        float64   `json:"entry_amount"`
	EntryPercentage    float64   `json:"entry_percentage"`
	OutstandingBalance float64   `json:"outstanding_balance"`
	InstallmentCount   int       `json:"n_installments"`
	InstallmentValue   float64   `json:"installment_value"`
	MonthlyRate        *float64  `json:"monthly_rate"`
	Status             string    `json:"status"`
	CreatedAt          time.Time `json:"created_at"`
}
