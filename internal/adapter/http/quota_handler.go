package http

import (
	"net/http"

	quotaDomain "cotamarket/internal/domain/quota"
	"cotamarket/internal/usecase/quota"

	"github.com/labstack/echo/v4"
)

type QuotaHandler struct{ uc *quota.Usecase }

func NewQuotaHandler(uc *quota.Usecase) *QuotaHandler { return &QuotaHandler{uc: uc} }

type publishQuotaReq struct {
	CreditAmount       float64 `json:"credit_amount"       validate:"required,gt=0,dec2"`
	EntryAmount        float64 `json:"entry_amount"        validate:"gte=0,dec2"`
	OutstandingBalance float64 `json:"outstanding_balance" validate:"gte=0,dec2"`
	InstallmentCount   int     `json:"n_installments"      validate:"required,gt=0"`
	InstallmentValue   float64 `json:"installment_value"   validate:"gte=0,dec2"`
}

func (h *QuotaHandler) Publish(c echo.Context) error {
	var req publishQuotaReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: "validation failed", Details: ToFieldErrors(err)})
	}

	dto, err := h.uc.Publish(c.Request().Context(), quota.PublishInput{
		SellerID:           actorID(c),
		CreditAmount:       req.CreditAmount,
		EntryAmount:        req.EntryAmount,
		OutstandingBalance: req.OutstandingBalance,
		InstallmentCount:   req.InstallmentCount,
		InstallmentValue:   req.InstallmentValue,
	})
	if err != nil {
		return httpError(c, err)
	}
	return c.JSON(http.StatusCreated, dto)
}

func (h *QuotaHandler) Update(c echo.Context) error {
	var req publishQuotaReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: "validation failed", Details: ToFieldErrors(err)})
	}

	dto, err := h.uc.Update(c.Request().Context(), quota.UpdateInput{
		CotaID:             c.Param("cota_id"),
		SellerID:           actorID(c),
		CreditAmount:       req.CreditAmount,
		EntryAmount:        req.EntryAmount,
		OutstandingBalance: req.OutstandingBalance,
		InstallmentCount:   req.InstallmentCount,
		InstallmentValue:   req.InstallmentValue,
	})
	if err != nil {
		return httpError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

type overrideStatusReq struct {
	Status string `json:"status" validate:"required,oneof=available reserved sold removed"`
}

// OverrideStatus is the staff escape hatch: it sets the quota status directly,
// bypassing the proposal lifecycle.
func (h *QuotaHandler) OverrideStatus(c echo.Context) error {
	var req overrideStatusReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: "validation failed", Details: ToFieldErrors(err)})
	}

	if err := h.uc.OverrideStatus(c.Request().Context(), c.Param("cota_id"), quotaDomain.Status(req.Status), actorID(c)); err != nil {
		return httpError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *QuotaHandler) Get(c echo.Context) error {
	dto, err := h.uc.Get(c.Request().Context(), c.Param("cota_id"))
	if err != nil {
		return httpError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}
