package http

import (
	"net/http"

	"cotamarket/internal/usecase/proposal"

	"github.com/labstack/echo/v4"
)

type ProposalHandler struct{ uc *proposal.Usecase }

func NewProposalHandler(uc *proposal.Usecase) *ProposalHandler { return &ProposalHandler{uc: uc} }

type submitProposalReq struct {
	BuyerType     string   `json:"buyer_type"      validate:"required,oneof=PF PJ"`
	BuyerEntityID string   `json:"buyer_entity_id" validate:"omitempty,hex32"`
	CotaIDs       []string `json:"cota_ids"        validate:"required,min=1,dive,hex32"`
}

// Submit creates the buyer's proposals; more than one cota makes a
// composition sharing a group id.
func (h *ProposalHandler) Submit(c echo.Context) error {
	var req submitProposalReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: "validation failed", Details: ToFieldErrors(err)})
	}

	dtos, err := h.uc.Submit(c.Request().Context(), proposal.SubmitInput{
		BuyerPFID:     actorID(c),
		BuyerType:     req.BuyerType,
		BuyerEntityID: req.BuyerEntityID,
		CotaIDs:       req.CotaIDs,
	})
	if err != nil {
		return httpError(c, err)
	}
	return c.JSON(http.StatusCreated, dtos)
}

type transitionReq struct {
	Status          string   `json:"status"           validate:"required,oneof=pre_approved approved transfer_started completed rejected"`
	Notes           string   `json:"notes"            validate:"omitempty,max=2000"`
	RejectionReason string   `json:"rejection_reason" validate:"omitempty,max=2000"`
	TransferFee     *float64 `json:"transfer_fee"     validate:"omitempty,gt=0,dec2"`
}

// Transition is the staff review action moving a proposal one step.
func (h *ProposalHandler) Transition(c echo.Context) error {
	var req transitionReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: "validation failed", Details: ToFieldErrors(err)})
	}

	dto, err := h.uc.Transition(c.Request().Context(), proposal.TransitionInput{
		ProposalID:      c.Param("proposal_id"),
		Status:          req.Status,
		Actor:           actorID(c),
		Notes:           req.Notes,
		RejectionReason: req.RejectionReason,
		TransferFee:     req.TransferFee,
	})
	if err != nil {
		return httpError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *ProposalHandler) Get(c echo.Context) error {
	dto, history, err := h.uc.Get(c.Request().Context(), c.Param("proposal_id"))
	if err != nil {
		return httpError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{
		"proposal": dto,
		"history":  history,
	})
}

func (h *ProposalHandler) GetGroup(c echo.Context) error {
	dto, err := h.uc.GetGroup(c.Request().Context(), c.Param("group_id"))
	if err != nil {
		return httpError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}
