package http

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	stdhttp "net/http"
	"net/http/httptest"
	"strings"
	"testing"

	domainProposal "cotamarket/internal/domain/proposal"
	domainQuota "cotamarket/internal/domain/quota"
	"cotamarket/internal/domain/uow"
	"cotamarket/internal/testutil/proposalmock"
	"cotamarket/internal/testutil/quotamock"
	"cotamarket/internal/testutil/uowmock"
	ucProposal "cotamarket/internal/usecase/proposal"

	"github.com/labstack/echo/v4"
)

func newEchoWithValidator() *echo.Echo {
	e := echo.New()
	e.Validator = NewValidator()
	return e
}

func mustJSON(v any) io.Reader {
	b, _ := json.Marshal(v)
	return bytes.NewReader(b)
}

const (
	testStaff = "eeeeeeeeeeeeeeeeeeeeeeeeeeeeeeee"
	testBuyer = "bbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbb"
)

func newProposalHandler(proposals *proposalmock.Repo, quotas *quotamock.Repo, history *proposalmock.HistoryRepo) *ProposalHandler {
	tx := uowmock.Passthrough(uow.Repos{Quotas: quotas, Proposals: proposals, History: history})
	return NewProposalHandler(ucProposal.NewUsecase(proposals, history, tx))
}

func TestTransition_Success(t *testing.T) {
	e := newEchoWithValidator()

	proposals := &proposalmock.Repo{
		GetByProposalIDForUpdateFn: func(ctx context.Context, id string) (*domainProposal.Proposal, error) {
			return &domainProposal.Proposal{
				ID: 1, ProposalID: id,
				CotaID:    strings.Repeat("c", 32),
				BuyerPFID: testBuyer,
				Status:    domainProposal.StatusUnderReview,
			}, nil
		},
	}
	h := newProposalHandler(proposals, &quotamock.Repo{}, &proposalmock.HistoryRepo{})

	req := httptest.NewRequest(stdhttp.MethodPost, "/proposals/x/transition",
		mustJSON(map[string]any{"status": "pre_approved"}))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	req.Header.Set("X-Actor-Id", testStaff)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("proposal_id")
	c.SetParamValues(strings.Repeat("p", 32))

	if err := h.Transition(c); err != nil {
		t.Fatalf("Transition: %v", err)
	}
	if rec.Code != stdhttp.StatusOK {
		t.Fatalf("status = %d, want 200, body=%s", rec.Code, rec.Body.String())
	}

	var dto ucProposal.ProposalDTO
	if err := json.Unmarshal(rec.Body.Bytes(), &dto); err != nil {
		t.Fatalf("bad json: %v", err)
	}
	if dto.Status != string(domainProposal.StatusPreApproved) {
		t.Fatalf("dto.Status = %s", dto.Status)
	}
}

func TestTransition_MissingReasonMapsTo422(t *testing.T) {
	e := newEchoWithValidator()

	proposals := &proposalmock.Repo{
		GetByProposalIDForUpdateFn: func(ctx context.Context, id string) (*domainProposal.Proposal, error) {
			return &domainProposal.Proposal{ID: 1, ProposalID: id, CotaID: strings.Repeat("c", 32), Status: domainProposal.StatusUnderReview}, nil
		},
	}
	h := newProposalHandler(proposals, &quotamock.Repo{}, &proposalmock.HistoryRepo{})

	req := httptest.NewRequest(stdhttp.MethodPost, "/proposals/x/transition",
		mustJSON(map[string]any{"status": "rejected"}))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	req.Header.Set("X-Actor-Id", testStaff)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("proposal_id")
	c.SetParamValues(strings.Repeat("p", 32))

	if err := h.Transition(c); err != nil {
		t.Fatalf("Transition: %v", err)
	}
	if rec.Code != stdhttp.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want 422", rec.Code)
	}
}

func TestTransition_ReservationConflictMapsTo409(t *testing.T) {
	e := newEchoWithValidator()

	proposals := &proposalmock.Repo{
		GetByProposalIDForUpdateFn: func(ctx context.Context, id string) (*domainProposal.Proposal, error) {
			return &domainProposal.Proposal{ID: 1, ProposalID: id, CotaID: strings.Repeat("c", 32), Status: domainProposal.StatusPreApproved}, nil
		},
	}
	quotas := &quotamock.Repo{
		ReserveIfAvailableFn: func(ctx context.Context, cotaID string) (int64, error) {
			return 0, nil // another proposal already holds the reservation
		},
	}
	h := newProposalHandler(proposals, quotas, &proposalmock.HistoryRepo{})

	req := httptest.NewRequest(stdhttp.MethodPost, "/proposals/x/transition",
		mustJSON(map[string]any{"status": "approved"}))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	req.Header.Set("X-Actor-Id", testStaff)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("proposal_id")
	c.SetParamValues(strings.Repeat("p", 32))

	if err := h.Transition(c); err != nil {
		t.Fatalf("Transition: %v", err)
	}
	if rec.Code != stdhttp.StatusConflict {
		t.Fatalf("status = %d, want 409", rec.Code)
	}
}

func TestSubmit_ValidationRejectsBadCotaID(t *testing.T) {
	e := newEchoWithValidator()
	h := newProposalHandler(&proposalmock.Repo{}, &quotamock.Repo{}, &proposalmock.HistoryRepo{})

	req := httptest.NewRequest(stdhttp.MethodPost, "/proposals",
		mustJSON(map[string]any{"buyer_type": "PF", "cota_ids": []string{"not-hex"}}))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	req.Header.Set("X-Actor-Id", testBuyer)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.Submit(c); err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if rec.Code != stdhttp.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want 422", rec.Code)
	}

	var resp ErrorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("bad json: %v", err)
	}
	if len(resp.Details) == 0 {
		t.Fatal("expected field details")
	}
}

func TestSubmit_SelfPurchaseMapsTo422(t *testing.T) {
	e := newEchoWithValidator()

	quotas := &quotamock.Repo{
		GetByCotaIDForUpdateFn: func(ctx context.Context, cotaID string) (*domainQuota.Quota, error) {
			return &domainQuota.Quota{CotaID: cotaID, SellerID: testBuyer, Status: domainQuota.StatusAvailable}, nil
		},
	}
	h := newProposalHandler(&proposalmock.Repo{}, quotas, &proposalmock.HistoryRepo{})

	req := httptest.NewRequest(stdhttp.MethodPost, "/proposals",
		mustJSON(map[string]any{"buyer_type": "PF", "cota_ids": []string{strings.Repeat("c", 32)}}))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	req.Header.Set("X-Actor-Id", testBuyer)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.Submit(c); err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if rec.Code != stdhttp.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want 422", rec.Code)
	}
}
