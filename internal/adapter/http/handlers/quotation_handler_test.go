package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"hrx_backoffice/internal/adapter/http/handlers/mocks"
	"hrx_backoffice/internal/domain/entities"
	"hrx_backoffice/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestQuotationHandler_RequestQuotation(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuotationUseCase(ctrl)
		h := NewQuotationHandler(uc)

		r := gin.New()
		r.POST("/v1/projects/:id/quotations", h.RequestQuotation)

		req := httptest.NewRequest(http.MethodPost, "/v1/projects/prj-1/quotations", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuotationUseCase(ctrl)
		h := NewQuotationHandler(uc)

		r := gin.New()
		r.POST("/v1/projects/:id/quotations", h.RequestQuotation)

		uc.EXPECT().RequestQuotation(gomock.Any(), "prj-1", "sup-1", []string{"eq-1", "eq-2"}).
			Return(entities.Quotation{ID: "q-1", ProjectID: "prj-1", SupplierID: "sup-1", EquipmentItemIDs: []string{"eq-1", "eq-2"}, Status: entities.QuotationStatusPending}, nil)

		body := `{"supplier_id":"sup-1","equipment_item_ids":["eq-1","eq-2"]}`
		req := httptest.NewRequest(http.MethodPost, "/v1/projects/prj-1/quotations", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}

		var resp map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if resp["status"] != string(entities.QuotationStatusPending) {
			t.Fatalf("expected pending status, got %v", resp["status"])
		}
	})

	t.Run("equipment line not in project", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuotationUseCase(ctrl)
		h := NewQuotationHandler(uc)

		r := gin.New()
		r.POST("/v1/projects/:id/quotations", h.RequestQuotation)

		uc.EXPECT().RequestQuotation(gomock.Any(), "prj-1", "sup-1", []string{"eq-ghost"}).
			Return(entities.Quotation{}, usecase.ErrEquipmentItemNotFound)

		body := `{"supplier_id":"sup-1","equipment_item_ids":["eq-ghost"]}`
		req := httptest.NewRequest(http.MethodPost, "/v1/projects/prj-1/quotations", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
		var he struct {
			Code string `json:"code"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &he); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if he.Code != "EQUIPMENT_ITEM_NOT_FOUND" {
			t.Fatalf("expected EQUIPMENT_ITEM_NOT_FOUND, got %q", he.Code)
		}
	})
}

func TestQuotationHandler_SubmitQuotation(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing unit price", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuotationUseCase(ctrl)
		h := NewQuotationHandler(uc)

		r := gin.New()
		r.PATCH("/v1/quotations/:id/submit", h.SubmitQuotation)

		req := httptest.NewRequest(http.MethodPatch, "/v1/quotations/q-1/submit", bytes.NewBufferString(`{"delivery_fee":30}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("already submitted", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuotationUseCase(ctrl)
		h := NewQuotationHandler(uc)

		r := gin.New()
		r.PATCH("/v1/quotations/:id/submit", h.SubmitQuotation)

		uc.EXPECT().SubmitQuotation(gomock.Any(), "q-1", gomock.Any()).
			Return(entities.Quotation{}, usecase.ErrQuotationNotPending)

		req := httptest.NewRequest(http.MethodPatch, "/v1/quotations/q-1/submit", bytes.NewBufferString(`{"unit_price":99.90}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("converts prices to cents", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuotationUseCase(ctrl)
		h := NewQuotationHandler(uc)

		r := gin.New()
		r.PATCH("/v1/quotations/:id/submit", h.SubmitQuotation)

		uc.EXPECT().SubmitQuotation(gomock.Any(), "q-1", gomock.Any()).DoAndReturn(
			func(_ any, _ string, prices entities.Quotation) (entities.Quotation, error) {
				if prices.UnitPriceCents == nil || *prices.UnitPriceCents != 9990 {
					t.Fatalf("expected unit price 9990 cents, got %v", prices.UnitPriceCents)
				}
				if prices.DeliveryFeeCents == nil || *prices.DeliveryFeeCents != 3000 {
					t.Fatalf("expected delivery fee 3000 cents, got %v", prices.DeliveryFeeCents)
				}
				return entities.Quotation{ID: "q-1", Status: entities.QuotationStatusSubmitted, UnitPriceCents: prices.UnitPriceCents}, nil
			})

		body := `{"unit_price":99.90,"delivery_fee":30}`
		req := httptest.NewRequest(http.MethodPatch, "/v1/quotations/q-1/submit", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestQuotationHandler_AcceptQuotation(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not submitted", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuotationUseCase(ctrl)
		h := NewQuotationHandler(uc)

		r := gin.New()
		r.PATCH("/v1/quotations/:id/accept", h.AcceptQuotation)

		uc.EXPECT().AcceptQuotation(gomock.Any(), "q-1").Return(entities.Aggregates{}, usecase.ErrQuotationNotSubmitted)

		req := httptest.NewRequest(http.MethodPatch, "/v1/quotations/q-1/accept", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("equipment already quoted", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuotationUseCase(ctrl)
		h := NewQuotationHandler(uc)

		r := gin.New()
		r.PATCH("/v1/quotations/:id/accept", h.AcceptQuotation)

		uc.EXPECT().AcceptQuotation(gomock.Any(), "q-1").Return(entities.Aggregates{}, usecase.ErrEquipmentAlreadyQuoted)

		req := httptest.NewRequest(http.MethodPatch, "/v1/quotations/q-1/accept", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("success returns quotation and refreshed aggregates", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuotationUseCase(ctrl)
		h := NewQuotationHandler(uc)

		r := gin.New()
		r.PATCH("/v1/quotations/:id/accept", h.AcceptQuotation)

		agg := entities.Aggregates{TotalEquipmentCostCents: 300000, TotalCostCents: 300000, TotalProfitCents: 105000, TotalClientPriceCents: 405000, MarginBps: 3500}
		uc.EXPECT().AcceptQuotation(gomock.Any(), "q-1").Return(agg, nil)
		uc.EXPECT().GetQuotation(gomock.Any(), "q-1").Return(entities.Quotation{ID: "q-1", Status: entities.QuotationStatusAccepted}, nil)

		req := httptest.NewRequest(http.MethodPatch, "/v1/quotations/q-1/accept", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}

		var resp map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		quotation, ok := resp["quotation"].(map[string]any)
		if !ok || quotation["status"] != string(entities.QuotationStatusAccepted) {
			t.Fatalf("unexpected quotation in response: %v", resp["quotation"])
		}
		aggregates, ok := resp["aggregates"].(map[string]any)
		if !ok || aggregates["total_client_price"] != 4050.0 {
			t.Fatalf("unexpected aggregates in response: %v", resp["aggregates"])
		}
	})
}

func TestQuotationHandler_RejectQuotation(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIQuotationUseCase(ctrl)
	h := NewQuotationHandler(uc)

	r := gin.New()
	r.PATCH("/v1/quotations/:id/reject", h.RejectQuotation)

	uc.EXPECT().RejectQuotation(gomock.Any(), "q-1").
		Return(entities.Quotation{ID: "q-1", Status: entities.QuotationStatusRejected}, nil)

	req := httptest.NewRequest(http.MethodPatch, "/v1/quotations/q-1/reject", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}

func TestQuotationHandler_ListByProject(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIQuotationUseCase(ctrl)
	h := NewQuotationHandler(uc)

	r := gin.New()
	r.GET("/v1/projects/:id/quotations", h.ListByProject)

	uc.EXPECT().ListByProject(gomock.Any(), "prj-1").Return([]entities.Quotation{
		{ID: "q-1", ProjectID: "prj-1", Status: entities.QuotationStatusSubmitted},
		{ID: "q-2", ProjectID: "prj-1", Status: entities.QuotationStatusPending},
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/projects/prj-1/quotations", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var resp []map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if len(resp) != 2 {
		t.Fatalf("expected 2 quotations, got %d", len(resp))
	}
}
