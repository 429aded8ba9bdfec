package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	"repairhub/internal/adapter/http/handlers/mocks"
	"repairhub/internal/domain/entities"
	"repairhub/internal/usecase"

	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func sampleRequest(state entities.RequestState) entities.ServiceRequest {
	now := time.Now().UTC()
	return entities.ServiceRequest{
		ID:         "sr-1",
		CustomerID: testCustomer.ID,
		Item:       entities.Item{Name: "Laptop", Issue: "no power"},
		State:      state,
		Version:    1,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

func TestServiceRequestHandler_Create(t *testing.T) {
	t.Run("anonymous caller", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		h := NewServiceRequestHandler(mocks.NewMockILifecycleUseCase(ctrl))

		r := newTestRouter(entities.Actor{})
		r.POST("/v1/service-requests", h.Create)

		w := doJSON(r, http.MethodPost, "/v1/service-requests", `{"item":{"name":"Laptop"}}`)
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("invalid payload", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		h := NewServiceRequestHandler(mocks.NewMockILifecycleUseCase(ctrl))

		r := newTestRouter(testCustomer)
		r.POST("/v1/service-requests", h.Create)

		w := doJSON(r, http.MethodPost, "/v1/service-requests", `{"item":{}}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		if code := decodeCode(t, w); code != "INVALID_PAYLOAD" {
			t.Fatalf("expected INVALID_PAYLOAD, got %s", code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockILifecycleUseCase(ctrl)
		h := NewServiceRequestHandler(uc)

		r := newTestRouter(testCustomer)
		r.POST("/v1/service-requests", h.Create)

		uc.EXPECT().
			CreateRequest(gomock.Any(), testCustomer, usecase.CreateRequestInput{
				Item:       entities.Item{Name: "Laptop", Issue: "no power"},
				CouponCode: "WELCOME",
			}).
			Return(sampleRequest(entities.StatePending), nil)

		w := doJSON(r, http.MethodPost, "/v1/service-requests", `{"item":{"name":"Laptop","issue":"no power"},"coupon_code":"WELCOME"}`)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}

		var body struct {
			ID                string   `json:"id"`
			State             string   `json:"state"`
			AllowedOperations []string `json:"allowed_operations"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid body: %v", err)
		}
		if body.ID != "sr-1" || body.State != "PENDING" {
			t.Fatalf("unexpected body: %+v", body)
		}
		if len(body.AllowedOperations) != 1 || body.AllowedOperations[0] != string(entities.OpProvideEstimate) {
			t.Fatalf("expected only provide estimate to be allowed, got %v", body.AllowedOperations)
		}
	})

	t.Run("forbidden for technicians", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockILifecycleUseCase(ctrl)
		h := NewServiceRequestHandler(uc)

		r := newTestRouter(testTechnician)
		r.POST("/v1/service-requests", h.Create)

		uc.EXPECT().CreateRequest(gomock.Any(), testTechnician, gomock.Any()).Return(entities.ServiceRequest{}, usecase.ErrCustomerOnly)

		w := doJSON(r, http.MethodPost, "/v1/service-requests", `{"item":{"name":"Laptop"}}`)
		if w.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", w.Code)
		}
	})
}

func TestServiceRequestHandler_GetListDelete(t *testing.T) {
	t.Run("get not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockILifecycleUseCase(ctrl)
		h := NewServiceRequestHandler(uc)

		r := newTestRouter(testCustomer)
		r.GET("/v1/service-requests/:id", h.Get)

		uc.EXPECT().GetByID(gomock.Any(), testCustomer, "missing").Return(entities.ServiceRequest{}, usecase.ErrServiceRequestNotFound)

		w := doJSON(r, http.MethodGet, "/v1/service-requests/missing", "")
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
		if code := decodeCode(t, w); code != "SERVICE_REQUEST_NOT_FOUND" {
			t.Fatalf("expected SERVICE_REQUEST_NOT_FOUND, got %s", code)
		}
	})

	t.Run("list", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockILifecycleUseCase(ctrl)
		h := NewServiceRequestHandler(uc)

		r := newTestRouter(testCustomer)
		r.GET("/v1/service-requests", h.List)

		uc.EXPECT().ListByCustomer(gomock.Any(), testCustomer).
			Return([]entities.ServiceRequest{sampleRequest(entities.StatePending), sampleRequest(entities.StateRejected)}, nil)

		w := doJSON(r, http.MethodGet, "/v1/service-requests", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body []map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid body: %v", err)
		}
		if len(body) != 2 {
			t.Fatalf("expected 2 requests, got %d", len(body))
		}
	})

	t.Run("delete", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockILifecycleUseCase(ctrl)
		h := NewServiceRequestHandler(uc)

		r := newTestRouter(testCustomer)
		r.DELETE("/v1/service-requests/:id", h.Delete)

		uc.EXPECT().DeleteRequest(gomock.Any(), testCustomer, "sr-1").Return(nil)

		w := doJSON(r, http.MethodDelete, "/v1/service-requests/sr-1", "")
		if w.Code != http.StatusNoContent {
			t.Fatalf("expected 204, got %d", w.Code)
		}
	})

	t.Run("update item not editable", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockILifecycleUseCase(ctrl)
		h := NewServiceRequestHandler(uc)

		r := newTestRouter(testCustomer)
		r.PUT("/v1/service-requests/:id/item", h.UpdateItem)

		uc.EXPECT().UpdateItem(gomock.Any(), testCustomer, "sr-1", entities.Item{Name: "Phone"}).
			Return(entities.ServiceRequest{}, fmt.Errorf("%w", entities.ErrRequestNotEditable))

		w := doJSON(r, http.MethodPut, "/v1/service-requests/sr-1/item", `{"name":"Phone"}`)
		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})
}

func TestServiceRequestHandler_ProvideEstimate(t *testing.T) {
	t.Run("invalid completion date", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		h := NewServiceRequestHandler(mocks.NewMockILifecycleUseCase(ctrl))

		r := newTestRouter(testTechnician)
		r.POST("/v1/service-requests/:id/estimate", h.ProvideEstimate)

		w := doJSON(r, http.MethodPost, "/v1/service-requests/sr-1/estimate", `{"cost":"100","completion_date":"tomorrow"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockILifecycleUseCase(ctrl)
		h := NewServiceRequestHandler(uc)

		r := newTestRouter(testTechnician)
		r.POST("/v1/service-requests/:id/estimate", h.ProvideEstimate)

		estimated := sampleRequest(entities.StateEstimated)
		estimated.TechnicianID = testTechnician.ID

		uc.EXPECT().ProvideEstimate(gomock.Any(), testTechnician, "sr-1", gomock.Any()).
			DoAndReturn(func(_ context.Context, _ entities.Actor, _ string, in usecase.EstimateInput) (entities.ServiceRequest, error) {
				if !in.Cost.Equal(decimal.RequireFromString("149.90")) {
					t.Fatalf("unexpected cost %s", in.Cost)
				}
				if in.CompletionDate.Format(time.DateOnly) != "2030-01-15" {
					t.Fatalf("unexpected completion date %s", in.CompletionDate)
				}
				return estimated, nil
			})

		w := doJSON(r, http.MethodPost, "/v1/service-requests/sr-1/estimate", `{"cost":149.90,"completion_date":"2030-01-15","notes":"battery"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
	})
}

func TestServiceRequestHandler_Transitions(t *testing.T) {
	type route struct {
		name   string
		path   string
		actor  entities.Actor
		expect func(uc *mocks.MockILifecycleUseCase) *gomock.Call
	}
	routes := []route{
		{"accept", "accept", testCustomer, func(uc *mocks.MockILifecycleUseCase) *gomock.Call {
			return uc.EXPECT().AcceptEstimate(gomock.Any(), testCustomer, "sr-1")
		}},
		{"reject", "reject", testCustomer, func(uc *mocks.MockILifecycleUseCase) *gomock.Call {
			return uc.EXPECT().RejectEstimate(gomock.Any(), testCustomer, "sr-1")
		}},
		{"start", "start", testTechnician, func(uc *mocks.MockILifecycleUseCase) *gomock.Call {
			return uc.EXPECT().StartService(gomock.Any(), testTechnician, "sr-1")
		}},
		{"complete", "complete", testTechnician, func(uc *mocks.MockILifecycleUseCase) *gomock.Call {
			return uc.EXPECT().CompleteService(gomock.Any(), testTechnician, "sr-1")
		}},
	}

	outcomes := []struct {
		name   string
		err    error
		status int
	}{
		{"ok", nil, http.StatusOK},
		{"illegal", fmt.Errorf("%w: wrong state", entities.ErrIllegalTransition), http.StatusConflict},
		{"insufficient funds", fmt.Errorf("%w", entities.ErrInsufficientFunds), http.StatusUnprocessableEntity},
		{"conflict", fmt.Errorf("%w", entities.ErrConflict), http.StatusConflict},
		{"wallet missing", usecase.ErrTechnicianWalletNotFound, http.StatusNotFound},
	}

	for _, rt := range routes {
		for _, out := range outcomes {
			t.Run(rt.name+"/"+out.name, func(t *testing.T) {
				ctrl := gomock.NewController(t)
				uc := mocks.NewMockILifecycleUseCase(ctrl)
				h := NewServiceRequestHandler(uc)

				r := newTestRouter(rt.actor)
				r.POST("/v1/service-requests/:id/accept", h.AcceptEstimate)
				r.POST("/v1/service-requests/:id/reject", h.RejectEstimate)
				r.POST("/v1/service-requests/:id/start", h.StartService)
				r.POST("/v1/service-requests/:id/complete", h.CompleteService)

				ret := entities.ServiceRequest{}
				if out.err == nil {
					ret = sampleRequest(entities.StateAccepted)
				}
				rt.expect(uc).Return(ret, out.err)

				w := doJSON(r, http.MethodPost, "/v1/service-requests/sr-1/"+rt.path, "")
				if w.Code != out.status {
					t.Fatalf("expected %d, got %d", out.status, w.Code)
				}
			})
		}
	}
}

func TestServiceRequestHandler_CreateReport(t *testing.T) {
	t.Run("missing completion time", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		h := NewServiceRequestHandler(mocks.NewMockILifecycleUseCase(ctrl))

		r := newTestRouter(testTechnician)
		r.POST("/v1/service-requests/:id/report", h.CreateReport)

		w := doJSON(r, http.MethodPost, "/v1/service-requests/sr-1/report", `{"repair_details":"d","repair_summary":"s"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockILifecycleUseCase(ctrl)
		h := NewServiceRequestHandler(uc)

		r := newTestRouter(testTechnician)
		r.POST("/v1/service-requests/:id/report", h.CreateReport)

		completedAt := time.Date(2030, 1, 15, 10, 30, 0, 0, time.UTC)
		uc.EXPECT().CreateReport(gomock.Any(), testTechnician, "sr-1", usecase.ReportInput{
			RepairDetails:      "replaced battery",
			RepairSummary:      "fixed",
			CompletionDateTime: completedAt,
		}).Return(sampleRequest(entities.StateCompleted), nil)

		w := doJSON(r, http.MethodPost, "/v1/service-requests/sr-1/report",
			`{"repair_details":"replaced battery","repair_summary":"fixed","completion_date_time":"2030-01-15T10:30:00Z"}`)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
	})
}
