package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"truetickets/internal/adapter/http/handlers/mocks"
	"truetickets/internal/domain/entities"
	"truetickets/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestOperationsHandler_Clock(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing clocking_in", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOperationsUseCase(ctrl)
		h := NewOperationsHandler(uc)

		r := gin.New()
		r.POST("/clock", h.Clock)

		req := httptest.NewRequest(http.MethodPost, "/clock", bytes.NewBufferString(`{"user_name":"bob"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("state race", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOperationsUseCase(ctrl)
		h := NewOperationsHandler(uc)

		r := gin.New()
		r.POST("/clock", h.Clock)

		uc.EXPECT().ClockInOut(gomock.Any(), "bob", true).Return(entities.ClockState{}, usecase.ErrClockStateRace)

		req := httptest.NewRequest(http.MethodPost, "/clock", bytes.NewBufferString(`{"user_name":"bob","clocking_in":true}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("clock out with explicit false", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOperationsUseCase(ctrl)
		h := NewOperationsHandler(uc)

		r := gin.New()
		r.POST("/clock", h.Clock)

		uc.EXPECT().ClockInOut(gomock.Any(), "bob", false).Return(entities.ClockState{ClockedIn: false, LastUpdated: 1700000000}, nil)

		req := httptest.NewRequest(http.MethodPost, "/clock", bytes.NewBufferString(`{"user_name":"bob","clocking_in":false}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("bad json: %v", err)
		}
		if body["clocked_in"] != false || body["last_updated"].(float64) != 1700000000 {
			t.Fatalf("unexpected body: %v", body)
		}
	})
}

func TestOperationsHandler_ClockStatus(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing user_name", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOperationsUseCase(ctrl)
		h := NewOperationsHandler(uc)

		r := gin.New()
		r.GET("/clock-status", h.ClockStatus)

		req := httptest.NewRequest(http.MethodGet, "/clock-status", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOperationsUseCase(ctrl)
		h := NewOperationsHandler(uc)

		r := gin.New()
		r.GET("/clock-status", h.ClockStatus)

		uc.EXPECT().ClockStatus(gomock.Any(), "bob").Return(entities.ClockState{ClockedIn: true, LastUpdated: 1700000000}, nil)

		req := httptest.NewRequest(http.MethodGet, "/clock-status?user_name=bob", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestOperationsHandler_ClockLogs(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing range params", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOperationsUseCase(ctrl)
		h := NewOperationsHandler(uc)

		r := gin.New()
		r.GET("/clock-logs", h.GetClockLogs)

		req := httptest.NewRequest(http.MethodGet, "/clock-logs?start=100", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("inverted range", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOperationsUseCase(ctrl)
		h := NewOperationsHandler(uc)

		r := gin.New()
		r.GET("/clock-logs", h.GetClockLogs)

		uc.EXPECT().GetClockLogs(gomock.Any(), int64(200), int64(100)).Return(entities.ClockLogs{}, usecase.ErrInvalidTimeRange)

		req := httptest.NewRequest(http.MethodGet, "/clock-logs?start=200&end=100", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("returns entries and wages", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOperationsUseCase(ctrl)
		h := NewOperationsHandler(uc)

		r := gin.New()
		r.GET("/clock-logs", h.GetClockLogs)

		uc.EXPECT().GetClockLogs(gomock.Any(), int64(100), int64(200)).Return(entities.ClockLogs{
			Entries: []entities.TimeEntry{{UserName: "bob", Timestamp: 150, IsClockOut: false}},
			Wages:   []entities.UserWage{{UserName: "bob", WageCents: 1500}},
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/clock-logs?start=100&end=200", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("bad json: %v", err)
		}
		if len(body["entries"].([]any)) != 1 || len(body["wages"].([]any)) != 1 {
			t.Fatalf("unexpected body: %v", body)
		}
	})

	t.Run("update rewrites day", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOperationsUseCase(ctrl)
		h := NewOperationsHandler(uc)

		r := gin.New()
		r.PUT("/clock-logs", h.UpdateClockLogs)

		uc.EXPECT().UpdateClockLogs(gomock.Any(), "bob", int64(100), int64(200), []entities.TimeSegment{{Start: 110, End: 150}}).Return(nil)

		payload := `{"user_name":"bob","start_of_day":100,"end_of_day":200,"segments":[{"start":110,"end":150}]}`
		req := httptest.NewRequest(http.MethodPut, "/clock-logs", bytes.NewBufferString(payload))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
	})
}

func TestOperationsHandler_Payments(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing tech_name", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOperationsUseCase(ctrl)
		h := NewOperationsHandler(uc)

		r := gin.New()
		r.POST("/take-payment", h.TakePayment)

		req := httptest.NewRequest(http.MethodPost, "/take-payment?ticket_number=5481", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("invalid ticket_number", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOperationsUseCase(ctrl)
		h := NewOperationsHandler(uc)

		r := gin.New()
		r.POST("/take-payment", h.TakePayment)

		req := httptest.NewRequest(http.MethodPost, "/take-payment?ticket_number=-4&tech_name=Bob", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("take payment success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOperationsUseCase(ctrl)
		h := NewOperationsHandler(uc)

		r := gin.New()
		r.POST("/take-payment", h.TakePayment)

		uc.EXPECT().TakePayment(gomock.Any(), int64(5481), "Bob").Return(int64(16200), nil)

		req := httptest.NewRequest(http.MethodPost, "/take-payment?ticket_number=5481&tech_name=Bob", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("bad json: %v", err)
		}
		if body["success"] != true || body["total_paid_cents"].(float64) != 16200 {
			t.Fatalf("unexpected body: %v", body)
		}
	})

	t.Run("second take payment conflicts", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOperationsUseCase(ctrl)
		h := NewOperationsHandler(uc)

		r := gin.New()
		r.POST("/take-payment", h.TakePayment)

		uc.EXPECT().TakePayment(gomock.Any(), int64(5481), "Bob").Return(int64(0), usecase.ErrAlreadyResolved)

		req := httptest.NewRequest(http.MethodPost, "/take-payment?ticket_number=5481&tech_name=Bob", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("take payment lost race", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOperationsUseCase(ctrl)
		h := NewOperationsHandler(uc)

		r := gin.New()
		r.POST("/take-payment", h.TakePayment)

		uc.EXPECT().TakePayment(gomock.Any(), int64(5481), "Bob").Return(int64(0), usecase.ErrPaymentConflict)

		req := httptest.NewRequest(http.MethodPost, "/take-payment?ticket_number=5481&tech_name=Bob", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("refund not resolved", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOperationsUseCase(ctrl)
		h := NewOperationsHandler(uc)

		r := gin.New()
		r.POST("/refund-payment", h.RefundPayment)

		uc.EXPECT().RefundPayment(gomock.Any(), int64(5481), "Bob").Return(usecase.ErrNotResolved)

		req := httptest.NewRequest(http.MethodPost, "/refund-payment?ticket_number=5481&tech_name=Bob", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("dont fix without line items", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOperationsUseCase(ctrl)
		h := NewOperationsHandler(uc)

		r := gin.New()
		r.POST("/dont-fix", h.DontFix)

		uc.EXPECT().DontFix(gomock.Any(), int64(5481), "Bob").Return(usecase.ErrNoLineItems)

		req := httptest.NewRequest(http.MethodPost, "/dont-fix?ticket_number=5481&tech_name=Bob", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestOperationsHandler_MonthScoped(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("revenue missing month", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOperationsUseCase(ctrl)
		h := NewOperationsHandler(uc)

		r := gin.New()
		r.GET("/revenue", h.Revenue)

		req := httptest.NewRequest(http.MethodGet, "/revenue?year=2026", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("revenue success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOperationsUseCase(ctrl)
		h := NewOperationsHandler(uc)

		r := gin.New()
		r.GET("/revenue", h.Revenue)

		uc.EXPECT().MonthlyRevenue(gomock.Any(), 2026, 8).Return([]entities.Ticket{{TicketNumber: 5481}}, nil)

		req := httptest.NewRequest(http.MethodGet, "/revenue?year=2026&month=8", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("get purchases invalid month", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOperationsUseCase(ctrl)
		h := NewOperationsHandler(uc)

		r := gin.New()
		r.GET("/purchases", h.GetPurchases)

		uc.EXPECT().GetPurchases(gomock.Any(), 2026, 13).Return(entities.MonthPurchases{}, usecase.ErrInvalidMonth)

		req := httptest.NewRequest(http.MethodGet, "/purchases?year=2026&month=13", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("put purchases overwrites ledger", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOperationsUseCase(ctrl)
		h := NewOperationsHandler(uc)

		r := gin.New()
		r.PUT("/purchases", h.PutPurchases)

		uc.EXPECT().PutPurchases(gomock.Any(), 2026, 8, []entities.PurchaseItem{{Name: "Screens", AmountCents: 45000}}).Return(nil)

		payload := `{"items":[{"name":"Screens","amount_cents":45000}]}`
		req := httptest.NewRequest(http.MethodPut, "/purchases?year=2026&month=8", bytes.NewBufferString(payload))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("bad json: %v", err)
		}
		if body["month_year"] != "2026-08" {
			t.Fatalf("unexpected body: %v", body)
		}
	})
}

func TestOperationsHandler_StoreConfig(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("get missing config", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOperationsUseCase(ctrl)
		h := NewOperationsHandler(uc)

		r := gin.New()
		r.GET("/store-config", h.GetStoreConfig)

		uc.EXPECT().GetStoreConfig(gomock.Any()).Return(entities.StoreConfig{}, usecase.ErrStoreConfigMissing)

		req := httptest.NewRequest(http.MethodGet, "/store-config", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("put success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOperationsUseCase(ctrl)
		h := NewOperationsHandler(uc)

		r := gin.New()
		r.PUT("/store-config", h.PutStoreConfig)

		uc.EXPECT().PutStoreConfig(gomock.Any(), gomock.AssignableToTypeOf(entities.StoreConfig{})).DoAndReturn(
			func(_ any, sc entities.StoreConfig) error {
				if sc.StoreName != "Cacell" || sc.TaxRate != 8.0 {
					t.Fatalf("unexpected config: %+v", sc)
				}
				return nil
			},
		)

		payload := `{"store_name":"Cacell","tax_rate":8.0}`
		req := httptest.NewRequest(http.MethodPut, "/store-config", bytes.NewBufferString(payload))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
	})
}

func TestOperationsHandler_UpdateWage(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIOperationsUseCase(ctrl)
	h := NewOperationsHandler(uc)

	r := gin.New()
	r.PUT("/wage", h.UpdateWage)

	uc.EXPECT().UpdateWage(gomock.Any(), "bob", int64(1500)).Return(nil)

	req := httptest.NewRequest(http.MethodPut, "/wage", bytes.NewBufferString(`{"user_name":"bob","wage_cents":1500}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}
