package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"truetickets/internal/domain/entities"
	"truetickets/internal/usecase/interfaces"
	mock_interfaces "truetickets/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestOperationsUseCase_ClockInOut(t *testing.T) {
	t.Run("missing user", func(t *testing.T) {
		uc := NewOperationsUseCase(nil, nil, nil)
		_, err := uc.ClockInOut(context.Background(), "  ", true)
		if !errors.Is(err, ErrMissingUserName) {
			t.Fatalf("expected ErrMissingUserName, got %v", err)
		}
	})

	t.Run("race maps to conflict", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		opsRepo := mock_interfaces.NewMockIOperationsRepository(ctrl)
		uc := NewOperationsUseCase(opsRepo, nil, nil)

		opsRepo.EXPECT().ClockInOut(gomock.Any(), "alice", true, gomock.Any()).Return(interfaces.ErrConditionFailed)

		_, err := uc.ClockInOut(context.Background(), "alice", true)
		if !errors.Is(err, ErrClockStateRace) {
			t.Fatalf("expected ErrClockStateRace, got %v", err)
		}
	})

	t.Run("success returns new state", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		opsRepo := mock_interfaces.NewMockIOperationsRepository(ctrl)
		uc := NewOperationsUseCase(opsRepo, nil, nil)

		opsRepo.EXPECT().ClockInOut(gomock.Any(), "alice", false, gomock.Any()).Return(nil)

		state, err := uc.ClockInOut(context.Background(), "alice", false)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if state.ClockedIn || state.LastUpdated == 0 {
			t.Fatalf("unexpected state: %+v", state)
		}
	})
}

func TestOperationsUseCase_GetClockLogs(t *testing.T) {
	t.Run("invalid range", func(t *testing.T) {
		uc := NewOperationsUseCase(nil, nil, nil)
		_, err := uc.GetClockLogs(context.Background(), 100, 50)
		if !errors.Is(err, ErrInvalidTimeRange) {
			t.Fatalf("expected ErrInvalidTimeRange, got %v", err)
		}
	})

	t.Run("wages per distinct user, zero default", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		opsRepo := mock_interfaces.NewMockIOperationsRepository(ctrl)
		uc := NewOperationsUseCase(opsRepo, nil, nil)

		opsRepo.EXPECT().ListTimeEntries(gomock.Any(), int64(0), int64(100)).Return([]entities.TimeEntry{
			{UserName: "bob", Timestamp: 10},
			{UserName: "alice", Timestamp: 20, IsClockOut: true},
			{UserName: "bob", Timestamp: 30, IsClockOut: true},
		}, nil)
		opsRepo.EXPECT().GetWages(gomock.Any(), []string{"alice", "bob"}).Return(map[string]int64{"bob": 1500}, nil)

		logs, err := uc.GetClockLogs(context.Background(), 0, 100)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(logs.Entries) != 3 || len(logs.Wages) != 2 {
			t.Fatalf("unexpected logs: %+v", logs)
		}
		if logs.Wages[0].UserName != "alice" || logs.Wages[0].WageCents != 0 {
			t.Fatalf("expected zero wage for alice, got %+v", logs.Wages[0])
		}
		if logs.Wages[1].UserName != "bob" || logs.Wages[1].WageCents != 1500 {
			t.Fatalf("unexpected wage for bob: %+v", logs.Wages[1])
		}
	})
}

func TestOperationsUseCase_UpdateClockLogs(t *testing.T) {
	cases := []struct {
		name     string
		start    int64
		end      int64
		segments []entities.TimeSegment
	}{
		{name: "day range inverted", start: 100, end: 50},
		{name: "segment inverted", start: 0, end: 100, segments: []entities.TimeSegment{{Start: 60, End: 40}}},
		{name: "segment outside day", start: 50, end: 100, segments: []entities.TimeSegment{{Start: 10, End: 60}}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			uc := NewOperationsUseCase(nil, nil, nil)
			err := uc.UpdateClockLogs(context.Background(), "alice", tc.start, tc.end, tc.segments)
			if !errors.Is(err, ErrInvalidTimeRange) {
				t.Fatalf("expected ErrInvalidTimeRange, got %v", err)
			}
		})
	}

	t.Run("valid segments rewrite", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		opsRepo := mock_interfaces.NewMockIOperationsRepository(ctrl)
		uc := NewOperationsUseCase(opsRepo, nil, nil)

		segments := []entities.TimeSegment{{Start: 10, End: 20}, {Start: 30, End: 40}}
		opsRepo.EXPECT().RewriteClockLogs(gomock.Any(), "alice", int64(0), int64(100), segments).Return(nil)

		if err := uc.UpdateClockLogs(context.Background(), "alice", 0, 100, segments); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestOperationsUseCase_TakePayment(t *testing.T) {
	lineItems := []entities.LineItem{
		{Subject: "Screen", PriceCents: 12000},
		{Subject: "Labor", PriceCents: 3000},
	}

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		ticketRepo := mock_interfaces.NewMockITicketRepository(ctrl)
		uc := NewOperationsUseCase(nil, ticketRepo, nil)

		ticketRepo.EXPECT().GetPaymentView(gomock.Any(), int64(42)).Return(entities.Ticket{}, false, nil)

		_, err := uc.TakePayment(context.Background(), 42, "Bob")
		if !errors.Is(err, ErrTicketNotFound) {
			t.Fatalf("expected ErrTicketNotFound, got %v", err)
		}
	})

	t.Run("already resolved", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		ticketRepo := mock_interfaces.NewMockITicketRepository(ctrl)
		uc := NewOperationsUseCase(nil, ticketRepo, nil)

		ticketRepo.EXPECT().GetPaymentView(gomock.Any(), int64(42)).Return(entities.Ticket{Status: entities.StatusResolved}, true, nil)

		_, err := uc.TakePayment(context.Background(), 42, "Bob")
		if !errors.Is(err, ErrAlreadyResolved) {
			t.Fatalf("expected ErrAlreadyResolved, got %v", err)
		}
	})

	t.Run("applies tax and writes receipt", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		ticketRepo := mock_interfaces.NewMockITicketRepository(ctrl)
		opsRepo := mock_interfaces.NewMockIOperationsRepository(ctrl)
		uc := NewOperationsUseCase(opsRepo, ticketRepo, nil)

		ticketRepo.EXPECT().GetPaymentView(gomock.Any(), int64(42)).Return(entities.Ticket{
			TicketNumber: 42,
			Status:       entities.StatusReady,
			Device:       entities.DevicePhone,
			LineItems:    lineItems,
		}, true, nil)
		opsRepo.EXPECT().GetTaxRate(gomock.Any()).Return(8.0, nil)
		ticketRepo.EXPECT().ResolveWithPayment(gomock.Any(), int64(42), entities.DevicePhone, int64(16200), gomock.AssignableToTypeOf(entities.Comment{}), gomock.Any()).DoAndReturn(
			func(_ context.Context, _ int64, _ entities.Device, _ int64, receipt entities.Comment, _ int64) error {
				want := "[Payment Taken]\n- Screen: $120.00\n- Labor: $30.00\nTotal: $162.00"
				if receipt.CommentBody != want {
					t.Fatalf("unexpected receipt:\n%s", receipt.CommentBody)
				}
				if receipt.TechName != "Bob (System)" {
					t.Fatalf("unexpected tech name: %s", receipt.TechName)
				}
				return nil
			},
		)

		total, err := uc.TakePayment(context.Background(), 42, "Bob")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if total != 16200 {
			t.Fatalf("expected 16200, got %d", total)
		}
	})

	t.Run("condition failure maps to conflict", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		ticketRepo := mock_interfaces.NewMockITicketRepository(ctrl)
		opsRepo := mock_interfaces.NewMockIOperationsRepository(ctrl)
		uc := NewOperationsUseCase(opsRepo, ticketRepo, nil)

		ticketRepo.EXPECT().GetPaymentView(gomock.Any(), int64(42)).Return(entities.Ticket{Status: entities.StatusReady, LineItems: lineItems}, true, nil)
		opsRepo.EXPECT().GetTaxRate(gomock.Any()).Return(0.0, nil)
		ticketRepo.EXPECT().ResolveWithPayment(gomock.Any(), int64(42), gomock.Any(), int64(15000), gomock.Any(), gomock.Any()).Return(interfaces.ErrConditionFailed)

		_, err := uc.TakePayment(context.Background(), 42, "Bob")
		if !errors.Is(err, ErrPaymentConflict) {
			t.Fatalf("expected ErrPaymentConflict, got %v", err)
		}
	})
}

func TestOperationsUseCase_RefundPayment(t *testing.T) {
	t.Run("not resolved maps to bad request", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		ticketRepo := mock_interfaces.NewMockITicketRepository(ctrl)
		uc := NewOperationsUseCase(nil, ticketRepo, nil)

		ticketRepo.EXPECT().GetPaymentView(gomock.Any(), int64(42)).Return(entities.Ticket{Status: entities.StatusReady, Device: entities.DevicePhone}, true, nil)
		ticketRepo.EXPECT().RefundPayment(gomock.Any(), int64(42), entities.DevicePhone, gomock.Any(), gomock.Any()).Return(interfaces.ErrConditionFailed)

		err := uc.RefundPayment(context.Background(), 42, "Bob")
		if !errors.Is(err, ErrNotResolved) {
			t.Fatalf("expected ErrNotResolved, got %v", err)
		}
	})
}

func TestOperationsUseCase_DontFix(t *testing.T) {
	t.Run("requires line items", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		ticketRepo := mock_interfaces.NewMockITicketRepository(ctrl)
		uc := NewOperationsUseCase(nil, ticketRepo, nil)

		ticketRepo.EXPECT().GetPaymentView(gomock.Any(), int64(42)).Return(entities.Ticket{Status: entities.StatusReady}, true, nil)

		err := uc.DontFix(context.Background(), 42, "Bob")
		if !errors.Is(err, ErrNoLineItems) {
			t.Fatalf("expected ErrNoLineItems, got %v", err)
		}
	})

	t.Run("zero dollar statement", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		ticketRepo := mock_interfaces.NewMockITicketRepository(ctrl)
		uc := NewOperationsUseCase(nil, ticketRepo, nil)

		ticketRepo.EXPECT().GetPaymentView(gomock.Any(), int64(42)).Return(entities.Ticket{
			Status:    entities.StatusApprovalNeeded,
			Device:    entities.DeviceLaptop,
			LineItems: []entities.LineItem{{Subject: "Screen", PriceCents: 12000}},
		}, true, nil)
		ticketRepo.EXPECT().MarkDontFix(gomock.Any(), int64(42), entities.DeviceLaptop, gomock.AssignableToTypeOf(entities.Comment{}), gomock.Any()).DoAndReturn(
			func(_ context.Context, _ int64, _ entities.Device, c entities.Comment, _ int64) error {
				want := "[Don't fix]\n- Screen: $120.00\nTotal: $0.00"
				if c.CommentBody != want {
					t.Fatalf("unexpected comment:\n%s", c.CommentBody)
				}
				return nil
			},
		)

		if err := uc.DontFix(context.Background(), 42, "Bob"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestOperationsUseCase_MonthBounds(t *testing.T) {
	t.Run("invalid month", func(t *testing.T) {
		if _, _, err := monthBounds(2026, 13); !errors.Is(err, ErrInvalidMonth) {
			t.Fatalf("expected ErrInvalidMonth, got %v", err)
		}
	})

	t.Run("covers the whole month", func(t *testing.T) {
		start, end, err := monthBounds(2026, 2)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		wantStart := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC).Unix()
		wantEnd := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC).Add(-time.Second).Unix()
		if start != wantStart || end != wantEnd {
			t.Fatalf("got [%d, %d], want [%d, %d]", start, end, wantStart, wantEnd)
		}
	})
}

func TestOperationsUseCase_Purchases(t *testing.T) {
	t.Run("missing month defaults to empty ledger", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		opsRepo := mock_interfaces.NewMockIOperationsRepository(ctrl)
		uc := NewOperationsUseCase(opsRepo, nil, nil)

		opsRepo.EXPECT().GetPurchases(gomock.Any(), "2026-08").Return(entities.MonthPurchases{}, false, nil)

		mp, err := uc.GetPurchases(context.Background(), 2026, 8)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if mp.MonthYear != "2026-08" || len(mp.Items) != 0 {
			t.Fatalf("unexpected result: %+v", mp)
		}
	})

	t.Run("put validates month", func(t *testing.T) {
		uc := NewOperationsUseCase(nil, nil, nil)
		err := uc.PutPurchases(context.Background(), 2026, 0, nil)
		if !errors.Is(err, ErrInvalidMonth) {
			t.Fatalf("expected ErrInvalidMonth, got %v", err)
		}
	})
}

func TestOperationsUseCase_StoreConfig(t *testing.T) {
	t.Run("missing config", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		opsRepo := mock_interfaces.NewMockIOperationsRepository(ctrl)
		uc := NewOperationsUseCase(opsRepo, nil, nil)

		opsRepo.EXPECT().GetStoreConfig(gomock.Any()).Return(entities.StoreConfig{}, false, nil)

		_, err := uc.GetStoreConfig(context.Background())
		if !errors.Is(err, ErrStoreConfigMissing) {
			t.Fatalf("expected ErrStoreConfigMissing, got %v", err)
		}
	})
}
