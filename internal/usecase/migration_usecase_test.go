package usecase

import (
	"context"
	"errors"
	"testing"

	"truetickets/internal/domain/entities"
	"truetickets/internal/usecase/interfaces"
	mock_interfaces "truetickets/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func int64ptr(v int64) *int64 { return &v }

func TestExtractPassword(t *testing.T) {
	cases := []struct {
		name string
		up   interfaces.UpstreamTicket
		want string
	}{
		{
			name: "laptop type uses Password",
			up: interfaces.UpstreamTicket{
				TicketTypeID: int64ptr(ticketTypeLaptop),
				Properties:   interfaces.UpstreamProperties{Password: "hunter2", PasswordAlt: "alt"},
			},
			want: "hunter2",
		},
		{
			name: "phone type uses passwordForPhone",
			up: interfaces.UpstreamTicket{
				TicketTypeID: int64ptr(ticketTypePhone),
				Properties:   interfaces.UpstreamProperties{PasswordForPhone: "1234"},
			},
			want: "1234",
		},
		{
			name: "ticket fields type wins over top level",
			up: interfaces.UpstreamTicket{
				TicketTypeID: int64ptr(ticketTypePhone),
				TicketFields: []interfaces.UpstreamTicketField{{TicketTypeID: int64ptr(ticketTypeDesktop)}},
				Properties:   interfaces.UpstreamProperties{Password: "desktop-pw", PasswordForPhone: "1234"},
			},
			want: "desktop-pw",
		},
		{
			name: "placeholder falls through to alt",
			up: interfaces.UpstreamTicket{
				TicketTypeID: int64ptr(ticketTypeLaptop),
				Properties:   interfaces.UpstreamProperties{Password: "N/A", PasswordAlt: "realpw"},
			},
			want: "realpw",
		},
		{
			name: "none anywhere yields empty",
			up: interfaces.UpstreamTicket{
				TicketTypeID: int64ptr(ticketTypeLaptop),
				Properties:   interfaces.UpstreamProperties{Password: "none", PasswordAlt: " NA "},
			},
			want: "",
		},
		{
			name: "unknown type uses alt",
			up: interfaces.UpstreamTicket{
				Properties: interfaces.UpstreamProperties{PasswordAlt: "fallback"},
			},
			want: "fallback",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := extractPassword(tc.up); got != tc.want {
				t.Fatalf("got %q, want %q", got, tc.want)
			}
		})
	}
}

func TestDeviceFromSubject(t *testing.T) {
	cases := []struct {
		subject string
		want    entities.Device
	}{
		{"iPhone 12 screen replacement", entities.DevicePhone},
		{"MacBook wont boot", entities.DeviceLaptop},
		{"Broken iPad charging port", entities.DeviceTablet},
		{"PS5 HDMI repair", entities.DeviceConsole},
		{"Custom tower build", entities.DeviceDesktop},
		{"Apple watch glass", entities.DeviceWatch},
		{"Data recovery from drive", entities.DeviceOther},
	}
	for _, tc := range cases {
		t.Run(tc.subject, func(t *testing.T) {
			if got := deviceFromSubject(tc.subject); got != tc.want {
				t.Fatalf("got %s, want %s", got, tc.want)
			}
		})
	}
}

func TestConvertUpstreamStatus(t *testing.T) {
	cases := []struct {
		in   string
		want entities.TicketStatus
	}{
		{"New", entities.StatusDiagnosing},
		{"Scheduled", entities.StatusFindingPrice},
		{"Call Customer", entities.StatusApprovalNeeded},
		{"Waiting on Customer", entities.StatusWaitingOther},
		{"Customer Reply", entities.StatusReady},
		{"Ready!", entities.StatusReady},
		{"Resolved", entities.StatusResolved},
		{"Something Weird", entities.StatusOther},
	}
	for _, tc := range cases {
		if got := convertUpstreamStatus(tc.in); got != tc.want {
			t.Fatalf("%s: got %s, want %s", tc.in, got, tc.want)
		}
	}
}

func TestItemsLeftFromProperties(t *testing.T) {
	if got := itemsLeftFromProperties(interfaces.UpstreamProperties{ACCharger: "Yes"}); len(got) != 1 || got[0] != "AC Charger" {
		t.Fatalf("expected AC Charger, got %v", got)
	}
	if got := itemsLeftFromProperties(interfaces.UpstreamProperties{ACCharger: "no"}); got != nil {
		t.Fatalf("expected nil, got %v", got)
	}
}

func TestMigrationUseCase_MigrateTickets(t *testing.T) {
	t.Run("count over cap", func(t *testing.T) {
		uc := NewMigrationUseCase(nil, nil, nil, nil)
		_, err := uc.MigrateTickets(context.Background(), 5000, 6)
		if !errors.Is(err, ErrMigrationCountTooLarge) {
			t.Fatalf("expected ErrMigrationCountTooLarge, got %v", err)
		}
	})

	t.Run("imports batch and raises counter", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		upstreamClient := mock_interfaces.NewMockIUpstreamClient(ctrl)
		ticketRepo := mock_interfaces.NewMockITicketRepository(ctrl)
		counterRepo := mock_interfaces.NewMockICounterRepository(ctrl)
		uc := NewMigrationUseCase(upstreamClient, nil, ticketRepo, counterRepo)

		for _, n := range []int64{5000, 4999} {
			number := n
			upstreamClient.EXPECT().FetchTicketByNumber(gomock.Any(), number).Return(interfaces.UpstreamTicket{
				Number:     number,
				Subject:    "iPhone screen",
				Status:     "Resolved",
				CreatedAt:  "2024-03-01T10:00:00Z",
				UpdatedAt:  "2024-03-02T10:00:00Z",
				CustomerID: 777,
				Customer: interfaces.UpstreamCustomer{
					BusinessAndFullName: "Jane Doe",
					Phone:               "555-0100",
					CreatedAt:           "2020-01-01T00:00:00Z",
				},
			}, nil)
			ticketRepo.EXPECT().Import(gomock.Any(), gomock.AssignableToTypeOf(entities.Customer{}), gomock.AssignableToTypeOf(entities.Ticket{})).DoAndReturn(
				func(_ context.Context, c entities.Customer, tk entities.Ticket) error {
					if c.CustomerID != "777" || tk.CustomerID != "777" {
						t.Fatalf("expected upstream numeric id as string, got %q / %q", c.CustomerID, tk.CustomerID)
					}
					if tk.TicketNumber != number || tk.Status != entities.StatusResolved || tk.Device != entities.DevicePhone {
						t.Fatalf("unexpected ticket: %+v", tk)
					}
					return nil
				},
			)
		}
		counterRepo.EXPECT().RaiseTicketNumber(gomock.Any(), int64(5000)).Return(nil)

		migrated, err := uc.MigrateTickets(context.Background(), 5000, 2)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if migrated != 2 {
			t.Fatalf("expected 2 migrated, got %d", migrated)
		}
	})

	t.Run("mid batch failure keeps committed count", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		upstreamClient := mock_interfaces.NewMockIUpstreamClient(ctrl)
		ticketRepo := mock_interfaces.NewMockITicketRepository(ctrl)
		uc := NewMigrationUseCase(upstreamClient, nil, ticketRepo, nil)

		upstreamClient.EXPECT().FetchTicketByNumber(gomock.Any(), int64(5000)).Return(interfaces.UpstreamTicket{
			Number:     5000,
			Status:     "New",
			CreatedAt:  "2024-03-01T10:00:00Z",
			UpdatedAt:  "2024-03-01T10:00:00Z",
			CustomerID: 777,
			Customer:   interfaces.UpstreamCustomer{CreatedAt: "2020-01-01T00:00:00Z"},
		}, nil)
		ticketRepo.EXPECT().Import(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		upstreamClient.EXPECT().FetchTicketByNumber(gomock.Any(), int64(4999)).Return(interfaces.UpstreamTicket{}, errors.New("upstream 500"))

		migrated, err := uc.MigrateTickets(context.Background(), 5000, 2)
		if err == nil {
			t.Fatalf("expected error")
		}
		if migrated != 1 {
			t.Fatalf("expected 1 migrated, got %d", migrated)
		}
	})

	t.Run("stale counter raise maps to rollback error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		counterRepo := mock_interfaces.NewMockICounterRepository(ctrl)
		uc := NewMigrationUseCase(nil, nil, nil, counterRepo)

		counterRepo.EXPECT().RaiseTicketNumber(gomock.Any(), int64(5000)).Return(interfaces.ErrConditionFailed)

		_, err := uc.MigrateTickets(context.Background(), 5000, 0)
		if !errors.Is(err, ErrCounterRollback) {
			t.Fatalf("expected ErrCounterRollback, got %v", err)
		}
	})
}

func TestMigrationUseCase_SideloadAttachments(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	upstreamClient := mock_interfaces.NewMockIUpstreamClient(ctrl)
	blob := mock_interfaces.NewMockIBlobStorage(ctrl)
	uc := NewMigrationUseCase(upstreamClient, blob, nil, nil)

	up := interfaces.UpstreamTicket{
		Number: 5000,
		Attachments: []interfaces.UpstreamAttachment{
			{File: interfaces.UpstreamAttachmentFile{URL: `https://cdn.example.com/a?x=1&y=2`}},
		},
	}

	upstreamClient.EXPECT().DownloadAttachment(gomock.Any(), "https://cdn.example.com/a?x=1&y=2").Return([]byte("img"), nil)
	blob.EXPECT().Upload(gomock.Any(), gomock.Any(), []byte("img"), "application/octet-stream").Return("https://bucket/a", nil)

	urls, err := uc.sideloadAttachments(context.Background(), up)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(urls) != 1 || urls[0] != "https://bucket/a" {
		t.Fatalf("unexpected urls: %v", urls)
	}
}
