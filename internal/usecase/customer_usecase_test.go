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

func TestCustomerUseCase_Create(t *testing.T) {
	phones := []entities.PhoneNumber{{Number: "555-0100", PrefersTexting: true}}

	t.Run("missing full name", func(t *testing.T) {
		uc := NewCustomerUseCase(nil)
		_, err := uc.Create(context.Background(), "  ", "", phones)
		if !errors.Is(err, ErrMissingFullName) {
			t.Fatalf("expected ErrMissingFullName, got %v", err)
		}
	})

	t.Run("missing phones", func(t *testing.T) {
		uc := NewCustomerUseCase(nil)
		_, err := uc.Create(context.Background(), "Jane Doe", "", nil)
		if !errors.Is(err, ErrMissingPhoneNumbers) {
			t.Fatalf("expected ErrMissingPhoneNumbers, got %v", err)
		}
	})

	t.Run("id collision maps to conflict", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockICustomerRepository(ctrl)
		uc := NewCustomerUseCase(repo)

		repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(interfaces.ErrConditionFailed)

		_, err := uc.Create(context.Background(), "Jane Doe", "", phones)
		if !errors.Is(err, ErrCustomerIDCollision) {
			t.Fatalf("expected ErrCustomerIDCollision, got %v", err)
		}
	})

	t.Run("success generates id and timestamps", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockICustomerRepository(ctrl)
		uc := NewCustomerUseCase(repo)

		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Customer{})).DoAndReturn(
			func(_ context.Context, c entities.Customer) error {
				if len(c.CustomerID) != customerIDLength {
					t.Fatalf("unexpected id %q", c.CustomerID)
				}
				if c.CreatedAt == 0 || c.LastUpdated != c.CreatedAt {
					t.Fatalf("expected timestamps, got %+v", c)
				}
				return nil
			},
		)

		res, err := uc.Create(context.Background(), "Jane Doe", "j@x.com", phones)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.FullName != "Jane Doe" || res.Email != "j@x.com" {
			t.Fatalf("unexpected result: %+v", res)
		}
	})
}

func TestCustomerUseCase_Update(t *testing.T) {
	name := "Jane Doe"
	blank := "   "
	empty := []entities.PhoneNumber{}

	t.Run("empty update", func(t *testing.T) {
		uc := NewCustomerUseCase(nil)
		err := uc.Update(context.Background(), "c1", entities.CustomerUpdate{})
		if !errors.Is(err, ErrNoFieldsToUpdate) {
			t.Fatalf("expected ErrNoFieldsToUpdate, got %v", err)
		}
	})

	t.Run("blank name rejected", func(t *testing.T) {
		uc := NewCustomerUseCase(nil)
		err := uc.Update(context.Background(), "c1", entities.CustomerUpdate{FullName: &blank})
		if !errors.Is(err, ErrMissingFullName) {
			t.Fatalf("expected ErrMissingFullName, got %v", err)
		}
	})

	t.Run("empty phone list rejected", func(t *testing.T) {
		uc := NewCustomerUseCase(nil)
		err := uc.Update(context.Background(), "c1", entities.CustomerUpdate{PhoneNumbers: &empty})
		if !errors.Is(err, ErrMissingPhoneNumbers) {
			t.Fatalf("expected ErrMissingPhoneNumbers, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockICustomerRepository(ctrl)
		uc := NewCustomerUseCase(repo)

		repo.EXPECT().Update(gomock.Any(), "c1", gomock.Any()).Return(interfaces.ErrNotFound)

		err := uc.Update(context.Background(), "c1", entities.CustomerUpdate{FullName: &name})
		if !errors.Is(err, ErrCustomerNotFound) {
			t.Fatalf("expected ErrCustomerNotFound, got %v", err)
		}
	})
}

func TestCustomerUseCase_SearchByName(t *testing.T) {
	t.Run("empty query", func(t *testing.T) {
		uc := NewCustomerUseCase(nil)
		_, err := uc.SearchByName(context.Background(), "  ")
		if !errors.Is(err, ErrEmptySearchQuery) {
			t.Fatalf("expected ErrEmptySearchQuery, got %v", err)
		}
	})

	t.Run("lowercases words", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockICustomerRepository(ctrl)
		uc := NewCustomerUseCase(repo)

		repo.EXPECT().SearchIDsByName(gomock.Any(), []string{"jane", "doe"}, searchResultCap).Return([]string{"c1"}, nil)
		repo.EXPECT().BatchGet(gomock.Any(), []string{"c1"}).Return([]entities.Customer{{CustomerID: "c1"}}, nil)

		res, err := uc.SearchByName(context.Background(), "Jane DOE")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(res) != 1 || res[0].CustomerID != "c1" {
			t.Fatalf("unexpected result: %+v", res)
		}
	})

	t.Run("no matches", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockICustomerRepository(ctrl)
		uc := NewCustomerUseCase(repo)

		repo.EXPECT().SearchIDsByName(gomock.Any(), []string{"nobody"}, searchResultCap).Return(nil, nil)

		res, err := uc.SearchByName(context.Background(), "nobody")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(res) != 0 {
			t.Fatalf("expected empty, got %+v", res)
		}
	})
}

func TestCustomerUseCase_GetByPhone(t *testing.T) {
	t.Run("partial batch maps to retryable", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockICustomerRepository(ctrl)
		uc := NewCustomerUseCase(repo)

		repo.EXPECT().ListByPhone(gomock.Any(), "555-0100").Return(nil, interfaces.ErrPartialBatch)

		_, err := uc.GetByPhone(context.Background(), "555-0100")
		if !errors.Is(err, ErrPartialBatchResult) {
			t.Fatalf("expected ErrPartialBatchResult, got %v", err)
		}
	})

	t.Run("nil result becomes empty slice", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockICustomerRepository(ctrl)
		uc := NewCustomerUseCase(repo)

		repo.EXPECT().ListByPhone(gomock.Any(), "555-0100").Return(nil, nil)

		res, err := uc.GetByPhone(context.Background(), "555-0100")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res == nil || len(res) != 0 {
			t.Fatalf("expected empty slice, got %#v", res)
		}
	})
}
