package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"truetickets/internal/domain/entities"
	"truetickets/internal/usecase/interfaces"
	"truetickets/pkg"
)

var (
	ErrCustomerIDCollision = errors.New("customer id collision")
	ErrMissingFullName     = errors.New("full_name is required")
	ErrMissingPhoneNumbers = errors.New("at least one phone number is required")
)

const customerIDLength = 10

// ICustomerUseCase encapsulates customer lookups and writes.
type ICustomerUseCase interface {
	GetByID(ctx context.Context, id string) (entities.Customer, error)
	GetByPhone(ctx context.Context, phone string) ([]entities.Customer, error)
	SearchByName(ctx context.Context, query string) ([]entities.Customer, error)
	Create(ctx context.Context, fullName, email string, phoneNumbers []entities.PhoneNumber) (entities.Customer, error)
	Update(ctx context.Context, id string, u entities.CustomerUpdate) error
}

type CustomerUseCase struct {
	repo interfaces.ICustomerRepository
}

var _ ICustomerUseCase = (*CustomerUseCase)(nil)

func NewCustomerUseCase(repo interfaces.ICustomerRepository) *CustomerUseCase {
	return &CustomerUseCase{repo: repo}
}

func (u *CustomerUseCase) GetByID(ctx context.Context, id string) (entities.Customer, error) {
	c, found, err := u.repo.GetByID(ctx, id)
	if err != nil {
		log.Printf("[customer][usecase] get by id failed customer_id=%s err=%v", id, err)
		return entities.Customer{}, err
	}
	if !found {
		return entities.Customer{}, ErrCustomerNotFound
	}
	return c, nil
}

func (u *CustomerUseCase) GetByPhone(ctx context.Context, phone string) ([]entities.Customer, error) {
	customers, err := u.repo.ListByPhone(ctx, phone)
	if err != nil {
		log.Printf("[customer][usecase] phone lookup failed phone=%s err=%v", phone, err)
		return nil, mapBatchErr(err)
	}
	if customers == nil {
		customers = []entities.Customer{}
	}
	return customers, nil
}

func (u *CustomerUseCase) SearchByName(ctx context.Context, query string) ([]entities.Customer, error) {
	words := strings.Fields(strings.ToLower(query))
	if len(words) == 0 {
		return nil, ErrEmptySearchQuery
	}

	ids, err := u.repo.SearchIDsByName(ctx, words, searchResultCap)
	if err != nil {
		log.Printf("[customer][usecase] name search failed query=%q err=%v", query, err)
		return nil, err
	}
	if len(ids) == 0 {
		return []entities.Customer{}, nil
	}

	customers, err := u.repo.BatchGet(ctx, ids)
	if err != nil {
		return nil, mapBatchErr(err)
	}
	return customers, nil
}

func (u *CustomerUseCase) Create(ctx context.Context, fullName, email string, phoneNumbers []entities.PhoneNumber) (entities.Customer, error) {
	if strings.TrimSpace(fullName) == "" {
		return entities.Customer{}, ErrMissingFullName
	}
	if len(phoneNumbers) == 0 {
		return entities.Customer{}, ErrMissingPhoneNumbers
	}

	now := time.Now().Unix()
	c := entities.Customer{
		CustomerID:   pkg.ShortID(customerIDLength),
		FullName:     fullName,
		Email:        email,
		PhoneNumbers: phoneNumbers,
		CreatedAt:    now,
		LastUpdated:  now,
	}

	if err := u.repo.Create(ctx, c); err != nil {
		if errors.Is(err, interfaces.ErrConditionFailed) {
			// A 10-char base36 collision; the client simply retries.
			return entities.Customer{}, ErrCustomerIDCollision
		}
		log.Printf("[customer][usecase] create failed err=%v", err)
		return entities.Customer{}, err
	}
	log.Printf("[customer][usecase] created customer_id=%s", c.CustomerID)
	return c, nil
}

func (u *CustomerUseCase) Update(ctx context.Context, id string, upd entities.CustomerUpdate) error {
	if upd.Empty() {
		return ErrNoFieldsToUpdate
	}
	if upd.FullName != nil && strings.TrimSpace(*upd.FullName) == "" {
		return ErrMissingFullName
	}
	if upd.PhoneNumbers != nil && len(*upd.PhoneNumbers) == 0 {
		return ErrMissingPhoneNumbers
	}

	err := u.repo.Update(ctx, id, upd)
	if errors.Is(err, interfaces.ErrNotFound) {
		return ErrCustomerNotFound
	}
	if err != nil {
		log.Printf("[customer][usecase] update failed customer_id=%s err=%v", id, err)
	}
	return err
}
