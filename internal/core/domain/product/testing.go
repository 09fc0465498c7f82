package product

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"
)

type FakeRepository struct {
	Products    []Product
	CreateError error
	ReadError   error
	CountError  error
	UpdateError error
	DeleteError error
	ReadWith    []ReadOptions
	Locked      []ID
	lastID      ID
	lock        sync.Mutex
}

func NewFakeRepository() *FakeRepository {
	return &FakeRepository{}
}

func (r *FakeRepository) Create(ctx context.Context, input CreateInput) (p Product, err error) {
	if r.CreateError != nil {
		return p, r.CreateError
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	r.lastID++
	p = Product{
		ID:          r.lastID,
		OwnerID:     input.OwnerID,
		Name:        input.Name,
		Description: input.Description,
		Quantity:    input.Quantity,
		UnitPrice:   input.UnitPrice,
		CreatedAt:   input.CreatedAt,
		UpdatedAt:   input.CreatedAt,
	}
	r.Products = append(r.Products, p)
	return p, nil
}

func (r *FakeRepository) Lock(ctx context.Context, id ID) error {
	r.lock.Lock()
	defer r.lock.Unlock()
	r.Locked = append(r.Locked, id)
	return nil
}

func (r *FakeRepository) GetByID(ctx context.Context, id ID) (p Product, err error) {
	r.lock.Lock()
	defer r.lock.Unlock()
	for _, p := range r.Products {
		if p.ID == id {
			return p, nil
		}
	}
	return p, ErrProductDoesNotExist
}

func (r *FakeRepository) Read(ctx context.Context, options ReadOptions) ([]Product, error) {
	if r.ReadError != nil {
		return nil, r.ReadError
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	r.ReadWith = append(r.ReadWith, options)

	products := r.filter(options)
	switch options.OrderBy {
	case OrderByIDDesc:
		sort.SliceStable(products, func(i, j int) bool { return products[i].ID > products[j].ID })
	case OrderByNameAsc:
		sort.SliceStable(products, func(i, j int) bool { return strings.Compare(products[i].Name, products[j].Name) < 0 })
	case OrderByNameDesc:
		sort.SliceStable(products, func(i, j int) bool { return strings.Compare(products[i].Name, products[j].Name) > 0 })
	default:
		sort.SliceStable(products, func(i, j int) bool { return products[i].ID < products[j].ID })
	}

	if options.Offset >= uint(len(products)) {
		return []Product{}, nil
	}
	products = products[options.Offset:]
	if options.Limit.IsPresent && options.Limit.Value < uint(len(products)) {
		products = products[:options.Limit.Value]
	}
	return products, nil
}

func (r *FakeRepository) Count(ctx context.Context, options ReadOptions) (uint, error) {
	if r.CountError != nil {
		return 0, r.CountError
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	return uint(len(r.filter(options))), nil
}

func (r *FakeRepository) Update(ctx context.Context, input UpdateInput) (p Product, err error) {
	if r.UpdateError != nil {
		return p, r.UpdateError
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	for ix := range r.Products {
		if r.Products[ix].ID != input.ID {
			continue
		}
		if input.DoNameUpdate {
			r.Products[ix].Name = input.Name
		}
		if input.DoDescriptionUpdate {
			r.Products[ix].Description = input.Description
		}
		if input.DoQuantityUpdate {
			r.Products[ix].Quantity = input.Quantity
		}
		if input.DoUnitPriceUpdate {
			r.Products[ix].UnitPrice = input.UnitPrice
		}
		if input.DoAmountSoldUpdate {
			r.Products[ix].AmountSold = input.AmountSold
		}
		r.Products[ix].UpdatedAt = input.UpdatedAt
		return r.Products[ix], nil
	}
	return p, ErrProductDoesNotExist
}

func (r *FakeRepository) Delete(ctx context.Context, id ID) error {
	if r.DeleteError != nil {
		return r.DeleteError
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	for ix, p := range r.Products {
		if p.ID == id {
			r.Products = append(r.Products[:ix], r.Products[ix+1:]...)
			return nil
		}
	}
	return ErrProductDoesNotExist
}

func (r *FakeRepository) filter(options ReadOptions) []Product {
	products := make([]Product, 0, len(r.Products))
	for _, p := range r.Products {
		if options.OwnerIDEquals.IsPresent && p.OwnerID != options.OwnerIDEquals.Value {
			continue
		}
		products = append(products, p)
	}
	return products
}

type FakeEventPublisher struct {
	Published   []Event
	ReturnError bool
	lock        sync.Mutex
}

func NewFakeEventPublisher() *FakeEventPublisher {
	return &FakeEventPublisher{}
}

func (p *FakeEventPublisher) PublishEvent(ctx context.Context, event Event) error {
	p.lock.Lock()
	defer p.lock.Unlock()
	if p.ReturnError {
		return errors.New("could not publish event")
	}
	p.Published = append(p.Published, event)
	return nil
}

func (p *FakeEventPublisher) PublishedCount() int {
	p.lock.Lock()
	defer p.lock.Unlock()
	return len(p.Published)
}
