package createproduct

import (
	"context"
	e "inventory/internal/core/domain/errors"
	"inventory/internal/core/domain/logging"
	"inventory/internal/core/domain/product"
	"inventory/internal/core/domain/user"
	"inventory/internal/core/services"
	"inventory/internal/core/services/auth"
	"time"
)

type Input struct {
	UserID      user.ID
	Name        string
	Description string
	Quantity    uint32
	UnitPrice   product.Price
}

func (i Input) WithAuthenticatedUser(u user.User) auth.Input {
	i.UserID = u.ID
	return i
}

type Result struct {
	Product product.Product
}

type service struct {
	log               logging.Logger
	productRepository product.Repository
	publisher         product.EventPublisher
	now               func() time.Time
}

func New(
	log logging.Logger,
	productRepository product.Repository,
	publisher product.EventPublisher,
	now func() time.Time,
) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if productRepository == nil {
		panic(e.NewNilArgumentError("productRepository"))
	}
	if publisher == nil {
		panic(e.NewNilArgumentError("publisher"))
	}
	if now == nil {
		panic(e.NewNilArgumentError("now"))
	}
	return &service{
		log:               log,
		productRepository: productRepository,
		publisher:         publisher,
		now:               now,
	}
}

func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	createdProduct, err := s.productRepository.Create(ctx, product.CreateInput{
		OwnerID:     input.UserID,
		Name:        input.Name,
		Description: input.Description,
		Quantity:    input.Quantity,
		UnitPrice:   input.UnitPrice,
		CreatedAt:   s.now(),
	})
	if err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("input", input))
		return result, err
	}

	s.log.Info(ctx, "Product has been created.", logging.Entry("product", createdProduct))
	product.Publish(ctx, s.publisher, s.log, product.Event{Type: product.EventCreated, Product: createdProduct})
	return Result{Product: createdProduct}, nil
}
