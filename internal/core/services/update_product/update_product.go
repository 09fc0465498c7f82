package updateproduct

import (
	"context"
	"errors"
	e "inventory/internal/core/domain/errors"
	"inventory/internal/core/domain/logging"
	"inventory/internal/core/domain/product"
	uow "inventory/internal/core/domain/unit_of_work"
	"inventory/internal/core/domain/user"
	"inventory/internal/core/services"
	"inventory/internal/core/services/auth"
	"time"
)

type Input struct {
	UserID      user.ID
	ProductID   product.ID
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
	log        logging.Logger
	unitOfWork uow.UnitOfWork
	publisher  product.EventPublisher
	now        func() time.Time
}

func New(
	log logging.Logger,
	unitOfWork uow.UnitOfWork,
	publisher product.EventPublisher,
	now func() time.Time,
) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if unitOfWork == nil {
		panic(e.NewNilArgumentError("unitOfWork"))
	}
	if publisher == nil {
		panic(e.NewNilArgumentError("publisher"))
	}
	if now == nil {
		panic(e.NewNilArgumentError("now"))
	}
	return &service{
		log:        log,
		unitOfWork: unitOfWork,
		publisher:  publisher,
		now:        now,
	}
}

func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	uow, err := s.unitOfWork.Begin(ctx)
	if err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("input", input))
		return result, err
	}
	defer uow.Rollback(ctx)

	productRepository := uow.Products()
	if err := productRepository.Lock(ctx, input.ProductID); err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("input", input))
		return result, err
	}
	p, err := productRepository.GetByID(ctx, input.ProductID)
	if err != nil {
		switch {
		case errors.Is(err, product.ErrProductDoesNotExist):
			s.log.Info(ctx, "Product not found.", logging.Entry("input", input))
		default:
			logging.Error(ctx, s.log, err, logging.Entry("input", input))
		}
		return result, err
	}
	if !p.IsOwnedBy(input.UserID) {
		s.log.Info(ctx, "Product belongs to another user.", logging.Entry("input", input))
		return result, product.ErrProductPermission
	}

	updatedProduct, err := productRepository.Update(ctx, product.UpdateInput{
		ID:                  input.ProductID,
		DoNameUpdate:        true,
		Name:                input.Name,
		DoDescriptionUpdate: true,
		Description:         input.Description,
		DoQuantityUpdate:    true,
		Quantity:            input.Quantity,
		DoUnitPriceUpdate:   true,
		UnitPrice:           input.UnitPrice,
		UpdatedAt:           s.now(),
	})
	if err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("input", input))
		return result, err
	}

	if err := uow.Commit(ctx); err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("input", input))
		return result, err
	}

	s.log.Info(ctx, "Product successfully updated.", logging.Entry("product", updatedProduct))
	product.Publish(ctx, s.publisher, s.log, product.Event{Type: product.EventUpdated, Product: updatedProduct})
	return Result{Product: updatedProduct}, nil
}
