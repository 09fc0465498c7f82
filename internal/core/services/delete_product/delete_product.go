package deleteproduct

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
)

type Input struct {
	UserID    user.ID
	ProductID product.ID
}

func (i Input) WithAuthenticatedUser(u user.User) auth.Input {
	i.UserID = u.ID
	return i
}

type Result struct{}

type service struct {
	log        logging.Logger
	unitOfWork uow.UnitOfWork
	publisher  product.EventPublisher
}

func New(
	log logging.Logger,
	unitOfWork uow.UnitOfWork,
	publisher product.EventPublisher,
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
	return &service{
		log:        log,
		unitOfWork: unitOfWork,
		publisher:  publisher,
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

	if err := productRepository.Delete(ctx, p.ID); err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("input", input))
		return result, err
	}
	if err := uow.Commit(ctx); err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("input", input))
		return result, err
	}

	s.log.Info(ctx, "Product successfully deleted.", logging.Entry("input", input))
	product.Publish(ctx, s.publisher, s.log, product.Event{Type: product.EventDeleted, Product: p})
	return result, nil
}
