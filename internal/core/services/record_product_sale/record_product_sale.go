package recordproductsale

import (
	"context"
	"errors"
	e "inventory/internal/core/domain/errors"
	"inventory/internal/core/domain/logging"
	"inventory/internal/core/domain/product"
	uow "inventory/internal/core/domain/unit_of_work"
	"inventory/internal/core/services"
	"time"
)

type Input struct {
	ProductID product.ID
	Quantity  uint32
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

// New creates the service applying a sale to the stock of a product: the
// sold amount is moved from quantity to amount sold.
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
	if input.Quantity == 0 {
		return result, product.ErrInvalidSaleQuantity
	}

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
	if input.Quantity > p.Quantity {
		s.log.Warning(
			ctx,
			"Not enough quantity of the product for the sale.",
			logging.Entry("input", input),
			logging.Entry("available", p.Quantity),
		)
		return result, product.ErrNotEnoughQuantity
	}
	if p.AmountSold > product.MAX_AMOUNT_SOLD-input.Quantity {
		s.log.Warning(
			ctx,
			"Amount sold of the product would overflow.",
			logging.Entry("input", input),
			logging.Entry("amountSold", p.AmountSold),
		)
		return result, product.ErrAmountSoldOverflow
	}

	updatedProduct, err := productRepository.Update(ctx, product.UpdateInput{
		ID:                 p.ID,
		DoQuantityUpdate:   true,
		Quantity:           p.Quantity - input.Quantity,
		DoAmountSoldUpdate: true,
		AmountSold:         p.AmountSold + input.Quantity,
		UpdatedAt:          s.now(),
	})
	if err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("input", input))
		return result, err
	}
	if err := uow.Commit(ctx); err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("input", input))
		return result, err
	}

	s.log.Info(ctx, "Product sale recorded.", logging.Entry("input", input))
	product.Publish(ctx, s.publisher, s.log, product.Event{Type: product.EventSold, Product: updatedProduct})
	return Result{Product: updatedProduct}, nil
}
