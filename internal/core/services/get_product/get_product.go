package getproduct

import (
	"context"
	"errors"
	e "inventory/internal/core/domain/errors"
	"inventory/internal/core/domain/logging"
	"inventory/internal/core/domain/product"
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

type Result struct {
	Product product.Product
}

type service struct {
	log               logging.Logger
	productRepository product.Repository
}

func New(
	log logging.Logger,
	productRepository product.Repository,
) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if productRepository == nil {
		panic(e.NewNilArgumentError("productRepository"))
	}
	return &service{
		log:               log,
		productRepository: productRepository,
	}
}

func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	p, err := s.productRepository.GetByID(ctx, input.ProductID)
	if errors.Is(err, product.ErrProductDoesNotExist) {
		s.log.Info(ctx, "Product not found.", logging.Entry("input", input))
		return result, err
	}
	if err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("input", input))
		return result, err
	}
	if !p.IsOwnedBy(input.UserID) {
		s.log.Info(ctx, "Product belongs to another user.", logging.Entry("input", input))
		return result, product.ErrProductPermission
	}
	return Result{Product: p}, nil
}
