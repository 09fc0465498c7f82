package listuserproducts

import (
	"context"
	"errors"
	c "inventory/internal/core/domain/common"
	e "inventory/internal/core/domain/errors"
	"inventory/internal/core/domain/logging"
	"inventory/internal/core/domain/product"
	"inventory/internal/core/domain/user"
	"inventory/internal/core/services"
	"inventory/internal/core/services/auth"
	"math"
)

const (
	DEFAULT_LIMIT = 15
	MAX_LIMIT     = 100
	MAX_OFFSET    = math.MaxInt32
)

var ErrOffsetTooLarge = errors.New("offset is too large")

type Input struct {
	UserID  user.ID
	OrderBy product.OrderBy
	Limit   c.Optional[uint]
	Offset  uint
}

func (i Input) WithAuthenticatedUser(u user.User) auth.Input {
	i.UserID = u.ID
	return i
}

type Result struct {
	Products   []product.Product
	TotalCount uint
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
	if input.Offset > MAX_OFFSET {
		return result, ErrOffsetTooLarge
	}
	limit := input.Limit.OrElse(DEFAULT_LIMIT)
	if limit == 0 {
		limit = DEFAULT_LIMIT
	}
	if limit > MAX_LIMIT {
		limit = MAX_LIMIT
	}
	orderBy := input.OrderBy
	if orderBy == product.OrderByNotSet {
		orderBy = product.OrderByIDAsc
	}

	readOptions := product.ReadOptions{
		OwnerIDEquals: c.Some(input.UserID),
		OrderBy:       orderBy,
		Limit:         c.Some(limit),
		Offset:        input.Offset,
	}
	products, err := s.productRepository.Read(ctx, readOptions)
	if err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("input", input))
		return result, err
	}
	totalCount, err := s.productRepository.Count(ctx, readOptions)
	if err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("input", input))
		return result, err
	}

	s.log.Info(
		ctx,
		"User products successfully read.",
		logging.Entry("input", input),
		logging.Entry("count", len(products)),
		logging.Entry("totalCount", totalCount),
	)
	result.Products = products
	result.TotalCount = totalCount
	return result, nil
}
