package recordproductsale

import (
	"context"
	"inventory/internal/core/domain/logging"
	"inventory/internal/core/domain/product"
	uow "inventory/internal/core/domain/unit_of_work"
	"inventory/internal/core/services"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
)

var NOW time.Time = time.Date(2022, 10, 10, 12, 0, 0, 0, time.UTC)

type testSuite struct {
	suite.Suite
	UnitOfWork *uow.FakeUnitOfWork
	Publisher  *product.FakeEventPublisher
	Service    services.Service[Input, Result]
	Product    product.Product
}

func (suite *testSuite) SetupTest() {
	suite.UnitOfWork = uow.NewFakeUnitOfWork()
	suite.Publisher = product.NewFakeEventPublisher()
	suite.Service = New(
		logging.NewFakeLogger(),
		suite.UnitOfWork,
		suite.Publisher,
		func() time.Time { return NOW },
	)
	p, err := suite.UnitOfWork.Context.ProductRepository.Create(context.Background(), product.CreateInput{
		OwnerID:   1,
		Name:      "Mouse",
		Quantity:  5,
		CreatedAt: NOW.Add(-time.Hour),
	})
	suite.Require().Nil(err)
	suite.Product = p
}

func TestRecordProductSaleService(t *testing.T) {
	suite.Run(t, new(testSuite))
}

func (s *testSuite) TestSuccess() {
	result, err := s.Service.Run(context.Background(), Input{ProductID: s.Product.ID, Quantity: 2})
	s.Require().Nil(err)
	result, err = s.Service.Run(context.Background(), Input{ProductID: s.Product.ID, Quantity: 3})

	assert := s.Require()
	assert.Nil(err)
	assert.Equal(uint32(0), result.Product.Quantity)
	assert.Equal(uint32(5), result.Product.AmountSold)
	assert.Equal(NOW, result.Product.UpdatedAt)
	assert.Equal(2, s.Publisher.PublishedCount())
	assert.Equal(product.EventSold, s.Publisher.Published[1].Type)
}

func (s *testSuite) TestErrors() {
	cases := []struct {
		id            string
		input         Input
		expectedError error
	}{
		{id: "zero-quantity", input: Input{ProductID: 1, Quantity: 0}, expectedError: product.ErrInvalidSaleQuantity},
		{id: "not-enough", input: Input{ProductID: 1, Quantity: 6}, expectedError: product.ErrNotEnoughQuantity},
		{id: "missing-product", input: Input{ProductID: 404, Quantity: 1}, expectedError: product.ErrProductDoesNotExist},
	}

	for _, testcase := range cases {
		s.Run(testcase.id, func() {
			_, err := s.Service.Run(context.Background(), testcase.input)

			s.ErrorIs(err, testcase.expectedError)
			s.Equal(uint32(5), s.UnitOfWork.Context.ProductRepository.Products[0].Quantity)
			s.False(s.UnitOfWork.Context.WasCommitCalled)
		})
	}
}

func (s *testSuite) TestAmountSoldStaysWithinColumnRange() {
	s.UnitOfWork.Context.ProductRepository.Products[0].AmountSold = product.MAX_AMOUNT_SOLD - 1

	_, err := s.Service.Run(context.Background(), Input{ProductID: s.Product.ID, Quantity: 2})

	s.ErrorIs(err, product.ErrAmountSoldOverflow)
	s.Equal(uint32(5), s.UnitOfWork.Context.ProductRepository.Products[0].Quantity)
	s.False(s.UnitOfWork.Context.WasCommitCalled)

	result, err := s.Service.Run(context.Background(), Input{ProductID: s.Product.ID, Quantity: 1})

	s.Require().Nil(err)
	s.Equal(uint32(product.MAX_AMOUNT_SOLD), result.Product.AmountSold)
}
